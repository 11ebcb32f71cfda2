package main

import "github.com/oshokin/alarm-clock/cmd/alarm-cancel/cmd"

func main() {
	cmd.Execute()
}
