package main

import "github.com/oshokin/alarm-clock/cmd/alarm-set/cmd"

func main() {
	cmd.Execute()
}
