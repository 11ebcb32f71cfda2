// Package instance keeps a single alarm daemon running per machine by
// looking for other processes with the same executable name.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"
)

// commLength is how many characters of the executable name Linux reports.
const commLength = 15

// ErrAlreadyRunning is returned when another process runs the same executable.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Ensure returns ErrAlreadyRunning when another process runs this executable.
func Ensure() error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	if pid, found := findOther(processList, os.Getpid(), filepath.Base(self)); found {
		return fmt.Errorf("pid %d: %w", pid, ErrAlreadyRunning)
	}

	return nil
}

// findOther returns the first process other than self running name.
func findOther(processList []ps.Process, self int, name string) (int, bool) {
	for _, process := range processList {
		if process.Pid() == self {
			continue
		}

		if sameExecutable(process.Executable(), name) {
			return process.Pid(), true
		}
	}

	return 0, false
}

// sameExecutable compares names the way the OS reports them: Linux truncates
// to 15 characters and Windows names compare case-insensitively.
func sameExecutable(reported, name string) bool {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return strings.EqualFold(reported, name)
	}

	if reported == name {
		return true
	}

	return len(reported) == commLength && len(name) > commLength && name[:commLength] == reported
}
