package executor

import (
	"errors"
	"fmt"
)

// ErrSpawn indicates a process could not be started.
var ErrSpawn = errors.New("failed to start process")

// Reports a process that started but exited non-zero.
type ProcessError struct {
	Command string // Executable name, for display.
	Code    int    // Exit code of the process.
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}
