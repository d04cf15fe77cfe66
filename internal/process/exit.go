package process

import (
	"fmt"
	"os/exec"
	"syscall"
)

type ExitEvent struct {
	// Code is the exit code of the process
	Code *int

	// Signal is the signal that caused the process to exit
	Signal *int
}

// ExitCode returns the exit code of the process, or 0 if the
// process did not report one, e.g. because it was signalled.
func (e ExitEvent) ExitCode() int {
	if e.Code == nil {
		return 0
	}

	return *e.Code
}

func (e ExitEvent) String() string {
	switch {
	case e.Code != nil:
		return fmt.Sprintf("exit code %d", *e.Code)
	case e.Signal != nil:
		return fmt.Sprintf("signal %s", syscall.Signal(*e.Signal))
	default:
		return "unknown exit status"
	}
}

func getExitEvent(err error) ExitEvent {
	var cell int
	var exitStatus *int
	var signo *int

	if err == nil {
		// the process exited successfully, set the exit code to 0
		exitStatus = &cell
	} else if exitError, ok := err.(*exec.ExitError); ok {
		// the process exited with an error
		if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
			if status.Signaled() {
				// the process was terminated by a signal
				cell = int(status.Signal())
				signo = &cell
			} else if code := status.ExitStatus(); code >= 0 {
				cell = code
				exitStatus = &cell
			}
		}
	}

	if signo == nil && exitStatus == nil {
		// could not determine the exit status or signal,
		// set exit status to 1
		cell = 1
		exitStatus = &cell
	}

	return ExitEvent{
		Code:   exitStatus,
		Signal: signo,
	}
}
