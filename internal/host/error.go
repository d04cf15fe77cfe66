package host

import (
	"errors"
	"fmt"
)

// ExitError carries the exit code of the host process.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exited with code %d", e.Code)
}

func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// ExitCode returns the exit code carried by err. It returns 0 if err
// is nil and 1 if err is not an ExitError.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
