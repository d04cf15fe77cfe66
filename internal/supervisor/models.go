package supervisor

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyStarted = errors.New("session already started")
	ErrStopped        = errors.New("session stopped")
)

// Role is the role of a supervised process.
type Role string

const (
	RoleServer Role = "server"
	RoleShell  Role = "shell"
)

// State is the lifecycle state of a supervised process.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateExited
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseServerRunning
	PhaseBothRunning
	PhaseOneExited
	PhaseTerminating
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseServerRunning:
		return "server_running"
	case PhaseBothRunning:
		return "both_running"
	case PhaseOneExited:
		return "one_exited"
	case PhaseTerminating:
		return "terminating"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ProcessStatus describes a supervised process. Code is only
// meaningful if State is StateExited, Pid only if it was started.
type ProcessStatus struct {
	Role  Role
	State State
	Code  int
	Pid   int
}

func (s ProcessStatus) String() string {
	if s.State == StateExited {
		return fmt.Sprintf("%s: exited(%d)", s.Role, s.Code)
	}

	return fmt.Sprintf("%s: %s", s.Role, s.State)
}

// Status is a snapshot of a session.
type Status struct {
	Phase  Phase
	Server ProcessStatus
	Shell  ProcessStatus
}
