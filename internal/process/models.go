package process

import (
	"errors"
	"time"
)

var (
	ErrEmptyCommand = errors.New("empty command")
	ErrKillTimeout  = errors.New("kill timeout")
)

type StartConfig struct {
	// Cmd is the path or name of the binary to execute
	Cmd string `conf:"cmd" json:"cmd"`

	// Command is a full command line, e.g. "npx nuxi dev". If set, it
	// is split into words and takes precedence over Cmd. Args are
	// appended to the words of the command line.
	Command string `conf:"command" json:"command"`

	// Cwd is the working directory in which
	// the binary should be executed
	Cwd string `conf:"cwd" json:"cwd"`

	// Args is the list of arguments to pass to the command
	Args []string `conf:"args" json:"args"`

	// Env is a map of environment variables to set on top
	// of the environment of the current process
	Env map[string]string `conf:"env" json:"env"`

	// Detached starts the process in a new session, so it is
	// not tied to the process group of the current process
	Detached bool `conf:"detached" json:"detached"`
}

type StopConfig struct {
	// Timeout is the duration to wait for the process to exit after
	// it was asked to terminate, before it is killed
	Timeout time.Duration `conf:"timeout" json:"timeout"`
}
