package supervisor

import (
	"time"

	"github.com/lambda-feedback/tandem/internal/process"
)

const (
	DefaultStartDelay  = 5000 * time.Millisecond
	DefaultStopTimeout = 5 * time.Second
)

type Config struct {
	// Server describes how to start the server process.
	Server process.StartConfig

	// Shell describes how to start the shell process.
	Shell process.StartConfig

	// StartDelay is the fixed delay between issuing the server launch
	// and issuing the shell launch. The server is not probed for
	// readiness, the delay elapses regardless of its state.
	StartDelay time.Duration

	// AutoStart controls whether the shell is launched after the delay.
	// If false, only the server is supervised.
	AutoStart bool

	// KillExisting makes the session terminate processes left over
	// from a previous run before starting the server.
	KillExisting bool

	// KillPatterns are the regular expressions matched against the
	// command lines of running processes if KillExisting is set. If
	// empty, the command lines of the server and the shell are used.
	KillPatterns []string

	// StopTimeout is how long a terminated process may take to exit
	// before it is killed.
	StopTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		StartDelay:   DefaultStartDelay,
		AutoStart:    true,
		KillExisting: true,
		StopTimeout:  DefaultStopTimeout,
	}
}

func (c Config) killPatterns() []string {
	if len(c.KillPatterns) > 0 {
		return c.KillPatterns
	}

	patterns := make([]string, 0, 2)
	for _, p := range []string{c.Server.Pattern(), c.Shell.Pattern()} {
		if p != "" {
			patterns = append(patterns, p)
		}
	}

	return patterns
}
