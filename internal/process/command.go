package process

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Argv returns the binary and its arguments as described by the config.
func (c StartConfig) Argv() (string, []string, error) {
	if c.Command == "" {
		if c.Cmd == "" {
			return "", nil, ErrEmptyCommand
		}

		return c.Cmd, c.Args, nil
	}

	words, err := shlex.Split(c.Command)
	if err != nil {
		return "", nil, fmt.Errorf("invalid command line %q: %w", c.Command, err)
	}

	if len(words) == 0 {
		return "", nil, ErrEmptyCommand
	}

	args := make([]string, 0, len(words)-1+len(c.Args))
	args = append(args, words[1:]...)
	args = append(args, c.Args...)

	return words[0], args, nil
}

// CommandLine returns the command and its arguments joined by spaces,
// the way it would show up in a process listing.
func (c StartConfig) CommandLine() string {
	cmd, args, err := c.Argv()
	if err != nil {
		return ""
	}

	return strings.Join(append([]string{cmd}, args...), " ")
}

// Pattern returns a regular expression matching the command line
// of processes started with this config.
func (c StartConfig) Pattern() string {
	line := c.CommandLine()
	if line == "" {
		return ""
	}

	return regexp.QuoteMeta(line)
}
