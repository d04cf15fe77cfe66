// Package reaper terminates processes left over from a previous run,
// matching them by command line the way `pkill -f` does.
package reaper

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

type Reaper interface {
	// Reap sends a termination signal to every process whose command
	// line matches one of the patterns, and returns how many processes
	// were signalled. Finding no matching process is not an error.
	Reap(ctx context.Context, patterns []string) (int, error)
}

// Candidate is a process as seen by the reaper.
type Candidate interface {
	Pid() int32
	Cmdline(ctx context.Context) (string, error)
	Terminate(ctx context.Context) error
}

// ListFunc lists the candidate processes of the system.
type ListFunc func(ctx context.Context) ([]Candidate, error)

type ProcessReaper struct {
	list ListFunc
	self map[int32]bool
	log  *zap.Logger
}

var _ Reaper = (*ProcessReaper)(nil)

func New(log *zap.Logger) *ProcessReaper {
	return NewWithList(listSystemProcesses, log)
}

func NewWithList(list ListFunc, log *zap.Logger) *ProcessReaper {
	return &ProcessReaper{
		list: list,
		// never reap ourselves or whoever started us
		self: map[int32]bool{
			int32(os.Getpid()):  true,
			int32(os.Getppid()): true,
		},
		log: log.Named("reaper"),
	}
}

func (r *ProcessReaper) Reap(ctx context.Context, patterns []string) (int, error) {
	matchers, err := compile(patterns)
	if err != nil {
		return 0, err
	}

	if len(matchers) == 0 {
		return 0, nil
	}

	candidates, err := r.list(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list processes: %w", err)
	}

	var reaped int
	for _, c := range candidates {
		if r.self[c.Pid()] {
			continue
		}

		log := r.log.With(zap.Int32("pid", c.Pid()))

		cmdline, err := c.Cmdline(ctx)
		if err != nil || cmdline == "" {
			// the process may be gone already, or we are not allowed
			// to inspect it. either way it is none of our business.
			continue
		}

		if !matchAny(matchers, cmdline) {
			continue
		}

		if err := c.Terminate(ctx); err != nil {
			log.Debug("failed to terminate process", zap.String("cmdline", cmdline), zap.Error(err))
			continue
		}

		log.Info("terminated existing process", zap.String("cmdline", cmdline))
		reaped++
	}

	return reaped, nil
}

func compile(patterns []string) ([]*regexp.Regexp, error) {
	matchers := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}

		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}

		matchers = append(matchers, re)
	}

	return matchers, nil
}

func matchAny(matchers []*regexp.Regexp, s string) bool {
	for _, re := range matchers {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}

// MARK: - gopsutil

type systemProcess struct {
	p *process.Process
}

func (s systemProcess) Pid() int32 {
	return s.p.Pid
}

func (s systemProcess) Cmdline(ctx context.Context) (string, error) {
	return s.p.CmdlineWithContext(ctx)
}

func (s systemProcess) Terminate(ctx context.Context) error {
	return s.p.TerminateWithContext(ctx)
}

func listSystemProcesses(ctx context.Context) ([]Candidate, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(procs))
	for _, p := range procs {
		candidates = append(candidates, systemProcess{p: p})
	}

	return candidates, nil
}
