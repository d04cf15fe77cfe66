package supervisor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/lambda-feedback/tandem/internal/process"
	"github.com/lambda-feedback/tandem/internal/reaper"
	"github.com/lambda-feedback/tandem/util/console"
)

// Session supervises a server and a shell process. The server is
// started first, the shell after a fixed delay. Once either process
// exits, the other one is terminated and the session ends with the
// exit code of the process that exited first.
type Session struct {
	config Config

	launcher process.Launcher
	reaper   reaper.Reaper
	clock    clockwork.Clock
	console  *console.Console

	// owned by the event loop
	server tracked
	shell  tracked

	events    chan exitEvent
	stop      chan struct{}
	stopOnce  sync.Once
	done      chan struct{}
	doneOnce  sync.Once
	started   bool
	startLock sync.Mutex

	statusLock sync.Mutex
	status     Status
	exitCode   int

	log *zap.Logger
}

type Params struct {
	// Config is the configuration of the session.
	Config Config

	// Launcher starts the server and shell processes.
	Launcher process.Launcher

	// Reaper terminates processes left over from previous runs.
	// Only used if Config.KillExisting is set.
	Reaper reaper.Reaper

	// Clock measures the start delay. Defaults to the real clock.
	Clock clockwork.Clock

	// Console receives the phase announcements. Defaults to a
	// console that prints nothing.
	Console *console.Console

	// Log is the logger to use for the session
	Log *zap.Logger
}

type tracked struct {
	role  Role
	state State
	code  int
	proc  process.Process
}

type exitEvent struct {
	role  Role
	event process.ExitEvent
}

func New(params Params) *Session {
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	con := params.Console
	if con == nil {
		con = console.Discard()
	}

	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		config:   params.Config,
		launcher: params.Launcher,
		reaper:   params.Reaper,
		clock:    clock,
		console:  con,
		server:   tracked{role: RoleServer},
		shell:    tracked{role: RoleShell},
		events:   make(chan exitEvent, 2),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		log:      log.Named("supervisor"),
	}

	s.publish(PhaseNotStarted)

	return s
}

// Start launches the server and starts the event loop, which launches
// the shell once the start delay elapsed. It returns an error if the
// server could not be launched. In that case the session is done with
// exit code 1 and the shell is never launched.
func (s *Session) Start(ctx context.Context) error {
	if err := s.markStarted(); err != nil {
		return err
	}

	s.console.Infof("starting development environment")

	if s.config.KillExisting {
		s.killExisting(ctx)
	}

	s.console.Infof("starting server: %s", s.config.Server.CommandLine())

	proc, err := s.launcher.Launch(ctx, s.config.Server)
	if err != nil {
		s.log.Error("failed to launch server", zap.Error(err))
		s.console.Failuref("failed to start server: %v", err)
		s.end(1)
		return fmt.Errorf("failed to launch server: %w", err)
	}

	s.log.Debug("server launched", zap.Int("pid", proc.Pid()))

	s.server.running(proc)
	s.publish(PhaseServerRunning)

	go s.watch(RoleServer, proc)
	go s.run()

	return nil
}

// Stop terminates the running processes and ends the session with
// exit code 0. It blocks until the session is done or ctx is done.
// Stop may be called multiple times, processes are only terminated
// once.
func (s *Session) Stop(ctx context.Context) error {
	s.startLock.Lock()
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	started := s.started
	s.startLock.Unlock()

	// nothing to tear down if the session never started
	if !started {
		s.end(0)
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel that is closed once the session ended.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// ExitCode returns the exit code of the session. Only meaningful
// after Done is closed.
func (s *Session) ExitCode() int {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()

	return s.exitCode
}

// Stopped reports whether Stop was called.
func (s *Session) Stopped() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}

// Status returns a snapshot of the session.
func (s *Session) Status() Status {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()

	return s.status
}

func (s *Session) markStarted() error {
	s.startLock.Lock()
	defer s.startLock.Unlock()

	if s.Stopped() {
		return ErrStopped
	}

	if s.started {
		return ErrAlreadyStarted
	}

	s.started = true

	return nil
}

func (s *Session) killExisting(ctx context.Context) {
	if s.reaper == nil {
		return
	}

	patterns := s.config.killPatterns()

	n, err := s.reaper.Reap(ctx, patterns)
	if err != nil {
		s.log.Warn("failed to kill existing processes", zap.Error(err))
		return
	}

	if n == 0 {
		s.log.Debug("no existing processes found", zap.Strings("patterns", patterns))
		return
	}

	s.log.Info("killed existing processes", zap.Int("count", n))
}

func (s *Session) run() {
	var launch <-chan time.Time

	if s.config.AutoStart {
		if s.config.StartDelay <= 0 {
			// a stop request received during start wins over the launch
			if !s.Stopped() && !s.launchShell() {
				s.finish(1)
				return
			}
		} else {
			s.log.Debug("waiting before starting shell", zap.Duration("delay", s.config.StartDelay))
			launch = s.clock.After(s.config.StartDelay)
		}
	}

	for {
		select {
		case <-launch:
			launch = nil

			// the server may have exited while the timer fired, its
			// exit event takes precedence over the pending launch
			if s.server.exitedEarly() {
				continue
			}

			if !s.launchShell() {
				s.finish(1)
				return
			}
		case evt := <-s.events:
			s.handleExit(evt)
			return
		case <-s.stop:
			s.console.Warnf("shutting down")
			s.finish(0)
			return
		}
	}
}

func (s *Session) launchShell() bool {
	s.console.Infof("starting shell: %s", s.config.Shell.CommandLine())

	proc, err := s.launcher.Launch(context.Background(), s.config.Shell)
	if err != nil {
		s.log.Error("failed to launch shell", zap.Error(err))
		s.console.Failuref("failed to start shell: %v", err)
		return false
	}

	s.log.Debug("shell launched", zap.Int("pid", proc.Pid()))

	s.shell.running(proc)
	s.publish(PhaseBothRunning)

	go s.watch(RoleShell, proc)

	return true
}

func (s *Session) handleExit(evt exitEvent) {
	code := evt.event.ExitCode()

	t := s.tracked(evt.role)
	t.exited(code)
	s.publish(PhaseOneExited)

	s.log.Info("process exited",
		zap.String("role", string(evt.role)),
		zap.Stringer("event", evt.event))

	if code == 0 {
		s.console.Infof("%s exited", evt.role)
	} else {
		s.console.Warnf("%s exited with code %d", evt.role, code)
	}

	s.finish(code)
}

// finish terminates every process that is still running and ends
// the session with the given code. The processes are signalled at
// once and share a single grace period.
func (s *Session) finish(code int) {
	s.publish(PhaseTerminating)

	var running []*tracked
	var procs []process.Process

	// reverse start order
	for _, t := range []*tracked{&s.shell, &s.server} {
		if t.state != StateRunning {
			continue
		}

		s.log.Debug("terminating process", zap.String("role", string(t.role)))

		running = append(running, t)
		procs = append(procs, t.proc)
	}

	if err := process.StopAll(procs, s.config.StopTimeout); err != nil {
		s.log.Debug("failed to terminate processes", zap.Error(err))
	}

	for _, t := range running {
		select {
		case <-t.proc.Done():
			t.exited(t.proc.ExitEvent().ExitCode())
		default:
		}
	}

	s.end(code)
}

func (s *Session) end(code int) {
	s.doneOnce.Do(func() {
		s.statusLock.Lock()
		s.exitCode = code
		s.statusLock.Unlock()

		s.publish(PhaseDone)

		close(s.done)
	})
}

func (s *Session) watch(role Role, p process.Process) {
	select {
	case <-p.Done():
	case <-s.done:
		return
	}

	select {
	case s.events <- exitEvent{role: role, event: p.ExitEvent()}:
	case <-s.done:
	}
}

func (s *Session) tracked(role Role) *tracked {
	if role == RoleShell {
		return &s.shell
	}

	return &s.server
}

func (s *Session) publish(phase Phase) {
	s.statusLock.Lock()
	defer s.statusLock.Unlock()

	s.status = Status{
		Phase:  phase,
		Server: s.server.status(),
		Shell:  s.shell.status(),
	}
}

func (t *tracked) running(p process.Process) {
	t.proc = p
	t.state = StateRunning
}

func (t *tracked) exited(code int) {
	t.state = StateExited
	t.code = code
}

// exitedEarly reports whether the process is done while its exit
// event was not handled yet.
func (t *tracked) exitedEarly() bool {
	if t.state != StateRunning {
		return false
	}

	select {
	case <-t.proc.Done():
		return true
	default:
		return false
	}
}

func (t *tracked) status() ProcessStatus {
	st := ProcessStatus{
		Role:  t.role,
		State: t.state,
		Code:  t.code,
	}

	if t.proc != nil {
		st.Pid = t.proc.Pid()
	}

	return st
}
