package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Process is a handle to a running child process.
type Process interface {
	// Pid returns the process id of the child.
	Pid() int

	// Done returns a channel that is closed once the process exited.
	Done() <-chan struct{}

	// ExitEvent describes how the process exited. Only valid
	// after the channel returned by Done is closed.
	ExitEvent() ExitEvent

	// Terminate asks the process group to stop (SIGTERM). It returns
	// without waiting for the process to exit. Terminating a process
	// that already exited is not an error.
	Terminate() error

	// Kill forcefully stops the process group (SIGKILL). It returns
	// without waiting for the process to exit.
	Kill() error
}

// Launcher starts child processes.
type Launcher interface {
	Launch(ctx context.Context, config StartConfig) (Process, error)
}

type ExecLauncher struct {
	log *zap.Logger
}

var _ Launcher = (*ExecLauncher)(nil)

func NewLauncher(log *zap.Logger) *ExecLauncher {
	return &ExecLauncher{
		log: log.Named("process"),
	}
}

// Launch starts the process described by config. The child inherits
// stdout and stderr of the current process and runs in its own
// process group. Its stdin is the null device, a background process
// group reading from or configuring the terminal would be stopped. The context is only used to abort the launch, it
// does not bound the lifetime of the child.
func (l *ExecLauncher) Launch(ctx context.Context, config StartConfig) (Process, error) {
	name, args, err := config.Argv()
	if err != nil {
		return nil, err
	}

	l.log.With(
		zap.String("command", name),
		zap.Strings("args", args),
		zap.String("cwd", config.Cwd),
		zap.Bool("detached", config.Detached),
	).Debug("starting process")

	// exit early if the context is already cancelled
	if ctx.Err() != nil {
		return nil, fmt.Errorf("failed to start process: %w", ctx.Err())
	}

	cmd := exec.Command(name, args...)
	cmd.Env = mergeEnv(os.Environ(), config.Env)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if config.Cwd != "" {
		cmd.Dir = config.Cwd
	}

	initCmd(cmd, config.Detached)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start process: %w", err)
	}

	p := &execProcess{
		cmd:  cmd,
		pid:  cmd.Process.Pid,
		done: make(chan struct{}),
		log:  l.log.With(zap.Int("pid", cmd.Process.Pid)),
	}

	// wait for the process to terminate in the background
	go p.wait()

	return p, nil
}

type execProcess struct {
	cmd  *exec.Cmd
	pid  int
	done chan struct{}
	exit ExitEvent

	log *zap.Logger
}

func (p *execProcess) wait() {
	// block until the process exits
	err := p.cmd.Wait()

	p.exit = getExitEvent(err)

	p.log.Debug("process exited", zap.Stringer("status", p.exit))

	close(p.done)
}

func (p *execProcess) Pid() int {
	return p.pid
}

func (p *execProcess) Done() <-chan struct{} {
	return p.done
}

func (p *execProcess) ExitEvent() ExitEvent {
	return p.exit
}

func (p *execProcess) Terminate() error {
	return p.signal(false)
}

func (p *execProcess) Kill() error {
	return p.signal(true)
}

func (p *execProcess) signal(force bool) error {
	// signalling should report success if the process
	// terminated by the time we receive the request.
	select {
	case <-p.done:
		p.log.Debug("process already terminated")
		return nil
	default:
	}

	p.log.Debug("sending signal", zap.Bool("force", force))

	if err := killProcess(p.cmd, force); err != nil && !errors.Is(err, syscall.ESRCH) {
		return fmt.Errorf("failed to signal process: %w", err)
	}

	return nil
}

// Stop terminates the process and waits up to timeout for it to exit.
// If the process is still running after the timeout, it is killed.
// A zero timeout waits indefinitely, a negative one does not wait.
func Stop(p Process, timeout time.Duration) error {
	return StopAll([]Process{p}, timeout)
}

// StopAll terminates all processes at once and waits for them within
// a single grace period. Processes still running after the timeout are
// killed, and get the same timeout again to exit. Processes that could
// not be signalled are not waited for.
func StopAll(procs []Process, timeout time.Duration) error {
	var errs []error

	pending := make([]Process, 0, len(procs))
	for _, p := range procs {
		if err := p.Terminate(); err != nil {
			errs = append(errs, err)
			continue
		}

		pending = append(pending, p)
	}

	if timeout < 0 || len(pending) == 0 {
		return errors.Join(errs...)
	}

	if timeout == 0 {
		for _, p := range pending {
			<-p.Done()
		}

		return errors.Join(errs...)
	}

	pending = waitAll(pending, timeout)
	if len(pending) == 0 {
		return errors.Join(errs...)
	}

	killed := make([]Process, 0, len(pending))
	for _, p := range pending {
		if err := p.Kill(); err != nil {
			errs = append(errs, err)
			continue
		}

		killed = append(killed, p)
	}

	if len(waitAll(killed, timeout)) > 0 {
		errs = append(errs, ErrKillTimeout)
	}

	return errors.Join(errs...)
}

// waitAll waits up to timeout for the processes to exit and returns
// the ones still running.
func waitAll(procs []Process, timeout time.Duration) []Process {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, p := range procs {
		select {
		case <-p.Done():
		case <-timer.C:
			return running(procs[i:])
		}
	}

	return nil
}

func running(procs []Process) []Process {
	var result []Process

	for _, p := range procs {
		select {
		case <-p.Done():
		default:
			result = append(result, p)
		}
	}

	return result
}

func mergeEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(extra))
	env = append(env, base...)
	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, extra[k]))
	}

	return env
}
