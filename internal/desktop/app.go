package desktop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/lambda-feedback/tandem/internal/process"
)

const (
	DefaultDevDelay      = 2000 * time.Millisecond
	DefaultPackagedDelay = 3000 * time.Millisecond
)

type Config struct {
	// URL is the address of the page displayed in the window.
	URL string

	// Window configures the window itself.
	Window WindowConfig

	// Packaged indicates whether the app runs from a bundled build. In
	// packaged mode the app starts the bundled server on its own and
	// the developer tools are not opened.
	Packaged bool

	// DevDelay is the time to wait before loading the page in
	// development mode.
	DevDelay time.Duration

	// PackagedDelay is the time to wait for the bundled server before
	// loading the page in packaged mode.
	PackagedDelay time.Duration

	// Server describes how to start the bundled server. Only used in
	// packaged mode.
	Server process.StartConfig

	// StopTimeout is how long the bundled server may take to exit
	// before it is killed.
	StopTimeout time.Duration
}

// App is the desktop shell. It opens a single window, loads the page
// served at the configured URL and reveals the window once the page
// loaded.
type App struct {
	config Config

	launcher  process.Launcher
	clock     clockwork.Clock
	newWindow WindowFactory

	lock   sync.Mutex
	window Window
	server process.Process
	closed bool

	log *zap.Logger
}

type Params struct {
	// Config is the configuration of the app.
	Config Config

	// Launcher starts the bundled server in packaged mode.
	Launcher process.Launcher

	// Clock measures the load delay. Defaults to the real clock.
	Clock clockwork.Clock

	// NewWindow creates the window. Defaults to NewLorcaWindow.
	NewWindow WindowFactory

	// Log is the logger to use for the app
	Log *zap.Logger
}

func New(params Params) *App {
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	newWindow := params.NewWindow
	if newWindow == nil {
		newWindow = NewLorcaWindow
	}

	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &App{
		config:    params.Config,
		launcher:  params.Launcher,
		clock:     clock,
		newWindow: newWindow,
		log:       log.Named("desktop"),
	}
}

// Open creates the window, waits for the server and loads the page
// exactly once. If the page fails to load, the error is logged and the
// window stays hidden. Open only returns an error if the window could
// not be created.
func (a *App) Open(ctx context.Context) error {
	cfg := a.config.Window
	cfg.DevTools = !a.config.Packaged

	window, err := a.newWindow(cfg)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	if err := a.setWindow(window); err != nil {
		return err
	}

	delay := a.config.DevDelay

	if a.config.Packaged {
		delay = a.config.PackagedDelay
		a.startServer(ctx)
	}

	a.log.Debug("waiting before loading page", zap.Duration("delay", delay))

	select {
	case <-a.clock.After(delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	log := a.log.With(zap.String("url", a.config.URL))

	if err := window.Load(ctx, a.config.URL); err != nil {
		log.Error("failed to load page", zap.Error(err))
		return nil
	}

	log.Info("page loaded")

	if err := window.Show(); err != nil {
		log.Error("failed to show window", zap.Error(err))
		return nil
	}

	if !a.config.Packaged {
		if err := window.OpenDevTools(); err != nil {
			log.Warn("failed to open dev tools", zap.Error(err))
		}
	}

	return nil
}

// Done returns a channel that is closed once the window is closed. The
// channel is nil until the window was created.
func (a *App) Done() <-chan struct{} {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.window == nil {
		return nil
	}

	return a.window.Done()
}

// Close stops the bundled server and closes the window. The server
// is stopped synchronously. Failures are logged and otherwise ignored.
func (a *App) Close(ctx context.Context) error {
	a.lock.Lock()
	a.closed = true
	server, window := a.server, a.window
	a.lock.Unlock()

	if server != nil {
		a.log.Debug("stopping server", zap.Int("pid", server.Pid()))

		if err := process.Stop(server, a.config.StopTimeout); err != nil {
			a.log.Debug("failed to stop server", zap.Error(err))
		}
	}

	if window != nil {
		if err := window.Close(); err != nil {
			a.log.Debug("failed to close window", zap.Error(err))
		}
	}

	return nil
}

// Closed reports whether Close was called.
func (a *App) Closed() bool {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.closed
}

func (a *App) setWindow(window Window) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.closed {
		window.Close()
		return ErrClosed
	}

	a.window = window

	return nil
}

// startServer starts the bundled server. A failure is only logged, the
// page load fails afterwards and the window stays hidden.
func (a *App) startServer(ctx context.Context) {
	a.log.Info("starting server", zap.String("command", a.config.Server.CommandLine()))

	server, err := a.launcher.Launch(ctx, a.config.Server)
	if err != nil {
		a.log.Error("failed to start server", zap.Error(err))
		return
	}

	a.lock.Lock()
	defer a.lock.Unlock()

	if a.closed {
		go process.Stop(server, a.config.StopTimeout)
		return
	}

	a.server = server
}
