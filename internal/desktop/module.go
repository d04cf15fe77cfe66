package desktop

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/tandem/internal/process"
	"github.com/lambda-feedback/tandem/util/logging"
)

type LifecycleParams struct {
	fx.In

	Context    context.Context
	Config     Config
	Launcher   process.Launcher
	Clock      clockwork.Clock
	NewWindow  WindowFactory `optional:"true"`
	Log        *zap.Logger
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
}

// NewLifecycleApp creates an app bound to the fx lifecycle. The window
// is opened once the application started. Closing the window shuts
// the application down, stopping the application closes the window.
func NewLifecycleApp(params LifecycleParams) *App {
	app := New(Params{
		Config:    params.Config,
		Launcher:  params.Launcher,
		Clock:     params.Clock,
		NewWindow: params.NewWindow,
		Log:       params.Log,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go run(params.Context, app, params.Shutdowner, params.Log)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Close(ctx)
		},
	})

	return app
}

func run(ctx context.Context, app *App, shutdowner fx.Shutdowner, log *zap.Logger) {
	if err := app.Open(ctx); err != nil {
		if app.Closed() || ctx.Err() != nil {
			return
		}

		log.Error("failed to open window", zap.Error(err))
		shutdown(shutdowner, log, fx.ExitCode(1))
		return
	}

	select {
	case <-app.Done():
	case <-ctx.Done():
		return
	}

	// the window is closed on shutdown as well
	if app.Closed() {
		return
	}

	log.Info("window closed")
	shutdown(shutdowner, log)
}

func shutdown(shutdowner fx.Shutdowner, log *zap.Logger, opts ...fx.ShutdownOption) {
	if err := shutdowner.Shutdown(opts...); err != nil {
		log.Error("failed to shut down", zap.Error(err))
	}
}

func Module(config Config) fx.Option {
	return fx.Module("desktop",
		// rename logger for module
		logging.DecorateLogger("window"),
		// provide config
		fx.Supply(config),
		// provide app
		fx.Provide(NewLifecycleApp),
		// invoke app
		fx.Invoke(func(*App) {}),
	)
}
