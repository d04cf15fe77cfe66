package supervisor

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/tandem/internal/process"
	"github.com/lambda-feedback/tandem/internal/reaper"
	"github.com/lambda-feedback/tandem/util/console"
	"github.com/lambda-feedback/tandem/util/logging"
)

type LifecycleParams struct {
	fx.In

	Config     Config
	Launcher   process.Launcher
	Reaper     reaper.Reaper `optional:"true"`
	Clock      clockwork.Clock
	Console    *console.Console `optional:"true"`
	Log        *zap.Logger
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
}

// NewLifecycleSession creates a session bound to the fx lifecycle. The
// session starts with the application. If the session ends on its own,
// the application is shut down with the exit code of the session.
func NewLifecycleSession(params LifecycleParams) *Session {
	session := New(Params{
		Config:   params.Config,
		Launcher: params.Launcher,
		Reaper:   params.Reaper,
		Clock:    params.Clock,
		Console:  params.Console,
		Log:      params.Log,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := session.Start(ctx); err != nil {
				return err
			}

			go forwardExit(session, params.Shutdowner, params.Log)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return session.Stop(ctx)
		},
	})

	return session
}

func forwardExit(session *Session, shutdowner fx.Shutdowner, log *zap.Logger) {
	<-session.Done()

	// the application is already shutting down
	if session.Stopped() {
		return
	}

	code := session.ExitCode()

	log.Debug("session ended", zap.Int("code", code))

	if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
		log.Error("failed to shut down", zap.Error(err))
	}
}

func Module(config Config) fx.Option {
	return fx.Module("supervisor",
		// rename logger for module
		logging.DecorateLogger("dev"),
		// provide config
		fx.Supply(config),
		// provide session
		fx.Provide(NewLifecycleSession),
		// invoke session
		fx.Invoke(func(*Session) {}),
	)
}
