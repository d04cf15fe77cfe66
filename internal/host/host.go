package host

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Host runs an fx application until it is shut down, either by one of
// its components or by a signal, and translates the shutdown into an
// exit code.
type Host struct {
	log     *zap.Logger
	options []fx.Option
}

func New(log *zap.Logger, options ...fx.Option) *Host {
	return &Host{
		log:     log,
		options: options,
	}
}

// Run starts the application and blocks until it is shut down. It
// returns nil for exit code 0, and an *ExitError otherwise. Failing to
// start or stop the application yields exit code 1.
func (h *Host) Run(ctx context.Context, options ...fx.Option) error {
	// 0. after run ends, flush the logger
	defer h.log.Sync()

	// 1. create app context, cancelled once run returns
	appCtx, cancelApp := context.WithCancel(ctx)
	defer cancelApp()

	// 2. create fx application with app context
	fxApp := h.createFxApp(appCtx, options...)

	// 3. create start context w/ timeout
	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()

	// 4. start the application, exit on error
	if err := fxApp.Start(startCtx); err != nil {
		h.log.Error("failed to start", zap.Error(err))
		return NewExitError(1)
	}

	// 5. wait for a shutdown request or an os signal
	sig := <-fxApp.Wait()
	exitCode := sig.ExitCode

	fields := []zap.Field{zap.Int("code", exitCode)}
	if sig.Signal != nil {
		fields = append(fields, zap.Stringer("signal", sig.Signal))
	}

	h.log.Debug("shutting down", fields...)

	// 6. create shutdown context
	stopCtx, cancelStop := context.WithTimeout(ctx, fxApp.StopTimeout())
	defer cancelStop()

	// 7. gracefully shutdown the app, exit on error
	if err := fxApp.Stop(stopCtx); err != nil {
		h.log.Error("failed to stop", zap.Error(err))
		return NewExitError(1)
	}

	if exitCode == 0 {
		return nil
	}

	return NewExitError(exitCode)
}

func (h *Host) createFxApp(ctx context.Context, options ...fx.Option) *fx.App {
	return fx.New(
		// inject the app context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),

		// inject the logger
		fx.Supply(h.log),

		// use the logger also for fx' logs
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: h.log.Named("fx")}
		}),

		// provide host-wide options
		fx.Options(h.options...),

		// provide run options
		fx.Options(options...),
	)
}
