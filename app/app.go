package app

import (
	"github.com/jonboulle/clockwork"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/lambda-feedback/tandem/config"
	"github.com/lambda-feedback/tandem/internal/host"
	"github.com/lambda-feedback/tandem/internal/process"
	"github.com/lambda-feedback/tandem/internal/reaper"
	"github.com/lambda-feedback/tandem/util/conf"
	"github.com/lambda-feedback/tandem/util/console"
	"github.com/lambda-feedback/tandem/util/logging"
)

func New(ctx *cli.Context) (*host.Host, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide the wall clock
		fx.Provide(clockwork.NewRealClock),
		// provide console
		fx.Provide(console.Stdout),
		// provide process launcher
		fx.Provide(fx.Annotate(process.NewLauncher, fx.As(new(process.Launcher)))),
		// provide reaper for leftover processes
		fx.Provide(fx.Annotate(reaper.New, fx.As(new(reaper.Reaper)))),
	)

	return host.New(log, sharedModule), nil
}
