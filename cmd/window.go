package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/tandem/app"
	"github.com/lambda-feedback/tandem/config"
	"github.com/lambda-feedback/tandem/internal/desktop"
	"github.com/lambda-feedback/tandem/internal/host"
	"github.com/lambda-feedback/tandem/util/conf"
	"github.com/lambda-feedback/tandem/util/logging"
)

var (
	windowCmdDescription = `The window command opens the desktop shell. It waits for the
server, loads the page once and reveals the window if the page
loaded. Closing the window exits tandem.

In packaged mode, the bundled server next to the executable
is started first and stopped again when tandem exits.`
	windowCmd = &cli.Command{
		Name:        "window",
		Usage:       "Open the desktop shell.",
		Description: windowCmdDescription,
		Before:      loadConfig,
		Action:      windowAction,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "packaged",
				Usage:    "start the bundled server and load the page from it.",
				Category: "window",
			},
			&cli.StringFlag{
				Name:     "host",
				Usage:    "the host of the served page.",
				Category: "window",
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"p"},
				Usage:    "the port of the served page.",
				Category: "window",
			},
			&cli.IntFlag{
				Name:     "width",
				Usage:    "the width of the window.",
				Category: "window",
			},
			&cli.IntFlag{
				Name:     "height",
				Usage:    "the height of the window.",
				Category: "window",
			},
			&cli.PathFlag{
				Name:     "server-entry",
				Usage:    "the entry point of the bundled server, relative to the executable.",
				Category: "window",
			},
		},
	}
)

func windowAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	desktopConfig, err := cfg.DesktopConfig()
	if err != nil {
		return err
	}

	h, err := app.New(ctx)
	if err != nil {
		return err
	}

	log.Info("opening window",
		zap.String("main", cfg.Main),
		zap.String("url", desktopConfig.URL),
		zap.Bool("packaged", desktopConfig.Packaged))

	return h.Run(ctx.Context,
		desktop.Module(desktopConfig),
		host.StopTimeout(desktopConfig.StopTimeout),
	)
}

func init() {
	rootApp.Commands = append(rootApp.Commands, windowCmd)
}
