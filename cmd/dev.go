package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/tandem/app"
	"github.com/lambda-feedback/tandem/config"
	"github.com/lambda-feedback/tandem/internal/host"
	"github.com/lambda-feedback/tandem/internal/process"
	"github.com/lambda-feedback/tandem/internal/supervisor"
	"github.com/lambda-feedback/tandem/util/conf"
	"github.com/lambda-feedback/tandem/util/logging"
)

var (
	devCmdDescription = `The dev command starts the dev server of the app in [dir],
waits for a fixed delay and then starts the desktop shell.

Both processes are supervised together. Once either of them
exits, the other one is terminated and tandem exits with the
exit code of the process that exited first. Interrupting
tandem terminates both processes.

Processes left over from a previous run are killed before the
dev server is started, unless --kill-existing=false is given.`
	devCmd = &cli.Command{
		Name:        "dev",
		Usage:       "Start the dev server and the desktop shell.",
		ArgsUsage:   "[dir]",
		Description: devCmdDescription,
		Before:      loadConfig,
		Action:      devAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Usage:    "the host the dev server listens on.",
				Category: "server",
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"p"},
				Usage:    "the port the dev server listens on.",
				Category: "server",
			},
			&cli.StringFlag{
				Name:     "server-command",
				Usage:    "the command line starting the dev server.",
				Category: "server",
			},
			&cli.StringFlag{
				Name:     "shell-command",
				Usage:    "the command line starting the desktop shell.",
				Category: "shell",
			},
			&cli.IntFlag{
				Name:     "delay",
				Aliases:  []string{"d"},
				Usage:    "the delay in milliseconds between starting the dev server and the shell.",
				Category: "shell",
			},
			&cli.BoolFlag{
				Name:     "auto-start",
				Usage:    "start the shell once the delay elapsed.",
				Category: "shell",
			},
			&cli.BoolFlag{
				Name:     "kill-existing",
				Usage:    "kill processes left over from a previous run.",
				Category: "processes",
			},
			&cli.StringSliceFlag{
				Name:     "kill-pattern",
				Usage:    "a regular expression matching the command line of leftover processes.",
				Category: "processes",
			},
			&cli.DurationFlag{
				Name:     "stop-timeout",
				Usage:    "the time a process may take to exit before it is killed.",
				Category: "processes",
			},
		},
	}
)

func devAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	if !cfg.Enabled {
		log.Info("tandem is disabled, nothing to start")
		return nil
	}

	if dir := ctx.Args().First(); dir != "" {
		cfg.Server.Args = append(cfg.Server.Args, dir)
	}

	if cfg.Shell.Cmd == "" && cfg.Shell.Command == "" {
		shell, err := selfShell(ctx, cfg.Shell)
		if err != nil {
			return err
		}

		cfg.Shell = shell
	}

	ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

	h, err := app.New(ctx)
	if err != nil {
		return err
	}

	log.Info("starting dev session",
		zap.String("main", cfg.Main),
		zap.String("url", cfg.URL()))

	sessionConfig := cfg.SupervisorConfig()

	return h.Run(ctx.Context,
		supervisor.Module(sessionConfig),
		host.StopTimeout(sessionConfig.StopTimeout),
	)
}

// selfShell returns a start config running the window command of the
// current executable, forwarding the config sources.
func selfShell(ctx *cli.Context, shell process.StartConfig) (process.StartConfig, error) {
	exe, err := os.Executable()
	if err != nil {
		return shell, fmt.Errorf("failed to locate executable: %w", err)
	}

	var args []string

	for _, name := range []string{"config", "env-file", "log-level", "log-format"} {
		if ctx.IsSet(name) {
			args = append(args, "--"+name, ctx.String(name))
		}
	}

	args = append(args, windowCmd.Name)

	shell.Cmd = exe
	shell.Args = append(args, shell.Args...)

	return shell, nil
}

func init() {
	rootApp.Commands = append(rootApp.Commands, devCmd)
}
