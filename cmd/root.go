package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/tandem/config"
	"github.com/lambda-feedback/tandem/internal/host"
	"github.com/lambda-feedback/tandem/util/conf"
	"github.com/lambda-feedback/tandem/util/logging"
)

var (
	appName  = "tandem"
	appUsage = `Run a web app's dev server and a desktop shell side by side,
and tear both down together.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"TANDEM_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"TANDEM_LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "log-file",
				Usage:   "additionally write json logs to the given file.",
				EnvVars: []string{"TANDEM_LOG_FILE"},
			},
			// config flags
			&cli.PathFlag{
				Name:    "config",
				Usage:   "the json configuration file to load.",
				Value:   config.FileName,
				Aliases: []string{"c"},
			},
			&cli.PathFlag{
				Name:  "env-file",
				Usage: "the dotenv file to load.",
				Value: config.EnvFile,
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the logger
			log, err := logging.New(logging.Options{
				Level:  ctx.String("log-level"),
				Format: ctx.String("log-format"),
				File:   ctx.Path("log-file"),
				App:    appName,
			})
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			_ = log.Sync()

			return nil
		},
	}

	// cliMap maps flag names to config keys. Flags mapped to an empty
	// key are not part of the config.
	cliMap = map[string]string{
		"config":         "",
		"env-file":       "",
		"delay":          "start_delay_ms",
		"kill-pattern":   "kill_patterns",
		"server-command": "server.command",
		"shell-command":  "shell.command",
		"stop-timeout":   "stop.timeout",
		"packaged":       "window.packaged",
		"width":          "window.width",
		"height":         "window.height",
		"server-entry":   "window.server_entry",
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

// loadConfig parses the config and injects it into the cli context.
// It runs before every command, once the command flags are parsed.
func loadConfig(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	// an explicitly requested config file has to exist
	if ctx.IsSet("config") {
		if _, err := os.Stat(ctx.Path("config")); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := conf.Parse(conf.ParseOptions[config.Config]{
		Cli:       ctx,
		CliMap:    cliMap,
		Defaults:  config.DefaultConfig,
		EnvPrefix: config.EnvPrefix,
		EnvFile:   ctx.Path("env-file"),
		FileName:  ctx.Path("config"),
		Validate:  config.Validate,
		Log:       log,
	})
	if err != nil {
		return err
	}

	// inject the config into the cli context
	ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

	return nil
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the cli and returns the exit code of the process.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	// if app exited with ExitError, exit with given exit code
	var exitErr *host.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// otherwise, report the error and exit with exit code 1
	sentry.CaptureException(err)
	fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())

	return 1
}
