package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/tandem/config"
	"github.com/lambda-feedback/tandem/internal/desktop"
	"github.com/lambda-feedback/tandem/util"
	"github.com/lambda-feedback/tandem/util/conf"
	"github.com/lambda-feedback/tandem/util/logging"
)

var (
	runCmdDescription = `The run command detects whether tandem runs from a bundled
build and starts accordingly.

If TANDEM_PACKAGED is set, --packaged is given, or the bundled
server entry exists next to the executable, tandem opens the
desktop shell in packaged mode, matching the behaviour of the
window --packaged command.

Otherwise, tandem starts the dev session, matching the
behaviour of the dev command.`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Detect the environment and start tandem.",
		ArgsUsage:   "[dir]",
		Description: runCmdDescription,
		Before:      loadConfig,
		Action:      runAction,
		Flags:       []cli.Flag{},
	}
)

func runAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	if isPackaged(cfg) {
		log.Info("detected packaged environment")

		cfg.Window.Packaged = true
		ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

		return windowAction(ctx)
	}

	log.Info("detected development environment")
	return devAction(ctx)
}

func isPackaged(cfg config.Config) bool {
	if cfg.Window.Packaged || util.Truthy(os.Getenv("TANDEM_PACKAGED")) {
		return true
	}

	return desktop.ServerEntryExists(cfg.Window.ServerEntry)
}

func init() {
	runCmd.Flags = appendUniqueFlags(runCmd.Flags, devCmd.Flags...)
	runCmd.Flags = appendUniqueFlags(runCmd.Flags, windowCmd.Flags...)

	rootApp.Commands = append(rootApp.Commands, runCmd)
}

// appendUniqueFlags appends the flags whose names are not taken yet.
func appendUniqueFlags(flags []cli.Flag, more ...cli.Flag) []cli.Flag {
	seen := make(map[string]bool, len(flags))
	for _, flag := range flags {
		seen[flag.Names()[0]] = true
	}

	for _, flag := range more {
		if seen[flag.Names()[0]] {
			continue
		}

		seen[flag.Names()[0]] = true
		flags = append(flags, flag)
	}

	return flags
}
