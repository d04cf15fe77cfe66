//go:build !windows

package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func TestRun_ServerExitCodeIsPropagated(t *testing.T) {
	code := run(context.Background(), []string{
		"tandem", "dev",
		"--server-command", `sh -c "sleep 0.2; exit 3"`,
		"--shell-command", "sleep 10",
		"--delay", "0",
		"--kill-existing=false",
	})

	assert.Equal(t, 3, code)
}

func TestRun_ShellExitCodeIsPropagated(t *testing.T) {
	code := run(context.Background(), []string{
		"tandem", "dev",
		"--server-command", "sleep 10",
		"--shell-command", `sh -c "exit 5"`,
		"--delay", "100",
		"--kill-existing=false",
	})

	assert.Equal(t, 5, code)
}

func TestRun_InvalidServerCommand(t *testing.T) {
	code := run(context.Background(), []string{
		"tandem", "dev",
		"--server-command", "tandem-test-command-that-does-not-exist",
		"--shell-command", "sleep 10",
		"--kill-existing=false",
	})

	assert.Equal(t, 1, code)
}

func TestRun_Disabled(t *testing.T) {
	t.Setenv("TANDEM_ENABLED", "false")

	code := run(context.Background(), []string{
		"tandem", "dev",
		"--server-command", "tandem-test-command-that-does-not-exist",
	})

	assert.Equal(t, 0, code)
}

func TestRun_InvalidConfig(t *testing.T) {
	code := run(context.Background(), []string{
		"tandem", "dev", "--port", "70000",
	})

	assert.Equal(t, 1, code)
}

func TestRun_MissingConfigFile(t *testing.T) {
	code := run(context.Background(), []string{
		"tandem", "--config", "does-not-exist.json", "dev",
	})

	assert.Equal(t, 1, code)
}

func TestAppendUniqueFlags(t *testing.T) {
	flags := appendUniqueFlags(
		[]cli.Flag{&cli.IntFlag{Name: "port"}},
		&cli.IntFlag{Name: "port"},
		&cli.StringFlag{Name: "host"},
	)

	assert.Len(t, flags, 2)
}
