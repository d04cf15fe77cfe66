package conf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type testConfig struct {
	Host    string        `conf:"host"`
	Port    int           `conf:"port"`
	Enabled bool          `conf:"enabled"`
	Names   []string      `conf:"names"`
	Nested  nestedConfig  `conf:"nested"`
	Timeout time.Duration `conf:"timeout"`
}

type nestedConfig struct {
	Value string `conf:"value"`
	Count int    `conf:"count"`
}

var testDefaults = DefaultConfig{
	"host":         "localhost",
	"port":         3000,
	"enabled":      true,
	"nested.value": "default",
	"timeout":      "5s",
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(ParseOptions[testConfig]{
		Defaults: testDefaults,
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 3000, cfg.Port)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "default", cfg.Nested.Value)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestParse_Layering(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"host": "file-host",
		"port": 4000,
		"nested": {"value": "file", "count": 1}
	}`), 0o644))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"TEST_PORT=5000\nTEST_NESTED__COUNT=2\nUNRELATED=1\n",
	), 0o644))

	t.Setenv("TEST_NESTED__COUNT", "3")
	t.Setenv("TEST_ENABLED", "false")

	cfg, err := Parse(ParseOptions[testConfig]{
		Defaults:  testDefaults,
		FileName:  file,
		EnvFile:   envFile,
		EnvPrefix: "TEST_",
	})
	require.NoError(t, err)

	assert.Equal(t, "file-host", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "file", cfg.Nested.Value)
	assert.Equal(t, 3, cfg.Nested.Count)
	assert.False(t, cfg.Enabled)
}

func TestParse_MissingFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Parse(ParseOptions[testConfig]{
		Defaults:  testDefaults,
		FileName:  filepath.Join(dir, "missing.json"),
		EnvFile:   filepath.Join(dir, ".env"),
		EnvPrefix: "TEST_",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
}

func TestParse_InvalidFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"host": `), 0o644))

	_, err := Parse(ParseOptions[testConfig]{
		FileName: file,
	})
	assert.Error(t, err)
}

func TestParse_CliFlags(t *testing.T) {
	t.Setenv("TEST_PORT", "5000")

	var cfg testConfig

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port"},
			&cli.StringFlag{Name: "value"},
			&cli.StringFlag{Name: "config"},
			&cli.StringSliceFlag{Name: "name"},
		},
		Action: func(ctx *cli.Context) error {
			var err error
			cfg, err = Parse(ParseOptions[testConfig]{
				Cli: ctx,
				CliMap: map[string]string{
					"value":  "nested.value",
					"config": "",
					"name":   "names",
				},
				Defaults:  testDefaults,
				EnvPrefix: "TEST_",
			})
			return err
		},
	}

	err := app.Run([]string{"test", "--port", "6000", "--value", "flag", "--config", "x.json", "--name", "a", "--name", "b"})
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, "flag", cfg.Nested.Value)
	assert.Equal(t, []string{"a", "b"}, cfg.Names)
	assert.Equal(t, "localhost", cfg.Host)
}

func TestParse_Validate(t *testing.T) {
	errInvalid := errors.New("invalid")

	_, err := Parse(ParseOptions[testConfig]{
		Defaults: testDefaults,
		Validate: func(c testConfig) error {
			if c.Port == 3000 {
				return errInvalid
			}
			return nil
		},
	})
	assert.ErrorIs(t, err, errInvalid)
}

func TestTransformEnv(t *testing.T) {
	assert.Equal(t, "port", transformEnv("TANDEM_PORT", "TANDEM_"))
	assert.Equal(t, "start_delay_ms", transformEnv("TANDEM_START_DELAY_MS", "TANDEM_"))
	assert.Equal(t, "window.dev_delay_ms", transformEnv("TANDEM_WINDOW__DEV_DELAY_MS", "TANDEM_"))
	assert.Equal(t, "server.env.node_env", transformEnv("TANDEM_SERVER__ENV__NODE_ENV", "TANDEM_"))
}

func TestMergeDefaults(t *testing.T) {
	merged := MergeDefaults("window", DefaultConfig{"width": 1}, DefaultConfig{"height": 2})
	assert.Equal(t, DefaultConfig{"window.width": 1, "window.height": 2}, merged)

	flat := MergeDefaults("", DefaultConfig{"port": 3000}, merged)
	assert.Equal(t, DefaultConfig{"port": 3000, "window.width": 1, "window.height": 2}, flat)
}
