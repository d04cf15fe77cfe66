package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/tandem/internal/process"
	"github.com/lambda-feedback/tandem/util/conf"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := conf.Parse(conf.ParseOptions[Config]{
		Defaults: DefaultConfig,
		Validate: Validate,
	})
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "main.js", cfg.Main)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 3000, cfg.Port)
	assert.True(t, cfg.AutoStart)
	assert.Equal(t, 5000*time.Millisecond, cfg.StartDelay())
	assert.True(t, cfg.KillExisting)
	assert.Empty(t, cfg.KillPatterns)
	assert.Empty(t, cfg.Server.Command)
	assert.Equal(t, DefaultServerCommand, cfg.SupervisorConfig().Server.Command)
	assert.Equal(t, 5*time.Second, cfg.Stop.Timeout)
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.False(t, cfg.Window.Packaged)
	assert.Equal(t, 2000*time.Millisecond, cfg.Window.DevDelay())
	assert.Equal(t, 3000*time.Millisecond, cfg.Window.PackagedDelay())
	assert.Equal(t, "node", cfg.Window.ServerCmd)
	assert.Equal(t, ".output/server/index.mjs", cfg.Window.ServerEntry)
}

func TestConfig_ServerCmdOverridesDefault(t *testing.T) {
	file := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(file, []byte(`{"server":{"cmd":"sleep","args":["30"]}}`), 0o644))

	cfg, err := conf.Parse(conf.ParseOptions[Config]{
		Defaults: DefaultConfig,
		FileName: file,
		Validate: Validate,
	})
	require.NoError(t, err)

	cmd, args, err := cfg.SupervisorConfig().Server.Argv()
	require.NoError(t, err)
	assert.Equal(t, "sleep", cmd)
	assert.Equal(t, []string{"30"}, args)
}

func TestConfig_ServerCommandOverridesDefault(t *testing.T) {
	file := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(file, []byte(`{"server":{"command":"yarn dev","args":["./app"]}}`), 0o644))

	cfg, err := conf.Parse(conf.ParseOptions[Config]{
		Defaults: DefaultConfig,
		FileName: file,
		Validate: Validate,
	})
	require.NoError(t, err)

	cmd, args, err := cfg.SupervisorConfig().Server.Argv()
	require.NoError(t, err)
	assert.Equal(t, "yarn", cmd)
	assert.Equal(t, []string{"dev", "./app"}, args)
}

func TestConfig_URL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000", Config{Host: "localhost", Port: 3000}.URL())
	assert.Equal(t, "http://127.0.0.1:8080", Config{Host: "127.0.0.1", Port: 8080}.URL())
	assert.Equal(t, "http://[::1]:3000", Config{Host: "::1", Port: 3000}.URL())
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Host:         "localhost",
			Port:         3000,
			StartDelayMs: 5000,
			Window:       WindowConfig{Width: 1000, Height: 600},
			Stop:         process.StopConfig{Timeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "zero delay", modify: func(c *Config) { c.StartDelayMs = 0 }},
		{name: "negative delay", modify: func(c *Config) { c.StartDelayMs = -1 }, wantErr: true},
		{name: "port zero", modify: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port too large", modify: func(c *Config) { c.Port = 65536 }, wantErr: true},
		{name: "empty host", modify: func(c *Config) { c.Host = "" }, wantErr: true},
		{name: "unknown log level", modify: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "negative window delay", modify: func(c *Config) { c.Window.DevDelayMs = -5 }, wantErr: true},
		{name: "negative stop timeout", modify: func(c *Config) { c.Stop.Timeout = -time.Second }, wantErr: true},
		{name: "zero stop timeout", modify: func(c *Config) { c.Stop.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_SupervisorConfig(t *testing.T) {
	cfg := Config{
		Main:         "main.js",
		Host:         "localhost",
		Port:         4000,
		AutoStart:    true,
		StartDelayMs: 1500,
		KillExisting: true,
		KillPatterns: []string{"nuxi"},
		Stop:         process.StopConfig{Timeout: 3 * time.Second},
	}
	cfg.Server.Command = "npx nuxi dev"
	cfg.Server.Env = map[string]string{"PORT": "5000", "NODE_ENV": "development"}
	cfg.Shell.Cmd = "tandem"

	sc := cfg.SupervisorConfig()

	assert.Equal(t, 1500*time.Millisecond, sc.StartDelay)
	assert.True(t, sc.AutoStart)
	assert.True(t, sc.KillExisting)
	assert.Equal(t, []string{"nuxi"}, sc.KillPatterns)
	assert.Equal(t, 3*time.Second, sc.StopTimeout)

	// explicit server env wins over the derived port
	assert.Equal(t, "5000", sc.Server.Env["PORT"])
	assert.Equal(t, "development", sc.Server.Env["NODE_ENV"])

	assert.Equal(t, map[string]string{
		"TANDEM_MAIN": "main.js",
		"TANDEM_HOST": "localhost",
		"TANDEM_PORT": "4000",
	}, sc.Shell.Env)

	// the config itself is left untouched
	assert.Nil(t, cfg.Shell.Env)
}

func TestConfig_DesktopConfig(t *testing.T) {
	cfg := Config{
		Host: "localhost",
		Port: 3000,
		Window: WindowConfig{
			Width:           800,
			Height:          500,
			Packaged:        true,
			DevDelayMs:      2000,
			PackagedDelayMs: 3000,
			ServerCmd:       "node",
			ServerEntry:     "/opt/app/server/index.mjs",
		},
		Stop: process.StopConfig{Timeout: time.Second},
	}

	dc, err := cfg.DesktopConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", dc.URL)
	assert.Equal(t, 800, dc.Window.Width)
	assert.True(t, dc.Packaged)
	assert.Equal(t, 3*time.Second, dc.PackagedDelay)
	assert.Equal(t, "node", dc.Server.Cmd)
	assert.Equal(t, []string{"/opt/app/server/index.mjs"}, dc.Server.Args)
	assert.Equal(t, "3000", dc.Server.Env["PORT"])
	assert.True(t, dc.Server.Detached)

	cfg.Window.Packaged = false

	dc, err = cfg.DesktopConfig()
	require.NoError(t, err)

	assert.False(t, dc.Packaged)
	assert.Empty(t, dc.Server.Cmd)
}
