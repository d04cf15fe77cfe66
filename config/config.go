package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/lambda-feedback/tandem/internal/desktop"
	"github.com/lambda-feedback/tandem/internal/process"
	"github.com/lambda-feedback/tandem/internal/supervisor"
	"github.com/lambda-feedback/tandem/util/conf"
)

const (
	FileName  = "tandem.json"
	EnvFile   = ".env"
	EnvPrefix = "TANDEM_"

	// DefaultServerCommand starts the dev server if neither a binary
	// nor a command line is configured.
	DefaultServerCommand = "npx nuxi dev"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level" json:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format" json:"log_format"`

	// LogFile is the file to additionally write logs to
	LogFile string `conf:"log_file" json:"log_file"`

	// Enabled controls whether the dev command supervises anything
	Enabled bool `conf:"enabled" json:"enabled"`

	// Main is the entry of the desktop shell. Informational only, it
	// is passed to the shell as TANDEM_MAIN.
	Main string `conf:"main" json:"main"`

	// Host is the host of the served page
	Host string `conf:"host" json:"host"`

	// Port is the port of the served page. It is passed to the server
	// as PORT.
	Port int `conf:"port" json:"port"`

	// AutoStart controls whether the shell is launched after the delay
	AutoStart bool `conf:"auto_start" json:"auto_start"`

	// StartDelayMs is the delay between server and shell launch
	StartDelayMs int `conf:"start_delay_ms" json:"start_delay_ms"`

	// KillExisting controls whether leftover processes are killed
	// before the server is started
	KillExisting bool `conf:"kill_existing" json:"kill_existing"`

	// KillPatterns are the command line patterns of leftover processes
	KillPatterns []string `conf:"kill_patterns" json:"kill_patterns"`

	// Server is the start config of the dev server
	Server process.StartConfig `conf:"server" json:"server"`

	// Shell is the start config of the desktop shell
	Shell process.StartConfig `conf:"shell" json:"shell"`

	// Stop configures how processes are terminated
	Stop process.StopConfig `conf:"stop" json:"stop"`

	// Window is the desktop shell configuration
	Window WindowConfig `conf:"window" json:"window"`
}

type WindowConfig struct {
	Width  int `conf:"width" json:"width"`
	Height int `conf:"height" json:"height"`

	// Packaged runs the window against the bundled server
	Packaged bool `conf:"packaged" json:"packaged"`

	// DevDelayMs is the delay before loading the page in dev mode
	DevDelayMs int `conf:"dev_delay_ms" json:"dev_delay_ms"`

	// PackagedDelayMs is the delay before loading the page in
	// packaged mode
	PackagedDelayMs int `conf:"packaged_delay_ms" json:"packaged_delay_ms"`

	// ServerCmd is the binary running the bundled server
	ServerCmd string `conf:"server_cmd" json:"server_cmd"`

	// ServerEntry is the entry point of the bundled server, relative
	// to the executable
	ServerEntry string `conf:"server_entry" json:"server_entry"`

	// ProfileDir is the browser profile directory of the window
	ProfileDir string `conf:"profile_dir" json:"profile_dir"`
}

var DefaultConfig = conf.MergeDefaults("",
	conf.DefaultConfig{
		"log_level":      "info",
		"log_format":     "development",
		"enabled":        true,
		"main":           "main.js",
		"host":           "localhost",
		"port":           3000,
		"auto_start":     true,
		"start_delay_ms": 5000,
		"kill_existing":  true,
		"kill_patterns":  []string{},
		"stop.timeout":   "5s",
	},
	conf.MergeDefaults("window", conf.DefaultConfig{
		"width":             1000,
		"height":            600,
		"packaged":          false,
		"dev_delay_ms":      2000,
		"packaged_delay_ms": 3000,
		"server_cmd":        "node",
		"server_entry":      ".output/server/index.mjs",
	}),
)

// URL returns the address the window loads.
func (c Config) URL() string {
	return fmt.Sprintf("http://%s", net.JoinHostPort(c.Host, strconv.Itoa(c.Port)))
}

func (c Config) StartDelay() time.Duration {
	return time.Duration(c.StartDelayMs) * time.Millisecond
}

func (c WindowConfig) DevDelay() time.Duration {
	return time.Duration(c.DevDelayMs) * time.Millisecond
}

func (c WindowConfig) PackagedDelay() time.Duration {
	return time.Duration(c.PackagedDelayMs) * time.Millisecond
}

// SupervisorConfig derives the config of the dev session. The port is
// passed to the server, the page location and the main entry to the
// shell.
func (c Config) SupervisorConfig() supervisor.Config {
	port := strconv.Itoa(c.Port)

	server := c.Server
	if server.Cmd == "" && server.Command == "" {
		server.Command = DefaultServerCommand
	}
	server.Env = withEnv(server.Env, map[string]string{
		"PORT": port,
	})

	shell := c.Shell
	shell.Env = withEnv(shell.Env, map[string]string{
		EnvPrefix + "MAIN": c.Main,
		EnvPrefix + "HOST": c.Host,
		EnvPrefix + "PORT": port,
	})

	return supervisor.Config{
		Server:       server,
		Shell:        shell,
		StartDelay:   c.StartDelay(),
		AutoStart:    c.AutoStart,
		KillExisting: c.KillExisting,
		KillPatterns: c.KillPatterns,
		StopTimeout:  c.Stop.Timeout,
	}
}

// DesktopConfig derives the config of the desktop shell. In packaged
// mode, the bundled server entry is resolved against the executable.
func (c Config) DesktopConfig() (desktop.Config, error) {
	config := desktop.Config{
		URL: c.URL(),
		Window: desktop.WindowConfig{
			Width:      c.Window.Width,
			Height:     c.Window.Height,
			ProfileDir: c.Window.ProfileDir,
		},
		Packaged:      c.Window.Packaged,
		DevDelay:      c.Window.DevDelay(),
		PackagedDelay: c.Window.PackagedDelay(),
		StopTimeout:   c.Stop.Timeout,
	}

	if !c.Window.Packaged {
		return config, nil
	}

	server, err := desktop.PackagedServer(c.Window.ServerCmd, c.Window.ServerEntry, map[string]string{
		"PORT": strconv.Itoa(c.Port),
	})
	if err != nil {
		return config, err
	}

	config.Server = server

	return config, nil
}

func withEnv(env map[string]string, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(env)+len(extra))

	for k, v := range extra {
		merged[k] = v
	}

	// explicitly configured values win
	for k, v := range env {
		merged[k] = v
	}

	return merged
}
