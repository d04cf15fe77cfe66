package desktop

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lambda-feedback/tandem/internal/process"
)

const (
	DefaultServerCmd   = "node"
	DefaultServerEntry = ".output/server/index.mjs"
)

// ResolveServerEntry returns the absolute path of the bundled server
// entry point. A relative entry is resolved against the directory of
// the running executable.
func ResolveServerEntry(entry string) (string, error) {
	if entry == "" {
		entry = DefaultServerEntry
	}

	if filepath.IsAbs(entry) {
		return entry, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Join(filepath.Dir(exe), entry), nil
}

// ServerEntryExists reports whether the bundled server entry point is
// present next to the executable.
func ServerEntryExists(entry string) bool {
	path, err := ResolveServerEntry(entry)
	if err != nil {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

// PackagedServer returns the start config of the bundled server. The
// server is detached from the terminal of the host.
func PackagedServer(cmd, entry string, env map[string]string) (process.StartConfig, error) {
	path, err := ResolveServerEntry(entry)
	if err != nil {
		return process.StartConfig{}, err
	}

	if cmd == "" {
		cmd = DefaultServerCmd
	}

	return process.StartConfig{
		Cmd:      cmd,
		Args:     []string{path},
		Env:      env,
		Detached: true,
	}, nil
}
