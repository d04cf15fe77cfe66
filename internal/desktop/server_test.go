package desktop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveServerEntry_Absolute(t *testing.T) {
	path, err := ResolveServerEntry("/srv/app/index.mjs")
	require.NoError(t, err)
	assert.Equal(t, "/srv/app/index.mjs", path)
}

func TestResolveServerEntry_RelativeToExecutable(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	path, err := ResolveServerEntry("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(exe), ".output", "server", "index.mjs"), path)
}

func TestServerEntryExists(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "index.mjs")

	assert.False(t, ServerEntryExists(entry))

	require.NoError(t, os.WriteFile(entry, []byte("export {}"), 0o644))

	assert.True(t, ServerEntryExists(entry))
	assert.False(t, ServerEntryExists(dir))
}

func TestPackagedServer(t *testing.T) {
	config, err := PackagedServer("", "/srv/app/index.mjs", map[string]string{"PORT": "3000"})
	require.NoError(t, err)

	assert.Equal(t, "node", config.Cmd)
	assert.Equal(t, []string{"/srv/app/index.mjs"}, config.Args)
	assert.Equal(t, "3000", config.Env["PORT"])
	assert.True(t, config.Detached)
}
