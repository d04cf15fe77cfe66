package desktop

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const targetList = `[
	{"type": "service_worker", "url": "http://localhost:3000/sw.js", "devtoolsFrontendUrl": "/devtools/worker"},
	{"type": "page", "url": "http://localhost:3000/", "devtoolsFrontendUrl": "/devtools/inspector.html?ws=127.0.0.1/devtools/page/A1"}
]`

func TestDevToolsClient_FrontendURL(t *testing.T) {
	endpoint := newTargetServer(t, targetList)
	dir := writePortFile(t, endpoint)

	frontend, err := newDevToolsClient().FrontendURL(dir, testURL)
	require.NoError(t, err)

	assert.Equal(t, endpoint.String()+"/devtools/inspector.html?ws=127.0.0.1/devtools/page/A1", frontend)
}

func TestDevToolsClient_FrontendURL_NoMatchingPage(t *testing.T) {
	endpoint := newTargetServer(t, targetList)
	dir := writePortFile(t, endpoint)

	_, err := newDevToolsClient().FrontendURL(dir, "http://localhost:4000")
	assert.ErrorIs(t, err, ErrNoDevToolsTarget)
}

func TestDevToolsClient_FrontendURL_MissingPortFile(t *testing.T) {
	_, err := newDevToolsClient().FrontendURL(t.TempDir(), testURL)
	assert.ErrorContains(t, err, "failed to read dev tools port")
}

func TestDevToolsClient_FrontendURL_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	endpoint, err := url.Parse(server.URL)
	require.NoError(t, err)

	_, err = newDevToolsClient().FrontendURL(writePortFile(t, endpoint), testURL)
	assert.ErrorContains(t, err, "status 503")
}

func TestLorcaWindow_OpenDevTools_RequiresLoadedPage(t *testing.T) {
	called := false
	frontendURL := func(string, string) (string, error) {
		called = true
		return "", nil
	}

	w := &lorcaWindow{devTools: true, devToolsFn: frontendURL}

	assert.Error(t, w.OpenDevTools())
	assert.False(t, called)
}

func TestLorcaWindow_OpenDevTools_Disabled(t *testing.T) {
	w := &lorcaWindow{url: testURL}

	assert.Error(t, w.OpenDevTools())
}

func newTargetServer(t *testing.T, body string) *url.URL {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/list" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	endpoint, err := url.Parse(server.URL)
	require.NoError(t, err)

	return endpoint
}

func writePortFile(t *testing.T, endpoint *url.URL) string {
	t.Helper()

	dir := t.TempDir()
	content := endpoint.Port() + "\n/devtools/browser/B1\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, devToolsPortFile), []byte(content), 0o644))

	return dir
}
