package desktop

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// devToolsPortFile is written by chrome into the profile directory once
// its remote debugging endpoint listens.
const devToolsPortFile = "DevToolsActivePort"

var ErrNoDevToolsTarget = errors.New("no dev tools target")

type devToolsTarget struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Frontend string `json:"devtoolsFrontendUrl"`
}

type devToolsClient struct {
	httpClient *http.Client
}

func newDevToolsClient() *devToolsClient {
	return &devToolsClient{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// FrontendURL returns the address of the dev tools frontend inspecting
// the page showing pageURL, in the browser using profileDir.
func (c *devToolsClient) FrontendURL(profileDir, pageURL string) (string, error) {
	endpoint, err := readDevToolsEndpoint(profileDir)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Get(endpoint + "/json/list")
	if err != nil {
		return "", fmt.Errorf("failed to list dev tools targets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to list dev tools targets: status %d: %s", resp.StatusCode, body)
	}

	var targets []devToolsTarget
	if err := json.NewDecoder(resp.Body).Decode(&targets); err != nil {
		return "", fmt.Errorf("failed to decode dev tools targets: %w", err)
	}

	for _, target := range targets {
		if target.Type != "page" || !strings.HasPrefix(target.URL, pageURL) {
			continue
		}

		if target.Frontend == "" {
			break
		}

		// chrome serves the frontend itself and returns a relative url
		if strings.HasPrefix(target.Frontend, "/") {
			return endpoint + target.Frontend, nil
		}

		return target.Frontend, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoDevToolsTarget, pageURL)
}

func readDevToolsEndpoint(profileDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(profileDir, devToolsPortFile))
	if err != nil {
		return "", fmt.Errorf("failed to read dev tools port: %w", err)
	}

	// the first line holds the port, the second the browser target
	port, _, _ := strings.Cut(strings.TrimSpace(string(data)), "\n")
	port = strings.TrimSpace(port)
	if port == "" {
		return "", fmt.Errorf("failed to read dev tools port: empty %s", devToolsPortFile)
	}

	return "http://127.0.0.1:" + port, nil
}
