package desktop

import (
	"context"
	"errors"
)

var (
	ErrLoadFailed = errors.New("page failed to load")
	ErrClosed     = errors.New("window closed")
)

// Window is a desktop window displaying a web page. A window is
// created hidden and only becomes visible once Show is called.
type Window interface {
	// Load navigates the window to url. It returns an error if the
	// page could not be loaded.
	Load(ctx context.Context, url string) error

	// Show reveals the window.
	Show() error

	// OpenDevTools opens the developer tools of the window.
	OpenDevTools() error

	// Done returns a channel that is closed once the window is closed.
	Done() <-chan struct{}

	// Close closes the window.
	Close() error
}

type WindowConfig struct {
	Width  int
	Height int

	// DevTools makes the developer tools available in the window.
	DevTools bool

	// ProfileDir is the browser profile directory of the window. A
	// temporary directory is used if empty.
	ProfileDir string
}

// WindowFactory creates a hidden window.
type WindowFactory func(config WindowConfig) (Window, error)
