package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/zserge/lorca"
)

type lorcaWindow struct {
	ui       lorca.UI
	config   WindowConfig
	devTools bool

	// profileDir is removed on close if the window created it
	profileDir string
	tempDir    bool

	lock       sync.Mutex
	url        string
	inspector  lorca.UI
	devToolsFn func(profileDir, pageURL string) (string, error)
}

// NewLorcaWindow opens a chrome app-mode window. The window starts
// minimised on a blank page.
func NewLorcaWindow(config WindowConfig) (Window, error) {
	profileDir, tempDir := config.ProfileDir, false

	// the profile has to be known to find the dev tools endpoint
	if profileDir == "" {
		dir, err := os.MkdirTemp("", "tandem")
		if err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}

		profileDir, tempDir = dir, true
	}

	ui, err := lorca.New("", profileDir, config.Width, config.Height)
	if err != nil {
		if tempDir {
			os.RemoveAll(profileDir)
		}
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w := &lorcaWindow{
		ui:         ui,
		config:     config,
		devTools:   config.DevTools,
		profileDir: profileDir,
		tempDir:    tempDir,
		devToolsFn: newDevToolsClient().FrontendURL,
	}

	if err := ui.SetBounds(lorca.Bounds{WindowState: lorca.WindowStateMinimized}); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to hide window: %w", err)
	}

	return w, nil
}

func (w *lorcaWindow) Load(ctx context.Context, url string) error {
	result := make(chan error, 1)

	go func() {
		result <- w.load(url)
	}()

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *lorcaWindow) load(url string) error {
	if err := w.ui.Load(url); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLoadFailed, url, err)
	}

	// chrome renders its own error page if the navigation failed
	href := w.ui.Eval("window.location.href")
	if err := href.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLoadFailed, url, err)
	}

	if strings.HasPrefix(href.String(), "chrome-error://") {
		return fmt.Errorf("%w: %s", ErrLoadFailed, url)
	}

	w.lock.Lock()
	w.url = url
	w.lock.Unlock()

	return nil
}

func (w *lorcaWindow) Show() error {
	return w.ui.SetBounds(lorca.Bounds{WindowState: lorca.WindowStateNormal})
}

// OpenDevTools opens the dev tools of the loaded page in a separate
// window.
func (w *lorcaWindow) OpenDevTools() error {
	if !w.devTools {
		return errors.New("window was created without dev tools")
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if w.url == "" {
		return errors.New("no page loaded")
	}

	if w.inspector != nil {
		return nil
	}

	frontend, err := w.devToolsFn(w.profileDir, w.url)
	if err != nil {
		return err
	}

	inspector, err := lorca.New(frontend, "", w.config.Width, w.config.Height)
	if err != nil {
		return fmt.Errorf("failed to open dev tools: %w", err)
	}

	w.inspector = inspector

	return nil
}

func (w *lorcaWindow) Done() <-chan struct{} {
	return w.ui.Done()
}

func (w *lorcaWindow) Close() error {
	w.lock.Lock()
	inspector := w.inspector
	w.inspector = nil
	w.lock.Unlock()

	if inspector != nil {
		inspector.Close()
	}

	err := w.ui.Close()

	if w.tempDir {
		os.RemoveAll(w.profileDir)
	}

	return err
}
