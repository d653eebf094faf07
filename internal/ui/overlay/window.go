// Package overlay owns the undecorated timer window and its tick loop.
package overlay

import (
	"context"
	"time"

	"impulse/internal/ui/surface"

	"fyne.io/fyne/v2"
)

// Config defines the timer window.
type Config struct {
	Title        string
	Size         fyne.Size
	TickInterval time.Duration
	AlwaysOnTop  bool
}

// Window manages the timer window.
type Window struct {
	app       fyne.App
	window    fyne.Window
	config    Config
	surface   *surface.Surface
	cancelCtx context.CancelFunc
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the timer window hosting a fresh surface.
func New(app fyne.App, config Config) *Window {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}

	window := app.NewWindow(config.Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
		window.SetTitle(config.Title)
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	window.SetFixedSize(true)
	window.SetMaster()

	content := surface.New(config.Size)
	window.SetContent(content)
	window.Resize(config.Size)
	window.CenterOnScreen()

	return &Window{
		app:     app,
		window:  window,
		config:  config,
		surface: content,
	}
}

// Surface returns the drawing surface.
func (overlay *Window) Surface() *surface.Surface {
	return overlay.surface
}

// Fyne returns the underlying fyne window.
func (overlay *Window) Fyne() fyne.Window {
	return overlay.window
}

// Show displays the window and raises it above other windows when
// configured.
func (overlay *Window) Show() {
	overlay.window.Show()
	if overlay.config.AlwaysOnTop {
		overlay.applyTopmost()
	}
}

// Close closes the window, which ends the application.
func (overlay *Window) Close() {
	overlay.window.Close()
}

// SetOnClosed sets the teardown handler.
func (overlay *Window) SetOnClosed(handler func()) {
	overlay.window.SetOnClosed(handler)
}

// StartTicking calls onTick on the UI goroutine once per tick interval until
// StopTicking.
func (overlay *Window) StartTicking(onTick func()) {
	overlay.StopTicking()
	ctx, cancel := context.WithCancel(context.Background())
	overlay.cancelCtx = cancel
	go runTicker(ctx, overlay.config.TickInterval, func() {
		fyne.Do(onTick)
	})
}

// StopTicking ends the tick loop.
func (overlay *Window) StopTicking() {
	if overlay.cancelCtx != nil {
		overlay.cancelCtx()
		overlay.cancelCtx = nil
	}
}

func runTicker(ctx context.Context, interval time.Duration, onTick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onTick()
		}
	}
}
