// Package impulse wires the session, the widgets and the pointer dispatcher
// into the event handlers the window calls.
package impulse

import (
	"fmt"

	"impulse/internal/core/dispatch"
	"impulse/internal/core/model"
	"impulse/internal/core/session"
	"impulse/internal/core/widget"

	"github.com/charmbracelet/log"
)

// Button glyphs.
const (
	GlyphSettings = "⚙"
	GlyphClose    = "✕"
	GlyphPause    = "⏸"
	GlyphResume   = "▶"
	GlyphInfo     = "ℹ"
)

// Layout metrics in device independent pixels.
const (
	ButtonSize    float32 = 32
	Padding       float32 = 5
	LabelHeight   float32 = 27
	TimerMargin   float32 = 45
	DefaultWidth  float32 = 450
	DefaultHeight float32 = 330
)

// Renderer draws widgets on a surface. BeginDraw fails when the surface is
// unusable; the app then discards the renderer state and retries on the next
// paint.
type Renderer interface {
	BeginDraw() error
	DrawButton(button *widget.Button)
	DrawText(text *widget.StaticText)
	DrawTimer(timer *widget.TimerDisplay)
	EndDraw() error
	Resize(size widget.Size)
	Discard()
}

// Hooks are the extension points behind the close, settings and info
// buttons. Nil hooks are ignored.
type Hooks struct {
	OnClose    func()
	OnSettings func()
	OnInfo     func()
}

// Options configures App.
type Options struct {
	Size       widget.Size
	Logger     *log.Logger
	Invalidate func()
}

// App owns the widget registry and routes window events to the session and
// the dispatcher. Like the session it must only be used from the UI
// goroutine.
type App struct {
	session    *session.Session
	registry   *widget.Registry
	dispatcher *dispatch.Dispatcher
	renderer   Renderer
	hooks      Hooks
	logger     *log.Logger
	invalidate func()
	size       widget.Size

	settingsButton *widget.Button
	closeButton    *widget.Button
	pauseButton    *widget.Button
	infoButton     *widget.Button
	stateText      *widget.StaticText
	taskText       *widget.StaticText
	timer          *widget.TimerDisplay
}

// New builds the widgets for sess and lays them out for options.Size.
func New(sess *session.Session, options Options) *App {
	if options.Logger == nil {
		options.Logger = log.Default()
	}
	if options.Size.Width <= 0 || options.Size.Height <= 0 {
		options.Size = widget.Size{Width: DefaultWidth, Height: DefaultHeight}
	}

	app := &App{
		session:    sess,
		registry:   widget.NewRegistry(),
		logger:     options.Logger,
		invalidate: options.Invalidate,
	}

	app.settingsButton = widget.NewButton(widget.Desc{Text: GlyphSettings})
	app.closeButton = widget.NewButton(widget.Desc{Text: GlyphClose})
	app.pauseButton = widget.NewButton(widget.Desc{Text: GlyphResume})
	app.infoButton = widget.NewButton(widget.Desc{Text: GlyphInfo})
	app.stateText = widget.NewStaticText(widget.Desc{})
	app.taskText = widget.NewStaticText(widget.Desc{})
	app.timer = widget.NewTimerDisplay(widget.Desc{})

	settingsID := app.registry.Register(app.settingsButton)
	closeID := app.registry.Register(app.closeButton)
	pauseID := app.registry.Register(app.pauseButton)
	infoID := app.registry.Register(app.infoButton)
	app.registry.Register(app.stateText)
	app.registry.Register(app.taskText)
	app.registry.Register(app.timer)

	app.registry.OnClick(closeID, func() { call(app.hooks.OnClose) })
	app.registry.OnClick(settingsID, func() { call(app.hooks.OnSettings) })
	app.registry.OnClick(infoID, func() { call(app.hooks.OnInfo) })
	app.registry.OnClick(pauseID, app.TogglePause)

	app.dispatcher = dispatch.New(app.registry, app.requestRedraw, closeID, settingsID, pauseID, infoID)
	app.dispatcher.SetLogger(options.Logger)

	app.layout(options.Size)
	app.sync()
	return app
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// SetHooks replaces the button extension points.
func (app *App) SetHooks(hooks Hooks) {
	app.hooks = hooks
}

// Session returns the driven session.
func (app *App) Session() *session.Session { return app.session }

// Registry returns the widget registry.
func (app *App) Registry() *widget.Registry { return app.registry }

// Size returns the current layout size.
func (app *App) Size() widget.Size { return app.size }

// Attach sets the renderer used by Paint.
func (app *App) Attach(renderer Renderer) {
	app.renderer = renderer
	if renderer != nil {
		renderer.Resize(app.size)
	}
	app.requestRedraw()
}

// Resize lays the widgets out for size and reports whether it changed, in
// which case a redraw has been requested.
func (app *App) Resize(size widget.Size) bool {
	if size == app.size {
		return false
	}
	app.layout(size)
	if app.renderer != nil {
		app.renderer.Resize(size)
	}
	app.requestRedraw()
	return true
}

func (app *App) layout(size widget.Size) {
	app.size = size
	button := widget.Size{Width: ButtonSize, Height: ButtonSize}
	right := size.Width - ButtonSize - Padding
	bottom := size.Height - ButtonSize - Padding

	app.settingsButton.SetBounds(widget.Point{X: Padding, Y: Padding}, button)
	app.closeButton.SetBounds(widget.Point{X: right, Y: Padding}, button)
	app.pauseButton.SetBounds(widget.Point{X: Padding, Y: bottom}, button)
	app.infoButton.SetBounds(widget.Point{X: right, Y: bottom}, button)

	labelX := Padding + ButtonSize + Padding
	labelWidth := max(size.Width-2*labelX, 0)
	app.stateText.SetBounds(widget.Point{X: labelX, Y: Padding}, widget.Size{Width: labelWidth, Height: LabelHeight})
	app.taskText.SetBounds(widget.Point{X: labelX, Y: size.Height - LabelHeight - Padding}, widget.Size{Width: labelWidth, Height: LabelHeight})

	side := max(min(size.Width, size.Height)-2*TimerMargin, 0)
	app.timer.SetBounds(
		widget.Point{X: (size.Width - side) / 2, Y: (size.Height - side) / 2},
		widget.Size{Width: side, Height: side},
	)
}

// Paint draws every widget. A renderer failure discards its state so the
// next paint rebuilds it.
func (app *App) Paint() {
	if app.renderer == nil {
		return
	}
	if err := app.renderer.BeginDraw(); err != nil {
		app.logger.Warn("begin draw", "err", err)
		app.renderer.Discard()
		return
	}

	for _, button := range []*widget.Button{app.settingsButton, app.closeButton, app.pauseButton, app.infoButton} {
		app.renderer.DrawButton(button)
	}
	app.renderer.DrawTimer(app.timer)
	app.renderer.DrawText(app.stateText)
	app.renderer.DrawText(app.taskText)

	if err := app.renderer.EndDraw(); err != nil {
		app.logger.Warn("end draw", "err", err)
		app.renderer.Discard()
	}
}

// PointerMoved handles a pointer move inside the window.
func (app *App) PointerMoved(point widget.Point) {
	app.dispatcher.PointerMoved(point)
}

// PointerDown handles a primary button press.
func (app *App) PointerDown(point widget.Point) {
	app.dispatcher.PointerDown(point)
}

// PointerUp handles a primary button release.
func (app *App) PointerUp(point widget.Point) {
	app.dispatcher.PointerUp(point)
}

// PointerLeft handles the pointer leaving the window.
func (app *App) PointerLeft() {
	app.dispatcher.PointerLeft()
}

// Tick advances the session by one interval.
func (app *App) Tick() {
	app.session.Tick()
	app.refresh()
}

// TogglePause pauses or resumes the session.
func (app *App) TogglePause() {
	app.session.TogglePause()
	app.refresh()
}

// UpdateConfig applies edited preferences to the running session.
func (app *App) UpdateConfig(config model.SessionConfig) {
	app.session.UpdateConfig(config)
	app.refresh()
}

func (app *App) refresh() {
	if app.sync() {
		app.requestRedraw()
	}
}

// sync copies session state into the widgets and reports whether any widget
// changed.
func (app *App) sync() bool {
	changed := false

	glyph := GlyphPause
	if state := app.session.State(); state == session.StateInactive || state == session.StatePaused {
		glyph = GlyphResume
	}
	changed = app.pauseButton.SetText(glyph) || changed
	changed = app.stateText.SetText(app.session.Label()) || changed
	changed = app.taskText.SetText(app.session.TaskName()) || changed
	changed = app.timer.SetTime(app.session.Remaining(), app.session.Duration()) || changed

	config := app.session.Config()
	caption := fmt.Sprintf("Shift %d of %d", app.session.WorkShift(), config.LongBreakAfter)
	changed = app.timer.SetCaption(caption) || changed
	return changed
}

func (app *App) requestRedraw() {
	if app.invalidate != nil {
		app.invalidate()
	}
}
