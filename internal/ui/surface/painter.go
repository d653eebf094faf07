package surface

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"impulse/internal/core/widget"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

// ErrNoSurface is returned by BeginDraw before the surface has been laid out.
var ErrNoSurface = errors.New("surface has no size")

var (
	backgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	textColor       = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	outerColor      = color.NRGBA{R: 102, G: 161, B: 255, A: 255}
	innerColor      = color.NRGBA{R: 173, G: 207, B: 255, A: 255}
	trackColor      = color.NRGBA{R: 230, G: 236, B: 245, A: 255}
)

const (
	ringWidth     float32 = 6
	barHeight     float32 = 4
	timeTextSize  float32 = 42
	captionSize   float32 = 13
	stateTextSize float32 = 16
	taskTextSize  float32 = 14
)

// StateColor maps a widget visual state to its highlight colour.
func StateColor(state widget.State) color.NRGBA {
	switch state {
	case widget.StateHover:
		return color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	case widget.StateActive:
		return color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	case widget.StateFocus:
		return color.NRGBA{R: 255, G: 165, B: 0, A: 255}
	case widget.StateDisabled:
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	default:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}
}

// IconFor returns the theme icon drawn for a button glyph, or nil when the
// glyph is drawn as text.
func IconFor(glyph string) fyne.Resource {
	switch glyph {
	case "⚙":
		return theme.SettingsIcon()
	case "✕":
		return theme.CancelIcon()
	case "⏸":
		return theme.MediaPauseIcon()
	case "▶":
		return theme.MediaPlayIcon()
	case "ℹ":
		return theme.InfoIcon()
	default:
		return nil
	}
}

// FormatDuration renders remaining time as mm:ss.
func FormatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

type buttonView struct {
	frame *canvas.Rectangle
	icon  *canvas.Image
	glyph *canvas.Text
}

type timerView struct {
	ring     *canvas.Circle
	fill     *canvas.Circle
	time     *canvas.Text
	caption  *canvas.Text
	track    *canvas.Rectangle
	progress *canvas.Rectangle
}

// Painter draws core widgets with fyne canvas primitives. Primitives are
// kept per widget between frames and dropped by Discard.
type Painter struct {
	size       widget.Size
	background *canvas.Rectangle
	buttons    map[*widget.Button]*buttonView
	texts      map[*widget.StaticText]*canvas.Text
	timers     map[*widget.TimerDisplay]*timerView
	frame      []fyne.CanvasObject
	objects    []fyne.CanvasObject
	drawing    bool
}

// NewPainter creates an empty painter.
func NewPainter() *Painter {
	painter := &Painter{}
	painter.Discard()
	return painter
}

// Objects returns the primitives of the last completed frame.
func (painter *Painter) Objects() []fyne.CanvasObject {
	return painter.objects
}

// Resize sets the drawing area.
func (painter *Painter) Resize(size widget.Size) {
	painter.size = size
}

// BeginDraw starts a frame.
func (painter *Painter) BeginDraw() error {
	if painter.size.Width <= 0 || painter.size.Height <= 0 {
		return ErrNoSurface
	}
	if painter.background == nil {
		painter.background = canvas.NewRectangle(backgroundColor)
	}
	painter.background.Move(fyne.NewPos(0, 0))
	painter.background.Resize(fyne.NewSize(painter.size.Width, painter.size.Height))
	painter.frame = append(painter.frame[:0:0], painter.background)
	painter.drawing = true
	return nil
}

// DrawButton draws a button glyph over a state-coloured frame.
func (painter *Painter) DrawButton(button *widget.Button) {
	view, ok := painter.buttons[button]
	if !ok {
		view = &buttonView{
			frame: canvas.NewRectangle(color.Transparent),
			icon:  canvas.NewImageFromResource(nil),
			glyph: canvas.NewText("", textColor),
		}
		view.frame.CornerRadius = 6
		view.icon.FillMode = canvas.ImageFillContain
		view.glyph.Alignment = fyne.TextAlignCenter
		painter.buttons[button] = view
	}

	bounds := button.Bounds()
	position, size := toFyne(bounds)
	state := button.State()

	view.frame.Move(position)
	view.frame.Resize(size)
	view.frame.StrokeColor = StateColor(state)
	view.frame.StrokeWidth = 2
	view.frame.FillColor = color.Transparent
	if state != widget.StateDefault {
		fill := StateColor(state)
		fill.A = 48
		view.frame.FillColor = fill
	}
	painter.frame = append(painter.frame, view.frame)

	if icon := IconFor(button.Text()); icon != nil {
		inset := size.Width / 6
		view.icon.Resource = icon
		view.icon.Move(position.AddXY(inset, inset))
		view.icon.Resize(fyne.NewSize(size.Width-2*inset, size.Height-2*inset))
		painter.frame = append(painter.frame, view.icon)
		return
	}
	view.glyph.Text = button.Text()
	view.glyph.Color = StateColor(state)
	view.glyph.TextSize = size.Height / 2
	view.glyph.Move(position)
	view.glyph.Resize(size)
	painter.frame = append(painter.frame, view.glyph)
}

// DrawText draws a static label centred in its bounds.
func (painter *Painter) DrawText(text *widget.StaticText) {
	label, ok := painter.texts[text]
	if !ok {
		label = canvas.NewText("", textColor)
		label.Alignment = fyne.TextAlignCenter
		painter.texts[text] = label
	}

	position, size := toFyne(text.Bounds())
	label.Text = text.Text()
	label.Color = textColor
	if text.State() == widget.StateDisabled {
		label.Color = StateColor(widget.StateDisabled)
	}
	label.TextSize = taskTextSize
	label.TextStyle = fyne.TextStyle{}
	if position.Y+size.Height/2 < painter.size.Height/2 {
		label.TextSize = stateTextSize
		label.TextStyle = fyne.TextStyle{Bold: true}
	}
	label.Move(position)
	label.Resize(size)
	painter.frame = append(painter.frame, label)
}

// DrawTimer draws the countdown ring, the mm:ss text, the caption and a
// progress bar under the ring.
func (painter *Painter) DrawTimer(timer *widget.TimerDisplay) {
	view, ok := painter.timers[timer]
	if !ok {
		view = &timerView{
			ring:     canvas.NewCircle(innerColor),
			fill:     canvas.NewCircle(outerColor),
			time:     canvas.NewText("", textColor),
			caption:  canvas.NewText("", textColor),
			track:    canvas.NewRectangle(trackColor),
			progress: canvas.NewRectangle(outerColor),
		}
		view.ring.StrokeColor = outerColor
		view.ring.StrokeWidth = ringWidth
		view.time.Alignment = fyne.TextAlignCenter
		view.time.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
		view.time.TextSize = timeTextSize
		view.caption.Alignment = fyne.TextAlignCenter
		view.caption.TextSize = captionSize
		painter.timers[timer] = view
	}

	bounds := timer.Bounds()
	center := bounds.Center()
	radius := timer.Radius()
	progress := float32(timer.Progress())

	view.ring.Position1 = fyne.NewPos(center.X-radius, center.Y-radius)
	view.ring.Position2 = fyne.NewPos(center.X+radius, center.Y+radius)

	inner := (radius - ringWidth) * progress
	fill := outerColor
	fill.A = 96
	view.fill.FillColor = fill
	view.fill.Position1 = fyne.NewPos(center.X-inner, center.Y-inner)
	view.fill.Position2 = fyne.NewPos(center.X+inner, center.Y+inner)

	view.time.Text = FormatDuration(timer.Remaining())
	view.time.Move(fyne.NewPos(center.X-radius, center.Y-timeTextSize))
	view.time.Resize(fyne.NewSize(2*radius, timeTextSize))

	view.caption.Text = timer.Caption()
	view.caption.Move(fyne.NewPos(center.X-radius, center.Y+captionSize/2))
	view.caption.Resize(fyne.NewSize(2*radius, 2*captionSize))

	barY := bounds.Max.Y + ringWidth
	view.track.Move(fyne.NewPos(bounds.Min.X, barY))
	view.track.Resize(fyne.NewSize(2*radius, barHeight))
	view.progress.Move(fyne.NewPos(bounds.Min.X, barY))
	view.progress.Resize(fyne.NewSize(2*radius*progress, barHeight))

	painter.frame = append(painter.frame, view.ring, view.fill, view.time, view.caption, view.track, view.progress)
}

// EndDraw publishes the frame.
func (painter *Painter) EndDraw() error {
	if !painter.drawing {
		return errors.New("end draw without begin draw")
	}
	painter.drawing = false
	painter.objects = painter.frame
	painter.frame = nil
	return nil
}

// Discard drops every cached primitive.
func (painter *Painter) Discard() {
	painter.background = nil
	painter.buttons = make(map[*widget.Button]*buttonView)
	painter.texts = make(map[*widget.StaticText]*canvas.Text)
	painter.timers = make(map[*widget.TimerDisplay]*timerView)
	painter.frame = nil
	painter.drawing = false
}

func toFyne(rect widget.Rect) (fyne.Position, fyne.Size) {
	size := rect.Size()
	return fyne.NewPos(rect.Min.X, rect.Min.Y), fyne.NewSize(size.Width, size.Height)
}
