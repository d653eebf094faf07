// Package surface hosts the timer widgets on a fyne canvas and forwards
// pointer input to the application core.
package surface

import (
	"impulse/internal/core/widget"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	fynewidget "fyne.io/fyne/v2/widget"
)

// Handler receives the window events of the surface. Resize reports whether
// the handler requested a redraw itself.
type Handler interface {
	Resize(size widget.Size) bool
	Paint()
	PointerMoved(point widget.Point)
	PointerDown(point widget.Point)
	PointerUp(point widget.Point)
	PointerLeft()
}

var (
	_ desktop.Hoverable = (*Surface)(nil)
	_ desktop.Mouseable = (*Surface)(nil)
)

// Surface is a fyne widget drawing whatever its handler paints.
type Surface struct {
	fynewidget.BaseWidget
	painter *Painter
	handler Handler
	minSize fyne.Size
}

// New creates a surface with the given minimum size.
func New(minSize fyne.Size) *Surface {
	surface := &Surface{painter: NewPainter(), minSize: minSize}
	surface.ExtendBaseWidget(surface)
	return surface
}

// Painter returns the renderer the core draws with.
func (surface *Surface) Painter() *Painter {
	return surface.painter
}

// SetHandler routes events to handler.
func (surface *Surface) SetHandler(handler Handler) {
	surface.handler = handler
}

// CreateRenderer implements fyne.Widget.
func (surface *Surface) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceRenderer{surface: surface}
}

// MouseIn implements desktop.Hoverable.
func (surface *Surface) MouseIn(event *desktop.MouseEvent) {
	surface.MouseMoved(event)
}

// MouseMoved implements desktop.Hoverable.
func (surface *Surface) MouseMoved(event *desktop.MouseEvent) {
	if surface.handler != nil {
		surface.handler.PointerMoved(toPoint(event.Position))
	}
}

// MouseOut implements desktop.Hoverable.
func (surface *Surface) MouseOut() {
	if surface.handler != nil {
		surface.handler.PointerLeft()
	}
}

// MouseDown implements desktop.Mouseable.
func (surface *Surface) MouseDown(event *desktop.MouseEvent) {
	if surface.handler != nil && event.Button == desktop.MouseButtonPrimary {
		surface.handler.PointerDown(toPoint(event.Position))
	}
}

// MouseUp implements desktop.Mouseable.
func (surface *Surface) MouseUp(event *desktop.MouseEvent) {
	if surface.handler != nil && event.Button == desktop.MouseButtonPrimary {
		surface.handler.PointerUp(toPoint(event.Position))
	}
}

func toPoint(position fyne.Position) widget.Point {
	return widget.Point{X: position.X, Y: position.Y}
}

type surfaceRenderer struct {
	surface *Surface
}

func (renderer *surfaceRenderer) Layout(size fyne.Size) {
	if renderer.surface.handler == nil {
		return
	}
	if !renderer.surface.handler.Resize(widget.Size{Width: size.Width, Height: size.Height}) {
		renderer.Refresh()
	}
}

func (renderer *surfaceRenderer) MinSize() fyne.Size {
	return renderer.surface.minSize
}

func (renderer *surfaceRenderer) Refresh() {
	surface := renderer.surface
	size := surface.Size()
	if surface.handler == nil || size.Width <= 0 || size.Height <= 0 {
		return
	}
	surface.handler.Paint()
	for _, object := range surface.painter.Objects() {
		object.Refresh()
	}
}

func (renderer *surfaceRenderer) Objects() []fyne.CanvasObject {
	return renderer.surface.painter.Objects()
}

func (renderer *surfaceRenderer) Destroy() {
	renderer.surface.painter.Discard()
}
