// Package dispatch turns raw pointer positions into widget visual states and
// click notifications.
package dispatch

import (
	"impulse/internal/core/widget"

	"github.com/charmbracelet/log"
)

// Dispatcher tracks the hovered and pressed widgets. It refers to widgets by
// registry ID only; the registry owns them.
type Dispatcher struct {
	registry   *widget.Registry
	candidates []widget.ID
	hovered    widget.ID
	pressed    widget.ID
	redraw     func()
	logger     *log.Logger
}

// New creates a dispatcher hit-testing candidates front to back in the given
// order. redraw, when set, is requested after every visual state change.
func New(registry *widget.Registry, redraw func(), candidates ...widget.ID) *Dispatcher {
	return &Dispatcher{
		registry:   registry,
		candidates: append([]widget.ID(nil), candidates...),
		hovered:    widget.NoWidget,
		pressed:    widget.NoWidget,
		redraw:     redraw,
		logger:     log.Default(),
	}
}

// SetLogger replaces the debug logger.
func (dispatcher *Dispatcher) SetLogger(logger *log.Logger) {
	if logger != nil {
		dispatcher.logger = logger
	}
}

// HitTest returns the first candidate containing point, or widget.NoWidget.
func (dispatcher *Dispatcher) HitTest(point widget.Point) widget.ID {
	for _, id := range dispatcher.candidates {
		target := dispatcher.registry.Get(id)
		if target != nil && target.HitTest(point) {
			return id
		}
	}
	return widget.NoWidget
}

// Hovered returns the widget under the pointer.
func (dispatcher *Dispatcher) Hovered() widget.ID { return dispatcher.hovered }

// Pressed returns the widget the primary button went down on.
func (dispatcher *Dispatcher) Pressed() widget.ID { return dispatcher.pressed }

// PointerMoved handles a pointer move and reports whether anything changed.
func (dispatcher *Dispatcher) PointerMoved(point widget.Point) bool {
	hit := dispatcher.HitTest(point)
	changed := false

	if dispatcher.hovered != widget.NoWidget && dispatcher.hovered != hit {
		changed = dispatcher.update(dispatcher.hovered, widget.StateDefault) || changed
	}

	switch {
	case hit == widget.NoWidget:
	case hit == dispatcher.pressed:
		changed = dispatcher.update(hit, widget.StateActive) || changed
	default:
		changed = dispatcher.update(hit, widget.StateHover) || changed
	}

	dispatcher.hovered = hit
	return changed
}

// PointerLeft handles the pointer leaving the surface.
func (dispatcher *Dispatcher) PointerLeft() bool {
	if dispatcher.hovered == widget.NoWidget {
		return false
	}
	changed := dispatcher.update(dispatcher.hovered, widget.StateDefault)
	dispatcher.hovered = widget.NoWidget
	return changed
}

// PointerDown handles a primary button press.
func (dispatcher *Dispatcher) PointerDown(point widget.Point) bool {
	hit := dispatcher.HitTest(point)
	if hit == widget.NoWidget {
		return false
	}
	dispatcher.pressed = hit
	dispatcher.hovered = hit
	return dispatcher.update(hit, widget.StateActive)
}

// PointerUp handles a primary button release. A click fires only when the
// release lands on the widget the press started on.
func (dispatcher *Dispatcher) PointerUp(point widget.Point) bool {
	hit := dispatcher.HitTest(point)
	pressed := dispatcher.pressed
	dispatcher.pressed = widget.NoWidget

	if hit == widget.NoWidget {
		return false
	}
	if hit == pressed {
		dispatcher.logger.Debug("click", "widget", hit)
		dispatcher.registry.NotifyClick(hit)
	}
	return dispatcher.update(hit, widget.StateHover)
}

func (dispatcher *Dispatcher) update(id widget.ID, state widget.State) bool {
	target := dispatcher.registry.Get(id)
	if target == nil || !target.Update(state) {
		return false
	}
	if dispatcher.redraw != nil {
		dispatcher.redraw()
	}
	return true
}
