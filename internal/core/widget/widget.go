// Package widget holds the interactive screen elements of the Impulse window
// as plain data: geometry, visual state and, for text widgets, a string.
// Drawing them is the renderer's job.
package widget

import "time"

// State is the visual state a widget is rendered in.
type State int

const (
	StateDefault State = iota
	StateHover
	StateActive
	StateFocus
	StateDisabled
)

func (state State) String() string {
	switch state {
	case StateDefault:
		return "default"
	case StateHover:
		return "hover"
	case StateActive:
		return "active"
	case StateFocus:
		return "focus"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Kind identifies the widget variant.
type Kind int

const (
	KindButton Kind = iota
	KindStaticText
	KindTimerDisplay
)

// Widget is the capability shared by every screen element.
type Widget interface {
	Kind() Kind
	Bounds() Rect
	HitTest(point Point) bool
	State() State
	// Update sets the visual state and reports whether it changed.
	Update(state State) bool
}

// Desc describes a widget at construction time.
type Desc struct {
	Position Point
	Size     Size
	Text     string
}

// Base carries the geometry and visual state common to all variants.
type Base struct {
	position Point
	size     Size
	state    State
}

func newBase(desc Desc) Base {
	return Base{position: desc.Position, size: desc.Size}
}

// Bounds returns the widget rectangle.
func (base *Base) Bounds() Rect {
	return NewRect(base.position, base.size)
}

// SetBounds moves and resizes the widget.
func (base *Base) SetBounds(position Point, size Size) {
	base.position = position
	base.size = size
}

// HitTest reports whether point is inside the widget, edges included.
func (base *Base) HitTest(point Point) bool {
	return base.Bounds().Contains(point)
}

// State returns the current visual state.
func (base *Base) State() State {
	return base.state
}

// Update sets the visual state and reports whether a redraw is needed.
func (base *Base) Update(state State) bool {
	if base.state == state {
		return false
	}
	base.state = state
	return true
}

// Button is a clickable glyph.
type Button struct {
	Base
	text string
}

// NewButton creates a button from its description.
func NewButton(desc Desc) *Button {
	return &Button{Base: newBase(desc), text: desc.Text}
}

func (button *Button) Kind() Kind { return KindButton }

// Text returns the button glyph.
func (button *Button) Text() string { return button.text }

// SetText replaces the glyph and reports whether it changed.
func (button *Button) SetText(text string) bool {
	if button.text == text {
		return false
	}
	button.text = text
	return true
}

// StaticText is a non-interactive label.
type StaticText struct {
	Base
	text string
}

// NewStaticText creates a label from its description.
func NewStaticText(desc Desc) *StaticText {
	return &StaticText{Base: newBase(desc), text: desc.Text}
}

func (text *StaticText) Kind() Kind { return KindStaticText }

// Text returns the label contents.
func (text *StaticText) Text() string { return text.text }

// SetText replaces the label and reports whether it changed.
func (text *StaticText) SetText(value string) bool {
	if text.text == value {
		return false
	}
	text.text = value
	return true
}

// TimerDisplay is the circular countdown. Its bounds are the square the
// outer circle is inscribed in.
type TimerDisplay struct {
	Base
	remaining time.Duration
	duration  time.Duration
	caption   string
}

// NewTimerDisplay creates a countdown display; desc.Text becomes the caption.
func NewTimerDisplay(desc Desc) *TimerDisplay {
	return &TimerDisplay{Base: newBase(desc), caption: desc.Text}
}

func (timer *TimerDisplay) Kind() Kind { return KindTimerDisplay }

// Remaining returns the time left on the countdown.
func (timer *TimerDisplay) Remaining() time.Duration { return timer.remaining }

// Duration returns the full length of the current phase.
func (timer *TimerDisplay) Duration() time.Duration { return timer.duration }

// Caption returns the text under the countdown.
func (timer *TimerDisplay) Caption() string { return timer.caption }

// SetTime updates remaining and total time and reports whether either changed.
func (timer *TimerDisplay) SetTime(remaining, duration time.Duration) bool {
	if timer.remaining == remaining && timer.duration == duration {
		return false
	}
	timer.remaining = remaining
	timer.duration = duration
	return true
}

// SetCaption replaces the caption and reports whether it changed.
func (timer *TimerDisplay) SetCaption(caption string) bool {
	if timer.caption == caption {
		return false
	}
	timer.caption = caption
	return true
}

// Progress returns the elapsed fraction of the phase in [0, 1].
func (timer *TimerDisplay) Progress() float64 {
	if timer.duration <= 0 {
		return 1
	}
	progress := float64(timer.duration-timer.remaining) / float64(timer.duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Radius returns the outer circle radius.
func (timer *TimerDisplay) Radius() float32 {
	size := timer.size
	if size.Width < size.Height {
		return size.Width / 2
	}
	return size.Height / 2
}
