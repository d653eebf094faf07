package surface

import (
	"testing"
	"time"

	"impulse/internal/core/widget"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		value time.Duration
		want  string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{59 * time.Second, "00:59"},
		{25 * time.Minute, "25:00"},
		{90*time.Minute + 5*time.Second, "90:05"},
		{1500 * time.Millisecond, "00:01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.value), tt.value.String())
	}
}

func TestStateColor(t *testing.T) {
	assert.Equal(t, uint8(0), StateColor(widget.StateDefault).B)
	assert.Equal(t, uint8(255), StateColor(widget.StateHover).B)
	assert.Equal(t, uint8(255), StateColor(widget.StateActive).G)
	assert.Equal(t, uint8(165), StateColor(widget.StateFocus).G)
	assert.Equal(t, uint8(128), StateColor(widget.StateDisabled).R)
}

func TestIconFor(t *testing.T) {
	test.NewTempApp(t)

	for _, glyph := range []string{"⚙", "✕", "⏸", "▶", "ℹ"} {
		assert.NotNil(t, IconFor(glyph), glyph)
	}
	assert.Nil(t, IconFor("?"))
}

func TestPainterRequiresSize(t *testing.T) {
	painter := NewPainter()
	assert.ErrorIs(t, painter.BeginDraw(), ErrNoSurface)
	assert.Error(t, painter.EndDraw())
}

func TestPainterFrame(t *testing.T) {
	test.NewTempApp(t)

	painter := NewPainter()
	painter.Resize(widget.Size{Width: 450, Height: 330})

	button := widget.NewButton(widget.Desc{Position: widget.Point{X: 5, Y: 5}, Size: widget.Size{Width: 32, Height: 32}, Text: "⚙"})
	plain := widget.NewButton(widget.Desc{Position: widget.Point{X: 40, Y: 5}, Size: widget.Size{Width: 32, Height: 32}, Text: "+"})
	label := widget.NewStaticText(widget.Desc{Position: widget.Point{X: 42, Y: 5}, Size: widget.Size{Width: 366, Height: 27}, Text: "Work Time"})
	timer := widget.NewTimerDisplay(widget.Desc{Position: widget.Point{X: 105, Y: 45}, Size: widget.Size{Width: 240, Height: 240}, Text: "Shift 1 of 4"})
	timer.SetTime(90*time.Second, 120*time.Second)

	require.NoError(t, painter.BeginDraw())
	painter.DrawButton(button)
	painter.DrawButton(plain)
	painter.DrawText(label)
	painter.DrawTimer(timer)
	require.NoError(t, painter.EndDraw())

	objects := painter.Objects()
	// background, 2 per button, label, 6 timer primitives
	require.Len(t, objects, 1+2+2+1+6)

	text, ok := objects[5].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "Work Time", text.Text)
	assert.True(t, text.TextStyle.Bold)

	clock, ok := objects[8].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "01:30", clock.Text)

	caption, ok := objects[9].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "Shift 1 of 4", caption.Text)

	progress, ok := objects[11].(*canvas.Rectangle)
	require.True(t, ok)
	assert.InDelta(t, 60, progress.Size().Width, 0.01)
}

func TestPainterReusesPrimitivesUntilDiscard(t *testing.T) {
	test.NewTempApp(t)

	painter := NewPainter()
	painter.Resize(widget.Size{Width: 100, Height: 100})
	button := widget.NewButton(widget.Desc{Size: widget.Size{Width: 32, Height: 32}, Text: "✕"})

	draw := func() []fyne.CanvasObject {
		require.NoError(t, painter.BeginDraw())
		painter.DrawButton(button)
		require.NoError(t, painter.EndDraw())
		return painter.Objects()
	}

	first := draw()
	button.Update(widget.StateHover)
	second := draw()
	assert.Same(t, first[1], second[1])
	frame := second[1].(*canvas.Rectangle)
	assert.Equal(t, StateColor(widget.StateHover), frame.StrokeColor)

	painter.Discard()
	third := draw()
	assert.NotSame(t, second[1], third[1])
}

type recordingHandler struct {
	events  []string
	last    widget.Point
	resized bool
}

func (handler *recordingHandler) Resize(widget.Size) bool {
	handler.events = append(handler.events, "resize")
	return handler.resized
}
func (handler *recordingHandler) Paint() { handler.events = append(handler.events, "paint") }
func (handler *recordingHandler) PointerMoved(point widget.Point) {
	handler.events = append(handler.events, "move")
	handler.last = point
}
func (handler *recordingHandler) PointerDown(point widget.Point) {
	handler.events = append(handler.events, "down")
	handler.last = point
}
func (handler *recordingHandler) PointerUp(point widget.Point) {
	handler.events = append(handler.events, "up")
	handler.last = point
}
func (handler *recordingHandler) PointerLeft() { handler.events = append(handler.events, "leave") }

func TestSurfaceForwardsPrimaryButtonOnly(t *testing.T) {
	surface := New(fyne.NewSize(300, 200))
	handler := &recordingHandler{}
	surface.SetHandler(handler)

	at := func(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
		event := &desktop.MouseEvent{Button: button}
		event.Position = fyne.NewPos(x, y)
		return event
	}

	surface.MouseIn(at(1, 2, 0))
	surface.MouseMoved(at(3, 4, 0))
	surface.MouseDown(at(5, 6, desktop.MouseButtonSecondary))
	surface.MouseDown(at(7, 8, desktop.MouseButtonPrimary))
	surface.MouseUp(at(9, 10, desktop.MouseButtonPrimary))
	surface.MouseOut()

	assert.Equal(t, []string{"move", "move", "down", "up", "leave"}, handler.events)
	assert.Equal(t, widget.Point{X: 9, Y: 10}, handler.last)
}

func TestLayoutPaintsOnce(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		name    string
		resized bool
		want    []string
	}{
		{"handler redraws on resize", true, []string{"resize"}},
		{"unchanged size repaints", false, []string{"resize", "paint"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := New(fyne.NewSize(300, 200))
			surface.Resize(fyne.NewSize(300, 200))
			renderer := surface.CreateRenderer()

			handler := &recordingHandler{resized: tt.resized}
			surface.SetHandler(handler)
			renderer.Layout(fyne.NewSize(300, 200))

			assert.Equal(t, tt.want, handler.events)
		})
	}
}

func TestSurfaceWithoutHandler(t *testing.T) {
	surface := New(fyne.NewSize(300, 200))
	assert.NotPanics(t, func() {
		surface.MouseMoved(&desktop.MouseEvent{})
		surface.MouseOut()
	})
}
