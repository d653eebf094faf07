package preferences

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	work      *widget.Entry
	short     *widget.Entry
	long      *widget.Entry
	after     *widget.Entry
	task      *widget.Entry
	autoStart *widget.Check
	status    *widget.Label
}

// FormValues are the raw entry texts of the preferences form.
type FormValues struct {
	WorkDuration       string
	ShortBreakDuration string
	LongBreakDuration  string
	LongBreakAfter     string
	TaskName           string
	AutoStart          bool
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Impulse Settings")

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		work:      widget.NewEntry(),
		short:     widget.NewEntry(),
		long:      widget.NewEntry(),
		after:     widget.NewEntry(),
		task:      widget.NewEntry(),
		autoStart: widget.NewCheck("Start the first work shift on launch", nil),
		status:    widget.NewLabel(""),
	}
	prefs.task.SetPlaceHolder("What are you working on?")
	for _, entry := range []*widget.Entry{prefs.work, prefs.short, prefs.long} {
		entry.SetPlaceHolder("25m, 90s, 1h")
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work shift"), prefs.work),
		container.NewHBox(widget.NewLabel("Short break"), prefs.short),
		container.NewHBox(widget.NewLabel("Long break"), prefs.long),
		container.NewHBox(widget.NewLabel("Long break after"), prefs.after, widget.NewLabel("shifts")),
		prefs.autoStart,
		widget.NewLabelWithStyle("Task", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.task,
		prefs.status,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 360))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.status.SetText("")
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.work.SetText(FormatDuration(settings.WorkDuration))
	prefs.short.SetText(FormatDuration(settings.ShortBreakDuration))
	prefs.long.SetText(FormatDuration(settings.LongBreakDuration))
	prefs.after.SetText(strconv.Itoa(settings.LongBreakAfter))
	prefs.task.SetText(settings.TaskName)
	prefs.autoStart.SetChecked(settings.AutoStart)
}

func (prefs *Window) handleSave() {
	settings, err := ApplyForm(prefs.settings, FormValues{
		WorkDuration:       prefs.work.Text,
		ShortBreakDuration: prefs.short.Text,
		LongBreakDuration:  prefs.long.Text,
		LongBreakAfter:     prefs.after.Text,
		TaskName:           prefs.task.Text,
		AutoStart:          prefs.autoStart.Checked,
	})
	if err != nil {
		prefs.status.SetText(err.Error())
		return
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// ApplyForm validates form values and returns settings updated with them.
// Settings are returned unchanged together with an error when any field is
// invalid.
func ApplyForm(settings Settings, values FormValues) (Settings, error) {
	updated := settings

	durations := []struct {
		name  string
		value string
		field *time.Duration
	}{
		{"work shift", values.WorkDuration, &updated.WorkDuration},
		{"short break", values.ShortBreakDuration, &updated.ShortBreakDuration},
		{"long break", values.LongBreakDuration, &updated.LongBreakDuration},
	}
	for _, item := range durations {
		parsed, err := time.ParseDuration(strings.TrimSpace(item.value))
		if err != nil || parsed <= 0 {
			return settings, fmt.Errorf("%s must be a positive duration such as 25m or 90s", item.name)
		}
		*item.field = parsed
	}

	after, ok := parsePositiveInt(values.LongBreakAfter)
	if !ok {
		return settings, errors.New("long break after must be a positive number of shifts")
	}
	updated.LongBreakAfter = after
	if updated.WorkShiftCount > after {
		updated.WorkShiftCount = 1
	}

	updated.TaskName = strings.TrimSpace(values.TaskName)
	updated.AutoStart = values.AutoStart
	return updated, nil
}

// FormatDuration renders a duration for the form, dropping zero trailing
// units: 25m, 1h, 1m30s.
func FormatDuration(value time.Duration) string {
	text := value.String()
	if strings.HasSuffix(text, "m0s") {
		text = strings.TrimSuffix(text, "0s")
	}
	if strings.HasSuffix(text, "h0m") {
		text = strings.TrimSuffix(text, "0m")
	}
	return text
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
