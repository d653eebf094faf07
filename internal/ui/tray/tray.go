package tray

import (
	"fmt"
	"time"

	"impulse/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnSettings    func()
	OnTogglePause func()
	OnQuit        func()
}

// Icons are the tray artwork for running and idle sessions.
type Icons struct {
	Active fyne.Resource
	Paused fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	callbacks   Callbacks
	icons       Icons
	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		icons:     icons,
		paused:    true,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	manager.refreshMenu()
	manager.refreshIcon()
	return manager
}

// Apply reflects a session event in the menu and the icon.
func (manager *Manager) Apply(event session.Event) {
	switch event.Type {
	case session.EventStateChange:
		manager.setPaused(!event.State.Active(), event.State)
		manager.SetStatus(StatusText(event.State, event.Remaining))
	case session.EventProgress:
		if event.Remaining%time.Minute == 0 || event.Remaining < time.Minute {
			manager.SetStatus(StatusText(event.State, event.Remaining))
		}
	}
}

// StatusText formats the tray status line.
func StatusText(state session.State, remaining time.Duration) string {
	seconds := int(remaining.Seconds())
	clock := fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
	switch state {
	case session.StateWorkShift:
		return "work " + clock
	case session.StateShortBreak:
		return "short break " + clock
	case session.StateLongBreak:
		return "long break " + clock
	case session.StatePaused:
		return "paused " + clock
	default:
		return "idle"
	}
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	if manager.statusLabel == status {
		return
	}
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) setPaused(paused bool, state session.State) {
	manager.paused = paused
	switch state {
	case session.StateInactive:
		manager.pauseItem.Label = "Start"
	case session.StatePaused:
		manager.pauseItem.Label = "Resume"
	default:
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshIcon()
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Active
	if manager.paused {
		icon = manager.icons.Paused
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu("Impulse",
			manager.statusItem,
			manager.pauseItem,
			fyne.NewMenuItem("Settings", func() {
				if manager.callbacks.OnSettings != nil {
					manager.callbacks.OnSettings()
				}
			}),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Quit", func() {
				if manager.callbacks.OnQuit != nil {
					manager.callbacks.OnQuit()
				}
			}),
		))
	}
}
