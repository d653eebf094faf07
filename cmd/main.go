package main

import (
	"context"
	"time"

	"impulse/internal/core/impulse"
	"impulse/internal/core/session"
	"impulse/internal/core/widget"
	"impulse/internal/history"
	"impulse/internal/logging"
	"impulse/internal/platform"
	"impulse/internal/storage"
	"impulse/internal/ui/info"
	"impulse/internal/ui/overlay"
	"impulse/internal/ui/preferences"
	"impulse/internal/ui/tray"
	"impulse/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Impulse"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logging.New(logging.Config{Level: "info", Prefix: appName}).Info("single instance", "err", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	configDir, err := storage.ConfigDir(appName)
	logger := logging.New(logging.Config{Level: "info", Dir: configDir, Prefix: appName})
	defer func() {
		_ = logger.Close()
	}()
	if err != nil {
		logger.Warn("config directory unavailable", "err", err)
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("settings load failed, using defaults where needed", "err", err)
	}
	logger.SetLevel(settings.LogLevel)

	fyneApp := app.NewWithID("com.impulse.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconActive))

	sess := session.New(settings.SessionConfig(), session.Config{
		TickInterval: time.Second,
		Logger:       logger.Logger,
	})

	timerWindow := overlay.New(fyneApp, overlay.Config{
		Title:        appName,
		Size:         fyne.NewSize(impulse.DefaultWidth, impulse.DefaultHeight),
		TickInterval: time.Second,
		AlwaysOnTop:  true,
	})
	surface := timerWindow.Surface()
	core := impulse.New(sess, impulse.Options{
		Size:       widget.Size{Width: impulse.DefaultWidth, Height: impulse.DefaultHeight},
		Logger:     logger.Logger,
		Invalidate: surface.Refresh,
	})
	surface.SetHandler(core)
	core.Attach(surface.Painter())

	db, repo := openHistory(configDir, logger)
	ctx, cancel := context.WithCancel(context.Background())
	if repo != nil {
		go history.NewRecorder(repo, logger.Logger).Run(ctx, sess.Subscribe(16))
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		core.UpdateConfig(settings.SessionConfig())
		logger.Info("preferences updated", "task", settings.TaskName)
	})

	showInfo := func() {
		config := sess.Config()
		var summary *history.DaySummary
		if repo != nil {
			day, err := repo.DaySummary(info.StartOfDay(time.Now()))
			if err != nil {
				logger.Warn("history summary", "err", err)
			} else {
				summary = &day
			}
		}
		info.Show(timerWindow.Fyne(), info.Message(summary, sess.WorkShift(), config.LongBreakAfter))
	}

	core.SetHooks(impulse.Hooks{
		OnClose:    timerWindow.Close,
		OnSettings: prefsWindow.Show,
		OnInfo:     showInfo,
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Icons{
			Active: resources.MustIcon(resources.IconActive),
			Paused: resources.MustIcon(resources.IconPaused),
		}, tray.Callbacks{
			OnSettings:    prefsWindow.Show,
			OnTogglePause: core.TogglePause,
			OnQuit:        timerWindow.Close,
		})
		trayManager.Apply(session.Event{Type: session.EventStateChange, State: sess.State(), Remaining: sess.Remaining()})

		events := sess.Subscribe(8)
		go func() {
			for event := range events {
				fyne.Do(func() {
					trayManager.Apply(event)
				})
			}
		}()
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	go guard.Serve(func() {
		fyne.Do(func() {
			timerWindow.Show()
			timerWindow.Fyne().RequestFocus()
		})
	})

	timerWindow.SetOnClosed(func() {
		timerWindow.StopTicking()
		settings = settings.WithSession(sess.Config())
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Warn("settings save failed", "err", err)
		} else {
			logger.Info("settings saved")
		}
		sess.Stop()
		cancel()
		if db != nil {
			if err := db.Close(); err != nil {
				logger.Warn("history close", "err", err)
			}
		}
	})

	timerWindow.StartTicking(core.Tick)
	timerWindow.Show()
	fyneApp.Run()
}

func openHistory(configDir string, logger *logging.Logger) (*history.DB, *history.Repository) {
	if configDir == "" {
		return nil, nil
	}
	path, err := history.DefaultPath(configDir)
	if err != nil {
		logger.Warn("history unavailable", "err", err)
		return nil, nil
	}
	db, err := history.Connect(path)
	if err != nil {
		logger.Warn("history unavailable", "err", err)
		return nil, nil
	}
	if err := db.Initialize(); err != nil {
		logger.Warn("history unavailable", "err", err)
		_ = db.Close()
		return nil, nil
	}
	return db, history.NewRepository(db)
}
