package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/petems/hotkey-tray/internal/config"
	"github.com/petems/hotkey-tray/internal/logging"
	"github.com/petems/hotkey-tray/internal/manager"
	"github.com/petems/hotkey-tray/internal/tray"
	"github.com/petems/hotkey-tray/internal/winapi"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func main() {
	// Load config from XDG/Library/AppData
	cfg, err := config.Load()
	if err != nil {
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize logger with configured level
	log := logging.NewWithLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create tray UI first (we'll pass it the manager below)
	trayUI := tray.New(cfg, log, Version, Commit)

	mgr := manager.New(manager.Config{
		Window:         0, // null hwnd: WM_HOTKEY is posted to the registering thread
		API:            winapi.New(),
		Logger:         log,
		LocalEmulation: !cfg.Global,
		Suppress:       cfg.SuppressErrors,
		OnAction: func(window uintptr, id int16, spec string) {
			log.Info().Int16("id", id).Str("spec", spec).Msg("Hotkey action")
		},
		OnRegistered: func(ok bool, spec string, id int16) {
			if !ok {
				log.Warn().Int16("id", id).Str("spec", spec).Msg("Combination already claimed elsewhere")
			}
		},
		OnUnregistered: func(spec string, id int16) {
			log.Debug().Int16("id", id).Str("spec", spec).Msg("Hotkey released")
		},
		Status: trayUI,
	})
	defer mgr.Close()

	trayUI.SetManager(mgr)

	// Load configured bindings into the registry (no OS calls yet)
	for _, hk := range cfg.Hotkeys {
		if hk.ID != 0 {
			_, err = mgr.AddWithID(hk.Spec, hk.ID)
		} else {
			_, err = mgr.Add(hk.Spec)
		}
		if err != nil {
			log.Fatal().Err(err).Str("spec", hk.Spec).Msg("Invalid hotkey configuration")
		}
	}

	// Registration and the message pump must share one locked OS thread:
	// a null-hwnd hotkey delivers WM_HOTKEY to the thread that registered it.
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := mgr.Start(); err != nil {
			log.Error().Err(err).Msg("Failed to start hotkeys")
			return
		}
		if err := winapi.MessageLoop(ctx, mgr.OnHotkey); err != nil {
			log.Error().Err(err).Msg("Message loop error")
		}
	}()

	log.Info().Msg("HotkeyTray starting...")

	// Setup shutdown signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Shutting down...")
		cancel()
		mgr.Close()
		os.Exit(0)
	}()

	// Start tray UI - MUST run on main thread
	if err := trayUI.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Tray error")
	}
}
