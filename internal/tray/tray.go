package tray

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/getlantern/systray"
	"github.com/petems/hotkey-tray/internal/config"
	"github.com/petems/hotkey-tray/internal/manager"
	"github.com/rs/zerolog"
)

type UI struct {
	mgr     *manager.Manager
	cfg     *config.Config
	version string
	commit  string
	log     zerolog.Logger

	// Menu items
	mStartStop *systray.MenuItem
	mGlobal    *systray.MenuItem
	mHotkeys   *systray.MenuItem
}

// Status update methods for the manager to call
func (u *UI) SetRunning() {
	u.updateStatus("running")
}

func (u *UI) SetStopped() {
	u.updateStatus("stopped")
}

func (u *UI) SetError() {
	u.updateStatus("error")
}

func New(cfg *config.Config, log zerolog.Logger, version, commit string) *UI {
	return &UI{
		cfg:     cfg,
		version: version,
		commit:  commit,
		log:     log,
	}
}

// SetManager sets the manager reference (for circular dependency resolution)
func (u *UI) SetManager(mgr *manager.Manager) {
	u.mgr = mgr
}

func (u *UI) Run(ctx context.Context) error {
	systray.Run(u.onReady, u.onExit)
	return nil
}

func (u *UI) onReady() {
	u.updateStatus("running")
	systray.SetTooltip("Global hotkey dispatcher")

	// Build menu
	u.mStartStop = systray.AddMenuItem("Stop Hotkeys", "Release every registered combination")
	systray.AddSeparator()

	u.mGlobal = systray.AddMenuItemCheckbox("Global Dispatch", "Fire regardless of focused window", u.cfg.Global)

	u.mHotkeys = systray.AddMenuItem("Hotkeys", "Registered combinations")
	u.buildHotkeyMenu()

	mCopy := systray.AddMenuItem("Copy Hotkey List", "Copy registered specs to clipboard")

	systray.AddSeparator()
	mAbout := systray.AddMenuItem("About", "About HotkeyTray")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	// Event loop
	go u.handleEvents(mCopy, mAbout, mQuit)
}

func (u *UI) handleEvents(mCopy, mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-u.mStartStop.ClickedCh:
			u.toggleStartStop()
		case <-u.mGlobal.ClickedCh:
			u.toggleGlobal()
		case <-mCopy.ClickedCh:
			u.copyHotkeyList()
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func (u *UI) buildHotkeyMenu() {
	for _, e := range u.mgr.Entries() {
		item := u.mHotkeys.AddSubMenuItem(fmt.Sprintf("%d: %s", e.ID, e.Spec), "")
		item.Disable()
	}
}

func (u *UI) toggleStartStop() {
	if u.mgr.State() == manager.Started {
		if err := u.mgr.Stop(); err != nil {
			u.log.Error().Err(err).Msg("Stop failed")
			return
		}
		u.mStartStop.SetTitle("Start Hotkeys")
		u.log.Info().Msg("Hotkeys stopped from tray")
	} else {
		if err := u.mgr.Start(); err != nil {
			u.log.Error().Err(err).Msg("Start failed")
			return
		}
		u.mStartStop.SetTitle("Stop Hotkeys")
		u.log.Info().Msg("Hotkeys started from tray")
	}
}

func (u *UI) toggleGlobal() {
	u.cfg.Global = !u.cfg.Global
	u.mgr.SetLocalEmulation(!u.cfg.Global)
	if u.cfg.Global {
		u.mGlobal.Check()
		u.log.Info().Msg("Enabled global dispatch")
	} else {
		u.mGlobal.Uncheck()
		u.log.Info().Msg("Enabled emulated-local dispatch")
	}
	u.cfg.Save()
}

func (u *UI) copyHotkeyList() {
	var specs []string
	for _, e := range u.mgr.Entries() {
		specs = append(specs, fmt.Sprintf("%d\t%s", e.ID, e.Spec))
	}
	if err := clipboard.WriteAll(strings.Join(specs, "\n")); err != nil {
		u.log.Error().Err(err).Msg("Failed to copy hotkey list")
		return
	}
	u.log.Info().Int("count", len(specs)).Msg("Copied hotkey list to clipboard")
}

func (u *UI) showAbout() {
	fmt.Printf("HotkeyTray %s (%s)\nGlobal hotkey dispatcher\n", u.version, u.commit)
}

func (u *UI) onExit() {
	// Cleanup
}

// updateStatus sets the tray title with keyboard emoji and status indicator
func (u *UI) updateStatus(status string) {
	systray.SetTitle(fmt.Sprintf("⌨️ %s", emojiForStatus(status)))
}

// emojiForStatus returns the appropriate status emoji
func emojiForStatus(status string) string {
	switch status {
	case "running":
		return "🟢" // Green - hotkeys registered
	case "stopped":
		return "⚪️" // White - stopped
	case "error":
		return "🔴" // Red - registration failure
	default:
		return "🟢"
	}
}
