package manager

import (
	"github.com/petems/hotkey-tray/internal/keyspec"
	"github.com/petems/hotkey-tray/internal/registry"
	"github.com/petems/hotkey-tray/internal/winapi"
)

// OnHotkey is the inbound hook for the host message pump: it receives
// the opaque id of a fired hotkey, once per physical activation. Unknown
// ids are ignored. In global mode the action callback fires
// unconditionally; in local-emulation mode it fires only while the
// owning window is foregrounded, otherwise the keystroke is replayed to
// the real foreground window.
func (m *Manager) OnHotkey(id int16) {
	m.mu.Lock()
	if m.state != Started {
		m.mu.Unlock()
		return
	}
	e, known := m.reg.Lookup(id)
	local := m.local
	hwnd := m.drv.hwnd
	m.mu.Unlock()

	if !known {
		return
	}
	if !local {
		m.dispatch(hwnd, e)
		return
	}

	fg := m.drv.api.ForegroundWindow()
	if fg == hwnd {
		m.dispatch(hwnd, e)
		return
	}
	m.passThrough(fg, e)
}

func (m *Manager) dispatch(hwnd uintptr, e registry.Entry) {
	m.log.Debug().Str("spec", e.Spec).Int16("id", e.ID).Msg("Hotkey fired")
	if m.onAction != nil {
		m.onAction(hwnd, e.ID, e.Spec)
	}
}

// passThrough replays the entry's unmodified key to the foreground
// window as a key-down/key-up pair, so the keystroke behaves as if it
// was never intercepted. Modifiers are not replayed; the foreground
// application sees the plain key. Best-effort: every failure is
// swallowed.
func (m *Manager) passThrough(fg uintptr, e registry.Entry) {
	key, err := keyspec.ParseKey(e.Spec)
	if err != nil || key == keyspec.KeyNone {
		return
	}
	if err := m.drv.api.PostKeyEvent(fg, winapi.KeyDown, uint16(key)); err != nil {
		m.log.Debug().Err(err).Str("spec", e.Spec).Msg("Pass-through failed")
		return
	}
	if err := m.drv.api.PostKeyEvent(fg, winapi.KeyUp, uint16(key)); err != nil {
		m.log.Debug().Err(err).Str("spec", e.Spec).Msg("Pass-through failed")
	}
}
