package manager

import (
	"github.com/petems/hotkey-tray/internal/keyspec"
	"github.com/petems/hotkey-tray/internal/registry"
	"github.com/petems/hotkey-tray/internal/winapi"
	"github.com/rs/zerolog"
)

// driver performs the per-entry OS calls. It derives modifiers and key
// from the stored spec on every registration; only the id is needed to
// unregister.
type driver struct {
	api  winapi.API
	hwnd uintptr
	log  zerolog.Logger
}

// register parses the entry's spec and claims the combination from the
// OS. The returned bool is the OS verdict; the error is reserved for an
// unparseable spec.
func (d driver) register(e registry.Entry) (bool, error) {
	mods, key, err := keyspec.Parse(e.Spec)
	if err != nil {
		return false, err
	}
	ok := d.api.RegisterHotKey(d.hwnd, e.ID, uint16(mods), uint16(key))
	d.log.Debug().Str("spec", e.Spec).Int16("id", e.ID).Bool("ok", ok).Msg("RegisterHotKey")
	return ok, nil
}

// unregister releases the entry's combination. Failure is ignored; the
// sweep paths are best-effort.
func (d driver) unregister(e registry.Entry) {
	ok := d.api.UnregisterHotKey(d.hwnd, e.ID)
	d.log.Debug().Str("spec", e.Spec).Int16("id", e.ID).Bool("ok", ok).Msg("UnregisterHotKey")
}
