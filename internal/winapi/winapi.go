// Package winapi is the boundary to the OS hotkey and window primitives.
// The manager only sees the API interface; the real user32 implementation
// lives behind a windows build tag, other platforms get a stub.
package winapi

// KeyEventKind selects the direction of a synthesized key event.
type KeyEventKind int

const (
	KeyDown KeyEventKind = iota
	KeyUp
)

// API exposes the OS primitives the hotkey core depends on.
type API interface {
	// RegisterHotKey claims a system-wide (modifiers, key) combination
	// for the window. A false return means the combination is already
	// owned, usually by another process.
	RegisterHotKey(hwnd uintptr, id int16, mods uint16, vk uint16) bool

	// UnregisterHotKey releases a previously claimed combination.
	UnregisterHotKey(hwnd uintptr, id int16) bool

	// ForegroundWindow returns the handle of the window that currently
	// owns the keyboard.
	ForegroundWindow() uintptr

	// PostKeyEvent queues a synthetic key event to a window.
	PostKeyEvent(hwnd uintptr, kind KeyEventKind, vk uint16) error
}
