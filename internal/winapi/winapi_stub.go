//go:build !windows

package winapi

import (
	"context"
	"fmt"
)

type stubAPI struct{}

// New returns a stub implementation on platforms without the user32
// primitives. Registration always reports failure and synthesis errors.
func New() API {
	return stubAPI{}
}

func (stubAPI) RegisterHotKey(hwnd uintptr, id int16, mods uint16, vk uint16) bool {
	return false
}

func (stubAPI) UnregisterHotKey(hwnd uintptr, id int16) bool {
	return false
}

func (stubAPI) ForegroundWindow() uintptr {
	return 0
}

func (stubAPI) PostKeyEvent(hwnd uintptr, kind KeyEventKind, vk uint16) error {
	return fmt.Errorf("key event synthesis not supported on this platform")
}

// MessageLoop blocks until ctx is canceled. There is no native message
// queue to pump off Windows.
func MessageLoop(ctx context.Context, onHotkey func(id int16)) error {
	<-ctx.Done()
	return nil
}
