//go:build windows

package winapi

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procGetForegroundWin   = user32.NewProc("GetForegroundWindow")
	procPostMessageW       = user32.NewProc("PostMessageW")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

const (
	wmKeyDown = 0x0100
	wmKeyUp   = 0x0101
	wmHotkey  = 0x0312
	wmQuit    = 0x0012
)

type user32API struct{}

// New returns the user32-backed implementation.
func New() API {
	return user32API{}
}

func (user32API) RegisterHotKey(hwnd uintptr, id int16, mods uint16, vk uint16) bool {
	ret, _, _ := procRegisterHotKey.Call(hwnd, uintptr(id), uintptr(mods), uintptr(vk))
	return ret != 0
}

func (user32API) UnregisterHotKey(hwnd uintptr, id int16) bool {
	ret, _, _ := procUnregisterHotKey.Call(hwnd, uintptr(id))
	return ret != 0
}

func (user32API) ForegroundWindow() uintptr {
	hwnd, _, _ := procGetForegroundWin.Call()
	return hwnd
}

func (user32API) PostKeyEvent(hwnd uintptr, kind KeyEventKind, vk uint16) error {
	msg := uintptr(wmKeyDown)
	if kind == KeyUp {
		msg = wmKeyUp
	}
	ret, _, err := procPostMessageW.Call(hwnd, msg, uintptr(vk), 0)
	if ret == 0 {
		return fmt.Errorf("PostMessageW: %w", err)
	}
	return nil
}

// msg mirrors the Win32 MSG struct.
type msg struct {
	hwnd    uintptr
	message uint32
	wparam  uintptr
	lparam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// MessageLoop pumps the calling thread's message queue and delivers the
// id of every WM_HOTKEY to onHotkey. Hotkeys registered with a null hwnd
// post to the registering thread's queue, so the caller must lock its OS
// thread and register from it before pumping. Returns when ctx is
// canceled.
func MessageLoop(ctx context.Context, onHotkey func(id int16)) error {
	tid := windows.GetCurrentThreadId()
	go func() {
		<-ctx.Done()
		procPostThreadMessageW.Call(uintptr(tid), wmQuit, 0, 0)
	}()

	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch ret {
		case 0: // WM_QUIT
			return nil
		case ^uintptr(0):
			return fmt.Errorf("GetMessageW failed")
		}
		if m.message == wmHotkey {
			onHotkey(int16(m.wparam))
		}
	}
}
