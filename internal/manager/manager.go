// Package manager coordinates the hotkey registry with the OS
// registration primitives: lifecycle (start/stop/restart), per-entry
// registration reporting, and routing of fired hotkeys back to the
// application.
package manager

import (
	"errors"
	"sync"

	"github.com/petems/hotkey-tray/internal/registry"
	"github.com/petems/hotkey-tray/internal/winapi"
	"github.com/rs/zerolog"
)

var (
	// ErrAlreadyStarted indicates Start was called on a started manager.
	ErrAlreadyStarted = errors.New("hotkeys already started")

	// ErrNotStarted indicates Stop was called on a stopped manager.
	ErrNotStarted = errors.New("hotkeys not started")
)

// State is the registration lifecycle state.
type State int

const (
	Stopped State = iota
	Started
)

// ActionFunc is called when a hotkey fires and is accepted.
type ActionFunc func(window uintptr, id int16, spec string)

// RegisteredFunc reports the outcome of one OS registration attempt.
// ok is false when the OS refused the combination, typically because
// another process already owns it.
type RegisteredFunc func(ok bool, spec string, id int16)

// UnregisteredFunc is called once per entry released from the OS.
type UnregisteredFunc func(spec string, id int16)

// StatusUpdater receives coarse lifecycle status, e.g. for a tray icon.
type StatusUpdater interface {
	SetRunning()
	SetStopped()
	SetError()
}

// Config wires a Manager.
type Config struct {
	Window         uintptr
	API            winapi.API
	Logger         zerolog.Logger
	LocalEmulation bool // honor hotkeys only while Window is foregrounded
	Suppress       bool // silent no-ops instead of errors
	OnAction       ActionFunc
	OnRegistered   RegisteredFunc
	OnUnregistered UnregisteredFunc
	Status         StatusUpdater // optional, can be nil
}

// Manager owns the registry and the register/unregister lifecycle
// against the OS hotkey table.
type Manager struct {
	mu       sync.Mutex
	reg      *registry.Registry
	drv      driver
	log      zerolog.Logger
	local    bool
	suppress bool
	state    State

	onAction       ActionFunc
	onRegistered   RegisteredFunc
	onUnregistered UnregisteredFunc
	status         StatusUpdater
}

// New creates a stopped manager with an empty registry.
func New(cfg Config) *Manager {
	return &Manager{
		reg:            registry.New(false),
		drv:            driver{api: cfg.API, hwnd: cfg.Window, log: cfg.Logger},
		log:            cfg.Logger,
		local:          cfg.LocalEmulation,
		suppress:       cfg.Suppress,
		onAction:       cfg.OnAction,
		onRegistered:   cfg.OnRegistered,
		onUnregistered: cfg.OnUnregistered,
		status:         cfg.Status,
	}
}

// Add registers a spec under the next free id. While started, the entry
// is claimed from the OS immediately.
func (m *Manager) Add(spec string) (registry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.reg.Add(spec)
	if err != nil {
		return registry.Entry{}, m.fail(err)
	}
	m.registerLive(e)
	return e, nil
}

// AddWithID registers a spec under an explicit id.
func (m *Manager) AddWithID(spec string, id int16) (registry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.reg.AddWithID(spec, id)
	if err != nil {
		return registry.Entry{}, m.fail(err)
	}
	m.registerLive(e)
	return e, nil
}

// AddBatch registers several specs at once. With explicit ids the batch
// must be duplicate-free and the same length as specs; without ids a
// duplicate spec silently evicts the entry it collides with. replace
// first clears the registry, unregistering from the OS when started.
func (m *Manager) AddBatch(specs []string, ids []int16, replace bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := registry.ValidateBatch(specs, ids); err != nil {
		return m.fail(err)
	}
	if replace {
		m.removeAllLocked(true)
	}
	for i, spec := range specs {
		var (
			e   registry.Entry
			err error
		)
		if ids == nil {
			if m.reg.Contains(spec) {
				m.evictLocked(spec)
			}
			e, err = m.reg.Add(spec)
		} else {
			e, err = m.reg.AddWithID(spec, ids[i])
		}
		if err != nil {
			return m.fail(err)
		}
		m.registerLive(e)
	}
	return nil
}

// Remove evicts the entry for a spec, releasing its OS registration
// when started.
func (m *Manager) Remove(spec string) (registry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.reg.Contains(spec) {
		_, err := m.reg.Remove(spec)
		return registry.Entry{}, m.fail(err)
	}
	return m.evictLocked(spec), nil
}

// RemoveAll unregisters every entry from the OS, emitting one
// unregistration notification per entry, and optionally clears the
// registry. OS failures are swallowed per entry; the sweep is
// best-effort and idempotent.
func (m *Manager) RemoveAll(clear bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeAllLocked(clear)
}

// Start claims every registry entry from the OS and transitions to
// Started. An unparseable spec aborts the start: already claimed entries
// are swept back out and the parse error surfaces. An OS refusal does
// not abort; it is reported through the registration-result callback.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startLocked()
}

// Stop releases every OS registration and transitions to Stopped. The
// entries survive in the registry.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopLocked()
}

// Restart stops (when started) and starts again.
func (m *Manager) Restart() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Started {
		if err := m.stopLocked(); err != nil {
			return err
		}
	}
	return m.startLocked()
}

// Close forces a stop and clears the registry. Safe to call in any
// state.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Started {
		m.removeAllLocked(false)
		m.state = Stopped
	}
	m.reg.Clear()
	return nil
}

// SetLocalEmulation toggles between global dispatch and foreground-only
// dispatch with pass-through.
func (m *Manager) SetLocalEmulation(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.local = on
}

// State returns the lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Entries returns a snapshot of the registry in insertion order.
func (m *Manager) Entries() []registry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reg.Entries()
}

func (m *Manager) startLocked() error {
	if m.state == Started {
		return m.fail(ErrAlreadyStarted)
	}
	for _, e := range m.reg.Entries() {
		ok, err := m.drv.register(e)
		if err != nil {
			m.log.Error().Err(err).Str("spec", e.Spec).Msg("Start aborted, sweeping registrations")
			m.removeAllLocked(false)
			if m.status != nil {
				m.status.SetError()
			}
			return m.fail(err)
		}
		m.notifyRegistered(ok, e)
	}
	m.state = Started
	if m.status != nil {
		m.status.SetRunning()
	}
	m.log.Info().Int("entries", m.reg.Len()).Msg("Hotkeys started")
	return nil
}

func (m *Manager) stopLocked() error {
	if m.state == Stopped {
		return m.fail(ErrNotStarted)
	}
	m.removeAllLocked(false)
	m.state = Stopped
	if m.status != nil {
		m.status.SetStopped()
	}
	m.log.Info().Msg("Hotkeys stopped")
	return nil
}

func (m *Manager) removeAllLocked(clear bool) {
	for _, e := range m.reg.Entries() {
		m.drv.unregister(e)
		m.notifyUnregistered(e)
	}
	if clear {
		m.reg.Clear()
	}
}

// evictLocked removes one entry and releases its OS registration when
// started. The spec must be present.
func (m *Manager) evictLocked(spec string) registry.Entry {
	e, _ := m.reg.Remove(spec)
	if m.state == Started {
		m.drv.unregister(e)
		m.notifyUnregistered(e)
	}
	return e
}

// registerLive claims an entry added while started. A spec that fails to
// parse is reported as a failed registration, not an error; it will fail
// the next full Start.
func (m *Manager) registerLive(e registry.Entry) {
	if m.state != Started {
		return
	}
	ok, err := m.drv.register(e)
	if err != nil {
		m.log.Warn().Err(err).Str("spec", e.Spec).Msg("Live registration failed")
		ok = false
	}
	m.notifyRegistered(ok, e)
}

func (m *Manager) notifyRegistered(ok bool, e registry.Entry) {
	if !ok {
		m.log.Warn().Str("spec", e.Spec).Int16("id", e.ID).Msg("Combination refused by OS")
	}
	if m.onRegistered != nil {
		m.onRegistered(ok, e.Spec, e.ID)
	}
}

func (m *Manager) notifyUnregistered(e registry.Entry) {
	if m.onUnregistered != nil {
		m.onUnregistered(e.Spec, e.ID)
	}
}

// fail applies the per-instance error policy.
func (m *Manager) fail(err error) error {
	if m.suppress {
		return nil
	}
	return err
}
