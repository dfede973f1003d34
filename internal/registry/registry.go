// Package registry owns the bidirectional id/spec mapping for hotkeys.
// It never talks to the OS; registration is the manager's job.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by registry operations.
var (
	// ErrDuplicateKey indicates the normalized spec is already registered.
	ErrDuplicateKey = errors.New("hotkey spec already registered")

	// ErrDuplicateID indicates the id is already bound to a different spec.
	ErrDuplicateID = errors.New("hotkey id already registered")

	// ErrNotFound indicates no entry exists for the spec.
	ErrNotFound = errors.New("hotkey spec not found")

	// ErrLengthMismatch indicates specs and ids differ in length.
	ErrLengthMismatch = errors.New("specs and ids length mismatch")

	// ErrDuplicateInBatch indicates a batch with explicit ids repeats a spec.
	ErrDuplicateInBatch = errors.New("duplicate spec in batch")
)

// Entry binds a hotkey id to its normalized spec string.
type Entry struct {
	ID   int16
	Spec string
}

// Registry maps hotkey ids to specs and back. No two entries share an id,
// no two entries share a normalized spec. With suppress set, every failing
// operation becomes a silent no-op instead of returning its error.
type Registry struct {
	suppress bool
	byID     map[int16]Entry
	bySpec   map[string]int16
	order    []int16
}

// New creates an empty registry with the given error policy.
func New(suppress bool) *Registry {
	return &Registry{
		suppress: suppress,
		byID:     make(map[int16]Entry),
		bySpec:   make(map[string]int16),
	}
}

// Normalize trims and uppercases a spec for storage and lookup.
func Normalize(spec string) string {
	return strings.ToUpper(strings.TrimSpace(spec))
}

// Add inserts a spec under the next free id (current count + 1).
func (r *Registry) Add(spec string) (Entry, error) {
	return r.insert(spec, int16(len(r.byID)+1))
}

// AddWithID inserts a spec under an explicit id.
func (r *Registry) AddWithID(spec string, id int16) (Entry, error) {
	return r.insert(spec, id)
}

func (r *Registry) insert(spec string, id int16) (Entry, error) {
	norm := Normalize(spec)
	if _, exists := r.bySpec[norm]; exists {
		return Entry{}, r.fail(fmt.Errorf("%w: %s", ErrDuplicateKey, norm))
	}
	if prev, exists := r.byID[id]; exists {
		return Entry{}, r.fail(fmt.Errorf("%w: id %d is bound to %s", ErrDuplicateID, id, prev.Spec))
	}
	e := Entry{ID: id, Spec: norm}
	r.byID[id] = e
	r.bySpec[norm] = id
	r.order = append(r.order, id)
	return e, nil
}

// Remove evicts the entry for a spec and returns it.
func (r *Registry) Remove(spec string) (Entry, error) {
	norm := Normalize(spec)
	id, exists := r.bySpec[norm]
	if !exists {
		return Entry{}, r.fail(fmt.Errorf("%w: %s", ErrNotFound, norm))
	}
	e := r.byID[id]
	delete(r.byID, id)
	delete(r.bySpec, norm)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return e, nil
}

// Clear drops every entry.
func (r *Registry) Clear() {
	r.byID = make(map[int16]Entry)
	r.bySpec = make(map[string]int16)
	r.order = r.order[:0]
}

// Lookup resolves an id to its entry.
func (r *Registry) Lookup(id int16) (Entry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Contains reports whether the normalized spec is registered.
func (r *Registry) Contains(spec string) bool {
	_, ok := r.bySpec[Normalize(spec)]
	return ok
}

// Entries returns the entries in insertion order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.byID)
}

// ValidateBatch checks the batch-add preconditions: with explicit ids the
// lengths must match and the normalized specs must be duplicate-free.
// Without ids duplicates are legal (later entries evict earlier ones).
func ValidateBatch(specs []string, ids []int16) error {
	if ids == nil {
		return nil
	}
	if len(specs) != len(ids) {
		return fmt.Errorf("%w: %d specs, %d ids", ErrLengthMismatch, len(specs), len(ids))
	}
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		norm := Normalize(spec)
		if _, dup := seen[norm]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateInBatch, norm)
		}
		seen[norm] = struct{}{}
	}
	return nil
}

func (r *Registry) fail(err error) error {
	if r.suppress {
		return nil
	}
	return err
}
