package registry

import (
	"errors"
	"testing"
)

func TestRegistry_Add(t *testing.T) {
	r := New(false)

	e, err := r.Add("F1")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if e.ID != 1 {
		t.Errorf("auto id = %d, want 1", e.ID)
	}
	if e.Spec != "F1" {
		t.Errorf("spec = %q, want F1", e.Spec)
	}

	e, err = r.Add("{CTRL}C")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if e.ID != 2 {
		t.Errorf("auto id = %d, want 2", e.ID)
	}
}

func TestRegistry_NormalizesSpecs(t *testing.T) {
	r := New(false)

	e, err := r.Add("  {ctrl}c ")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if e.Spec != "{CTRL}C" {
		t.Errorf("spec = %q, want {CTRL}C", e.Spec)
	}

	// Same spec modulo case and whitespace is a duplicate.
	if _, err := r.Add("{CTRL}C"); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("err = %v, want ErrDuplicateKey", err)
	}
	if !r.Contains("{Ctrl}c") {
		t.Error("Contains should match case-insensitively")
	}
}

func TestRegistry_DuplicateID(t *testing.T) {
	r := New(false)

	if _, err := r.AddWithID("F1", 7); err != nil {
		t.Fatalf("AddWithID failed: %v", err)
	}

	// Same id, different spec.
	if _, err := r.AddWithID("F2", 7); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}

	// Same id, same spec: the spec check wins.
	if _, err := r.AddWithID("F1", 7); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("err = %v, want ErrDuplicateKey", err)
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := New(false)
	r.Add("F1")
	r.Add("F2")

	e, err := r.Remove("f1")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if e.Spec != "F1" {
		t.Errorf("evicted spec = %q, want F1", e.Spec)
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}

	if _, err := r.Remove("F1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRegistry_Suppressed(t *testing.T) {
	r := New(true)

	r.Add("F1")
	if _, err := r.Add("F1"); err != nil {
		t.Errorf("suppressed duplicate returned error: %v", err)
	}
	if _, err := r.Remove("F9"); err != nil {
		t.Errorf("suppressed remove returned error: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}
}

func TestRegistry_EntriesOrder(t *testing.T) {
	r := New(false)
	r.Add("F1")
	r.AddWithID("F5", 9)
	r.Add("F2")

	got := r.Entries()
	want := []string{"F1", "F5", "F2"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Spec != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Spec, want[i])
		}
	}
}

func TestValidateBatch(t *testing.T) {
	tests := []struct {
		name  string
		specs []string
		ids   []int16
		want  error
	}{
		{"no ids", []string{"F1", "F1"}, nil, nil},
		{"matched lengths", []string{"F1", "F2"}, []int16{1, 2}, nil},
		{"length mismatch", []string{"F1", "ESCAPE"}, []int16{1}, ErrLengthMismatch},
		{"duplicate with ids", []string{"F1", "f1"}, []int16{1, 2}, ErrDuplicateInBatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(tt.specs, tt.ids)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateBatch err = %v, want %v", err, tt.want)
			}
		})
	}
}
