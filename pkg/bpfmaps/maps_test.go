package bpfmaps

import (
	"errors"
	"testing"
)

func TestHashBasics(t *testing.T) {
	h := NewHash[BackendKey, uint16](4)
	key := BackendKey{IP: 0x0a000001, Port: 80}

	if _, ok := h.Lookup(key); ok {
		t.Fatal("Lookup on empty map returned ok")
	}
	if err := h.Delete(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete on empty map = %v, want ErrNotFound", err)
	}
	if err := h.Update(key, 7); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v, ok := h.Lookup(key); !ok || v != 7 {
		t.Fatalf("Lookup = %d,%v, want 7,true", v, ok)
	}

	// Replacing swaps the whole value.
	if err := h.Update(key, 9); err != nil {
		t.Fatalf("Update replace: %v", err)
	}
	if v, _ := h.Lookup(key); v != 9 {
		t.Fatalf("Lookup after replace = %d, want 9", v)
	}
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}

	if err := h.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := h.Delete(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestHashFull(t *testing.T) {
	h := NewHash[uint32, uint32](2)
	if err := h.Update(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := h.Update(2, 2); err != nil {
		t.Fatal(err)
	}
	if err := h.Update(3, 3); !errors.Is(err, ErrMapFull) {
		t.Fatalf("insert into full map = %v, want ErrMapFull", err)
	}
	// Replacing an existing key still works at capacity.
	if err := h.Update(2, 20); err != nil {
		t.Fatalf("replace at capacity = %v", err)
	}
}

func TestLRUHashEvictsOldest(t *testing.T) {
	h := NewLRUHash[uint32, string](2)
	if err := h.Update(1, "a"); err != nil {
		t.Fatal(err)
	}
	if err := h.Update(2, "b"); err != nil {
		t.Fatal(err)
	}

	// Touch 1 so that 2 becomes the eviction candidate.
	if _, ok := h.Lookup(1); !ok {
		t.Fatal("Lookup(1) missed")
	}
	if err := h.Update(3, "c"); err != nil {
		t.Fatal(err)
	}

	if _, ok := h.Lookup(2); ok {
		t.Error("entry 2 survived eviction, want it evicted as least recently used")
	}
	if _, ok := h.Lookup(1); !ok {
		t.Error("entry 1 was evicted, want it kept")
	}
	if _, ok := h.Lookup(3); !ok {
		t.Error("entry 3 missing after insert")
	}
	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
}

func TestLRUHashReplaceAndDelete(t *testing.T) {
	h := NewLRUHash[ClientKey, TCPBackend](4)
	key := ClientKey{IP: 0x01020304, Port: 5555}

	if err := h.Update(key, TCPBackend{State: Established}); err != nil {
		t.Fatal(err)
	}
	if err := h.Update(key, TCPBackend{State: FinWait1}); err != nil {
		t.Fatal(err)
	}
	if v, _ := h.Lookup(key); v.State != FinWait1 {
		t.Errorf("State after replace = %v, want FinWait1", v.State)
	}
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1 (replace must not duplicate)", h.Len())
	}

	if err := h.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := h.Delete(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}
