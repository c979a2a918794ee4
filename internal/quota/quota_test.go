package quota

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/breach-runner/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGateCountsDownToZero(t *testing.T) {
	store := openTestStore(t)
	gate := New(store, 3)

	left, err := gate.Remaining()
	if err != nil {
		t.Fatalf("Remaining() failed: %v", err)
	}
	if left != 3 {
		t.Errorf("Expected 3 attempts left, got %d", left)
	}

	for i := 0; i < 3; i++ {
		ok, err := gate.Allow()
		if err != nil {
			t.Fatalf("Allow() failed: %v", err)
		}
		if !ok {
			t.Fatalf("Attempt %d should be allowed", i+1)
		}
		store.SaveRun(storage.RunEntry{Score: 100 * (i + 1)})
	}

	ok, err := gate.Allow()
	if err != nil {
		t.Fatalf("Allow() failed: %v", err)
	}
	if ok {
		t.Error("Fourth attempt should be denied")
	}
	left, _ = gate.Remaining()
	if left != 0 {
		t.Errorf("Expected 0 attempts left, got %d", left)
	}
}

func TestGateUnlimited(t *testing.T) {
	store := openTestStore(t)
	gate := New(store, Unlimited)

	for i := 0; i < 20; i++ {
		store.SaveRun(storage.RunEntry{Score: 1})
	}

	ok, err := gate.Allow()
	if err != nil {
		t.Fatalf("Allow() failed: %v", err)
	}
	if !ok {
		t.Error("Unlimited gate should always allow")
	}
	left, _ := gate.Remaining()
	if left != -1 {
		t.Errorf("Unlimited gate should report -1 remaining, got %d", left)
	}
}
