package status

import (
	"sync"
	"testing"
)

// TestRegistryCounterReuse verifies repeated Get returns the same counter
func TestRegistryCounterReuse(t *testing.T) {
	r := NewRegistry()

	a := r.Counter("game.rounds")
	b := r.Counter("game.rounds")
	if a != b {
		t.Error("Expected cached pointer on second lookup")
	}

	r.Incr("game.rounds")
	r.Add("game.rounds", 2)
	if got := a.Load(); got != 3 {
		t.Errorf("Expected counter value 3, got %d", got)
	}
}

// TestRegistrySnapshotSorted verifies snapshots come back in name order
func TestRegistrySnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Set("game.voids", 1)
	r.Set("audio.tones", 7)
	r.Set("game.matches", 4)

	stats := r.Snapshot()
	if len(stats) != 3 {
		t.Fatalf("Expected 3 stats, got %d", len(stats))
	}

	expected := []Stat{
		{Name: "audio.tones", Value: 7},
		{Name: "game.matches", Value: 4},
		{Name: "game.voids", Value: 1},
	}
	for i, want := range expected {
		if stats[i] != want {
			t.Errorf("Stat %d: expected %+v, got %+v", i, want, stats[i])
		}
	}
}

// TestRegistryConcurrentIncrements verifies lock-free writes don't lose counts
func TestRegistryConcurrentIncrements(t *testing.T) {
	r := NewRegistry()

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				r.Incr("events.dispatched")
			}
		}()
	}
	wg.Wait()

	if got := r.Counter("events.dispatched").Load(); got != workers*perWorker {
		t.Errorf("Expected %d, got %d", workers*perWorker, got)
	}
}
