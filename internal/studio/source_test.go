package studio

import (
	"fmt"
	"testing"
)

func TestAddMultiCap(t *testing.T) {
	var r ReferenceSet
	for i := 0; i < 20; i++ {
		r.AddMulti(fmt.Sprintf("img-%02d", i))
	}
	if len(r.Multi) != MaxMultiImages {
		t.Fatalf("len(Multi) = %d, want %d", len(r.Multi), MaxMultiImages)
	}
	if r.Multi[0] != "img-00" {
		t.Errorf("Multi[0] = %q, want the oldest entry", r.Multi[0])
	}
	if r.Multi[11] != "img-11" {
		t.Errorf("Multi[11] = %q, want img-11", r.Multi[11])
	}
}

func TestAddMultiBatchTruncates(t *testing.T) {
	var r ReferenceSet
	r.AddMulti("a", "b")

	batch := make([]string, 15)
	for i := range batch {
		batch[i] = fmt.Sprintf("batch-%02d", i)
	}
	r.AddMulti(batch...)

	if len(r.Multi) != MaxMultiImages {
		t.Fatalf("len(Multi) = %d, want %d", len(r.Multi), MaxMultiImages)
	}
	if r.Multi[0] != "a" || r.Multi[1] != "b" {
		t.Errorf("existing entries must survive, got %v", r.Multi[:2])
	}
	if r.Multi[2] != "batch-00" {
		t.Errorf("Multi[2] = %q, want batch-00", r.Multi[2])
	}
	if r.Multi[11] != "batch-09" {
		t.Errorf("Multi[11] = %q, want batch-09 (overflow dropped)", r.Multi[11])
	}
}

func TestRemoveMulti(t *testing.T) {
	var r ReferenceSet
	r.AddMulti("a", "b", "c")

	r.RemoveMulti(1)
	if len(r.Multi) != 2 || r.Multi[0] != "a" || r.Multi[1] != "c" {
		t.Errorf("after RemoveMulti(1): %v, want [a c]", r.Multi)
	}

	r.RemoveMulti(-1)
	r.RemoveMulti(5)
	if len(r.Multi) != 2 {
		t.Errorf("out-of-range removal must be a no-op, got %v", r.Multi)
	}
}

func TestModeSwitchKeepsSlots(t *testing.T) {
	var r ReferenceSet
	r.SetSingle("single-img")
	r.SetSecond("second-img")
	r.AddMulti("m1", "m2")

	if got := r.Active(SourceMulti); len(got) != 2 || got[0] != "m1" {
		t.Errorf("Active(multi) = %v, want [m1 m2]", got)
	}
	if got := r.Active(SourceSingle); len(got) != 1 || got[0] != "single-img" {
		t.Errorf("Active(single) = %v, want [single-img]", got)
	}

	// Flipping between modes must not clear the inactive slots.
	if r.Single != "single-img" || len(r.Multi) != 2 {
		t.Errorf("mode switch mutated slots: single=%q multi=%v", r.Single, r.Multi)
	}
}

func TestActiveSingleIgnoresSecondSlot(t *testing.T) {
	var r ReferenceSet
	if got := r.Active(SourceSingle); len(got) != 0 {
		t.Errorf("Active on empty set = %v, want none", got)
	}
	// The secondary slot never feeds a generation on its own.
	r.SetSecond("second-only")
	if got := r.Active(SourceSingle); len(got) != 0 {
		t.Errorf("Active(single) = %v, want none", got)
	}
	if r.HasActive(SourceSingle) {
		t.Errorf("second slot alone must not count as active")
	}
}

func TestHasActive(t *testing.T) {
	var r ReferenceSet
	if r.HasActive(SourceSingle) || r.HasActive(SourceMulti) {
		t.Errorf("empty set should have no active sources")
	}
	r.AddMulti("m")
	if r.HasActive(SourceSingle) {
		t.Errorf("multi buffer must not count for single mode")
	}
	if !r.HasActive(SourceMulti) {
		t.Errorf("multi buffer should count for multi mode")
	}
}

func TestClearSingle(t *testing.T) {
	var r ReferenceSet
	r.SetSingle("s")
	r.SetSecond("s2")
	r.AddMulti("m")
	r.ClearSingle()
	if r.Single != "" || r.Second != "" {
		t.Errorf("ClearSingle left %q/%q", r.Single, r.Second)
	}
	if len(r.Multi) != 1 {
		t.Errorf("ClearSingle must not touch the multi buffer")
	}
}
