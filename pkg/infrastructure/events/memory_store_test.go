package events

import (
	"fmt"
	"testing"
)

func TestInMemoryEventStore_AppendAssignsVersions(t *testing.T) {
	store := NewInMemoryEventStore()

	for i := 0; i < 3; i++ {
		e := NewEvent("stock.adjusted", "salt", fmt.Sprintf("payload-%d", i))
		if err := store.AppendEvent("salt", e); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	evts, err := store.ReadEvents("salt", 0)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(evts) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evts))
	}
	for i, e := range evts {
		if e.Version() != i+1 {
			t.Errorf("Expected version %d, got %d", i+1, e.Version())
		}
	}
}

func TestInMemoryEventStore_ReadFromVersion(t *testing.T) {
	store := NewInMemoryEventStore()
	for i := 0; i < 5; i++ {
		if err := store.AppendEvent("salt", NewEvent("stock.adjusted", "salt", i)); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	evts, err := store.ReadEvents("salt", 4)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(evts) != 2 {
		t.Fatalf("Expected 2 events from version 4, got %d", len(evts))
	}
	if evts[0].Version() != 4 {
		t.Errorf("Expected first event at version 4, got %d", evts[0].Version())
	}

	evts, err = store.ReadEvents("salt", 100)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(evts) != 0 {
		t.Errorf("Expected no events past the end, got %d", len(evts))
	}
}

func TestInMemoryEventStore_UnknownStream(t *testing.T) {
	store := NewInMemoryEventStore()

	evts, err := store.ReadEvents("missing", 0)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(evts) != 0 {
		t.Errorf("Expected empty result for unknown stream, got %d", len(evts))
	}
}

func TestInMemoryEventStore_ReadAllEvents(t *testing.T) {
	store := NewInMemoryEventStore()
	if err := store.AppendEvent("salt", NewEvent("stock.adjusted", "salt", nil)); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}
	if err := store.AppendEvent("brine", NewEvent("production.committed", "brine", nil)); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}

	all, err := store.ReadAllEvents(0)
	if err != nil {
		t.Fatalf("ReadAllEvents failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 events across streams, got %d", len(all))
	}
	if all[0].StreamID() != "salt" || all[1].StreamID() != "brine" {
		t.Errorf("Expected global order preserved, got %s then %s", all[0].StreamID(), all[1].StreamID())
	}

	tail, err := store.ReadAllEvents(1)
	if err != nil {
		t.Fatalf("ReadAllEvents failed: %v", err)
	}
	if len(tail) != 1 || tail[0].StreamID() != "brine" {
		t.Errorf("Expected 1 event from position 1, got %d", len(tail))
	}
}
