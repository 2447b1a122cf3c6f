package dropkit

import (
	"reflect"
	"testing"
)

func TestMemoryStoreGetSet(t *testing.T) {
	store := NewMemoryStore()

	if got := store.Get(); !reflect.DeepEqual(got, IntakeState{}) {
		t.Errorf("Expected zero state initially, got %v", got)
	}

	state := IntakeState{IsFocused: true}
	store.Set(state)
	if got := store.Get(); !got.IsFocused {
		t.Errorf("Expected stored state, got %v", got)
	}
}

func TestMemoryStoreSubscribe(t *testing.T) {
	store := NewMemoryStore()

	var seen []IntakeState
	unsubscribe := store.Subscribe(func(s IntakeState) {
		seen = append(seen, s)
	})

	store.Set(IntakeState{IsFocused: true})
	store.Set(IntakeState{IsDragActive: true})

	if len(seen) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(seen))
	}
	if !seen[0].IsFocused || !seen[1].IsDragActive {
		t.Errorf("Notifications out of order: %v", seen)
	}

	unsubscribe()
	store.Set(IntakeState{})
	if len(seen) != 2 {
		t.Errorf("Expected no notification after unsubscribe, got %d", len(seen))
	}
}

func TestMemoryStoreUnsubscribeIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	unsubscribe := store.Subscribe(func(IntakeState) {})
	unsubscribe()
	unsubscribe() // must not panic or disturb other subscribers

	calls := 0
	store.Subscribe(func(IntakeState) { calls++ })
	store.Set(IntakeState{})
	if calls != 1 {
		t.Errorf("Expected surviving subscriber to fire once, got %d", calls)
	}
}

func TestDispatcherAppliesActionsInCallOrder(t *testing.T) {
	store := NewMemoryStore()
	d := NewDispatcher(store)

	d.Dispatch(FocusAction())
	d.Dispatch(OpenDialogAction())
	state := d.Dispatch(SetDraggedFilesAction([]CandidateFile{File("a.png", "image/png", 1)}, true))

	if !state.IsFocused || !state.IsFileDialogActive || !state.IsDragActive {
		t.Errorf("Expected all transitions applied in order, got %+v", state)
	}
	if !reflect.DeepEqual(d.State(), state) {
		t.Error("Dispatch return value and container state diverged")
	}
}

func TestDispatcherPublishesEveryTransition(t *testing.T) {
	store := NewMemoryStore()
	d := NewDispatcher(store)

	published := 0
	store.Subscribe(func(IntakeState) { published++ })

	d.Dispatch(FocusAction())
	d.Dispatch(FocusAction()) // idempotent transition still publishes
	d.Dispatch(BlurAction())

	if published != 3 {
		t.Errorf("Expected 3 publications, got %d", published)
	}
}
