package status

import "testing"

func TestStateLabels(t *testing.T) {
	l := English()

	tests := []struct {
		state State
		want  string
	}{
		{Available, "AVAILABLE"},
		{Busy, "BUSY"},
		{Away, "AWAY"},
		{State(3), "UNKNOWN"},
		{State(-7), "UNKNOWN"},
		{Disconnected, "UNKNOWN"}, // not a slot state
	}

	for _, tt := range tests {
		if got := l.State(tt.state); got != tt.want {
			t.Errorf("State(%d) = %q; want %q", tt.state, got, tt.want)
		}
	}
}

func TestTransitionSentinel(t *testing.T) {
	l := English()
	if got := l.Transition(Disconnected); got != "DISCONNECTED" {
		t.Fatalf("Transition(-1) = %q; want DISCONNECTED", got)
	}
	if got := l.Transition(Busy); got != "BUSY" {
		t.Fatalf("Transition(1) = %q; want BUSY", got)
	}

	fr, ok := LabelsFor("fr")
	if !ok {
		t.Fatalf("fr table missing")
	}
	if got := fr.Transition(Disconnected); got != "DÉCONNEXION" {
		t.Fatalf("fr Transition(-1) = %q", got)
	}
}

func TestClassAndCode(t *testing.T) {
	if Class(State(9)) != ClassUnknown {
		t.Fatalf("out-of-range class should be %q", ClassUnknown)
	}
	if Code(false, Busy) != CodeOffline {
		t.Fatalf("disconnected slot must encode offline")
	}
	if Code(true, Away) != CodeAway {
		t.Fatalf("away code mismatch")
	}
	if Code(true, State(5)) != CodeUnknown {
		t.Fatalf("out-of-range code mismatch")
	}
}

func TestSlotTitlesAreOneBased(t *testing.T) {
	l := English()
	if got := l.Slot(0); got != "POSTE 1" {
		t.Fatalf("Slot(0) = %q", got)
	}
	if got := l.HistorySlot(4); got != "Poste 5" {
		t.Fatalf("HistorySlot(4) = %q", got)
	}
	if got := l.Seen(45); got != "Seen: 45s ago" {
		t.Fatalf("Seen(45) = %q", got)
	}
}
