package render

import (
	"reflect"
	"testing"
	"time"

	"github.com/tamzrod/slotboard/internal/snapshot"
	"github.com/tamzrod/slotboard/internal/status"
)

func history(n int) []snapshot.HistoryEntry {
	h := make([]snapshot.HistoryEntry, n)
	for i := range h {
		h[i] = snapshot.HistoryEntry{
			Slot:      i % 3,
			NewState:  status.State(i % 3),
			Timestamp: int64(1700000000000 + i*60000),
		}
	}
	return h
}

// ---- aggregation ----

func TestAggregate_Empty(t *testing.T) {
	if got := Aggregate(nil); got != (Counters{}) {
		t.Fatalf("expected zero counters, got %+v", got)
	}
}

func TestAggregate_DisconnectedIgnored(t *testing.T) {
	slots := []snapshot.Slot{
		{Connected: false, State: status.Available},
		{Connected: false, State: status.Busy},
		{Connected: false, State: status.State(42)},
	}
	if got := Aggregate(slots); got != (Counters{}) {
		t.Fatalf("disconnected slots counted: %+v", got)
	}
}

func TestAggregate_TotalReconciles(t *testing.T) {
	slots := []snapshot.Slot{
		{Connected: true, State: status.Available},
		{Connected: true, State: status.Available},
		{Connected: true, State: status.Busy},
		{Connected: true, State: status.Away},
		{Connected: true, State: status.State(7)},
		{Connected: false, State: status.Busy},
	}

	got := Aggregate(slots)
	want := Counters{Available: 2, Busy: 1, Away: 2, Total: 5}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if got.Total != got.Available+got.Busy+got.Away {
		t.Fatalf("total does not reconcile: %+v", got)
	}
}

// ---- cards ----

func TestFormatCard(t *testing.T) {
	l := status.English()

	tests := []struct {
		name string
		slot snapshot.Slot
		want Card
	}{
		{
			name: "connected busy with eco and last seen",
			slot: snapshot.Slot{Connected: true, State: status.Busy, FirstName: "Jean", LastName: "Dupont", NodeID: "n-1", EcoMode: true, LastSeen: 45},
			want: Card{Connected: true, State: status.Busy, Title: "POSTE 1", Label: "BUSY", Class: status.ClassBusy, Name: "Jean Dupont", Node: "n-1", Eco: "⚡ ECO", LastSeen: "Seen: 45s ago"},
		},
		{
			name: "connected with unknown last seen",
			slot: snapshot.Slot{Connected: true, State: status.Available, FirstName: "A", LastName: "B", NodeID: "x"},
			want: Card{Connected: true, State: status.Available, Title: "POSTE 1", Label: "AVAILABLE", Class: status.ClassAvailable, Name: "A B", Node: "x"},
		},
		{
			name: "disconnected ignores state and last seen",
			slot: snapshot.Slot{Connected: false, State: status.Busy, FirstName: "A", LastName: "B", LastSeen: 99},
			want: Card{State: status.Busy, Title: "POSTE 1", Label: "OFFLINE", Class: status.ClassOffline, CardClass: status.CardClassOffline, Name: "A B", Node: "-"},
		},
		{
			name: "out of range state",
			slot: snapshot.Slot{Connected: true, State: status.State(3), NodeID: "n"},
			want: Card{Connected: true, State: status.State(3), Title: "POSTE 1", Label: "UNKNOWN", Class: status.ClassUnknown, Name: " ", Node: "n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCard(0, tt.slot, l); got != tt.want {
				t.Fatalf("got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

// ---- history ----

func TestWindow_SizeAndOrder(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 30} {
		h := history(n)
		win := Window(h, 8)

		want := n
		if want > 8 {
			want = 8
		}
		if len(win) != want {
			t.Fatalf("len(h)=%d: window len=%d want=%d", n, len(win), want)
		}

		// reversed suffix of h
		for i, e := range win {
			if e != h[n-1-i] {
				t.Fatalf("len(h)=%d: window[%d]=%+v want %+v", n, i, e, h[n-1-i])
			}
		}
	}
}

func TestWindow_InputUntouched(t *testing.T) {
	h := history(10)
	before := append([]snapshot.HistoryEntry(nil), h...)

	_ = Window(h, 8)

	if !reflect.DeepEqual(h, before) {
		t.Fatalf("Window mutated its input")
	}
}

func TestFormatHistory_SentinelAndLocalTime(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2024, 3, 1, 9, 5, 0, 0, loc).UnixMilli()

	h := []snapshot.HistoryEntry{
		{Slot: 0, NewState: status.Busy, Timestamp: ts - 60000},
		{Slot: 2, NewState: status.Disconnected, Timestamp: ts},
	}

	lines := FormatHistory(h, 8, status.English(), loc)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	first := lines[0]
	if first.Text() != "Poste 3: DISCONNECTED" || first.Time != "09:05" {
		t.Fatalf("newest line mismatch: %+v", first)
	}
	if lines[1].Text() != "Poste 1: BUSY" || lines[1].Time != "09:04" {
		t.Fatalf("older line mismatch: %+v", lines[1])
	}
}

func TestFormatHistory_EmptyIsNil(t *testing.T) {
	if got := FormatHistory(nil, 8, status.English(), time.UTC); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if got := FormatHistory([]snapshot.HistoryEntry{}, 8, status.English(), time.UTC); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

// ---- uptime ----

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0h 0m"},
		{5000, "0h 0m"},
		{59999, "0h 0m"},
		{60000, "0h 1m"},
		{3661000, "1h 1m"},
		{7199000, "1h 59m"},
		{90000000, "25h 0m"},
		{-1, "0h 0m"},
	}

	for _, tt := range tests {
		if got := FormatUptime(tt.ms); got != tt.want {
			t.Errorf("FormatUptime(%d) = %q; want %q", tt.ms, got, tt.want)
		}
	}
}

// ---- full render ----

func TestRender_EndToEndScenario(t *testing.T) {
	r := New(Options{Labels: status.English(), Window: 8, Location: time.UTC})

	v := r.Render(snapshot.Snapshot{
		Slots: []snapshot.Slot{
			{Connected: true, State: status.Available, FirstName: "A", LastName: "One"},
			{Connected: false, FirstName: "B", LastName: "Two"},
			{Connected: true, State: status.Away, FirstName: "C", LastName: "Three"},
		},
		History: []snapshot.HistoryEntry{},
		Uptime:  5000,
	})

	want := Counters{Available: 1, Busy: 0, Away: 1, Total: 2}
	if v.Counters != want {
		t.Fatalf("counters: got %+v want %+v", v.Counters, want)
	}
	if v.Uptime != "0h 0m" {
		t.Fatalf("uptime: got %q", v.Uptime)
	}
	if v.HasHistory() {
		t.Fatalf("empty history must not replace the region")
	}
	if len(v.Cards) != 3 || v.Cards[1].Label != "OFFLINE" || v.Cards[2].Title != "POSTE 3" {
		t.Fatalf("cards mismatch: %+v", v.Cards)
	}
}

func TestRender_FrenchLabels(t *testing.T) {
	fr, _ := status.LabelsFor("fr")
	r := New(Options{Labels: fr, Location: time.UTC})

	v := r.Render(snapshot.Snapshot{
		Slots:   []snapshot.Slot{{Connected: false}},
		History: []snapshot.HistoryEntry{{Slot: 0, NewState: status.Disconnected}},
	})

	if v.Cards[0].Label != "HORS LIGNE" {
		t.Fatalf("card label: got %q", v.Cards[0].Label)
	}
	if v.History[0].Label != "DÉCONNEXION" {
		t.Fatalf("history label: got %q", v.History[0].Label)
	}
}
