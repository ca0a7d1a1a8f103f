// internal/status/labels.go
package status

import "fmt"

// Labels is one static table of display text.
type Labels struct {
	Available    string
	Busy         string
	Away         string
	Unknown      string
	Offline      string
	Disconnected string
	Eco          string
	SlotTitle    string // "%d" is the 1-based slot number
	HistoryTitle string // "%d" is the 1-based slot number
	Node         string
	SeenAgo      string // "%d" is seconds
}

var english = Labels{
	Available:    "AVAILABLE",
	Busy:         "BUSY",
	Away:         "AWAY",
	Unknown:      "UNKNOWN",
	Offline:      "OFFLINE",
	Disconnected: "DISCONNECTED",
	Eco:          "⚡ ECO",
	SlotTitle:    "POSTE %d",
	HistoryTitle: "Poste %d",
	Node:         "Node: ",
	SeenAgo:      "Seen: %ds ago",
}

var french = Labels{
	Available:    "DISPONIBLE",
	Busy:         "OCCUPÉ",
	Away:         "ABSENT",
	Unknown:      "INCONNU",
	Offline:      "HORS LIGNE",
	Disconnected: "DÉCONNEXION",
	Eco:          "⚡ ÉCO",
	SlotTitle:    "POSTE %d",
	HistoryTitle: "Poste %d",
	Node:         "Node: ",
	SeenAgo:      "Seen: %ds ago",
}

var tables = map[string]Labels{
	"en": english,
	"fr": french,
}

// LabelsFor returns the table for a locale code.
func LabelsFor(locale string) (Labels, bool) {
	l, ok := tables[locale]
	return l, ok
}

// English returns the default table.
func English() Labels {
	return english
}

// State returns the label for a connected slot in state s.
// Out-of-range values map to Unknown, never to another state's text.
func (l Labels) State(s State) string {
	switch s {
	case Available:
		return l.Available
	case Busy:
		return l.Busy
	case Away:
		return l.Away
	default:
		return l.Unknown
	}
}

// Transition returns the label for a history entry's new state.
// The Disconnected sentinel is resolved before the table is consulted.
func (l Labels) Transition(s State) string {
	if s == Disconnected {
		return l.Disconnected
	}
	return l.State(s)
}

func (l Labels) Slot(index int) string {
	return fmt.Sprintf(l.SlotTitle, index+1)
}

func (l Labels) HistorySlot(index int) string {
	return fmt.Sprintf(l.HistoryTitle, index+1)
}

func (l Labels) Seen(seconds int64) string {
	return fmt.Sprintf(l.SeenAgo, seconds)
}
