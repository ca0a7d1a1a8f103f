// internal/render/card.go
package render

import (
	"github.com/tamzrod/slotboard/internal/snapshot"
	"github.com/tamzrod/slotboard/internal/status"
)

const nodePlaceholder = "-"

// FormatCard maps one slot to its display record. index is zero-based.
func FormatCard(index int, s snapshot.Slot, l status.Labels) Card {
	c := Card{
		Connected: s.Connected,
		State:     s.State,
		Title:     l.Slot(index),
		Name:      s.FirstName + " " + s.LastName,
		Node:      s.NodeID,
	}

	if s.Connected {
		c.Label = l.State(s.State)
		c.Class = status.Class(s.State)
		if s.LastSeen > 0 {
			c.LastSeen = l.Seen(s.LastSeen)
		}
	} else {
		c.Label = l.Offline
		c.Class = status.ClassOffline
		c.CardClass = status.CardClassOffline
	}

	if c.Node == "" {
		c.Node = nodePlaceholder
	}
	if s.EcoMode {
		c.Eco = l.Eco
	}

	return c
}
