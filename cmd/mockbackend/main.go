// cmd/mockbackend/main.go
package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tamzrod/slotboard/internal/snapshot"
	"github.com/tamzrod/slotboard/internal/status"
)

// backend simulates slot state changes for local development.
type backend struct {
	mu      sync.Mutex
	started time.Time
	snap    snapshot.Snapshot
}

var names = [][2]string{
	{"Jean", "Dupont"}, {"Marie", "Curie"}, {"Paul", "Martin"}, {"Lea", "Bernard"},
	{"Hugo", "Petit"}, {"Chloe", "Durand"}, {"Louis", "Moreau"}, {"Emma", "Laurent"},
}

func newBackend(slots int) *backend {
	b := &backend{started: time.Now()}
	for i := 0; i < slots; i++ {
		n := names[i%len(names)]
		b.snap.Slots = append(b.snap.Slots, snapshot.Slot{
			FirstName: n[0],
			LastName:  n[1],
		})
	}
	return b
}

// step flips one random slot per call and records the transition.
func (b *backend) step(rng *rand.Rand) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.snap.Slots {
		if b.snap.Slots[i].Connected {
			b.snap.Slots[i].LastSeen = int64(rng.Intn(30) + 1)
		}
	}

	i := rng.Intn(len(b.snap.Slots))
	s := &b.snap.Slots[i]

	next := status.State(rng.Intn(4) - 1) // -1..2
	if next == status.Disconnected {
		s.Connected = false
	} else {
		s.Connected = true
		s.State = next
		s.NodeID = "node-" + string(rune('A'+i%26))
		s.EcoMode = rng.Intn(5) == 0
	}

	b.snap.History = append(b.snap.History, snapshot.HistoryEntry{
		Slot:      i,
		NewState:  next,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (b *backend) current() snapshot.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.snap
	s.Slots = append([]snapshot.Slot(nil), b.snap.Slots...)
	s.History = append([]snapshot.HistoryEntry(nil), b.snap.History...)
	s.Uptime = time.Since(b.started).Milliseconds()
	return s
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	slots := flag.Int("slots", 6, "number of slots")
	every := flag.Duration("every", 3*time.Second, "state change period")
	flag.Parse()

	if *slots <= 0 {
		log.Fatal("mockbackend: -slots must be > 0")
	}

	b := newBackend(*slots)

	go func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		ticker := time.NewTicker(*every)
		defer ticker.Stop()
		for range ticker.C {
			b.step(rng)
		}
	}()

	router := gin.Default()
	router.GET("/api/data", func(c *gin.Context) {
		c.JSON(http.StatusOK, b.current())
	})

	log.Printf("mock backend serving %d slots on %s/api/data", *slots, *addr)
	if err := router.Run(*addr); err != nil {
		log.Fatal("mockbackend: ", err)
	}
}
