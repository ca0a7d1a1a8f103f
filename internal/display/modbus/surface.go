// internal/display/modbus/surface.go
package modbus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/slotboard/internal/render"
	"github.com/tamzrod/slotboard/internal/status"
)

// registerClient is the exact contract the surface uses.
type registerClient interface {
	WriteRegisters(addr uint16, regs []uint16) error
}

// Plan fixes where the block lives.
type Plan struct {
	Endpoint    string
	BaseAddress uint16
	MaxSlots    int
}

// Surface mirrors counters, uptime and per-slot codes into holding registers.
type Surface struct {
	plan Plan
	cli  registerClient

	needFull bool
	last     []uint16
}

// NewSurface builds a register surface. The first commit writes the full block.
func NewSurface(plan Plan, cli registerClient) (*Surface, error) {
	if cli == nil {
		return nil, fmt.Errorf("display modbus: missing client for endpoint %s", plan.Endpoint)
	}
	if plan.MaxSlots <= 0 {
		return nil, errors.New("display modbus: max slots must be > 0")
	}
	return &Surface{
		plan:     plan,
		cli:      cli,
		needFull: true,
	}, nil
}

// Commit delivers one view into register memory.
// On any write failure, the next call re-asserts the full block.
func (s *Surface) Commit(v render.View) error {
	regs := Encode(v, s.plan.MaxSlots)

	// ------------------------------------------------------------
	// Full block write (re-assert)
	// ------------------------------------------------------------
	if s.needFull || len(s.last) != len(regs) {
		if err := s.cli.WriteRegisters(s.plan.BaseAddress, regs); err != nil {
			s.needFull = true
			return fmt.Errorf("display modbus: full block write failed: %w", err)
		}
		s.needFull = false
		s.last = regs
		return nil
	}

	// ------------------------------------------------------------
	// Changed runs only
	// ------------------------------------------------------------
	var errs []string

	for start := 0; start < len(regs); {
		if regs[start] == s.last[start] {
			start++
			continue
		}
		end := start
		for end < len(regs) && regs[end] != s.last[end] {
			end++
		}

		addr := s.plan.BaseAddress + uint16(start)
		if err := s.cli.WriteRegisters(addr, regs[start:end]); err != nil {
			errs = append(errs, fmt.Sprintf("addr %d-%d write failed: %v", addr, addr+uint16(end-start)-1, err))
		} else {
			copy(s.last[start:end], regs[start:end])
		}
		start = end
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt — re-assert on next commit.
		s.needFull = true
		return errors.New("display modbus: " + strings.Join(errs, " | "))
	}

	return nil
}

// Encode converts a view into the full register block.
// Layout is protocol-locked. Slots past maxSlots are not represented;
// positions without a slot read as zero.
func Encode(v render.View, maxSlots int) []uint16 {
	regs := make([]uint16, status.RegisterSlotsStart+maxSlots)

	regs[status.RegisterAvailable] = clamp(v.Counters.Available)
	regs[status.RegisterBusy] = clamp(v.Counters.Busy)
	regs[status.RegisterAway] = clamp(v.Counters.Away)
	regs[status.RegisterTotal] = clamp(v.Counters.Total)

	h, m := render.SplitUptime(v.UptimeMs)
	regs[status.RegisterUptimeHours] = clamp(h)
	regs[status.RegisterUptimeMinutes] = clamp(m)

	// Registers RegisterReservedStart..RegisterReservedEnd are RESERVED → left as zero

	for i, c := range v.Cards {
		if i >= maxSlots {
			break
		}
		regs[status.RegisterSlotsStart+i] = status.Code(c.Connected, c.State)
	}

	return regs
}

func clamp[T int | int64](n T) uint16 {
	if n < 0 {
		return 0
	}
	if n > 0xFFFF {
		return 0xFFFF
	}
	return uint16(n)
}
