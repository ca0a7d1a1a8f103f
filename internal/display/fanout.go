// internal/display/fanout.go
package display

import (
	"errors"
	"strings"

	"github.com/tamzrod/slotboard/internal/render"
)

// Fanout commits each view to every surface in order.
// A failing surface does not stop delivery to the rest.
type Fanout []Surface

func (f Fanout) Commit(v render.View) error {
	var errs []string

	for _, s := range f {
		if s == nil {
			continue
		}
		if err := s.Commit(v); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New("display: " + strings.Join(errs, " | "))
	}
	return nil
}
