// internal/snapshot/decode.go
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError reports a payload that is not a well-formed snapshot.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("snapshot: decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var errNotObject = errors.New("payload is not a JSON object")

// Decode parses one response body.
// All-or-nothing: on any error the zero Snapshot is returned, never a
// partially filled one. Missing optional fields keep their zero values.
func Decode(body []byte) (Snapshot, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Snapshot{}, &DecodeError{Err: errNotObject}
	}

	var s Snapshot
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return Snapshot{}, &DecodeError{Err: err}
	}

	if s.Uptime < 0 {
		s.Uptime = 0
	}
	for i := range s.Slots {
		if s.Slots[i].LastSeen < 0 {
			s.Slots[i].LastSeen = 0
		}
	}

	return s, nil
}
