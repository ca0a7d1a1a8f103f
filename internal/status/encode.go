// internal/status/encode.go
package status

// ---- SLOT CODES ----

const (
	CodeOffline   uint16 = 0
	CodeAvailable uint16 = 1
	CodeBusy      uint16 = 2
	CodeAway      uint16 = 3
	CodeUnknown   uint16 = 4
)

// Code converts a slot's reported state into its register code.
// A disconnected slot is always CodeOffline, whatever its state holds.
// No IO. No side effects.
func Code(connected bool, s State) uint16 {
	if !connected {
		return CodeOffline
	}
	switch s {
	case Available:
		return CodeAvailable
	case Busy:
		return CodeBusy
	case Away:
		return CodeAway
	default:
		return CodeUnknown
	}
}
