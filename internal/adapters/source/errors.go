package source

import "errors"

// Sentinel kinds for source failures. Callers treat all of them the same way
// (an empty collection) but metrics and logs tell them apart.
var (
	ErrTransport = errors.New("contest source unreachable")
	ErrStatus    = errors.New("contest source returned non-success status")
	ErrDecode    = errors.New("contest source payload malformed")
)

// Kind returns a short label for err suitable for metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}
