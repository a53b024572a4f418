package booking

import (
	"fmt"
	"math/rand"
	"time"
)

// NewPassID derives a human-legible pass identifier from the event
// tag, the low-order digits of t and a zero-padded random component,
// e.g. "RPX-493817042". Two calls inside the same millisecond can
// collide on an unlucky draw; this is a best-effort display id for
// counter sales, not a uniqueness scheme. Records that must be unique
// rely on the database-assigned identifier.
func NewPassID(tag string, t time.Time, rng *rand.Rand) string {
	low := t.UnixMilli() % 1_000_000
	return fmt.Sprintf("%s-%06d%03d", tag, low, rng.Intn(1000))
}

// NewScanCode builds the placeholder scan string embedded in the
// printable pass. Gate scanners only echo it back; there is no payload
// beyond the pass id itself.
func NewScanCode(passID string) string {
	return "PASSGATE:" + passID
}
