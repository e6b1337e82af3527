// Package entropy supplies pipe seeds from the operating system's random source.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Seed reads a non-zero seed from crypto/rand, falling back to the clock if
// the system source is unavailable.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	if s := int64(binary.LittleEndian.Uint64(buf[:])); s != 0 {
		return s
	}
	return 1
}

// Policy returns a seed policy drawing a fresh seed every round.
func Policy() flappy.SeedPolicy {
	return flappy.SeedFunc(Seed)
}

// PolicyFor returns FixedSeed(seed), or Policy() when seed is zero.
func PolicyFor(seed int64) flappy.SeedPolicy {
	if seed != 0 {
		return flappy.FixedSeed(seed)
	}
	return Policy()
}
