package entropy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func TestPolicyFor(t *testing.T) {
	if got := PolicyFor(42); got != flappy.FixedSeed(42) {
		t.Errorf("PolicyFor(42) = %v, expected FixedSeed(42)", got)
	}

	p := PolicyFor(0)
	seen := map[int64]bool{}
	for range 8 {
		s := p.Seed()
		if s == 0 {
			t.Fatal("entropy seed should never be zero")
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Error("entropy policy returned the same seed every time")
	}
}
