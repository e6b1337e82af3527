package flappy

// SeedPolicy supplies the pipe RNG seed when the ring is built and on every reset.
// The core never reads system entropy itself; shells that want fresh rounds
// inject a policy that does.
type SeedPolicy interface {
	Seed() int64
}

// FixedSeed returns the same seed for every round, making runs reproducible.
type FixedSeed int64

// Seed implements SeedPolicy.
func (s FixedSeed) Seed() int64 {
	return int64(s)
}

// SeedFunc adapts a function to SeedPolicy.
type SeedFunc func() int64

// Seed implements SeedPolicy.
func (f SeedFunc) Seed() int64 {
	return f()
}
