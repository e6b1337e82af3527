package core

// RuntimeConfig contains settings a shell passes when it starts a game.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second requested from the shell loop (default 60)
	Seed     int64 // Pipe RNG seed; 0 means draw a fresh seed from system entropy per round
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
