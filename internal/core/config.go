package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for the terminal size and deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	HoldTicks int   // Ticks a key stays held after its last press or repeat
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		HoldTicks: 30,
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current asteroid wave
	Lives    int  // Remaining ships
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	TextMode bool // Whether printable keys are being collected (initials entry)
}
