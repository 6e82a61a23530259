package core

// RuntimeConfig carries the per-session runtime parameters the platform
// resolves at startup: terminal dimensions, tick cadence, and the RNG seed
// used for reproducible runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means time-based in the platform layer
}
