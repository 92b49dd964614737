package core

// RuntimeConfig describes one terminal session: its size in cells, the tick
// rate of the loop driving it and the seed of its world.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 means the platform picks one from the time
}

// DefaultRuntime is used when the terminal size cannot be queried.
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// WithSize returns a copy sized w x h. Non-positive dimensions keep the
// current value.
func (c RuntimeConfig) WithSize(w, h int) RuntimeConfig {
	if w > 0 {
		c.ScreenW = w
	}
	if h > 0 {
		c.ScreenH = h
	}
	return c
}
