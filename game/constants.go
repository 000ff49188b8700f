package game

const (
	// TicksPerSecond is the fixed simulation rate of the host.
	TicksPerSecond = 20
	// TickDuration is the length of a single tick in milliseconds.
	TickDuration int64 = 1000 / TicksPerSecond
)
