package constant

import "time"

// Simulation Bounds & Timing
const (
	// DefaultWorldWidth is the simulation width in world units
	DefaultWorldWidth = 1280.0

	// DefaultWorldHeight is the simulation height in world units
	DefaultWorldHeight = 960.0

	// TickInterval is the simulation step interval (~60 ticks per second)
	TickInterval = 16 * time.Millisecond

	// InitialSpawnCount is the spawn burst issued before the first tick
	InitialSpawnCount = 1000

	// MonitorInterval is the process heap sampling window
	MonitorInterval = time.Second
)

// Particle Physics
const (
	// ParticleExtent is the fixed rendering size of one particle (square)
	ParticleExtent = 4.0

	// SpawnVelocityMin / SpawnVelocityMax bound the initial vertical
	// velocity; negative is upward, so particles rise from the bottom edge
	SpawnVelocityMin = -2.0
	SpawnVelocityMax = 0.0

	// SpawnAccelMin / SpawnAccelMax bound the initial vertical acceleration
	SpawnAccelMin = 0.0
	SpawnAccelMax = 0.15

	// AccelDamping is applied to acceleration every tick, so velocity
	// converges to a terminal value instead of diverging
	AccelDamping = 0.7
)

// Particle Fade
const (
	// InitialAlpha is the opacity a particle is born with
	InitialAlpha = 0.99

	// AlphaDecay is the per-tick multiplicative opacity decay
	AlphaDecay = 0.995

	// InvisibleAlpha is the threshold below which a particle is treated as
	// invisible by the removal policy
	InvisibleAlpha = 0.02
)

// Population Policy
const (
	// WalkSpan bounds the per-tick population delta: each tick draws a
	// count in [-WalkSpan, WalkSpan] inclusive
	WalkSpan = 3
)
