package sim

import (
	"math/rand"
	"time"

	"github.com/samsarge/particles/alloc"
	"github.com/samsarge/particles/constant"
	"github.com/samsarge/particles/vmath"
)

// World owns the particle population and the per-tick spawn/despawn policy.
// The population size is a bounded random walk: every tick draws a delta in
// [-WalkSpan, WalkSpan] and spawns or despawns that many particles, floored
// at an empty collection.
//
// World is not safe for concurrent use; one caller drives ticks.
type World struct {
	tick      uint64
	bounds    vmath.Vec2
	particles []*Particle
	rng       *rand.Rand
	alloc     alloc.Allocator
}

// WorldConfig overrides the world's defaults.
type WorldConfig struct {
	// Seed seeds the world's random generator; 0 means time-based.
	Seed int64

	// Allocator is the source every particle is boxed from. Defaults to a
	// ReportingAllocator over the system allocator.
	Allocator alloc.Allocator
}

// NewWorld creates an empty world with fixed bounds.
func NewWorld(width, height float64, cfg ...*WorldConfig) *World {
	var c WorldConfig
	if len(cfg) > 0 && cfg[0] != nil {
		c = *cfg[0]
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Allocator == nil {
		c.Allocator = alloc.NewReportingAllocator(alloc.NewSystemAllocator())
	}

	return &World{
		bounds: vmath.Vec2{X: width, Y: height},
		rng:    rand.New(rand.NewSource(c.Seed)),
		alloc:  c.Allocator,
	}
}

// Spawn boxes |n| new particles and appends them to the collection. Each
// particle is a distinct allocation.
func (w *World) Spawn(n int) {
	for i := 0; i < abs(n); i++ {
		p := alloc.Box[Particle](w.alloc)
		p.init(w.rng, w.bounds)
		w.particles = append(w.particles, p)
	}
}

// Despawn removes up to |n| particles, one at a time, and returns the number
// actually removed. Removal prefers an invisible particle at the front of
// the collection; only the very first particle is examined before falling
// back to removing the oldest. Despawning from an empty collection is a
// no-op rather than an error: the random walk is allowed to park at zero.
func (w *World) Despawn(n int) int {
	removed := 0
	for i := 0; i < abs(n); i++ {
		if len(w.particles) == 0 {
			break
		}

		idx := -1
		for j, p := range w.particles {
			if p.Invisible() {
				idx = j
			}
			break // front-of-collection lookahead only
		}
		if idx < 0 {
			idx = 0
		}

		p := w.particles[idx]
		w.particles = append(w.particles[:idx], w.particles[idx+1:]...)
		alloc.Release(w.alloc, p)
		removed++
	}
	return removed
}

// Tick advances the simulation one step: draw the population delta, apply
// it, shrink the backing array to fit, then update every surviving particle
// in order. Returns the signed delta that was drawn.
func (w *World) Tick() int {
	n := w.rng.Intn(2*constant.WalkSpan+1) - constant.WalkSpan

	if n > 0 {
		w.Spawn(n)
	} else {
		w.Despawn(n)
	}

	w.shrink()

	for _, p := range w.particles {
		p.Update()
	}

	w.tick++
	return n
}

// shrink trims slack capacity so the backing array tracks the population
// exactly between ticks, trading allocation frequency for zero overhead.
func (w *World) shrink() {
	if cap(w.particles) > len(w.particles) {
		exact := make([]*Particle, len(w.particles))
		copy(exact, w.particles)
		w.particles = exact
	}
}

// Particles returns the current collection in insertion order. The slice
// and its particles are owned by the world; callers read, never mutate.
func (w *World) Particles() []*Particle { return w.particles }

// Len returns the current population size.
func (w *World) Len() int { return len(w.particles) }

// TickCount returns the number of ticks processed.
func (w *World) TickCount() uint64 { return w.tick }

// Bounds returns the fixed world dimensions.
func (w *World) Bounds() vmath.Vec2 { return w.bounds }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
