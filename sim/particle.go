// Package sim holds the particle simulation: the particles themselves and
// the world that owns them. Each particle is an independently heap-boxed
// object carved from the world's allocator, so population changes map 1:1
// onto allocation traffic.
package sim

import (
	"math/rand"

	"github.com/samsarge/particles/constant"
	"github.com/samsarge/particles/core"
	"github.com/samsarge/particles/vmath"
)

// Particle is one simulated object: a small square that rises from the
// bottom edge of the world while fading out.
//
// Extent is fixed at creation. Alpha only decreases after creation; the
// removal policy in World keys off it instead of a time-to-live.
type Particle struct {
	Extent   vmath.Vec2
	Position vmath.Vec2
	Velocity vmath.Vec2
	Accel    vmath.Vec2
	Alpha    float64
}

// init places the particle at a random point on the bottom edge with an
// upward velocity and an upward, decaying acceleration.
func (p *Particle) init(rng *rand.Rand, bounds vmath.Vec2) {
	p.Extent = vmath.Vec2{X: constant.ParticleExtent, Y: constant.ParticleExtent}
	p.Position = vmath.Vec2{X: rng.Float64() * bounds.X, Y: bounds.Y}
	p.Velocity = vmath.Vec2{
		Y: constant.SpawnVelocityMin + rng.Float64()*(constant.SpawnVelocityMax-constant.SpawnVelocityMin),
	}
	p.Accel = vmath.Vec2{
		Y: constant.SpawnAccelMin + rng.Float64()*(constant.SpawnAccelMax-constant.SpawnAccelMin),
	}
	p.Alpha = constant.InitialAlpha
}

// Update advances one tick: Euler integration with unit time step, then
// geometric decay of acceleration and opacity. The decay keeps velocity
// converging to a terminal value and gives the particle a self-terminating
// visual lifecycle without an explicit age field.
func (p *Particle) Update() {
	p.Velocity = vmath.V2Add(p.Velocity, p.Accel)
	p.Position = vmath.V2Add(p.Position, p.Velocity)
	p.Accel = vmath.V2Scale(p.Accel, constant.AccelDamping)
	p.Alpha *= constant.AlphaDecay
}

// Invisible reports whether the particle has faded below the removal
// threshold.
func (p *Particle) Invisible() bool {
	return p.Alpha < constant.InvisibleAlpha
}

// Color returns the particle's render color: white with the current opacity
// in the last channel.
func (p *Particle) Color() core.RGBA {
	return core.RGBA{RGB: core.RGBWhite, A: p.Alpha}
}
