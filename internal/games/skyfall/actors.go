package skyfall

import "github.com/akarneev/skyfall/internal/core"

// Cursor is the player-controlled crosshair. Life counts remaining
// ground impacts the player can absorb.
type Cursor struct {
	Pos  core.Vec2
	Life float64
}

// Rocket is a hostile projectile falling along a fixed heading.
// Launch keeps the spawn position so the renderer can draw a tracer.
// Life drops to zero when the rocket is intercepted or leaves play.
type Rocket struct {
	Pos     core.Vec2
	Launch  core.Vec2
	Heading float64
	Life    float64
}

// Advance integrates the rocket position along its heading.
func (r *Rocket) Advance(velocity, dt float64) {
	r.Pos = r.Pos.Add(core.FromAngle(r.Heading).Scale(velocity * dt))
}

// Alive reports whether the rocket is still in play.
func (r *Rocket) Alive() bool {
	return r.Life > 0
}

// Interceptor is an expanding-then-collapsing blast. Elapsed counts
// down from the configured period; the blast expires at zero.
type Interceptor struct {
	Pos     core.Vec2
	Elapsed float64
}

// Age advances the blast animation. The animation runs rate times
// faster than real time.
func (i *Interceptor) Age(rate, dt float64) {
	i.Elapsed -= dt * rate
}

// Radius returns the current blast radius for the given base radius.
func (i *Interceptor) Radius(base float64) float64 {
	return BlastRadius(base, i.Elapsed)
}

// Expired reports whether the blast has finished its animation.
func (i *Interceptor) Expired() bool {
	return i.Elapsed <= 0
}

// BlastRadius maps remaining blast time onto a parabolic arc: zero at
// both ends of the five second nominal lifetime, peaking at 2.5x the
// base radius in the middle.
func BlastRadius(base, elapsed float64) float64 {
	return base * (-(((elapsed - 2.5) * (elapsed - 2.5)) / 2.5) + 2.5)
}
