// Package steering provides a kinematic point body that moves toward a seek
// target. It is the movement layer that an agent controller steers.
package steering

import (
	"github.com/sarchlab/floorbot/floor"
	"github.com/sarchlab/floorbot/sim"
)

// The body stops once it is this close to its target.
const stopEpsilon = 1e-3

// A Body is a point that moves on the floor plane. Seek targets are sticky: a
// body keeps moving toward the last target it was given until it gets there
// or until a new target replaces it.
type Body struct {
	*sim.TickingComponent

	pos      floor.Vec3
	maxSpeed float64

	target       floor.Vec3
	hasTarget    bool
	arriveRadius float64
	weight       float64

	distanceTraveled float64
}

// Position returns where the body is.
func (b *Body) Position() floor.Vec3 {
	return b.pos
}

// Teleport moves the body without travelling.
func (b *Body) Teleport(pos floor.Vec3) {
	b.pos = pos
}

// Target returns the current seek target.
func (b *Body) Target() (floor.Vec3, bool) {
	return b.target, b.hasTarget
}

// DistanceTraveled returns the total length of the path the body has moved.
func (b *Body) DistanceTraveled() float64 {
	return b.distanceTraveled
}

// SeekTowards replaces the current target. The body slows down inside
// arriveRadius, and weight scales its speed.
func (b *Body) SeekTowards(pos floor.Vec3, arriveRadius, weight float64) {
	b.target = pos
	b.target.Y = b.pos.Y
	b.hasTarget = true
	b.arriveRadius = arriveRadius
	b.weight = weight

	b.TickLater()
}

// Stop drops the target.
func (b *Body) Stop() {
	b.hasTarget = false
}

// Tick moves the body one step toward its target.
func (b *Body) Tick() bool {
	if !b.hasTarget {
		return false
	}

	offset := b.target.Sub(b.pos)
	dist := offset.Magnitude()

	if dist <= stopEpsilon {
		b.pos = b.target
		b.hasTarget = false

		return false
	}

	speed := b.maxSpeed * b.weight
	if b.arriveRadius > 0 && dist < b.arriveRadius {
		speed *= dist / b.arriveRadius
	}

	step := speed * float64(b.Freq.Period())
	if step >= dist {
		step = dist
	}

	b.pos = b.pos.Add(offset.Scale(step / dist))
	b.distanceTraveled += step

	return step > 0
}
