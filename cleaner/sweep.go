package cleaner

import (
	"errors"
	"fmt"
	"math"

	"github.com/sarchlab/floorbot/floor"
)

// ErrInvalidSweepParameter is returned when a sweep cannot be generated from
// the given step or inset.
var ErrInvalidSweepParameter = errors.New("invalid sweep parameter")

// Guards the point count of an edge against float noise, so that 10/2 counts
// as 5 steps even if the division lands a hair below.
const sweepEpsilon = 1e-9

// BuildSweep lays an inward spiral of waypoints over the bounds. Each ring
// walks the bottom, right, top, and left edges at the given step, starting
// from the bottom-left corner. The next ring is the rectangle shrunk by inset
// on every side. Generation stops once the rectangle inverts. All the points
// share the same height.
func BuildSweep(
	bounds floor.Rect,
	step, inset, height float64,
) ([]floor.Vec3, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step %v", ErrInvalidSweepParameter, step)
	}

	if !(inset > 0) || math.IsInf(inset, 0) {
		return nil, fmt.Errorf("%w: inset %v", ErrInvalidSweepParameter, inset)
	}

	var points []floor.Vec3

	for ring := 0; ; ring++ {
		r := bounds.Inset(float64(ring) * inset)
		if r.IsEmpty() || math.IsInf(r.Width(), 0) || math.IsInf(r.Height(), 0) {
			break
		}

		points = appendRing(points, r, step, height)
	}

	return points, nil
}

func appendRing(
	points []floor.Vec3,
	r floor.Rect,
	step, height float64,
) []floor.Vec3 {
	points = append(points,
		floor.V3(r.Left, height, r.Bottom),
		floor.V3(r.Right, height, r.Bottom),
		floor.V3(r.Right, height, r.Top),
		floor.V3(r.Left, height, r.Top),
	)

	across := stepsAlong(r.Width(), step)
	up := stepsAlong(r.Height(), step)

	for i := 0; i <= across; i++ {
		points = append(points,
			floor.V3(r.Left+float64(i)*step, height, r.Bottom))
	}

	for i := 0; i <= up; i++ {
		points = append(points,
			floor.V3(r.Right, height, r.Bottom+float64(i)*step))
	}

	for i := 0; i <= across; i++ {
		points = append(points,
			floor.V3(r.Right-float64(i)*step, height, r.Top))
	}

	for i := 0; i <= up; i++ {
		points = append(points,
			floor.V3(r.Left, height, r.Top-float64(i)*step))
	}

	return points
}

func stepsAlong(length, step float64) int {
	return int(math.Floor(length/step + sweepEpsilon))
}

// A SweepRoute is a fixed list of waypoints with a cursor that wraps around.
type SweepRoute struct {
	points []floor.Vec3
	cursor int
}

// NewSweepRoute creates a route over a copy of the points.
func NewSweepRoute(points []floor.Vec3) *SweepRoute {
	r := &SweepRoute{}
	r.points = append(r.points, points...)

	return r
}

// Len returns the number of waypoints.
func (r *SweepRoute) Len() int {
	return len(r.points)
}

// Cursor returns the index of the current waypoint.
func (r *SweepRoute) Cursor() int {
	return r.cursor
}

// Current returns the waypoint under the cursor. It returns false if the
// route is empty.
func (r *SweepRoute) Current() (floor.Vec3, bool) {
	if len(r.points) == 0 {
		return floor.Vec3{}, false
	}

	return r.points[r.cursor], true
}

// Advance moves the cursor to the next waypoint, wrapping to the first one
// after the last.
func (r *SweepRoute) Advance() {
	if len(r.points) == 0 {
		return
	}

	r.cursor = (r.cursor + 1) % len(r.points)
}

// Points returns a copy of the waypoints.
func (r *SweepRoute) Points() []floor.Vec3 {
	return append([]floor.Vec3(nil), r.points...)
}
