package floor

import (
	"fmt"
	"math"
)

// Vec3 is a position in the world. The floor lies in the X-Z plane and Y
// points up.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience constructor for Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// SqrMagnitude returns the squared length of the vector.
func (v Vec3) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the length of the vector.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// SqrDistance returns the squared distance between two points.
func (v Vec3) SqrDistance(o Vec3) float64 {
	return v.Sub(o).SqrMagnitude()
}

// Distance returns the distance between two points.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Magnitude()
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Rect is an axis-aligned rectangle on the floor plane. Left and Right bound
// X, Bottom and Top bound Z. A rectangle whose Left is greater than its Right
// or whose Bottom is greater than its Top is empty.
type Rect struct {
	Left, Right, Bottom, Top float64
}

// EmptyRect returns a rectangle that contains nothing and that grows to the
// first point passed to ExpandTo.
func EmptyRect() Rect {
	return Rect{
		Left:   math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(1),
		Top:    math.Inf(-1),
	}
}

// BoundsOf returns the smallest rectangle that covers all the points.
func BoundsOf(points []Vec3) Rect {
	r := EmptyRect()
	for _, p := range points {
		r = r.ExpandTo(p)
	}

	return r
}

// IsEmpty tells if the rectangle has inverted extents.
func (r Rect) IsEmpty() bool {
	return r.Left > r.Right || r.Bottom > r.Top
}

// Width returns the X extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the Z extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// ExpandTo returns a copy of the rectangle grown to include p.
func (r Rect) ExpandTo(p Vec3) Rect {
	r.Left = math.Min(r.Left, p.X)
	r.Right = math.Max(r.Right, p.X)
	r.Bottom = math.Min(r.Bottom, p.Z)
	r.Top = math.Max(r.Top, p.Z)

	return r
}

// Inset returns a copy of the rectangle shrunk by d on all four sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Left:   r.Left + d,
		Right:  r.Right - d,
		Bottom: r.Bottom + d,
		Top:    r.Top - d,
	}
}

// Contains tells if the point lies within the rectangle on the floor plane.
func (r Rect) Contains(p Vec3) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Z >= r.Bottom && p.Z <= r.Top
}
