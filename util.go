package intersect

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance below which two coordinates are considered equal. It is the single source of geometric tolerance: point equality, the sweep order, the status order, and intersection validity all compare through it.
const Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Interval returns true if t is in [a,b] with tolerance Epsilon.
func Interval(t, a, b float64) bool {
	return a-Epsilon < t && t < b+Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the angle between the x-axis and OP.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

// snap rounds coordinates within Epsilon from zero to exactly zero, suppressing compounding floating-point error around the origin.
func (p Point) snap() Point {
	if Equal(p.X, 0.0) {
		p.X = 0.0
	}
	if Equal(p.Y, 0.0) {
		p.Y = 0.0
	}
	return p
}

// comparePoints orders points the way the sweep visits them: from top to bottom, and from left to right at equal height. Points equal within Epsilon compare as equal so that near-coincident event points collapse into one.
func comparePoints(a, b Point) int {
	if a.Equals(b) {
		return 0
	} else if Equal(a.Y, b.Y) {
		if a.X < b.X {
			return -1
		}
		return 1
	} else if b.Y < a.Y {
		return -1
	}
	return 1
}
