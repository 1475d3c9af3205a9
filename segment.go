package intersect

import (
	"fmt"
	"math"

	"github.com/tdewolff/intersect/avl"
)

// Segment is a directed line segment. From is the topmost endpoint, or the leftmost endpoint for horizontal segments; newSegment establishes this invariant. A segment whose endpoints are equal within Epsilon is degenerate and represents a single point.
type Segment struct {
	From, To Point

	dy, dx float64 // From minus To, dy is zero for horizontal segments
	angle  float64 // direction From to To in (-Pi,0], increases from left to right below From
	index  int     // insertion order, tie-break for overlapping segments

	node *avl.Node[*Segment] // position in the sweep status, nil while not tracked
}

// newSegment returns the canonical segment between from and to: the direction is flipped so that From is the topmost (then leftmost) endpoint, coordinates within Epsilon from zero are snapped to zero, and a near-zero height is snapped to exactly zero. The caller's points are copied, not modified.
func newSegment(from, to Point, index int) *Segment {
	from, to = from.snap(), to.snap()
	if 0 < comparePoints(from, to) {
		from, to = to, from
	}
	if Equal(from.Y, to.Y) {
		to.Y = from.Y
	}
	return &Segment{
		From:  from,
		To:    to,
		dy:    from.Y - to.Y,
		dx:    from.X - to.X,
		angle: math.Atan2(to.Y-from.Y, to.X-from.X),
		index: index,
	}
}

// Degenerate returns true if both endpoints coincide within Epsilon.
func (s *Segment) Degenerate() bool {
	return s.From.Equals(s.To)
}

// xAt returns the x-coordinate where the segment crosses the horizontal line through p. Horizontal segments lie along that line and return p.X clamped to their extent, so that they compare equal to any segment meeting them and sort by angle behind it.
func (s *Segment) xAt(p Point) float64 {
	if s.dy == 0.0 {
		return math.Min(math.Max(p.X, s.From.X), s.To.X)
	}
	t := (s.From.Y - p.Y) / s.dy
	return s.From.X - t*s.dx
}

// Contains returns true if p lies on the segment within tolerance, including its endpoints.
func (s *Segment) Contains(p Point) bool {
	if s.Degenerate() {
		return s.From.Equals(p)
	} else if !Equal(s.xAt(p), p.X) {
		return false
	} else if s.dy == 0.0 {
		return Equal(p.Y, s.From.Y) && Interval(p.X, s.From.X, s.To.X)
	}
	return Interval(p.Y, s.To.Y, s.From.Y)
}

func (s *Segment) String() string {
	return fmt.Sprintf("(%v−%v)", s.From, s.To)
}

// intersectSegments returns the intersection point between a and b, bounded to both segments' extents, or false if they are parallel or do not meet within tolerance. Common endpoints are matched exactly before solving to avoid numerical issues, and parallel (also overlapping) segments never return a point.
func intersectSegments(a, b *Segment) (Point, bool) {
	if a.Degenerate() || b.Degenerate() {
		return Point{}, false
	} else if a.From.Equals(b.From) || a.From.Equals(b.To) {
		return a.From, true
	} else if a.To.Equals(b.From) || a.To.Equals(b.To) {
		return a.To, true
	}

	da := a.To.Sub(a.From)
	db := b.To.Sub(b.From)
	div := da.PerpDot(db)
	if Equal(div, 0.0) {
		return Point{}, false // parallel
	}
	ta := db.PerpDot(a.From.Sub(b.From)) / div
	tb := da.PerpDot(a.From.Sub(b.From)) / div
	if Interval(ta, 0.0, 1.0) && Interval(tb, 0.0, 1.0) {
		return a.From.Interpolate(a.To, ta), true
	}
	return Point{}, false
}
