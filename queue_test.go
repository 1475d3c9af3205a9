package intersect

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSweepQueueOrder(t *testing.T) {
	q := NewSweepQueue()
	test.That(t, q.Empty())
	test.That(t, q.Pop() == nil)

	for _, p := range []Point{{5.0, 5.0}, {0.0, 10.0}, {10.0, 10.0}, {3.0, 0.0}, {7.0, 5.0}} {
		q.Insert(p)
	}

	// from top to bottom, from left to right at equal height
	var points []Point
	for !q.Empty() {
		points = append(points, q.Pop().Point)
	}
	test.T(t, points, []Point{{0.0, 10.0}, {10.0, 10.0}, {5.0, 5.0}, {7.0, 5.0}, {3.0, 0.0}})
}

func TestSweepQueueMerge(t *testing.T) {
	a := newSegment(Point{5.0, 5.0}, Point{10.0, 0.0}, 0)
	b := newSegment(Point{5.0, 5.0}, Point{0.0, 0.0}, 1)

	q := NewSweepQueue()
	q.Insert(a.From, a)
	q.Insert(Point{5.0 + Epsilon/2.0, 5.0}, b) // near-coincident point merges
	q.Insert(Point{0.0, 0.0})

	e := q.Find(Point{5.0, 5.0})
	test.That(t, e != nil)
	test.T(t, len(e.Upper), 2)
	test.That(t, q.Find(Point{9.0, 9.0}) == nil)

	test.T(t, q.Pop(), e)
	test.That(t, !q.Empty())
}
