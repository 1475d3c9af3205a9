package intersect

import (
	"testing"

	"github.com/tdewolff/test"
)

func failNow(t *testing.T) func(string) {
	return func(msg string) {
		t.Fatal(msg)
	}
}

func TestSweepStatusOrder(t *testing.T) {
	a := newSegment(Point{0.0, 10.0}, Point{10.0, 0.0}, 0)
	b := newSegment(Point{10.0, 10.0}, Point{0.0, 0.0}, 1)

	s := NewSweepStatus(failNow(t))
	s.Insert(nil, []*Segment{a}, a.From)
	s.Insert(nil, []*Segment{b}, b.From)
	test.T(t, s.Len(), 2)
	test.T(t, s.String(), a.String()+" "+b.String())

	// both pass through the crossing
	var through []*Segment
	s.SegmentsAt(Point{5.0, 5.0}, func(seg *Segment) {
		through = append(through, seg)
	})
	test.T(t, through, []*Segment{a, b})

	// reinserting at the crossing flips their order below it
	s.Remove(nil, through, Point{5.0, 5.0})
	test.T(t, s.Len(), 0)
	s.Insert(through, nil, Point{5.0, 5.0})
	test.T(t, s.String(), b.String()+" "+a.String())
}

func TestSweepStatusAround(t *testing.T) {
	a := newSegment(Point{0.0, 10.0}, Point{0.0, 0.0}, 0)
	b := newSegment(Point{10.0, 10.0}, Point{10.0, 0.0}, 1)

	s := NewSweepStatus(failNow(t))
	s.Insert(nil, []*Segment{a}, a.From)
	s.Insert(nil, []*Segment{b}, b.From)

	left, right := s.Around(Point{5.0, 5.0})
	test.T(t, left, a)
	test.T(t, right, b)

	left, right = s.Around(Point{-5.0, 5.0})
	test.That(t, left == nil)
	test.T(t, right, a)

	left, right = s.Around(Point{15.0, 5.0})
	test.T(t, left, b)
	test.That(t, right == nil)
}

func TestSweepStatusBoundary(t *testing.T) {
	left := newSegment(Point{0.0, 10.0}, Point{0.0, 0.0}, 0)
	a := newSegment(Point{5.0, 10.0}, Point{4.0, 0.0}, 1)
	b := newSegment(Point{5.0, 10.0}, Point{6.0, 0.0}, 2)
	right := newSegment(Point{10.0, 10.0}, Point{10.0, 0.0}, 3)

	s := NewSweepStatus(failNow(t))
	p := Point{5.0, 10.0}
	s.Insert(nil, []*Segment{left}, left.From)
	s.Insert(nil, []*Segment{right}, right.From)
	s.Insert(nil, []*Segment{a, b}, p)

	l, first, last, r := s.Boundary(p)
	test.T(t, l, left)
	test.T(t, first, a)
	test.T(t, last, b)
	test.T(t, r, right)
}

func TestSweepStatusInconsistent(t *testing.T) {
	var msg string
	s := NewSweepStatus(func(m string) { msg = m })

	// removing an untracked segment is a structural anomaly
	seg := newSegment(Point{0.0, 10.0}, Point{10.0, 0.0}, 0)
	s.Remove([]*Segment{seg}, nil, Point{10.0, 0.0})
	test.That(t, msg != "")

	// inserting a tracked segment twice as well
	msg = ""
	s.Insert(nil, []*Segment{seg}, seg.From)
	s.Insert(nil, []*Segment{seg}, seg.From)
	test.That(t, msg != "")
}
