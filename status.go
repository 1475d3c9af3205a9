package intersect

import (
	"fmt"
	"strings"

	"github.com/tdewolff/intersect/avl"
)

// SweepStatus is the ordered set of segments currently crossing the sweep line, from left to right. The ordering key is the x-coordinate where each segment crosses the horizontal line through the current event point; it is recomputed on every comparison since it shifts as the sweep advances, while the relative order of non-intersecting segments never changes between consecutive events. Segments meeting at the current point tie on x and are ordered by angle, fanning out below the sweep line, with the insertion index as final tie-break so that collinear overlapping segments still order deterministically.
type SweepStatus struct {
	tree *avl.Tree[*Segment]
	pos  Point        // current event point
	fail func(string) // receives structural anomalies
}

// NewSweepStatus returns an empty status. fail receives a message whenever the status detects that its order has become inconsistent with the segment geometry.
func NewSweepStatus(fail func(string)) *SweepStatus {
	s := &SweepStatus{fail: fail}
	s.tree = avl.New(s.compare)
	return s
}

// Len returns the number of segments crossing the sweep line.
func (s *SweepStatus) Len() int {
	return s.tree.Len()
}

func (s *SweepStatus) compare(a, b *Segment) int {
	if a == b {
		return 0
	}
	ax, bx := a.xAt(s.pos), b.xAt(s.pos)
	if !Equal(ax, bx) {
		if ax < bx {
			return -1
		}
		return 1
	} else if !Equal(a.angle, b.angle) {
		if a.angle < b.angle {
			return -1
		}
		return 1
	} else if a.index != b.index {
		if a.index < b.index {
			return -1
		}
		return 1
	}
	return 0
}

// at returns the probe comparator locating point p between the segments of the status.
func (s *SweepStatus) at(p Point) func(*Segment) int {
	return func(seg *Segment) int {
		x := seg.xAt(p)
		if Equal(p.X, x) {
			return 0
		} else if p.X < x {
			return -1
		}
		return 1
	}
}

// Insert adds the interior and upper segments of the event at p to the status, ordered by their position just below p.
func (s *SweepStatus) Insert(interior, upper []*Segment, p Point) {
	s.pos = p
	for _, seg := range interior {
		s.insert(seg)
	}
	for _, seg := range upper {
		s.insert(seg)
	}
}

func (s *SweepStatus) insert(seg *Segment) {
	if seg.node != nil {
		s.fail(fmt.Sprintf("sweep status already contains %v", seg))
		return
	}
	seg.node = s.tree.Insert(seg)
}

// Remove removes the lower and interior segments of the event at p from the status. Lower segments end at p and are retired; interior segments continue below p and are reinserted afterwards so that their order reflects their position below the crossing.
func (s *SweepStatus) Remove(lower, interior []*Segment, p Point) {
	s.pos = p
	for _, seg := range lower {
		s.remove(seg)
	}
	for _, seg := range interior {
		s.remove(seg)
	}
}

func (s *SweepStatus) remove(seg *Segment) {
	if seg.node == nil {
		s.fail(fmt.Sprintf("sweep status does not contain %v", seg))
		return
	}
	s.tree.Remove(seg.node)
	seg.node = nil
}

// SegmentsAt calls visit, from left to right, for every tracked segment whose supporting line passes through p within tolerance. Segments ending exactly at p are included.
func (s *SweepStatus) SegmentsAt(p Point, visit func(*Segment)) {
	s.pos = p
	n := s.tree.FindWith(s.at(p))
	if n == nil {
		return
	}
	for m := n.Prev(); m != nil && Equal(m.Item.xAt(p), p.X); m = m.Prev() {
		n = m
	}
	for ; n != nil && Equal(n.Item.xAt(p), p.X); n = n.Next() {
		visit(n.Item)
	}
}

// Around returns the segments immediately left and right of p in status order, for event points that no tracked segment starts at, ends at, or passes through. Either can be nil at the outer ends.
func (s *SweepStatus) Around(p Point) (*Segment, *Segment) {
	s.pos = p
	var left, right *Segment
	prev, next := s.tree.Neighbors(s.at(p))
	if prev != nil {
		left = prev.Item
	}
	if next != nil {
		right = next.Item
	}
	return left, right
}

// Boundary returns the block of segments passing through p by its leftmost and rightmost members first and last, together with the segments left and right immediately outside the block. left and right are nil at the outer ends; first and last are nil when no tracked segment passes through p.
func (s *SweepStatus) Boundary(p Point) (left, first, last, right *Segment) {
	s.pos = p
	n := s.tree.FindWith(s.at(p))
	if n == nil {
		return
	}
	lo, hi := n, n
	for m := lo.Prev(); m != nil && Equal(m.Item.xAt(p), p.X); m = m.Prev() {
		lo = m
	}
	for m := hi.Next(); m != nil && Equal(m.Item.xAt(p), p.X); m = m.Next() {
		hi = m
	}
	first, last = lo.Item, hi.Item
	if m := lo.Prev(); m != nil {
		left = m.Item
	}
	if m := hi.Next(); m != nil {
		right = m.Item
	}
	return
}

func (s *SweepStatus) String() string {
	sb := strings.Builder{}
	for n := s.tree.First(); n != nil; n = n.Next() {
		if 0 < sb.Len() {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", n.Item)
	}
	return sb.String()
}
