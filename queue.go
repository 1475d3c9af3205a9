package intersect

import (
	"fmt"
	"strings"

	"github.com/tdewolff/intersect/avl"
)

// SweepEvent is a point at which the sweep line state must be updated: a segment starts or ends here, or an intersection was discovered here. Upper lists the segments whose From endpoint is this point; it is empty for pure end or intersection events. Overlaps lists duplicates of segments meeting this point; they take part in reports but are never tracked by the status, which cannot order identical segments.
type SweepEvent struct {
	Point
	Upper    []*Segment
	Overlaps []*Segment

	reported bool // an intersection at this point has been reported
}

func (e *SweepEvent) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%v", e.Point)
	for _, seg := range e.Upper {
		fmt.Fprintf(&sb, " %v", seg)
	}
	return sb.String()
}

// SweepQueue is the schedule of pending sweep events, ordered from top to bottom and from left to right at equal height. It holds at most one event per distinct point; inserting at an existing point merges into it.
type SweepQueue struct {
	tree *avl.Tree[*SweepEvent]
}

// NewSweepQueue returns an empty event schedule.
func NewSweepQueue() *SweepQueue {
	return &SweepQueue{avl.New(func(a, b *SweepEvent) int {
		return comparePoints(a.Point, b.Point)
	})}
}

// Insert schedules an event at p and returns it. When an event at the same point (within Epsilon) already exists, the given upper segments are merged into it instead.
func (q *SweepQueue) Insert(p Point, upper ...*Segment) *SweepEvent {
	if e := q.Find(p); e != nil {
		e.Upper = append(e.Upper, upper...)
		return e
	}
	e := &SweepEvent{Point: p, Upper: upper}
	q.tree.Insert(e)
	return e
}

// Pop removes and returns the topmost pending event, or nil when the schedule is empty.
func (q *SweepQueue) Pop() *SweepEvent {
	n := q.tree.First()
	if n == nil {
		return nil
	}
	e := n.Item
	q.tree.Remove(n)
	return e
}

// Find returns the event at p (within Epsilon), or nil.
func (q *SweepQueue) Find(p Point) *SweepEvent {
	if n := q.tree.Find(&SweepEvent{Point: p}); n != nil {
		return n.Item
	}
	return nil
}

// Empty returns true if no events are pending.
func (q *SweepQueue) Empty() bool {
	return q.tree.Len() == 0
}
