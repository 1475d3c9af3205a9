// Package intersect finds all points where two or more planar line segments intersect, using the Bentley-Ottmann sweep line algorithm in O((n+k) log n) for n segments with k intersections.
//
// A horizontal sweep line moves from top to bottom over the plane. The event schedule holds the points at which the sweep state must change, and the sweep status tracks the segments currently crossing the sweep line from left to right. At every event point the segments starting, passing through, and ending there are collected; when more than one meets the point it is reported as an intersection, and segments that become adjacent in the status are probed for intersections below the sweep line, which are scheduled as new events.
//
// See M. de Berg, et al. "Computational Geometry", Chapter 2, DOI: 10.1007/978-3-540-77974-2
package intersect

import "fmt"

// Intersection is a reported intersection point together with the segments that meet there: all segments of the input whose extent contains the point.
type Intersection struct {
	Point
	Segments []*Segment
}

func (z Intersection) String() string {
	return fmt.Sprintf("%v%v", z.Point, z.Segments)
}

// Sweeper finds all intersections between a set of line segments. Segments are added with AddSegment, after which Run drains the event schedule, or Step advances it one event at a time. A Sweeper is used by one goroutine at a time; independent Sweepers need no coordination.
type Sweeper struct {
	// Found is called for every intersection in sweep order. Returning true stops the run after the current event completes. Results are accumulated whether or not Found is set.
	Found func(p Point, segments []*Segment) bool

	// Error receives anomalies: a duplicate intersection report, or a status order inconsistent with the segment geometry. When nil anomalies panic, as continuing may silently yield wrong output.
	Error func(msg string)

	queue   *SweepQueue
	status  *SweepStatus
	results []Intersection
	nsegs   int
	stopped bool
}

// New returns an empty Sweeper.
func New() *Sweeper {
	s := &Sweeper{}
	s.queue = NewSweepQueue()
	s.status = NewSweepStatus(s.fail)
	return s
}

// Intersections returns all points where two or more of the given segments meet, in sweep order: from top to bottom, and from left to right at equal height.
func Intersections(segments [][2]Point) []Intersection {
	s := New()
	for _, seg := range segments {
		s.AddSegment(seg[0], seg[1])
	}
	return s.Run()
}

// Queue returns the event schedule. Callers driving the sweep manually must not reorder it.
func (s *Sweeper) Queue() *SweepQueue {
	return s.queue
}

// Status returns the sweep status. Callers driving the sweep manually must not reorder it.
func (s *Sweeper) Status() *SweepStatus {
	return s.status
}

// Results returns the intersections reported so far.
func (s *Sweeper) Results() []Intersection {
	return s.results
}

func (s *Sweeper) fail(msg string) {
	if s.Error != nil {
		s.Error(msg)
		return
	}
	panic(msg)
}

func (s *Sweeper) report(p Point, segments []*Segment) {
	s.results = append(s.results, Intersection{p, segments})
	if s.Found != nil && s.Found(p, segments) {
		s.stopped = true
	}
}

// AddSegment adds the segment between from and to and schedules its endpoint events, returning the canonicalized segment. Segments may be added while a sweep is in progress as long as they do not extend above the current event point. A duplicate of an already added segment is attached to that segment's endpoint events and reported there as a full overlap, together with any other segment meeting those points, but never enters the status, which cannot order two identical segments.
func (s *Sweeper) AddSegment(from, to Point) *Segment {
	seg := newSegment(from, to, s.nsegs)
	s.nsegs++

	if seg.Degenerate() {
		// a point contributes only an endpoint to the schedule
		s.queue.Insert(seg.From)
		return seg
	}

	if e := s.queue.Find(seg.From); e != nil {
		for _, o := range e.Upper {
			if o.To.Equals(seg.To) {
				// identical duplicate, a full overlap carried by the endpoint events
				e.Overlaps = append(e.Overlaps, seg)
				if eTo := s.queue.Find(seg.To); eTo != nil {
					eTo.Overlaps = append(eTo.Overlaps, seg)
				}
				return seg
			}
		}
	}
	s.queue.Insert(seg.From, seg)
	s.queue.Insert(seg.To)
	return seg
}

// Step processes the topmost pending event and returns whether more work remains. It returns false once the schedule is empty or Found has requested a stop.
func (s *Sweeper) Step() bool {
	if s.stopped {
		return false
	}
	e := s.queue.Pop()
	if e == nil {
		return false
	}
	s.process(e)
	if !s.stopped && s.queue.Empty() && 0 < s.status.Len() {
		// every tracked segment schedules its To event, so a drained schedule with a
		// non-empty status means the status order lost a segment
		s.fail(fmt.Sprintf("sweep status still tracks %v after the last event", s.status))
	}
	return !s.stopped && !s.queue.Empty()
}

// Run drains the event schedule and returns all intersections in sweep order. When Found stops the run early, the results accumulated so far are returned.
func (s *Sweeper) Run() []Intersection {
	for s.Step() {
	}
	return s.results
}

func (s *Sweeper) process(e *SweepEvent) {
	p := e.Point

	// split the tracked segments meeting p into those ending at p and those passing through
	var lower, interior []*Segment
	s.status.SegmentsAt(p, func(seg *Segment) {
		if seg.To.Equals(p) {
			lower = append(lower, seg)
		} else {
			interior = append(interior, seg)
		}
	})
	upper := e.Upper

	if 1 < len(upper)+len(interior)+len(lower)+len(e.Overlaps) || len(upper) == 0 && len(lower) == 0 && 0 < len(interior) {
		// more than one segment meets p, or p is an isolated event point (such as another
		// segment's endpoint) on a segment's interior
		if !e.reported {
			e.reported = true
			segments := make([]*Segment, 0, len(interior)+len(lower)+len(upper)+len(e.Overlaps))
			segments = append(segments, interior...)
			segments = append(segments, lower...)
			segments = append(segments, upper...)
			segments = append(segments, e.Overlaps...)
			s.report(p, segments)
		}
	}

	// segments ending at p retire, segments passing through are reinserted to restore
	// their left-to-right order below the crossing, and segments starting at p join them
	s.status.Remove(lower, interior, p)
	s.status.Insert(interior, upper, p)

	// probe segment pairs that have become adjacent in the status for future intersections
	if len(upper)+len(interior) == 0 {
		left, right := s.status.Around(p)
		if left != nil && right != nil {
			s.findNewEvent(left, right, e)
		}
	} else {
		left, first, last, right := s.status.Boundary(p)
		if left != nil {
			s.findNewEvent(left, first, e)
		}
		if right != nil {
			s.findNewEvent(last, right, e)
		}
	}
}

// findNewEvent tests two newly adjacent segments for an intersection below the sweep line and schedules it as a future event. Intersections above the sweep line, or on it but left of the current point, have been handled before. A candidate that coincides with the current point after it was reported means the same intersection surfaced twice, an anomaly that is signalled and dropped.
func (s *Sweeper) findNewEvent(left, right *Segment, e *SweepEvent) {
	z, ok := intersectSegments(left, right)
	if !ok {
		return
	}

	p := e.Point
	if z.Equals(p) {
		if e.reported {
			s.fail(fmt.Sprintf("intersection %v between %v and %v was already reported", z, left, right))
		}
		return
	} else if Equal(z.Y, p.Y) {
		if z.X < p.X {
			return // on the sweep line but already passed
		}
	} else if p.Y < z.Y {
		return // above the sweep line
	}

	if s.queue.Find(z) == nil {
		s.queue.Insert(z)
	}
}
