package intersect

import "github.com/paulmach/orb"

// AddLineString adds every linear segment of ls and returns the added segments in order.
func (s *Sweeper) AddLineString(ls orb.LineString) []*Segment {
	var segments []*Segment
	for i := 1; i < len(ls); i++ {
		segments = append(segments, s.AddSegment(Point{ls[i-1][0], ls[i-1][1]}, Point{ls[i][0], ls[i][1]}))
	}
	return segments
}

// AddRing adds the closed outline of r.
func (s *Sweeper) AddRing(r orb.Ring) []*Segment {
	return s.AddLineString(orb.LineString(r))
}

// AddPolygon adds the outlines of all rings of poly.
func (s *Sweeper) AddPolygon(poly orb.Polygon) []*Segment {
	var segments []*Segment
	for _, r := range poly {
		segments = append(segments, s.AddRing(r)...)
	}
	return segments
}

// SelfIntersections returns all points where ls crosses or touches itself. Consecutive segments meeting at their shared vertex are not self-intersections and are left out.
func SelfIntersections(ls orb.LineString) []Intersection {
	s := New()
	segments := s.AddLineString(ls)
	index := make(map[*Segment]int, len(segments))
	for i, seg := range segments {
		index[seg] = i
	}
	closed := 1 < len(ls) && ls[0] == ls[len(ls)-1]

	var zs []Intersection
	s.Found = func(p Point, parts []*Segment) bool {
		if len(parts) == 2 {
			i, oki := index[parts[0]]
			j, okj := index[parts[1]]
			if oki && okj {
				d := i - j
				if d < 0 {
					d = -d
				}
				if d == 1 || closed && d == len(segments)-1 {
					a, b := parts[0], parts[1]
					if (a.From.Equals(p) || a.To.Equals(p)) && (b.From.Equals(p) || b.To.Equals(p)) {
						return false // shared vertex of consecutive segments
					}
				}
			}
		}
		zs = append(zs, Intersection{p, parts})
		return false
	}
	s.Run()
	return zs
}
