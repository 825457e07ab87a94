package annotation

// Set is the annotation state for the image currently on screen: the contours
// drawn so far and whether a stroke is in progress. The zero value is an empty,
// idle set.
//
// Set values are treated as immutable by Apply; every transition returns a new
// Set whose contour slice does not alias the input.
type Set struct {
	contours []Contour
	drawing  bool
}

// Apply returns the state that results from feeding ev into s.
//
//   - press starts a new contour holding only the press point and begins drawing
//   - move appends to the newest contour, only while drawing
//   - release appends the release point to the newest contour and stops drawing
//
// Coordinates are accepted verbatim. A release with no contour to close only
// clears the drawing flag.
func Apply(s Set, ev PointerEvent) Set {
	p := Point{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case PointerPress:
		next := Set{contours: make([]Contour, len(s.contours), len(s.contours)+1), drawing: true}
		copy(next.contours, s.contours)
		next.contours = append(next.contours, Contour{p})
		return next
	case PointerMove:
		if !s.drawing || len(s.contours) == 0 {
			return s
		}
		return s.extendTail(p, true)
	case PointerRelease:
		if len(s.contours) == 0 {
			return Set{}
		}
		return s.extendTail(p, false)
	default:
		return s
	}
}

// extendTail returns a set with p appended to the newest contour. Only the
// outer slice and the newest contour are copied; older contours are never
// appended to again and may be shared.
func (s Set) extendTail(p Point, drawing bool) Set {
	next := Set{contours: make([]Contour, len(s.contours)), drawing: drawing}
	copy(next.contours, s.contours)
	last := len(next.contours) - 1
	tail := make(Contour, len(s.contours[last]), len(s.contours[last])+1)
	copy(tail, s.contours[last])
	next.contours[last] = append(tail, p)
	return next
}

// Clone deep-copies the set.
func (s Set) Clone() Set {
	out := Set{drawing: s.drawing}
	if len(s.contours) > 0 {
		out.contours = make([]Contour, len(s.contours))
		for i, c := range s.contours {
			out.contours[i] = c.Clone()
		}
	}
	return out
}

// Contours returns a copy of the contours in drawing order.
func (s Set) Contours() []Contour { return s.Clone().contours }

// Drawing reports whether a stroke is in progress.
func (s Set) Drawing() bool { return s.drawing }

// Len is the number of contours.
func (s Set) Len() int { return len(s.contours) }

// PointCount is the total number of points across all contours.
func (s Set) PointCount() int {
	n := 0
	for _, c := range s.contours {
		n += len(c)
	}
	return n
}

// Empty reports whether the set holds no contours.
func (s Set) Empty() bool { return len(s.contours) == 0 }
