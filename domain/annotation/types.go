package annotation

import (
	"strconv"
	"strings"
)

// Point is a pixel coordinate reported by the windowing layer.
type Point struct {
	X, Y int
}

// Contour is an ordered point list for one freehand polygon.
type Contour []Point

// String renders the contour as a literal list of (x, y) pairs, e.g.
// "[(10, 10), (20, 10)]". This is the persisted line format.
func (c Contour) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(p.X))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(p.Y))
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}

// Clone returns a copy that shares no backing array with c.
func (c Contour) Clone() Contour {
	if c == nil {
		return nil
	}
	out := make(Contour, len(c))
	copy(out, c)
	return out
}

// PointerKind enumerates the pointer events understood by Apply.
type PointerKind int

const (
	PointerPress PointerKind = iota + 1
	PointerMove
	PointerRelease
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	default:
		return "unknown"
	}
}

// PointerEvent is a single press/move/release carrying window pixel coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// Press, Move and Release build pointer events.
func Press(x, y int) PointerEvent   { return PointerEvent{Kind: PointerPress, X: x, Y: y} }
func Move(x, y int) PointerEvent    { return PointerEvent{Kind: PointerMove, X: x, Y: y} }
func Release(x, y int) PointerEvent { return PointerEvent{Kind: PointerRelease, X: x, Y: y} }
