package view

import (
	"fmt"

	"github.com/soocke/contour-annotator-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows the image name and annotation counters under the frame.
type SessionStats interface {
	Set(name string, contours, points, saves int)
}

type sessionStats struct {
	lbl *TLabelWidget
}

// NewSessionStats creates the status label in parent at (row, 0).
func NewSessionStats(parent *ToplevelWidget, row int) SessionStats {
	s := &sessionStats{lbl: parent.TLabel(Style(theme.StyleStatusLabel), Anchor("w"))}
	Grid(s.lbl, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	s.lbl.Configure(Txt("Contours: 0  Points: 0"))
	return s
}

func (s *sessionStats) Set(name string, contours, points, saves int) {
	if s == nil || s.lbl == nil {
		return
	}
	text := fmt.Sprintf("%s  |  Contours: %d  Points: %d", name, contours, points)
	if saves > 0 {
		text += fmt.Sprintf("  Saved: %dx", saves)
	}
	s.lbl.Configure(Txt(text))
}
