package view

import (
	"image"

	"github.com/soocke/contour-annotator-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FramePreview shows composed frames at native resolution inside a label, so
// label-relative pointer coordinates are image pixel coordinates.
type FramePreview interface {
	Widget() *LabelWidget
	Show(img image.Image)
	Dispose()
}

type framePreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo, deleted before replacement
}

// NewFramePreview creates the label inside parent and grids it at (row, 0).
// The label carries no border or padding so (0,0) is the image origin.
func NewFramePreview(parent *ToplevelWidget, row int, initial image.Image) FramePreview {
	photo := NewPhoto(Data(images.EncodePNG(initial)))
	lbl := parent.Label(Image(photo), Borderwidth(0), Padx(0), Pady(0), Highlightthickness(0), Cursor("crosshair"))
	Grid(lbl, Row(row), Column(0), Sticky("nw"))
	return &framePreview{label: lbl, prevPhoto: photo}
}

func (v *framePreview) Widget() *LabelWidget { return v.label }

func (v *framePreview) Show(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if len(pngBytes) == 0 {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

func (v *framePreview) Dispose() {
	if v == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
		v.prevPhoto = nil
	}
	v.label = nil
}
