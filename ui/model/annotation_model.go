package model

import (
	"image"
	"path/filepath"

	"github.com/soocke/contour-annotator-go/domain/annotation"
)

// AnnotationModel owns the annotation state for one open image. It replaces
// any process-wide state: each session gets its own model, passed by pointer to
// the event handlers. No synchronization needed: every mutation happens on the
// Tk event loop.
type AnnotationModel struct {
	path     string
	source   image.Image
	set      annotation.Set
	revision uint64
	saves    int
}

// NewAnnotationModel returns an empty model for the image at path.
func NewAnnotationModel(path string, source image.Image) *AnnotationModel {
	return &AnnotationModel{path: path, source: source}
}

// Path is the full image path.
func (m *AnnotationModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

// Name is the image base filename used in the persisted record.
func (m *AnnotationModel) Name() string {
	if m == nil {
		return ""
	}
	return filepath.Base(m.path)
}

// Source is the untouched decoded image.
func (m *AnnotationModel) Source() image.Image {
	if m == nil {
		return nil
	}
	return m.source
}

// Apply feeds a pointer event into the annotation set. The revision only
// advances when the set actually changed.
func (m *AnnotationModel) Apply(ev annotation.PointerEvent) {
	if m == nil {
		return
	}
	before := m.set.PointCount()
	wasDrawing := m.set.Drawing()
	m.set = annotation.Apply(m.set, ev)
	if m.set.PointCount() != before || m.set.Drawing() != wasDrawing {
		m.revision++
	}
}

// Clear drops every contour and any stroke in progress.
func (m *AnnotationModel) Clear() {
	if m == nil {
		return
	}
	m.set = annotation.Set{}
	m.revision++
}

// Contours returns a copy of the current contours.
func (m *AnnotationModel) Contours() []annotation.Contour {
	if m == nil {
		return nil
	}
	return m.set.Contours()
}

// Counts returns the number of contours and points.
func (m *AnnotationModel) Counts() (contours, points int) {
	if m == nil {
		return 0, 0
	}
	return m.set.Len(), m.set.PointCount()
}

// Revision changes whenever the contours change; views redraw on change.
func (m *AnnotationModel) Revision() uint64 {
	if m == nil {
		return 0
	}
	return m.revision
}

// MarkSaved records a successful save. It does not touch the contours.
func (m *AnnotationModel) MarkSaved() {
	if m != nil {
		m.saves++
	}
}

// Saves is the number of successful saves for this image.
func (m *AnnotationModel) Saves() int {
	if m == nil {
		return 0
	}
	return m.saves
}
