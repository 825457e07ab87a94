package model

import (
	"image"
	"testing"

	"github.com/soocke/contour-annotator-go/domain/annotation"
)

func TestAnnotationModel_ApplyAndRevision(t *testing.T) {
	m := NewAnnotationModel("/data/imgs/a.png", image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if m.Name() != "a.png" {
		t.Fatalf("expected base name, got %q", m.Name())
	}
	r0 := m.Revision()
	m.Apply(annotation.Move(1, 1)) // idle move: no change
	if m.Revision() != r0 {
		t.Fatalf("idle move should not bump revision")
	}
	m.Apply(annotation.Press(1, 1))
	m.Apply(annotation.Move(2, 1))
	m.Apply(annotation.Move(2, 2))
	m.Apply(annotation.Release(2, 2))
	if m.Revision() <= r0 {
		t.Fatalf("expected revision to advance")
	}
	c, p := m.Counts()
	if c != 1 || p != 4 {
		t.Fatalf("expected 1 contour / 4 points, got %d / %d", c, p)
	}
}

func TestAnnotationModel_ClearAndSaveDoNotInterfere(t *testing.T) {
	m := NewAnnotationModel("b.jpg", nil)
	m.Apply(annotation.Press(0, 0))
	m.Apply(annotation.Release(5, 5))
	before := m.Contours()
	m.MarkSaved()
	m.MarkSaved()
	if m.Saves() != 2 {
		t.Fatalf("expected 2 saves, got %d", m.Saves())
	}
	if after := m.Contours(); len(after) != len(before) || len(after[0]) != len(before[0]) {
		t.Fatalf("saving must not change contours: %v vs %v", after, before)
	}
	rev := m.Revision()
	m.Clear()
	if c, p := m.Counts(); c != 0 || p != 0 {
		t.Fatalf("clear should empty the set, got %d / %d", c, p)
	}
	if m.Revision() == rev {
		t.Fatalf("clear should bump revision")
	}
	// A stroke interrupted by clear does not resume on move.
	m.Apply(annotation.Press(1, 1))
	m.Clear()
	m.Apply(annotation.Move(2, 2))
	if c, _ := m.Counts(); c != 0 {
		t.Fatalf("move after clear should not recreate contours")
	}
}

func TestAnnotationModel_NilSafe(t *testing.T) {
	var m *AnnotationModel
	m.Apply(annotation.Press(1, 1))
	m.Clear()
	m.MarkSaved()
	if m.Name() != "" || m.Revision() != 0 || m.Contours() != nil || m.Source() != nil {
		t.Fatalf("nil model should be inert")
	}
}
