package presenter

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/soocke/contour-annotator-go/domain/annotation"
	"github.com/soocke/contour-annotator-go/ui/images"
	"github.com/soocke/contour-annotator-go/ui/model"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type savedBlock struct {
	name     string
	contours []annotation.Contour
}

type mockSink struct {
	blocks []savedBlock
	err    error
}

func (s *mockSink) Append(name string, contours []annotation.Contour) error {
	if s.err != nil {
		return s.err
	}
	s.blocks = append(s.blocks, savedBlock{name: name, contours: contours})
	return nil
}

type mockView struct {
	frames   []image.Image
	closed   int
	name     string
	contours int
	points   int
	saves    int
}

func (v *mockView) ShowFrame(img image.Image) { v.frames = append(v.frames, img) }
func (v *mockView) SetStats(name string, contours, points, saves int) {
	v.name, v.contours, v.points, v.saves = name, contours, points, saves
}
func (v *mockView) Close() { v.closed++ }

func newTestSession(sink *mockSink, view *mockView, done *int) (*SessionPresenter, *model.AnnotationModel) {
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}
	m := model.NewAnnotationModel("/imgs/a.png", src)
	p := NewSessionPresenter(m, sink, view, DefaultKeyMap, images.Style{Color: color.RGBA{0, 255, 0, 255}, Width: 2}, discardLogger, func() { *done++ })
	return p, m
}

// drawSquare replays a drag as Tk reports it: the last motion event sits on
// the release position.
func drawSquare(p *SessionPresenter) {
	p.Pointer(annotation.Press(10, 10))
	p.Pointer(annotation.Move(20, 10))
	p.Pointer(annotation.Move(20, 20))
	p.Pointer(annotation.Release(20, 20))
}

func TestSessionPresenter_FirstTickShowsFrame(t *testing.T) {
	sink, view, done := &mockSink{}, &mockView{}, 0
	p, _ := newTestSession(sink, view, &done)
	p.Tick()
	if len(view.frames) != 1 || view.name != "a.png" {
		t.Fatalf("expected initial frame for a.png, frames=%d name=%q", len(view.frames), view.name)
	}
	p.Tick()
	if len(view.frames) != 1 {
		t.Fatalf("unchanged model should not redraw, frames=%d", len(view.frames))
	}
	drawSquare(p)
	p.Tick()
	if len(view.frames) != 2 || view.contours != 1 || view.points != 4 {
		t.Fatalf("expected redraw with 1 contour/4 points, frames=%d contours=%d points=%d", len(view.frames), view.contours, view.points)
	}
}

func TestSessionPresenter_SaveAppendsSnapshotWithoutMutation(t *testing.T) {
	sink, view, done := &mockSink{}, &mockView{}, 0
	p, m := newTestSession(sink, view, &done)
	drawSquare(p)
	p.Key("s")
	p.Key("s")
	p.Tick()
	if len(sink.blocks) != 2 {
		t.Fatalf("each save should append a block, got %d", len(sink.blocks))
	}
	want := annotation.Contour{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 20, Y: 20}}
	for i, b := range sink.blocks {
		if b.name != "a.png" || len(b.contours) != 1 || b.contours[0].String() != want.String() {
			t.Fatalf("block %d unexpected: %+v", i, b)
		}
	}
	if c, _ := m.Counts(); c != 1 {
		t.Fatalf("save must not clear the set")
	}
	if view.saves != 2 {
		t.Fatalf("stats should report 2 saves, got %d", view.saves)
	}
}

func TestSessionPresenter_SaveWithNoContoursWritesHeaderBlock(t *testing.T) {
	sink, view, done := &mockSink{}, &mockView{}, 0
	p, _ := newTestSession(sink, view, &done)
	p.Key("s")
	p.Tick()
	if len(sink.blocks) != 1 || len(sink.blocks[0].contours) != 0 {
		t.Fatalf("expected one empty block, got %+v", sink.blocks)
	}
}

func TestSessionPresenter_SaveErrorIsNotFatal(t *testing.T) {
	sink, view, done := &mockSink{err: errors.New("disk full")}, &mockView{}, 0
	p, m := newTestSession(sink, view, &done)
	drawSquare(p)
	p.Key("s")
	p.Tick()
	if p.Done() || m.Saves() != 0 {
		t.Fatalf("failed save should keep the session open and not count")
	}
}

func TestSessionPresenter_ClearRestoresUntouchedFrame(t *testing.T) {
	sink, view, done := &mockSink{}, &mockView{}, 0
	p, m := newTestSession(sink, view, &done)
	p.Tick()
	drawSquare(p)
	p.Tick()
	p.Key("c")
	p.Tick()
	if c, pts := m.Counts(); c != 0 || pts != 0 {
		t.Fatalf("clear should empty the set")
	}
	last := view.frames[len(view.frames)-1]
	src := m.Source()
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r1, g1, b1, a1 := last.At(x, y).RGBA()
			r2, g2, b2, a2 := src.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("cleared frame differs from source at (%d,%d)", x, y)
			}
		}
	}
}

func TestSessionPresenter_QuitClosesWithoutSaving(t *testing.T) {
	sink, view, done := &mockSink{}, &mockView{}, 0
	p, _ := newTestSession(sink, view, &done)
	drawSquare(p)
	p.Key("x") // ignored
	p.Key("q")
	p.Key("s") // after quit in the same batch: dropped
	p.Tick()
	if !p.Done() || view.closed != 1 || done != 1 {
		t.Fatalf("quit should close once and fire onDone: done=%v closed=%d onDone=%d", p.Done(), view.closed, done)
	}
	if len(sink.blocks) != 0 {
		t.Fatalf("quit must not auto-save")
	}
	p.Tick()
	p.Quit()
	p.Pointer(annotation.Press(1, 1))
	if view.closed != 1 || done != 1 {
		t.Fatalf("quit should be idempotent")
	}
}

func TestSessionPresenter_UnknownAndUppercaseKeysIgnored(t *testing.T) {
	sink, view, done := &mockSink{}, &mockView{}, 0
	p, m := newTestSession(sink, view, &done)
	drawSquare(p)
	for _, k := range []string{"S", "C", "Q", "Escape", "a", ""} {
		p.Key(k)
	}
	p.Tick()
	if p.Done() || len(sink.blocks) != 0 {
		t.Fatalf("unrecognised keys must have no effect")
	}
	if c, _ := m.Counts(); c != 1 {
		t.Fatalf("contours should be untouched")
	}
}

func TestKeyMap_Lookup(t *testing.T) {
	k := KeyMap{Save: "w", Clear: "e", Quit: "r"}
	if k.Lookup("w") != CommandSave || k.Lookup("e") != CommandClear || k.Lookup("r") != CommandQuit || k.Lookup("s") != CommandNone {
		t.Fatalf("custom key map lookup failed")
	}
	if CommandQuit.String() != "quit" {
		t.Fatalf("unexpected command name %s", CommandQuit)
	}
}

type countTicker struct{ n int }

func (c *countTicker) Tick() { c.n++ }

func TestLoop_TickAndStop(t *testing.T) {
	scheduled := 0
	l := NewLoop(func() { scheduled++ })
	l.Tick()
	if scheduled != 1 {
		t.Fatalf("idle loop should still reschedule")
	}
	ct := &countTicker{}
	l.SetSession(ct)
	l.Tick()
	if ct.n != 1 || scheduled != 2 {
		t.Fatalf("expected session tick + reschedule, got %d / %d", ct.n, scheduled)
	}
	l.Stop()
	l.Tick()
	if ct.n != 1 || scheduled != 2 {
		t.Fatalf("stopped loop should do nothing")
	}
	var nilLoop *Loop
	nilLoop.Tick()
}
