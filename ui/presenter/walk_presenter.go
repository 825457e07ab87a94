package presenter

import (
	"image"
	"log/slog"
	"path/filepath"

	"github.com/soocke/contour-annotator-go/domain/annotation"
	"github.com/soocke/contour-annotator-go/domain/record"
	"github.com/soocke/contour-annotator-go/domain/walk"
	"github.com/soocke/contour-annotator-go/ui/images"
	"github.com/soocke/contour-annotator-go/ui/model"
)

// SessionInput carries window input to the active session.
type SessionInput struct {
	Pointer func(annotation.PointerEvent)
	Key     func(keysym string)
	Closed  func()
}

// ViewFactory opens the display surface for one image.
type ViewFactory func(title string, initial image.Image, in SessionInput) SessionView

// ImageLoader decodes an image file.
type ImageLoader func(path string) (image.Image, error)

// ProgressView reports walk progress.
type ProgressView interface {
	SetProgress(index, total int, current string)
	SetFinished(total int)
}

// WalkPresenter drives the directory walk: it opens one session at a time and
// advances when that session quits. Images that fail to load are skipped.
type WalkPresenter struct {
	walker   *walk.Walker
	load     ImageLoader
	newView  ViewFactory
	sink     record.Sink
	keys     KeyMap
	style    images.Style
	loop     *Loop
	progress ProgressView
	logger   *slog.Logger
	finish   func()

	total    int
	active   *SessionPresenter
	finished bool
}

// WalkDeps groups WalkPresenter collaborators.
type WalkDeps struct {
	Walker   *walk.Walker
	Load     ImageLoader
	NewView  ViewFactory
	Sink     record.Sink
	Keys     KeyMap
	Style    images.Style
	Loop     *Loop
	Progress ProgressView
	Logger   *slog.Logger
	Finish   func() // called once the walk is exhausted
}

func NewWalkPresenter(d WalkDeps) *WalkPresenter {
	if d.Load == nil {
		d.Load = images.Load
	}
	return &WalkPresenter{
		walker:   d.Walker,
		load:     d.Load,
		newView:  d.NewView,
		sink:     d.Sink,
		keys:     d.Keys,
		style:    d.Style,
		loop:     d.Loop,
		progress: d.Progress,
		logger:   d.Logger,
		finish:   d.Finish,
		total:    len(d.Walker.Names()),
	}
}

// Start opens the first loadable image, or finishes immediately.
func (w *WalkPresenter) Start() { w.advance() }

// Active returns the running session, if any.
func (w *WalkPresenter) Active() *SessionPresenter { return w.active }

// Finished reports whether the walk is exhausted.
func (w *WalkPresenter) Finished() bool { return w.finished }

func (w *WalkPresenter) advance() {
	if w.finished {
		return
	}
	if w.walker.Advance(w.open) {
		return
	}
	w.finished = true
	w.active = nil
	w.loop.SetSession(nil)
	if w.progress != nil {
		w.progress.SetFinished(w.total)
	}
	if w.logger != nil {
		w.logger.Info("image walk finished", "images", w.total)
	}
	if w.finish != nil {
		w.finish()
	}
}

// open is the per-image step; false means the image was skipped.
func (w *WalkPresenter) open(path string) bool {
	img, err := w.load(path)
	if err != nil || img == nil {
		if w.logger != nil {
			w.logger.Error("image load failed", "path", path, "error", err)
		}
		return false
	}
	name := filepath.Base(path)
	m := model.NewAnnotationModel(path, img)
	var sp *SessionPresenter
	in := SessionInput{
		Pointer: func(ev annotation.PointerEvent) { sp.Pointer(ev) },
		Key:     func(k string) { sp.Key(k) },
		Closed:  func() { sp.Quit() },
	}
	view := w.newView(name, images.Snapshot(img), in)
	sp = NewSessionPresenter(m, w.sink, view, w.keys, w.style, w.logger, w.sessionDone)
	w.active = sp
	w.loop.SetSession(sp)
	if w.progress != nil {
		w.progress.SetProgress(w.total-w.walker.Remaining(), w.total, name)
	}
	return true
}

func (w *WalkPresenter) sessionDone() {
	w.active = nil
	w.loop.SetSession(nil)
	w.advance()
}
