package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/contour-annotator-go/domain/annotation"
	"github.com/soocke/contour-annotator-go/domain/record"
	"github.com/soocke/contour-annotator-go/ui/images"
	"github.com/soocke/contour-annotator-go/ui/model"
)

// SessionView is the display surface of one image session.
type SessionView interface {
	ShowFrame(img image.Image)
	SetStats(name string, contours, points, saves int)
	Close()
}

// SessionPresenter runs the per-image session: pointer events mutate the
// model, key commands queue up and are dispatched on Tick, and the frame is
// recomposed whenever the contours changed.
type SessionPresenter struct {
	model  *model.AnnotationModel
	sink   record.Sink
	view   SessionView
	keys   KeyMap
	style  images.Style
	logger *slog.Logger
	onDone func()

	pending  []string
	drawnRev uint64
	drawn    bool
	done     bool
}

// NewSessionPresenter returns a presenter for m. onDone runs once, after quit.
func NewSessionPresenter(m *model.AnnotationModel, sink record.Sink, view SessionView, keys KeyMap, style images.Style, logger *slog.Logger, onDone func()) *SessionPresenter {
	return &SessionPresenter{model: m, sink: sink, view: view, keys: keys, style: style, logger: logger, onDone: onDone}
}

// Pointer forwards a pointer event to the model.
func (p *SessionPresenter) Pointer(ev annotation.PointerEvent) {
	if p == nil || p.done || p.model == nil {
		return
	}
	p.model.Apply(ev)
}

// Key queues a key symbol for the next Tick.
func (p *SessionPresenter) Key(keysym string) {
	if p == nil || p.done {
		return
	}
	p.pending = append(p.pending, keysym)
}

// Done reports whether the session has quit.
func (p *SessionPresenter) Done() bool { return p == nil || p.done }

// Tick drains queued keys, then redraws if the contours changed.
func (p *SessionPresenter) Tick() {
	if p == nil || p.done || p.model == nil || p.view == nil {
		return
	}
	keys := p.pending
	p.pending = nil
	for _, k := range keys {
		switch p.keys.Lookup(k) {
		case CommandSave:
			p.save()
		case CommandClear:
			p.model.Clear()
			if p.logger != nil {
				p.logger.Info("annotations cleared", "image", p.model.Name())
			}
		case CommandQuit:
			p.Quit()
			return
		}
	}
	p.refresh()
}

// Quit closes the view without saving and fires onDone. Idempotent.
func (p *SessionPresenter) Quit() {
	if p == nil || p.done {
		return
	}
	p.done = true
	p.pending = nil
	if p.view != nil {
		p.view.Close()
	}
	if p.logger != nil {
		p.logger.Info("finished processing image", "image", p.model.Name())
	}
	if p.onDone != nil {
		p.onDone()
	}
}

func (p *SessionPresenter) save() {
	if p.sink == nil {
		return
	}
	contours := p.model.Contours()
	if err := p.sink.Append(p.model.Name(), contours); err != nil {
		if p.logger != nil {
			p.logger.Error("annotation save failed", "image", p.model.Path(), "error", err)
		}
		return
	}
	p.model.MarkSaved()
	p.drawn = false // stats changed
	if p.logger != nil {
		p.logger.Info("annotations saved", "image", p.model.Path(), "contours", len(contours))
	}
}

func (p *SessionPresenter) refresh() {
	rev := p.model.Revision()
	if p.drawn && rev == p.drawnRev {
		return
	}
	frame, err := images.Render(p.model.Source(), p.model.Contours(), p.style)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("frame render failed", "image", p.model.Name(), "error", err)
		}
		return
	}
	p.view.ShowFrame(frame)
	c, pts := p.model.Counts()
	p.view.SetStats(p.model.Name(), c, pts, p.model.Saves())
	p.drawnRev = rev
	p.drawn = true
}
