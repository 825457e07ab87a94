package view

import (
	"image"
	"log/slog"

	"github.com/soocke/contour-annotator-go/domain/annotation"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SessionHandlers receive the input of a session window.
type SessionHandlers struct {
	Pointer func(annotation.PointerEvent)
	Key     func(keysym string)
	Closed  func() // window manager close button
}

// SessionWindow is the toplevel showing one image. It implements the session
// presenter's view contract.
type SessionWindow struct {
	logger  *slog.Logger
	win     *ToplevelWidget
	preview FramePreview
	stats   SessionStats
	legend  *LabelWidget
}

// NewSessionWindow opens a toplevel titled title, showing initial, and binds
// mouse button 1 and key presses to handlers.
func NewSessionWindow(title string, initial image.Image, help string, handlers SessionHandlers, logger *slog.Logger) *SessionWindow {
	win := App.Toplevel()
	win.WmTitle(title)
	w := &SessionWindow{logger: logger, win: win}
	w.preview = NewFramePreview(win, 0, initial)
	w.stats = NewSessionStats(win, 1)
	w.legend = win.Label(Txt(help), Justify("left"), Anchor("w"))
	Grid(w.legend, Row(2), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.2m"))

	canvas := w.preview.Widget()
	pointer := func(kind annotation.PointerKind) func(*Event) {
		return func(e *Event) {
			if handlers.Pointer == nil {
				return
			}
			defer w.recoverLog("pointer handler panic")
			handlers.Pointer(annotation.PointerEvent{Kind: kind, X: e.X, Y: e.Y})
		}
	}
	Bind(canvas, "<ButtonPress-1>", Command(pointer(annotation.PointerPress)))
	Bind(canvas, "<B1-Motion>", Command(pointer(annotation.PointerMove)))
	Bind(canvas, "<ButtonRelease-1>", Command(pointer(annotation.PointerRelease)))
	Bind(win, "<KeyPress>", Command(func(e *Event) {
		if handlers.Key != nil {
			handlers.Key(e.Keysym)
		}
	}))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", func() {
		if handlers.Closed != nil {
			handlers.Closed()
			return
		}
		w.Close()
	})
	Focus(win)
	return w
}

// ShowFrame replaces the displayed frame.
func (w *SessionWindow) ShowFrame(img image.Image) {
	if w == nil || w.win == nil {
		return
	}
	defer w.recoverLog("frame update panic")
	w.preview.Show(img)
}

// SetStats updates the status line.
func (w *SessionWindow) SetStats(name string, contours, points, saves int) {
	if w == nil || w.win == nil {
		return
	}
	w.stats.Set(name, contours, points, saves)
}

// Close destroys the toplevel. Idempotent.
func (w *SessionWindow) Close() {
	if w == nil || w.win == nil {
		return
	}
	defer w.recoverLog("window destroy panic")
	w.preview.Dispose()
	Destroy(w.win)
	w.win = nil
}

func (w *SessionWindow) recoverLog(msg string) {
	if r := recover(); r != nil && w.logger != nil {
		w.logger.Error(msg, "error", r)
	}
}
