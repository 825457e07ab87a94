package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/contour-annotator-go/config"
	"github.com/soocke/contour-annotator-go/ui/theme"
)

// finishDelay keeps the "done" state visible briefly before the root closes.
const finishDelay = 300 * time.Millisecond

// Annotator owns the Tk lifecycle: root window, periodic tick and shutdown.
type Annotator struct {
	container *AppContainer
	logger    *slog.Logger
	width     int
	height    int
	afterID   string
	closed    bool
}

func NewAnnotator(title string, width, height int, cfg *config.Config, logger *slog.Logger) *Annotator {
	a := &Annotator{logger: logger, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))

	a.container = BuildContainer(cfg, logger, a.scheduleUpdate, a.finish)
	return a
}

// Start builds the control window, opens the first image and blocks in the
// Tk event loop until the walk ends or the user exits.
func (a *Annotator) Start() {
	c := a.container
	theme.InitStyles()
	c.RootView.Build(c.Config.Folder, a.exitHandler)

	a.scheduleUpdate()
	c.Walk.Start()

	App.Wait()
	if a.logger != nil {
		a.logger.Info("annotator stopped", "output", c.Sink.Path())
	}
}

func (a *Annotator) scheduleUpdate() {
	if a.closed {
		return
	}
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.container.Tick, func() {
		defer func() {
			if r := recover(); r != nil {
				if a.logger != nil {
					a.logger.Error("tick panic", "error", r)
				}
				a.scheduleUpdate()
			}
		}()
		a.container.Loop.Tick()
	})
}

// finish runs once the directory walk is exhausted.
func (a *Annotator) finish() {
	if a.closed {
		return
	}
	a.container.Loop.Stop()
	TclAfter(finishDelay, a.exitHandler)
}

func (a *Annotator) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	a.container.Loop.Stop()
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}
