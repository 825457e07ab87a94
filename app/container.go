package app

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/contour-annotator-go/assets"
	"github.com/soocke/contour-annotator-go/config"
	"github.com/soocke/contour-annotator-go/domain/record"
	"github.com/soocke/contour-annotator-go/domain/walk"
	"github.com/soocke/contour-annotator-go/ui/images"
	"github.com/soocke/contour-annotator-go/ui/presenter"
	"github.com/soocke/contour-annotator-go/ui/view"
)

// AppContainer assembles the walker, record sink, presenters and root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Walker   *walk.Walker
	Sink     *record.FileSink
	RootView *view.RootView
	Keys     presenter.KeyMap
	Style    images.Style
	Tick     time.Duration

	Loop *presenter.Loop
	Walk *presenter.WalkPresenter
}

// BuildContainer constructs all components. Side-effects limited to listing the folder.
// Widgets are not created here; the view factory opens them when a session starts.
func BuildContainer(cfg *config.Config, logger *slog.Logger, schedule func(), finish func()) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Walker = walk.New(cfg.Folder, cfg.Extensions, logger)
	c.Sink = record.NewFileSink(cfg.OutputPath)
	c.Keys = presenter.KeyMapFromConfig(cfg)
	c.Style = images.Style{Color: cfg.StrokeColor(), Width: cfg.LineWidth}
	c.Tick = time.Duration(cfg.TickMillis) * time.Millisecond
	c.RootView = view.NewRootView(logger)
	c.Loop = presenter.NewLoop(schedule)

	help := assets.Help(c.Keys.Save, c.Keys.Clear, c.Keys.Quit)
	c.Walk = presenter.NewWalkPresenter(presenter.WalkDeps{
		Walker: c.Walker,
		Load:   images.Load,
		NewView: func(title string, initial image.Image, in presenter.SessionInput) presenter.SessionView {
			return view.NewSessionWindow(title, initial, help, view.SessionHandlers{
				Pointer: in.Pointer,
				Key:     in.Key,
				Closed:  in.Closed,
			}, logger)
		},
		Sink:     c.Sink,
		Keys:     c.Keys,
		Style:    c.Style,
		Loop:     c.Loop,
		Progress: c.RootView,
		Logger:   logger,
		Finish:   finish,
	})
	return c
}
