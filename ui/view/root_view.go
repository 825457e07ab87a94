package view

import (
	"fmt"
	"log/slog"

	"github.com/soocke/contour-annotator-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView is the small control window: walk progress and an exit button.
// Image sessions open in their own toplevels.
type RootView struct {
	logger *slog.Logger

	FolderLabel   *LabelWidget
	ProgressLabel *TLabelWidget
}

// ProgressView abstracts the subset of root view operations the app drives.
type ProgressView interface {
	SetProgress(index, total int, current string)
	SetFinished(total int)
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout for folder. onExit ends the whole run.
func (rv *RootView) Build(folder string, onExit func()) {
	if rv == nil {
		return
	}
	rv.FolderLabel = Label(Txt(fmt.Sprintf("Folder: %s", folder)), Anchor("w"))
	Grid(rv.FolderLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.ProgressLabel = TLabel(Style(theme.StyleStateLabel), Txt("Starting..."))
	Grid(rv.ProgressLabel, Row(1), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	exitBtn := TButton(Style(theme.StyleDangerButton), Txt("Exit"), Command(onExit))
	Grid(exitBtn, Row(2), Column(0), Sticky("e"), Padx("0.4m"), Pady("0.3m"))
}

// SetProgress shows which image is open (index is 1-based).
func (rv *RootView) SetProgress(index, total int, current string) {
	if rv != nil && rv.ProgressLabel != nil {
		rv.ProgressLabel.Configure(Txt(fmt.Sprintf("Image %d of %d: %s", index, total, current)))
	}
}

// SetFinished shows the end-of-walk state.
func (rv *RootView) SetFinished(total int) {
	if rv != nil && rv.ProgressLabel != nil {
		rv.ProgressLabel.Configure(Txt(fmt.Sprintf("Done: %d image(s)", total)))
	}
}
