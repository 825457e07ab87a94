package walk

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the recognised image suffixes, matched case-insensitively.
var DefaultExtensions = []string{"jpg", "jpeg", "png", "bmp", "tiff"}

// HasImageExt reports whether name ends with one of exts, ignoring case.
// Suffixes are matched as-is, so "jpg" also matches "photojpg".
func HasImageExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// ListImages returns the names of regular entries in dir with a recognised
// extension, in byte-wise lexicographic order (so "B.JPG" sorts before "a.png").
func ListImages(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("walk: read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if HasImageExt(e.Name(), exts) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// OpenFunc starts a session for the image at path. It returns false when the
// image could not be opened; the walker then skips to the next entry.
type OpenFunc func(path string) bool

// Walker hands out images one at a time. Sessions are asynchronous (they end
// when the user quits), so the caller invokes Advance once at start and again
// every time a session finishes.
type Walker struct {
	dir    string
	names  []string
	next   int
	logger *slog.Logger
}

// New lists dir and returns a walker over its images. An unreadable folder is
// logged and yields an empty walk.
func New(dir string, exts []string, logger *slog.Logger) *Walker {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	w := &Walker{dir: dir, logger: logger}
	names, err := ListImages(dir, exts)
	if err != nil {
		if logger != nil {
			logger.Error("image folder unreadable", "dir", dir, "error", err)
		}
		return w
	}
	w.names = names
	if logger != nil {
		logger.Info("image folder listed", "dir", dir, "images", len(names))
	}
	return w
}

// Names returns the images in walk order.
func (w *Walker) Names() []string {
	if w == nil {
		return nil
	}
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// Remaining is the number of images not yet handed out.
func (w *Walker) Remaining() int {
	if w == nil {
		return 0
	}
	return len(w.names) - w.next
}

// Advance opens the next image that open accepts. Images for which open
// returns false are logged and skipped. It returns false once the walk is
// exhausted without an active session.
func (w *Walker) Advance(open OpenFunc) bool {
	if w == nil || open == nil {
		return false
	}
	for w.next < len(w.names) {
		name := w.names[w.next]
		w.next++
		if w.logger != nil {
			w.logger.Info("processing image", "file", name)
		}
		if open(filepath.Join(w.dir, name)) {
			return true
		}
		if w.logger != nil {
			w.logger.Warn("skipping image due to an error", "file", name)
		}
	}
	return false
}
