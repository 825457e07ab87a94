package record

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/soocke/contour-annotator-go/domain/annotation"
)

// Sink receives annotation snapshots. Implementations are write-only.
type Sink interface {
	Append(imageName string, contours []annotation.Contour) error
}

// FileSink appends snapshots to a flat text file. Each Append opens the file in
// append mode, writes one block and closes it, so the file is never read back
// and never rewritten.
type FileSink struct {
	path string
}

// NewFileSink returns a sink writing to path. The file is created on first save.
func NewFileSink(path string) *FileSink { return &FileSink{path: path} }

// Path returns the output file path.
func (s *FileSink) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Append writes a header naming imageName followed by one line per contour.
// Zero contours still produce the header.
func (s *FileSink) Append(imageName string, contours []annotation.Contour) error {
	if s == nil || s.path == "" {
		return errors.New("record: no output path")
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("record: open %s: %w", s.path, err)
	}
	w := bufio.NewWriter(f)
	if err := WriteBlock(w, imageName, contours); err != nil {
		_ = f.Close()
		return fmt.Errorf("record: write %s: %w", s.path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("record: flush %s: %w", s.path, err)
	}
	return f.Close()
}

// WriteBlock formats a single saved block:
//
//	Annotations for <imageName>:
//	[(x, y), ...]
func WriteBlock(w *bufio.Writer, imageName string, contours []annotation.Contour) error {
	if _, err := fmt.Fprintf(w, "Annotations for %s:\n", imageName); err != nil {
		return err
	}
	for _, c := range contours {
		if _, err := w.WriteString(c.String()); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

var _ Sink = (*FileSink)(nil)
