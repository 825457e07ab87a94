package assets

import (
	"strings"
	"testing"
)

func TestHelp_DefaultKeys(t *testing.T) {
	h := Help("s", "c", "q")
	if !strings.Contains(h, "s  save") || strings.HasSuffix(h, "\n") {
		t.Fatalf("unexpected default legend %q", h)
	}
}

func TestHelp_CustomKeys(t *testing.T) {
	h := Help("w", "e", "r")
	for _, want := range []string{"w  save", "e  clear", "r  next image"} {
		if !strings.Contains(h, want) {
			t.Fatalf("legend %q missing %q", h, want)
		}
	}
	if strings.Contains(h, "s  save") {
		t.Fatalf("default key left in custom legend %q", h)
	}
}
