package assets

import (
	_ "embed"
	"fmt"
	"strings"
)

// HelpText is the key legend shown next to every image.
//
//go:embed help.txt
var HelpText string

// Help returns the legend with the configured key bindings substituted for the
// defaults. Keys are expected in save, clear, quit order.
func Help(save, clear, quit string) string {
	text := strings.TrimRight(HelpText, "\n")
	if save == "s" && clear == "c" && quit == "q" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "s  "):
			lines[i] = fmt.Sprintf("%s  %s", save, l[3:])
		case strings.HasPrefix(l, "c  "):
			lines[i] = fmt.Sprintf("%s  %s", clear, l[3:])
		case strings.HasPrefix(l, "q  "):
			lines[i] = fmt.Sprintf("%s  %s", quit, l[3:])
		}
	}
	return strings.Join(lines, "\n")
}
