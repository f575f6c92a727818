package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// composite splices overlay into base so the overlay's top-left corner lands
// at cell (x, y). Both strings may carry ANSI styling; splitting happens on
// display cells, not bytes. Overlay rows that fall outside the base are
// dropped rather than extending it.
func composite(base, overlay string, x, y int) string {
	if x < 0 {
		x = 0
	}
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, ol := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		line := baseLines[row]

		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(ol), "")

		baseLines[row] = left + ol + right
	}
	return strings.Join(baseLines, "\n")
}
