package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget is anything that can draw itself into a width×height cell box.
type Widget interface {
	Render(width, height int) string
}

// HStack lays widgets out side by side with equal widths and a fixed
// gap, padding every line so columns stay aligned.
type HStack struct {
	Widgets []Widget
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := SplitWidths(usable, len(h.Widgets))
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = PadRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// SplitWidths divides total cells evenly across n columns, giving the
// leftmost columns the remainder. Hit-testing relies on this matching
// what HStack renders.
func SplitWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	width := total / n
	out := make([]int, n)
	for i := range out {
		out[i] = width
	}
	for i := 0; i < total%n; i++ {
		out[i]++
	}
	return out
}

// PadRight truncates or pads a styled line to an exact cell width.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
