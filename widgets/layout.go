package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// HStack lays widgets side by side, splitting width by Ratios (equal split
// when absent).
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := split(max(1, width-gapTotal), len(h.Widgets), h.Ratios)
	cols := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		cols[i] = strings.Split(w.Render(widths[i], height), "\n")
		if len(cols[i]) > rows {
			rows = len(cols[i])
		}
	}
	out := make([]string, 0, rows)
	gap := strings.Repeat(" ", h.Gap)
	for line := 0; line < rows; line++ {
		parts := make([]string, len(cols))
		for i := range cols {
			var cell string
			if line < len(cols[i]) {
				cell = cols[i][line]
			}
			parts[i] = padRight(cell, widths[i])
		}
		out = append(out, strings.Join(parts, gap))
	}
	return strings.Join(out, "\n")
}

// VStack stacks widgets top to bottom, splitting height by Ratios.
type VStack struct {
	Widgets []Widget
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := split(height, len(v.Widgets), v.Ratios)
	parts := make([]string, 0, len(v.Widgets))
	for i, w := range v.Widgets {
		parts = append(parts, w.Render(width, max(1, heights[i])))
	}
	return strings.Join(parts, "\n")
}

func split(total, n int, ratios []float64) []int {
	out := make([]int, n)
	if len(ratios) != n {
		base := total / n
		for i := range out {
			out[i] = base
		}
		out[n-1] += total - base*n
		return out
	}
	var sum float64
	for _, r := range ratios {
		sum += r
	}
	if sum <= 0 {
		return split(total, n, nil)
	}
	used := 0
	for i, r := range ratios {
		out[i] = int(float64(total) * r / sum)
		used += out[i]
	}
	out[n-1] += total - used
	return out
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
