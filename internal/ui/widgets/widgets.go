package widgets

import (
	"fmt"
	"math"
	"strings"
)

var blocks = []rune("▁▂▃▄▅▆▇█")

// Spark renders vals (each 0..1) as a block-glyph sparkline, sampling
// evenly when there are more values than columns.
func Spark(vals []float64, width int) string {
	if len(vals) == 0 || width <= 0 {
		return ""
	}
	step := float64(len(vals)) / float64(width)
	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := int(math.Min(float64(len(vals)-1), math.Floor(float64(i)*step)))
		level := int(math.Round(clamp01(vals[idx]) * float64(len(blocks)-1)))
		if level < 0 {
			level = 0
		}
		if level > len(blocks)-1 {
			level = len(blocks) - 1
		}
		b.WriteRune(blocks[level])
	}
	return b.String()
}

// Bar renders a fraction as a fixed-width gauge. Any nonzero fraction
// shows at least one cell so tiny usage stays visible.
func Bar(v float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	v = clamp01(v)
	fill := int(math.Round(v * float64(width)))
	if v > 0 && fill == 0 {
		fill = 1
	}
	if fill > width {
		fill = width
	}
	return strings.Repeat("█", fill) + strings.Repeat(" ", width-fill)
}

// GiB formats a byte count the way the tables print memory.
func GiB(bytes int64) string {
	return fmt.Sprintf("%.2f GiB", float64(bytes)/(1<<30))
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
