package widgets

import (
	"testing"
	"unicode/utf8"
)

func TestBarWidthAndFill(t *testing.T) {
	cases := []struct {
		v     float64
		width int
		fill  int
	}{
		{0, 10, 0},
		{1, 10, 10},
		{0.5, 10, 5},
		{0.001, 10, 1}, // nonzero stays visible
		{-1, 10, 0},
		{2, 10, 10},
	}
	for _, c := range cases {
		got := Bar(c.v, c.width)
		if utf8.RuneCountInString(got) != c.width {
			t.Fatalf("Bar(%v, %d): width %d", c.v, c.width, utf8.RuneCountInString(got))
		}
		fill := 0
		for _, r := range got {
			if r == '█' {
				fill++
			}
		}
		if fill != c.fill {
			t.Fatalf("Bar(%v, %d): fill %d, want %d", c.v, c.width, fill, c.fill)
		}
	}
}

func TestBarZeroWidth(t *testing.T) {
	if got := Bar(0.5, 0); got != "" {
		t.Fatalf("Bar with zero width: %q", got)
	}
}

func TestSparkLength(t *testing.T) {
	vals := []float64{0, 0.25, 0.5, 0.75, 1}
	got := Spark(vals, 8)
	if utf8.RuneCountInString(got) != 8 {
		t.Fatalf("Spark width %d, want 8", utf8.RuneCountInString(got))
	}
	if Spark(nil, 8) != "" {
		t.Fatal("Spark of no samples should be empty")
	}
}

func TestGiB(t *testing.T) {
	if got := GiB(16 << 30); got != "16.00 GiB" {
		t.Fatalf("GiB = %q", got)
	}
	if got := GiB(1<<30 + 1<<29); got != "1.50 GiB" {
		t.Fatalf("GiB = %q", got)
	}
}
