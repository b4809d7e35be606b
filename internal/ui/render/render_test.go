package render

import (
	"strings"
	"testing"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
)

const gib = int64(1) << 30

func TestChipsTable(t *testing.T) {
	out := Chips(domain.TpuV4, []domain.Chip{
		{Path: "/dev/accel0", PID: 1234},
		{Path: "/dev/accel1"},
	})

	for _, want := range []string{"TPU Chips", "/dev/accel0", "/dev/accel1", "TPU v4 chip", "1234"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	// unowned chip renders a dash, not a zero PID
	if !strings.Contains(out, "-") {
		t.Fatalf("expected dash for unowned chip:\n%s", out)
	}
}

func TestUsageTablePrintsDutyOncePerChip(t *testing.T) {
	out := Usage([]domain.ChipUsage{
		{
			CoreUsage: []domain.CoreUsage{
				{CoreID: 0, MemoryUsage: 1 * gib, TotalMemory: 16 * gib},
				{CoreID: 1, MemoryUsage: 2 * gib, TotalMemory: 16 * gib},
			},
			DutyCyclePct: 42.5,
		},
	})

	if !strings.Contains(out, "TPU Chip Utilization") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "1.00 GiB / 16.00 GiB") {
		t.Fatalf("missing core 0 memory cell:\n%s", out)
	}
	if !strings.Contains(out, "2.00 GiB / 16.00 GiB") {
		t.Fatalf("missing core 1 memory cell:\n%s", out)
	}
	if got := strings.Count(out, "42.50%"); got != 1 {
		t.Fatalf("duty cycle should appear exactly once per chip, appears %d times:\n%s", got, out)
	}
}
