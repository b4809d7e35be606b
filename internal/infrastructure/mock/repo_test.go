package mock

import (
	"context"
	"testing"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
)

func TestMockTopologyMatchesUsage(t *testing.T) {
	r := New()
	ctx := context.Background()

	chipType, count, err := r.LocalChips(ctx)
	if err != nil {
		t.Fatalf("LocalChips failed: %v", err)
	}
	chips, err := r.Chips(ctx)
	if err != nil {
		t.Fatalf("Chips failed: %v", err)
	}
	if len(chips) != count {
		t.Fatalf("Chips returned %d entries for %d chips", len(chips), count)
	}

	usages, err := r.ChipUsage(ctx, chipType)
	if err != nil {
		t.Fatalf("ChipUsage failed: %v", err)
	}
	if len(usages) != count {
		t.Fatalf("expected %d usage records, got %d", count, len(usages))
	}
	for i, u := range usages {
		if len(u.CoreUsage) != chipType.CoresPerChip {
			t.Fatalf("chip %d: %d cores, want %d", i, len(u.CoreUsage), chipType.CoresPerChip)
		}
		if u.DutyCyclePct < 0 || u.DutyCyclePct > 100 {
			t.Fatalf("chip %d: duty cycle out of range: %v", i, u.DutyCyclePct)
		}
		for _, c := range u.CoreUsage {
			if c.MemoryUsage < 0 || c.MemoryUsage > c.TotalMemory {
				t.Fatalf("chip %d core %d: usage %d outside [0, %d]", i, c.CoreID, c.MemoryUsage, c.TotalMemory)
			}
			if c.TotalMemory != chipType.HBMBytes {
				t.Fatalf("chip %d core %d: total %d, want %d", i, c.CoreID, c.TotalMemory, chipType.HBMBytes)
			}
		}
	}
}

func TestMockCoreIDsAreSequential(t *testing.T) {
	r := New()
	usages, err := r.ChipUsage(context.Background(), domain.TpuV3)
	if err != nil {
		t.Fatalf("ChipUsage failed: %v", err)
	}
	next := int64(0)
	for _, u := range usages {
		for _, c := range u.CoreUsage {
			if c.CoreID != next {
				t.Fatalf("core id %d, want %d", c.CoreID, next)
			}
			next++
		}
	}
}
