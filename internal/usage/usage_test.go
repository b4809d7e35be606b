package usage

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
)

func intSample(attr, v int64) domain.MetricSample {
	return domain.MetricSample{Attr: attr, AsInt: v}
}

func doubleSample(attr int64, v float64) domain.MetricSample {
	return domain.MetricSample{Attr: attr, AsDouble: v}
}

const gib = int64(1) << 30

func TestAssembleGroupsCoresByChip(t *testing.T) {
	totals := []domain.MetricSample{
		intSample(0, 16*gib), intSample(1, 16*gib), intSample(2, 16*gib), intSample(3, 16*gib),
	}
	usages := []domain.MetricSample{
		intSample(0, 1*gib), intSample(1, 2*gib), intSample(2, 3*gib), intSample(3, 4*gib),
	}
	duty := []domain.MetricSample{doubleSample(0, 0.50), doubleSample(1, 0.80)}

	got, err := Assemble(totals, usages, duty, 2)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	want := []domain.ChipUsage{
		{
			CoreUsage: []domain.CoreUsage{
				{CoreID: 0, MemoryUsage: 1 * gib, TotalMemory: 16 * gib},
				{CoreID: 1, MemoryUsage: 2 * gib, TotalMemory: 16 * gib},
			},
			DutyCyclePct: 0.50,
		},
		{
			CoreUsage: []domain.CoreUsage{
				{CoreID: 2, MemoryUsage: 3 * gib, TotalMemory: 16 * gib},
				{CoreID: 3, MemoryUsage: 4 * gib, TotalMemory: 16 * gib},
			},
			DutyCyclePct: 0.80,
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Assemble mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestAssembleSingleCoreChips(t *testing.T) {
	totals := []domain.MetricSample{intSample(0, 32*gib), intSample(1, 32*gib), intSample(2, 32*gib)}
	usages := []domain.MetricSample{intSample(0, 5*gib), intSample(1, 6*gib), intSample(2, 7*gib)}
	duty := []domain.MetricSample{doubleSample(0, 10), doubleSample(1, 20), doubleSample(2, 30)}

	got, err := Assemble(totals, usages, duty, 1)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 chips, got %d", len(got))
	}
	for i, chip := range got {
		if len(chip.CoreUsage) != 1 {
			t.Fatalf("chip %d: expected 1 core, got %d", i, len(chip.CoreUsage))
		}
		if chip.CoreUsage[0].CoreID != int64(i) {
			t.Fatalf("chip %d: expected core id %d, got %d", i, i, chip.CoreUsage[0].CoreID)
		}
		if want := float64((i + 1) * 10); chip.DutyCyclePct != want {
			t.Fatalf("chip %d: expected duty %v, got %v", i, want, chip.DutyCyclePct)
		}
	}
}

func TestAssembleOrderIndependent(t *testing.T) {
	ordered := []domain.MetricSample{
		intSample(0, 1*gib), intSample(1, 2*gib), intSample(2, 3*gib), intSample(3, 4*gib),
	}
	shuffled := []domain.MetricSample{
		intSample(3, 4*gib), intSample(1, 2*gib), intSample(0, 1*gib), intSample(2, 3*gib),
	}
	totals := []domain.MetricSample{
		intSample(2, 16*gib), intSample(0, 16*gib), intSample(3, 16*gib), intSample(1, 16*gib),
	}
	duty := []domain.MetricSample{doubleSample(1, 0.80), doubleSample(0, 0.50)}

	a, err := Assemble(totals, ordered, duty, 2)
	if err != nil {
		t.Fatalf("Assemble(ordered) failed: %v", err)
	}
	b, err := Assemble(totals, shuffled, duty, 2)
	if err != nil {
		t.Fatalf("Assemble(shuffled) failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("ordering of raw samples changed the result:\n%+v\nvs\n%+v", a, b)
	}
	if a[0].DutyCyclePct != 0.50 || a[1].DutyCyclePct != 0.80 {
		t.Fatalf("duty cycles not sorted by attribute: %+v", a)
	}
}

func TestAssembleInconsistentLengths(t *testing.T) {
	totals := []domain.MetricSample{
		intSample(0, 16*gib), intSample(1, 16*gib), intSample(2, 16*gib), intSample(3, 16*gib),
	}
	usages := totals[:3] // one core's usage gauge missing
	duty := []domain.MetricSample{doubleSample(0, 0.50), doubleSample(1, 0.80)}

	got, err := Assemble(totals, usages, duty, 2)
	if got != nil {
		t.Fatalf("expected no output on inconsistent streams, got %+v", got)
	}
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
	var ie *InconsistentError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InconsistentError, got %T", err)
	}
	if ie.Totals != 4 || ie.Usages != 3 || ie.DutyCycles != 2 || ie.CoresPerChip != 2 {
		t.Fatalf("wrong lengths reported: %+v", ie)
	}
}

func TestAssembleRejectsBadFanOut(t *testing.T) {
	if _, err := Assemble(nil, nil, nil, 0); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent for zero fan-out, got %v", err)
	}
}

func TestAssembleEmptyStreams(t *testing.T) {
	got, err := Assemble(nil, nil, nil, 2)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no chips, got %d", len(got))
	}
}

func TestAssembleIsPure(t *testing.T) {
	totals := []domain.MetricSample{intSample(1, 16*gib), intSample(0, 16*gib)}
	usages := []domain.MetricSample{intSample(1, 2*gib), intSample(0, 1*gib)}
	duty := []domain.MetricSample{doubleSample(0, 0.25)}

	totalsBefore := append([]domain.MetricSample(nil), totals...)

	a, err := Assemble(totals, usages, duty, 2)
	if err != nil {
		t.Fatalf("first Assemble failed: %v", err)
	}
	b, err := Assemble(totals, usages, duty, 2)
	if err != nil {
		t.Fatalf("second Assemble failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Assemble is not idempotent:\n%+v\nvs\n%+v", a, b)
	}
	if !reflect.DeepEqual(totals, totalsBefore) {
		t.Fatalf("Assemble mutated its input: %+v", totals)
	}
}
