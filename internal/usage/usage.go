// Package usage turns the three raw libtpu metric streams into
// per-chip usage records. The runtime reports memory per core and duty
// cycle per chip, each as a flat list tagged with an integer attribute;
// sorting by that attribute and slicing into cores-per-chip groups
// recovers which samples belong to which chip.
package usage

import (
	"fmt"
	"sort"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
)

// ErrInconsistent reports that the three metric streams do not
// reconcile under the chip's fan-out factor. Grouping math is unsafe in
// that state, so assembly aborts rather than guess.
var ErrInconsistent = fmt.Errorf("metric streams inconsistent")

// InconsistentError carries the observed stream lengths. It unwraps to
// ErrInconsistent.
type InconsistentError struct {
	Totals       int
	Usages       int
	DutyCycles   int
	CoresPerChip int
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf(
		"metric streams inconsistent: %d memory totals, %d memory usages, %d duty cycles with %d cores per chip",
		e.Totals, e.Usages, e.DutyCycles, e.CoresPerChip)
}

func (e *InconsistentError) Unwrap() error { return ErrInconsistent }

// validate checks that every chip reported a duty cycle and every core
// of every chip reported both memory gauges.
func validate(totals, usages, dutyCycles, coresPerChip int) error {
	if coresPerChip < 1 || totals != usages || totals != dutyCycles*coresPerChip {
		return &InconsistentError{
			Totals:       totals,
			Usages:       usages,
			DutyCycles:   dutyCycles,
			CoresPerChip: coresPerChip,
		}
	}
	return nil
}

// sortedByAttr returns a copy of samples ordered by attribute value.
// The sort is stable; duplicate attributes keep producer order (the
// runtime never emits duplicates for one metric).
func sortedByAttr(samples []domain.MetricSample) []domain.MetricSample {
	out := make([]domain.MetricSample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Attr < out[j].Attr })
	return out
}

// Assemble correlates the raw streams into one ChipUsage per chip. The
// inputs are not modified; calling twice with the same streams yields
// identical output. Chip i owns cores [i*coresPerChip, (i+1)*coresPerChip)
// of the attribute-sorted memory streams and entry i of the sorted duty
// cycle stream.
func Assemble(totals, usages, dutyCycles []domain.MetricSample, coresPerChip int) ([]domain.ChipUsage, error) {
	if err := validate(len(totals), len(usages), len(dutyCycles), coresPerChip); err != nil {
		return nil, err
	}

	sortedTotals := sortedByAttr(totals)
	sortedUsages := sortedByAttr(usages)
	sortedDuty := sortedByAttr(dutyCycles)

	out := make([]domain.ChipUsage, 0, len(sortedDuty))
	for chip := range sortedDuty {
		cu := domain.ChipUsage{
			CoreUsage:    make([]domain.CoreUsage, 0, coresPerChip),
			DutyCyclePct: sortedDuty[chip].AsDouble,
		}
		for core := 0; core < coresPerChip; core++ {
			i := chip*coresPerChip + core
			cu.CoreUsage = append(cu.CoreUsage, domain.CoreUsage{
				// Core identity comes from the sample's attribute, not
				// its position in the group.
				CoreID:      sortedUsages[i].Attr,
				MemoryUsage: sortedUsages[i].AsInt,
				TotalMemory: sortedTotals[i].AsInt,
			})
		}
		out = append(out, cu)
	}
	return out, nil
}
