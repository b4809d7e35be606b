// Package mock fakes a host with four TPU v3 chips so the UI can be
// developed without hardware or a running workload.
package mock

import (
	"context"
	"math/rand"
	"time"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/infrastructure/sysfs"
)

const chipCount = 4

type Repo struct {
	start time.Time
	rnd   *rand.Rand
}

func New() *Repo {
	src := rand.NewSource(time.Now().UnixNano())
	return &Repo{start: time.Now(), rnd: rand.New(src)}
}

func (r *Repo) LocalChips(ctx context.Context) (domain.ChipType, int, error) {
	return domain.TpuV3, chipCount, nil
}

func (r *Repo) Chips(ctx context.Context) ([]domain.Chip, error) {
	out := make([]domain.Chip, 0, chipCount)
	for i := 0; i < chipCount; i++ {
		out = append(out, domain.Chip{
			Path: sysfs.ChipPath(domain.TpuV3, i),
			PID:  38000 + i,
		})
	}
	return out, nil
}

func (r *Repo) ChipUsage(ctx context.Context, chipType domain.ChipType) ([]domain.ChipUsage, error) {
	out := make([]domain.ChipUsage, 0, chipCount)
	coreID := int64(0)
	for chip := 0; chip < chipCount; chip++ {
		cu := domain.ChipUsage{
			DutyCyclePct: 100 * clamp01(0.55+0.3*r.noise(chip)),
		}
		for core := 0; core < chipType.CoresPerChip; core++ {
			frac := clamp01(0.35 + 0.4*r.noise(chip*7+core))
			cu.CoreUsage = append(cu.CoreUsage, domain.CoreUsage{
				CoreID:      coreID,
				MemoryUsage: int64(frac * float64(chipType.HBMBytes)),
				TotalMemory: chipType.HBMBytes,
			})
			coreID++
		}
		out = append(out, cu)
	}
	return out, nil
}

// noise gives each chip/core a slow wobble plus jitter so bars and
// sparklines look alive between refreshes.
func (r *Repo) noise(seed int) float64 {
	t := float64(time.Since(r.start)) / float64(10*time.Second)
	return 0.5*mathSin(t+float64(seed)) + float64(seed%3)*0.08 + r.rnd.Float64()*0.15
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

// tiny sin approx so we don't import math just for mock wobble
func mathSin(x float64) float64 {
	xx := x - float64(int(x/6.283185))*6.283185
	return xx - (xx*xx*xx)/6 + (xx*xx*xx*xx*xx)/120
}
