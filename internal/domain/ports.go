package domain

import (
	"context"
	"errors"
)

// ErrUnavailable means the runtime metric service is not running. The
// libtpu metrics server is started with the workload, so this is an
// expected state, not a hard failure.
var ErrUnavailable = errors.New("runtime metric service unavailable")

type UsageRepo interface {
	ChipUsage(ctx context.Context, chipType ChipType) ([]ChipUsage, error)
}

type TopologyRepo interface {
	// LocalChips reports the chip generation present on this host and
	// how many there are. count == 0 means no TPUs were found.
	LocalChips(ctx context.Context) (ChipType, int, error)
	// Chips lists the device paths with their owning PIDs.
	Chips(ctx context.Context) ([]Chip, error)
}
