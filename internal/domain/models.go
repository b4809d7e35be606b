package domain

import "fmt"

// ChipType describes one TPU hardware generation. Memory is reported
// per core, duty cycle per chip, so the fan-out factor matters when
// correlating metric streams.
type ChipType struct {
	Name         string
	CoresPerChip int    // TensorCores per physical chip
	HBMBytes     int64  // HBM capacity per core
	DeviceID     uint16 // PCI device id (vendor 0x1ae0)
}

func (c ChipType) String() string { return "TPU " + c.Name + " chip" }

var (
	TpuV2  = ChipType{Name: "v2", CoresPerChip: 2, HBMBytes: 8 << 30, DeviceID: 0x0027}
	TpuV3  = ChipType{Name: "v3", CoresPerChip: 2, HBMBytes: 16 << 30, DeviceID: 0x0049}
	TpuV4  = ChipType{Name: "v4", CoresPerChip: 1, HBMBytes: 32 << 30, DeviceID: 0x005e}
	TpuV5e = ChipType{Name: "v5e", CoresPerChip: 1, HBMBytes: 16 << 30, DeviceID: 0x0063}
	TpuV5p = ChipType{Name: "v5p", CoresPerChip: 1, HBMBytes: 95 << 30, DeviceID: 0x0062}
)

// ChipTypes lists every generation the tool knows about.
var ChipTypes = []ChipType{TpuV2, TpuV3, TpuV4, TpuV5e, TpuV5p}

// ChipTypeForDeviceID resolves a PCI device id to a catalog entry.
func ChipTypeForDeviceID(id uint16) (ChipType, error) {
	for _, c := range ChipTypes {
		if c.DeviceID == id {
			return c, nil
		}
	}
	return ChipType{}, fmt.Errorf("unknown TPU device id %#04x", id)
}

// MetricSample is one raw reading from the runtime metric service. The
// attribute is an opaque integer the runtime uses as a core index.
// Exactly one of AsInt/AsDouble is meaningful, depending on the metric.
type MetricSample struct {
	Attr     int64
	AsInt    int64
	AsDouble float64
}

// CoreUsage is the memory picture for a single TensorCore.
type CoreUsage struct {
	CoreID      int64
	MemoryUsage int64 // bytes
	TotalMemory int64 // bytes
}

// ChipUsage aggregates one chip: per-core memory plus the chip-level
// duty cycle. Duty cycle is reported once per chip, not per core.
type ChipUsage struct {
	CoreUsage    []CoreUsage
	DutyCyclePct float64
}

// Chip is one discovered device: its filesystem path and, if a process
// has it open, the owning PID.
type Chip struct {
	Path string
	PID  int // 0 when unowned
}
