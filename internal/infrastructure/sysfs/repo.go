// Package sysfs discovers local TPU chips from the filesystem: device
// nodes under /dev, PCI ids under /sys, and owning processes under
// /proc. No runtime or driver library is needed for any of this.
package sysfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
)

type Repo struct {
	root string
}

// New returns a repo reading the real host filesystem.
func New() *Repo { return &Repo{root: "/"} }

// NewAt roots all lookups under dir. Tests point this at a fixture
// tree.
func NewAt(dir string) *Repo { return &Repo{root: dir} }

// ChipPath is the device node for chip index under type t. v5 chips
// are bound to the VFIO driver; earlier generations expose accel nodes.
func ChipPath(t domain.ChipType, index int) string {
	if t == domain.TpuV5e || t == domain.TpuV5p {
		return fmt.Sprintf("/dev/vfio/%d", index)
	}
	return fmt.Sprintf("/dev/accel%d", index)
}

// LocalChips scans for TPU devices and reports their generation and
// count. A host without TPUs yields a zero ChipType and count 0, not
// an error.
func (r *Repo) LocalChips(ctx context.Context) (domain.ChipType, int, error) {
	// v2-v4: one accel node per chip, PCI id in sysfs.
	accel, err := filepath.Glob(filepath.Join(r.root, "sys", "class", "accel", "accel*"))
	if err != nil {
		return domain.ChipType{}, 0, err
	}
	if len(accel) > 0 {
		id, err := readDeviceID(filepath.Join(accel[0], "device", "device"))
		if err != nil {
			return domain.ChipType{}, 0, err
		}
		t, err := domain.ChipTypeForDeviceID(id)
		if err != nil {
			return domain.ChipType{}, 0, err
		}
		return t, len(accel), nil
	}

	// v5: chips sit behind VFIO, one group node per chip.
	groups, err := filepath.Glob(filepath.Join(r.root, "dev", "vfio", "[0-9]*"))
	if err != nil {
		return domain.ChipType{}, 0, err
	}
	if len(groups) == 0 {
		return domain.ChipType{}, 0, nil
	}
	devs, err := filepath.Glob(filepath.Join(
		r.root, "sys", "kernel", "iommu_groups", filepath.Base(groups[0]), "devices", "*", "device"))
	if err != nil || len(devs) == 0 {
		return domain.ChipType{}, 0, fmt.Errorf("no PCI device for vfio group %s", groups[0])
	}
	id, err := readDeviceID(devs[0])
	if err != nil {
		return domain.ChipType{}, 0, err
	}
	t, err := domain.ChipTypeForDeviceID(id)
	if err != nil {
		return domain.ChipType{}, 0, err
	}
	return t, len(groups), nil
}

// Chips lists device paths for every local chip together with the PID
// holding each one open, if any.
func (r *Repo) Chips(ctx context.Context) ([]domain.Chip, error) {
	t, count, err := r.LocalChips(ctx)
	if err != nil {
		return nil, err
	}
	owners := r.chipOwners(count, t)
	out := make([]domain.Chip, 0, count)
	for i := 0; i < count; i++ {
		p := ChipPath(t, i)
		out = append(out, domain.Chip{Path: p, PID: owners[p]})
	}
	return out, nil
}

// chipOwners walks /proc/*/fd looking for open chip device nodes.
// Unreadable processes are skipped; fds come and go while we scan.
func (r *Repo) chipOwners(count int, t domain.ChipType) map[string]int {
	want := make(map[string]bool, count)
	for i := 0; i < count; i++ {
		want[ChipPath(t, i)] = true
	}

	owners := make(map[string]int)
	procs, err := os.ReadDir(filepath.Join(r.root, "proc"))
	if err != nil {
		return owners
	}
	for _, p := range procs {
		pid, err := strconv.Atoi(p.Name())
		if err != nil {
			continue
		}
		fdDir := filepath.Join(r.root, "proc", p.Name(), "fd")
		fds, err := os.ReadDir(fdDir)
		if err != nil {
			continue
		}
		for _, fd := range fds {
			target, err := os.Readlink(filepath.Join(fdDir, fd.Name()))
			if err != nil {
				continue
			}
			if want[target] {
				owners[target] = pid
			}
		}
	}
	return owners
}

func readDeviceID(path string) (uint16, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	s := strings.TrimPrefix(strings.TrimSpace(string(b)), "0x")
	id, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad PCI device id %q in %s: %w", s, path, err)
	}
	return uint16(id), nil
}
