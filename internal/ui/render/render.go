// Package render formats chip and usage records as one-shot tables.
// It is stateless: input in, string out.
package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/ui/styles"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/ui/widgets"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Faint).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// Chips renders the device inventory table.
func Chips(chipType domain.ChipType, chips []domain.Chip) string {
	t := newTable("Device", "Type", "Cores", "PID")
	for _, c := range chips {
		pid := "-"
		if c.PID != 0 {
			pid = strconv.Itoa(c.PID)
		}
		t.Row(c.Path, chipType.String(), strconv.Itoa(chipType.CoresPerChip), pid)
	}
	return styles.Title.Render("TPU Chips") + "\n" + t.Render()
}

// Usage renders the per-core utilization table. Duty cycle is reported
// per chip, so it is printed on a chip's first core row only.
func Usage(usages []domain.ChipUsage) string {
	t := newTable("Core ID", "Memory usage", "Duty cycle")
	for _, chip := range usages {
		duty := fmt.Sprintf("%.2f%%", chip.DutyCyclePct)
		for _, core := range chip.CoreUsage {
			t.Row(
				strconv.FormatInt(core.CoreID, 10),
				widgets.GiB(core.MemoryUsage)+" / "+widgets.GiB(core.TotalMemory),
				duty,
			)
			duty = ""
		}
	}
	return styles.Title.Render("TPU Chip Utilization") + "\n" + t.Render()
}
