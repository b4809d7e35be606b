package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/domain"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/ui/styles"
	"github.com/sagelywizard/cloud-accelerator-diagnostics/internal/ui/widgets"
)

type View int

const (
	ViewUsage View = iota
	ViewChips
)

const refreshEvery = time.Second

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	repoU domain.UsageRepo
	repoT domain.TopologyRepo

	chipType  domain.ChipType
	chipCount int

	view  View
	table table.Model

	infoOpen bool

	// cache
	chips []domain.Chip
	usage []domain.ChipUsage

	// duty-cycle history per chip index and memory fraction history per
	// core id, for sparklines
	dutyTrend map[int][]float64
	memTrend  map[int64][]float64

	width, height int
	err           error
	unavailable   bool
}

func New(repoU domain.UsageRepo, repoT domain.TopologyRepo, chipType domain.ChipType, chipCount int) Model {
	ctx, cancel := context.WithCancel(context.Background())

	t := table.New()
	t.SetHeight(12)
	t.SetWidth(100)

	return Model{
		ctx:       ctx,
		cancel:    cancel,
		repoU:     repoU,
		repoT:     repoT,
		chipType:  chipType,
		chipCount: chipCount,
		view:      ViewUsage,
		table:     t,
		dutyTrend: make(map[int][]float64),
		memTrend:  make(map[int64][]float64),
	}
}

type tickMsg struct{}
type chipsMsg []domain.Chip
type usageMsg []domain.ChipUsage
type unavailableMsg struct{}
type errMsg struct{ error }

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchChips(),
		m.fetchUsage(),
		tea.Tick(refreshEvery, func(time.Time) tea.Msg { return tickMsg{} }),
	)
}

func (m Model) fetchChips() tea.Cmd {
	return func() tea.Msg {
		chips, err := m.repoT.Chips(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return chipsMsg(chips)
	}
}

func (m Model) fetchUsage() tea.Cmd {
	return func() tea.Msg {
		u, err := m.repoU.ChipUsage(m.ctx, m.chipType)
		if err != nil {
			if errors.Is(err, domain.ErrUnavailable) {
				return unavailableMsg{}
			}
			return errMsg{err}
		}
		return usageMsg(u)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

		headerH := lipgloss.Height(styles.Header.Render("x"))
		footerH := lipgloss.Height(styles.Footer.Render("x"))
		base := m.height - headerH - footerH - 2
		if base < 8 {
			base = 8
		}
		if m.infoOpen {
			m.table.SetHeight(int(float64(base) * 0.65))
		} else {
			m.table.SetHeight(base)
		}
		m.table.SetWidth(m.width - 4)
		m.rebuildTable()
		return m, nil

	case chipsMsg:
		m.chips = msg
		m.rebuildTable()
		return m, nil

	case usageMsg:
		m.usage = msg
		m.unavailable = false
		m.appendTrends()
		m.rebuildTable()
		if m.table.Cursor() < 0 {
			m.table.SetCursor(0)
		}
		return m, nil

	case unavailableMsg:
		m.unavailable = true
		m.usage = nil
		m.rebuildTable()
		return m, nil

	case tickMsg:
		return m, tea.Batch(
			m.fetchChips(),
			m.fetchUsage(),
			tea.Tick(refreshEvery, func(time.Time) tea.Msg { return tickMsg{} }),
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancel()
			return m, tea.Quit

		case "tab":
			if m.view == ViewUsage {
				m.view = ViewChips
			} else {
				m.view = ViewUsage
			}
			m.table.SetCursor(0)
			m.rebuildTable()
			return m, nil

		case "i":
			m.infoOpen = !m.infoOpen
			return m, func() tea.Msg { return tea.WindowSizeMsg{Width: m.width, Height: m.height} }

		case "esc":
			if m.infoOpen {
				m.infoOpen = false
				return m, nil
			}
			m.cancel()
			return m, tea.Quit

		case "up", "k", "down", "j":
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case errMsg:
		m.err = msg.error
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// appendTrends records the latest duty cycle per chip and memory
// fraction per core. Map writes survive the value-receiver Update.
func (m Model) appendTrends() {
	for chip, u := range m.usage {
		m.dutyTrend[chip] = appendCapped(m.dutyTrend[chip], u.DutyCyclePct/100)
		for _, core := range u.CoreUsage {
			frac := 0.0
			if core.TotalMemory > 0 {
				frac = float64(core.MemoryUsage) / float64(core.TotalMemory)
			}
			m.memTrend[core.CoreID] = appendCapped(m.memTrend[core.CoreID], frac)
		}
	}
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > 90 {
		s = s[len(s)-90:]
	}
	return s
}

func (m *Model) rebuildTable() {
	switch m.view {
	case ViewUsage:
		total := m.table.Width()
		wChip, wCore, wMem, wMemBar, wDuty, wDutyBar, wTrend := m.usageColWidths(total)

		cols := []table.Column{
			{Title: "CHIP", Width: wChip},
			{Title: "CORE", Width: wCore},
			{Title: "HBM", Width: wMem},
			{Title: "", Width: wMemBar},
			{Title: "DUTY", Width: wDuty},
			{Title: "", Width: wDutyBar},
			{Title: "Trend", Width: wTrend},
		}

		var rows []table.Row
		for chip, u := range m.usage {
			duty := fmt.Sprintf("%5.1f%%", u.DutyCyclePct)
			dutyBar := widgets.Bar(u.DutyCyclePct/100, wDutyBar-1)
			for _, core := range u.CoreUsage {
				frac := 0.0
				if core.TotalMemory > 0 {
					frac = float64(core.MemoryUsage) / float64(core.TotalMemory)
				}
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", chip),
					fmt.Sprintf("%d", core.CoreID),
					widgets.GiB(core.MemoryUsage) + " / " + widgets.GiB(core.TotalMemory),
					widgets.Bar(frac, wMemBar-1),
					duty,
					dutyBar,
					widgets.Spark(m.memTrend[core.CoreID], wTrend),
				})
				// duty cycle is per chip; show it on the first core only
				duty, dutyBar = "", ""
			}
		}
		m.table.SetColumns(cols)
		m.table.SetRows(rows)
		m.table.Focus()

	case ViewChips:
		total := m.table.Width()
		wDev, wType, wCores, wPID := m.chipColWidths(total)

		cols := []table.Column{
			{Title: "DEVICE", Width: wDev},
			{Title: "TYPE", Width: wType},
			{Title: "CORES", Width: wCores},
			{Title: "PID", Width: wPID},
		}
		var rows []table.Row
		for _, c := range m.chips {
			pid := "-"
			if c.PID != 0 {
				pid = fmt.Sprintf("%d", c.PID)
			}
			rows = append(rows, table.Row{
				c.Path,
				m.chipType.String(),
				fmt.Sprintf("%d", m.chipType.CoresPerChip),
				pid,
			})
		}
		m.table.SetColumns(cols)
		m.table.SetRows(rows)
		m.table.Focus()
	}
}

func (m Model) View() string {
	viewName := map[View]string{ViewUsage: "Usage", ViewChips: "Chips"}[m.view]
	head := styles.Header.Render(fmt.Sprintf(
		"tpu-info  │ %s × %d  view: %s  (Tab switch Usage/Chips)  [i]info [q]quit",
		m.chipType, m.chipCount, viewName,
	))
	body := lipgloss.NewStyle().Padding(0, 1).Render(m.table.View())

	info := ""
	if m.infoOpen {
		info = styles.Box.Width(m.width - 2).Render(m.renderInfo())
	}

	status := ""
	switch {
	case m.err != nil:
		status = styles.Danger.Render("error: " + m.err.Error())
	case m.unavailable:
		status = styles.Warn.Render(
			"libtpu metrics unavailable — start a workload with TPU_RUNTIME_METRICS_PORTS=8431,8432,8433,8434")
	}

	footer := styles.Footer.Render("↑/↓ move • [Tab] switch view • [i] info • [q] quit")

	parts := []string{head, body}
	if info != "" {
		parts = append(parts, info)
	}
	if status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderInfo() string {
	switch m.view {
	case ViewUsage:
		chip, core, ok := m.selectedCore()
		if !ok {
			return "No usage data"
		}
		u := m.usage[chip]
		c := u.CoreUsage[core]
		frac := 0.0
		if c.TotalMemory > 0 {
			frac = float64(c.MemoryUsage) / float64(c.TotalMemory)
		}
		return fmt.Sprintf(
			`Chip %d, core %d
HBM: %s / %s (%3.0f%%) %s
Duty cycle (chip): %.2f%% %s

Trend HBM:  %s
Trend duty: %s`,
			chip, c.CoreID,
			widgets.GiB(c.MemoryUsage), widgets.GiB(c.TotalMemory),
			frac*100, styles.ForFraction(frac).Render(widgets.Bar(frac, 12)),
			u.DutyCyclePct, styles.ForFraction(u.DutyCyclePct/100).Render(widgets.Bar(u.DutyCyclePct/100, 12)),
			widgets.Spark(m.memTrend[c.CoreID], 30),
			widgets.Spark(m.dutyTrend[chip], 30),
		)

	case ViewChips:
		i := m.table.Cursor()
		if i < 0 || i >= len(m.chips) {
			return "No chips"
		}
		c := m.chips[i]
		owner := "none"
		if c.PID != 0 {
			owner = fmt.Sprintf("%d", c.PID)
		}
		return fmt.Sprintf("Device: %s\nType: %s (%d cores, %s HBM per core)\nOwner PID: %s",
			c.Path, m.chipType, m.chipType.CoresPerChip, widgets.GiB(m.chipType.HBMBytes), owner)
	}
	return ""
}

// selectedCore maps the table cursor back to a (chip, core) pair.
func (m Model) selectedCore() (chip, core int, ok bool) {
	row := m.table.Cursor()
	if row < 0 {
		return 0, 0, false
	}
	for chip := range m.usage {
		n := len(m.usage[chip].CoreUsage)
		if row < n {
			return chip, row, true
		}
		row -= n
	}
	return 0, 0, false
}
