package app

// clamp clamps v into [min, max].
func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// compute dynamic widths for the Usage table based on available total width
func (m *Model) usageColWidths(total int) (wChip, wCore, wMem, wMemBar, wDuty, wDutyBar, wTrend int) {
	minChip, minCore, minMem, minDuty, minTrend := 5, 5, 22, 7, 8

	base := minChip + minCore + minMem + minDuty + minTrend
	remain := total - base
	if remain < 10 {
		remain = 10
	}

	// flexible space goes to the two bars, remainder to the trend
	wMemBar = remain / 3
	wDutyBar = remain / 3
	extra := remain - (wMemBar + wDutyBar)

	wChip = minChip
	wCore = minCore
	wMem = minMem
	wDuty = minDuty
	wTrend = minTrend + extra

	wMemBar = clamp(wMemBar, 6, 40)
	wDutyBar = clamp(wDutyBar, 6, 40)
	wTrend = clamp(wTrend, 8, 40)
	return
}

// compute dynamic widths for the Chips table
func (m *Model) chipColWidths(total int) (wDev, wType, wCores, wPID int) {
	minDev, minType, minCores, minPID := 14, 12, 6, 8
	base := minDev + minType + minCores + minPID
	extra := total - base
	if extra < 0 {
		extra = 0
	}

	wDev = clamp(minDev+extra/2, 14, 48)
	wType = clamp(minType+extra/4, 12, 24)
	wCores = minCores
	wPID = minPID
	return
}
