package core

import (
	"strconv"
	"strings"
)

// StandardWorkdayMinutes is the 8-hour reference day; anything beyond it
// counts as overtime.
const StandardWorkdayMinutes = 8 * 60

// WorkHours is the derived result for a single attendance entry.
type WorkHours struct {
	WorkedMinutes   int  `json:"workedMinutes"`
	OvertimeMinutes int  `json:"overtimeMinutes"`
	Holiday         bool `json:"isHoliday"`
}

// TimeToMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. Empty or malformed strings parse to 0 so a missing field
// degrades to "no hours" instead of failing.
func TimeToMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// ComputeWorkHours derives worked and overtime minutes for one entry.
//
// A break whose end is at or before its start contributes zero, and an
// exit at or before the entry yields zero worked minutes: entries spanning
// midnight are not supported. On holidays the caller routes all overtime
// to the 100%-premium bucket instead of the 50% one.
func ComputeWorkHours(entry TimeEntry) WorkHours {
	entryMin := TimeToMinutes(entry.Entry)
	exitMin := TimeToMinutes(entry.Exit)
	breakStart := TimeToMinutes(entry.BreakStart)
	breakEnd := TimeToMinutes(entry.BreakEnd)

	breakMin := 0
	if breakEnd > breakStart {
		breakMin = breakEnd - breakStart
	}

	worked := 0
	if exitMin > entryMin {
		worked = exitMin - entryMin - breakMin
		if worked < 0 {
			worked = 0
		}
	}

	overtime := worked - StandardWorkdayMinutes
	if overtime < 0 {
		overtime = 0
	}

	return WorkHours{
		WorkedMinutes:   worked,
		OvertimeMinutes: overtime,
		Holiday:         entry.IsHoliday,
	}
}
