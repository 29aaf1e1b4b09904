package core

import "testing"

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"midnight", "00:00", 0},
		{"morning", "08:00", 480},
		{"with minutes", "17:45", 1065},
		{"empty string", "", 0},
		{"missing colon", "0800", 0},
		{"garbage hours", "ab:30", 0},
		{"garbage minutes", "08:xx", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeToMinutes(tt.in); got != tt.want {
				t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeWorkHours(t *testing.T) {
	tests := []struct {
		name         string
		entry        TimeEntry
		wantWorked   int
		wantOvertime int
		wantHoliday  bool
	}{
		{
			name: "regular eight hour day with lunch break",
			entry: TimeEntry{
				Entry: "08:00", Exit: "17:00",
				BreakStart: "12:00", BreakEnd: "13:00",
			},
			wantWorked:   480,
			wantOvertime: 0,
		},
		{
			name: "holiday with two hours of overtime",
			entry: TimeEntry{
				Entry: "08:00", Exit: "19:00",
				BreakStart: "12:00", BreakEnd: "13:00",
				IsHoliday: true,
			},
			wantWorked:   600,
			wantOvertime: 120,
			wantHoliday:  true,
		},
		{
			name: "exit before entry yields zero, never negative",
			entry: TimeEntry{
				Entry: "17:00", Exit: "08:00",
			},
			wantWorked:   0,
			wantOvertime: 0,
		},
		{
			name: "exit equal to entry yields zero",
			entry: TimeEntry{
				Entry: "08:00", Exit: "08:00",
			},
			wantWorked:   0,
			wantOvertime: 0,
		},
		{
			name: "break end before break start contributes nothing",
			entry: TimeEntry{
				Entry: "08:00", Exit: "18:00",
				BreakStart: "13:00", BreakEnd: "12:00",
			},
			wantWorked:   600,
			wantOvertime: 120,
		},
		{
			name: "missing break fields parse to zero minutes",
			entry: TimeEntry{
				Entry: "08:00", Exit: "16:00",
			},
			wantWorked:   480,
			wantOvertime: 0,
		},
		{
			name: "break longer than shift clamps worked to zero",
			entry: TimeEntry{
				Entry: "08:00", Exit: "09:00",
				BreakStart: "08:00", BreakEnd: "10:00",
			},
			wantWorked:   0,
			wantOvertime: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWorkHours(tt.entry)
			if got.WorkedMinutes != tt.wantWorked {
				t.Errorf("WorkedMinutes = %d, want %d", got.WorkedMinutes, tt.wantWorked)
			}
			if got.OvertimeMinutes != tt.wantOvertime {
				t.Errorf("OvertimeMinutes = %d, want %d", got.OvertimeMinutes, tt.wantOvertime)
			}
			if got.Holiday != tt.wantHoliday {
				t.Errorf("Holiday = %v, want %v", got.Holiday, tt.wantHoliday)
			}
		})
	}
}
