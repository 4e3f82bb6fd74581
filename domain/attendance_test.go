package domain

import "testing"

func mark(status string) Attendance {
	return Attendance{Status: status}
}

func TestSummarizeAttendance(t *testing.T) {
	tests := []struct {
		name    string
		records []Attendance
		want    AttendanceSummary
	}{
		{
			name:    "empty",
			records: nil,
			want:    AttendanceSummary{},
		},
		{
			name:    "all present",
			records: []Attendance{mark(AttendancePresent), mark(AttendancePresent)},
			want:    AttendanceSummary{TotalDays: 2, Present: 2, Percentage: 100},
		},
		{
			name: "mixed statuses",
			records: []Attendance{
				mark(AttendancePresent), mark(AttendancePresent), mark(AttendancePresent),
				mark(AttendanceAbsent), mark(AttendanceLate), mark(AttendanceExcused),
			},
			want: AttendanceSummary{TotalDays: 6, Present: 3, Absent: 1, Late: 1, Excused: 1, Percentage: 50},
		},
		{
			name: "rounds to two decimals",
			records: func() []Attendance {
				var r []Attendance
				for i := 0; i < 17; i++ {
					r = append(r, mark(AttendancePresent))
				}
				for i := 0; i < 3; i++ {
					r = append(r, mark(AttendanceAbsent))
				}
				return r
			}(),
			want: AttendanceSummary{TotalDays: 20, Present: 17, Absent: 3, Percentage: 85},
		},
		{
			name:    "one of three",
			records: []Attendance{mark(AttendancePresent), mark(AttendanceAbsent), mark(AttendanceAbsent)},
			want:    AttendanceSummary{TotalDays: 3, Present: 1, Absent: 2, Percentage: 33.33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeAttendance(tt.records)
			if got != tt.want {
				t.Errorf("SummarizeAttendance() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{33.333333, 33.33},
		{66.666666, 66.67},
		{85.714285, 85.71},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
