package domain

import (
	"testing"
	"time"
)

func TestSubmissionStatus(t *testing.T) {
	due := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	a := Assignment{DueDate: due}
	marks := 8.5

	tests := []struct {
		name  string
		sub   *AssignmentSubmission
		today time.Time
		want  string
	}{
		{
			name:  "no submission before due",
			today: due.AddDate(0, 0, -1),
			want:  SubmissionPending,
		},
		{
			name:  "no submission on due date",
			today: due.Add(15 * time.Hour),
			want:  SubmissionPending,
		},
		{
			name:  "no submission after due",
			today: due.AddDate(0, 0, 1),
			want:  SubmissionOverdue,
		},
		{
			name:  "ungraded submission",
			sub:   &AssignmentSubmission{Content: "done"},
			today: due.AddDate(0, 0, 5),
			want:  SubmissionSubmitted,
		},
		{
			name:  "graded submission",
			sub:   &AssignmentSubmission{MarksObtained: &marks},
			today: due.AddDate(0, 0, -3),
			want:  SubmissionGraded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubmissionStatus(a, tt.sub, tt.today); got != tt.want {
				t.Errorf("SubmissionStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
