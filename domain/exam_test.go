package domain

import "testing"

func TestAggregateExamResults(t *testing.T) {
	exams := map[int]Exam{
		1: {ExamID: 1, Name: "Midterm", AcademicYear: "2025-2026"},
	}
	subjects := map[int]Subject{
		10: {SubjectID: 10, Name: "Mathematics"},
		11: {SubjectID: 11, Name: "Science"},
	}
	schedules := []ExamSchedule{
		{ExamID: 1, ClassID: 5, SubjectID: 10, MaxMarks: 50},
		{ExamID: 1, ClassID: 6, SubjectID: 11, MaxMarks: 80}, // other class, must be ignored
	}

	t.Run("scheduled max marks drive the denominator", func(t *testing.T) {
		results := []ExamResult{
			{ExamID: 1, StudentID: 2, SubjectID: 10, MarksObtained: 40, Grade: "A"},
		}
		reports := AggregateExamResults(results, schedules, exams, subjects, 5)
		if len(reports) != 1 {
			t.Fatalf("got %d reports, want 1", len(reports))
		}
		rep := reports[0]
		if rep.ExamName != "Midterm" || rep.AcademicYear != "2025-2026" {
			t.Errorf("exam labels = %q/%q", rep.ExamName, rep.AcademicYear)
		}
		if rep.TotalMarks != 50 || rep.ObtainedMarks != 40 {
			t.Errorf("totals = %d/%v, want 50/40", rep.TotalMarks, rep.ObtainedMarks)
		}
		if rep.Percentage != 80 {
			t.Errorf("percentage = %v, want 80", rep.Percentage)
		}
		if rep.Subjects[0].SubjectName != "Mathematics" || rep.Subjects[0].MaxMarks != 50 {
			t.Errorf("subject row = %+v", rep.Subjects[0])
		}
	})

	t.Run("unscheduled sitting falls back to 100", func(t *testing.T) {
		results := []ExamResult{
			{ExamID: 1, StudentID: 2, SubjectID: 11, MarksObtained: 73},
		}
		reports := AggregateExamResults(results, schedules, exams, subjects, 5)
		if reports[0].TotalMarks != 100 {
			t.Errorf("total marks = %d, want 100", reports[0].TotalMarks)
		}
		if reports[0].Percentage != 73 {
			t.Errorf("percentage = %v, want 73", reports[0].Percentage)
		}
	})

	t.Run("missing exam and subject degrade to Unknown", func(t *testing.T) {
		results := []ExamResult{
			{ExamID: 99, StudentID: 2, SubjectID: 88, MarksObtained: 10},
		}
		reports := AggregateExamResults(results, nil, exams, subjects, 5)
		if reports[0].ExamName != "Unknown" {
			t.Errorf("exam name = %q, want Unknown", reports[0].ExamName)
		}
		if reports[0].Subjects[0].SubjectName != "Unknown" {
			t.Errorf("subject name = %q, want Unknown", reports[0].Subjects[0].SubjectName)
		}
	})

	t.Run("groups multiple subjects under one exam", func(t *testing.T) {
		results := []ExamResult{
			{ExamID: 1, StudentID: 2, SubjectID: 10, MarksObtained: 40},
			{ExamID: 1, StudentID: 2, SubjectID: 11, MarksObtained: 60},
		}
		reports := AggregateExamResults(results, schedules, exams, subjects, 5)
		if len(reports) != 1 {
			t.Fatalf("got %d reports, want 1", len(reports))
		}
		if reports[0].TotalMarks != 150 || reports[0].ObtainedMarks != 100 {
			t.Errorf("totals = %d/%v, want 150/100", reports[0].TotalMarks, reports[0].ObtainedMarks)
		}
		if reports[0].Percentage != 66.67 {
			t.Errorf("percentage = %v, want 66.67", reports[0].Percentage)
		}
	})

	t.Run("no results yields no reports", func(t *testing.T) {
		reports := AggregateExamResults(nil, schedules, exams, subjects, 5)
		if len(reports) != 0 {
			t.Errorf("got %d reports, want 0", len(reports))
		}
	})
}
