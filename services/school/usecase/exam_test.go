package usecase

import (
	"context"
	"testing"

	"schoolmgmt/domain"
)

func marksFixture() (*ExamUsecase, *fakeExamRepo) {
	exams := &fakeExamRepo{
		schedule: &domain.ExamSchedule{ExamID: 1, ClassID: 5, SubjectID: 10, MaxMarks: 50},
	}
	students := &fakeStudentRepo{
		byClass: map[int][]domain.Student{
			5: {{StudentID: 100}, {StudentID: 101}},
		},
	}
	return NewExamUsecase(exams, students, &fakeAcademicRepo{}, &fakeTeacherRepo{}), exams
}

func TestEnterMarks(t *testing.T) {
	entered := 9

	t.Run("valid batch is upserted", func(t *testing.T) {
		uc, exams := marksFixture()
		req := &domain.EnterMarksRequest{
			ExamID: 1, SubjectID: 10, ClassID: 5,
			Results: []domain.MarksEntry{
				{StudentID: 100, MarksObtained: 45, Grade: "A"},
				{StudentID: 101, MarksObtained: 50},
			},
		}
		if err := uc.EnterMarks(context.Background(), req, &entered); err != nil {
			t.Fatalf("EnterMarks() error = %v", err)
		}
		if len(exams.upserted) != 2 {
			t.Errorf("upserted %d entries, want 2", len(exams.upserted))
		}
	})

	t.Run("one bad entry rejects the whole batch", func(t *testing.T) {
		uc, exams := marksFixture()
		req := &domain.EnterMarksRequest{
			ExamID: 1, SubjectID: 10, ClassID: 5,
			Results: []domain.MarksEntry{
				{StudentID: 100, MarksObtained: 45},
				{StudentID: 101, MarksObtained: 51}, // above max
			},
		}
		err := uc.EnterMarks(context.Background(), req, &entered)
		assertCategory(t, err, domain.ErrValidationFailed)
		if exams.upserted != nil {
			t.Errorf("upserted %d entries, want none", len(exams.upserted))
		}
	})

	t.Run("student outside the class rejects the batch", func(t *testing.T) {
		uc, exams := marksFixture()
		req := &domain.EnterMarksRequest{
			ExamID: 1, SubjectID: 10, ClassID: 5,
			Results: []domain.MarksEntry{{StudentID: 999, MarksObtained: 10}},
		}
		err := uc.EnterMarks(context.Background(), req, &entered)
		assertCategory(t, err, domain.ErrValidationFailed)
		if exams.upserted != nil {
			t.Error("upsert must not run for an invalid batch")
		}
	})

	t.Run("negative marks are rejected", func(t *testing.T) {
		uc, _ := marksFixture()
		req := &domain.EnterMarksRequest{
			ExamID: 1, SubjectID: 10, ClassID: 5,
			Results: []domain.MarksEntry{{StudentID: 100, MarksObtained: -1}},
		}
		assertCategory(t, uc.EnterMarks(context.Background(), req, &entered), domain.ErrValidationFailed)
	})

	t.Run("unscheduled sitting is not found", func(t *testing.T) {
		uc, exams := marksFixture()
		exams.schedule = nil
		req := &domain.EnterMarksRequest{
			ExamID: 1, SubjectID: 10, ClassID: 5,
			Results: []domain.MarksEntry{{StudentID: 100, MarksObtained: 10}},
		}
		assertCategory(t, uc.EnterMarks(context.Background(), req, &entered), domain.ErrNotFound)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		uc, _ := marksFixture()
		req := &domain.EnterMarksRequest{ExamID: 1, SubjectID: 10, ClassID: 5}
		assertCategory(t, uc.EnterMarks(context.Background(), req, &entered), domain.ErrValidationFailed)
	})
}
