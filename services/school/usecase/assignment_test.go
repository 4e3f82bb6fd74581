package usecase

import (
	"context"
	"testing"
	"time"

	"schoolmgmt/domain"
)

func submitFixture() (*AssignmentUsecase, *fakeAssignmentRepo) {
	classID := 5
	assignments := &fakeAssignmentRepo{
		byID: map[int]*domain.Assignment{
			1: {AssignmentID: 1, ClassID: 5, DueDate: time.Now().AddDate(0, 0, 7)},
		},
		submissions: map[submissionKey]*domain.AssignmentSubmission{},
	}
	students := &fakeStudentRepo{
		byID: map[int]*domain.Student{
			100: {StudentID: 100, ClassID: &classID},
		},
	}
	return NewAssignmentUsecase(assignments, students, &fakeTeacherRepo{}, &fakeAcademicRepo{}), assignments
}

func TestSubmitAssignment(t *testing.T) {
	t.Run("accepts content before the due date", func(t *testing.T) {
		uc, repo := submitFixture()
		sub, err := uc.Submit(context.Background(), 100, 1, &domain.SubmitAssignmentRequest{Content: "my essay"})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if sub.AssignmentID != 1 || sub.StudentID != 100 || sub.Content != "my essay" {
			t.Errorf("submission = %+v", sub)
		}
		if repo.created == nil {
			t.Error("submission was not persisted")
		}
	})

	t.Run("accepts a file url without content", func(t *testing.T) {
		uc, _ := submitFixture()
		sub, err := uc.Submit(context.Background(), 100, 1, &domain.SubmitAssignmentRequest{FileURL: "https://files/essay.pdf"})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if sub.FileURL != "https://files/essay.pdf" {
			t.Errorf("file url = %q", sub.FileURL)
		}
	})

	t.Run("rejects empty submissions", func(t *testing.T) {
		uc, _ := submitFixture()
		_, err := uc.Submit(context.Background(), 100, 1, &domain.SubmitAssignmentRequest{})
		assertCategory(t, err, domain.ErrValidationFailed)
	})

	t.Run("rejects a student from another class", func(t *testing.T) {
		uc, repo := submitFixture()
		other := 9
		uc.students.(*fakeStudentRepo).byID[200] = &domain.Student{StudentID: 200, ClassID: &other}
		_, err := uc.Submit(context.Background(), 200, 1, &domain.SubmitAssignmentRequest{Content: "x"})
		assertCategory(t, err, domain.ErrUnauthorized)
		if repo.created != nil {
			t.Error("submission must not be persisted")
		}
	})

	t.Run("rejects past the due date", func(t *testing.T) {
		uc, repo := submitFixture()
		repo.byID[1].DueDate = time.Now().AddDate(0, 0, -1)
		_, err := uc.Submit(context.Background(), 100, 1, &domain.SubmitAssignmentRequest{Content: "late"})
		assertCategory(t, err, domain.ErrValidationFailed)
	})

	t.Run("rejects duplicate submissions", func(t *testing.T) {
		uc, repo := submitFixture()
		repo.submissions[submissionKey{1, 100}] = &domain.AssignmentSubmission{AssignmentID: 1, StudentID: 100}
		_, err := uc.Submit(context.Background(), 100, 1, &domain.SubmitAssignmentRequest{Content: "again"})
		assertCategory(t, err, domain.ErrConflict)
	})

	t.Run("unknown assignment is not found", func(t *testing.T) {
		uc, _ := submitFixture()
		_, err := uc.Submit(context.Background(), 100, 77, &domain.SubmitAssignmentRequest{Content: "x"})
		assertCategory(t, err, domain.ErrNotFound)
	})
}
