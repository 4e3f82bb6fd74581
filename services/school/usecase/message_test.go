package usecase

import (
	"context"
	"testing"

	"schoolmgmt/domain"
)

func messagingFixture() (*MessageUsecase, *fakeMessageRepo) {
	classID := 5
	messages := &fakeMessageRepo{}
	students := &fakeStudentRepo{
		byParent: map[int][]domain.Student{
			1: {{StudentID: 100, ClassID: &classID}},
		},
		byClass: map[int][]domain.Student{
			5: {{StudentID: 100, ParentID: intPtr(1)}},
		},
	}
	teachers := &fakeTeacherRepo{
		byID: map[int]*domain.Teacher{
			10: {TeacherID: 10, Name: "Ms. Rivera"},
			20: {TeacherID: 20, Name: "Mr. Osei"},
		},
		bySubjects: []domain.Teacher{{TeacherID: 10, Name: "Ms. Rivera"}},
		classes:    []domain.Class{{ClassID: 5}},
	}
	parents := &fakeParentRepo{
		byID: map[int]*domain.Parent{
			1: {ParentID: 1, Name: "A. Rahman"},
			2: {ParentID: 2, Name: "B. Chen"},
		},
		list: []domain.Parent{{ParentID: 1, Name: "A. Rahman"}},
	}
	academic := &fakeAcademicRepo{
		subjects: []domain.Subject{{SubjectID: 10, Name: "Mathematics"}},
	}
	return NewMessageUsecase(messages, students, teachers, parents, academic), messages
}

func intPtr(v int) *int { return &v }

func TestSendAsParent(t *testing.T) {
	t.Run("delivers to an eligible teacher", func(t *testing.T) {
		uc, repo := messagingFixture()
		m, err := uc.SendAsParent(context.Background(), 1, &domain.SendMessageRequest{CounterpartID: 10, Content: "hello"})
		if err != nil {
			t.Fatalf("SendAsParent() error = %v", err)
		}
		if m.SenderID != 1 || m.SenderType != domain.ParticipantParent {
			t.Errorf("sender = %d/%s", m.SenderID, m.SenderType)
		}
		if m.ReceiverID != 10 || m.ReceiverType != domain.ParticipantTeacher {
			t.Errorf("receiver = %d/%s", m.ReceiverID, m.ReceiverType)
		}
		if len(repo.inserted) != 1 {
			t.Errorf("inserted %d messages, want 1", len(repo.inserted))
		}
	})

	t.Run("rejects a teacher who teaches none of the children", func(t *testing.T) {
		uc, repo := messagingFixture()
		_, err := uc.SendAsParent(context.Background(), 1, &domain.SendMessageRequest{CounterpartID: 20, Content: "hello"})
		assertCategory(t, err, domain.ErrUnauthorized)
		if len(repo.inserted) != 0 {
			t.Error("nothing may be inserted for an ineligible counterpart")
		}
	})

	t.Run("unknown teacher is not found", func(t *testing.T) {
		uc, _ := messagingFixture()
		_, err := uc.SendAsParent(context.Background(), 1, &domain.SendMessageRequest{CounterpartID: 99, Content: "hello"})
		assertCategory(t, err, domain.ErrNotFound)
	})
}

func TestSendAsTeacher(t *testing.T) {
	t.Run("delivers to a parent with a student in class", func(t *testing.T) {
		uc, repo := messagingFixture()
		m, err := uc.SendAsTeacher(context.Background(), 10, &domain.SendMessageRequest{CounterpartID: 1, Content: "about homework"})
		if err != nil {
			t.Fatalf("SendAsTeacher() error = %v", err)
		}
		if m.SenderType != domain.ParticipantTeacher || m.ReceiverType != domain.ParticipantParent {
			t.Errorf("participants = %s/%s", m.SenderType, m.ReceiverType)
		}
		if len(repo.inserted) != 1 {
			t.Errorf("inserted %d messages, want 1", len(repo.inserted))
		}
	})

	t.Run("rejects a parent with no student in the teacher's classes", func(t *testing.T) {
		uc, _ := messagingFixture()
		_, err := uc.SendAsTeacher(context.Background(), 10, &domain.SendMessageRequest{CounterpartID: 2, Content: "hi"})
		assertCategory(t, err, domain.ErrUnauthorized)
	})
}

func TestOpenThread(t *testing.T) {
	t.Run("marks the thread read before returning it", func(t *testing.T) {
		uc, repo := messagingFixture()
		repo.thread = []domain.Message{{MessageID: 1, Content: "first"}, {MessageID: 2, Content: "second"}}

		thread, err := uc.OpenThreadAsParent(context.Background(), 1, 10)
		if err != nil {
			t.Fatalf("OpenThreadAsParent() error = %v", err)
		}
		if repo.markReadCalls != 1 {
			t.Errorf("mark-read calls = %d, want 1", repo.markReadCalls)
		}
		if len(*thread) != 2 {
			t.Errorf("thread length = %d, want 2", len(*thread))
		}
	})

	t.Run("opening against an unknown counterpart is not found", func(t *testing.T) {
		uc, repo := messagingFixture()
		_, err := uc.OpenThreadAsTeacher(context.Background(), 10, 99)
		assertCategory(t, err, domain.ErrNotFound)
		if repo.markReadCalls != 0 {
			t.Error("nothing may be marked read for an unknown counterpart")
		}
	})
}
