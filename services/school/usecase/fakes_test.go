package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"schoolmgmt/domain"
)

func assertCategory(t *testing.T, err error, want domain.ErrorCategory) {
	t.Helper()
	var derr *domain.Error
	if !errors.As(err, &derr) {
		t.Fatalf("error = %v, want category %s", err, want)
	}
	if derr.Category != want {
		t.Fatalf("category = %s, want %s", derr.Category, want)
	}
}

// The fakes embed their repo interface so only the methods a test exercises
// need overriding; calling anything else panics, which surfaces unexpected
// repo usage immediately.

type fakeStudentRepo struct {
	domain.StudentRepo
	byID     map[int]*domain.Student
	byClass  map[int][]domain.Student
	byParent map[int][]domain.Student
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int) (*domain.Student, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.NotFoundf("student %d not found", id)
}

func (f *fakeStudentRepo) GetByClass(_ context.Context, classID int) (*[]domain.Student, error) {
	list := f.byClass[classID]
	return &list, nil
}

func (f *fakeStudentRepo) GetByClasses(_ context.Context, classIDs []int) (*[]domain.Student, error) {
	var list []domain.Student
	for _, id := range classIDs {
		list = append(list, f.byClass[id]...)
	}
	return &list, nil
}

func (f *fakeStudentRepo) GetByParent(_ context.Context, parentID int) (*[]domain.Student, error) {
	list := f.byParent[parentID]
	return &list, nil
}

type fakeTeacherRepo struct {
	domain.TeacherRepo
	byID       map[int]*domain.Teacher
	bySubjects []domain.Teacher
	classes    []domain.Class
}

func (f *fakeTeacherRepo) GetByID(_ context.Context, id int) (*domain.Teacher, error) {
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, domain.NotFoundf("teacher %d not found", id)
}

func (f *fakeTeacherRepo) GetBySubjects(_ context.Context, _ []int) (*[]domain.Teacher, error) {
	return &f.bySubjects, nil
}

func (f *fakeTeacherRepo) GetClasses(_ context.Context, _ int) (*[]domain.Class, error) {
	return &f.classes, nil
}

type fakeParentRepo struct {
	domain.ParentRepo
	byID map[int]*domain.Parent
	list []domain.Parent
}

func (f *fakeParentRepo) GetByID(_ context.Context, id int) (*domain.Parent, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.NotFoundf("parent %d not found", id)
}

func (f *fakeParentRepo) GetByIDs(_ context.Context, _ []int) (*[]domain.Parent, error) {
	return &f.list, nil
}

type fakeAcademicRepo struct {
	domain.AcademicRepo
	classes  map[int]*domain.Class
	subjects []domain.Subject
}

func (f *fakeAcademicRepo) GetClassByID(_ context.Context, id int) (*domain.Class, error) {
	if c, ok := f.classes[id]; ok {
		return c, nil
	}
	return nil, domain.NotFoundf("class %d not found", id)
}

func (f *fakeAcademicRepo) GetSubjectsByClasses(_ context.Context, _ []int) (*[]domain.Subject, error) {
	return &f.subjects, nil
}

type fakeExamRepo struct {
	domain.ExamRepo
	schedule *domain.ExamSchedule
	upserted []domain.MarksEntry
}

func (f *fakeExamRepo) GetSchedule(_ context.Context, examID, subjectID, classID int) (*domain.ExamSchedule, error) {
	if f.schedule == nil {
		return nil, domain.NotFoundf("no sitting scheduled for exam %d", examID)
	}
	return f.schedule, nil
}

func (f *fakeExamRepo) UpsertResults(_ context.Context, _, _ int, _ *int, entries []domain.MarksEntry) error {
	f.upserted = entries
	return nil
}

type submissionKey struct{ assignment, student int }

type fakeAssignmentRepo struct {
	domain.AssignmentRepo
	byID        map[int]*domain.Assignment
	submissions map[submissionKey]*domain.AssignmentSubmission
	created     *domain.AssignmentSubmission
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, id int) (*domain.Assignment, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, domain.NotFoundf("assignment %d not found", id)
}

func (f *fakeAssignmentRepo) GetSubmission(_ context.Context, assignmentID, studentID int) (*domain.AssignmentSubmission, error) {
	if s, ok := f.submissions[submissionKey{assignmentID, studentID}]; ok {
		return s, nil
	}
	return nil, domain.NotFoundf("no submission for assignment %d", assignmentID)
}

func (f *fakeAssignmentRepo) CreateSubmission(_ context.Context, sub *domain.AssignmentSubmission) error {
	f.created = sub
	return nil
}

type fakeMessageRepo struct {
	domain.MessageRepo
	inserted      []domain.Message
	thread        []domain.Message
	markReadCalls int
}

func (f *fakeMessageRepo) Insert(_ context.Context, m *domain.Message) error {
	f.inserted = append(f.inserted, *m)
	return nil
}

func (f *fakeMessageRepo) GetThread(_ context.Context, _, _ int) (*[]domain.Message, error) {
	return &f.thread, nil
}

func (f *fakeMessageRepo) MarkThreadRead(_ context.Context, _ int, _ string, _ int, _ string, _ time.Time) error {
	f.markReadCalls++
	return nil
}
