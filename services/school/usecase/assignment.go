package usecase

import (
	"context"
	"errors"
	"time"

	"schoolmgmt/domain"
)

type AssignmentUsecase struct {
	assignments domain.AssignmentRepo
	students    domain.StudentRepo
	teachers    domain.TeacherRepo
	academic    domain.AcademicRepo
}

func NewAssignmentUsecase(assignments domain.AssignmentRepo, students domain.StudentRepo, teachers domain.TeacherRepo, academic domain.AcademicRepo) *AssignmentUsecase {
	return &AssignmentUsecase{assignments: assignments, students: students, teachers: teachers, academic: academic}
}

func (au *AssignmentUsecase) Create(ctx context.Context, teacherID int, req *domain.CreateAssignmentRequest) (*domain.Assignment, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if _, err := au.academic.GetClassByID(ctx, req.ClassID); err != nil {
		return nil, err
	}
	if _, err := au.academic.GetSubjectByID(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	a := &domain.Assignment{
		Title:         req.Title,
		Description:   req.Description,
		ClassID:       req.ClassID,
		SubjectID:     req.SubjectID,
		TeacherID:     teacherID,
		DueDate:       req.DueDate,
		AttachmentURL: req.AttachmentURL,
		MaxMarks:      req.MaxMarks,
	}
	if err := au.assignments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (au *AssignmentUsecase) GetByTeacher(ctx context.Context, teacherID int) (*[]domain.Assignment, error) {
	return au.assignments.GetByTeacher(ctx, teacherID)
}

// Delete removes a teacher's own assignment plus its submissions. Deleting
// someone else's assignment is unauthorized.
func (au *AssignmentUsecase) Delete(ctx context.Context, teacherID, assignmentID int) error {
	a, err := au.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if a.TeacherID != teacherID {
		return domain.Unauthorizedf("assignment %d belongs to another teacher", assignmentID)
	}
	return au.assignments.Delete(ctx, assignmentID)
}

func (au *AssignmentUsecase) GetSubmissions(ctx context.Context, teacherID, assignmentID int) (*[]domain.AssignmentSubmission, error) {
	a, err := au.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if a.TeacherID != teacherID {
		return nil, domain.Unauthorizedf("assignment %d belongs to another teacher", assignmentID)
	}
	return au.assignments.GetSubmissions(ctx, assignmentID)
}

func (au *AssignmentUsecase) Grade(ctx context.Context, teacherID, assignmentID, studentID int, req *domain.GradeSubmissionRequest) (*domain.AssignmentSubmission, error) {
	a, err := au.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if a.TeacherID != teacherID {
		return nil, domain.Unauthorizedf("assignment %d belongs to another teacher", assignmentID)
	}
	if req.MarksObtained < 0 {
		return nil, domain.Validationf("marks cannot be negative")
	}
	if a.MaxMarks != nil && req.MarksObtained > float64(*a.MaxMarks) {
		return nil, domain.Validationf("marks exceed the maximum of %d", *a.MaxMarks)
	}

	sub, err := au.assignments.GetSubmission(ctx, assignmentID, studentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sub.MarksObtained = &req.MarksObtained
	sub.Feedback = req.Feedback
	sub.GradedAt = &now
	sub.GradedBy = &teacherID
	if err := au.assignments.SaveGrade(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// StudentView is one assignment plus its derived status for a student.
type StudentView struct {
	Assignment domain.Assignment            `json:"assignment"`
	Status     string                       `json:"status"`
	Submission *domain.AssignmentSubmission `json:"submission,omitempty"`
}

// ForStudent lists the student's class assignments with derived statuses.
func (au *AssignmentUsecase) ForStudent(ctx context.Context, studentID int) ([]StudentView, error) {
	student, err := au.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.ClassID == nil {
		return []StudentView{}, nil
	}

	assignments, err := au.assignments.GetByClass(ctx, *student.ClassID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]StudentView, 0, len(*assignments))
	for _, a := range *assignments {
		sub, err := au.assignments.GetSubmission(ctx, a.AssignmentID, studentID)
		if err != nil {
			var derr *domain.Error
			if !errors.As(err, &derr) || derr.Category != domain.ErrNotFound {
				return nil, err
			}
			sub = nil
		}
		out = append(out, StudentView{
			Assignment: a,
			Status:     domain.SubmissionStatus(a, sub, now),
			Submission: sub,
		})
	}
	return out, nil
}

// Submit records a student's submission. Content or file is required, one
// submission per assignment, and nothing is accepted past the due date.
func (au *AssignmentUsecase) Submit(ctx context.Context, studentID, assignmentID int, req *domain.SubmitAssignmentRequest) (*domain.AssignmentSubmission, error) {
	if req.Content == "" && req.FileURL == "" {
		return nil, domain.Validationf("submission content or file is required")
	}

	a, err := au.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	student, err := au.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.ClassID == nil || *student.ClassID != a.ClassID {
		return nil, domain.Unauthorizedf("assignment %d is not for your class", assignmentID)
	}

	now := time.Now()
	if a.DueDate.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())) {
		return nil, domain.Validationf("assignment %d is past its due date", assignmentID)
	}

	if _, err := au.assignments.GetSubmission(ctx, assignmentID, studentID); err == nil {
		return nil, domain.Conflictf("assignment %d has already been submitted", assignmentID)
	} else {
		var derr *domain.Error
		if !errors.As(err, &derr) || derr.Category != domain.ErrNotFound {
			return nil, err
		}
	}

	sub := &domain.AssignmentSubmission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      req.Content,
		FileURL:      req.FileURL,
	}
	if err := au.assignments.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
