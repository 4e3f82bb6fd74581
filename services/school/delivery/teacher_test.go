package delivery

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

type markerTeacherRepo struct {
	domain.TeacherRepo
	teacher *domain.Teacher
}

func (r *markerTeacherRepo) GetByUserID(_ context.Context, userID int) (*domain.Teacher, error) {
	if r.teacher.UserID != userID {
		return nil, domain.NotFoundf("teacher profile for user %d not found", userID)
	}
	return r.teacher, nil
}

func (r *markerTeacherRepo) GetClasses(_ context.Context, _ int) (*[]domain.Class, error) {
	return &[]domain.Class{{ClassID: 5}}, nil
}

type markerAttendanceRepo struct {
	domain.AttendanceRepo
	markedBy *int
}

func (r *markerAttendanceRepo) BulkMark(_ context.Context, _ time.Time, _ []domain.AttendanceMark, markedBy *int) error {
	r.markedBy = markedBy
	return nil
}

type markerExamRepo struct {
	domain.ExamRepo
	enteredBy *int
}

func (r *markerExamRepo) GetSchedule(_ context.Context, _, _, _ int) (*domain.ExamSchedule, error) {
	return &domain.ExamSchedule{ExamID: 1, ClassID: 5, SubjectID: 10, MaxMarks: 100}, nil
}

func (r *markerExamRepo) UpsertResults(_ context.Context, _, _ int, enteredBy *int, _ []domain.MarksEntry) error {
	r.enteredBy = enteredBy
	return nil
}

type markerStudentRepo struct {
	domain.StudentRepo
}

func (r *markerStudentRepo) GetByClass(_ context.Context, _ int) (*[]domain.Student, error) {
	return &[]domain.Student{{StudentID: 100}}, nil
}

// markerFixture wires the teacher surface over fakes with a teacher whose
// profile id differs from the user id, so stamping the wrong one is caught.
func markerFixture(t *testing.T) (*fiber.App, string, *markerAttendanceRepo, *markerExamRepo) {
	t.Helper()

	teacher := &domain.Teacher{TeacherID: 7, UserID: 42, Name: "Ms. Rivera"}
	teachers := &markerTeacherRepo{teacher: teacher}
	attRepo := &markerAttendanceRepo{}
	examRepo := &markerExamRepo{}
	students := &markerStudentRepo{}

	attendanceUC := usecase.NewAttendanceUsecase(attRepo, students, nil)
	examUC := usecase.NewExamUsecase(examRepo, students, nil, teachers)

	authMW := middleware.NewAuth("test-secret")
	token, err := authMW.GenerateJWT(teacher.UserID, "rivera@school.test", domain.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	app := fiber.New()
	NewTeacherHandler(app, authMW, teachers,
		usecase.NewPeopleUsecase(nil, nil, teachers, nil, nil, nil),
		usecase.NewAcademicUsecase(nil, teachers, students),
		attendanceUC, examUC,
		usecase.NewAssignmentUsecase(nil, students, teachers, nil),
		usecase.NewMessageUsecase(nil, students, teachers, nil, nil),
		usecase.NewNoticeUsecase(nil),
		nil)

	return app, token, attRepo, examRepo
}

func postJSON(t *testing.T, app *fiber.App, token, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestTeacherMarkerIdentity(t *testing.T) {
	t.Run("attendance marker is the teacher id", func(t *testing.T) {
		app, token, attRepo, _ := markerFixture(t)

		body, _ := json.Marshal(fiber.Map{
			"class_id": 5,
			"date":     "2026-03-02",
			"marks":    []fiber.Map{{"student_id": 100, "status": domain.AttendancePresent}},
		})
		if status := postJSON(t, app, token, "/teacher/attendance", string(body)); status != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
		}
		if attRepo.markedBy == nil {
			t.Fatal("marked_by was not stamped")
		}
		if *attRepo.markedBy != 7 {
			t.Errorf("marked_by = %d, want teacher id 7", *attRepo.markedBy)
		}
	})

	t.Run("marks entry enterer is the teacher id", func(t *testing.T) {
		app, token, _, examRepo := markerFixture(t)

		body, _ := json.Marshal(fiber.Map{
			"exam_id":    1,
			"subject_id": 10,
			"class_id":   5,
			"results":    []fiber.Map{{"student_id": 100, "marks_obtained": 80}},
		})
		if status := postJSON(t, app, token, "/teacher/exams/results", string(body)); status != fiber.StatusOK {
			t.Fatalf("status = %d, want %d", status, fiber.StatusOK)
		}
		if examRepo.enteredBy == nil {
			t.Fatal("entered_by was not stamped")
		}
		if *examRepo.enteredBy != 7 {
			t.Errorf("entered_by = %d, want teacher id 7", *examRepo.enteredBy)
		}
	})
}
