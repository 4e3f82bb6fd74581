package delivery

import (
	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

type StudentHandler struct {
	students    domain.StudentRepo
	academic    *usecase.AcademicUsecase
	attendance  *usecase.AttendanceUsecase
	fees        *usecase.FeeUsecase
	exams       *usecase.ExamUsecase
	assignments *usecase.AssignmentUsecase
	notices     *usecase.NoticeUsecase
	dashboard   *usecase.DashboardUsecase
}

func NewStudentHandler(
	app *fiber.App,
	authMW *middleware.Auth,
	students domain.StudentRepo,
	academic *usecase.AcademicUsecase,
	attendance *usecase.AttendanceUsecase,
	fees *usecase.FeeUsecase,
	exams *usecase.ExamUsecase,
	assignments *usecase.AssignmentUsecase,
	notices *usecase.NoticeUsecase,
	dashboard *usecase.DashboardUsecase,
) {
	h := &StudentHandler{
		students:    students,
		academic:    academic,
		attendance:  attendance,
		fees:        fees,
		exams:       exams,
		assignments: assignments,
		notices:     notices,
		dashboard:   dashboard,
	}

	student := app.Group("/student", authMW.AuthRequired, middleware.RequireRole(domain.RoleStudent))

	student.Get("/dashboard", h.Dashboard)
	student.Get("/timetable", h.Timetable)
	student.Get("/attendance", h.Attendance)
	student.Get("/exams/schedule", h.ExamSchedule)
	student.Get("/exams/results", h.Results)
	student.Get("/fees", h.Fees)
	student.Get("/assignments", h.Assignments)
	student.Post("/assignments/:id/submit", h.Submit)
	student.Get("/notices", h.Notices)
}

func (h *StudentHandler) profile(c *fiber.Ctx) (*domain.Student, error) {
	return h.students.GetByUserID(c.Context(), middleware.UserID(c))
}

func (h *StudentHandler) Dashboard(c *fiber.Ctx) error {
	s, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	data, err := h.dashboard.Student(c.Context(), s.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, data)
}

func (h *StudentHandler) Timetable(c *fiber.Ctx) error {
	s, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	if s.ClassID == nil {
		return ok(c, fiber.Map{})
	}
	timetable, err := h.academic.ClassTimetable(c.Context(), *s.ClassID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, timetable)
}

func (h *StudentHandler) Attendance(c *fiber.Ctx) error {
	s, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	from, to, err := dateRange(c)
	if err != nil {
		return fail(c, err)
	}
	summary, records, err := h.attendance.StudentSummary(c.Context(), s.StudentID, from, to)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"summary": summary, "records": records})
}

func (h *StudentHandler) ExamSchedule(c *fiber.Ctx) error {
	s, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	if s.ClassID == nil {
		return ok(c, []domain.ExamSchedule{})
	}
	schedules, err := h.exams.SchedulesForClass(c.Context(), *s.ClassID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, schedules)
}

func (h *StudentHandler) Results(c *fiber.Ctx) error {
	s, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	reports, err := h.exams.StudentReport(c.Context(), s.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, reports)
}

func (h *StudentHandler) Fees(c *fiber.Ctx) error {
	s, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	fees, summary, err := h.fees.GetByStudent(c.Context(), s.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"fees": fees, "summary": summary})
}

func (h *StudentHandler) Assignments(c *fiber.Ctx) error {
	s, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	views, err := h.assignments.ForStudent(c.Context(), s.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, views)
}

func (h *StudentHandler) Submit(c *fiber.Ctx) error {
	s, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var req domain.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	sub, err := h.assignments.Submit(c.Context(), s.StudentID, id, &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, sub)
}

func (h *StudentHandler) Notices(c *fiber.Ctx) error {
	notices, err := h.notices.ForRole(c.Context(), domain.RoleStudent, 0)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, notices)
}
