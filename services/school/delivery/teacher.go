package delivery

import (
	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

type TeacherHandler struct {
	teachers    domain.TeacherRepo
	people      *usecase.PeopleUsecase
	academic    *usecase.AcademicUsecase
	attendance  *usecase.AttendanceUsecase
	exams       *usecase.ExamUsecase
	assignments *usecase.AssignmentUsecase
	messages    *usecase.MessageUsecase
	notices     *usecase.NoticeUsecase
	dashboard   *usecase.DashboardUsecase
}

func NewTeacherHandler(
	app *fiber.App,
	authMW *middleware.Auth,
	teachers domain.TeacherRepo,
	people *usecase.PeopleUsecase,
	academic *usecase.AcademicUsecase,
	attendance *usecase.AttendanceUsecase,
	exams *usecase.ExamUsecase,
	assignments *usecase.AssignmentUsecase,
	messages *usecase.MessageUsecase,
	notices *usecase.NoticeUsecase,
	dashboard *usecase.DashboardUsecase,
) {
	h := &TeacherHandler{
		teachers:    teachers,
		people:      people,
		academic:    academic,
		attendance:  attendance,
		exams:       exams,
		assignments: assignments,
		messages:    messages,
		notices:     notices,
		dashboard:   dashboard,
	}

	teacher := app.Group("/teacher", authMW.AuthRequired, middleware.RequireRole(domain.RoleTeacher))

	teacher.Get("/dashboard", h.Dashboard)
	teacher.Get("/profile", h.Profile)
	teacher.Put("/profile", h.UpdateProfile)
	teacher.Get("/timetable", h.Timetable)

	teacher.Get("/assignments", h.ListAssignments)
	teacher.Post("/assignments", h.CreateAssignment)
	teacher.Delete("/assignments/:id", h.DeleteAssignment)
	teacher.Get("/assignments/:id/submissions", h.Submissions)
	teacher.Put("/assignments/:id/submissions/:studentId/grade", h.Grade)

	teacher.Post("/attendance", h.MarkAttendance)
	teacher.Get("/classes/:id/attendance", h.ClassAttendance)

	teacher.Get("/exams/schedules", h.ExamSchedules)
	teacher.Get("/exams/:id/roster", h.ExamRoster)
	teacher.Post("/exams/results", h.EnterMarks)

	teacher.Get("/notices", h.Notices)

	teacher.Get("/messages", h.Conversations)
	teacher.Get("/messages/:id", h.OpenThread)
	teacher.Post("/messages", h.SendMessage)
}

// profile resolves the caller's teacher row from the authenticated user.
func (h *TeacherHandler) profile(c *fiber.Ctx) (*domain.Teacher, error) {
	return h.teachers.GetByUserID(c.Context(), middleware.UserID(c))
}

func (h *TeacherHandler) Dashboard(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	data, err := h.dashboard.Teacher(c.Context(), t.TeacherID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, data)
}

func (h *TeacherHandler) Profile(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	full, err := h.people.GetTeacher(c.Context(), t.TeacherID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, full)
}

func (h *TeacherHandler) UpdateProfile(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	var upd domain.TeacherUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badBody(c)
	}
	updated, err := h.people.UpdateTeacher(c.Context(), t.TeacherID, &upd)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, updated)
}

func (h *TeacherHandler) Timetable(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	timetable, err := h.academic.TeacherTimetable(c.Context(), t.TeacherID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, timetable)
}

func (h *TeacherHandler) ListAssignments(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	assignments, err := h.assignments.GetByTeacher(c.Context(), t.TeacherID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, assignments)
}

func (h *TeacherHandler) CreateAssignment(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	var req domain.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	a, err := h.assignments.Create(c.Context(), t.TeacherID, &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, a)
}

func (h *TeacherHandler) DeleteAssignment(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.assignments.Delete(c.Context(), t.TeacherID, id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

func (h *TeacherHandler) Submissions(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	subs, err := h.assignments.GetSubmissions(c.Context(), t.TeacherID, id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, subs)
}

func (h *TeacherHandler) Grade(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	assignmentID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	studentID, err := pathParamID(c, "studentId")
	if err != nil {
		return fail(c, err)
	}
	var req domain.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	sub, err := h.assignments.Grade(c.Context(), t.TeacherID, assignmentID, studentID, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, sub)
}

func (h *TeacherHandler) MarkAttendance(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	var req markAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return fail(c, err)
	}
	if err := h.teachesClass(c, t, req.ClassID); err != nil {
		return fail(c, err)
	}
	if err := h.attendance.BulkMark(c.Context(), req.ClassID, date, req.Marks, &t.TeacherID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"marked": len(req.Marks), "date": req.Date})
}

func (h *TeacherHandler) ClassAttendance(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.teachesClass(c, t, id); err != nil {
		return fail(c, err)
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		return fail(c, err)
	}
	rows, err := h.attendance.ClassOnDate(c.Context(), id, date)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, rows)
}

func (h *TeacherHandler) teachesClass(c *fiber.Ctx, t *domain.Teacher, classID int) error {
	classes, err := h.teachers.GetClasses(c.Context(), t.TeacherID)
	if err != nil {
		return err
	}
	for _, class := range *classes {
		if class.ClassID == classID {
			return nil
		}
	}
	return domain.Unauthorizedf("class %d is not assigned to you", classID)
}

func (h *TeacherHandler) ExamSchedules(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	schedules, err := h.exams.TeacherSchedules(c.Context(), t.TeacherID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, schedules)
}

// ExamRoster lists the class students plus any marks already recorded for
// the exam and subject, so the entry form can be prefilled.
func (h *TeacherHandler) ExamRoster(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	examID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	classID := c.QueryInt("class_id")
	subjectID := c.QueryInt("subject_id")
	if classID <= 0 || subjectID <= 0 {
		return fail(c, domain.Validationf("class_id and subject_id query parameters are required"))
	}
	if err := h.teachesClass(c, t, classID); err != nil {
		return fail(c, err)
	}

	students, err := h.academic.GetClassStudents(c.Context(), classID)
	if err != nil {
		return fail(c, err)
	}
	results, err := h.exams.GetResultsByExam(c.Context(), examID)
	if err != nil {
		return fail(c, err)
	}

	marks := make(map[int]domain.ExamResult)
	for _, r := range *results {
		if r.SubjectID == subjectID {
			marks[r.StudentID] = r
		}
	}

	type rosterRow struct {
		Student domain.Student     `json:"student"`
		Result  *domain.ExamResult `json:"result,omitempty"`
	}
	rows := make([]rosterRow, 0, len(*students))
	for _, s := range *students {
		row := rosterRow{Student: s}
		if r, found := marks[s.StudentID]; found {
			result := r
			row.Result = &result
		}
		rows = append(rows, row)
	}
	return ok(c, rows)
}

func (h *TeacherHandler) EnterMarks(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	var req domain.EnterMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if err := h.teachesClass(c, t, req.ClassID); err != nil {
		return fail(c, err)
	}
	if err := h.exams.EnterMarks(c.Context(), &req, &t.TeacherID); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"recorded": len(req.Results)})
}

func (h *TeacherHandler) Notices(c *fiber.Ctx) error {
	notices, err := h.notices.ForRole(c.Context(), domain.RoleTeacher, 0)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, notices)
}

func (h *TeacherHandler) Conversations(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	convs, err := h.messages.TeacherConversations(c.Context(), t.TeacherID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, convs)
}

func (h *TeacherHandler) OpenThread(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	parentID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	thread, err := h.messages.OpenThreadAsTeacher(c.Context(), t.TeacherID, parentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, thread)
}

func (h *TeacherHandler) SendMessage(c *fiber.Ctx) error {
	t, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	var req domain.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	m, err := h.messages.SendAsTeacher(c.Context(), t.TeacherID, &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, m)
}
