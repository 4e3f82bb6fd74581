package delivery

import (
	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

type ParentHandler struct {
	parents     domain.ParentRepo
	students    domain.StudentRepo
	academic    *usecase.AcademicUsecase
	attendance  *usecase.AttendanceUsecase
	fees        *usecase.FeeUsecase
	exams       *usecase.ExamUsecase
	assignments *usecase.AssignmentUsecase
	messages    *usecase.MessageUsecase
	notices     *usecase.NoticeUsecase
	dashboard   *usecase.DashboardUsecase
}

func NewParentHandler(
	app *fiber.App,
	authMW *middleware.Auth,
	parents domain.ParentRepo,
	students domain.StudentRepo,
	academic *usecase.AcademicUsecase,
	attendance *usecase.AttendanceUsecase,
	fees *usecase.FeeUsecase,
	exams *usecase.ExamUsecase,
	assignments *usecase.AssignmentUsecase,
	messages *usecase.MessageUsecase,
	notices *usecase.NoticeUsecase,
	dashboard *usecase.DashboardUsecase,
) {
	h := &ParentHandler{
		parents:     parents,
		students:    students,
		academic:    academic,
		attendance:  attendance,
		fees:        fees,
		exams:       exams,
		assignments: assignments,
		messages:    messages,
		notices:     notices,
		dashboard:   dashboard,
	}

	parent := app.Group("/parent", authMW.AuthRequired, middleware.RequireRole(domain.RoleParent))

	parent.Get("/dashboard", h.Dashboard)
	parent.Get("/children", h.Children)
	parent.Get("/children/:id/attendance", h.ChildAttendance)
	parent.Get("/children/:id/results", h.ChildResults)
	parent.Get("/children/:id/assignments", h.ChildAssignments)
	parent.Get("/children/:id/timetable", h.ChildTimetable)

	parent.Get("/fees", h.Fees)
	parent.Post("/fees/pay", h.PayFee)

	parent.Get("/notices", h.Notices)

	parent.Get("/messages", h.Conversations)
	parent.Get("/messages/:id", h.OpenThread)
	parent.Post("/messages", h.SendMessage)
}

func (h *ParentHandler) profile(c *fiber.Ctx) (*domain.Parent, error) {
	return h.parents.GetByUserID(c.Context(), middleware.UserID(c))
}

// ownChild guards the per-child routes: the student must belong to the
// caller.
func (h *ParentHandler) ownChild(c *fiber.Ctx, parentID, studentID int) error {
	children, err := h.students.GetByParent(c.Context(), parentID)
	if err != nil {
		return err
	}
	for _, child := range *children {
		if child.StudentID == studentID {
			return nil
		}
	}
	return domain.Unauthorizedf("student %d is not your child", studentID)
}

func (h *ParentHandler) Dashboard(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	data, err := h.dashboard.Parent(c.Context(), p.ParentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, data)
}

func (h *ParentHandler) Children(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	children, err := h.students.GetByParent(c.Context(), p.ParentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, children)
}

func (h *ParentHandler) ChildAttendance(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.ownChild(c, p.ParentID, id); err != nil {
		return fail(c, err)
	}
	from, to, err := dateRange(c)
	if err != nil {
		return fail(c, err)
	}
	summary, records, err := h.attendance.StudentSummary(c.Context(), id, from, to)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"summary": summary, "records": records})
}

func (h *ParentHandler) ChildResults(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.ownChild(c, p.ParentID, id); err != nil {
		return fail(c, err)
	}
	reports, err := h.exams.StudentReport(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, reports)
}

func (h *ParentHandler) ChildAssignments(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.ownChild(c, p.ParentID, id); err != nil {
		return fail(c, err)
	}
	views, err := h.assignments.ForStudent(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, views)
}

func (h *ParentHandler) ChildTimetable(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.ownChild(c, p.ParentID, id); err != nil {
		return fail(c, err)
	}
	child, err := h.students.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if child.ClassID == nil {
		return ok(c, fiber.Map{})
	}
	timetable, err := h.academic.ClassTimetable(c.Context(), *child.ClassID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, timetable)
}

func (h *ParentHandler) Fees(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	fees, summary, err := h.fees.FamilySummary(c.Context(), p.ParentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"fees": fees, "summary": summary})
}

func (h *ParentHandler) PayFee(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	var req domain.PayFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	fee, err := h.fees.PayAsParent(c.Context(), p.ParentID, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fee)
}

func (h *ParentHandler) Notices(c *fiber.Ctx) error {
	notices, err := h.notices.ForRole(c.Context(), domain.RoleParent, 0)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, notices)
}

func (h *ParentHandler) Conversations(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	convs, err := h.messages.ParentConversations(c.Context(), p.ParentID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, convs)
}

func (h *ParentHandler) OpenThread(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	teacherID, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	thread, err := h.messages.OpenThreadAsParent(c.Context(), p.ParentID, teacherID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, thread)
}

func (h *ParentHandler) SendMessage(c *fiber.Ctx) error {
	p, err := h.profile(c)
	if err != nil {
		return fail(c, err)
	}
	var req domain.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	m, err := h.messages.SendAsParent(c.Context(), p.ParentID, &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, m)
}
