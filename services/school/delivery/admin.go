package delivery

import (
	"strconv"
	"time"

	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the full management surface: people, classes,
// subjects, timetable, attendance, fees, exams, notices and admissions.
type AdminHandler struct {
	people     *usecase.PeopleUsecase
	academic   *usecase.AcademicUsecase
	attendance *usecase.AttendanceUsecase
	fees       *usecase.FeeUsecase
	exams      *usecase.ExamUsecase
	notices    *usecase.NoticeUsecase
	admissions *usecase.AdmissionUsecase
	dashboard  *usecase.DashboardUsecase
}

func NewAdminHandler(
	app *fiber.App,
	authMW *middleware.Auth,
	people *usecase.PeopleUsecase,
	academic *usecase.AcademicUsecase,
	attendance *usecase.AttendanceUsecase,
	fees *usecase.FeeUsecase,
	exams *usecase.ExamUsecase,
	notices *usecase.NoticeUsecase,
	admissions *usecase.AdmissionUsecase,
	dashboard *usecase.DashboardUsecase,
) {
	h := &AdminHandler{
		people:     people,
		academic:   academic,
		attendance: attendance,
		fees:       fees,
		exams:      exams,
		notices:    notices,
		admissions: admissions,
		dashboard:  dashboard,
	}

	admin := app.Group("/admin", authMW.AuthRequired, middleware.RequireRole(domain.RoleAdmin))

	admin.Get("/dashboard", h.Dashboard)

	admin.Get("/students", h.ListStudents)
	admin.Post("/students", h.CreateStudent)
	admin.Get("/students/:id", h.GetStudent)
	admin.Put("/students/:id", h.UpdateStudent)
	admin.Delete("/students/:id", h.DeleteStudent)

	admin.Get("/teachers", h.ListTeachers)
	admin.Post("/teachers", h.CreateTeacher)
	admin.Get("/teachers/:id", h.GetTeacher)
	admin.Put("/teachers/:id", h.UpdateTeacher)
	admin.Delete("/teachers/:id", h.DeleteTeacher)
	admin.Put("/teachers/:id/classes", h.AssignTeacherClasses)
	admin.Put("/teachers/:id/subjects", h.AssignTeacherSubjects)

	admin.Get("/parents", h.ListParents)
	admin.Post("/parents", h.CreateParent)
	admin.Get("/parents/:id", h.GetParent)
	admin.Get("/parents/:id/children", h.ParentChildren)
	admin.Put("/parents/:id", h.UpdateParent)
	admin.Delete("/parents/:id", h.DeleteParent)

	admin.Get("/admins", h.ListAdmins)
	admin.Post("/admins", h.CreateAdmin)

	admin.Get("/classes", h.ListClasses)
	admin.Post("/classes", h.CreateClass)
	admin.Get("/classes/:id", h.GetClass)
	admin.Get("/classes/:id/students", h.ClassStudents)
	admin.Put("/classes/:id", h.UpdateClass)
	admin.Delete("/classes/:id", h.DeleteClass)

	admin.Get("/subjects", h.ListSubjects)
	admin.Post("/subjects", h.CreateSubject)

	admin.Get("/classes/:id/timetable", h.ClassTimetable)
	admin.Post("/timetable", h.CreateTimetableEntry)
	admin.Put("/timetable/:id", h.UpdateTimetableEntry)
	admin.Delete("/timetable/:id", h.DeleteTimetableEntry)

	admin.Post("/attendance", h.MarkAttendance)
	admin.Get("/classes/:id/attendance", h.ClassAttendance)
	admin.Get("/students/:id/attendance", h.StudentAttendance)

	admin.Get("/fees", h.ListFees)
	admin.Post("/fees", h.CreateFee)
	admin.Post("/classes/:id/fees", h.CreateClassFees)
	admin.Post("/fees/pay", h.PayFee)

	admin.Get("/exams", h.ListExams)
	admin.Post("/exams", h.CreateExam)
	admin.Put("/exams/:id", h.UpdateExam)
	admin.Delete("/exams/:id", h.DeleteExam)
	admin.Get("/exams/:id/schedules", h.ExamSchedules)
	admin.Post("/exams/schedules", h.CreateExamSchedule)
	admin.Delete("/exams/schedules/:id", h.DeleteExamSchedule)
	admin.Get("/exams/:id/results", h.ExamResults)
	admin.Post("/exams/results", h.EnterMarks)

	admin.Get("/notices", h.ListNotices)
	admin.Post("/notices", h.CreateNotice)
	admin.Put("/notices/:id", h.UpdateNotice)
	admin.Delete("/notices/:id", h.DeleteNotice)

	admin.Get("/admissions", h.ListAdmissions)
	admin.Put("/admissions/:id/status", h.UpdateAdmissionStatus)
}

func pathID(c *fiber.Ctx) (int, error) {
	return pathParamID(c, "id")
}

func pathParamID(c *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid %s %q", name, c.Params(name))
	}
	return id, nil
}

func parseDate(raw string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.Validationf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return d, nil
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	data, err := h.dashboard.Admin(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, data)
}

func (h *AdminHandler) ListStudents(c *fiber.Ctx) error {
	students, err := h.people.GetAllStudents(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, students)
}

func (h *AdminHandler) CreateStudent(c *fiber.Ctx) error {
	var req domain.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	student, err := h.people.CreateStudent(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, student)
}

func (h *AdminHandler) GetStudent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	student, err := h.people.GetStudent(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, student)
}

func (h *AdminHandler) UpdateStudent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var upd domain.StudentUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badBody(c)
	}
	student, err := h.people.UpdateStudent(c.Context(), id, &upd)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, student)
}

func (h *AdminHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.people.DeleteStudent(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

func (h *AdminHandler) ListTeachers(c *fiber.Ctx) error {
	teachers, err := h.people.GetAllTeachers(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, teachers)
}

func (h *AdminHandler) CreateTeacher(c *fiber.Ctx) error {
	var req domain.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	teacher, err := h.people.CreateTeacher(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, teacher)
}

func (h *AdminHandler) GetTeacher(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	teacher, err := h.people.GetTeacher(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, teacher)
}

func (h *AdminHandler) UpdateTeacher(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var upd domain.TeacherUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badBody(c)
	}
	teacher, err := h.people.UpdateTeacher(c.Context(), id, &upd)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, teacher)
}

func (h *AdminHandler) DeleteTeacher(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.people.DeleteTeacher(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

type assignIDsRequest struct {
	IDs []int `json:"ids"`
}

func (h *AdminHandler) AssignTeacherClasses(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var req assignIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if err := h.people.AssignTeacherClasses(c.Context(), id, req.IDs); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"teacher_id": id, "class_ids": req.IDs})
}

func (h *AdminHandler) AssignTeacherSubjects(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var req assignIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if err := h.people.AssignTeacherSubjects(c.Context(), id, req.IDs); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"teacher_id": id, "subject_ids": req.IDs})
}

func (h *AdminHandler) ListParents(c *fiber.Ctx) error {
	parents, err := h.people.GetAllParents(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, parents)
}

func (h *AdminHandler) CreateParent(c *fiber.Ctx) error {
	var req domain.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	parent, err := h.people.CreateParent(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, parent)
}

func (h *AdminHandler) GetParent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	parent, err := h.people.GetParent(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, parent)
}

func (h *AdminHandler) ParentChildren(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	children, err := h.people.GetParentChildren(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, children)
}

func (h *AdminHandler) UpdateParent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var upd domain.ParentUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badBody(c)
	}
	parent, err := h.people.UpdateParent(c.Context(), id, &upd)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, parent)
}

func (h *AdminHandler) DeleteParent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.people.DeleteParent(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

func (h *AdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.people.GetAllAdmins(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, admins)
}

func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var req domain.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	admin, err := h.people.CreateAdmin(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, admin)
}

func (h *AdminHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.academic.GetAllClasses(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, classes)
}

func (h *AdminHandler) CreateClass(c *fiber.Ctx) error {
	var class domain.Class
	if err := c.BodyParser(&class); err != nil {
		return badBody(c)
	}
	out, err := h.academic.CreateClass(c.Context(), &class)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *AdminHandler) GetClass(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	class, err := h.academic.GetClass(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, class)
}

func (h *AdminHandler) ClassStudents(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	students, err := h.academic.GetClassStudents(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, students)
}

func (h *AdminHandler) UpdateClass(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var upd domain.ClassUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badBody(c)
	}
	class, err := h.academic.UpdateClass(c.Context(), id, &upd)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, class)
}

func (h *AdminHandler) DeleteClass(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.academic.DeleteClass(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

func (h *AdminHandler) ListSubjects(c *fiber.Ctx) error {
	subjects, err := h.academic.GetAllSubjects(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, subjects)
}

func (h *AdminHandler) CreateSubject(c *fiber.Ctx) error {
	var subject domain.Subject
	if err := c.BodyParser(&subject); err != nil {
		return badBody(c)
	}
	out, err := h.academic.CreateSubject(c.Context(), &subject)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *AdminHandler) ClassTimetable(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	timetable, err := h.academic.ClassTimetable(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, timetable)
}

func (h *AdminHandler) CreateTimetableEntry(c *fiber.Ctx) error {
	var entry domain.Timetable
	if err := c.BodyParser(&entry); err != nil {
		return badBody(c)
	}
	out, err := h.academic.CreateTimetableEntry(c.Context(), &entry)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *AdminHandler) UpdateTimetableEntry(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var entry domain.Timetable
	if err := c.BodyParser(&entry); err != nil {
		return badBody(c)
	}
	if err := h.academic.UpdateTimetableEntry(c.Context(), id, &entry); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"updated": id})
}

func (h *AdminHandler) DeleteTimetableEntry(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.academic.DeleteTimetableEntry(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

type markAttendanceRequest struct {
	ClassID int                     `json:"class_id"`
	Date    string                  `json:"date"`
	Marks   []domain.AttendanceMark `json:"marks"`
}

func (h *AdminHandler) MarkAttendance(c *fiber.Ctx) error {
	var req markAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return fail(c, err)
	}
	if err := h.attendance.BulkMark(c.Context(), req.ClassID, date, req.Marks, nil); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"marked": len(req.Marks), "date": req.Date})
}

func (h *AdminHandler) ClassAttendance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
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

func dateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		from = &d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		to = &d
	}
	return from, to, nil
}

func (h *AdminHandler) StudentAttendance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
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

func (h *AdminHandler) ListFees(c *fiber.Ctx) error {
	fees, err := h.fees.GetAll(c.Context(), c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fees)
}

func (h *AdminHandler) CreateFee(c *fiber.Ctx) error {
	var req domain.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	fee, err := h.fees.Create(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, fee)
}

func (h *AdminHandler) CreateClassFees(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var req domain.CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	n, err := h.fees.CreateForClass(c.Context(), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, fiber.Map{"created": n})
}

func (h *AdminHandler) PayFee(c *fiber.Ctx) error {
	var req domain.PayFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	fee, err := h.fees.Pay(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fee)
}

func (h *AdminHandler) ListExams(c *fiber.Ctx) error {
	exams, err := h.exams.GetAllExams(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, exams)
}

func (h *AdminHandler) CreateExam(c *fiber.Ctx) error {
	var exam domain.Exam
	if err := c.BodyParser(&exam); err != nil {
		return badBody(c)
	}
	out, err := h.exams.CreateExam(c.Context(), &exam)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *AdminHandler) UpdateExam(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var exam domain.Exam
	if err := c.BodyParser(&exam); err != nil {
		return badBody(c)
	}
	exam.ExamID = id
	if err := h.exams.UpdateExam(c.Context(), &exam); err != nil {
		return fail(c, err)
	}
	return ok(c, exam)
}

func (h *AdminHandler) DeleteExam(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.exams.DeleteExam(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

func (h *AdminHandler) ExamSchedules(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	schedules, err := h.exams.GetSchedulesByExam(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, schedules)
}

func (h *AdminHandler) CreateExamSchedule(c *fiber.Ctx) error {
	var s domain.ExamSchedule
	if err := c.BodyParser(&s); err != nil {
		return badBody(c)
	}
	out, err := h.exams.CreateSchedule(c.Context(), &s)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *AdminHandler) DeleteExamSchedule(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.exams.DeleteSchedule(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

func (h *AdminHandler) ExamResults(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	results, err := h.exams.GetResultsByExam(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, results)
}

func (h *AdminHandler) EnterMarks(c *fiber.Ctx) error {
	var req domain.EnterMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if err := h.exams.EnterMarks(c.Context(), &req, nil); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"recorded": len(req.Results)})
}

func (h *AdminHandler) ListNotices(c *fiber.Ctx) error {
	notices, err := h.notices.GetAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, notices)
}

func (h *AdminHandler) CreateNotice(c *fiber.Ctx) error {
	var notice domain.Notice
	if err := c.BodyParser(&notice); err != nil {
		return badBody(c)
	}
	out, err := h.notices.Create(c.Context(), &notice, middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

func (h *AdminHandler) UpdateNotice(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var upd domain.NoticeUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badBody(c)
	}
	notice, err := h.notices.Update(c.Context(), id, &upd)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, notice)
}

func (h *AdminHandler) DeleteNotice(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.notices.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"deleted": id})
}

func (h *AdminHandler) ListAdmissions(c *fiber.Ctx) error {
	admissions, err := h.admissions.GetAll(c.Context(), c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, admissions)
}

func (h *AdminHandler) UpdateAdmissionStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	var upd domain.AdmissionStatusUpdate
	if err := c.BodyParser(&upd); err != nil {
		return badBody(c)
	}
	admission, err := h.admissions.UpdateStatus(c.Context(), id, &upd)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, admission)
}
