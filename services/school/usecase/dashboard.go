package usecase

import (
	"context"
	"time"

	"schoolmgmt/domain"
)

// DashboardUsecase assembles the per-role landing summaries. Every number is
// derived live; nothing is cached or denormalized.
type DashboardUsecase struct {
	students    domain.StudentRepo
	teachers    domain.TeacherRepo
	parents     domain.ParentRepo
	academic    domain.AcademicRepo
	attendance  *AttendanceUsecase
	fees        domain.FeeRepo
	exams       domain.ExamRepo
	assignments domain.AssignmentRepo
	admissions  domain.AdmissionRepo
	notices     domain.NoticeRepo
	attRepo     domain.AttendanceRepo
}

func NewDashboardUsecase(
	students domain.StudentRepo,
	teachers domain.TeacherRepo,
	parents domain.ParentRepo,
	academic domain.AcademicRepo,
	attendance *AttendanceUsecase,
	attRepo domain.AttendanceRepo,
	fees domain.FeeRepo,
	exams domain.ExamRepo,
	assignments domain.AssignmentRepo,
	admissions domain.AdmissionRepo,
	notices domain.NoticeRepo,
) *DashboardUsecase {
	return &DashboardUsecase{
		students:    students,
		teachers:    teachers,
		parents:     parents,
		academic:    academic,
		attendance:  attendance,
		attRepo:     attRepo,
		fees:        fees,
		exams:       exams,
		assignments: assignments,
		admissions:  admissions,
		notices:     notices,
	}
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (du *DashboardUsecase) Admin(ctx context.Context) (map[string]interface{}, error) {
	studentCount, err := du.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	teacherCount, err := du.teachers.Count(ctx)
	if err != nil {
		return nil, err
	}
	parentCount, err := du.parents.Count(ctx)
	if err != nil {
		return nil, err
	}
	classCount, err := du.academic.CountClasses(ctx)
	if err != nil {
		return nil, err
	}

	outstanding, err := du.fees.GetByStatuses(ctx, []string{domain.FeePending, domain.FeePartial, domain.FeeOverdue})
	if err != nil {
		return nil, err
	}
	pendingFees := 0.0
	for _, f := range *outstanding {
		pendingFees += f.Amount - f.PaidAmount
	}

	pendingAdmissions, err := du.admissions.CountByStatus(ctx, domain.AdmissionPending)
	if err != nil {
		return nil, err
	}
	markedToday, err := du.attRepo.CountMarkedOn(ctx, today())
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"students":                studentCount,
		"teachers":                teacherCount,
		"parents":                 parentCount,
		"classes":                 classCount,
		"pending_fee_total":       domain.Round2(pendingFees),
		"pending_admissions":      pendingAdmissions,
		"attendance_marked_today": markedToday,
	}, nil
}

func (du *DashboardUsecase) Teacher(ctx context.Context, teacherID int) (map[string]interface{}, error) {
	classes, err := du.teachers.GetClasses(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	type classCard struct {
		Class        domain.Class `json:"class"`
		StudentCount int          `json:"student_count"`
	}
	cards := make([]classCard, 0, len(*classes))
	for _, c := range *classes {
		roster, err := du.students.GetByClass(ctx, c.ClassID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, classCard{Class: c, StudentCount: len(*roster)})
	}

	ungraded, err := du.assignments.CountUngradedByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	timetable, err := du.academic.GetTimetableByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	todayDay := weekdayName(time.Now().Weekday())
	var todaysPeriods []domain.Timetable
	for _, e := range *timetable {
		if e.Day == todayDay {
			todaysPeriods = append(todaysPeriods, e)
		}
	}

	return map[string]interface{}{
		"classes":              cards,
		"ungraded_submissions": ungraded,
		"todays_periods":       todaysPeriods,
	}, nil
}

func (du *DashboardUsecase) Parent(ctx context.Context, parentID int) (map[string]interface{}, error) {
	children, err := du.students.GetByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}

	type childCard struct {
		Student      domain.Student    `json:"student"`
		ClassName    string            `json:"class_name"`
		AttendancePc float64           `json:"attendance_percentage"`
		FeeSummary   domain.FeeSummary `json:"fee_summary"`
	}

	cards := make([]childCard, 0, len(*children))
	totalPending := 0.0
	for _, c := range *children {
		card := childCard{Student: c}
		if c.ClassID != nil {
			if class, err := du.academic.GetClassByID(ctx, *c.ClassID); err == nil {
				card.ClassName = class.Name + "-" + class.Section
			}
		}

		summary, _, err := du.attendance.StudentSummary(ctx, c.StudentID, nil, nil)
		if err != nil {
			return nil, err
		}
		card.AttendancePc = summary.Percentage

		fees, err := du.fees.GetByStudent(ctx, c.StudentID)
		if err != nil {
			return nil, err
		}
		card.FeeSummary = domain.SummarizeFees(*fees)
		totalPending += card.FeeSummary.PendingAmount

		cards = append(cards, card)
	}

	notices, err := du.notices.GetActiveForRole(ctx, domain.RoleParent, 5)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"children":          cards,
		"total_pending_fee": domain.Round2(totalPending),
		"recent_notices":    notices,
	}, nil
}

func (du *DashboardUsecase) Student(ctx context.Context, studentID int) (map[string]interface{}, error) {
	student, err := du.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	summary, _, err := du.attendance.StudentSummary(ctx, studentID, nil, nil)
	if err != nil {
		return nil, err
	}

	pendingAssignments := int64(0)
	upcomingExams := int64(0)
	if student.ClassID != nil {
		pendingAssignments, err = du.assignments.CountDueAfter(ctx, *student.ClassID, today())
		if err != nil {
			return nil, err
		}
		upcomingExams, err = du.exams.CountUpcomingByClass(ctx, *student.ClassID, today())
		if err != nil {
			return nil, err
		}
	}

	fees, err := du.fees.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	feeSummary := domain.SummarizeFees(*fees)

	notices, err := du.notices.GetActiveForRole(ctx, domain.RoleStudent, 5)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"attendance_percentage": summary.Percentage,
		"pending_assignments":   pendingAssignments,
		"upcoming_exams":        upcomingExams,
		"pending_fee_total":     feeSummary.PendingAmount,
		"recent_notices":        notices,
	}, nil
}

func weekdayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return domain.DayMonday
	case time.Tuesday:
		return domain.DayTuesday
	case time.Wednesday:
		return domain.DayWednesday
	case time.Thursday:
		return domain.DayThursday
	case time.Friday:
		return domain.DayFriday
	case time.Saturday:
		return domain.DaySaturday
	default:
		return ""
	}
}
