package usecase

import (
	"context"
	"time"

	"schoolmgmt/domain"
)

type ExamUsecase struct {
	exams    domain.ExamRepo
	students domain.StudentRepo
	academic domain.AcademicRepo
	teachers domain.TeacherRepo
}

func NewExamUsecase(exams domain.ExamRepo, students domain.StudentRepo, academic domain.AcademicRepo, teachers domain.TeacherRepo) *ExamUsecase {
	return &ExamUsecase{exams: exams, students: students, academic: academic, teachers: teachers}
}

func (eu *ExamUsecase) CreateExam(ctx context.Context, exam *domain.Exam) (*domain.Exam, error) {
	if err := validate(exam); err != nil {
		return nil, err
	}
	if err := eu.exams.CreateExam(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (eu *ExamUsecase) GetAllExams(ctx context.Context) (*[]domain.Exam, error) {
	return eu.exams.GetAllExams(ctx)
}

func (eu *ExamUsecase) UpdateExam(ctx context.Context, exam *domain.Exam) error {
	if err := validate(exam); err != nil {
		return err
	}
	return eu.exams.UpdateExam(ctx, exam)
}

func (eu *ExamUsecase) DeleteExam(ctx context.Context, id int) error {
	return eu.exams.DeleteExam(ctx, id)
}

func (eu *ExamUsecase) CreateSchedule(ctx context.Context, s *domain.ExamSchedule) (*domain.ExamSchedule, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	if s.MaxMarks <= 0 {
		return nil, domain.Validationf("max marks must be positive")
	}
	if _, err := eu.exams.GetExamByID(ctx, s.ExamID); err != nil {
		return nil, err
	}
	if _, err := eu.academic.GetClassByID(ctx, s.ClassID); err != nil {
		return nil, err
	}
	if _, err := eu.academic.GetSubjectByID(ctx, s.SubjectID); err != nil {
		return nil, err
	}
	if err := eu.exams.CreateSchedule(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (eu *ExamUsecase) DeleteSchedule(ctx context.Context, id int) error {
	return eu.exams.DeleteSchedule(ctx, id)
}

func (eu *ExamUsecase) GetSchedulesByExam(ctx context.Context, examID int) (*[]domain.ExamSchedule, error) {
	if _, err := eu.exams.GetExamByID(ctx, examID); err != nil {
		return nil, err
	}
	return eu.exams.GetSchedulesByExam(ctx, examID)
}

// TeacherSchedules lists exam sittings for every class the teacher teaches.
func (eu *ExamUsecase) TeacherSchedules(ctx context.Context, teacherID int) (*[]domain.ExamSchedule, error) {
	classes, err := eu.teachers.GetClasses(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	var out []domain.ExamSchedule
	for _, c := range *classes {
		schedules, err := eu.exams.GetSchedulesByClass(ctx, c.ClassID)
		if err != nil {
			return nil, err
		}
		out = append(out, *schedules...)
	}
	return &out, nil
}

func (eu *ExamUsecase) SchedulesForClass(ctx context.Context, classID int) (*[]domain.ExamSchedule, error) {
	return eu.exams.GetSchedulesByClass(ctx, classID)
}

func (eu *ExamUsecase) GetResultsByExam(ctx context.Context, examID int) (*[]domain.ExamResult, error) {
	if _, err := eu.exams.GetExamByID(ctx, examID); err != nil {
		return nil, err
	}
	return eu.exams.GetResultsByExam(ctx, examID)
}

// EnterMarks validates the whole batch before anything is written: an exam
// sitting must be scheduled for the class and subject, every student must be
// in the class, and every mark must sit in [0, max marks]. A single bad entry
// rejects the batch. Valid batches are upserted in one transaction.
func (eu *ExamUsecase) EnterMarks(ctx context.Context, req *domain.EnterMarksRequest, enteredBy *int) error {
	if err := validate(req); err != nil {
		return err
	}
	if len(req.Results) == 0 {
		return domain.Validationf("no results provided")
	}

	schedule, err := eu.exams.GetSchedule(ctx, req.ExamID, req.SubjectID, req.ClassID)
	if err != nil {
		return err
	}

	roster, err := eu.students.GetByClass(ctx, req.ClassID)
	if err != nil {
		return err
	}
	inClass := make(map[int]bool, len(*roster))
	for _, s := range *roster {
		inClass[s.StudentID] = true
	}

	for _, e := range req.Results {
		if !inClass[e.StudentID] {
			return domain.Validationf("student %d is not in class %d", e.StudentID, req.ClassID)
		}
		if e.MarksObtained < 0 {
			return domain.Validationf("marks for student %d cannot be negative", e.StudentID)
		}
		if e.MarksObtained > float64(schedule.MaxMarks) {
			return domain.Validationf("marks for student %d exceed the maximum of %d", e.StudentID, schedule.MaxMarks)
		}
	}

	if err := eu.exams.UpsertResults(ctx, req.ExamID, req.SubjectID, enteredBy, req.Results); err != nil {
		return err
	}

	log.WithField("exam_id", req.ExamID).WithField("subject_id", req.SubjectID).
		WithField("count", len(req.Results)).Info("exam marks recorded")
	return nil
}

// StudentReport groups a student's results by exam with percentages.
func (eu *ExamUsecase) StudentReport(ctx context.Context, studentID int) ([]domain.ExamReport, error) {
	student, err := eu.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	results, err := eu.exams.GetResultsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(*results) == 0 {
		return []domain.ExamReport{}, nil
	}

	examIDs := make([]int, 0)
	subjectIDs := make([]int, 0)
	seenExams := make(map[int]bool)
	seenSubjects := make(map[int]bool)
	for _, r := range *results {
		if !seenExams[r.ExamID] {
			seenExams[r.ExamID] = true
			examIDs = append(examIDs, r.ExamID)
		}
		if !seenSubjects[r.SubjectID] {
			seenSubjects[r.SubjectID] = true
			subjectIDs = append(subjectIDs, r.SubjectID)
		}
	}

	exams, err := eu.exams.GetExamsByIDs(ctx, examIDs)
	if err != nil {
		return nil, err
	}
	subjects, err := eu.academic.GetSubjectsByIDs(ctx, subjectIDs)
	if err != nil {
		return nil, err
	}

	classID := 0
	var schedules []domain.ExamSchedule
	if student.ClassID != nil {
		classID = *student.ClassID
		bySched, err := eu.exams.GetSchedulesByClass(ctx, classID)
		if err != nil {
			return nil, err
		}
		schedules = *bySched
	}

	examsByID := make(map[int]domain.Exam, len(*exams))
	for _, e := range *exams {
		examsByID[e.ExamID] = e
	}
	subjectsByID := make(map[int]domain.Subject, len(*subjects))
	for _, s := range *subjects {
		subjectsByID[s.SubjectID] = s
	}

	return domain.AggregateExamResults(*results, schedules, examsByID, subjectsByID, classID), nil
}

func (eu *ExamUsecase) CountUpcomingForClass(ctx context.Context, classID int) (int64, error) {
	return eu.exams.CountUpcomingByClass(ctx, classID, time.Now())
}
