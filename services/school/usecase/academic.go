package usecase

import (
	"context"
	"errors"

	"schoolmgmt/domain"
)

type AcademicUsecase struct {
	academic domain.AcademicRepo
	teachers domain.TeacherRepo
	students domain.StudentRepo
}

func NewAcademicUsecase(academic domain.AcademicRepo, teachers domain.TeacherRepo, students domain.StudentRepo) *AcademicUsecase {
	return &AcademicUsecase{academic: academic, teachers: teachers, students: students}
}

func (au *AcademicUsecase) CreateClass(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	if err := validate(class); err != nil {
		return nil, err
	}

	if _, err := au.academic.FindClassByIdentity(ctx, class.Name, class.Section, class.AcademicYear); err == nil {
		return nil, domain.Conflictf("class %s-%s already exists for %s", class.Name, class.Section, class.AcademicYear)
	} else {
		var derr *domain.Error
		if !errors.As(err, &derr) || derr.Category != domain.ErrNotFound {
			return nil, err
		}
	}
	if class.ClassTeacherID != nil {
		if _, err := au.teachers.GetByID(ctx, *class.ClassTeacherID); err != nil {
			return nil, err
		}
	}

	if err := au.academic.CreateClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (au *AcademicUsecase) GetAllClasses(ctx context.Context) (*[]domain.Class, error) {
	return au.academic.GetAllClasses(ctx)
}

func (au *AcademicUsecase) GetClass(ctx context.Context, id int) (*domain.Class, error) {
	return au.academic.GetClassByID(ctx, id)
}

func (au *AcademicUsecase) GetClassStudents(ctx context.Context, classID int) (*[]domain.Student, error) {
	if _, err := au.academic.GetClassByID(ctx, classID); err != nil {
		return nil, err
	}
	return au.students.GetByClass(ctx, classID)
}

func (au *AcademicUsecase) UpdateClass(ctx context.Context, id int, upd *domain.ClassUpdate) (*domain.Class, error) {
	current, err := au.academic.GetClassByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, section, year := current.Name, current.Section, current.AcademicYear
	if upd.Name != nil {
		name = *upd.Name
	}
	if upd.Section != nil {
		section = *upd.Section
	}
	if upd.AcademicYear != nil {
		year = *upd.AcademicYear
	}
	if existing, err := au.academic.FindClassByIdentity(ctx, name, section, year); err == nil && existing.ClassID != id {
		return nil, domain.Conflictf("class %s-%s already exists for %s", name, section, year)
	}
	if upd.ClassTeacherID != nil {
		if _, err := au.teachers.GetByID(ctx, *upd.ClassTeacherID); err != nil {
			return nil, err
		}
	}

	if err := au.academic.UpdateClass(ctx, id, upd); err != nil {
		return nil, err
	}
	return au.academic.GetClassByID(ctx, id)
}

func (au *AcademicUsecase) DeleteClass(ctx context.Context, id int) error {
	return au.academic.DeleteClass(ctx, id)
}

func (au *AcademicUsecase) CreateSubject(ctx context.Context, subject *domain.Subject) (*domain.Subject, error) {
	if err := validate(subject); err != nil {
		return nil, err
	}

	existing, err := au.academic.GetAllSubjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range *existing {
		if s.Code == subject.Code {
			return nil, domain.Conflictf("subject code %s is already in use", subject.Code)
		}
	}

	if err := au.academic.CreateSubject(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (au *AcademicUsecase) GetAllSubjects(ctx context.Context) (*[]domain.Subject, error) {
	return au.academic.GetAllSubjects(ctx)
}

func (au *AcademicUsecase) CreateTimetableEntry(ctx context.Context, entry *domain.Timetable) (*domain.Timetable, error) {
	if err := validate(entry); err != nil {
		return nil, err
	}

	if _, err := au.academic.GetClassByID(ctx, entry.ClassID); err != nil {
		return nil, err
	}
	taken, err := au.academic.SlotTaken(ctx, entry.ClassID, entry.Day, entry.Period, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("period %d on %s is already scheduled for this class", entry.Period, entry.Day)
	}

	if err := au.academic.CreateTimetableEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (au *AcademicUsecase) UpdateTimetableEntry(ctx context.Context, id int, entry *domain.Timetable) error {
	if err := validate(entry); err != nil {
		return err
	}

	taken, err := au.academic.SlotTaken(ctx, entry.ClassID, entry.Day, entry.Period, id)
	if err != nil {
		return err
	}
	if taken {
		return domain.Conflictf("period %d on %s is already scheduled for this class", entry.Period, entry.Day)
	}
	return au.academic.UpdateTimetableEntry(ctx, id, entry)
}

func (au *AcademicUsecase) DeleteTimetableEntry(ctx context.Context, id int) error {
	return au.academic.DeleteTimetableEntry(ctx, id)
}

// ClassTimetable groups a class's slots by day, resolving subject and teacher
// names for display.
func (au *AcademicUsecase) ClassTimetable(ctx context.Context, classID int) (map[string][]domain.TimetablePeriod, error) {
	if _, err := au.academic.GetClassByID(ctx, classID); err != nil {
		return nil, err
	}
	entries, err := au.academic.GetTimetableByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	return au.groupByDay(ctx, *entries)
}

// TeacherTimetable is the teacher's own slots grouped by day.
func (au *AcademicUsecase) TeacherTimetable(ctx context.Context, teacherID int) (map[string][]domain.TimetablePeriod, error) {
	entries, err := au.academic.GetTimetableByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return au.groupByDay(ctx, *entries)
}

func (au *AcademicUsecase) groupByDay(ctx context.Context, entries []domain.Timetable) (map[string][]domain.TimetablePeriod, error) {
	subjectIDs := make([]int, 0, len(entries))
	teacherIDs := make([]int, 0, len(entries))
	for _, e := range entries {
		if e.SubjectID != nil {
			subjectIDs = append(subjectIDs, *e.SubjectID)
		}
		if e.TeacherID != nil {
			teacherIDs = append(teacherIDs, *e.TeacherID)
		}
	}

	subjects, err := au.academic.GetSubjectsByIDs(ctx, subjectIDs)
	if err != nil {
		return nil, err
	}
	teachers, err := au.teachers.GetByIDs(ctx, teacherIDs)
	if err != nil {
		return nil, err
	}

	subjectNames := make(map[int]string, len(*subjects))
	for _, s := range *subjects {
		subjectNames[s.SubjectID] = s.Name
	}
	teacherNames := make(map[int]string, len(*teachers))
	for _, t := range *teachers {
		teacherNames[t.TeacherID] = t.Name
	}

	byDay := make(map[string][]domain.TimetablePeriod)
	for _, e := range entries {
		p := domain.TimetablePeriod{
			Period:    e.Period,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Room:      e.Room,
		}
		if e.SubjectID != nil {
			p.SubjectName = subjectNames[*e.SubjectID]
		}
		if e.TeacherID != nil {
			p.TeacherName = teacherNames[*e.TeacherID]
		}
		byDay[e.Day] = append(byDay[e.Day], p)
	}
	return byDay, nil
}
