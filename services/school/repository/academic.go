package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type academicRepository struct {
	db *gorm.DB
}

func NewAcademicRepository(database *gorm.DB) domain.AcademicRepo {
	return &academicRepository{db: database}
}

func (ar *academicRepository) CreateClass(ctx context.Context, class *domain.Class) error {
	if err := ar.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("could not insert class: %w", err)
	}
	return nil
}

func (ar *academicRepository) GetAllClasses(ctx context.Context) (*[]domain.Class, error) {
	var classes []domain.Class
	if err := ar.db.WithContext(ctx).Order("class_id").Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("could not fetch classes: %w", err)
	}
	return &classes, nil
}

func (ar *academicRepository) GetClassByID(ctx context.Context, id int) (*domain.Class, error) {
	var class domain.Class
	err := ar.db.WithContext(ctx).Where("class_id = ?", id).First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("class with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch class: %w", err)
	}
	return &class, nil
}

func (ar *academicRepository) GetClassesByIDs(ctx context.Context, ids []int) (*[]domain.Class, error) {
	var classes []domain.Class
	if len(ids) == 0 {
		return &classes, nil
	}
	if err := ar.db.WithContext(ctx).Where("class_id IN ?", ids).Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("could not fetch classes: %w", err)
	}
	return &classes, nil
}

func (ar *academicRepository) FindClassByIdentity(ctx context.Context, name string, section string, academicYear string) (*domain.Class, error) {
	var class domain.Class
	err := ar.db.WithContext(ctx).
		Where("name = ? AND section = ? AND academic_year = ?", name, section, academicYear).
		First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("class %s-%s (%s) not found", name, section, academicYear)
		}
		return nil, fmt.Errorf("could not fetch class: %w", err)
	}
	return &class, nil
}

func (ar *academicRepository) UpdateClass(ctx context.Context, id int, upd *domain.ClassUpdate) error {
	values := map[string]interface{}{}
	if upd.Name != nil {
		values["name"] = *upd.Name
	}
	if upd.Section != nil {
		values["section"] = *upd.Section
	}
	if upd.AcademicYear != nil {
		values["academic_year"] = *upd.AcademicYear
	}
	if upd.RoomNumber != nil {
		values["room_number"] = *upd.RoomNumber
	}
	if upd.ClassTeacherID != nil {
		values["class_teacher_id"] = *upd.ClassTeacherID
	}
	if len(values) == 0 {
		return nil
	}

	res := ar.db.WithContext(ctx).Model(&domain.Class{}).Where("class_id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("could not update class: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("class with id %d not found", id)
	}
	return nil
}

func (ar *academicRepository) DeleteClass(ctx context.Context, id int) error {
	tx := ar.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if err := tx.Model(&domain.Student{}).Where("class_id = ?", id).Update("class_id", nil).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not detach students: %w", err)
	}
	if err := tx.Delete(&domain.Timetable{}, "class_id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete timetable entries: %w", err)
	}

	res := tx.Delete(&domain.Class{}, "class_id = ?", id)
	if res.Error != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete class: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return domain.NotFoundf("class with id %d not found", id)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (ar *academicRepository) CountClasses(ctx context.Context) (int64, error) {
	var n int64
	if err := ar.db.WithContext(ctx).Model(&domain.Class{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("could not count classes: %w", err)
	}
	return n, nil
}

func (ar *academicRepository) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	if err := ar.db.WithContext(ctx).Create(subject).Error; err != nil {
		return fmt.Errorf("could not insert subject: %w", err)
	}
	return nil
}

func (ar *academicRepository) GetAllSubjects(ctx context.Context) (*[]domain.Subject, error) {
	var subjects []domain.Subject
	if err := ar.db.WithContext(ctx).Order("subject_id").Find(&subjects).Error; err != nil {
		return nil, fmt.Errorf("could not fetch subjects: %w", err)
	}
	return &subjects, nil
}

func (ar *academicRepository) GetSubjectByID(ctx context.Context, id int) (*domain.Subject, error) {
	var subject domain.Subject
	err := ar.db.WithContext(ctx).Where("subject_id = ?", id).First(&subject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("subject with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch subject: %w", err)
	}
	return &subject, nil
}

func (ar *academicRepository) GetSubjectsByIDs(ctx context.Context, ids []int) (*[]domain.Subject, error) {
	var subjects []domain.Subject
	if len(ids) == 0 {
		return &subjects, nil
	}
	if err := ar.db.WithContext(ctx).Where("subject_id IN ?", ids).Find(&subjects).Error; err != nil {
		return nil, fmt.Errorf("could not fetch subjects: %w", err)
	}
	return &subjects, nil
}

func (ar *academicRepository) GetSubjectsByClasses(ctx context.Context, classIDs []int) (*[]domain.Subject, error) {
	var subjects []domain.Subject
	if len(classIDs) == 0 {
		return &subjects, nil
	}
	err := ar.db.WithContext(ctx).
		Joins("JOIN timetables t ON t.subject_id = subjects.subject_id").
		Where("t.class_id IN ?", classIDs).
		Distinct("subjects.*").
		Find(&subjects).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch subjects for classes: %w", err)
	}
	return &subjects, nil
}

func (ar *academicRepository) CreateTimetableEntry(ctx context.Context, entry *domain.Timetable) error {
	if err := ar.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("could not insert timetable entry: %w", err)
	}
	return nil
}

func (ar *academicRepository) UpdateTimetableEntry(ctx context.Context, id int, entry *domain.Timetable) error {
	res := ar.db.WithContext(ctx).Model(&domain.Timetable{}).
		Where("timetable_id = ?", id).
		Updates(map[string]interface{}{
			"class_id":   entry.ClassID,
			"subject_id": entry.SubjectID,
			"teacher_id": entry.TeacherID,
			"day":        entry.Day,
			"period":     entry.Period,
			"start_time": entry.StartTime,
			"end_time":   entry.EndTime,
			"room":       entry.Room,
		})
	if res.Error != nil {
		return fmt.Errorf("could not update timetable entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("timetable entry with id %d not found", id)
	}
	return nil
}

func (ar *academicRepository) DeleteTimetableEntry(ctx context.Context, id int) error {
	res := ar.db.WithContext(ctx).Delete(&domain.Timetable{}, "timetable_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("could not delete timetable entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("timetable entry with id %d not found", id)
	}
	return nil
}

func (ar *academicRepository) GetTimetableByClass(ctx context.Context, classID int) (*[]domain.Timetable, error) {
	var entries []domain.Timetable
	err := ar.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("day, period").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch timetable: %w", err)
	}
	return &entries, nil
}

func (ar *academicRepository) GetTimetableByTeacher(ctx context.Context, teacherID int) (*[]domain.Timetable, error) {
	var entries []domain.Timetable
	err := ar.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("day, period").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch timetable: %w", err)
	}
	return &entries, nil
}

func (ar *academicRepository) SlotTaken(ctx context.Context, classID int, day string, period int, excludeID int) (bool, error) {
	var n int64
	q := ar.db.WithContext(ctx).Model(&domain.Timetable{}).
		Where("class_id = ? AND day = ? AND period = ?", classID, day, period)
	if excludeID > 0 {
		q = q.Where("timetable_id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("could not check timetable slot: %w", err)
	}
	return n > 0, nil
}
