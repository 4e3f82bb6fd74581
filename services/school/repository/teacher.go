package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(database *gorm.DB) domain.TeacherRepo {
	return &teacherRepository{db: database}
}

func (tr *teacherRepository) Create(ctx context.Context, user *domain.User, teacher *domain.Teacher) error {
	tx := tr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert user: %w", err)
	}

	teacher.UserID = user.UserID
	if err := tx.Omit("Subjects", "Classes").Create(teacher).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert teacher: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (tr *teacherRepository) GetAll(ctx context.Context) (*[]domain.Teacher, error) {
	var teachers []domain.Teacher
	if err := tr.db.WithContext(ctx).Preload("Subjects").Preload("Classes").Order("teacher_id").Find(&teachers).Error; err != nil {
		return nil, fmt.Errorf("could not fetch teachers: %w", err)
	}
	return &teachers, nil
}

func (tr *teacherRepository) GetByID(ctx context.Context, id int) (*domain.Teacher, error) {
	var teacher domain.Teacher
	err := tr.db.WithContext(ctx).Preload("Subjects").Preload("Classes").Where("teacher_id = ?", id).First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("teacher with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch teacher: %w", err)
	}
	return &teacher, nil
}

func (tr *teacherRepository) GetByUserID(ctx context.Context, userID int) (*domain.Teacher, error) {
	var teacher domain.Teacher
	err := tr.db.WithContext(ctx).Preload("Classes").Where("user_id = ?", userID).First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("teacher profile not found")
		}
		return nil, fmt.Errorf("could not fetch teacher: %w", err)
	}
	return &teacher, nil
}

func (tr *teacherRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Teacher, error) {
	var teacher domain.Teacher
	err := tr.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("teacher with employee id %s not found", employeeID)
		}
		return nil, fmt.Errorf("could not fetch teacher: %w", err)
	}
	return &teacher, nil
}

func (tr *teacherRepository) GetByIDs(ctx context.Context, ids []int) (*[]domain.Teacher, error) {
	var teachers []domain.Teacher
	if len(ids) == 0 {
		return &teachers, nil
	}
	if err := tr.db.WithContext(ctx).Where("teacher_id IN ?", ids).Find(&teachers).Error; err != nil {
		return nil, fmt.Errorf("could not fetch teachers: %w", err)
	}
	return &teachers, nil
}

func (tr *teacherRepository) Update(ctx context.Context, id int, upd *domain.TeacherUpdate) error {
	values := map[string]interface{}{}
	if upd.Name != nil {
		values["name"] = *upd.Name
	}
	if upd.Phone != nil {
		values["phone"] = *upd.Phone
	}
	if upd.Qualification != nil {
		values["qualification"] = *upd.Qualification
	}
	if upd.ExperienceYears != nil {
		values["experience_years"] = *upd.ExperienceYears
	}
	if upd.JoinDate != nil {
		values["join_date"] = *upd.JoinDate
	}
	if upd.Address != nil {
		values["address"] = *upd.Address
	}
	if upd.ProfileImage != nil {
		values["profile_image"] = *upd.ProfileImage
	}
	if len(values) == 0 {
		return nil
	}

	res := tr.db.WithContext(ctx).Model(&domain.Teacher{}).Where("teacher_id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("could not update teacher: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("teacher with id %d not found", id)
	}
	return nil
}

func (tr *teacherRepository) Delete(ctx context.Context, id int) error {
	tx := tr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	var teacher domain.Teacher
	if err := tx.Where("teacher_id = ?", id).First(&teacher).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundf("teacher with id %d not found", id)
		}
		return fmt.Errorf("could not fetch teacher: %w", err)
	}

	if err := tx.Model(&teacher).Association("Subjects").Clear(); err != nil {
		tx.Rollback()
		return fmt.Errorf("could not clear subject assignments: %w", err)
	}
	if err := tx.Model(&teacher).Association("Classes").Clear(); err != nil {
		tx.Rollback()
		return fmt.Errorf("could not clear class assignments: %w", err)
	}

	if err := tx.Delete(&domain.Teacher{}, "teacher_id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete teacher: %w", err)
	}
	if err := tx.Delete(&domain.User{}, "user_id = ?", teacher.UserID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (tr *teacherRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := tr.db.WithContext(ctx).Model(&domain.Teacher{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("could not count teachers: %w", err)
	}
	return n, nil
}

func (tr *teacherRepository) AssignClasses(ctx context.Context, teacherID int, classIDs []int) error {
	teacher, err := tr.GetByID(ctx, teacherID)
	if err != nil {
		return err
	}
	var classes []domain.Class
	if len(classIDs) > 0 {
		if err := tr.db.WithContext(ctx).Where("class_id IN ?", classIDs).Find(&classes).Error; err != nil {
			return fmt.Errorf("could not fetch classes: %w", err)
		}
	}
	if err := tr.db.WithContext(ctx).Model(teacher).Association("Classes").Replace(classes); err != nil {
		return fmt.Errorf("could not assign classes: %w", err)
	}
	return nil
}

func (tr *teacherRepository) AssignSubjects(ctx context.Context, teacherID int, subjectIDs []int) error {
	teacher, err := tr.GetByID(ctx, teacherID)
	if err != nil {
		return err
	}
	var subjects []domain.Subject
	if len(subjectIDs) > 0 {
		if err := tr.db.WithContext(ctx).Where("subject_id IN ?", subjectIDs).Find(&subjects).Error; err != nil {
			return fmt.Errorf("could not fetch subjects: %w", err)
		}
	}
	if err := tr.db.WithContext(ctx).Model(teacher).Association("Subjects").Replace(subjects); err != nil {
		return fmt.Errorf("could not assign subjects: %w", err)
	}
	return nil
}

func (tr *teacherRepository) GetClasses(ctx context.Context, teacherID int) (*[]domain.Class, error) {
	teacher, err := tr.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return &teacher.Classes, nil
}

func (tr *teacherRepository) GetSubjects(ctx context.Context, teacherID int) (*[]domain.Subject, error) {
	teacher, err := tr.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return &teacher.Subjects, nil
}

func (tr *teacherRepository) GetBySubjects(ctx context.Context, subjectIDs []int) (*[]domain.Teacher, error) {
	var teachers []domain.Teacher
	if len(subjectIDs) == 0 {
		return &teachers, nil
	}
	err := tr.db.WithContext(ctx).
		Preload("Subjects").
		Joins("JOIN teacher_subjects ts ON ts.teacher_teacher_id = teachers.teacher_id").
		Where("ts.subject_subject_id IN ?", subjectIDs).
		Distinct("teachers.*").
		Find(&teachers).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch teachers for subjects: %w", err)
	}
	return &teachers, nil
}
