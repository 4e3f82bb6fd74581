package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(database *gorm.DB) domain.StudentRepo {
	return &studentRepository{db: database}
}

// Create inserts the user and student profile in one transaction; neither
// survives without the other.
func (sr *studentRepository) Create(ctx context.Context, user *domain.User, student *domain.Student) error {
	tx := sr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert user: %w", err)
	}

	student.UserID = user.UserID
	if err := tx.Create(student).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not insert student: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (sr *studentRepository) GetAll(ctx context.Context) (*[]domain.Student, error) {
	var students []domain.Student
	if err := sr.db.WithContext(ctx).Order("student_id").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("could not fetch students: %w", err)
	}
	return &students, nil
}

func (sr *studentRepository) GetByID(ctx context.Context, id int) (*domain.Student, error) {
	var student domain.Student
	err := sr.db.WithContext(ctx).Where("student_id = ?", id).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("student with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch student: %w", err)
	}
	return &student, nil
}

func (sr *studentRepository) GetByUserID(ctx context.Context, userID int) (*domain.Student, error) {
	var student domain.Student
	err := sr.db.WithContext(ctx).Where("user_id = ?", userID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("student profile not found")
		}
		return nil, fmt.Errorf("could not fetch student: %w", err)
	}
	return &student, nil
}

func (sr *studentRepository) GetByAdmissionNo(ctx context.Context, admissionNo string) (*domain.Student, error) {
	var student domain.Student
	err := sr.db.WithContext(ctx).Where("admission_no = ?", admissionNo).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("student with admission number %s not found", admissionNo)
		}
		return nil, fmt.Errorf("could not fetch student: %w", err)
	}
	return &student, nil
}

func (sr *studentRepository) GetByClass(ctx context.Context, classID int) (*[]domain.Student, error) {
	var students []domain.Student
	if err := sr.db.WithContext(ctx).Where("class_id = ?", classID).Order("roll_no").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("could not fetch students for class %d: %w", classID, err)
	}
	return &students, nil
}

func (sr *studentRepository) GetByClasses(ctx context.Context, classIDs []int) (*[]domain.Student, error) {
	var students []domain.Student
	if len(classIDs) == 0 {
		return &students, nil
	}
	if err := sr.db.WithContext(ctx).Where("class_id IN ?", classIDs).Find(&students).Error; err != nil {
		return nil, fmt.Errorf("could not fetch students: %w", err)
	}
	return &students, nil
}

func (sr *studentRepository) GetByParent(ctx context.Context, parentID int) (*[]domain.Student, error) {
	var students []domain.Student
	if err := sr.db.WithContext(ctx).Where("parent_id = ?", parentID).Find(&students).Error; err != nil {
		return nil, fmt.Errorf("could not fetch children of parent %d: %w", parentID, err)
	}
	return &students, nil
}

func (sr *studentRepository) Update(ctx context.Context, id int, upd *domain.StudentUpdate) error {
	values := map[string]interface{}{}
	if upd.Name != nil {
		values["name"] = *upd.Name
	}
	if upd.ClassID != nil {
		values["class_id"] = *upd.ClassID
	}
	if upd.Section != nil {
		values["section"] = *upd.Section
	}
	if upd.RollNo != nil {
		values["roll_no"] = *upd.RollNo
	}
	if upd.DOB != nil {
		values["dob"] = *upd.DOB
	}
	if upd.Gender != nil {
		values["gender"] = *upd.Gender
	}
	if upd.Address != nil {
		values["address"] = *upd.Address
	}
	if upd.Phone != nil {
		values["phone"] = *upd.Phone
	}
	if upd.ParentID != nil {
		values["parent_id"] = *upd.ParentID
	}
	if upd.BloodGroup != nil {
		values["blood_group"] = *upd.BloodGroup
	}
	if upd.ProfileImage != nil {
		values["profile_image"] = *upd.ProfileImage
	}
	if len(values) == 0 {
		return nil
	}

	res := sr.db.WithContext(ctx).Model(&domain.Student{}).Where("student_id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("could not update student: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("student with id %d not found", id)
	}
	return nil
}

// Delete removes the student and its owning user in one transaction.
func (sr *studentRepository) Delete(ctx context.Context, id int) error {
	tx := sr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	var student domain.Student
	if err := tx.Where("student_id = ?", id).First(&student).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundf("student with id %d not found", id)
		}
		return fmt.Errorf("could not fetch student: %w", err)
	}

	if err := tx.Delete(&domain.Student{}, "student_id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete student: %w", err)
	}
	if err := tx.Delete(&domain.User{}, "user_id = ?", student.UserID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (sr *studentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := sr.db.WithContext(ctx).Model(&domain.Student{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("could not count students: %w", err)
	}
	return n, nil
}
