package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type admissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepository(database *gorm.DB) domain.AdmissionRepo {
	return &admissionRepository{db: database}
}

func (ar *admissionRepository) Create(ctx context.Context, a *domain.Admission) error {
	if err := ar.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("could not insert admission: %w", err)
	}
	return nil
}

func (ar *admissionRepository) GetAll(ctx context.Context, status string) (*[]domain.Admission, error) {
	var admissions []domain.Admission
	q := ar.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Find(&admissions).Error; err != nil {
		return nil, fmt.Errorf("could not fetch admissions: %w", err)
	}
	return &admissions, nil
}

func (ar *admissionRepository) GetByID(ctx context.Context, id int) (*domain.Admission, error) {
	var a domain.Admission
	err := ar.db.WithContext(ctx).Where("admission_id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("admission with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch admission: %w", err)
	}
	return &a, nil
}

func (ar *admissionRepository) UpdateStatus(ctx context.Context, id int, upd *domain.AdmissionStatusUpdate) error {
	values := map[string]interface{}{"status": upd.Status}
	if upd.Remarks != "" {
		values["remarks"] = upd.Remarks
	}

	res := ar.db.WithContext(ctx).Model(&domain.Admission{}).Where("admission_id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("could not update admission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("admission with id %d not found", id)
	}
	return nil
}

func (ar *admissionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	q := ar.db.WithContext(ctx).Model(&domain.Admission{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("could not count admissions: %w", err)
	}
	return n, nil
}
