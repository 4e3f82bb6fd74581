package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolmgmt/domain"

	"gorm.io/gorm"
)

type feeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(database *gorm.DB) domain.FeeRepo {
	return &feeRepository{db: database}
}

func (fr *feeRepository) Create(ctx context.Context, fee *domain.Fee) error {
	if err := fr.db.WithContext(ctx).Create(fee).Error; err != nil {
		return fmt.Errorf("could not insert fee: %w", err)
	}
	return nil
}

func (fr *feeRepository) CreateBulk(ctx context.Context, fees []domain.Fee) error {
	if len(fees) == 0 {
		return nil
	}
	if err := fr.db.WithContext(ctx).Create(&fees).Error; err != nil {
		return fmt.Errorf("could not insert fees: %w", err)
	}
	return nil
}

func (fr *feeRepository) GetByID(ctx context.Context, id int) (*domain.Fee, error) {
	var fee domain.Fee
	err := fr.db.WithContext(ctx).Where("fee_id = ?", id).First(&fee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("fee with id %d not found", id)
		}
		return nil, fmt.Errorf("could not fetch fee: %w", err)
	}
	return &fee, nil
}

func (fr *feeRepository) GetAll(ctx context.Context, status string) (*[]domain.Fee, error) {
	var fees []domain.Fee
	q := fr.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("fee_id").Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("could not fetch fees: %w", err)
	}
	return &fees, nil
}

func (fr *feeRepository) GetByStudent(ctx context.Context, studentID int) (*[]domain.Fee, error) {
	var fees []domain.Fee
	if err := fr.db.WithContext(ctx).Where("student_id = ?", studentID).Order("due_date").Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("could not fetch fees: %w", err)
	}
	return &fees, nil
}

func (fr *feeRepository) GetByStudents(ctx context.Context, studentIDs []int) (*[]domain.Fee, error) {
	var fees []domain.Fee
	if len(studentIDs) == 0 {
		return &fees, nil
	}
	if err := fr.db.WithContext(ctx).Where("student_id IN ?", studentIDs).Order("due_date").Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("could not fetch fees: %w", err)
	}
	return &fees, nil
}

func (fr *feeRepository) GetByStatuses(ctx context.Context, statuses []string) (*[]domain.Fee, error) {
	var fees []domain.Fee
	if len(statuses) == 0 {
		return &fees, nil
	}
	if err := fr.db.WithContext(ctx).Where("status IN ?", statuses).Order("due_date").Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("could not fetch fees: %w", err)
	}
	return &fees, nil
}

func (fr *feeRepository) SavePayment(ctx context.Context, fee *domain.Fee) error {
	res := fr.db.WithContext(ctx).Model(&domain.Fee{}).
		Where("fee_id = ?", fee.FeeID).
		Updates(map[string]interface{}{
			"paid_amount":    fee.PaidAmount,
			"status":         fee.Status,
			"paid_date":      fee.PaidDate,
			"payment_method": fee.PaymentMethod,
			"transaction_id": fee.TransactionID,
			"receipt_number": fee.ReceiptNumber,
		})
	if res.Error != nil {
		return fmt.Errorf("could not record payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("fee with id %d not found", fee.FeeID)
	}
	return nil
}
