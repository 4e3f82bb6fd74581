package usecase

import (
	"context"
	"time"

	"schoolmgmt/domain"
)

type FeeUsecase struct {
	fees     domain.FeeRepo
	students domain.StudentRepo
	parents  domain.ParentRepo
}

func NewFeeUsecase(fees domain.FeeRepo, students domain.StudentRepo, parents domain.ParentRepo) *FeeUsecase {
	return &FeeUsecase{fees: fees, students: students, parents: parents}
}

func (fu *FeeUsecase) Create(ctx context.Context, req *domain.CreateFeeRequest) (*domain.Fee, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, domain.Validationf("amount must be positive")
	}
	if _, err := fu.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	fee := &domain.Fee{
		StudentID:    req.StudentID,
		Amount:       req.Amount,
		FeeType:      req.FeeType,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Status:       domain.FeePending,
		AcademicYear: req.AcademicYear,
	}
	if err := fu.fees.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// CreateForClass raises the same fee against every student of a class.
func (fu *FeeUsecase) CreateForClass(ctx context.Context, classID int, req *domain.CreateFeeRequest) (int, error) {
	if req.Amount <= 0 {
		return 0, domain.Validationf("amount must be positive")
	}

	roster, err := fu.students.GetByClass(ctx, classID)
	if err != nil {
		return 0, err
	}
	if len(*roster) == 0 {
		return 0, nil
	}

	fees := make([]domain.Fee, 0, len(*roster))
	for _, s := range *roster {
		fees = append(fees, domain.Fee{
			StudentID:    s.StudentID,
			Amount:       req.Amount,
			FeeType:      req.FeeType,
			Description:  req.Description,
			DueDate:      req.DueDate,
			Status:       domain.FeePending,
			AcademicYear: req.AcademicYear,
		})
	}
	if err := fu.fees.CreateBulk(ctx, fees); err != nil {
		return 0, err
	}
	return len(fees), nil
}

func (fu *FeeUsecase) GetAll(ctx context.Context, status string) (*[]domain.Fee, error) {
	return fu.fees.GetAll(ctx, status)
}

func (fu *FeeUsecase) GetByStudent(ctx context.Context, studentID int) (*[]domain.Fee, *domain.FeeSummary, error) {
	fees, err := fu.fees.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	summary := domain.SummarizeFees(*fees)
	return fees, &summary, nil
}

// Pay records a manual payment against the fee. An already-paid fee is a
// conflict; the paid/partial transition and receipt come from ApplyPayment.
func (fu *FeeUsecase) Pay(ctx context.Context, req *domain.PayFeeRequest) (*domain.Fee, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, domain.Validationf("amount must be positive")
	}

	fee, err := fu.fees.GetByID(ctx, req.FeeID)
	if err != nil {
		return nil, err
	}
	if fee.Status == domain.FeePaid {
		return nil, domain.Conflictf("fee %d is already paid", fee.FeeID)
	}

	fee.ApplyPayment(req.Amount, req.PaymentMethod, "", time.Now())
	if err := fu.fees.SavePayment(ctx, fee); err != nil {
		return nil, err
	}

	log.WithField("fee_id", fee.FeeID).WithField("status", fee.Status).Info("fee payment recorded")
	return fee, nil
}

// PayAsParent is Pay with an ownership check: the fee must belong to one of
// the parent's children.
func (fu *FeeUsecase) PayAsParent(ctx context.Context, parentID int, req *domain.PayFeeRequest) (*domain.Fee, error) {
	fee, err := fu.fees.GetByID(ctx, req.FeeID)
	if err != nil {
		return nil, err
	}
	owns, err := fu.parentOwnsFee(ctx, parentID, fee)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, domain.Unauthorizedf("fee %d does not belong to your children", fee.FeeID)
	}
	return fu.Pay(ctx, req)
}

func (fu *FeeUsecase) parentOwnsFee(ctx context.Context, parentID int, fee *domain.Fee) (bool, error) {
	children, err := fu.students.GetByParent(ctx, parentID)
	if err != nil {
		return false, err
	}
	for _, c := range *children {
		if c.StudentID == fee.StudentID {
			return true, nil
		}
	}
	return false, nil
}

// FamilySummary aggregates fees across all of the parent's children.
func (fu *FeeUsecase) FamilySummary(ctx context.Context, parentID int) (*[]domain.Fee, *domain.FeeSummary, error) {
	children, err := fu.students.GetByParent(ctx, parentID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]int, 0, len(*children))
	for _, c := range *children {
		ids = append(ids, c.StudentID)
	}
	fees, err := fu.fees.GetByStudents(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	summary := domain.SummarizeFees(*fees)
	return fees, &summary, nil
}
