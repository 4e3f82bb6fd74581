package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"schoolmgmt/domain"

	"github.com/google/uuid"
)

// PaymentUsecase drives online fee payment through the gateway collaborator.
// A nil gateway means the integration is not configured; every operation
// then fails upstream-unavailable.
type PaymentUsecase struct {
	gateway  domain.PaymentGateway
	fees     domain.FeeRepo
	students domain.StudentRepo
}

func NewPaymentUsecase(gateway domain.PaymentGateway, fees domain.FeeRepo, students domain.StudentRepo) *PaymentUsecase {
	return &PaymentUsecase{gateway: gateway, fees: fees, students: students}
}

// CreateOrder opens a gateway order for the outstanding fee. Order ids are
// FEE-<feeID>-<uuid> so the callback can be tied back to the fee.
func (pu *PaymentUsecase) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest, parentID int) (*domain.PaymentOrder, error) {
	if pu.gateway == nil {
		return nil, domain.Upstreamf("payment gateway is not configured")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	fee, err := pu.fees.GetByID(ctx, req.FeeID)
	if err != nil {
		return nil, err
	}
	if fee.Status == domain.FeePaid {
		return nil, domain.Conflictf("fee %d is already paid", fee.FeeID)
	}

	if parentID > 0 {
		owns, err := pu.parentOwns(ctx, parentID, fee.StudentID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, domain.Unauthorizedf("fee %d does not belong to your children", fee.FeeID)
		}
	}

	orderID := fmt.Sprintf("FEE-%d-%s", fee.FeeID, uuid.NewString())
	order, err := pu.gateway.CreateOrder(ctx, orderID, req.Amount, fmt.Sprintf("%s fee", fee.FeeType))
	if err != nil {
		return nil, domain.Upstreamf("payment gateway error: %s", err.Error())
	}
	order.FeeID = fee.FeeID

	log.WithField("order_id", orderID).WithField("fee_id", fee.FeeID).Info("payment order created")
	return order, nil
}

// Verify checks the gateway's signed settlement notification and, when the
// signature holds, applies the gross amount to the fee.
func (pu *PaymentUsecase) Verify(ctx context.Context, req *domain.VerifyPaymentRequest) (*domain.Fee, error) {
	if pu.gateway == nil {
		return nil, domain.Upstreamf("payment gateway is not configured")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	if !pu.gateway.VerifySignature(req.OrderID, req.StatusCode, req.GrossAmount, req.Signature) {
		return nil, domain.Validationf("payment signature mismatch")
	}

	fee, err := pu.fees.GetByID(ctx, req.FeeID)
	if err != nil {
		return nil, err
	}
	if fee.Status == domain.FeePaid {
		return nil, domain.Conflictf("fee %d is already paid", fee.FeeID)
	}

	amount, err := strconv.ParseFloat(req.GrossAmount, 64)
	if err != nil {
		return nil, domain.Validationf("invalid gross amount %q", req.GrossAmount)
	}

	fee.ApplyPayment(amount, "online", req.PaymentID, time.Now())
	if err := pu.fees.SavePayment(ctx, fee); err != nil {
		return nil, err
	}

	log.WithField("fee_id", fee.FeeID).WithField("order_id", req.OrderID).Info("online payment verified")
	return fee, nil
}

// Status reports the fee's payment state.
func (pu *PaymentUsecase) Status(ctx context.Context, feeID int) (*domain.Fee, error) {
	return pu.fees.GetByID(ctx, feeID)
}

func (pu *PaymentUsecase) parentOwns(ctx context.Context, parentID, studentID int) (bool, error) {
	children, err := pu.students.GetByParent(ctx, parentID)
	if err != nil {
		return false, err
	}
	for _, c := range *children {
		if c.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}
