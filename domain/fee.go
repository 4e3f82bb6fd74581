package domain

import (
	"context"
	"fmt"
	"time"
)

const (
	FeeTypeTuition    = "tuition"
	FeeTypeAdmission  = "admission"
	FeeTypeExam       = "exam"
	FeeTypeTransport  = "transport"
	FeeTypeLibrary    = "library"
	FeeTypeLaboratory = "laboratory"
	FeeTypeSports     = "sports"
	FeeTypeOther      = "other"
)

const (
	FeePending = "pending"
	FeePaid    = "paid"
	FeePartial = "partial"
	FeeOverdue = "overdue"
	FeeWaived  = "waived"
)

type Fee struct {
	FeeID         int        `gorm:"primaryKey;autoIncrement" json:"fee_id"`
	StudentID     int        `gorm:"not null;index" json:"student_id" valid:"required~Student is required"`
	Amount        float64    `gorm:"type:numeric(10,2);not null" json:"amount" valid:"required~Amount is required"`
	FeeType       string     `gorm:"type:fee_type_enum;not null" json:"fee_type" valid:"required~Fee type is required,in(tuition|admission|exam|transport|library|laboratory|sports|other)~Invalid fee type"`
	Description   string     `gorm:"type:varchar(255)" json:"description"`
	DueDate       time.Time  `gorm:"type:date;not null" json:"due_date"`
	PaidDate      *time.Time `gorm:"type:date" json:"paid_date"`
	PaidAmount    float64    `gorm:"type:numeric(10,2);default:0" json:"paid_amount"`
	Status        string     `gorm:"type:fee_status_enum;not null;default:'pending'" json:"status"`
	PaymentMethod string     `gorm:"type:varchar(50)" json:"payment_method"`
	TransactionID string     `gorm:"type:varchar(100)" json:"transaction_id"`
	ReceiptNumber string     `gorm:"type:varchar(50)" json:"receipt_number"`
	AcademicYear  string     `gorm:"type:varchar(20)" json:"academic_year"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type FeeSummary struct {
	TotalAmount   float64 `json:"total_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingAmount float64 `json:"pending_amount"`
	OverdueAmount float64 `json:"overdue_amount"`
}

// ApplyPayment records a payment against the fee. Status becomes paid when
// the cumulative paid amount covers the full fee amount, partial otherwise.
// The receipt number derives deterministically from the fee id and payment
// date.
func (f *Fee) ApplyPayment(amount float64, method, transactionID string, paidAt time.Time) {
	f.PaidAmount = amount
	f.PaidDate = &paidAt
	f.PaymentMethod = method
	if transactionID != "" {
		f.TransactionID = transactionID
	}
	if amount >= f.Amount {
		f.Status = FeePaid
	} else {
		f.Status = FeePartial
	}
	f.ReceiptNumber = ReceiptNumber(f.FeeID, paidAt)
}

func ReceiptNumber(feeID int, paidAt time.Time) string {
	return fmt.Sprintf("RCP-%d-%s", feeID, paidAt.Format("20060102"))
}

// SummarizeFees applies one bucket rule everywhere: paid sums paid_amount
// across all rows, pending sums the outstanding remainder of pending,
// partial and overdue rows. Waived rows count toward the total only.
func SummarizeFees(fees []Fee) FeeSummary {
	var s FeeSummary
	for _, f := range fees {
		s.TotalAmount += f.Amount
		s.PaidAmount += f.PaidAmount
		switch f.Status {
		case FeePending, FeePartial:
			s.PendingAmount += f.Amount - f.PaidAmount
		case FeeOverdue:
			s.PendingAmount += f.Amount - f.PaidAmount
			s.OverdueAmount += f.Amount - f.PaidAmount
		}
	}
	s.TotalAmount = Round2(s.TotalAmount)
	s.PaidAmount = Round2(s.PaidAmount)
	s.PendingAmount = Round2(s.PendingAmount)
	s.OverdueAmount = Round2(s.OverdueAmount)
	return s
}

type CreateFeeRequest struct {
	StudentID    int       `json:"student_id" valid:"required~Student is required"`
	Amount       float64   `json:"amount" valid:"required~Amount is required"`
	FeeType      string    `json:"fee_type" valid:"required~Fee type is required"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"due_date"`
	AcademicYear string    `json:"academic_year"`
}

type PayFeeRequest struct {
	FeeID         int     `json:"fee_id" valid:"required~Fee is required"`
	Amount        float64 `json:"amount" valid:"required~Amount is required"`
	PaymentMethod string  `json:"payment_method" valid:"required~Payment method is required"`
}

type FeeRepo interface {
	Create(ctx context.Context, fee *Fee) error
	CreateBulk(ctx context.Context, fees []Fee) error
	GetByID(ctx context.Context, id int) (*Fee, error)
	GetAll(ctx context.Context, status string) (*[]Fee, error)
	GetByStudent(ctx context.Context, studentID int) (*[]Fee, error)
	GetByStudents(ctx context.Context, studentIDs []int) (*[]Fee, error)
	GetByStatuses(ctx context.Context, statuses []string) (*[]Fee, error)
	SavePayment(ctx context.Context, fee *Fee) error
}
