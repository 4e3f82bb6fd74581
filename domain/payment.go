package domain

import "context"

// PaymentOrder is the handle returned by the gateway for a fee payment.
type PaymentOrder struct {
	OrderID     string  `json:"order_id"`
	Token       string  `json:"token"`
	RedirectURL string  `json:"redirect_url"`
	Amount      float64 `json:"amount"`
	FeeID       int     `json:"fee_id"`
}

type CreateOrderRequest struct {
	FeeID  int     `json:"fee_id" valid:"required~Fee is required"`
	Amount float64 `json:"amount" valid:"required~Amount is required"`
}

// VerifyPaymentRequest carries the gateway's signed settlement notification.
type VerifyPaymentRequest struct {
	OrderID     string `json:"order_id" valid:"required~Order ID is required"`
	PaymentID   string `json:"payment_id" valid:"required~Payment ID is required"`
	StatusCode  string `json:"status_code"`
	GrossAmount string `json:"gross_amount"`
	Signature   string `json:"signature" valid:"required~Signature is required"`
	FeeID       int    `json:"fee_id" valid:"required~Fee is required"`
}

// PaymentGateway is the external collaborator boundary: create an order,
// verify a signed callback. Nothing else of the provider leaks into the core.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, orderID string, amount float64, description string) (*PaymentOrder, error)
	VerifySignature(orderID, statusCode, grossAmount, signature string) bool
}

// Mailer is the notification collaborator boundary. Delivery is best-effort;
// callers treat a dispatched send as accepted.
type Mailer interface {
	Send(to, subject, body string) error
}
