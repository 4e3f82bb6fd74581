package delivery

import (
	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler exposes online fee payment: order creation by parents or
// admins, the gateway's settlement callback, and per-fee status.
type PaymentHandler struct {
	payments *usecase.PaymentUsecase
	parents  domain.ParentRepo
}

func NewPaymentHandler(app *fiber.App, authMW *middleware.Auth, payments *usecase.PaymentUsecase, parents domain.ParentRepo) {
	h := &PaymentHandler{payments: payments, parents: parents}

	pay := app.Group("/payments")

	pay.Post("/orders", authMW.AuthRequired, middleware.RequireRole(domain.RoleParent, domain.RoleAdmin), h.CreateOrder)
	pay.Post("/verify", h.Verify)
	pay.Get("/fees/:id/status", authMW.AuthRequired, h.Status)
}

func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	var req domain.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	// Parents may only pay for their own children; admins pay for anyone.
	parentID := 0
	if role, _ := c.Locals("role").(string); role == domain.RoleParent {
		p, err := h.parents.GetByUserID(c.Context(), middleware.UserID(c))
		if err != nil {
			return fail(c, err)
		}
		parentID = p.ParentID
	}

	order, err := h.payments.CreateOrder(c.Context(), &req, parentID)
	if err != nil {
		return fail(c, err)
	}
	return created(c, order)
}

// Verify is the gateway callback; it authenticates by signature, not token.
func (h *PaymentHandler) Verify(c *fiber.Ctx) error {
	var req domain.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	fee, err := h.payments.Verify(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fee)
}

func (h *PaymentHandler) Status(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	fee, err := h.payments.Status(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{
		"fee_id":         fee.FeeID,
		"status":         fee.Status,
		"amount":         fee.Amount,
		"paid_amount":    fee.PaidAmount,
		"receipt_number": fee.ReceiptNumber,
	})
}
