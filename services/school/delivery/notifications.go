package delivery

import (
	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notify *usecase.NotifyUsecase
}

func NewNotificationHandler(app *fiber.App, authMW *middleware.Auth, notify *usecase.NotifyUsecase) {
	h := &NotificationHandler{notify: notify}

	n := app.Group("/notifications", authMW.AuthRequired, middleware.RequireRole(domain.RoleAdmin))

	n.Post("/broadcast", h.Broadcast)
	n.Post("/fee-reminder", h.FeeReminder)
}

type broadcastRequest struct {
	Group   string `json:"group"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *NotificationHandler) Broadcast(c *fiber.Ctx) error {
	var req broadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	n, err := h.notify.Broadcast(c.Context(), req.Group, req.Subject, req.Body)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"dispatched": n})
}

func (h *NotificationHandler) FeeReminder(c *fiber.Ctx) error {
	n, err := h.notify.FeeReminder(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"dispatched": n})
}
