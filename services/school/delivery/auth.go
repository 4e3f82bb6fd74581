package delivery

import (
	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *usecase.AuthUsecase
}

func NewAuthHandler(app *fiber.App, authMW *middleware.Auth, auth *usecase.AuthUsecase) {
	h := &AuthHandler{auth: auth}

	app.Post("/login", h.Login)
	app.Get("/auth/me", authMW.AuthRequired, h.Me)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.auth.Login(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	me, err := h.auth.Me(c.Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, me)
}
