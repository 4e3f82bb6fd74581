package delivery

import (
	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

// AIHandler exposes the public chatbot and the teacher-facing question
// generator.
type AIHandler struct {
	ai *usecase.AIUsecase
}

func NewAIHandler(app *fiber.App, authMW *middleware.Auth, ai *usecase.AIUsecase) {
	h := &AIHandler{ai: ai}

	group := app.Group("/ai")
	group.Post("/chat", h.Chat)
	group.Post("/generate-questions", authMW.AuthRequired,
		middleware.RequireRole(domain.RoleTeacher, domain.RoleAdmin), h.GenerateQuestions)
}

func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req domain.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.ai.Chat(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, resp)
}

func (h *AIHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req domain.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	questions, err := h.ai.GenerateQuestions(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, questions)
}
