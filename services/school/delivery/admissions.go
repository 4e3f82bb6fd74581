package delivery

import (
	"schoolmgmt/domain"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

// AdmissionHandler is the public (unauthenticated) application surface.
type AdmissionHandler struct {
	admissions *usecase.AdmissionUsecase
}

func NewAdmissionHandler(app *fiber.App, admissions *usecase.AdmissionUsecase) {
	h := &AdmissionHandler{admissions: admissions}

	app.Post("/admissions", h.Apply)
	app.Get("/admissions/:id/status", h.CheckStatus)
}

func (h *AdmissionHandler) Apply(c *fiber.Ctx) error {
	var a domain.Admission
	if err := c.BodyParser(&a); err != nil {
		return badBody(c)
	}
	out, err := h.admissions.Apply(c.Context(), &a)
	if err != nil {
		return fail(c, err)
	}
	return created(c, fiber.Map{"admission_id": out.AdmissionID, "status": out.Status})
}

func (h *AdmissionHandler) CheckStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	name := c.Query("student_name")
	if name == "" {
		return fail(c, domain.Validationf("student_name query parameter is required"))
	}
	a, err := h.admissions.CheckStatus(c.Context(), id, name)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"admission_id": a.AdmissionID, "status": a.Status, "remarks": a.Remarks})
}
