package delivery

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"schoolmgmt/domain"
	"schoolmgmt/middleware"
	"schoolmgmt/services/school/usecase"

	"github.com/gofiber/fiber/v2"
)

// BulkHandler parses CSV uploads into rows for the import usecase and
// renders exports back as CSV downloads.
type BulkHandler struct {
	bulk *usecase.BulkUsecase
}

func NewBulkHandler(app *fiber.App, authMW *middleware.Auth, bulk *usecase.BulkUsecase) {
	h := &BulkHandler{bulk: bulk}

	b := app.Group("/admin/bulk", authMW.AuthRequired, middleware.RequireRole(domain.RoleAdmin))

	b.Post("/import/students", h.ImportStudents)
	b.Post("/import/teachers", h.ImportTeachers)
	b.Post("/import/fees", h.ImportFees)

	b.Get("/export/students", h.ExportStudents)
	b.Get("/export/teachers", h.ExportTeachers)
	b.Get("/export/fees", h.ExportFees)
	b.Get("/export/attendance", h.ExportAttendance)

	b.Get("/templates/:kind", h.Template)
}

// parseCSVUpload reads the uploaded "file" form field into column-keyed rows
// using the header line.
func parseCSVUpload(c *fiber.Ctx) ([]domain.ImportRow, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, domain.Validationf("a CSV file upload named %q is required", "file")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open upload: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.Validationf("malformed CSV: %s", err.Error())
	}
	if len(records) < 2 {
		return nil, domain.Validationf("CSV has no data rows")
	}

	header := records[0]
	rows := make([]domain.ImportRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := domain.ImportRow{}
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func sendCSV(c *fiber.Ctx, filename string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

func (h *BulkHandler) ImportStudents(c *fiber.Ctx) error {
	rows, err := parseCSVUpload(c)
	if err != nil {
		return fail(c, err)
	}
	report := h.bulk.ImportStudents(c.Context(), rows, c.Query("academic_year"))
	return ok(c, report)
}

func (h *BulkHandler) ImportTeachers(c *fiber.Ctx) error {
	rows, err := parseCSVUpload(c)
	if err != nil {
		return fail(c, err)
	}
	report := h.bulk.ImportTeachers(c.Context(), rows)
	return ok(c, report)
}

func (h *BulkHandler) ImportFees(c *fiber.Ctx) error {
	rows, err := parseCSVUpload(c)
	if err != nil {
		return fail(c, err)
	}
	report := h.bulk.ImportFees(c.Context(), rows, c.Query("academic_year"))
	return ok(c, report)
}

func (h *BulkHandler) ExportStudents(c *fiber.Ctx) error {
	rows, err := h.bulk.ExportStudents(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return sendCSV(c, "students.csv", rows)
}

func (h *BulkHandler) ExportTeachers(c *fiber.Ctx) error {
	rows, err := h.bulk.ExportTeachers(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return sendCSV(c, "teachers.csv", rows)
}

func (h *BulkHandler) ExportFees(c *fiber.Ctx) error {
	rows, err := h.bulk.ExportFees(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return sendCSV(c, "fees.csv", rows)
}

func (h *BulkHandler) ExportAttendance(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return fail(c, err)
	}
	rows, err := h.bulk.ExportAttendance(c.Context(), from, to)
	if err != nil {
		return fail(c, err)
	}
	return sendCSV(c, "attendance.csv", rows)
}

func (h *BulkHandler) Template(c *fiber.Ctx) error {
	kind := c.Params("kind")
	rows, err := h.bulk.Template(kind)
	if err != nil {
		return fail(c, err)
	}
	return sendCSV(c, kind+"_template.csv", rows)
}
