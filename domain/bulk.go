package domain

// Bulk import consumes parsed tabular rows keyed by column name and reports
// per-row outcomes; a bad row never aborts its siblings.

type ImportRow map[string]string

type RowError struct {
	Row    int    `json:"row"`
	Detail string `json:"detail"`
}

type ImportReport struct {
	Created int        `json:"created"`
	Skipped int        `json:"skipped"`
	Errors  []RowError `json:"errors"`
}

var (
	StudentImportColumns = []string{"admission_no", "name", "email", "password", "class_name", "section"}
	TeacherImportColumns = []string{"employee_id", "name", "email", "password"}
	FeeImportColumns     = []string{"student_admission_no", "fee_type", "amount", "due_date"}
)
