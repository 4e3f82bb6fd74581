package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"schoolmgmt/domain"
)

// BulkUsecase handles tabular import and export. Imports are row-tolerant:
// a bad row goes into the report and its siblings still commit, unlike exam
// marks entry which is all-or-nothing.
type BulkUsecase struct {
	people     *PeopleUsecase
	academic   domain.AcademicRepo
	students   domain.StudentRepo
	teachers   domain.TeacherRepo
	fees       domain.FeeRepo
	attendance domain.AttendanceRepo
}

func NewBulkUsecase(people *PeopleUsecase, academic domain.AcademicRepo, students domain.StudentRepo, teachers domain.TeacherRepo, fees domain.FeeRepo, attendance domain.AttendanceRepo) *BulkUsecase {
	return &BulkUsecase{people: people, academic: academic, students: students, teachers: teachers, fees: fees, attendance: attendance}
}

func missingColumns(row domain.ImportRow, columns []string) []string {
	var missing []string
	for _, c := range columns {
		if strings.TrimSpace(row[c]) == "" {
			missing = append(missing, c)
		}
	}
	return missing
}

// ImportStudents creates one student per row, finding or creating the class
// named by (class_name, section) for the given academic year.
func (bu *BulkUsecase) ImportStudents(ctx context.Context, rows []domain.ImportRow, academicYear string) *domain.ImportReport {
	report := &domain.ImportReport{Errors: []domain.RowError{}}

	for i, row := range rows {
		rowNum := i + 1
		if missing := missingColumns(row, []string{"admission_no", "name", "email", "password"}); len(missing) > 0 {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: "missing columns: " + strings.Join(missing, ", ")})
			continue
		}

		var classID *int
		className := strings.TrimSpace(row["class_name"])
		section := strings.TrimSpace(row["section"])
		if className != "" {
			id, err := bu.findOrCreateClass(ctx, className, section, academicYear)
			if err != nil {
				report.Skipped++
				report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: err.Error()})
				continue
			}
			classID = &id
		}

		req := &domain.CreateStudentRequest{
			Email:       strings.TrimSpace(row["email"]),
			Password:    row["password"],
			AdmissionNo: strings.TrimSpace(row["admission_no"]),
			Name:        strings.TrimSpace(row["name"]),
			ClassID:     classID,
			Section:     section,
		}
		if _, err := bu.people.CreateStudent(ctx, req); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: err.Error()})
			continue
		}
		report.Created++
	}
	return report
}

func (bu *BulkUsecase) ImportTeachers(ctx context.Context, rows []domain.ImportRow) *domain.ImportReport {
	report := &domain.ImportReport{Errors: []domain.RowError{}}

	for i, row := range rows {
		rowNum := i + 1
		if missing := missingColumns(row, domain.TeacherImportColumns); len(missing) > 0 {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: "missing columns: " + strings.Join(missing, ", ")})
			continue
		}

		req := &domain.CreateTeacherRequest{
			Email:      strings.TrimSpace(row["email"]),
			Password:   row["password"],
			EmployeeID: strings.TrimSpace(row["employee_id"]),
			Name:       strings.TrimSpace(row["name"]),
		}
		if _, err := bu.people.CreateTeacher(ctx, req); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: err.Error()})
			continue
		}
		report.Created++
	}
	return report
}

func (bu *BulkUsecase) ImportFees(ctx context.Context, rows []domain.ImportRow, academicYear string) *domain.ImportReport {
	report := &domain.ImportReport{Errors: []domain.RowError{}}

	for i, row := range rows {
		rowNum := i + 1
		if missing := missingColumns(row, domain.FeeImportColumns); len(missing) > 0 {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: "missing columns: " + strings.Join(missing, ", ")})
			continue
		}

		student, err := bu.students.GetByAdmissionNo(ctx, strings.TrimSpace(row["student_admission_no"]))
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: err.Error()})
			continue
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(row["amount"]), 64)
		if err != nil || amount <= 0 {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: "invalid amount"})
			continue
		}

		dueDate, err := time.Parse("2006-01-02", strings.TrimSpace(row["due_date"]))
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: "invalid due_date, expected YYYY-MM-DD"})
			continue
		}

		fee := &domain.Fee{
			StudentID:    student.StudentID,
			Amount:       amount,
			FeeType:      strings.TrimSpace(row["fee_type"]),
			DueDate:      dueDate,
			Status:       domain.FeePending,
			AcademicYear: academicYear,
		}
		if err := validate(fee); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: err.Error()})
			continue
		}
		if err := bu.fees.Create(ctx, fee); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, domain.RowError{Row: rowNum, Detail: err.Error()})
			continue
		}
		report.Created++
	}
	return report
}

func (bu *BulkUsecase) findOrCreateClass(ctx context.Context, name, section, academicYear string) (int, error) {
	class, err := bu.academic.FindClassByIdentity(ctx, name, section, academicYear)
	if err == nil {
		return class.ClassID, nil
	}

	created := &domain.Class{Name: name, Section: section, AcademicYear: academicYear}
	if err := bu.academic.CreateClass(ctx, created); err != nil {
		return 0, err
	}
	return created.ClassID, nil
}

// ExportStudents renders every student as rows under the import column set
// plus identifiers.
func (bu *BulkUsecase) ExportStudents(ctx context.Context) ([][]string, error) {
	students, err := bu.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"student_id", "admission_no", "name", "class_id", "section", "roll_no", "phone"}}
	for _, s := range *students {
		classID, rollNo := "", ""
		if s.ClassID != nil {
			classID = strconv.Itoa(*s.ClassID)
		}
		if s.RollNo != nil {
			rollNo = strconv.Itoa(*s.RollNo)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.StudentID), s.AdmissionNo, s.Name, classID, s.Section, rollNo, s.Phone,
		})
	}
	return rows, nil
}

func (bu *BulkUsecase) ExportTeachers(ctx context.Context) ([][]string, error) {
	teachers, err := bu.teachers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"teacher_id", "employee_id", "name", "phone", "qualification", "experience_years"}}
	for _, t := range *teachers {
		rows = append(rows, []string{
			strconv.Itoa(t.TeacherID), t.EmployeeID, t.Name, t.Phone, t.Qualification, strconv.Itoa(t.ExperienceYears),
		})
	}
	return rows, nil
}

func (bu *BulkUsecase) ExportFees(ctx context.Context) ([][]string, error) {
	fees, err := bu.fees.GetAll(ctx, "")
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"fee_id", "student_id", "fee_type", "amount", "paid_amount", "status", "due_date", "receipt_number"}}
	for _, f := range *fees {
		rows = append(rows, []string{
			strconv.Itoa(f.FeeID),
			strconv.Itoa(f.StudentID),
			f.FeeType,
			strconv.FormatFloat(f.Amount, 'f', 2, 64),
			strconv.FormatFloat(f.PaidAmount, 'f', 2, 64),
			f.Status,
			f.DueDate.Format("2006-01-02"),
			f.ReceiptNumber,
		})
	}
	return rows, nil
}

// ExportAttendance dumps per-student records for a date range.
func (bu *BulkUsecase) ExportAttendance(ctx context.Context, from, to *time.Time) ([][]string, error) {
	students, err := bu.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"student_id", "admission_no", "name", "date", "status", "remarks"}}
	for _, s := range *students {
		records, err := bu.attendance.GetByStudent(ctx, s.StudentID, from, to)
		if err != nil {
			return nil, err
		}
		for _, r := range *records {
			rows = append(rows, []string{
				strconv.Itoa(s.StudentID), s.AdmissionNo, s.Name,
				r.Date.Format("2006-01-02"), r.Status, r.Remarks,
			})
		}
	}
	return rows, nil
}

// Template returns the header-only row set for an import kind.
func (bu *BulkUsecase) Template(kind string) ([][]string, error) {
	switch kind {
	case "students":
		return [][]string{domain.StudentImportColumns}, nil
	case "teachers":
		return [][]string{domain.TeacherImportColumns}, nil
	case "fees":
		return [][]string{domain.FeeImportColumns}, nil
	default:
		return nil, domain.Validationf("unknown template kind %q", kind)
	}
}
