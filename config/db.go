package config

import (
	"errors"
	"fmt"
	"schoolmgmt/domain"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BootDB opens the database connection and runs migrations.
func BootDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	if cfg.SeedAdmin {
		if err := seedAdmin(db, cfg); err != nil {
			return db, err
		}
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	enums := map[string]string{
		"role_enum":              "'admin', 'teacher', 'parent', 'student'",
		"day_enum":               "'monday', 'tuesday', 'wednesday', 'thursday', 'friday', 'saturday'",
		"attendance_status_enum": "'present', 'absent', 'late', 'excused'",
		"fee_type_enum":          "'tuition', 'admission', 'exam', 'transport', 'library', 'laboratory', 'sports', 'other'",
		"fee_status_enum":        "'pending', 'paid', 'partial', 'overdue', 'waived'",
		"admission_status_enum":  "'pending', 'under_review', 'approved', 'rejected', 'waitlisted'",
		"participant_enum":       "'parent', 'teacher'",
	}
	for name, values := range enums {
		stmt := fmt.Sprintf(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = '%s') THEN
			CREATE TYPE %s AS ENUM (%s);
		END IF;
	END $$`, name, name, values)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
	}

	// Base tables first, then everything that references them.
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Class{},
		&domain.Subject{},
		&domain.Teacher{},
		&domain.Parent{},
		&domain.Student{},
		&domain.Admin{},
	); err != nil {
		return fmt.Errorf("failed to migrate base tables: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.Timetable{},
		&domain.Attendance{},
		&domain.Fee{},
		&domain.Assignment{},
		&domain.AssignmentSubmission{},
		&domain.Exam{},
		&domain.ExamSchedule{},
		&domain.ExamResult{},
		&domain.Notice{},
		&domain.Admission{},
		&domain.Message{},
	); err != nil {
		return fmt.Errorf("failed to migrate relational tables: %w", err)
	}

	return nil
}

func seedAdmin(db *gorm.DB, cfg *Config) error {
	var existing domain.User
	err := db.Where("role = ?", domain.RoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("could not check for an existing admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash admin password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		Email:     cfg.AdminEmail,
		Password:  string(hashed),
		Role:      domain.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx := db.Begin()
	if err := tx.Error; err != nil {
		return err
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return err
	}
	admin := domain.Admin{
		UserID:    user.UserID,
		Name:      cfg.AdminName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.Create(&admin).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
