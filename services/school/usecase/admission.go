package usecase

import (
	"context"
	"strings"

	"schoolmgmt/domain"
)

type AdmissionUsecase struct {
	admissions domain.AdmissionRepo
}

func NewAdmissionUsecase(admissions domain.AdmissionRepo) *AdmissionUsecase {
	return &AdmissionUsecase{admissions: admissions}
}

// Apply files a public application; it always starts out pending.
func (au *AdmissionUsecase) Apply(ctx context.Context, a *domain.Admission) (*domain.Admission, error) {
	if err := validate(a); err != nil {
		return nil, err
	}
	a.Status = domain.AdmissionPending
	a.Remarks = ""

	if err := au.admissions.Create(ctx, a); err != nil {
		return nil, err
	}
	log.WithField("admission_id", a.AdmissionID).Info("admission application received")
	return a, nil
}

// CheckStatus is the public lookup: the id alone is not enough, the
// applicant's name has to match too.
func (au *AdmissionUsecase) CheckStatus(ctx context.Context, id int, studentName string) (*domain.Admission, error) {
	a, err := au.admissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(a.StudentName), strings.TrimSpace(studentName)) {
		return nil, domain.NotFoundf("no application found for that id and name")
	}
	return a, nil
}

func (au *AdmissionUsecase) GetAll(ctx context.Context, status string) (*[]domain.Admission, error) {
	return au.admissions.GetAll(ctx, status)
}

func (au *AdmissionUsecase) UpdateStatus(ctx context.Context, id int, upd *domain.AdmissionStatusUpdate) (*domain.Admission, error) {
	if err := validate(upd); err != nil {
		return nil, err
	}
	if err := au.admissions.UpdateStatus(ctx, id, upd); err != nil {
		return nil, err
	}
	return au.admissions.GetByID(ctx, id)
}
