package usecase

import (
	"context"

	"schoolmgmt/domain"
)

type NoticeUsecase struct {
	notices domain.NoticeRepo
}

func NewNoticeUsecase(notices domain.NoticeRepo) *NoticeUsecase {
	return &NoticeUsecase{notices: notices}
}

func (nu *NoticeUsecase) Create(ctx context.Context, n *domain.Notice, createdBy int) (*domain.Notice, error) {
	if err := validate(n); err != nil {
		return nil, err
	}
	if n.Priority == "" {
		n.Priority = domain.PriorityNormal
	}
	n.IsActive = true
	n.CreatedBy = &createdBy

	if err := nu.notices.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (nu *NoticeUsecase) GetAll(ctx context.Context) (*[]domain.Notice, error) {
	return nu.notices.GetAll(ctx)
}

func (nu *NoticeUsecase) Update(ctx context.Context, id int, upd *domain.NoticeUpdate) (*domain.Notice, error) {
	if err := nu.notices.Update(ctx, id, upd); err != nil {
		return nil, err
	}
	return nu.notices.GetByID(ctx, id)
}

func (nu *NoticeUsecase) Delete(ctx context.Context, id int) error {
	return nu.notices.Delete(ctx, id)
}

// ForRole lists active, unexpired notices targeted at the role or everyone.
func (nu *NoticeUsecase) ForRole(ctx context.Context, role string, limit int) (*[]domain.Notice, error) {
	return nu.notices.GetActiveForRole(ctx, role, limit)
}
