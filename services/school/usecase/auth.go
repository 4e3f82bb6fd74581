package usecase

import (
	"context"
	"errors"

	"schoolmgmt/domain"
	"schoolmgmt/middleware"

	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users    domain.UserRepo
	students domain.StudentRepo
	teachers domain.TeacherRepo
	parents  domain.ParentRepo
	admins   domain.AdminRepo
	auth     *middleware.Auth
}

func NewAuthUsecase(users domain.UserRepo, students domain.StudentRepo, teachers domain.TeacherRepo, parents domain.ParentRepo, admins domain.AdminRepo, auth *middleware.Auth) *AuthUsecase {
	return &AuthUsecase{users: users, students: students, teachers: teachers, parents: parents, admins: admins, auth: auth}
}

func (au *AuthUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := au.users.FindByEmail(ctx, req.Email)
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) && derr.Category == domain.ErrNotFound {
			return nil, domain.Unauthorizedf("invalid email or password")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.Unauthorizedf("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.Unauthorizedf("invalid email or password")
	}

	token, err := au.auth.GenerateJWT(user.UserID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	log.WithField("user_id", user.UserID).Info("user logged in")
	return &domain.LoginResponse{Token: token, Role: user.Role}, nil
}

// Me returns the authenticated user plus their role profile.
func (au *AuthUsecase) Me(ctx context.Context, userID int) (map[string]interface{}, error) {
	user, err := au.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"user": user}
	switch user.Role {
	case domain.RoleStudent:
		if p, err := au.students.GetByUserID(ctx, userID); err == nil {
			out["profile"] = p
		}
	case domain.RoleTeacher:
		if p, err := au.teachers.GetByUserID(ctx, userID); err == nil {
			out["profile"] = p
		}
	case domain.RoleParent:
		if p, err := au.parents.GetByUserID(ctx, userID); err == nil {
			out["profile"] = p
		}
	case domain.RoleAdmin:
		if p, err := au.admins.GetByUserID(ctx, userID); err == nil {
			out["profile"] = p
		}
	}
	return out, nil
}
