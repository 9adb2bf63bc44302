package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/annonceo/listings-api/internal/models"
	"github.com/annonceo/listings-api/internal/repo/mongodb"
)

type authUsecase struct {
	userRepo mongodb.UserRepository
}

func NewAuthUsecase(userRepo mongodb.UserRepository) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
	}
}

// Login compares the submitted password against the stored one.
// Unknown email and wrong password both yield ErrInvalidLogin so the
// response does not reveal which accounts exist.
func (uc *authUsecase) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidLogin
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if user.Password != req.Password {
		return nil, models.ErrInvalidLogin
	}

	if user.Role == models.RoleAdmin {
		return &models.LoginResponse{
			Message:  "welcome admin",
			Role:     models.RoleAdmin,
			Redirect: "/admin/dashboard",
		}, nil
	}

	return &models.LoginResponse{
		Message:  "welcome seller",
		Role:     models.RoleSeller,
		Redirect: "/seller/dashboard",
	}, nil
}
