package usecase

import (
	"context"

	"github.com/annonceo/listings-api/internal/models"
)

type ProductUsecase interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id int) error
	ListByUser(ctx context.Context, userID string) ([]models.Product, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}
