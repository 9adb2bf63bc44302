package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/annonceo/listings-api/internal/models"
	"github.com/annonceo/listings-api/internal/repo/mongodb"
)

type productUsecase struct {
	productRepo mongodb.ProductRepository
}

func NewProductUsecase(productRepo mongodb.ProductRepository) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
	}
}

func (uc *productUsecase) List(ctx context.Context) ([]models.Product, error) {
	return uc.productRepo.List(ctx)
}

func (uc *productUsecase) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *productUsecase) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	// pre-check for a friendly error; the unique index on "id" covers
	// the race between check and insert
	exists, err := uc.productRepo.ExistsByID(ctx, *req.ID)
	if err != nil {
		return nil, fmt.Errorf("check product id: %w", err)
	}
	if exists {
		return nil, models.ErrDuplicateID
	}

	product := &models.Product{
		ID:          *req.ID,
		Image:       req.Image,
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		Price:       *req.Price,
		Categorie:   req.Categorie,
		DatePoster:  req.DatePoster,
	}

	if product.DatePoster == "" {
		product.DatePoster = time.Now().Format(time.RFC3339)
	}

	if req.UserID != "" {
		ownerID, err := primitive.ObjectIDFromHex(req.UserID)
		if err != nil {
			return nil, models.ErrInvalidUserID
		}
		product.UserID = &ownerID
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *productUsecase) Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	updates := bson.M{}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Categorie != nil {
		updates["categorie"] = *req.Categorie
	}
	if req.DatePoster != nil {
		updates["datePoster"] = *req.DatePoster
	}

	// an empty payload updates nothing; $set rejects an empty document
	if len(updates) == 0 {
		return uc.productRepo.GetByID(ctx, id)
	}

	return uc.productRepo.Update(ctx, id, updates)
}

func (uc *productUsecase) Delete(ctx context.Context, id int) error {
	return uc.productRepo.Delete(ctx, id)
}

// ListByUser surfaces an empty result as ErrNoListings so the handler
// answers 404 rather than an empty 200 list.
func (uc *productUsecase) ListByUser(ctx context.Context, userID string) ([]models.Product, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrInvalidUserID
	}

	products, err := uc.productRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, models.ErrNoListings
	}
	return products, nil
}
