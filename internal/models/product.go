package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a classified listing stored in the "produits" collection.
// ID is assigned by the caller and is distinct from the store's own
// document identity.
type Product struct {
	DocID       primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	ID          int                 `bson:"id" json:"id"`
	Image       string              `bson:"image" json:"image"`
	Title       string              `bson:"title" json:"title"`
	Location    string              `bson:"location" json:"location"`
	Description string              `bson:"description" json:"description"`
	Price       float64             `bson:"price" json:"price"`
	Categorie   string              `bson:"categorie" json:"categorie"`
	DatePoster  string              `bson:"datePoster" json:"datePoster"`
	UserID      *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
}

// CreateProductRequest carries the payload for POST /products. Numeric
// fields are pointers so a literal 0 still passes the required check.
type CreateProductRequest struct {
	ID          *int     `json:"id" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Categorie   string   `json:"categorie" validate:"required"`
	DatePoster  string   `json:"datePoster"`
	UserID      string   `json:"userId"`
}

// UpdateProductRequest is the partial payload for PUT /products/:id.
// Only non-nil fields are written; everything else is left untouched.
type UpdateProductRequest struct {
	Image       *string  `json:"image"`
	Title       *string  `json:"title"`
	Location    *string  `json:"location"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Categorie   *string  `json:"categorie"`
	DatePoster  *string  `json:"datePoster"`
}

// CreateProductResponse wraps the created document with the
// confirmation message returned on 201.
type CreateProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}
