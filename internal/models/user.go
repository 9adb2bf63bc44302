package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User is an account in the "users" collection. There is no
// registration endpoint; users are only read by login and referenced
// by Product.UserID.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
	AdminKey string             `bson:"adminKey,omitempty" json:"-"`
}

// LoginRequest represents the email/password login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the role-specific welcome payload. No token is
// issued; the response itself is the only proof of authentication.
type LoginResponse struct {
	Message  string `json:"message"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}
