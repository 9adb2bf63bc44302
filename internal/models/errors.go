package models

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateID   = errors.New("id already exists")
	ErrInvalidUserID = errors.New("invalid user id")
	ErrNoListings    = errors.New("no products found for this user")
	ErrInvalidLogin  = errors.New("invalid email or password")
)
