package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annonceo/listings-api/internal/models"
	"github.com/annonceo/listings-api/internal/usecase"
)

type stubUserRepo struct {
	users map[string]*models.User
	err   error
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

func TestLoginDoesNotRevealAccounts(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"seller@example.com": {Email: "seller@example.com", Password: "secret", Role: models.RoleSeller},
	}}
	uc := usecase.NewAuthUsecase(repo)

	_, unknownErr := uc.Login(t.Context(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret",
	})
	_, wrongPassErr := uc.Login(t.Context(), models.LoginRequest{
		Email:    "seller@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownErr, models.ErrInvalidLogin)
	assert.ErrorIs(t, wrongPassErr, models.ErrInvalidLogin)
	assert.Equal(t, unknownErr, wrongPassErr, "unknown email and wrong password must be indistinguishable")
}

func TestLoginSeller(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"seller@example.com": {Email: "seller@example.com", Password: "secret", Role: models.RoleSeller},
	}}
	uc := usecase.NewAuthUsecase(repo)

	resp, err := uc.Login(t.Context(), models.LoginRequest{
		Email:    "seller@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeller, resp.Role)
	assert.Equal(t, "/seller/dashboard", resp.Redirect)
}

func TestLoginAdmin(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{
		"admin@example.com": {Email: "admin@example.com", Password: "topsecret", Role: models.RoleAdmin, AdminKey: "k1"},
	}}
	uc := usecase.NewAuthUsecase(repo)

	resp, err := uc.Login(t.Context(), models.LoginRequest{
		Email:    "admin@example.com",
		Password: "topsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.Equal(t, "/admin/dashboard", resp.Redirect)
}

func TestLoginStoreFailure(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("connection reset")}
	uc := usecase.NewAuthUsecase(repo)

	_, err := uc.Login(t.Context(), models.LoginRequest{
		Email:    "seller@example.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidLogin, "store failures must not masquerade as bad credentials")
}
