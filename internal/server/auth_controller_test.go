package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annonceo/listings-api/internal/models"
	"github.com/annonceo/listings-api/internal/repo/mongodb"
	pkgmdw "github.com/annonceo/listings-api/internal/server/middleware"
	"github.com/annonceo/listings-api/internal/usecase"
)

type memUserRepo struct {
	users map[string]models.User
}

var _ mongodb.UserRepository = (*memUserRepo)(nil)

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}

func newAuthTestServer(users map[string]models.User) *echo.Echo {
	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	auth := NewAuthController(usecase.NewAuthUsecase(&memUserRepo{users: users}))
	e.POST("/login", auth.Login)

	return e
}

func TestLoginEndpoint(t *testing.T) {
	e := newAuthTestServer(map[string]models.User{
		"seller@example.com": {Email: "seller@example.com", Password: "secret", Role: models.RoleSeller},
		"admin@example.com":  {Email: "admin@example.com", Password: "topsecret", Role: models.RoleAdmin},
	})

	t.Run("seller welcome", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/login", `{"email":"seller@example.com","password":"secret"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"seller"`)
		assert.Contains(t, rec.Body.String(), "/seller/dashboard")
	})

	t.Run("admin welcome", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/login", `{"email":"admin@example.com","password":"topsecret"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"admin"`)
		assert.Contains(t, rec.Body.String(), "/admin/dashboard")
	})

	t.Run("uniform failure", func(t *testing.T) {
		unknown := doJSON(e, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"secret"}`)
		wrongPass := doJSON(e, http.MethodPost, "/login", `{"email":"seller@example.com","password":"bad"}`)

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, unknown.Body.String(), wrongPass.Body.String(),
			"unknown email and wrong password must produce the same response")
	})

	t.Run("missing password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/login", `{"email":"seller@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "password")
	})
}
