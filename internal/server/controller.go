package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Controller interface {
	Welcome(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct{}

func NewController() Controller {
	return &controller{}
}

func (h *controller) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Listings API is running")
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "listings-api",
	})
}
