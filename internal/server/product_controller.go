package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/annonceo/listings-api/internal/models"
	"github.com/annonceo/listings-api/internal/usecase"
)

type ProductController interface {
	ListProducts(c echo.Context) error
	GetProduct(c echo.Context) error
	CreateProduct(c echo.Context) error
	UpdateProduct(c echo.Context) error
	DeleteProduct(c echo.Context) error
	ListUserProducts(c echo.Context) error
}

type productController struct {
	productUsecase usecase.ProductUsecase
}

func NewProductController(productUsecase usecase.ProductUsecase) ProductController {
	return &productController{
		productUsecase: productUsecase,
	}
}

func (pc *productController) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	products, err := pc.productUsecase.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, products)
}

func (pc *productController) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	ctx := c.Request().Context()
	product, err := pc.productUsecase.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, product)
}

func (pc *productController) CreateProduct(c echo.Context) error {
	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	product, err := pc.productUsecase.Create(ctx, req)
	switch {
	case errors.Is(err, models.ErrDuplicateID):
		return echo.NewHTTPError(http.StatusBadRequest, "id already exists")
	case errors.Is(err, models.ErrInvalidUserID):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, models.CreateProductResponse{
		Message: "product created successfully",
		Product: *product,
	})
}

func (pc *productController) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req models.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	product, err := pc.productUsecase.Update(ctx, id, req)
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, product)
}

func (pc *productController) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	ctx := c.Request().Context()
	err = pc.productUsecase.Delete(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "product deleted successfully",
	})
}

func (pc *productController) ListUserProducts(c echo.Context) error {
	ctx := c.Request().Context()
	products, err := pc.productUsecase.ListByUser(ctx, c.Param("userId"))
	switch {
	case errors.Is(err, models.ErrInvalidUserID):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	case errors.Is(err, models.ErrNoListings):
		return echo.NewHTTPError(http.StatusNotFound, "no products found for this user")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, products)
}
