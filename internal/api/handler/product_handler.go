package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog (the menu).
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products — the full menu, public.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /products — admin only.
//
// @Summary      Add a product to the catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _ := c.Get("username").(string)
	product, err := h.service.CreateProduct(c.Request().Context(), &domain.Product{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productMessageResponse{
		Message: "product added",
		Product: toProductResponse(product),
	})
}

// Update handles PUT /products/:id — admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Updated fields"
// @Success      200   {object}  productMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, _ := c.Get("username").(string)
	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productMessageResponse{
		Message: "product updated",
		Product: toProductResponse(product),
	})
}

// Delete handles DELETE /products/:id — admin only.
//
// @Summary      Remove a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, _ := c.Get("username").(string)
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product removed"})
}
