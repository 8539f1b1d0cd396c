package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/middleware"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/responses"
	"katalog/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Write
// operations run the validation middleware first, so their handlers only ever
// see records that satisfy the field constraints.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", middleware.ValidateProduct(), h.HandleCreateProduct)
	productRoutes.Put("/:id", middleware.ValidateProduct(), h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Context())
	if err != nil {
		return err
	}
	return responses.Success(c, "Products retrieved successfully", products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return err
	}
	return responses.Success(c, "Product retrieved successfully", product)
}

// HandleCreateProduct persists a validated product and returns it with its
// assigned identifier.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	in := c.Locals(middleware.ProductInputKey).(*models.ProductInput)

	product := in.Record()
	if err := h.service.CreateProduct(c.Context(), &product); err != nil {
		return err
	}
	return responses.Success(c, "Product created successfully", product)
}

// HandleUpdateProduct replaces an existing product's fields with the
// validated input and returns the post-update record.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	in := c.Locals(middleware.ProductInputKey).(*models.ProductInput)

	product := in.Record()
	updated, err := h.service.UpdateProduct(c.Context(), c.Params("id"), &product)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return err
	}
	return responses.Success(c, "Product updated successfully", updated)
}

// HandleDeleteProduct removes a product by its ID. The success envelope
// carries no data payload.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return err
	}
	return responses.Success(c, "Product deleted successfully", nil)
}
