package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/middleware"
	"vinylstore/internal/models"
	"vinylstore/internal/services"
)

// ProductHandler handles HTTP requests for catalog products. Unexpected
// failures are returned as-is so the app's terminal error handler shapes
// them; nothing is formatted ad hoc here.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The
// validation middleware guards the two write operations.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", middleware.ValidateProduct(h.validate), h.HandleCreateProduct)
	productRoutes.Put("/:id", middleware.ValidateProduct(h.validate), h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists the whole catalog, newest first.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// HandleCreateProduct creates a new product from the validated payload.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input := c.Locals(middleware.ProductInputKey).(*models.ProductInput)

	created, err := h.service.CreateProduct(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Producto creado exitosamente",
		"data":    created,
	})
}

// HandleUpdateProduct replaces the mutable fields of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	input := c.Locals(middleware.ProductInputKey).(*models.ProductInput)

	updated, err := h.service.UpdateProduct(id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Producto actualizado exitosamente",
		"data":    updated,
	})
}

// HandleDeleteProduct removes a product and echoes its pre-deletion state.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteProduct(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Producto eliminado exitosamente",
		"data":    deleted,
	})
}

// parseID reads the :id path parameter. A non-numeric or non-positive id can
// never match a row, so it is reported as not-found.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.ErrProductNotFound
	}
	return uint(id), nil
}
