package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-demo/internal/application/usecase"
)

// ProductHandler muestra el catálogo.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler del catálogo.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo de productos
// @Tags         catalog
// @Produce      html
// @Success      200
// @Failure      302  "a / sin sesión"
// @Router       /catalog [get]
func (h *ProductHandler) Catalog(c *fiber.Ctx) error {
	return render(c, "catalog", "Catalog", fiber.Map{"Products": h.uc.List()})
}
