package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-demo/internal/application/dto"
	apporder "github.com/jhoicas/tienda-demo/internal/application/order"
	"github.com/jhoicas/tienda-demo/internal/domain"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
)

// Avisos del flujo de pedidos.
const (
	MsgMissingFields   = "Missing product ID or email address."
	MsgProductNotFound = "Product not found. Please try again."
	MsgInvalidEmail    = "Invalid email address. Please try again."
	MsgOrderNotFound   = "Order not found."
)

// OrderHandler alta de pedidos, listado y recibo.
type OrderHandler struct {
	place   *apporder.PlaceOrderUseCase
	queries *apporder.QueryUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(place *apporder.PlaceOrderUseCase, queries *apporder.QueryUseCase) *OrderHandler {
	return &OrderHandler{place: place, queries: queries}
}

// Place godoc
// @Summary      Registrar pedido
// @Tags         orders
// @Accept       x-www-form-urlencoded
// @Param        product_id      formData  string  true  "ID del producto"
// @Param        customer_email  formData  string  true  "email del cliente"
// @Success      302  "a /catalog con aviso"
// @Router       /order [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.PlaceOrderRequest
	_ = c.BodyParser(&in) // campos ausentes quedan vacíos y los rechaza el caso de uso

	order, err := h.place.Execute(c.UserContext(), sess.User(), in)
	if err != nil {
		msg, ok := orderErrorMessage(err)
		if !ok {
			return err
		}
		sess.AddFlash(entity.FlashDanger, msg)
		return c.Redirect("/catalog")
	}

	sess.AddFlash(entity.FlashSuccess, fmt.Sprintf("Order placed for %s!", order.Product.Name))
	return c.Redirect("/catalog")
}

// List godoc
// @Summary      Pedidos del usuario
// @Tags         orders
// @Produce      html
// @Success      200
// @Router       /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders := h.queries.ListForUser(GetSession(c).User())
	return render(c, "orders", "My orders", fiber.Map{"Orders": orders})
}

// Receipt godoc
// @Summary      Recibo PDF de un pedido
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200
// @Failure      302  "a /orders si no existe o es de otro usuario"
// @Router       /orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	sess := GetSession(c)
	pdf, filename, err := h.queries.Receipt(c.UserContext(), sess.User(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
			sess.AddFlash(entity.FlashDanger, MsgOrderNotFound)
			return c.Redirect("/orders")
		}
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func orderErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrMissingOrderFields):
		return MsgMissingFields, true
	case errors.Is(err, domain.ErrProductNotFound):
		return MsgProductNotFound, true
	case errors.Is(err, domain.ErrInvalidEmail):
		return MsgInvalidEmail, true
	case errors.Is(err, domain.ErrUnauthorized):
		return MsgPleaseLogIn, true
	}
	return "", false
}
