// Package order implementa el flujo de pedidos: validación, registro en el
// ledger y aviso al cliente.
package order

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-demo/internal/application/dto"
	"github.com/jhoicas/tienda-demo/internal/application/ports"
	"github.com/jhoicas/tienda-demo/internal/domain"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/internal/domain/repository"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

// emailPattern es una comprobación mínima de forma, anclada solo al inicio.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// ValidEmail indica si s tiene la forma algo@algo.algo.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PlaceOrderUseCase registra pedidos de usuarios autenticados.
type PlaceOrderUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	notifier ports.OrderNotifier
	log      *logger.Logger
	now      func() time.Time
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	notifier ports.OrderNotifier,
	log *logger.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		products: products,
		orders:   orders,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Execute valida el formulario, agrega el pedido al ledger y notifica al cliente.
//
// Errores: ErrUnauthorized (sin usuario), ErrMissingOrderFields,
// ErrProductNotFound (id desconocido o no numérico), ErrInvalidEmail.
// Ningún error deja rastro en el ledger. El resultado de la notificación no
// afecta al pedido ya registrado.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, user string, in dto.PlaceOrderRequest) (*entity.Order, error) {
	if user == "" {
		return nil, domain.ErrUnauthorized
	}
	rawID := strings.TrimSpace(in.ProductID)
	email := strings.TrimSpace(in.CustomerEmail)
	if rawID == "" || email == "" {
		return nil, domain.ErrMissingOrderFields
	}

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !ValidEmail(email) {
		return nil, domain.ErrInvalidEmail
	}

	order := entity.Order{
		ID:        uuid.New().String(),
		User:      user,
		Product:   product,
		CreatedAt: uc.now(),
	}
	uc.orders.Append(order)
	uc.log.Info().
		Str("order_id", order.ID).
		Str("user", user).
		Int("product_id", product.ID).
		Msg("pedido registrado")

	uc.notifier.NotifyOrderPlaced(ctx, order, email)
	return &order, nil
}
