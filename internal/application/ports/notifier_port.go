package ports

import (
	"context"

	"github.com/jhoicas/tienda-demo/internal/domain/entity"
)

// OrderNotifier avisa al cliente de un pedido registrado.
// Es best-effort: no devuelve error y nunca revierte el pedido.
type OrderNotifier interface {
	NotifyOrderPlaced(ctx context.Context, order entity.Order, recipient string)
}

// ReceiptGenerator genera el recibo PDF de un pedido.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order entity.Order) ([]byte, error)
}
