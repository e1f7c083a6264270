package repository

import "github.com/jhoicas/tienda-demo/internal/domain/entity"

// OrderRepository define el puerto del ledger de pedidos: solo se agrega, nunca se modifica.
type OrderRepository interface {
	Append(order entity.Order)
	All() []entity.Order
	ByUser(user string) []entity.Order
	// GetByID retorna domain.ErrNotFound si el pedido no existe.
	GetByID(id string) (entity.Order, error)
	Len() int
}
