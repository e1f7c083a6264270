package memory

import (
	"sync"

	"github.com/jhoicas/tienda-demo/internal/domain"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderLedger)(nil)

// OrderLedger secuencia de pedidos en memoria, solo de agregación.
// Fiber atiende peticiones en paralelo, por eso el acceso va protegido con mutex.
type OrderLedger struct {
	mu     sync.RWMutex
	orders []entity.Order
}

// NewOrderLedger construye un ledger vacío.
func NewOrderLedger() *OrderLedger {
	return &OrderLedger{}
}

func (l *OrderLedger) Append(order entity.Order) {
	l.mu.Lock()
	l.orders = append(l.orders, order)
	l.mu.Unlock()
}

// All devuelve una copia en orden de inserción.
func (l *OrderLedger) All() []entity.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *OrderLedger) ByUser(user string) []entity.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []entity.Order
	for _, o := range l.orders {
		if o.User == user {
			out = append(out, o)
		}
	}
	return out
}

func (l *OrderLedger) GetByID(id string) (entity.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entity.Order{}, domain.ErrNotFound
}

func (l *OrderLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// Clear vacía el ledger. Solo para tests.
func (l *OrderLedger) Clear() {
	l.mu.Lock()
	l.orders = nil
	l.mu.Unlock()
}
