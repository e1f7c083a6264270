package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-demo/internal/application/dto"
	"github.com/jhoicas/tienda-demo/internal/application/ports"
	"github.com/jhoicas/tienda-demo/internal/domain"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/internal/domain/repository"
	"github.com/jhoicas/tienda-demo/pkg/money"
)

const createdAtLayout = "2006-01-02 15:04"

// QueryUseCase consultas de pedidos del usuario: listado y recibo PDF.
type QueryUseCase struct {
	orders   repository.OrderRepository
	receipts ports.ReceiptGenerator
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(orders repository.OrderRepository, receipts ports.ReceiptGenerator) *QueryUseCase {
	return &QueryUseCase{orders: orders, receipts: receipts}
}

// ListForUser pedidos del usuario en orden de inserción.
func (uc *QueryUseCase) ListForUser(user string) []dto.OrderView {
	orders := uc.orders.ByUser(user)
	out := make([]dto.OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o))
	}
	return out
}

// Receipt genera el recibo PDF de un pedido del usuario y el nombre de archivo
// sugerido. Un pedido de otro usuario devuelve ErrForbidden.
func (uc *QueryUseCase) Receipt(ctx context.Context, user, id string) ([]byte, string, error) {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if o.User != user {
		return nil, "", domain.ErrForbidden
	}
	pdf, err := uc.receipts.GenerateReceipt(ctx, o)
	if err != nil {
		return nil, "", fmt.Errorf("order: generar recibo %s: %w", id, err)
	}
	return pdf, "receipt-" + o.ID + ".pdf", nil
}

func toOrderView(o entity.Order) dto.OrderView {
	return dto.OrderView{
		ID:          o.ID,
		ProductName: o.Product.Name,
		Price:       money.Format(o.Product.Price),
		CreatedAt:   o.CreatedAt.Format(createdAtLayout),
	}
}
