package usecase

import (
	"github.com/jhoicas/tienda-demo/internal/application/dto"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/internal/domain/repository"
	"github.com/jhoicas/tienda-demo/pkg/money"
)

// ProductUseCase consulta del catálogo de productos (solo lectura).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve el catálogo completo ordenado por ID, listo para la vista.
func (uc *ProductUseCase) List() []dto.ProductView {
	products := uc.repo.List()
	out := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, toProductView(p))
	}
	return out
}

// GetByID obtiene un producto por ID. Retorna domain.ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductView, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	v := toProductView(p)
	return &v, nil
}

func toProductView(p entity.Product) dto.ProductView {
	return dto.ProductView{ID: p.ID, Name: p.Name, Price: money.Format(p.Price)}
}
