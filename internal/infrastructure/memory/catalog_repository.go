package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-demo/internal/domain"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/internal/domain/repository"
)

var _ repository.ProductRepository = (*CatalogRepository)(nil)

// CatalogRepository catálogo de solo lectura, fijo durante la vida del proceso.
type CatalogRepository struct {
	products []entity.Product
	byID     map[int]entity.Product
}

// NewCatalogRepository construye el catálogo ordenado por ID.
func NewCatalogRepository(products ...entity.Product) *CatalogRepository {
	sorted := make([]entity.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int]entity.Product, len(sorted))
	for _, p := range sorted {
		byID[p.ID] = p
	}
	return &CatalogRepository{products: sorted, byID: byID}
}

// DefaultProducts catálogo de demostración.
func DefaultProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Laptop", Price: decimal.NewFromInt(1000)},
		{ID: 2, Name: "Phone", Price: decimal.NewFromInt(500)},
	}
}

// List devuelve una copia del catálogo.
func (r *CatalogRepository) List() []entity.Product {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *CatalogRepository) GetByID(id int) (entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return entity.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}
