package repository

import "github.com/jhoicas/tienda-demo/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo (DIP).
type ProductRepository interface {
	List() []entity.Product
	// GetByID retorna domain.ErrProductNotFound si el id no existe.
	GetByID(id int) (entity.Product, error)
}
