package dto

// ProductView producto tal como lo muestra el catálogo.
type ProductView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"` // ya formateado, p. ej. "$1,000"
}
