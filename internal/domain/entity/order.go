package entity

import "time"

// Order pedido registrado en el ledger. Product es una copia por valor del
// producto del catálogo en el momento del pedido.
type Order struct {
	ID        string
	User      string
	Product   Product
	CreatedAt time.Time
}
