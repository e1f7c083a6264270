package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Inmutable durante la vida del proceso.
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
}
