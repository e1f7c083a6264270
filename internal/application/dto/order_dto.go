package dto

// PlaceOrderRequest formulario de POST /order. ProductID llega como texto y se
// convierte en el caso de uso para que un valor no numérico no rompa el binding.
type PlaceOrderRequest struct {
	ProductID     string `form:"product_id"`
	CustomerEmail string `form:"customer_email"`
}

// OrderView pedido en la página "Mis pedidos".
type OrderView struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	CreatedAt   string `json:"created_at"`
}
