package entity

// Categorías válidas de Flash.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

// Flash aviso de un solo uso asociado a la sesión; se muestra una vez y se descarta.
type Flash struct {
	Category string
	Text     string
}
