package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrMissingOrderFields = errors.New("faltan product_id o email")
	ErrInvalidEmail       = errors.New("email inválido")
)
