package dto

// LoginRequest formulario de login (application/x-www-form-urlencoded).
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
