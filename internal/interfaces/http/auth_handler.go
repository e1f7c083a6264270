package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-demo/internal/application/auth"
	"github.com/jhoicas/tienda-demo/internal/application/dto"
	"github.com/jhoicas/tienda-demo/internal/domain"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

// Avisos del flujo de login.
const (
	MsgLoginOK            = "Login successful!"
	MsgInvalidCredentials = "Invalid credentials. Please try again."
	MsgLoggedOut          = "Logged out."
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// LoginForm godoc
// @Summary      Formulario de login
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", "Login", nil)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "usuario"
// @Param        password  formData  string  true  "contraseña"
// @Success      302  "a /catalog"
// @Failure      200  "login con aviso de error"
// @Router       / [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		h.log.Debug().Err(err).Msg("formulario de login inválido")
	}
	user, err := h.uc.Login(in)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return err
		}
		h.log.Info().Str("username", in.Username).Msg("login fallido")
		GetSession(c).AddFlash(entity.FlashDanger, MsgInvalidCredentials)
		return render(c, "login", "Login", nil)
	}

	sess := GetSession(c)
	sess.Login(user)
	sess.AddFlash(entity.FlashSuccess, MsgLoginOK)
	h.log.Info().Str("user", user).Msg("login correcto")
	return c.Redirect("/catalog")
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      302  "a /"
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := GetSession(c)
	sess.Logout()
	sess.AddFlash(entity.FlashInfo, MsgLoggedOut)
	return c.Redirect("/")
}
