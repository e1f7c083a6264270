package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-demo/internal/domain/entity"
)

// MsgPleaseLogIn aviso al entrar sin sesión en una ruta protegida.
const MsgPleaseLogIn = "Please log in."

// RequireLogin deja pasar solo peticiones con usuario en la sesión; el resto
// vuelve al login con un aviso y sin efectos.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if !sess.Authenticated() {
			sess.AddFlash(entity.FlashDanger, MsgPleaseLogIn)
			return c.Redirect("/")
		}
		return c.Next()
	}
}
