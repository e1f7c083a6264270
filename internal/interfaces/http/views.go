package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// Layout plantilla base de todas las páginas.
const Layout = "layouts/main"

// NewViews motor de plantillas html sobre las vistas embebidas.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("views: " + err.Error())
	}
	return html.NewFileSystem(nethttp.FS(sub), ".html")
}

// render dibuja una página vaciando los avisos pendientes de la sesión.
func render(c *fiber.Ctx, name, title string, data fiber.Map) error {
	sess := GetSession(c)
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["User"] = sess.User()
	data["Flashes"] = sess.PopFlashes()
	c.Type("html", "utf-8")
	return c.Render(name, data)
}
