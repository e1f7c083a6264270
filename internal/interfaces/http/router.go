package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-demo/internal/application/auth"
	"github.com/jhoicas/tienda-demo/internal/application/dto"
	apporder "github.com/jhoicas/tienda-demo/internal/application/order"
	"github.com/jhoicas/tienda-demo/internal/application/usecase"
	"github.com/jhoicas/tienda-demo/internal/infrastructure/metrics"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	PlaceOrder *apporder.PlaceOrderUseCase
	OrderQuery *apporder.QueryUseCase
	Metrics    *metrics.Recorder
	Session    SessionConfig
	DocsPath   string // vacío o inexistente: sin /docs
	Log        *logger.Logger
}

// NewApp construye la aplicación Fiber con vistas, manejo de errores y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		Views:        NewViews(),
		ViewsLayout:  Layout,
		ErrorHandler: errorHandler(deps.Log),
	})
	Router(app, deps)
	return app
}

// Router registra middlewares y rutas. /metrics va antes del middleware de
// métricas para no instrumentarse a sí mismo.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())

	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	app.Use(MetricsMiddleware(deps.Metrics))
	app.Use(RequestLogger(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})

	// Swagger UI: http://localhost:<port>/docs
	if deps.DocsPath != "" {
		if _, err := os.Stat(deps.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.DocsPath,
				Path:     "docs",
				Title:    deps.AppName,
			}))
		} else {
			deps.Log.Warn().Str("path", deps.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	web := app.Group("/", SessionMiddleware(deps.Session, deps.Log))

	// Público
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	web.Get("/", authHandler.LoginForm)
	web.Post("/", authHandler.Login)
	web.Get("/logout", authHandler.Logout)

	// Requiere sesión
	requireLogin := RequireLogin()

	productHandler := NewProductHandler(deps.ProductUC)
	web.Get("/catalog", requireLogin, productHandler.Catalog)

	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.OrderQuery)
	web.Post("/order", requireLogin, orderHandler.Place)
	web.Get("/orders", requireLogin, orderHandler.List)
	web.Get("/orders/:id/receipt", requireLogin, orderHandler.Receipt)
}

func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal Server Error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, msg = fe.Code, fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		}
		return c.Status(code).SendString(msg)
	}
}
