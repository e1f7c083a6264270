package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/tienda-demo/internal/infrastructure/metrics"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

// MetricsMiddleware mide latencia y cuenta peticiones por ruta y código.
// El endpoint es el patrón de la ruta (/orders/:id/receipt), no la URL.
func MetricsMiddleware(rec *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		rec.Observe(
			utils.CopyString(c.Method()),
			utils.CopyString(c.Route().Path),
			statusOf(c, err),
			time.Since(start),
		)
		return err
	}
}

// RequestLogger registra cada petición en debug.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusOf(c, err)).
			Dur("latency", time.Since(start)).
			Msg("petición")
		return err
	}
}

// statusOf código final de la respuesta; un error pendiente lo decide el ErrorHandler.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
