package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/tienda-demo/internal/application/auth"
	"github.com/jhoicas/tienda-demo/internal/application/notification"
	"github.com/jhoicas/tienda-demo/internal/application/order"
	"github.com/jhoicas/tienda-demo/internal/application/ports"
	"github.com/jhoicas/tienda-demo/internal/application/usecase"
	"github.com/jhoicas/tienda-demo/internal/infrastructure/email"
	"github.com/jhoicas/tienda-demo/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-demo/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/tienda-demo/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/tienda-demo/internal/interfaces/http"
	"github.com/jhoicas/tienda-demo/pkg/config"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	credRepo := memory.NewCredentialRepository(memory.DefaultCredentials()...)
	catalogRepo := memory.NewCatalogRepository(memory.DefaultProducts()...)
	ledger := memory.NewOrderLedger()

	// Correo: sin credenciales del proveedor el despachador queda en modo mock.
	dispatcher := notification.NewDispatcher(
		email.NewSender(cfg.Email),
		cfg.Email.From,
		cfg.Email.Timeout(),
		log.Named("notification"),
	)
	if dispatcher.Mock() {
		log.Warn().Str("provider", cfg.Email.Provider).Msg("correo en modo mock")
	}

	var notifier ports.OrderNotifier = dispatcher
	var queue *notification.Queue
	if cfg.Notify.Async {
		queue = notification.NewQueue(dispatcher, cfg.Notify.Workers, cfg.Notify.QueueSize, log.Named("notify-queue"))
		notifier = queue
	}

	authUC := auth.NewAuthUseCase(credRepo)
	productUC := usecase.NewProductUseCase(catalogRepo)
	placeOrderUC := order.NewPlaceOrderUseCase(catalogRepo, ledger, notifier, log.Named("orders"))
	orderQueryUC := order.NewQueryUseCase(ledger, infrapdf.NewReceiptGenerator(cfg.App.Name))

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		AuthUC:     authUC,
		ProductUC:  productUC,
		PlaceOrder: placeOrderUC,
		OrderQuery: orderQueryUC,
		Metrics:    metrics.NewRecorder(),
		Session: httpRouter.SessionConfig{
			Secret: cfg.Session.Secret,
			Issuer: cfg.App.Name,
			TTL:    cfg.Session.TTL(),
			Secure: cfg.App.Env == "production",
		},
		DocsPath: cfg.App.DocsPath,
		Log:      log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if queue != nil {
		if err := queue.Close(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("cierre de la cola de notificaciones")
		}
	}

	log.Info().Int("orders", ledger.Len()).Msg("aplicación detenida")
}
