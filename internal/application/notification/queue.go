package notification

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tienda-demo/internal/application/ports"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

var _ ports.OrderNotifier = (*Queue)(nil)

type job struct {
	order     entity.Order
	recipient string
}

// Queue saca el envío de correo del hilo de la petición: una cola acotada
// drenada por un número fijo de workers. Con la cola llena la notificación
// se descarta (el pedido ya está registrado).
type Queue struct {
	d    *Dispatcher
	log  *logger.Logger
	jobs chan job

	cancel context.CancelFunc
	g      *errgroup.Group

	mu     sync.RWMutex
	closed bool
}

// NewQueue arranca workers goroutines sobre una cola de capacidad size.
func NewQueue(d *Dispatcher, workers, size int, log *logger.Logger) *Queue {
	if workers < 1 {
		workers = 1
	}
	if size < 1 {
		size = 1
	}
	base, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(base)

	q := &Queue{
		d:      d,
		log:    log,
		jobs:   make(chan job, size),
		cancel: cancel,
		g:      g,
	}
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := range q.jobs {
				q.d.NotifyOrderPlaced(ctx, j.order, j.recipient)
			}
			return nil
		})
	}
	return q
}

// NotifyOrderPlaced encola la notificación sin bloquear. El contexto de la
// petición no se propaga: el envío sobrevive a la respuesta.
func (q *Queue) NotifyOrderPlaced(_ context.Context, order entity.Order, recipient string) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.log.Warn().Str("order_id", order.ID).Msg("cola de notificaciones cerrada, notificación descartada")
		return
	}
	select {
	case q.jobs <- job{order: order, recipient: recipient}:
	default:
		q.log.Warn().Str("order_id", order.ID).Msg("cola de notificaciones llena, notificación descartada")
	}
}

// Close deja de aceptar trabajos y espera a que los workers drenen la cola.
// Si ctx vence antes, cancela los envíos en curso y devuelve ctx.Err().
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- q.g.Wait() }()

	select {
	case err := <-done:
		q.cancel()
		return err
	case <-ctx.Done():
		q.cancel()
		return ctx.Err()
	}
}
