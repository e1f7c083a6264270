// Package notification envía la confirmación de pedido al cliente.
//
// El envío es best-effort: sin proveedor configurado se simula un éxito
// (modo mock) y cualquier fallo del proveedor se registra y se colapsa en
// (500, "Failed to send email") sin propagarse al flujo de pedidos.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-demo/internal/application/ports"
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

var _ ports.OrderNotifier = (*Dispatcher)(nil)

// Respuestas fijas del despachador.
const (
	MockStatusCode    = 200
	MockResponseBody  = "Mock email sent"
	FailureStatusCode = 500
	FailureBody       = "Failed to send email"

	OrderConfirmationSubject = "Order Confirmation"
)

// Dispatcher formatea y envía mensajes a través de un EmailSender.
type Dispatcher struct {
	sender  ports.EmailSender // nil = modo mock
	from    string
	timeout time.Duration
	log     *logger.Logger
}

// NewDispatcher construye el despachador. sender nil activa el modo mock;
// timeout <= 0 deja la llamada acotada solo por el contexto del caller.
func NewDispatcher(sender ports.EmailSender, from string, timeout time.Duration, log *logger.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, from: from, timeout: timeout, log: log}
}

// Mock indica si no hay proveedor configurado.
func (d *Dispatcher) Mock() bool {
	return d.sender == nil
}

// Send envía un correo de texto plano al destinatario y devuelve el código y
// cuerpo de la respuesta del proveedor.
func (d *Dispatcher) Send(ctx context.Context, subject, recipient, body string) (int, string) {
	if d.Mock() {
		d.log.Warn().Str("to", recipient).Msg("proveedor de correo no configurado, envío omitido")
		return MockStatusCode, MockResponseBody
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	res, err := d.sender.Send(ctx, ports.EmailMessage{
		From:    d.from,
		To:      recipient,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		d.log.Error().Err(err).Str("to", recipient).Msg("error enviando correo")
		return FailureStatusCode, FailureBody
	}

	d.log.Info().Int("status", res.StatusCode).Str("to", recipient).Msg("correo enviado")
	return res.StatusCode, res.Body
}

// OrderPlaced envía la confirmación de un pedido.
func (d *Dispatcher) OrderPlaced(ctx context.Context, order entity.Order, recipient string) (int, string) {
	return d.Send(ctx, OrderConfirmationSubject, recipient, OrderConfirmationBody(order))
}

// NotifyOrderPlaced implementa ports.OrderNotifier de forma síncrona.
func (d *Dispatcher) NotifyOrderPlaced(ctx context.Context, order entity.Order, recipient string) {
	status, _ := d.OrderPlaced(ctx, order, recipient)
	d.log.Debug().Str("order_id", order.ID).Int("status", status).Msg("notificación de pedido procesada")
}

// OrderConfirmationBody cuerpo del correo de confirmación.
func OrderConfirmationBody(order entity.Order) string {
	return fmt.Sprintf("Thank you for your order! You have ordered a %s.", order.Product.Name)
}
