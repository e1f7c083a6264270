package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/tienda-demo/internal/application/ports"
)

var _ ports.EmailSender = (*SMTPSender)(nil)

// smtpAccepted código SMTP de aceptación del mensaje.
const smtpAccepted = 250

// SMTPSender adaptador EmailSender sobre un relay SMTP (gomail).
type SMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender construye el adaptador; sin usuario no se autentica.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, username, password)}
}

// Send abre una conexión por mensaje. gomail no acepta contexto, así que
// el envío corre en una goroutine y se abandona si ctx vence antes.
func (s *SMTPSender) Send(ctx context.Context, msg ports.EmailMessage) (ports.EmailResult, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case <-ctx.Done():
		return ports.EmailResult{}, fmt.Errorf("email: smtp timeout o cancelación: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return ports.EmailResult{}, fmt.Errorf("email: smtp envío fallido: %w", err)
		}
	}
	return ports.EmailResult{StatusCode: smtpAccepted, Body: "OK"}, nil
}
