package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jhoicas/tienda-demo/internal/application/ports"
)

// Verificar en tiempo de compilación que SendGridSender implementa EmailSender.
var _ ports.EmailSender = (*SendGridSender)(nil)

const sendGridMailEndpoint = "/v3/mail/send"

// SendGridSender adaptador que implementa EmailSender con la API v3 de SendGrid.
type SendGridSender struct {
	apiKey string
	host   string
}

// NewSendGridSender construye el adaptador. host vacío usa https://api.sendgrid.com.
func NewSendGridSender(apiKey, host string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, host: host}
}

// Send envía un mensaje de un destinatario en texto plano.
// Respuestas HTTP >= 400 se consideran rechazo del proveedor.
func (s *SendGridSender) Send(ctx context.Context, msg ports.EmailMessage) (ports.EmailResult, error) {
	m := mail.NewV3MailInit(
		mail.NewEmail("", msg.From),
		msg.Subject,
		mail.NewEmail("", msg.To),
		mail.NewContent("text/plain", msg.Body),
	)

	req := sendgrid.GetRequest(s.apiKey, sendGridMailEndpoint, s.host)
	req.Method = "POST"
	req.Body = mail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return ports.EmailResult{}, fmt.Errorf("email: sendgrid timeout o cancelación: %w", ctx.Err())
		}
		return ports.EmailResult{}, fmt.Errorf("email: sendgrid llamada fallida: %w", err)
	}

	result := ports.EmailResult{StatusCode: resp.StatusCode, Body: resp.Body}
	if resp.StatusCode >= 400 {
		return result, fmt.Errorf("email: sendgrid HTTP %d: %s", resp.StatusCode, resp.Body)
	}
	return result, nil
}
