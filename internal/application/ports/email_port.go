package ports

import "context"

// EmailMessage correo de un solo destinatario en texto plano.
type EmailMessage struct {
	From    string
	To      string
	Subject string
	Body    string
}

// EmailResult respuesta del proveedor (código y cuerpo tal como los devuelve).
type EmailResult struct {
	StatusCode int
	Body       string
}

// EmailSender define el puerto de salida hacia el proveedor de correo transaccional.
// Cualquier adaptador (SendGrid, SMTP) debe implementar esta interfaz.
// Un error significa que el proveedor no aceptó el mensaje (red, auth, payload rechazado).
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (EmailResult, error)
}
