package email

import (
	"github.com/jhoicas/tienda-demo/internal/application/ports"
	"github.com/jhoicas/tienda-demo/pkg/config"
)

// sendGridPlaceholderKey valor heredado que indica "sin configurar".
const sendGridPlaceholderKey = "dummy_key"

// NewSender devuelve el adaptador del proveedor configurado, o nil si el
// proveedor elegido no tiene credenciales (el despachador pasa a modo mock).
func NewSender(cfg config.EmailConfig) ports.EmailSender {
	switch cfg.Provider {
	case config.EmailProviderSMTP:
		if cfg.SMTPHost == "" {
			return nil
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	default:
		if cfg.SendGridAPIKey == "" || cfg.SendGridAPIKey == sendGridPlaceholderKey {
			return nil
		}
		return NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridHost)
	}
}
