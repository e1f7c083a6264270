package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Email   EmailConfig
	Notify  NotifyConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
	DocsPath string // swagger.json servido en /docs
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig firma y vigencia de la cookie de sesión.
type SessionConfig struct {
	Secret     string
	TTLMinutes int
}

// TTL devuelve la vigencia de la sesión como duración.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Proveedores de correo soportados.
const (
	EmailProviderSendGrid = "sendgrid"
	EmailProviderSMTP     = "smtp"
)

// EmailConfig configuración del proveedor de correo transaccional.
// Sin credenciales del proveedor elegido el despachador queda en modo mock.
type EmailConfig struct {
	Provider       string // sendgrid | smtp
	From           string
	TimeoutSeconds int

	SendGridAPIKey string // "dummy_key" o vacío = no configurado
	SendGridHost   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

// Timeout devuelve el límite de tiempo para una llamada al proveedor.
func (c EmailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NotifyConfig modo de entrega de las notificaciones de pedido.
type NotifyConfig struct {
	Async     bool
	Workers   int
	QueueSize int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, SENDGRID_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	env := getString(v, "APP_ENV", "development")
	defaultLevel := "info"
	if env == "development" {
		defaultLevel = "debug"
	}

	// FLASK_SECRET_KEY se acepta como alias para despliegues existentes.
	secret := getString(v, "SESSION_SECRET", getString(v, "FLASK_SECRET_KEY", "fallback_super_secret_key"))

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			Name:     getString(v, "APP_NAME", "tienda-demo"),
			LogLevel: getString(v, "LOG_LEVEL", defaultLevel),
			DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5001),
		},
		Session: SessionConfig{
			Secret:     secret,
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 60),
		},
		Email: EmailConfig{
			Provider:       strings.ToLower(getString(v, "EMAIL_PROVIDER", EmailProviderSendGrid)),
			From:           getString(v, "EMAIL_FROM", "olgashabaykina202226@gmail.com"),
			TimeoutSeconds: getInt(v, "EMAIL_TIMEOUT_SECONDS", 10),
			SendGridAPIKey: getString(v, "SENDGRID_API_KEY", "dummy_key"),
			SendGridHost:   getString(v, "SENDGRID_HOST", "https://api.sendgrid.com"),
			SMTPHost:       getString(v, "SMTP_HOST", ""),
			SMTPPort:       getInt(v, "SMTP_PORT", 587),
			SMTPUsername:   getString(v, "SMTP_USERNAME", ""),
			SMTPPassword:   getString(v, "SMTP_PASSWORD", ""),
		},
		Notify: NotifyConfig{
			Async:     getBool(v, "NOTIFY_ASYNC", false),
			Workers:   getInt(v, "NOTIFY_WORKERS", 2),
			QueueSize: getInt(v, "NOTIFY_QUEUE_SIZE", 100),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Email.Provider {
	case EmailProviderSendGrid, EmailProviderSMTP:
	default:
		return fmt.Errorf("config: EMAIL_PROVIDER desconocido %q", c.Email.Provider)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("config: SESSION_SECRET vacío")
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("config: SESSION_TTL_MINUTES debe ser positivo")
	}
	if c.Notify.Workers <= 0 || c.Notify.QueueSize <= 0 {
		return fmt.Errorf("config: NOTIFY_WORKERS y NOTIFY_QUEUE_SIZE deben ser positivos")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
