package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/pkg/jwt"
	"github.com/jhoicas/tienda-demo/pkg/logger"
)

// SessionCookie nombre de la cookie firmada que transporta la sesión.
const SessionCookie = "session"

const localSession = "session"

// SessionConfig firma y vigencia de la cookie de sesión.
type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Secure bool
}

// Session estado tipado de la sesión: el usuario autenticado y los avisos
// pendientes. Solo vive durante la petición; el middleware la serializa de
// vuelta en la cookie si cambió.
type Session struct {
	user    string
	flashes []entity.Flash
	dirty   bool
}

// User usuario autenticado; vacío si la sesión es anónima.
func (s *Session) User() string { return s.user }

// Authenticated indica si hay un usuario en la sesión.
func (s *Session) Authenticated() bool { return s.user != "" }

// Login asocia el usuario a la sesión.
func (s *Session) Login(user string) {
	s.user = user
	s.dirty = true
}

// Logout elimina el usuario; los avisos pendientes se conservan.
func (s *Session) Logout() {
	s.user = ""
	s.dirty = true
}

// AddFlash encola un aviso para la próxima página renderizada.
func (s *Session) AddFlash(category, text string) {
	s.flashes = append(s.flashes, entity.Flash{Category: category, Text: text})
	s.dirty = true
}

// PopFlashes devuelve y vacía la cola de avisos.
func (s *Session) PopFlashes() []entity.Flash {
	out := s.flashes
	if len(out) > 0 {
		s.flashes = nil
		s.dirty = true
	}
	return out
}

// SessionMiddleware carga la sesión desde la cookie y la guarda al terminar la
// petición si cambió. Una cookie inválida, manipulada o vencida equivale a una
// sesión anónima.
func SessionMiddleware(cfg SessionConfig, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := &Session{}
		hadCookie := false
		if raw := c.Cookies(SessionCookie); raw != "" {
			hadCookie = true
			user, flashes, err := jwt.Parse(cfg.Secret, raw)
			if err != nil {
				log.Debug().Err(err).Msg("cookie de sesión descartada")
				sess.dirty = true
			} else {
				sess.user = user
				sess.flashes = fromClaims(flashes)
			}
		}
		c.Locals(localSession, sess)

		err := c.Next()

		if sess.dirty {
			if saveErr := saveSession(c, cfg, sess, hadCookie); saveErr != nil {
				log.Error().Err(saveErr).Msg("guardar sesión")
			}
		}
		return err
	}
}

func saveSession(c *fiber.Ctx, cfg SessionConfig, sess *Session, hadCookie bool) error {
	if sess.user == "" && len(sess.flashes) == 0 {
		if hadCookie {
			c.ClearCookie(SessionCookie)
		}
		return nil
	}
	tok, err := jwt.Generate(cfg.Secret, cfg.Issuer, sess.user, toClaims(sess.flashes), cfg.TTL)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(cfg.TTL),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// GetSession devuelve la sesión de la petición (después de SessionMiddleware).
// Sin middleware devuelve una sesión anónima descartable.
func GetSession(c *fiber.Ctx) *Session {
	if s, ok := c.Locals(localSession).(*Session); ok {
		return s
	}
	return &Session{}
}

func toClaims(flashes []entity.Flash) []jwt.Flash {
	if len(flashes) == 0 {
		return nil
	}
	out := make([]jwt.Flash, len(flashes))
	for i, f := range flashes {
		out[i] = jwt.Flash{Category: f.Category, Text: f.Text}
	}
	return out
}

func fromClaims(flashes []jwt.Flash) []entity.Flash {
	if len(flashes) == 0 {
		return nil
	}
	out := make([]entity.Flash, len(flashes))
	for i, f := range flashes {
		out[i] = entity.Flash{Category: f.Category, Text: f.Text}
	}
	return out
}
