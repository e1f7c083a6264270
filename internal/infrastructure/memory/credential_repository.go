package memory

import (
	"github.com/jhoicas/tienda-demo/internal/domain/entity"
	"github.com/jhoicas/tienda-demo/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepository)(nil)

// CredentialRepository tabla estática de credenciales; no se modifica tras construirse.
type CredentialRepository struct {
	passwords map[string]string
}

// NewCredentialRepository copia las credenciales recibidas.
func NewCredentialRepository(creds ...entity.Credential) *CredentialRepository {
	passwords := make(map[string]string, len(creds))
	for _, c := range creds {
		passwords[c.Username] = c.Password
	}
	return &CredentialRepository{passwords: passwords}
}

// DefaultCredentials usuario de demostración.
func DefaultCredentials() []entity.Credential {
	return []entity.Credential{{Username: "user", Password: "password"}}
}

func (r *CredentialRepository) PasswordFor(username string) (string, bool) {
	p, ok := r.passwords[username]
	return p, ok
}
