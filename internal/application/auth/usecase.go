package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/jhoicas/tienda-demo/internal/application/dto"
	"github.com/jhoicas/tienda-demo/internal/domain"
	"github.com/jhoicas/tienda-demo/internal/domain/repository"
)

// AuthUseCase caso de uso de login contra la tabla estática de credenciales.
type AuthUseCase struct {
	creds repository.CredentialRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds repository.CredentialRepository) *AuthUseCase {
	return &AuthUseCase{creds: creds}
}

// Login verifica usuario/contraseña y devuelve el nombre de usuario que se
// guarda en la sesión. Cualquier discrepancia devuelve ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}
	stored, ok := uc.creds.PasswordFor(username)
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return "", domain.ErrInvalidCredentials
	}
	return username, nil
}
