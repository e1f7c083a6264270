package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Flash mensaje de un solo uso transportado dentro del token de sesión.
type Flash struct {
	Category string `json:"c"`
	Text     string `json:"t"`
}

// SessionClaims incluye los claims estándar JWT más el estado de la sesión web:
// el usuario autenticado (vacío = anónimo) y la cola de mensajes flash pendientes.
type SessionClaims struct {
	jwt.RegisteredClaims
	User    string  `json:"user,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
}

// Generate firma la sesión con HS256. ttl define la expiración a partir de ahora.
func Generate(secret, issuer, user string, flashes []Flash, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		User:    user,
		Flashes: flashes,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el usuario y los flashes pendientes.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (user string, flashes []Flash, err error) {
	if secret == "" {
		return "", nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", nil, fmt.Errorf("claims inválidos")
	}
	return claims.User, claims.Flashes, nil
}
