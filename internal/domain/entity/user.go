package entity

// Credential par usuario/contraseña de la tabla estática de acceso.
// La contraseña se compara en texto plano; no hay hash.
type Credential struct {
	Username string
	Password string
}
