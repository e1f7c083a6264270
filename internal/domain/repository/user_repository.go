package repository

// CredentialRepository define el puerto de consulta de la tabla de credenciales.
type CredentialRepository interface {
	// PasswordFor devuelve la contraseña registrada y si el usuario existe.
	PasswordFor(username string) (string, bool)
}
