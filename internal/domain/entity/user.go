package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "administrador"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema (personal de la farmacia).
type User struct {
	ID           string
	Nombre       string
	Apellido     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          string // administrador, vendedor
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
