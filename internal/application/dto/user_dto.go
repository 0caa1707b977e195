package dto

import "time"

// UserResponse usuario serializado; el hash de contraseña nunca sale por la API.
type UserResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// CreateUserRequest alta de usuario (solo administrador).
type CreateUserRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required,oneof=administrador vendedor"`
}

// UpdateUserRequest patch de usuario: solo los campos presentes se aplican.
type UpdateUserRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Apellido *string `json:"apellido,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Rol      *string `json:"rol,omitempty" validate:"omitempty,oneof=administrador vendedor"`
	Activo   *bool   `json:"activo,omitempty"`
}
