package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse par de tokens más el usuario autenticado.
type LoginResponse struct {
	Success      bool         `json:"success"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	Usuario      UserResponse `json:"usuario"`
}

// RefreshRequest cuerpo de POST /auth/refresh-token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
