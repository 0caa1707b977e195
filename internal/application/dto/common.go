package dto

// ErrorResponse cuerpo de error HTTP: {success:false, message, errors?}.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Error construye la respuesta de error estándar.
func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// ValidationError construye la respuesta de error con detalle por campo.
func ValidationError(message string, errs []string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Errors: errs}
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
