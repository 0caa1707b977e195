// Package validate centraliza la validación de DTOs de entrada con
// go-playground/validator. Una sola instancia compartida: el validador
// cachea metadatos de structs y es seguro para uso concurrente.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct valida un DTO según sus tags `validate`. Devuelve nil si es válido.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Errors convierte un error de validación en mensajes legibles por campo.
// Para errores que no son de validación devuelve el mensaje tal cual.
func Errors(err error) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", field)
	case "email":
		return fmt.Sprintf("%s no es un email válido", field)
	case "min":
		return fmt.Sprintf("%s debe tener un mínimo de %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s supera el máximo de %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no es válido (%s)", field, fe.Tag())
	}
}
