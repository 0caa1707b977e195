package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misikss/nova-salud-api/pkg/validate"
)

type loginBody struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestStruct_Valido(t *testing.T) {
	err := validate.Struct(loginBody{Email: "ana@novasalud.com", Password: "secreto-fuerte"})
	assert.NoError(t, err)
}

func TestErrors_MensajesPorCampo(t *testing.T) {
	err := validate.Struct(loginBody{Email: "no-es-email", Password: "corta"})
	require.Error(t, err)

	msgs := validate.Errors(err)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "email no es un email válido")
	assert.Contains(t, msgs[1], "password debe tener un mínimo de 8")
}

func TestErrors_CamposRequeridos(t *testing.T) {
	msgs := validate.Errors(validate.Struct(loginBody{}))
	require.Len(t, msgs, 2)
	assert.Equal(t, "email es requerido", msgs[0])
	assert.Equal(t, "password es requerido", msgs[1])
}

func TestErrors_OneOf(t *testing.T) {
	type ajuste struct {
		Tipo string `validate:"required,oneof=entrada salida"`
	}
	msgs := validate.Errors(validate.Struct(ajuste{Tipo: "traslado"}))
	require.Len(t, msgs, 1)
	assert.Equal(t, "tipo debe ser uno de: entrada salida", msgs[0])
}

func TestErrors_ErrorArbitrarioYNil(t *testing.T) {
	assert.Nil(t, validate.Errors(nil))
	assert.Equal(t, []string{"boom"}, validate.Errors(errors.New("boom")))
}
