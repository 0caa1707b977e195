package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
)

// devMode expone el detalle de los errores 500 en las respuestas.
// main lo activa cuando APP_ENV=development.
var devMode bool

// SetDevMode configura la exposición de detalle en errores internos.
func SetDevMode(enabled bool) { devMode = enabled }

// respondError traduce un error de dominio a su estatus HTTP y envoltorio
// {success:false, message}. Los errores no reconocidos se registran y salen
// como 500 genérico, con detalle solo en development.
func respondError(c *fiber.Ctx, err error) error {
	var stockErr *domain.StockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(
			fmt.Sprintf("stock insuficiente para %s: disponible %d", stockErr.ProductName, stockErr.Available),
		))
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptySale),
		errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrSaleAlreadyVoided):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInactiveUser),
		errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Error(err.Error()))
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error(err.Error()))
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	msg := "error interno del servidor"
	if devMode {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(msg))
}
