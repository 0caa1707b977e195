package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveUser       = errors.New("usuario desactivado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmptySale          = errors.New("la venta debe tener al menos un producto")
	ErrSaleAlreadyVoided  = errors.New("la venta ya está anulada")
)

// StockError acompaña ErrInsufficientStock con el producto y la cantidad
// disponible, para que la API pueda informar cuánto stock queda.
type StockError struct {
	ProductName string
	Available   int
}

func (e *StockError) Error() string {
	return "stock insuficiente para " + e.ProductName
}

// Unwrap permite detectar el error con errors.Is(err, ErrInsufficientStock).
func (e *StockError) Unwrap() error { return ErrInsufficientStock }
