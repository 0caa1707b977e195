package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID          string
	Nombre      string // único
	Descripcion string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
