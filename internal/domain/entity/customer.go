package entity

import "time"

// Tipos de documento de identidad aceptados.
const (
	DocDNI       = "DNI"
	DocRUC       = "RUC"
	DocCE        = "CE"
	DocPasaporte = "Pasaporte"
)

// DocumentTypes lista los tipos válidos en orden de uso.
var DocumentTypes = []string{DocDNI, DocRUC, DocCE, DocPasaporte}

// Customer representa un cliente de la farmacia.
// El par (Documento, TipoDocumento) es único.
type Customer struct {
	ID            string
	Nombre        string
	Apellido      string
	Documento     string
	TipoDocumento string
	Telefono      string
	Email         string
	Direccion     string
	FechaRegistro time.Time
}
