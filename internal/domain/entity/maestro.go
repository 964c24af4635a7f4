package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaveCruce clave compuesta (código de obra, ítem) del cruce contra maestro.
type ClaveCruce struct {
	CodigoObra string
	Item       string
}

// RegistroMaestro un registro del archivo maestro con su saldo disponible.
// El saldo puede quedar negativo: registra un déficit pendiente, no se
// recorta a cero.
type RegistroMaestro struct {
	CodigoObra string
	Item       string
	Saldo      decimal.Decimal
	Fecha      *time.Time        // FECHA DESCAR SGT; nil si no fue parseable
	Extras     map[string]string // columnas descriptivas adicionales, se conservan tal cual
}

// Clave devuelve la clave compuesta del registro.
func (r RegistroMaestro) Clave() ClaveCruce {
	return ClaveCruce{CodigoObra: r.CodigoObra, Item: r.Item}
}

// LineaDescarga una línea del archivo dinámico de descargas.
type LineaDescarga struct {
	CodigoObra  string
	Item        string
	Cantidad    decimal.Decimal
	Descargable string // bandera de elegibilidad precalculada aguas arriba; no se recalcula aquí
}

// Clave devuelve la clave compuesta de la línea.
func (l LineaDescarga) Clave() ClaveCruce {
	return ClaveCruce{CodigoObra: l.CodigoObra, Item: l.Item}
}

// FilaMaestro una fila del resultado del cruce contra maestro. CantDesc solo
// es válida cuando la corrida aplicó cantidad sobre el registro: esa es la
// marca estructural de "cruzado y aplicado", independiente de la etiqueta
// CRUZADO (que solo es "SI" cuando el saldo quedó exactamente en cero).
type FilaMaestro struct {
	RegistroMaestro // con Saldo ya actualizado

	CantDesc decimal.NullDecimal
	Cruzado  string // "SI", "NO" o "" si no se aplicó cantidad

	// Metadatos de la corrida; vacíos en los remanentes del maestro no cruzados.
	Observacion  string
	NuevaObra    string
	NuevoTrabajo string
	ObraTrabItem string
}
