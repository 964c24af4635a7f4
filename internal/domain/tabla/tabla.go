// Package tabla define la tabla estandarizada que cruza la frontera del
// sistema: columnas ordenadas y filas de texto, tal como llegan del
// colaborador externo (mapeo de columnas ya resuelto aguas arriba).
package tabla

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Fila una fila de la tabla, indexada por nombre de columna.
type Fila map[string]string

// Tabla tabla estandarizada con orden de columnas estable.
type Tabla struct {
	Columnas []string `json:"columnas"`
	Filas    []Fila   `json:"filas"`
}

// Nueva crea una tabla vacía con las columnas indicadas.
func Nueva(columnas ...string) *Tabla {
	return &Tabla{Columnas: columnas, Filas: []Fila{}}
}

// AgregarFila añade una fila al final de la tabla.
func (t *Tabla) AgregarFila(f Fila) {
	t.Filas = append(t.Filas, f)
}

// TieneColumna informa si la columna existe en la tabla.
func (t *Tabla) TieneColumna(nombre string) bool {
	for _, c := range t.Columnas {
		if c == nombre {
			return true
		}
	}
	return false
}

// NumFilas cantidad de filas.
func (t *Tabla) NumFilas() int {
	return len(t.Filas)
}

// Valor devuelve el valor de la columna en la fila, o "" si no está.
func (f Fila) Valor(columna string) string {
	return f[columna]
}

// ANumero convierte un valor de celda a decimal. Valores inválidos o vacíos
// se coercen a 0; el segundo retorno es false cuando hubo coerción (señal de
// calidad de datos, no un error). Acepta coma como separador decimal.
func ANumero(s string) (decimal.Decimal, bool) {
	limpio := strings.TrimSpace(s)
	if limpio == "" {
		return decimal.Zero, false
	}
	if d, err := decimal.NewFromString(limpio); err == nil {
		return d, true
	}
	// Formato con coma decimal ("1234,5")
	if strings.Count(limpio, ",") == 1 && !strings.Contains(limpio, ".") {
		if d, err := decimal.NewFromString(strings.ReplaceAll(limpio, ",", ".")); err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}

// ACantidad convierte una cantidad solicitada. Igual que ANumero, pero los
// negativos también se coercen a 0: una cantidad solicitada nunca es negativa.
func ACantidad(s string) (decimal.Decimal, bool) {
	d, ok := ANumero(s)
	if d.IsNegative() {
		return decimal.Zero, false
	}
	return d, ok
}
