package cruce

import (
	"strings"
	"time"
)

// FormatoFechaSalida formato dd/mm/yyyy de la columna FECHA DESCAR SGT en el
// resultado.
const FormatoFechaSalida = "02/01/2006"

// Formatos de entrada aceptados, con convención día-primero.
var formatosFechaEntrada = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParsearFechaDiaPrimero interpreta una fecha con convención día-primero.
// Devuelve nil si el valor no es parseable: la fecha sale en blanco, nunca es
// un error de la corrida.
func ParsearFechaDiaPrimero(s string) *time.Time {
	limpio := strings.TrimSpace(s)
	if limpio == "" {
		return nil
	}
	for _, f := range formatosFechaEntrada {
		if t, err := time.Parse(f, limpio); err == nil {
			return &t
		}
	}
	return nil
}

// FormatearFecha devuelve la fecha como dd/mm/yyyy, o "" si es nil.
func FormatearFecha(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(FormatoFechaSalida)
}
