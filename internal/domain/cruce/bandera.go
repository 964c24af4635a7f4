package cruce

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos pliega tildes ("SÍ" -> "SI"), incluyendo formas
// descompuestas que llegan de archivos exportados en mac.
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarBandera normaliza la bandera Descargable: recorta espacios,
// pliega tildes y pasa a mayúsculas.
func NormalizarBandera(s string) string {
	limpio := strings.TrimSpace(s)
	if plegado, _, err := transform.String(quitarDiacriticos, limpio); err == nil {
		limpio = plegado
	}
	return strings.ToUpper(limpio)
}

// EsAfirmativa informa si la bandera equivale a "SI"/"SÍ".
func EsAfirmativa(s string) bool {
	return NormalizarBandera(s) == "SI"
}
