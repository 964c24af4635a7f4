package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrEntradaInvalida = errors.New("entrada inválida")
	ErrTablaVacia      = errors.New("la tabla no contiene filas")
)

// ColumnaFaltanteError indica que una columna requerida falta en una tabla de
// entrada. La corrida aborta antes de tocar cualquier estado: nunca se procesa
// con columnas parciales.
type ColumnaFaltanteError struct {
	Tabla   string
	Columna string
}

func (e *ColumnaFaltanteError) Error() string {
	return fmt.Sprintf("la columna requerida '%s' falta en la tabla '%s'", e.Columna, e.Tabla)
}

// NuevaColumnaFaltante construye el error de esquema para tabla y columna.
func NuevaColumnaFaltante(tabla, columna string) error {
	return &ColumnaFaltanteError{Tabla: tabla, Columna: columna}
}
