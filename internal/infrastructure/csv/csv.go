// Package csv adapta archivos CSV a la tabla estandarizada del dominio, para
// las corridas por lote desde la CLI. La frontera sigue siendo tabular: la
// primera fila es el encabezado y todo valor viaja como texto.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jhoicas/cruce-sap/internal/domain/tabla"
)

// Leer lee una tabla desde un archivo CSV.
func Leer(ruta string) (*tabla.Tabla, error) {
	f, err := os.Open(ruta)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", ruta, err)
	}
	defer f.Close()

	lector := csv.NewReader(f)
	registros, err := lector.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", ruta, err)
	}
	if len(registros) == 0 {
		return nil, fmt.Errorf("leer %s: el archivo no tiene encabezado", ruta)
	}

	encabezado := registros[0]
	t := tabla.Nueva(encabezado...)
	for i, registro := range registros[1:] {
		if len(registro) != len(encabezado) {
			return nil, fmt.Errorf("leer %s: fila %d tiene %d columnas, se esperaban %d", ruta, i+2, len(registro), len(encabezado))
		}
		fila := tabla.Fila{}
		for j, columna := range encabezado {
			fila[columna] = registro[j]
		}
		t.AgregarFila(fila)
	}

	return t, nil
}

// Escribir escribe la tabla como CSV, con las columnas en su orden.
func Escribir(ruta string, t *tabla.Tabla) error {
	f, err := os.Create(ruta)
	if err != nil {
		return fmt.Errorf("crear %s: %w", ruta, err)
	}
	defer f.Close()

	escritor := csv.NewWriter(f)
	if err := escritor.Write(t.Columnas); err != nil {
		return fmt.Errorf("escribir %s: %w", ruta, err)
	}
	for _, fila := range t.Filas {
		registro := make([]string, len(t.Columnas))
		for i, columna := range t.Columnas {
			registro[i] = fila[columna]
		}
		if err := escritor.Write(registro); err != nil {
			return fmt.Errorf("escribir %s: %w", ruta, err)
		}
	}
	escritor.Flush()
	if err := escritor.Error(); err != nil {
		return fmt.Errorf("escribir %s: %w", ruta, err)
	}
	return nil
}
