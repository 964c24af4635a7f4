package cruce

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cruce-sap/internal/domain/entity"
)

// IndiceMaestro índice consumible (código de obra, ítem) -> registro maestro.
// Se construye una vez por corrida; Extraer saca el registro del índice, de
// modo que cruzar dos veces la misma clave es estructuralmente imposible.
// No debe reutilizarse entre corridas.
type IndiceMaestro struct {
	registros map[entity.ClaveCruce]*entity.RegistroMaestro
	orden     []entity.ClaveCruce
}

// NuevoIndiceMaestro indexa los registros del maestro. Ante claves repetidas
// gana el último registro, conservando la posición de la primera aparición.
func NuevoIndiceMaestro(registros []entity.RegistroMaestro) *IndiceMaestro {
	idx := &IndiceMaestro{
		registros: make(map[entity.ClaveCruce]*entity.RegistroMaestro, len(registros)),
	}
	for i := range registros {
		r := registros[i]
		clave := r.Clave()
		if _, existe := idx.registros[clave]; !existe {
			idx.orden = append(idx.orden, clave)
		}
		idx.registros[clave] = &r
	}
	return idx
}

// Extraer devuelve y consume el registro de la clave, si sigue en el índice.
func (idx *IndiceMaestro) Extraer(clave entity.ClaveCruce) (*entity.RegistroMaestro, bool) {
	r, ok := idx.registros[clave]
	if !ok {
		return nil, false
	}
	delete(idx.registros, clave)
	return r, true
}

// Restantes devuelve los registros nunca cruzados, en orden de carga.
func (idx *IndiceMaestro) Restantes() []entity.RegistroMaestro {
	restantes := make([]entity.RegistroMaestro, 0, len(idx.registros))
	for _, clave := range idx.orden {
		if r, ok := idx.registros[clave]; ok {
			restantes = append(restantes, *r)
		}
	}
	return restantes
}

// Len cantidad de registros aún no consumidos.
func (idx *IndiceMaestro) Len() int {
	return len(idx.registros)
}

// ParametrosCorrida metadatos que el invocador fija para toda la corrida del
// cruce contra maestro; no se infieren de los datos.
type ParametrosCorrida struct {
	Observacion  string
	NuevaObra    string
	NuevoTrabajo string // se rellena a 2 dígitos
}

// RellenarTrabajo rellena el número de trabajo con ceros a exactamente 2
// dígitos. Idempotente: aplicarlo dos veces da el mismo resultado.
func RellenarTrabajo(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

// CruzarMaestro cruza las líneas de descarga contra el índice del maestro, en
// el orden de entrada y sin reordenar. Cada línea consume a lo sumo un
// registro del maestro (una clave sin registro se omite en silencio); un
// déficit parcial no reintenta contra otro registro del mismo ítem. Al final
// se anexan los registros del maestro nunca cruzados, sin modificar.
func CruzarMaestro(indice *IndiceMaestro, descargas []entity.LineaDescarga, params ParametrosCorrida) []entity.FilaMaestro {
	trabajo := RellenarTrabajo(params.NuevoTrabajo)
	filas := make([]entity.FilaMaestro, 0, indice.Len())

	for _, linea := range descargas {
		registro, ok := indice.Extraer(linea.Clave())
		if !ok {
			continue
		}

		if !EsAfirmativa(linea.Descargable) {
			// Sin descarga: el registro se conserva intacto, solo con los
			// metadatos de la corrida.
			filas = append(filas, estampar(entity.FilaMaestro{RegistroMaestro: *registro}, params, trabajo))
			continue
		}

		saldo := registro.Saldo
		if saldo.GreaterThanOrEqual(linea.Cantidad) {
			// Saldo suficiente. CRUZADO solo es "SI" si quedó exactamente en
			// cero; con remanente positivo la fila queda aplicada pero abierta.
			nuevo := saldo.Sub(linea.Cantidad)
			cruzado := "NO"
			if nuevo.IsZero() {
				cruzado = "SI"
			}
			fila := entity.FilaMaestro{
				RegistroMaestro: *registro,
				CantDesc:        decimal.NullDecimal{Decimal: linea.Cantidad, Valid: true},
				Cruzado:         cruzado,
			}
			fila.Saldo = nuevo
			filas = append(filas, estampar(fila, params, trabajo))
			continue
		}

		// Saldo insuficiente: fila usada + fila de déficit. El saldo negativo
		// es intencional: registra el faltante pendiente.
		usado := saldo
		if usado.IsNegative() {
			usado = decimal.Zero
		}
		deficit := linea.Cantidad.Sub(usado)

		usada := entity.FilaMaestro{
			RegistroMaestro: *registro,
			CantDesc:        decimal.NullDecimal{Decimal: usado, Valid: true},
			Cruzado:         "SI",
		}
		usada.Saldo = decimal.Zero

		faltante := entity.FilaMaestro{
			RegistroMaestro: *registro,
			CantDesc:        decimal.NullDecimal{Decimal: deficit, Valid: true},
			Cruzado:         "NO",
		}
		faltante.Saldo = deficit.Neg()

		filas = append(filas, estampar(usada, params, trabajo), estampar(faltante, params, trabajo))
	}

	// Registros del maestro que ninguna descarga cruzó: pasan sin cambios y
	// sin metadatos de corrida.
	for _, restante := range indice.Restantes() {
		filas = append(filas, entity.FilaMaestro{RegistroMaestro: restante})
	}

	return filas
}

// estampar fija los metadatos de la corrida y el código compuesto
// {nueva obra}{nuevo trabajo}-{item} sobre una fila emitida.
func estampar(fila entity.FilaMaestro, params ParametrosCorrida, trabajo string) entity.FilaMaestro {
	fila.Observacion = params.Observacion
	fila.NuevaObra = params.NuevaObra
	fila.NuevoTrabajo = trabajo
	fila.ObraTrabItem = params.NuevaObra + trabajo + "-" + fila.Item
	return fila
}
