package cruce_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cruce-sap/internal/domain/cruce"
	"github.com/jhoicas/cruce-sap/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func linea(item, planilla string, cantidad int64) entity.LineaPlanilla {
	return entity.LineaPlanilla{
		Item:     item,
		Planilla: planilla,
		Cantidad: decimal.NewFromInt(cantidad),
	}
}

func existencia(item string, stock int64) entity.ExistenciaSAP {
	return entity.ExistenciaSAP{Item: item, Stock: decimal.NewFromInt(stock)}
}

func existencias(entradas ...entity.ExistenciaSAP) map[string]entity.ExistenciaSAP {
	m := make(map[string]entity.ExistenciaSAP, len(entradas))
	for _, e := range entradas {
		m[e.Item] = e
	}
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de referencia
// ──────────────────────────────────────────────────────────────────────────────

// Stock 10; planilla 1 pide 4 y planilla 2 pide 9: la segunda se divide en
// parte descargable (6) y faltante (3).
func TestCruzarPlanillas_DivideLineaCuandoStockInsuficiente(t *testing.T) {
	segmentos := cruce.CruzarPlanillas(
		[]entity.LineaPlanilla{
			linea("X", "1-Planta A", 4),
			linea("X", "2-Planta B", 9),
		},
		existencias(existencia("X", 10)),
	)

	require.Len(t, segmentos, 3, "la segunda planilla debe dividirse en dos segmentos")

	assert.Equal(t, "4", segmentos[0].Cantidad.String())
	assert.Equal(t, "10", segmentos[0].SAPAntes.String())
	assert.Equal(t, "6", segmentos[0].SAPRestante.String())
	assert.True(t, segmentos[0].Descargable)

	assert.Equal(t, "6", segmentos[1].Cantidad.String(), "la parte descargable lleva exactamente el saldo")
	assert.Equal(t, "6", segmentos[1].SAPAntes.String())
	assert.Equal(t, "0", segmentos[1].SAPRestante.String())
	assert.True(t, segmentos[1].Descargable)

	assert.Equal(t, "3", segmentos[2].Cantidad.String(), "la parte faltante lleva lo que no se cubrió")
	assert.Equal(t, "0", segmentos[2].SAPAntes.String())
	assert.Equal(t, "3", segmentos[2].Diferencia.String())
	assert.Equal(t, "0", segmentos[2].SAPRestante.String())
	assert.False(t, segmentos[2].Descargable)
}

// Un ítem sin registro de existencia se trata como stock cero.
func TestCruzarPlanillas_ItemSinExistenciaEsStockCero(t *testing.T) {
	segmentos := cruce.CruzarPlanillas(
		[]entity.LineaPlanilla{linea("Y", "1-Planta", 5)},
		existencias(),
	)

	require.Len(t, segmentos, 1)
	assert.Equal(t, "5", segmentos[0].Cantidad.String())
	assert.Equal(t, "0", segmentos[0].SAPAntes.String())
	assert.Equal(t, "5", segmentos[0].Diferencia.String())
	assert.Equal(t, "0", segmentos[0].SAPRestante.String())
	assert.False(t, segmentos[0].Descargable)
}

// Cantidad cero: un único segmento no descargable con el saldo intacto
// (regla de negocio, no un error).
func TestCruzarPlanillas_CantidadCeroNoMueveSaldo(t *testing.T) {
	segmentos := cruce.CruzarPlanillas(
		[]entity.LineaPlanilla{
			linea("X", "1-Planta", 0),
			linea("X", "2-Planta", 3),
		},
		existencias(existencia("X", 8)),
	)

	require.Len(t, segmentos, 2)

	assert.Equal(t, "0", segmentos[0].Cantidad.String())
	assert.Equal(t, "8", segmentos[0].SAPAntes.String())
	assert.Equal(t, "8", segmentos[0].SAPRestante.String(), "el saldo no cambia con cantidad cero")
	assert.Equal(t, "0", segmentos[0].Diferencia.String())
	assert.False(t, segmentos[0].Descargable, "cantidad cero siempre se marca no descargable")

	// La siguiente línea ve el saldo completo
	assert.Equal(t, "8", segmentos[1].SAPAntes.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de consumo
// ──────────────────────────────────────────────────────────────────────────────

// Las planillas se consumen en orden de número, no en orden de entrada: el
// saldo final de la planilla 2 es el saldo inicial de la planilla 5.
func TestCruzarPlanillas_OrdenPorNumeroDePlanilla(t *testing.T) {
	segmentos := cruce.CruzarPlanillas(
		[]entity.LineaPlanilla{
			linea("X", "5-Planta B", 4),
			linea("X", "2-Planta A", 3),
		},
		existencias(existencia("X", 10)),
	)

	require.Len(t, segmentos, 2)
	assert.Equal(t, "2-Planta A", segmentos[0].Planilla, "la planilla 2 se consume primero")
	assert.Equal(t, "5-Planta B", segmentos[1].Planilla)
	assert.Equal(t, segmentos[0].SAPRestante.String(), segmentos[1].SAPAntes.String(),
		"el saldo encadena de una planilla a la siguiente")
}

// Planillas sin número van después de todas las numeradas del mismo ítem.
func TestCruzarPlanillas_SinNumeroConsumeAlFinal(t *testing.T) {
	segmentos := cruce.CruzarPlanillas(
		[]entity.LineaPlanilla{
			linea("X", "Planta sin número", 5),
			linea("X", "9-Planta", 5),
		},
		existencias(existencia("X", 5)),
	)

	require.Len(t, segmentos, 3)
	assert.Equal(t, "9-Planta", segmentos[0].Planilla)
	assert.True(t, segmentos[0].Descargable)
	// La planilla sin número llega con el stock agotado
	assert.Equal(t, "Planta sin número", segmentos[1].Planilla)
	assert.False(t, segmentos[1].Descargable)
}

// Con el mismo número de planilla se conserva el orden original de la tabla.
func TestCruzarPlanillas_EmpateConservaOrdenDeEntrada(t *testing.T) {
	segmentos := cruce.CruzarPlanillas(
		[]entity.LineaPlanilla{
			linea("X", "1-Primera", 2),
			linea("X", "1-Segunda", 2),
		},
		existencias(existencia("X", 10)),
	)

	require.Len(t, segmentos, 2)
	assert.Equal(t, "1-Primera", segmentos[0].Planilla)
	assert.Equal(t, "1-Segunda", segmentos[1].Planilla)
}

// Los ítems no se afectan entre sí: cada uno tiene su propio saldo.
func TestCruzarPlanillas_ItemsIndependientes(t *testing.T) {
	segmentos := cruce.CruzarPlanillas(
		[]entity.LineaPlanilla{
			linea("B", "1-Planta", 4),
			linea("A", "1-Planta", 4),
		},
		existencias(existencia("A", 4), existencia("B", 1)),
	)

	require.Len(t, segmentos, 3)
	// Orden por ítem: A primero
	assert.Equal(t, "A", segmentos[0].Item)
	assert.True(t, segmentos[0].Descargable)
	assert.Equal(t, "B", segmentos[1].Item)
	assert.Equal(t, "1", segmentos[1].Cantidad.String())
	assert.Equal(t, "3", segmentos[2].Diferencia.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades sobre un conjunto mixto
// ──────────────────────────────────────────────────────────────────────────────

func datosMixtos() ([]entity.LineaPlanilla, map[string]entity.ExistenciaSAP) {
	lineas := []entity.LineaPlanilla{
		linea("M1", "3-Planta A", 7),
		linea("M1", "1-Planta B", 4),
		linea("M1", "2-Planta C", 0),
		linea("M2", "1-Planta A", 12),
		linea("M2", "Sin numero", 5),
		linea("M3", "4-Planta D", 6),
	}
	return lineas, existencias(existencia("M1", 9), existencia("M2", 3))
}

// La suma de los segmentos de cada planilla es exactamente la cantidad pedida.
func TestCruzarPlanillas_ConservaCantidades(t *testing.T) {
	lineas, stock := datosMixtos()
	segmentos := cruce.CruzarPlanillas(lineas, stock)

	sumas := map[string]decimal.Decimal{}
	for _, s := range segmentos {
		clave := s.Item + "|" + s.Planilla
		sumas[clave] = sumas[clave].Add(s.Cantidad)
	}
	for _, l := range lineas {
		clave := l.Item + "|" + l.Planilla
		assert.True(t, sumas[clave].Equal(l.Cantidad),
			"la planilla %s debe conservar su cantidad: pedida %s, suma %s", clave, l.Cantidad, sumas[clave])
	}
}

// Ninguna línea produce más de 2 segmentos y el saldo nunca queda negativo.
func TestCruzarPlanillas_MaximoDosSegmentosYSaldoNoNegativo(t *testing.T) {
	lineas, stock := datosMixtos()
	segmentos := cruce.CruzarPlanillas(lineas, stock)

	porPlanilla := map[string]int{}
	for _, s := range segmentos {
		porPlanilla[s.Item+"|"+s.Planilla]++
		assert.False(t, s.SAPRestante.IsNegative(), "el saldo restante nunca es negativo")
		assert.False(t, s.SAPAntes.IsNegative())
	}
	for clave, n := range porPlanilla {
		assert.LessOrEqual(t, n, 2, "la planilla %s produjo %d segmentos", clave, n)
	}
}
