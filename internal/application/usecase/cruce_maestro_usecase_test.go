package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cruce-sap/internal/application/dto"
	"github.com/jhoicas/cruce-sap/internal/application/usecase"
	"github.com/jhoicas/cruce-sap/internal/domain"
	"github.com/jhoicas/cruce-sap/internal/domain/tabla"
	"github.com/jhoicas/cruce-sap/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const obsDefault = "PLANILLA DESCARGUE MATERIAL"

func tablaMaestro(filas ...tabla.Fila) tabla.Tabla {
	t := tabla.Nueva("CODIGO OBRA SGT", "Item", "SALDO", "FECHA DESCAR SGT", "BODEGA")
	for _, f := range filas {
		t.AgregarFila(f)
	}
	return *t
}

func tablaDinamica(filas ...tabla.Fila) tabla.Tabla {
	t := tabla.Nueva("CODIGO OBRA SGT", "Item", "Planilla Cantidad", "Descargable")
	for _, f := range filas {
		t.AgregarFila(f)
	}
	return *t
}

func filaMaestro(obra, item, saldo string) tabla.Fila {
	return tabla.Fila{
		"CODIGO OBRA SGT":  obra,
		"Item":             item,
		"SALDO":            saldo,
		"FECHA DESCAR SGT": "27/05/2025",
		"BODEGA":           "CENTRAL",
	}
}

func filaDinamica(obra, item, cantidad, bandera string) tabla.Fila {
	return tabla.Fila{
		"CODIGO OBRA SGT":   obra,
		"Item":              item,
		"Planilla Cantidad": cantidad,
		"Descargable":       bandera,
	}
}

func requestMaestro(maestro, descargas tabla.Tabla) dto.CruceMaestroRequest {
	return dto.CruceMaestroRequest{
		Maestro:      maestro,
		Descargas:    descargas,
		NuevaObra:    "206012025020002",
		NuevoTrabajo: "3",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cruce contra maestro
// ──────────────────────────────────────────────────────────────────────────────

func TestCruceMaestro_CorridaCompleta(t *testing.T) {
	uc := usecase.NewCruceMaestroUseCase(logger.Nop(), obsDefault)

	out, err := uc.Ejecutar(requestMaestro(
		tablaMaestro(
			filaMaestro("WO1", "5", "20"),
			filaMaestro("WO2", "9", "15"),
		),
		tablaDinamica(filaDinamica("WO1", "5", "20", "SI")),
	))
	require.NoError(t, err)

	require.Equal(t, 2, out.Resultado.NumFilas())

	cruzada := out.Resultado.Filas[0]
	assert.Equal(t, "20", cruzada.Valor("Cant Desc."))
	assert.Equal(t, "SI", cruzada.Valor("CRUZADO"))
	assert.Equal(t, "0", cruzada.Valor("SALDO"))
	assert.Equal(t, obsDefault, cruzada.Valor("OBSERVACION"), "sin observación en la petición se usa la default")
	assert.Equal(t, "03", cruzada.Valor("NUEVO TRABAJO"))
	assert.Equal(t, "20601202502000203-5", cruzada.Valor("OBRA - TRAB - ITEM"))
	assert.Equal(t, "CENTRAL", cruzada.Valor("BODEGA"))
	assert.Equal(t, "27/05/2025", cruzada.Valor("FECHA DESCAR SGT"))

	remanente := out.Resultado.Filas[1]
	assert.Equal(t, "WO2", remanente.Valor("CODIGO OBRA SGT"))
	assert.Equal(t, "", remanente.Valor("Cant Desc."))
	assert.Equal(t, "", remanente.Valor("OBSERVACION"))

	assert.Equal(t, 1, out.Resumen.FilasAplicadas)
	assert.Equal(t, 1, out.Resumen.Remanentes)
	assert.Equal(t, 0, out.Resumen.SinDescarga)
}

func TestCruceMaestro_ObservacionExplicitaPrevalece(t *testing.T) {
	uc := usecase.NewCruceMaestroUseCase(logger.Nop(), obsDefault)

	req := requestMaestro(
		tablaMaestro(filaMaestro("WO1", "5", "20")),
		tablaDinamica(filaDinamica("WO1", "5", "20", "SI")),
	)
	req.Observacion = "CORRIDA MANUAL"

	out, err := uc.Ejecutar(req)
	require.NoError(t, err)
	assert.Equal(t, "CORRIDA MANUAL", out.Resultado.Filas[0].Valor("OBSERVACION"))
}

func TestCruceMaestro_ParametrosDeCorridaObligatorios(t *testing.T) {
	uc := usecase.NewCruceMaestroUseCase(logger.Nop(), obsDefault)

	req := requestMaestro(tablaMaestro(), tablaDinamica())
	req.NuevaObra = "  "
	_, err := uc.Ejecutar(req)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	req = requestMaestro(tablaMaestro(), tablaDinamica())
	req.NuevoTrabajo = ""
	_, err = uc.Ejecutar(req)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCruceMaestro_ColumnaFaltanteAbortaConNombre(t *testing.T) {
	uc := usecase.NewCruceMaestroUseCase(logger.Nop(), obsDefault)

	sinSaldo := tabla.Nueva("CODIGO OBRA SGT", "Item")
	_, err := uc.Ejecutar(requestMaestro(*sinSaldo, tablaDinamica()))

	var faltante *domain.ColumnaFaltanteError
	require.ErrorAs(t, err, &faltante)
	assert.Equal(t, "maestro", faltante.Tabla)
	assert.Equal(t, "SALDO", faltante.Columna)
}

// Filas del maestro sin código de obra no entran a la corrida ni al resultado.
func TestCruceMaestro_DescartaFilasSinCodigoObra(t *testing.T) {
	uc := usecase.NewCruceMaestroUseCase(logger.Nop(), obsDefault)

	out, err := uc.Ejecutar(requestMaestro(
		tablaMaestro(
			filaMaestro("WO1", "5", "20"),
			filaMaestro("  ", "6", "10"),
		),
		tablaDinamica(),
	))
	require.NoError(t, err)

	assert.Equal(t, 1, out.Resultado.NumFilas())
	assert.Equal(t, 1, out.Resumen.Remanentes)
}

func TestCruceMaestro_SaldoInsuficienteDejaDosFilas(t *testing.T) {
	uc := usecase.NewCruceMaestroUseCase(logger.Nop(), obsDefault)

	out, err := uc.Ejecutar(requestMaestro(
		tablaMaestro(filaMaestro("WO1", "5", "5")),
		tablaDinamica(filaDinamica("WO1", "5", "8", "SI")),
	))
	require.NoError(t, err)

	require.Equal(t, 2, out.Resultado.NumFilas())
	assert.Equal(t, "5", out.Resultado.Filas[0].Valor("Cant Desc."))
	assert.Equal(t, "SI", out.Resultado.Filas[0].Valor("CRUZADO"))
	assert.Equal(t, "3", out.Resultado.Filas[1].Valor("Cant Desc."))
	assert.Equal(t, "-3", out.Resultado.Filas[1].Valor("SALDO"))
	assert.Equal(t, "NO", out.Resultado.Filas[1].Valor("CRUZADO"))

	assert.Equal(t, 2, out.Resumen.FilasAplicadas)
	assert.Equal(t, 0, out.Resumen.Remanentes)
}

func TestCruceMaestro_CuentaCoerciones(t *testing.T) {
	uc := usecase.NewCruceMaestroUseCase(logger.Nop(), obsDefault)

	out, err := uc.Ejecutar(requestMaestro(
		tablaMaestro(filaMaestro("WO1", "5", "no numero")),
		tablaDinamica(filaDinamica("WO1", "5", "", "SI")),
	))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Resumen.Coerciones)
}
