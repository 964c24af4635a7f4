package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/cruce-sap/internal/application/dto"
	"github.com/jhoicas/cruce-sap/internal/domain"
	"github.com/jhoicas/cruce-sap/internal/domain/cruce"
	"github.com/jhoicas/cruce-sap/internal/domain/entity"
	"github.com/jhoicas/cruce-sap/internal/domain/tabla"
	"github.com/jhoicas/cruce-sap/pkg/logger"
)

var (
	columnasMaestroRequeridas = []string{
		cruce.ColCodigoObra,
		cruce.ColItem,
		cruce.ColSaldo,
	}
	columnasDescargasMaestro = []string{
		cruce.ColCodigoObra,
		cruce.ColItem,
		cruce.ColCantidad,
		cruce.ColDescargable,
	}
)

// CruceMaestroUseCase corrida del cruce del archivo dinámico de descargas
// contra el archivo maestro.
type CruceMaestroUseCase struct {
	log                *logger.Logger
	observacionDefault string
}

// NewCruceMaestroUseCase construye el caso de uso. observacionDefault se usa
// cuando la petición no trae observación.
func NewCruceMaestroUseCase(log *logger.Logger, observacionDefault string) *CruceMaestroUseCase {
	return &CruceMaestroUseCase{log: log, observacionDefault: observacionDefault}
}

// Ejecutar valida el esquema, indexa el maestro, cruza las descargas en orden
// de entrada y arma la tabla final deduplicada. El índice del maestro se
// construye desde cero en cada corrida y se consume al cruzar.
func (uc *CruceMaestroUseCase) Ejecutar(in dto.CruceMaestroRequest) (*dto.CruceResponse, error) {
	idCorrida := uuid.New().String()

	if err := validarColumnas("maestro", &in.Maestro, columnasMaestroRequeridas); err != nil {
		return nil, err
	}
	if err := validarColumnas("descargas", &in.Descargas, columnasDescargasMaestro); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.NuevaObra) == "" || strings.TrimSpace(in.NuevoTrabajo) == "" {
		return nil, domain.ErrEntradaInvalida
	}

	coerciones := 0

	registros := make([]entity.RegistroMaestro, 0, in.Maestro.NumFilas())
	for _, fila := range in.Maestro.Filas {
		// Filas sin código de obra se descartan en la carga.
		if strings.TrimSpace(fila.Valor(cruce.ColCodigoObra)) == "" {
			continue
		}
		saldo, ok := tabla.ANumero(fila.Valor(cruce.ColSaldo))
		if !ok {
			coerciones++
		}
		registros = append(registros, entity.RegistroMaestro{
			CodigoObra: fila.Valor(cruce.ColCodigoObra),
			Item:       fila.Valor(cruce.ColItem),
			Saldo:      saldo,
			Fecha:      cruce.ParsearFechaDiaPrimero(fila.Valor(cruce.ColFechaDescar)),
			Extras:     extrasMaestro(in.Maestro.Columnas, fila),
		})
	}

	descargas := make([]entity.LineaDescarga, 0, in.Descargas.NumFilas())
	for _, fila := range in.Descargas.Filas {
		cantidad, ok := tabla.ANumero(fila.Valor(cruce.ColCantidad))
		if !ok {
			coerciones++
		}
		descargas = append(descargas, entity.LineaDescarga{
			CodigoObra:  fila.Valor(cruce.ColCodigoObra),
			Item:        fila.Valor(cruce.ColItem),
			Cantidad:    cantidad,
			Descargable: fila.Valor(cruce.ColDescargable),
		})
	}

	observacion := in.Observacion
	if strings.TrimSpace(observacion) == "" {
		observacion = uc.observacionDefault
	}
	params := cruce.ParametrosCorrida{
		Observacion:  observacion,
		NuevaObra:    in.NuevaObra,
		NuevoTrabajo: in.NuevoTrabajo,
	}

	indice := cruce.NuevoIndiceMaestro(registros)
	filas := cruce.CruzarMaestro(indice, descargas, params)
	remanentes := indice.Len()

	resultado, err := cruce.TablaResultadoMaestro(in.Maestro.Columnas, filas)
	if err != nil {
		return nil, err
	}

	resumen := resumirMaestro(idCorrida, resultado.NumFilas(), filas, remanentes, coerciones)
	uc.log.Info().
		Str("id_corrida", idCorrida).
		Int("registros_maestro", len(registros)).
		Int("lineas_descarga", len(descargas)).
		Int("filas_resultado", resumen.TotalFilas).
		Int("remanentes", remanentes).
		Msg("cruce contra maestro completado")
	if coerciones > 0 {
		uc.log.Warn().
			Str("id_corrida", idCorrida).
			Int("coerciones", coerciones).
			Msg("valores numéricos inválidos coercidos a 0")
	}

	return &dto.CruceResponse{Resultado: *resultado, Resumen: resumen}, nil
}

// extrasMaestro conserva las columnas descriptivas no modeladas.
func extrasMaestro(columnas []string, fila tabla.Fila) map[string]string {
	extras := map[string]string{}
	for _, c := range columnas {
		switch c {
		case cruce.ColCodigoObra, cruce.ColItem, cruce.ColSaldo, cruce.ColFechaDescar:
			continue
		}
		extras[c] = fila.Valor(c)
	}
	return extras
}

// resumirMaestro calcula las métricas de la corrida a partir de las filas
// emitidas por el motor (antes de deduplicar) y del tamaño final de la tabla.
func resumirMaestro(idCorrida string, totalFilas int, filas []entity.FilaMaestro, remanentes, coerciones int) dto.ResumenCruce {
	aplicadas := 0
	for _, f := range filas {
		if f.CantDesc.Valid {
			aplicadas++
		}
	}
	sinDescarga := len(filas) - aplicadas - remanentes
	return dto.ResumenCruce{
		IDCorrida:      idCorrida,
		TotalFilas:     totalFilas,
		FilasAplicadas: aplicadas,
		SinDescarga:    sinDescarga,
		Remanentes:     remanentes,
		Coerciones:     coerciones,
	}
}
