package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cruce-sap/internal/application/dto"
	"github.com/jhoicas/cruce-sap/internal/domain"
	"github.com/jhoicas/cruce-sap/internal/domain/cruce"
	"github.com/jhoicas/cruce-sap/internal/domain/entity"
	"github.com/jhoicas/cruce-sap/internal/domain/tabla"
	"github.com/jhoicas/cruce-sap/pkg/logger"
)

// Columnas requeridas en cada tabla de entrada. Si falta alguna, la corrida
// aborta antes de tocar cualquier estado.
var (
	columnasDescargasPlanillas = []string{
		cruce.ColItem,
		cruce.ColMaterial,
		cruce.ColDescripcion,
		cruce.ColCodigoObra,
		cruce.ColPlanilla,
		cruce.ColCantidad,
	}
	columnasExistencias = []string{
		cruce.ColItem,
		cruce.ColStockSAP,
	}
)

// CrucePlanillasUseCase corrida del cruce de planillas contra existencias SAP.
type CrucePlanillasUseCase struct {
	log *logger.Logger
}

// NewCrucePlanillasUseCase construye el caso de uso.
func NewCrucePlanillasUseCase(log *logger.Logger) *CrucePlanillasUseCase {
	return &CrucePlanillasUseCase{log: log}
}

// Ejecutar valida el esquema, coerce cantidades, corre el motor de cruce y
// arma la tabla final con su resumen. Transformación de un solo paso: nada de
// la corrida sobrevive para la siguiente.
func (uc *CrucePlanillasUseCase) Ejecutar(in dto.CrucePlanillasRequest) (*dto.CruceResponse, error) {
	idCorrida := uuid.New().String()

	if err := validarColumnas("descargas", &in.Descargas, columnasDescargasPlanillas); err != nil {
		return nil, err
	}
	if err := validarColumnas("existencias", &in.Existencias, columnasExistencias); err != nil {
		return nil, err
	}

	coerciones := 0

	lineas := make([]entity.LineaPlanilla, 0, in.Descargas.NumFilas())
	for _, fila := range in.Descargas.Filas {
		cantidad, ok := tabla.ACantidad(fila.Valor(cruce.ColCantidad))
		if !ok {
			coerciones++
		}
		lineas = append(lineas, entity.LineaPlanilla{
			Item:        fila.Valor(cruce.ColItem),
			Material:    fila.Valor(cruce.ColMaterial),
			Descripcion: fila.Valor(cruce.ColDescripcion),
			CodigoObra:  fila.Valor(cruce.ColCodigoObra),
			Planilla:    fila.Valor(cruce.ColPlanilla),
			Cantidad:    cantidad,
		})
	}

	existencias := make(map[string]entity.ExistenciaSAP, in.Existencias.NumFilas())
	for _, fila := range in.Existencias.Filas {
		stock, ok := tabla.ANumero(fila.Valor(cruce.ColStockSAP))
		if !ok {
			coerciones++
		}
		item := fila.Valor(cruce.ColItem)
		existencias[item] = entity.ExistenciaSAP{
			Item:        item,
			Descripcion: fila.Valor(cruce.ColDescripcionSAP),
			Stock:       stock,
		}
	}

	segmentos := cruce.CruzarPlanillas(lineas, existencias)
	resultado, err := cruce.TablaResultadoPlanillas(segmentos)
	if err != nil {
		return nil, err
	}

	resumen := resumirPlanillas(idCorrida, segmentos, coerciones)
	uc.log.Info().
		Str("id_corrida", idCorrida).
		Int("lineas", len(lineas)).
		Int("items_existencia", len(existencias)).
		Int("filas_resultado", resumen.TotalFilas).
		Msg("cruce de planillas completado")
	if coerciones > 0 {
		uc.log.Warn().
			Str("id_corrida", idCorrida).
			Int("coerciones", coerciones).
			Msg("valores numéricos inválidos coercidos a 0")
	}

	return &dto.CruceResponse{Resultado: *resultado, Resumen: resumen}, nil
}

// resumirPlanillas calcula las métricas del panel de resultados.
func resumirPlanillas(idCorrida string, segmentos []entity.SegmentoCruce, coerciones int) dto.ResumenCruce {
	sumaDiferencia := decimal.Zero
	si, no := 0, 0
	for _, s := range segmentos {
		sumaDiferencia = sumaDiferencia.Add(s.Diferencia)
		if s.Descargable {
			si++
		} else {
			no++
		}
	}
	return dto.ResumenCruce{
		IDCorrida:      idCorrida,
		TotalFilas:     len(segmentos),
		SumaDiferencia: sumaDiferencia.String(),
		DescargablesSi: si,
		DescargablesNo: no,
		Coerciones:     coerciones,
	}
}

// validarColumnas verifica que la tabla tenga todas las columnas requeridas.
func validarColumnas(nombreTabla string, t *tabla.Tabla, requeridas []string) error {
	for _, columna := range requeridas {
		if !t.TieneColumna(columna) {
			return domain.NuevaColumnaFaltante(nombreTabla, columna)
		}
	}
	return nil
}
