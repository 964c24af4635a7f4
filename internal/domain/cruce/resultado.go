package cruce

import (
	"strings"

	"github.com/jhoicas/cruce-sap/internal/domain"
	"github.com/jhoicas/cruce-sap/internal/domain/entity"
	"github.com/jhoicas/cruce-sap/internal/domain/tabla"
)

// ColumnasResultadoPlanillas orden final y estable de columnas del resultado
// del cruce de planillas.
var ColumnasResultadoPlanillas = []string{
	ColItem,
	ColMaterial,
	ColDescripcion,
	ColCodigoObra,
	ColPlanilla,
	ColCantidad,
	ColSAPAntes,
	ColDiferencia,
	ColSAPRestante,
	ColDescargable,
}

// TablaResultadoPlanillas arma la tabla final del cruce de planillas: columnas
// en orden documentado y bandera Descargable como "Si"/"No". Sin lógica de
// negocio: los segmentos llegan ya resueltos.
func TablaResultadoPlanillas(segmentos []entity.SegmentoCruce) (*tabla.Tabla, error) {
	t := tabla.Nueva(ColumnasResultadoPlanillas...)
	for _, s := range segmentos {
		descargable := "No"
		if s.Descargable {
			descargable = "Si"
		}
		t.AgregarFila(tabla.Fila{
			ColItem:        s.Item,
			ColMaterial:    s.Material,
			ColDescripcion: s.Descripcion,
			ColCodigoObra:  s.CodigoObra,
			ColPlanilla:    s.Planilla,
			ColCantidad:    s.Cantidad.String(),
			ColSAPAntes:    s.SAPAntes.String(),
			ColDiferencia:  s.Diferencia.String(),
			ColSAPRestante: s.SAPRestante.String(),
			ColDescargable: descargable,
		})
	}
	return t, nil
}

// columnasResultadoMaestro columnas del maestro en su orden original, más las
// columnas que agrega la corrida.
func columnasResultadoMaestro(columnasMaestro []string) []string {
	agregadas := []string{ColCantDesc, ColCruzado, ColObservacion, ColNuevaObra, ColNuevoTrabajo, ColObraTrabItem}
	columnas := make([]string, 0, len(columnasMaestro)+len(agregadas))
	columnas = append(columnas, columnasMaestro...)
	for _, c := range agregadas {
		repetida := false
		for _, existente := range columnasMaestro {
			if existente == c {
				repetida = true
				break
			}
		}
		if !repetida {
			columnas = append(columnas, c)
		}
	}
	return columnas
}

// TablaResultadoMaestro arma la tabla final del cruce contra maestro:
// conserva todas las columnas del maestro en su orden, agrega las columnas de
// la corrida, elimina filas duplicadas exactas, descarta filas sin código de
// obra, re-rellena NUEVO TRABAJO (idempotente) y formatea la fecha como
// dd/mm/yyyy (vacía si no fue parseable).
func TablaResultadoMaestro(columnasMaestro []string, filas []entity.FilaMaestro) (*tabla.Tabla, error) {
	if !contiene(columnasMaestro, ColCodigoObra) {
		return nil, domain.NuevaColumnaFaltante("maestro", ColCodigoObra)
	}

	columnas := columnasResultadoMaestro(columnasMaestro)
	t := tabla.Nueva(columnas...)
	vistas := make(map[string]struct{}, len(filas))

	for _, f := range filas {
		if strings.TrimSpace(f.CodigoObra) == "" {
			continue
		}
		fila := filaMaestroASalida(columnasMaestro, f)

		huella := huellaFila(columnas, fila)
		if _, dup := vistas[huella]; dup {
			continue
		}
		vistas[huella] = struct{}{}
		t.AgregarFila(fila)
	}

	return t, nil
}

// filaMaestroASalida proyecta una FilaMaestro a celdas de texto.
func filaMaestroASalida(columnasMaestro []string, f entity.FilaMaestro) tabla.Fila {
	fila := tabla.Fila{}
	for _, c := range columnasMaestro {
		switch c {
		case ColCodigoObra:
			fila[c] = f.CodigoObra
		case ColItem:
			fila[c] = f.Item
		case ColSaldo:
			fila[c] = f.Saldo.String()
		case ColFechaDescar:
			fila[c] = FormatearFecha(f.Fecha)
		default:
			fila[c] = f.Extras[c]
		}
	}

	if f.CantDesc.Valid {
		fila[ColCantDesc] = f.CantDesc.Decimal.String()
	} else {
		fila[ColCantDesc] = ""
	}
	fila[ColCruzado] = f.Cruzado
	fila[ColObservacion] = f.Observacion
	fila[ColNuevaObra] = f.NuevaObra
	if f.NuevoTrabajo != "" {
		fila[ColNuevoTrabajo] = RellenarTrabajo(f.NuevoTrabajo)
	} else {
		fila[ColNuevoTrabajo] = ""
	}
	fila[ColObraTrabItem] = f.ObraTrabItem

	return fila
}

// huellaFila serializa la fila en orden de columnas para detectar duplicados
// exactos.
func huellaFila(columnas []string, fila tabla.Fila) string {
	valores := make([]string, len(columnas))
	for i, c := range columnas {
		valores[i] = fila[c]
	}
	return strings.Join(valores, "\x1f")
}

func contiene(columnas []string, nombre string) bool {
	for _, c := range columnas {
		if c == nombre {
			return true
		}
	}
	return false
}
