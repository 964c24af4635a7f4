package cruce

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cruce-sap/internal/domain/entity"
)

// CruzarPlanillas realiza el cruce de planillas contra el stock SAP por ítem.
// Función pura: no hay estado ambiente; las entradas de una corrida nunca se
// reutilizan en otra.
//
// Las líneas de un mismo ítem consumen un único saldo compartido en orden de
// NumeroPlanilla (empate: orden original de la tabla). Una línea que no
// alcanza a cubrirse se divide en un segmento descargable y uno faltante; un
// ítem sin registro de existencia se trata como stock cero.
func CruzarPlanillas(lineas []entity.LineaPlanilla, existencias map[string]entity.ExistenciaSAP) []entity.SegmentoCruce {
	ordenadas := make([]entity.LineaPlanilla, len(lineas))
	copy(ordenadas, lineas)
	sort.SliceStable(ordenadas, func(i, j int) bool {
		if ordenadas[i].Item != ordenadas[j].Item {
			return ordenadas[i].Item < ordenadas[j].Item
		}
		return NumeroPlanilla(ordenadas[i].Planilla) < NumeroPlanilla(ordenadas[j].Planilla)
	})

	segmentos := make([]entity.SegmentoCruce, 0, len(ordenadas))

	itemActual := ""
	enGrupo := false
	saldo := decimal.Zero
	for _, linea := range ordenadas {
		if !enGrupo || linea.Item != itemActual {
			itemActual = linea.Item
			enGrupo = true
			saldo = decimal.Zero
			if exist, ok := existencias[linea.Item]; ok {
				saldo = exist.Stock
			}
		}
		segmentos = cruzarLinea(segmentos, linea, &saldo)
	}

	return segmentos
}

// cruzarLinea aplica una línea sobre el saldo del ítem y emite uno o dos
// segmentos. El saldo es el único estado compartido entre líneas del mismo
// ítem.
func cruzarLinea(segmentos []entity.SegmentoCruce, linea entity.LineaPlanilla, saldo *decimal.Decimal) []entity.SegmentoCruce {
	antes := *saldo

	// Cantidad cero: se emite la línea sin mover el saldo, siempre marcada
	// como no descargable (regla de negocio, no un error).
	if linea.Cantidad.IsZero() {
		return append(segmentos, entity.SegmentoCruce{
			LineaPlanilla: linea,
			SAPAntes:      antes,
			Diferencia:    decimal.Zero,
			SAPRestante:   antes,
			Descargable:   false,
		})
	}

	// Stock suficiente: un solo segmento por la cantidad completa.
	if saldo.GreaterThanOrEqual(linea.Cantidad) {
		*saldo = saldo.Sub(linea.Cantidad)
		return append(segmentos, entity.SegmentoCruce{
			LineaPlanilla: linea,
			SAPAntes:      antes,
			Diferencia:    decimal.Zero,
			SAPRestante:   *saldo,
			Descargable:   true,
		})
	}

	// Stock insuficiente: parte descargable (si queda algo) + parte faltante.
	usado := decimal.Zero
	if saldo.IsPositive() {
		usado = antes
		parcial := linea
		parcial.Cantidad = usado
		segmentos = append(segmentos, entity.SegmentoCruce{
			LineaPlanilla: parcial,
			SAPAntes:      antes,
			Diferencia:    decimal.Zero,
			SAPRestante:   decimal.Zero,
			Descargable:   true,
		})
	}

	faltante := linea.Cantidad.Sub(usado)
	resto := linea
	resto.Cantidad = faltante
	segmentos = append(segmentos, entity.SegmentoCruce{
		LineaPlanilla: resto,
		SAPAntes:      decimal.Zero,
		Diferencia:    faltante,
		SAPRestante:   decimal.Zero,
		Descargable:   false,
	})

	// El stock del ítem se agota para las líneas siguientes.
	*saldo = decimal.Zero
	return segmentos
}
