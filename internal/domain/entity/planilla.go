package entity

import "github.com/shopspring/decimal"

// LineaPlanilla una solicitud de material de una planilla contra el stock de un ítem.
type LineaPlanilla struct {
	Item        string
	Material    string
	Descripcion string
	CodigoObra  string
	Planilla    string
	Cantidad    decimal.Decimal // ya coercida, nunca negativa
}

// ExistenciaSAP stock disponible de un ítem según SAP. Propiedad exclusiva del
// motor de cruce durante una corrida: el saldo se agota de forma secuencial y
// el mapa no debe reutilizarse entre corridas.
type ExistenciaSAP struct {
	Item        string
	Descripcion string
	Stock       decimal.Decimal
}

// SegmentoCruce una fila del libro resultado del cruce de planillas. Una línea
// de planilla produce uno o dos segmentos, nunca más.
type SegmentoCruce struct {
	LineaPlanilla // Cantidad es la atribuida a este segmento (puede ser parcial)

	SAPAntes    decimal.Decimal // stock antes de considerar este segmento
	Diferencia  decimal.Decimal // cantidad que no pudo cubrirse
	SAPRestante decimal.Decimal // stock después del segmento
	Descargable bool
}
