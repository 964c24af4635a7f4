package cruce

// Nombres de columna estándar que la lógica de negocio espera. El mapeo desde
// los nombres reales del archivo del usuario ocurre aguas arriba; aquí las
// tablas ya llegan estandarizadas.
const (
	ColItem        = "Item"
	ColMaterial    = "MATERIAL"
	ColDescripcion = "Descripcion Material"
	ColCodigoObra  = "CODIGO OBRA SGT"
	ColPlanilla    = "Planilla"
	ColCantidad    = "Planilla Cantidad"

	// Tabla de existencias SAP
	ColDescripcionSAP = "Descripcion_SAP"
	ColStockSAP       = "SAP"

	// Columnas de salida del cruce de planillas
	ColSAPAntes    = "SAP Antes"
	ColDiferencia  = "Diferencia"
	ColSAPRestante = "SAP Restante"
	ColDescargable = "Descargable"

	// Maestro y su resultado
	ColSaldo        = "SALDO"
	ColFechaDescar  = "FECHA DESCAR SGT"
	ColCantDesc     = "Cant Desc."
	ColCruzado      = "CRUZADO"
	ColObservacion  = "OBSERVACION"
	ColNuevaObra    = "NUEVA OBRA"
	ColNuevoTrabajo = "NUEVO TRABAJO"
	ColObraTrabItem = "OBRA - TRAB - ITEM"
)
