package dto

import "github.com/jhoicas/cruce-sap/internal/domain/tabla"

// CrucePlanillasRequest tablas estandarizadas para el cruce de planillas
// contra existencias SAP. El mapeo de columnas ya ocurrió aguas arriba.
type CrucePlanillasRequest struct {
	Descargas   tabla.Tabla `json:"descargas"`
	Existencias tabla.Tabla `json:"existencias"`
}

// CruceMaestroRequest tablas y parámetros de corrida para el cruce contra el
// archivo maestro.
type CruceMaestroRequest struct {
	Maestro      tabla.Tabla `json:"maestro"`
	Descargas    tabla.Tabla `json:"descargas"`
	Observacion  string      `json:"observacion"`
	NuevaObra    string      `json:"nueva_obra"`
	NuevoTrabajo string      `json:"nuevo_trabajo"`
}

// ResumenCruce métricas de la corrida (las que mostraba el panel de
// resultados), más la señal de calidad de datos por coerciones numéricas.
type ResumenCruce struct {
	IDCorrida      string `json:"id_corrida"`
	TotalFilas     int    `json:"total_filas"`
	SumaDiferencia string `json:"suma_diferencia,omitempty"`
	DescargablesSi int    `json:"descargables_si,omitempty"`
	DescargablesNo int    `json:"descargables_no,omitempty"`
	FilasAplicadas int    `json:"filas_aplicadas,omitempty"`
	SinDescarga    int    `json:"sin_descarga,omitempty"`
	Remanentes     int    `json:"remanentes,omitempty"`
	Coerciones     int    `json:"coerciones_numericas,omitempty"`
}

// CruceResponse resultado de una corrida: la tabla final y su resumen.
type CruceResponse struct {
	Resultado tabla.Tabla  `json:"resultado"`
	Resumen   ResumenCruce `json:"resumen"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
