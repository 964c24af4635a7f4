package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/cruce-sap/internal/application/dto"
	"github.com/jhoicas/cruce-sap/internal/application/usecase"
	infracsv "github.com/jhoicas/cruce-sap/internal/infrastructure/csv"
)

var (
	maestroArchivo   string
	maestroDescargas string
	maestroSalida    string
	maestroObs       string
	maestroObra      string
	maestroTrabajo   string
)

var maestroCmd = &cobra.Command{
	Use:   "maestro",
	Short: "Cruce del archivo dinámico contra el archivo maestro",
	Long: `Cruza cada línea de descarga 1:1 contra el registro del maestro con la
misma clave (código de obra, ítem). Los registros cruzados se consumen; los
nunca cruzados pasan al resultado sin cambios.

Ejemplo:
  cruce maestro --maestro maestro.csv --descargas descargas.csv \
    --nueva-obra 206012025020002 --nuevo-trabajo 3 --salida conciliacion.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := cargarEntorno()
		if err != nil {
			return err
		}

		maestro, err := infracsv.Leer(maestroArchivo)
		if err != nil {
			return err
		}
		descargas, err := infracsv.Leer(maestroDescargas)
		if err != nil {
			return err
		}

		uc := usecase.NewCruceMaestroUseCase(log, cfg.Cruce.ObservacionDefault)
		out, err := uc.Ejecutar(dto.CruceMaestroRequest{
			Maestro:      *maestro,
			Descargas:    *descargas,
			Observacion:  maestroObs,
			NuevaObra:    maestroObra,
			NuevoTrabajo: maestroTrabajo,
		})
		if err != nil {
			return err
		}

		if err := infracsv.Escribir(maestroSalida, &out.Resultado); err != nil {
			return err
		}

		log.Info().
			Str("salida", maestroSalida).
			Int("filas", out.Resumen.TotalFilas).
			Int("aplicadas", out.Resumen.FilasAplicadas).
			Int("remanentes", out.Resumen.Remanentes).
			Msg("archivo generado")
		return nil
	},
}

func init() {
	maestroCmd.Flags().StringVar(&maestroArchivo, "maestro", "", "CSV del archivo maestro (requerido)")
	maestroCmd.Flags().StringVar(&maestroDescargas, "descargas", "", "CSV del archivo dinámico de descargas (requerido)")
	maestroCmd.Flags().StringVar(&maestroSalida, "salida", "cruce_maestro.csv", "CSV de salida")
	maestroCmd.Flags().StringVar(&maestroObs, "observacion", "", "observación de la corrida (default: CRUCE_OBSERVACION_DEFAULT)")
	maestroCmd.Flags().StringVar(&maestroObra, "nueva-obra", "", "código de la nueva obra (requerido)")
	maestroCmd.Flags().StringVar(&maestroTrabajo, "nuevo-trabajo", "", "número del nuevo trabajo, se rellena a 2 dígitos (requerido)")
	_ = maestroCmd.MarkFlagRequired("maestro")
	_ = maestroCmd.MarkFlagRequired("descargas")
	_ = maestroCmd.MarkFlagRequired("nueva-obra")
	_ = maestroCmd.MarkFlagRequired("nuevo-trabajo")

	rootCmd.AddCommand(maestroCmd)
}
