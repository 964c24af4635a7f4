package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/cruce-sap/internal/application/dto"
	"github.com/jhoicas/cruce-sap/internal/application/usecase"
	infracsv "github.com/jhoicas/cruce-sap/internal/infrastructure/csv"
)

var (
	planillasDescargas   string
	planillasExistencias string
	planillasSalida      string
)

var planillasCmd = &cobra.Command{
	Use:   "planillas",
	Short: "Cruce de planillas contra existencias SAP (con split)",
	Long: `Cruza las planillas de descarga contra el stock SAP por ítem.

Las planillas de un mismo ítem consumen el stock en orden de número de
planilla; las líneas que no alcanzan a cubrirse se dividen en una parte
descargable y una faltante.

Ejemplo:
  cruce planillas --descargas descargas.csv --existencias existencia.csv --salida resultado.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := cargarEntorno()
		if err != nil {
			return err
		}

		descargas, err := infracsv.Leer(planillasDescargas)
		if err != nil {
			return err
		}
		existencias, err := infracsv.Leer(planillasExistencias)
		if err != nil {
			return err
		}

		uc := usecase.NewCrucePlanillasUseCase(log)
		out, err := uc.Ejecutar(dto.CrucePlanillasRequest{
			Descargas:   *descargas,
			Existencias: *existencias,
		})
		if err != nil {
			return err
		}

		if err := infracsv.Escribir(planillasSalida, &out.Resultado); err != nil {
			return err
		}

		log.Info().
			Str("salida", planillasSalida).
			Int("filas", out.Resumen.TotalFilas).
			Str("suma_diferencia", out.Resumen.SumaDiferencia).
			Msg("archivo generado")
		return nil
	},
}

func init() {
	planillasCmd.Flags().StringVar(&planillasDescargas, "descargas", "", "CSV de material por descargar (requerido)")
	planillasCmd.Flags().StringVar(&planillasExistencias, "existencias", "", "CSV de existencia SAP (requerido)")
	planillasCmd.Flags().StringVar(&planillasSalida, "salida", "cruce_planillas.csv", "CSV de salida")
	_ = planillasCmd.MarkFlagRequired("descargas")
	_ = planillasCmd.MarkFlagRequired("existencias")

	rootCmd.AddCommand(planillasCmd)
}
