// La CLI cruce corre los mismos casos de uso de la API sobre archivos CSV,
// para corridas por lote sin levantar el servidor.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cruce-sap/pkg/config"
	"github.com/jhoicas/cruce-sap/pkg/logger"
)

// rootCmd comando base; los subcomandos hacen el trabajo.
var rootCmd = &cobra.Command{
	Use:   "cruce",
	Short: "Cruce de material SAP por lote",
	Long: `Cruce de material SAP sobre archivos CSV estandarizados.

Subcomandos:
  planillas  cruce de planillas contra existencias SAP (con split)
  maestro    cruce del archivo dinámico contra el archivo maestro`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Logger de consola para reportar el error como el resto de la app
		log := logger.New(logger.Config{Env: "development", Level: "info"})
		log.Error().Err(err).Msg("el comando falló")
		os.Exit(1)
	}
}

// cargarEntorno construye configuración y logger compartidos por los
// subcomandos.
func cargarEntorno() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return cfg, log, nil
}
