package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cruce-sap/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlanillasUC *usecase.CrucePlanillasUseCase
	MaestroUC   *usecase.CruceMaestroUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	cruces := api.Group("/cruce")
	cruceHandler := NewCruceHandler(deps.PlanillasUC, deps.MaestroUC)
	cruces.Post("/planillas", cruceHandler.Planillas)
	cruces.Post("/maestro", cruceHandler.Maestro)
}
