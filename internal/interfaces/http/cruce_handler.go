package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cruce-sap/internal/application/dto"
	"github.com/jhoicas/cruce-sap/internal/application/usecase"
	"github.com/jhoicas/cruce-sap/internal/domain"
)

// CruceHandler maneja las peticiones HTTP de las corridas de cruce.
type CruceHandler struct {
	planillas *usecase.CrucePlanillasUseCase
	maestro   *usecase.CruceMaestroUseCase
}

// NewCruceHandler construye el handler.
func NewCruceHandler(planillas *usecase.CrucePlanillasUseCase, maestro *usecase.CruceMaestroUseCase) *CruceHandler {
	return &CruceHandler{planillas: planillas, maestro: maestro}
}

// Planillas godoc
// @Summary      Cruce de planillas contra existencias SAP
// @Description  Consume las tablas estandarizadas y devuelve el libro de cruce con splits
// @Tags         cruce
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrucePlanillasRequest  true  "Tablas de descargas y existencias"
// @Success      200   {object}  dto.CruceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cruce/planillas [post]
func (h *CruceHandler) Planillas(c *fiber.Ctx) error {
	var in dto.CrucePlanillasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Descargas.NumFilas() == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "descargas: " + domain.ErrTablaVacia.Error()})
	}
	out, err := h.planillas.Ejecutar(in)
	if err != nil {
		return responderErrorCruce(c, err)
	}
	return c.JSON(out)
}

// Maestro godoc
// @Summary      Cruce contra archivo maestro
// @Description  Cruza el archivo dinámico de descargas contra el maestro y devuelve la conciliación
// @Tags         cruce
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CruceMaestroRequest  true  "Tablas maestro/descargas y parámetros de corrida"
// @Success      200   {object}  dto.CruceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cruce/maestro [post]
func (h *CruceHandler) Maestro(c *fiber.Ctx) error {
	var in dto.CruceMaestroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NuevaObra == "" || in.NuevoTrabajo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nueva_obra y nuevo_trabajo son requeridos"})
	}
	out, err := h.maestro.Ejecutar(in)
	if err != nil {
		return responderErrorCruce(c, err)
	}
	return c.JSON(out)
}

// responderErrorCruce mapea errores de dominio a códigos HTTP.
func responderErrorCruce(c *fiber.Ctx, err error) error {
	var colErr *domain.ColumnaFaltanteError
	if errors.As(err, &colErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "COLUMNA_FALTANTE", Message: colErr.Error()})
	}
	if errors.Is(err, domain.ErrEntradaInvalida) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
