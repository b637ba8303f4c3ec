package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/application/usecase"
)

// PlantHandler maneja las peticiones HTTP para plantas (protegido).
type PlantHandler struct {
	uc *usecase.PlantUseCase
}

// NewPlantHandler construye el handler.
func NewPlantHandler(uc *usecase.PlantUseCase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantas de origen
// @Tags         plants
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Plant
// @Router       /api/plantas [get]
func (h *PlantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una planta por ID.
func (h *PlantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear planta
// @Tags         plants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlantRequest  true  "Nombre, ubicación y productos despachables"
// @Success      201   {object}  entity.Plant
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/plantas [post]
func (h *PlantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlantRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza una planta.
func (h *PlantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlantRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una planta.
func (h *PlantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
