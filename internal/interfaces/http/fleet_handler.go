package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/application/usecase"
)

// FleetHandler maneja las peticiones HTTP para la flota (protegido):
// choferes, chutos y bateas.
type FleetHandler struct {
	uc *usecase.FleetUseCase
}

// NewFleetHandler construye el handler.
func NewFleetHandler(uc *usecase.FleetUseCase) *FleetHandler {
	return &FleetHandler{uc: uc}
}

// ListDrivers godoc
// @Summary      Listar choferes
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Driver
// @Router       /api/flota/choferes [get]
func (h *FleetHandler) ListDrivers(c *fiber.Ctx) error {
	out, err := h.uc.ListDrivers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateDriver crea un chofer.
func (h *FleetHandler) CreateDriver(c *fiber.Ctx) error {
	var in dto.CreateDriverRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateDriver(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDriver actualiza un chofer.
func (h *FleetHandler) UpdateDriver(c *fiber.Ctx) error {
	var in dto.UpdateDriverRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateDriver(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteDriver elimina un chofer.
func (h *FleetHandler) DeleteDriver(c *fiber.Ctx) error {
	if err := h.uc.DeleteDriver(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTrucks godoc
// @Summary      Listar chutos
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Truck
// @Router       /api/flota/chutos [get]
func (h *FleetHandler) ListTrucks(c *fiber.Ctx) error {
	out, err := h.uc.ListTrucks(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateTruck crea un chuto.
func (h *FleetHandler) CreateTruck(c *fiber.Ctx) error {
	var in dto.CreateTruckRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateTruck(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTruck actualiza un chuto.
func (h *FleetHandler) UpdateTruck(c *fiber.Ctx) error {
	var in dto.UpdateTruckRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateTruck(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteTruck elimina un chuto.
func (h *FleetHandler) DeleteTruck(c *fiber.Ctx) error {
	if err := h.uc.DeleteTruck(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTrailers godoc
// @Summary      Listar bateas
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Trailer
// @Router       /api/flota/bateas [get]
func (h *FleetHandler) ListTrailers(c *fiber.Ctx) error {
	out, err := h.uc.ListTrailers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateTrailer crea una batea.
func (h *FleetHandler) CreateTrailer(c *fiber.Ctx) error {
	var in dto.CreateTrailerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateTrailer(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTrailer actualiza una batea.
func (h *FleetHandler) UpdateTrailer(c *fiber.Ctx) error {
	var in dto.UpdateTrailerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateTrailer(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteTrailer elimina una batea.
func (h *FleetHandler) DeleteTrailer(c *fiber.Ctx) error {
	if err := h.uc.DeleteTrailer(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
