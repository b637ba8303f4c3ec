package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/application/orders"
)

// AdminHandler operaciones masivas sobre la colección de pedidos.
// Solo accesible con rol admin (RequireRole en el router).
type AdminHandler struct {
	uc *orders.LifecycleUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *orders.LifecycleUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// DeleteByStatus godoc
// @Summary      Eliminar todos los pedidos en un estado dado
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  true  "Estado operativo a purgar"
// @Success      200     {object}  map[string]int
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/admin/pedidos [delete]
func (h *AdminHandler) DeleteByStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	if status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "status es requerido"))
	}
	n, err := h.uc.DeleteByStatus(c.Context(), status, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": n})
}

// Truncate godoc
// @Summary      Vaciar la colección completa de pedidos
// @Tags         admin
// @Security     Bearer
// @Success      204
// @Router       /api/admin/pedidos/todos [delete]
func (h *AdminHandler) Truncate(c *fiber.Ctx) error {
	if err := h.uc.Truncate(c.Context(), GetUserName(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
