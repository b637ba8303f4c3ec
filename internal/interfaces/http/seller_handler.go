package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/application/usecase"
)

// SellerHandler maneja las peticiones HTTP para vendedores (protegido).
type SellerHandler struct {
	uc *usecase.SellerUseCase
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// List godoc
// @Summary      Listar vendedores (Oficina incluida)
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Buscar por nombre"
// @Success      200  {array}  entity.Seller
// @Router       /api/vendedores [get]
func (h *SellerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un vendedor por ID.
func (h *SellerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear vendedor
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSellerRequest  true  "Nombre y comisión"
// @Success      201   {object}  entity.Seller
// @Router       /api/vendedores [post]
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza un vendedor. Oficina (V-000) responde 403.
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSellerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un vendedor. Oficina (V-000) responde 403.
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
