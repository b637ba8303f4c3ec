package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/application/finance"
)

// FinanceHandler maneja el resumen financiero y la billetera de plantas (protegido).
type FinanceHandler struct {
	uc *finance.ReportUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.ReportUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Report godoc
// @Summary      Resumen financiero (ingresos, gastos, ganancia, margen)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Limitar a un estado operativo"
// @Success      200     {object}  dto.FinanceReportResponse
// @Router       /api/finanzas/resumen [get]
func (h *FinanceHandler) Report(c *fiber.Ctx) error {
	req := dto.FinanceReportRequest{Status: c.Query("status")}
	out, err := h.uc.Report(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Wallet godoc
// @Summary      Billetera de plantas: saldo a favor por déficit de carga
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WalletResponse
// @Router       /api/finanzas/billetera [get]
func (h *FinanceHandler) Wallet(c *fiber.Ctx) error {
	out, err := h.uc.Wallet(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar el detalle financiero en CSV
// @Tags         finance
// @Security     Bearer
// @Produce      text/csv
// @Param        status  query  string  false  "Limitar a un estado operativo"
// @Success      200     {string}  string  "CSV"
// @Router       /api/finanzas/export.csv [get]
func (h *FinanceHandler) ExportCSV(c *fiber.Ctx) error {
	req := dto.FinanceReportRequest{Status: c.Query("status")}
	out, err := h.uc.ExportCSV(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="finanzas.csv"`)
	return c.Send(out)
}
