package dto

import "github.com/tu-usuario/fletes-pro/internal/domain/finance"

// WalletResponse billetera de plantas: saldo a favor por planta, ordenado por nombre.
type WalletResponse struct {
	Balances []finance.PlantBalance `json:"balances"`
}

// FinanceReportRequest filtros del resumen financiero.
type FinanceReportRequest struct {
	Status string `query:"status"` // opcional: limitar a un estado operativo
}

// FinanceReportResponse resumen financiero con el detalle por pedido.
type FinanceReportResponse struct {
	Summary finance.Summary       `json:"summary"`
	Orders  []finance.OrderProfit `json:"orders"`
}
