// Package finance expone las vistas de conciliación: billetera de plantas y
// resumen financiero. Son lecturas puras sobre la colección de pedidos,
// recalculadas en cada consulta; no hay caché que invalidar.
package finance

import (
	"context"
	"sort"

	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	domfinance "github.com/tu-usuario/fletes-pro/internal/domain/finance"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
)

// ReportUseCase casos de uso de las vistas financieras.
type ReportUseCase struct {
	orders repository.OrderRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(orders repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders}
}

// Wallet devuelve la billetera de plantas: el saldo a favor (facturado −
// cargado, solo déficits) acumulado por planta sobre los pedidos Completados,
// ordenado por nombre de planta para una salida estable.
func (uc *ReportUseCase) Wallet(ctx context.Context) (dto.WalletResponse, error) {
	all, _, err := uc.orders.GetAll(ctx)
	if err != nil {
		return dto.WalletResponse{}, err
	}
	wallet := domfinance.PlantWallet(all)
	balances := make([]domfinance.PlantBalance, 0, len(wallet))
	for _, b := range wallet {
		balances = append(balances, b)
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].Plant < balances[j].Plant })
	return dto.WalletResponse{Balances: balances}, nil
}

// Report devuelve el resumen financiero (ingreso, gasto, ganancia, margen)
// con el detalle por pedido, opcionalmente filtrado por estado operativo.
func (uc *ReportUseCase) Report(ctx context.Context, req dto.FinanceReportRequest) (dto.FinanceReportResponse, error) {
	all, _, err := uc.orders.GetAll(ctx)
	if err != nil {
		return dto.FinanceReportResponse{}, err
	}
	filtered := all
	if req.Status != "" {
		filtered = make([]entity.Order, 0, len(all))
		for _, o := range all {
			if o.Status == req.Status {
				filtered = append(filtered, o)
			}
		}
	}
	summary, rows := domfinance.Rollup(filtered)
	return dto.FinanceReportResponse{Summary: summary, Orders: rows}, nil
}
