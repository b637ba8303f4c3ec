package finance_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/application/finance"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/infrastructure/collections"
)

func newReportUseCase(t *testing.T, orders []entity.Order) *finance.ReportUseCase {
	t.Helper()
	repo := collections.NewOrderRepository(collections.NewMemStore())
	require.NoError(t, repo.SaveAll(context.Background(), orders, 0))
	return finance.NewReportUseCase(repo)
}

func pedidoFinanciero(id, status string, income, plantCost, driverPayment int64) entity.Order {
	return entity.Order{
		ID:            id,
		Client:        "Constructora Andina C.A.",
		Status:        status,
		FreightPrice:  decimal.NewFromInt(income),
		PlantCost:     decimal.NewFromInt(plantCost),
		DriverPayment: decimal.NewFromInt(driverPayment),
	}
}

func TestReport_SinFiltroIncluyeTodo(t *testing.T) {
	uc := newReportUseCase(t, []entity.Order{
		pedidoFinanciero("PED-0001", entity.StatusCompletado, 1000, 600, 100),
		pedidoFinanciero("PED-0002", entity.StatusEnRuta, 500, 420, 60),
	})

	report, err := uc.Report(context.Background(), dto.FinanceReportRequest{})
	require.NoError(t, err)

	assert.Len(t, report.Orders, 2)
	assert.True(t, report.Summary.TotalIncome.Equal(decimal.NewFromInt(1500)))
	assert.True(t, report.Summary.TotalExpense.Equal(decimal.NewFromInt(1180)))
	assert.True(t, report.Summary.TotalProfit.Equal(decimal.NewFromInt(320)))
}

func TestReport_FiltroPorEstado(t *testing.T) {
	uc := newReportUseCase(t, []entity.Order{
		pedidoFinanciero("PED-0001", entity.StatusCompletado, 1000, 600, 100),
		pedidoFinanciero("PED-0002", entity.StatusEnRuta, 500, 420, 60),
	})

	report, err := uc.Report(context.Background(), dto.FinanceReportRequest{Status: entity.StatusCompletado})
	require.NoError(t, err)

	require.Len(t, report.Orders, 1)
	assert.Equal(t, "PED-0001", report.Orders[0].OrderID)
	assert.True(t, report.Summary.TotalProfit.Equal(decimal.NewFromInt(300)))
}

func TestWallet_OrdenadoPorPlanta(t *testing.T) {
	conCarga := func(id, plant, billed, loaded string) entity.Order {
		return entity.Order{
			ID: id, Status: entity.StatusCompletado,
			Origin: plant, Quantity: billed, LoadedQuantity: loaded,
		}
	}
	uc := newReportUseCase(t, []entity.Order{
		conCarga("PED-0003", "Planta Valencia", "30 TON", "28 TON"),
		conCarga("PED-0001", "Planta Barquisimeto", "30 TON", "29 TON"),
		conCarga("PED-0002", "Planta Barquisimeto", "30 TON", "27 TON"),
	})

	resp, err := uc.Wallet(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Balances, 2)
	assert.Equal(t, "Planta Barquisimeto", resp.Balances[0].Plant)
	assert.True(t, resp.Balances[0].QuantityOwed.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "Planta Valencia", resp.Balances[1].Plant)
	assert.True(t, resp.Balances[1].QuantityOwed.Equal(decimal.NewFromInt(2)))
}

func TestExportCSV_FilasYTotales(t *testing.T) {
	uc := newReportUseCase(t, []entity.Order{
		pedidoFinanciero("PED-0001", entity.StatusCompletado, 1000, 600, 100),
	})

	out, err := uc.ExportCSV(context.Background(), dto.FinanceReportRequest{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 3, "cabecera, un pedido y la fila TOTAL")
	assert.Equal(t, "Pedido,Cliente,Estado,Ingreso,Gasto,Ganancia,Margen", lines[0])
	assert.Equal(t, "PED-0001,Constructora Andina C.A.,Completado,1000.00,700.00,300.00,0.3000", lines[1])
	assert.Equal(t, "TOTAL,,,1000.00,700.00,300.00,0.3000", lines[2])
}

func TestExportCSV_SinPedidos(t *testing.T) {
	uc := newReportUseCase(t, nil)

	out, err := uc.ExportCSV(context.Background(), dto.FinanceReportRequest{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "TOTAL,"))
}
