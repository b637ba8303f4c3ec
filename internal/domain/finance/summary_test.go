package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/finance"
)

func TestProfitOf_DesgloseCompleto(t *testing.T) {
	o := entity.Order{
		ID:            "PED-0001",
		Client:        "Constructora Andina C.A.",
		Status:        entity.StatusCompletado,
		FreightPrice:  decimal.NewFromInt(1000),
		PlantCost:     decimal.NewFromInt(600),
		DriverPayment: decimal.NewFromInt(100),
		OtherExpenses: decimal.NewFromInt(20),
	}
	p := finance.ProfitOf(o)

	assert.True(t, p.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, p.Expense.Equal(decimal.NewFromInt(720)))
	assert.True(t, p.Profit.Equal(decimal.NewFromInt(280)))
	assert.True(t, p.Margin.Equal(decimal.RequireFromString("0.28")))
}

func TestProfitOf_IngresoCero_MargenCero(t *testing.T) {
	o := entity.Order{ID: "PED-0002", PlantCost: decimal.NewFromInt(100)}
	p := finance.ProfitOf(o)

	assert.True(t, p.Profit.Equal(decimal.NewFromInt(-100)), "la pérdida sí se refleja")
	assert.True(t, p.Margin.IsZero(), "sin ingreso el margen es 0, no una división entre cero")
}

func TestRollup_AgregaYCalculaMargenGlobal(t *testing.T) {
	orders := []entity.Order{
		{ID: "PED-0001", FreightPrice: decimal.NewFromInt(1000), PlantCost: decimal.NewFromInt(600), DriverPayment: decimal.NewFromInt(100), OtherExpenses: decimal.NewFromInt(20)},
		{ID: "PED-0002", FreightPrice: decimal.NewFromInt(500), PlantCost: decimal.NewFromInt(300)},
	}
	sum, rows := finance.Rollup(orders)

	require.Len(t, rows, 2)
	assert.Equal(t, 2, sum.Orders)
	assert.True(t, sum.TotalIncome.Equal(decimal.NewFromInt(1500)))
	assert.True(t, sum.TotalExpense.Equal(decimal.NewFromInt(1020)))
	assert.True(t, sum.TotalProfit.Equal(decimal.NewFromInt(480)))
	assert.True(t, sum.Margin.Equal(decimal.RequireFromString("0.32")))
}

func TestRollup_Vacio(t *testing.T) {
	sum, rows := finance.Rollup(nil)
	assert.Zero(t, sum.Orders)
	assert.Empty(t, rows)
	assert.True(t, sum.Margin.IsZero())
}
