package finance

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
)

// OrderProfit es la rentabilidad derivada de un pedido:
// ingreso = precio de flete; gasto = costo planta + pago chofer + otros;
// ganancia = ingreso − gasto; margen = ganancia / ingreso (0 si ingreso es 0).
type OrderProfit struct {
	OrderID string          `json:"orderId"`
	Client  string          `json:"client"`
	Status  string          `json:"status"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
	Margin  decimal.Decimal `json:"margin"`
}

// Summary es el agregado financiero sobre el conjunto filtrado de pedidos.
type Summary struct {
	Orders       int             `json:"orders"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
	Margin       decimal.Decimal `json:"margin"`
}

// ProfitOf calcula la rentabilidad de un pedido.
func ProfitOf(o entity.Order) OrderProfit {
	income := o.FreightPrice
	expense := o.PlantCost.Add(o.DriverPayment).Add(o.OtherExpenses)
	profit := income.Sub(expense)
	margin := decimal.Zero
	if !income.IsZero() {
		margin = profit.Div(income)
	}
	return OrderProfit{
		OrderID: o.ID,
		Client:  o.Client,
		Status:  o.Status,
		Income:  income,
		Expense: expense,
		Profit:  profit,
		Margin:  margin,
	}
}

// Rollup suma la rentabilidad de todos los pedidos. Volúmenes esperados de
// cientos a pocos miles de pedidos: recalcular en cada lectura es suficiente,
// no hay requisito incremental.
func Rollup(orders []entity.Order) (Summary, []OrderProfit) {
	sum := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		TotalProfit:  decimal.Zero,
		Margin:       decimal.Zero,
	}
	rows := make([]OrderProfit, 0, len(orders))
	for _, o := range orders {
		p := ProfitOf(o)
		rows = append(rows, p)
		sum.Orders++
		sum.TotalIncome = sum.TotalIncome.Add(p.Income)
		sum.TotalExpense = sum.TotalExpense.Add(p.Expense)
		sum.TotalProfit = sum.TotalProfit.Add(p.Profit)
	}
	if !sum.TotalIncome.IsZero() {
		sum.Margin = sum.TotalProfit.Div(sum.TotalIncome)
	}
	return sum, rows
}
