// Package finance deriva, a partir de la colección completa de pedidos, los
// agregados de conciliación: la billetera de plantas (saldo a favor en
// producto que cada planta le debe al distribuidor) y el resumen financiero
// de ingresos, gastos y márgenes. Todo es puro e idempotente: se recalcula
// en cada lectura, sin estado oculto.
package finance

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/order"
)

// PlantBalance es el saldo a favor acumulado de una planta.
type PlantBalance struct {
	Plant        string          `json:"plant"`
	QuantityOwed decimal.Decimal `json:"quantityOwed"`
	Unit         string          `json:"unit,omitempty"`
}

// PlantWallet recorre los pedidos Completados y acumula por planta de origen
// el déficit facturado − cargado. Solo cuentan los déficits (diff > 0): un
// pedido sobre-cargado no se netea contra los demás; la billetera registra lo
// que la planta debe, no lo que sobra. La unidad se toma del primer pedido
// que aporta al saldo de esa planta.
func PlantWallet(orders []entity.Order) map[string]PlantBalance {
	wallet := make(map[string]PlantBalance)
	for _, o := range orders {
		if o.Status != entity.StatusCompletado {
			continue
		}
		billed, unit := order.ParseQuantity(o.Quantity)
		loaded := order.ParseQuantityValue(o.LoadedQuantity)
		diff := billed.Sub(loaded)
		if !diff.IsPositive() {
			continue
		}
		bal, ok := wallet[o.Origin]
		if !ok {
			bal = PlantBalance{Plant: o.Origin, Unit: unit}
		}
		bal.QuantityOwed = bal.QuantityOwed.Add(diff)
		wallet[o.Origin] = bal
	}
	return wallet
}

// EstimatedCredit estima el crédito monetario del déficit de un pedido:
// diff * costo unitario. El costo unitario es UnitPlantCost si la planta lo
// reportó; si no, PlantCost / facturado (0 cuando lo facturado es 0, para no
// dividir entre cero). Un pedido sin déficit vale 0.
func EstimatedCredit(o entity.Order) decimal.Decimal {
	billed := order.ParseQuantityValue(o.Quantity)
	loaded := order.ParseQuantityValue(o.LoadedQuantity)
	diff := billed.Sub(loaded)
	if !diff.IsPositive() {
		return decimal.Zero
	}
	unitCost := o.UnitPlantCost
	if unitCost.IsZero() {
		if billed.IsZero() {
			return decimal.Zero
		}
		unitCost = o.PlantCost.Div(billed)
	}
	return diff.Mul(unitCost)
}
