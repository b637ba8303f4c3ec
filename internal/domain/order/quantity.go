// Package order implementa el motor de ciclo de vida del pedido: funciones
// puras que validan transiciones de estado, mezclan actualizaciones parciales,
// anteponen entradas de historial y acoplan la finalización de estado con la
// cantidad entregada.
package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity descompone una cantidad "<número> <unidad>" (ej. "30 TON") en
// su valor numérico y su unidad. La cantidad viene de campos casi de texto
// libre, así que la tolerancia es deliberada: vacío o token inicial no
// numérico degradan a 0, nunca a error.
func ParseQuantity(s string) (decimal.Decimal, string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return decimal.Zero, ""
	}
	unit := strings.Join(fields[1:], " ")
	val, err := decimal.NewFromString(fields[0])
	if err != nil {
		return decimal.Zero, unit
	}
	return val, unit
}

// ParseQuantityValue devuelve solo la parte numérica (0 si no se puede parsear).
func ParseQuantityValue(s string) decimal.Decimal {
	val, _ := ParseQuantity(s)
	return val
}

// QuantityUnit devuelve solo la unidad ("" si no hay).
func QuantityUnit(s string) string {
	_, unit := ParseQuantity(s)
	return unit
}

// FormatQuantity re-compone una cantidad "<número> <unidad>".
func FormatQuantity(val decimal.Decimal, unit string) string {
	if unit == "" {
		return val.String()
	}
	return val.String() + " " + unit
}
