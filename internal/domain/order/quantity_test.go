package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/fletes-pro/internal/domain/order"
)

func TestParseQuantity_FormatoNormal(t *testing.T) {
	val, unit := order.ParseQuantity("30 TON")
	assert.True(t, val.Equal(decimal.NewFromInt(30)), "el valor debe ser 30")
	assert.Equal(t, "TON", unit)
}

func TestParseQuantity_Decimal(t *testing.T) {
	val, unit := order.ParseQuantity("28.5 TON")
	assert.True(t, val.Equal(decimal.RequireFromString("28.5")))
	assert.Equal(t, "TON", unit)
}

func TestParseQuantity_UnidadCompuesta(t *testing.T) {
	val, unit := order.ParseQuantity("600 SACOS 42.5KG")
	assert.True(t, val.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, "SACOS 42.5KG", unit)
}

// Las cantidades vienen de campos casi de texto libre: la degradación a 0
// nunca debe convertirse en error.
func TestParseQuantity_EntradasDegradadas(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada string
		unidad  string
	}{
		{"vacío", "", ""},
		{"solo espacios", "   ", ""},
		{"token no numérico", "abc TON", "TON"},
		{"solo unidad", "TON", ""},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			val, unit := order.ParseQuantity(tc.entrada)
			assert.True(t, val.IsZero(), "entrada %q debe degradar a 0", tc.entrada)
			assert.Equal(t, tc.unidad, unit)
		})
	}
}

func TestParseQuantity_SinUnidad(t *testing.T) {
	val, unit := order.ParseQuantity("30")
	assert.True(t, val.Equal(decimal.NewFromInt(30)))
	assert.Empty(t, unit)
}

func TestFormatQuantity_RedondeoDeIda(t *testing.T) {
	assert.Equal(t, "29 TON", order.FormatQuantity(decimal.NewFromInt(29), "TON"))
	assert.Equal(t, "29", order.FormatQuantity(decimal.NewFromInt(29), ""))
}
