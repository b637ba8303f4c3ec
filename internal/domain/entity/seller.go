package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HouseSellerID identifica al vendedor de casa "Oficina": registro protegido
// del sistema, usado por defecto cuando un pedido no tiene vendedor asignado.
// Nunca se elimina y su comisión es 0%.
const (
	HouseSellerID   = "V-000"
	HouseSellerName = "Oficina"
)

// Seller representa un vendedor comisionista.
type Seller struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Commission decimal.Decimal `json:"commission"` // porcentaje, ej. 2.5
	Phone      string          `json:"phone,omitempty"`
	CreatedAt  time.Time       `json:"createdAt,omitempty"`
	UpdatedAt  time.Time       `json:"updatedAt,omitempty"`
}

// HouseSeller devuelve el registro Oficina con el que se siembra la colección.
func HouseSeller() Seller {
	return Seller{ID: HouseSellerID, Name: HouseSellerName, Commission: decimal.Zero}
}
