package entity

import "time"

// PlantProduct define un producto despachable por la planta y la cantidad
// por defecto que sugiere el asistente de creación de pedidos.
type PlantProduct struct {
	ProductID       string `json:"productId"`
	DefaultQuantity string `json:"defaultQuantity,omitempty"` // "<número> <unidad>", ej. "30 TON"
}

// Plant representa una planta de origen (cementera).
type Plant struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location,omitempty"`
	Products  []PlantProduct `json:"products,omitempty"`
	CreatedAt time.Time      `json:"createdAt,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt,omitempty"`
}

// ProductByID busca la definición de un producto de la planta (nil si no despacha ese producto).
func (p *Plant) ProductByID(productID string) *PlantProduct {
	for i := range p.Products {
		if p.Products[i].ProductID == productID {
			return &p.Products[i]
		}
	}
	return nil
}
