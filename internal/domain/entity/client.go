package entity

import "time"

// Address es una dirección de entrega de un cliente.
// La primera dirección de la lista es la fiscal; el repositorio garantiza
// que exactamente una dirección por cliente tenga IsFiscal en true.
type Address struct {
	ID            string `json:"id"`
	State         string `json:"state,omitempty"`
	Municipality  string `json:"municipality,omitempty"`
	Parish        string `json:"parish,omitempty"`
	Detail        string `json:"detail,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	ConsigneeCode string `json:"consigneeCode,omitempty"`
	IsFiscal      bool   `json:"isFiscal"`
}

// Client representa un cliente del distribuidor.
type Client struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RIF        string    `json:"rif,omitempty"` // Registro de Información Fiscal (Venezuela)
	ClientCode string    `json:"clientCode,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Addresses  []Address `json:"addresses,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// FiscalAddress devuelve la dirección fiscal del cliente (nil si no tiene).
func (c *Client) FiscalAddress() *Address {
	for i := range c.Addresses {
		if c.Addresses[i].IsFiscal {
			return &c.Addresses[i]
		}
	}
	if len(c.Addresses) > 0 {
		return &c.Addresses[0]
	}
	return nil
}

// AddressByID busca una dirección por su ID (nil si no existe).
func (c *Client) AddressByID(id string) *Address {
	for i := range c.Addresses {
		if c.Addresses[i].ID == id {
			return &c.Addresses[i]
		}
	}
	return nil
}
