package dto

import "github.com/shopspring/decimal"

// AddressRequest dirección de entrega de un cliente.
type AddressRequest struct {
	State         string `json:"state"`
	Municipality  string `json:"municipality"`
	Parish        string `json:"parish"`
	Detail        string `json:"detail" validate:"required"`
	PostalCode    string `json:"postal_code"`
	ConsigneeCode string `json:"consignee_code"`
	IsFiscal      bool   `json:"is_fiscal"`
}

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name       string           `json:"name" validate:"required,min=1,max=200"`
	RIF        string           `json:"rif" validate:"required"`
	ClientCode string           `json:"client_code"`
	Phone      string           `json:"phone"`
	Addresses  []AddressRequest `json:"addresses"`
}

// UpdateClientRequest actualización parcial de un cliente (sin direcciones;
// las direcciones tienen sus propias operaciones add/remove).
type UpdateClientRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	RIF        *string `json:"rif"`
	ClientCode *string `json:"client_code"`
	Phone      *string `json:"phone"`
}

// CreateSellerRequest entrada para crear un vendedor.
type CreateSellerRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Commission decimal.Decimal `json:"commission"`
	Phone      string          `json:"phone"`
}

// UpdateSellerRequest actualización parcial de un vendedor.
type UpdateSellerRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Commission *decimal.Decimal `json:"commission"`
	Phone      *string          `json:"phone"`
}

// PlantProductRequest producto despachable por una planta.
type PlantProductRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	DefaultQuantity string `json:"default_quantity"`
}

// CreatePlantRequest entrada para crear una planta.
type CreatePlantRequest struct {
	Name     string                `json:"name" validate:"required,min=1,max=200"`
	Location string                `json:"location"`
	Products []PlantProductRequest `json:"products"`
}

// UpdatePlantRequest actualización parcial de una planta. Products, si viene,
// reemplaza la lista completa de productos despachables.
type UpdatePlantRequest struct {
	Name     *string               `json:"name" validate:"omitempty,min=1,max=200"`
	Location *string               `json:"location"`
	Products []PlantProductRequest `json:"products"`
}

// CreateDriverRequest entrada para crear un chofer.
type CreateDriverRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Cedula string `json:"cedula" validate:"required"`
	Phone  string `json:"phone"`
}

// CreateTruckRequest entrada para crear un chuto.
type CreateTruckRequest struct {
	Name  string `json:"name" validate:"required"`
	Plate string `json:"plate" validate:"required"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// UpdateDriverRequest actualización parcial de un chofer.
type UpdateDriverRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Cedula *string `json:"cedula"`
	Phone  *string `json:"phone"`
}

// CreateTrailerRequest entrada para crear una batea.
type CreateTrailerRequest struct {
	Plate string `json:"plate" validate:"required"`
	Brand string `json:"brand"`
	Type  string `json:"type"`
}

// UpdateTruckRequest actualización parcial de un chuto.
type UpdateTruckRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Plate *string `json:"plate"`
	Brand *string `json:"brand"`
	Model *string `json:"model"`
	Color *string `json:"color"`
	Type  *string `json:"type"`
}

// UpdateTrailerRequest actualización parcial de una batea.
type UpdateTrailerRequest struct {
	Plate *string `json:"plate"`
	Brand *string `json:"brand"`
	Type  *string `json:"type"`
}
