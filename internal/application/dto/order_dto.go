package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
)

// CreateOrderRequest entrada del asistente de creación de pedidos.
// Seller es opcional: sin vendedor, el pedido se atribuye a Oficina (V-000).
// Quantity es opcional si la planta define cantidad por defecto para el producto.
type CreateOrderRequest struct {
	PlantID          string          `json:"plant_id" validate:"required"`
	ClientID         string          `json:"client_id" validate:"required"`
	AddressID        string          `json:"address_id"`
	SellerID         string          `json:"seller_id"`
	ProductID        string          `json:"product_id" validate:"required"`
	Quantity         string          `json:"quantity"` // "<número> <unidad>", ej. "30 TON"
	DeliveryDate     string          `json:"delivery_date"`
	PlantOrderNumber string          `json:"plant_order_number"`
	SalesOrderNumber string          `json:"sales_order_number"`
	FreightPrice     decimal.Decimal `json:"freight_price"`
	PlantCost        decimal.Decimal `json:"plant_cost"`
	DriverPayment    decimal.Decimal `json:"driver_payment"`
	Scheduled        bool            `json:"scheduled"` // true = crear en Programado, false = Cargado en sistema
}

// ChangeStatusRequest entrada para avanzar el estado de un pedido.
// DeliveredQuantity solo aplica al pasar a Completado: si difiere de la
// facturada, la cantidad del pedido se finaliza en el mismo update.
type ChangeStatusRequest struct {
	Status            string `json:"status" validate:"required"`
	DeliveredQuantity string `json:"delivered_quantity"`
}

// ReguiaRequest entrada para desviar un pedido en tránsito.
type ReguiaRequest struct {
	ClientID  string `json:"client_id" validate:"required"`
	AddressID string `json:"address_id" validate:"required"`
	SellerID  string `json:"seller_id"` // opcional; vacío mantiene el vendedor actual
}

// ReassignTransportRequest entrada para reasignar transporte. Los tres campos
// son independientes y opcionales; solo los presentes se aplican.
type ReassignTransportRequest struct {
	DriverID  string `json:"driver_id"`
	TruckID   string `json:"truck_id"`
	TrailerID string `json:"trailer_id"`
}

// RegisterPaymentRequest entrada para registrar el pago (independiente del estado operativo).
type RegisterPaymentRequest struct {
	Status    string `json:"status" validate:"required,oneof=Pendiente Parcial Pagado"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// Actualizadores de campo único: cada uno produce su propia línea de historial.
type (
	UpdateOrderClientRequest struct {
		ClientID string `json:"client_id" validate:"required"`
	}
	UpdateOrderSellerRequest struct {
		SellerID string `json:"seller_id" validate:"required"`
	}
	UpdateSalesOrderNumberRequest struct {
		SalesOrderNumber string `json:"sales_order_number" validate:"required"`
	}
	UpdateDeliveryDateRequest struct {
		DeliveryDate string `json:"delivery_date" validate:"required"`
	}
	UpdateLoadedQuantityRequest struct {
		LoadedQuantity string `json:"loaded_quantity" validate:"required"`
	}
)

// OrderFilter filtros de listado.
type OrderFilter struct {
	Status string `query:"status"`
	Client string `query:"client"`
}

// OrderCreditResponse crédito estimado por déficit de carga de un pedido.
type OrderCreditResponse struct {
	OrderID         string          `json:"orderId"`
	BilledQuantity  string          `json:"billedQuantity"`
	LoadedQuantity  string          `json:"loadedQuantity"`
	Deficit         decimal.Decimal `json:"deficit"`
	Unit            string          `json:"unit,omitempty"`
	EstimatedCredit decimal.Decimal `json:"estimatedCredit"`
}

// OrderListResponse listado de pedidos.
type OrderListResponse struct {
	Items []entity.Order `json:"items"`
	Total int            `json:"total"`
}
