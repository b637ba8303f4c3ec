package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados operativos del pedido. El flujo normal es:
// Programado → Cargado en sistema → Cargando → En Ruta → En Sitio → Completado.
// Cancelado es alcanzable desde cualquier estado no terminal.
const (
	StatusProgramado = "Programado"         // Creado por el asistente, aún sin confirmar en planta
	StatusCargado    = "Cargado en sistema" // Registrado en el sistema de la planta
	StatusCargando   = "Cargando"           // La planta está cargando el camión
	StatusEnRuta     = "En Ruta"            // Despachado, en tránsito
	StatusEnSitio    = "En Sitio"           // Llegó al destino, pendiente de descarga
	StatusCompletado = "Completado"         // Entregado; cantidad final confirmada
	StatusCancelado  = "Cancelado"          // Anulado
)

// Estados de pago del pedido, independientes del estado operativo.
const (
	PaymentPendiente = "Pendiente"
	PaymentParcial   = "Parcial"
	PaymentPagado    = "Pagado"
)

// HistoryEntry es una entrada del historial de auditoría del pedido.
// El historial es append-only: se antepone la entrada más reciente y
// nunca se edita ni elimina una existente.
type HistoryEntry struct {
	Date    time.Time `json:"date"`
	Action  string    `json:"action"`
	Details string    `json:"details,omitempty"`
	User    string    `json:"user"`
}

// Order representa un pedido de flete (cemento / materiales de construcción).
//
// El pedido lleva un snapshot del cliente y del transporte al momento de la
// asignación, no un join vivo: si el cliente o el chofer cambian después en
// sus propios módulos, el pedido conserva los datos con los que se despachó.
// FinalClient/FinalAddress son el destino efectivo actual, que puede divergir
// del original tras una reguía.
//
// Quantity y LoadedQuantity se guardan como texto "<número> <unidad>"
// (ej. "30 TON"): Quantity es lo facturado, LoadedQuantity lo que la planta
// realmente cargó. La diferencia positiva alimenta el saldo a favor (billetera
// de plantas).
type Order struct {
	ID string `json:"id"` // PED-xxxx o VIA-xxxx; inmutable tras la creación

	// Números de correlación externos (planta / contrato)
	PlantOrderNumber string `json:"plantOrderNumber,omitempty"`
	SalesOrderNumber string `json:"salesOrderNumber,omitempty"`

	// Snapshot del cliente y destino efectivo
	Client       string `json:"client"`
	RIF          string `json:"rif,omitempty"`
	FinalClient  string `json:"finalClient,omitempty"`
	FinalAddress string `json:"finalAddress,omitempty"`

	// Desglose geográfico del destino (independientemente editable)
	Destination             string `json:"destination,omitempty"`
	DestinationState        string `json:"destinationState,omitempty"`
	DestinationMunicipality string `json:"destinationMunicipality,omitempty"`
	DestinationParish       string `json:"destinationParish,omitempty"`
	DestinationDetail       string `json:"destinationDetail,omitempty"`

	// Atribución del vendedor (por defecto Oficina V-000, 0% comisión)
	SellerID   string `json:"sellerId,omitempty"`
	SellerName string `json:"sellerName,omitempty"`

	// Carga
	Product        string `json:"product,omitempty"`
	Quantity       string `json:"quantity,omitempty"`        // facturado, "30 TON"
	LoadedQuantity string `json:"loaded_quantity,omitempty"` // realmente cargado por la planta
	Origin         string `json:"origin,omitempty"`          // nombre de la planta de origen

	// Snapshot del transporte (chofer + chuto + batea)
	Driver       string `json:"driver,omitempty"`
	DriverPhone  string `json:"driverPhone,omitempty"`
	DriverCedula string `json:"driverCedula,omitempty"`
	Truck        string `json:"truck,omitempty"`
	Plate        string `json:"plate,omitempty"`
	TruckBrand   string `json:"truckBrand,omitempty"`
	TruckModel   string `json:"truckModel,omitempty"`
	TruckColor   string `json:"truckColor,omitempty"`
	TruckType    string `json:"truckType,omitempty"`
	TrailerPlate string `json:"trailerPlate,omitempty"`
	TrailerBrand string `json:"trailerBrand,omitempty"`
	TrailerType  string `json:"trailerType,omitempty"`

	Status       string `json:"status"`
	DeliveryDate string `json:"deliveryDate,omitempty"`

	// Financieros
	FreightPrice  decimal.Decimal `json:"freightPrice"`  // monto facturado al cliente
	PlantCost     decimal.Decimal `json:"plantCost"`     // costo del producto en planta
	UnitPlantCost decimal.Decimal `json:"unitPlantCost"` // costo unitario, si la planta lo reporta
	DriverPayment decimal.Decimal `json:"driverPayment"` // costo de transporte
	OtherExpenses decimal.Decimal `json:"otherExpenses"`

	// Pago (independiente del estado operativo)
	PaymentStatus    string `json:"paymentStatus,omitempty"`
	PaymentMethod    string `json:"paymentMethod,omitempty"`
	PaymentReference string `json:"paymentReference,omitempty"`
	PaymentComment   string `json:"paymentComment,omitempty"`
	PaymentDate      string `json:"paymentDate,omitempty"`

	// Auditoría: más reciente primero
	History []HistoryEntry `json:"history,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// IsTerminalStatus indica si un estado no admite más transiciones.
func IsTerminalStatus(status string) bool {
	return status == StatusCompletado || status == StatusCancelado
}
