package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
)

// Changes es una actualización parcial del pedido: solo los campos no nil se
// aplican. El ID nunca es parte de un Changes (inmutable tras la creación).
type Changes struct {
	PlantOrderNumber *string
	SalesOrderNumber *string

	Client       *string
	RIF          *string
	FinalClient  *string
	FinalAddress *string

	Destination             *string
	DestinationState        *string
	DestinationMunicipality *string
	DestinationParish       *string
	DestinationDetail       *string

	SellerID   *string
	SellerName *string

	Product        *string
	Quantity       *string
	LoadedQuantity *string
	Origin         *string

	Driver       *string
	DriverPhone  *string
	DriverCedula *string
	Truck        *string
	Plate        *string
	TruckBrand   *string
	TruckModel   *string
	TruckColor   *string
	TruckType    *string
	TrailerPlate *string
	TrailerBrand *string
	TrailerType  *string

	Status       *string
	DeliveryDate *string

	FreightPrice  *decimal.Decimal
	PlantCost     *decimal.Decimal
	UnitPlantCost *decimal.Decimal
	DriverPayment *decimal.Decimal
	OtherExpenses *decimal.Decimal

	PaymentStatus    *string
	PaymentMethod    *string
	PaymentReference *string
	PaymentComment   *string
	PaymentDate      *string
}

// NewHistoryEntry construye una entrada de historial.
func NewHistoryEntry(now time.Time, action, details, user string) entity.HistoryEntry {
	return entity.HistoryEntry{Date: now, Action: action, Details: details, User: user}
}

// ApplyUpdate mezcla los cambios sobre el pedido y, si entry no es nil, lo
// antepone al historial (más reciente primero). No muta el pedido de entrada:
// devuelve siempre un valor nuevo. La función es total: la validez semántica
// del cambio (transiciones, precondiciones de reguía) es responsabilidad del
// caso de uso que la invoca.
func ApplyUpdate(o entity.Order, ch Changes, entry *entity.HistoryEntry) entity.Order {
	setStr(&o.PlantOrderNumber, ch.PlantOrderNumber)
	setStr(&o.SalesOrderNumber, ch.SalesOrderNumber)

	setStr(&o.Client, ch.Client)
	setStr(&o.RIF, ch.RIF)
	setStr(&o.FinalClient, ch.FinalClient)
	setStr(&o.FinalAddress, ch.FinalAddress)

	setStr(&o.Destination, ch.Destination)
	setStr(&o.DestinationState, ch.DestinationState)
	setStr(&o.DestinationMunicipality, ch.DestinationMunicipality)
	setStr(&o.DestinationParish, ch.DestinationParish)
	setStr(&o.DestinationDetail, ch.DestinationDetail)

	setStr(&o.SellerID, ch.SellerID)
	setStr(&o.SellerName, ch.SellerName)

	setStr(&o.Product, ch.Product)
	setStr(&o.Quantity, ch.Quantity)
	setStr(&o.LoadedQuantity, ch.LoadedQuantity)
	setStr(&o.Origin, ch.Origin)

	setStr(&o.Driver, ch.Driver)
	setStr(&o.DriverPhone, ch.DriverPhone)
	setStr(&o.DriverCedula, ch.DriverCedula)
	setStr(&o.Truck, ch.Truck)
	setStr(&o.Plate, ch.Plate)
	setStr(&o.TruckBrand, ch.TruckBrand)
	setStr(&o.TruckModel, ch.TruckModel)
	setStr(&o.TruckColor, ch.TruckColor)
	setStr(&o.TruckType, ch.TruckType)
	setStr(&o.TrailerPlate, ch.TrailerPlate)
	setStr(&o.TrailerBrand, ch.TrailerBrand)
	setStr(&o.TrailerType, ch.TrailerType)

	setStr(&o.Status, ch.Status)
	setStr(&o.DeliveryDate, ch.DeliveryDate)

	setDec(&o.FreightPrice, ch.FreightPrice)
	setDec(&o.PlantCost, ch.PlantCost)
	setDec(&o.UnitPlantCost, ch.UnitPlantCost)
	setDec(&o.DriverPayment, ch.DriverPayment)
	setDec(&o.OtherExpenses, ch.OtherExpenses)

	setStr(&o.PaymentStatus, ch.PaymentStatus)
	setStr(&o.PaymentMethod, ch.PaymentMethod)
	setStr(&o.PaymentReference, ch.PaymentReference)
	setStr(&o.PaymentComment, ch.PaymentComment)
	setStr(&o.PaymentDate, ch.PaymentDate)

	if entry != nil {
		history := make([]entity.HistoryEntry, 0, len(o.History)+1)
		history = append(history, *entry)
		history = append(history, o.History...)
		o.History = history
	}
	return o
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDec(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}

// ChangeStatus aplica un cambio de estado genérico con su línea de historial.
// El caso de uso debe haber validado la transición antes (ValidateTransition).
func ChangeStatus(o entity.Order, newStatus, user string, now time.Time) entity.Order {
	entry := NewHistoryEntry(now, "Cambio de estado",
		"Estado cambiado a "+newStatus, user)
	return ApplyUpdate(o, Changes{Status: &newStatus}, &entry)
}

// Complete pasa el pedido a Completado acoplando la finalización de la
// cantidad: si deliveredQuantity no está vacía y difiere de la facturada,
// sobreescribe Quantity y la única entrada de historial registra ambos
// cambios. La transición y la actualización de cantidad son un solo update
// atómico, nunca dos.
func Complete(o entity.Order, deliveredQuantity, user string, now time.Time) entity.Order {
	status := entity.StatusCompletado
	ch := Changes{Status: &status}
	details := "Estado cambiado a " + entity.StatusCompletado
	if deliveredQuantity != "" && deliveredQuantity != o.Quantity {
		ch.Quantity = &deliveredQuantity
		details += "; cantidad final confirmada: " + deliveredQuantity + " (facturada: " + o.Quantity + ")"
	}
	entry := NewHistoryEntry(now, "Pedido completado", details, user)
	return ApplyUpdate(o, ch, &entry)
}

// ReguiaData es el resultado de resolver la reguía contra los directorios de
// clientes y vendedores: nombres y dirección ya materializados.
type ReguiaData struct {
	ClientName   string
	AddressLabel string // texto completo de la nueva dirección de entrega
	State        string
	Municipality string
	Parish       string
	Detail       string
	SellerID     string
	SellerName   string
}

// ApplyReguia desvía un pedido en tránsito hacia otro cliente/destino/vendedor.
// Sobrescribe de forma permanente el cliente de registro: no se conserva un
// par "original vs actual"; la recuperabilidad queda solo en el historial,
// que registra el nombre anterior y el nuevo. La precondición de estado
// (En Ruta / En Sitio) la valida el caso de uso antes de llamar aquí.
func ApplyReguia(o entity.Order, d ReguiaData, user string, now time.Time) entity.Order {
	ch := Changes{
		Client:                  &d.ClientName,
		FinalClient:             &d.ClientName,
		FinalAddress:            &d.AddressLabel,
		DestinationState:        &d.State,
		DestinationMunicipality: &d.Municipality,
		DestinationParish:       &d.Parish,
		DestinationDetail:       &d.Detail,
	}
	if d.SellerID != "" {
		ch.SellerID = &d.SellerID
		ch.SellerName = &d.SellerName
	}
	entry := NewHistoryEntry(now, "Reguía",
		"Cliente: "+o.Client+" → "+d.ClientName+"; destino: "+d.AddressLabel, user)
	return ApplyUpdate(o, ch, &entry)
}

// TransportSelection es la selección independiente de chofer, chuto y batea
// para una reasignación de transporte. Cualquiera de los tres puede faltar;
// solo los presentes se aplican.
type TransportSelection struct {
	Driver  *entity.Driver
	Truck   *entity.Truck
	Trailer *entity.Trailer
}

// ReassignTransport aplica la selección como un único patch combinado con una
// sola entrada de historial consolidada que lista todo lo que cambió (a
// diferencia de los editores de campo único, que generan una entrada cada uno).
func ReassignTransport(o entity.Order, sel TransportSelection, user string, now time.Time) entity.Order {
	ch := Changes{}
	var parts []string
	if sel.Driver != nil {
		ch.Driver = &sel.Driver.Name
		ch.DriverPhone = &sel.Driver.Phone
		ch.DriverCedula = &sel.Driver.Cedula
		parts = append(parts, "chofer: "+sel.Driver.Name)
	}
	if sel.Truck != nil {
		ch.Truck = &sel.Truck.Name
		ch.Plate = &sel.Truck.Plate
		ch.TruckBrand = &sel.Truck.Brand
		ch.TruckModel = &sel.Truck.Model
		ch.TruckColor = &sel.Truck.Color
		ch.TruckType = &sel.Truck.Type
		parts = append(parts, "chuto: "+sel.Truck.Name+" ("+sel.Truck.Plate+")")
	}
	if sel.Trailer != nil {
		ch.TrailerPlate = &sel.Trailer.Plate
		ch.TrailerBrand = &sel.Trailer.Brand
		ch.TrailerType = &sel.Trailer.Type
		parts = append(parts, "batea: "+sel.Trailer.Plate)
	}
	if len(parts) == 0 {
		return o
	}
	entry := NewHistoryEntry(now, "Transporte reasignado", strings.Join(parts, "; "), user)
	return ApplyUpdate(o, ch, &entry)
}
