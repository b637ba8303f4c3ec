package order_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/order"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func pedidoBase() entity.Order {
	return entity.Order{
		ID:       "PED-0042",
		Client:   "Constructora Andina C.A.",
		Product:  "Cemento Gris Tipo I",
		Quantity: "30 TON",
		Origin:   "Planta Barquisimeto",
		Status:   entity.StatusEnRuta,
		History: []entity.HistoryEntry{
			{Date: testNow.Add(-time.Hour), Action: "Pedido creado", User: "ana"},
		},
	}
}

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// ApplyUpdate
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyUpdate_MergeParcial(t *testing.T) {
	o := pedidoBase()
	precio := decimal.NewFromInt(1200)
	got := order.ApplyUpdate(o, order.Changes{
		SalesOrderNumber: str("SO-991"),
		FreightPrice:     &precio,
	}, nil)

	assert.Equal(t, "SO-991", got.SalesOrderNumber)
	assert.True(t, got.FreightPrice.Equal(precio))
	// Los campos no incluidos no se tocan.
	assert.Equal(t, o.Client, got.Client)
	assert.Equal(t, o.Status, got.Status)
	assert.Equal(t, o.Quantity, got.Quantity)
}

func TestApplyUpdate_NoMutaLaEntrada(t *testing.T) {
	o := pedidoBase()
	entry := order.NewHistoryEntry(testNow, "Edición", "detalle", "ana")
	_ = order.ApplyUpdate(o, order.Changes{Client: str("Otro Cliente")}, &entry)

	assert.Equal(t, "Constructora Andina C.A.", o.Client, "el pedido de entrada no debe mutar")
	assert.Len(t, o.History, 1, "el historial de entrada no debe mutar")
}

func TestApplyUpdate_HistorialMasRecientePrimero(t *testing.T) {
	o := pedidoBase()
	entry := order.NewHistoryEntry(testNow, "Edición", "cambio de cliente", "ana")
	got := order.ApplyUpdate(o, order.Changes{Client: str("Otro")}, &entry)

	require.Len(t, got.History, 2)
	assert.Equal(t, "Edición", got.History[0].Action, "la entrada nueva va de primera")
	assert.Equal(t, "Pedido creado", got.History[1].Action, "las anteriores se conservan en orden")
}

func TestApplyUpdate_CadenaDeEdiciones(t *testing.T) {
	o := pedidoBase()
	for i, cliente := range []string{"A", "B", "C"} {
		e := order.NewHistoryEntry(testNow.Add(time.Duration(i)*time.Minute), "Edición", cliente, "ana")
		o = order.ApplyUpdate(o, order.Changes{Client: &cliente}, &e)
	}
	require.Len(t, o.History, 4, "el historial solo crece, nunca se recorta")
	assert.Equal(t, "C", o.History[0].Details)
	assert.Equal(t, "C", o.Client)
}

// ──────────────────────────────────────────────────────────────────────────────
// Complete: acople estado + cantidad entregada
// ──────────────────────────────────────────────────────────────────────────────

func TestComplete_CantidadDistinta_UnSoloUpdate(t *testing.T) {
	o := pedidoBase()
	o.Status = entity.StatusEnSitio

	got := order.Complete(o, "29 TON", "ana", testNow)

	assert.Equal(t, entity.StatusCompletado, got.Status)
	assert.Equal(t, "29 TON", got.Quantity, "la cantidad facturada se finaliza con la entregada")
	require.Len(t, got.History, 2, "una sola entrada de historial para ambos cambios")
	assert.Equal(t, "Pedido completado", got.History[0].Action)
	assert.Contains(t, got.History[0].Details, "29 TON")
	assert.Contains(t, got.History[0].Details, "30 TON", "el detalle conserva la cantidad facturada original")
}

func TestComplete_CantidadIgual_NoTocaCantidad(t *testing.T) {
	o := pedidoBase()
	o.Status = entity.StatusEnSitio

	got := order.Complete(o, "30 TON", "ana", testNow)

	assert.Equal(t, entity.StatusCompletado, got.Status)
	assert.Equal(t, "30 TON", got.Quantity)
	require.Len(t, got.History, 2)
	assert.NotContains(t, got.History[0].Details, "cantidad final confirmada")
}

func TestComplete_SinCantidad_SoloEstado(t *testing.T) {
	o := pedidoBase()
	o.Status = entity.StatusEnSitio

	got := order.Complete(o, "", "ana", testNow)

	assert.Equal(t, entity.StatusCompletado, got.Status)
	assert.Equal(t, "30 TON", got.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyReguia
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyReguia_SobrescribeClienteYDestino(t *testing.T) {
	o := pedidoBase()
	o.RIF = "J-12345678-9"
	d := order.ReguiaData{
		ClientName:   "Ferretería El Tonelero",
		AddressLabel: "Av. Principal, Catedral, Iribarren, Lara",
		State:        "Lara",
		Municipality: "Iribarren",
		Parish:       "Catedral",
		Detail:       "Av. Principal",
	}
	got := order.ApplyReguia(o, d, "ana", testNow)

	assert.Equal(t, "Ferretería El Tonelero", got.Client)
	assert.Equal(t, "Ferretería El Tonelero", got.FinalClient)
	assert.Equal(t, d.AddressLabel, got.FinalAddress)
	assert.Equal(t, "Lara", got.DestinationState)
	assert.Equal(t, "Iribarren", got.DestinationMunicipality)
	assert.Equal(t, "Catedral", got.DestinationParish)
	assert.Equal(t, "Av. Principal", got.DestinationDetail)
	// La reguía no toca el RIF facturado.
	assert.Equal(t, "J-12345678-9", got.RIF)

	// No hay par "original vs actual": la recuperabilidad queda en el historial.
	require.Len(t, got.History, 2)
	assert.Equal(t, "Reguía", got.History[0].Action)
	assert.Contains(t, got.History[0].Details, "Constructora Andina C.A.")
	assert.Contains(t, got.History[0].Details, "Ferretería El Tonelero")
}

func TestApplyReguia_VendedorOpcional(t *testing.T) {
	o := pedidoBase()
	o.SellerID = "V-001"
	o.SellerName = "Pedro"

	sinVendedor := order.ApplyReguia(o, order.ReguiaData{ClientName: "Nuevo"}, "ana", testNow)
	assert.Equal(t, "V-001", sinVendedor.SellerID, "sin vendedor en la reguía se mantiene el actual")
	assert.Equal(t, "Pedro", sinVendedor.SellerName)

	conVendedor := order.ApplyReguia(o, order.ReguiaData{
		ClientName: "Nuevo", SellerID: "V-002", SellerName: "Luisa",
	}, "ana", testNow)
	assert.Equal(t, "V-002", conVendedor.SellerID)
	assert.Equal(t, "Luisa", conVendedor.SellerName)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReassignTransport
// ──────────────────────────────────────────────────────────────────────────────

func TestReassignTransport_EntradaConsolidada(t *testing.T) {
	o := pedidoBase()
	sel := order.TransportSelection{
		Driver: &entity.Driver{Name: "José Mendoza", Cedula: "V-9.999.999", Phone: "0414-5551234"},
		Truck:  &entity.Truck{Name: "Mack 01", Plate: "A12BC3D", Brand: "Mack"},
	}
	got := order.ReassignTransport(o, sel, "ana", testNow)

	assert.Equal(t, "José Mendoza", got.Driver)
	assert.Equal(t, "V-9.999.999", got.DriverCedula)
	assert.Equal(t, "Mack 01", got.Truck)
	assert.Equal(t, "A12BC3D", got.Plate)

	require.Len(t, got.History, 2, "una sola entrada consolidada, no una por campo")
	assert.Equal(t, "Transporte reasignado", got.History[0].Action)
	assert.Contains(t, got.History[0].Details, "chofer: José Mendoza")
	assert.Contains(t, got.History[0].Details, "chuto: Mack 01 (A12BC3D)")
	assert.NotContains(t, got.History[0].Details, "batea", "lo no seleccionado no aparece en el detalle")
}

func TestReassignTransport_SeleccionVacia_NoHaceNada(t *testing.T) {
	o := pedidoBase()
	got := order.ReassignTransport(o, order.TransportSelection{}, "ana", testNow)
	assert.Equal(t, o, got, "sin selección el pedido queda idéntico, sin historial nuevo")
}
