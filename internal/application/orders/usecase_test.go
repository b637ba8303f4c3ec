package orders_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/application/orders"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/finance"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
	"github.com/tu-usuario/fletes-pro/internal/infrastructure/collections"
	"github.com/tu-usuario/fletes-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: directorios completos sobre MemStore
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc     *orders.LifecycleUseCase
	orders repository.OrderRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := collections.NewMemStore()

	orderRepo := collections.NewOrderRepository(store)
	clientRepo := collections.NewClientRepository(store)
	sellerRepo := collections.NewSellerRepository(store)
	plantRepo := collections.NewPlantRepository(store)
	fleetRepo := collections.NewFleetRepository(store)

	require.NoError(t, clientRepo.SaveAll(ctx, []entity.Client{
		{
			ID:   "c1",
			Name: "Constructora Andina C.A.",
			RIF:  "J-12345678-9",
			Addresses: []entity.Address{
				{ID: "a1", State: "Lara", Municipality: "Iribarren", Parish: "Catedral", Detail: "Zona Industrial I", IsFiscal: true},
				{ID: "a2", State: "Yaracuy", Municipality: "San Felipe", Detail: "Galpón 4"},
			},
		},
		{
			ID:   "c2",
			Name: "Ferretería El Tonelero",
			RIF:  "J-98765432-1",
			Addresses: []entity.Address{
				{ID: "b1", State: "Portuguesa", Municipality: "Guanare", Detail: "Carrera 5", IsFiscal: true},
			},
		},
	}, 0))

	sellers, version, err := sellerRepo.GetAll(ctx)
	require.NoError(t, err)
	require.NoError(t, sellerRepo.SaveAll(ctx, append(sellers, entity.Seller{
		ID: "v1", Name: "Luisa Rondón", Commission: decimal.RequireFromString("2.5"),
	}), version))

	require.NoError(t, plantRepo.SaveAll(ctx, []entity.Plant{
		{
			ID:   "pl1",
			Name: "Planta Barquisimeto",
			Products: []entity.PlantProduct{
				{ProductID: "cemento-gris", DefaultQuantity: "30 TON"},
			},
		},
	}, 0))

	require.NoError(t, fleetRepo.SaveDrivers(ctx, []entity.Driver{
		{ID: "d1", Name: "José Mendoza", Cedula: "V-9.999.999", Phone: "0414-5551234"},
	}, 0))
	require.NoError(t, fleetRepo.SaveTrucks(ctx, []entity.Truck{
		{ID: "t1", Name: "Mack 01", Plate: "A12BC3D", Brand: "Mack"},
	}, 0))
	require.NoError(t, fleetRepo.SaveTrailers(ctx, []entity.Trailer{
		{ID: "tr1", Plate: "B98XY7Z", Type: "Tolva"},
	}, 0))

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return &fixture{
		uc:     orders.NewLifecycleUseCase(orderRepo, clientRepo, sellerRepo, plantRepo, fleetRepo, log),
		orders: orderRepo,
	}
}

func crearPedido(t *testing.T, f *fixture) entity.Order {
	t.Helper()
	o, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		PlantID:      "pl1",
		ClientID:     "c1",
		ProductID:    "cemento-gris",
		FreightPrice: decimal.NewFromInt(1000),
		PlantCost:    decimal.NewFromInt(600),
	}, "ana")
	require.NoError(t, err)
	return o
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistente de creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DespachoInmediato(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)

	assert.Equal(t, "PED-0001", o.ID)
	assert.Equal(t, entity.StatusCargado, o.Status, "sin programar entra directo como Cargado en sistema")
	assert.Equal(t, "Constructora Andina C.A.", o.Client)
	assert.Equal(t, "J-12345678-9", o.RIF)
	assert.Equal(t, "30 TON", o.Quantity, "sin cantidad explícita aplica la cantidad por defecto de la planta")
	assert.Equal(t, "Planta Barquisimeto", o.Origin)
	assert.Equal(t, entity.HouseSellerID, o.SellerID, "sin vendedor el pedido es de Oficina")
	assert.Equal(t, entity.PaymentPendiente, o.PaymentStatus)
	assert.Equal(t, "Lara", o.DestinationState, "sin dirección explícita aplica la fiscal")
	require.Len(t, o.History, 1)
	assert.Equal(t, "Pedido creado", o.History[0].Action)
}

func TestCreate_Programado_PrefijoVIA(t *testing.T) {
	f := newFixture(t)
	o, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		PlantID:   "pl1",
		ClientID:  "c1",
		ProductID: "cemento-gris",
		Scheduled: true,
	}, "ana")
	require.NoError(t, err)

	assert.Equal(t, "VIA-0001", o.ID)
	assert.Equal(t, entity.StatusProgramado, o.Status)
}

func TestCreate_ConsecutivosPorPrefijo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	crearPedido(t, f)
	segundo := crearPedido(t, f)
	assert.Equal(t, "PED-0002", segundo.ID)

	programado, err := f.uc.Create(ctx, dto.CreateOrderRequest{
		PlantID: "pl1", ClientID: "c1", ProductID: "cemento-gris", Scheduled: true,
	}, "ana")
	require.NoError(t, err)
	assert.Equal(t, "VIA-0001", programado.ID, "los consecutivos PED y VIA son independientes")
}

func TestCreate_ProductoQueLaPlantaNoDespacha(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		PlantID: "pl1", ClientID: "c1", ProductID: "cal-hidratada",
	}, "ana")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_DireccionExplicita(t *testing.T) {
	f := newFixture(t)
	o, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		PlantID: "pl1", ClientID: "c1", ProductID: "cemento-gris", AddressID: "a2",
	}, "ana")
	require.NoError(t, err)
	assert.Equal(t, "Yaracuy", o.DestinationState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func avanzarHasta(t *testing.T, f *fixture, id string, estados ...string) entity.Order {
	t.Helper()
	var o entity.Order
	var err error
	for _, s := range estados {
		o, err = f.uc.ChangeStatus(context.Background(), id, dto.ChangeStatusRequest{Status: s}, "ana")
		require.NoError(t, err)
	}
	return o
}

func TestChangeStatus_TransicionInvalidaNoMuta(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)

	_, err := f.uc.ChangeStatus(context.Background(), o.ID,
		dto.ChangeStatusRequest{Status: entity.StatusProgramado}, "ana")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	fresh, err := f.uc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCargado, fresh.Status, "el pedido no debe cambiar tras una transición rechazada")
	assert.Len(t, fresh.History, 1)
}

func TestChangeStatus_CompletarConCantidadDistinta(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)
	avanzarHasta(t, f, o.ID, entity.StatusCargando, entity.StatusEnRuta, entity.StatusEnSitio)

	done, err := f.uc.ChangeStatus(context.Background(), o.ID,
		dto.ChangeStatusRequest{Status: entity.StatusCompletado, DeliveredQuantity: "29 TON"}, "ana")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCompletado, done.Status)
	assert.Equal(t, "29 TON", done.Quantity)
	// creación + 3 avances + finalización = 5 entradas; el acople no agrega una sexta.
	assert.Len(t, done.History, 5)
	assert.Contains(t, done.History[0].Details, "30 TON")
}

func TestChangeStatus_PedidoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.ChangeStatus(context.Background(), "PED-9999",
		dto.ChangeStatusRequest{Status: entity.StatusCargando}, "ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reguía
// ──────────────────────────────────────────────────────────────────────────────

func TestReguia_EnRuta_DesviaElPedido(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)
	avanzarHasta(t, f, o.ID, entity.StatusCargando, entity.StatusEnRuta)

	desviado, err := f.uc.Reguia(context.Background(), o.ID, dto.ReguiaRequest{
		ClientID: "c2", AddressID: "b1",
	}, "ana")
	require.NoError(t, err)

	assert.Equal(t, "Ferretería El Tonelero", desviado.Client)
	assert.Equal(t, "Ferretería El Tonelero", desviado.FinalClient)
	assert.Equal(t, "Portuguesa", desviado.DestinationState)
	assert.Equal(t, entity.StatusEnRuta, desviado.Status, "la reguía no toca el estado")
	assert.Equal(t, "Reguía", desviado.History[0].Action)
	assert.Contains(t, desviado.History[0].Details, "Constructora Andina C.A.")
}

func TestReguia_FueraDeTransito_Rechazada(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f) // Cargado en sistema

	_, err := f.uc.Reguia(context.Background(), o.ID, dto.ReguiaRequest{
		ClientID: "c2", AddressID: "b1",
	}, "ana")
	assert.ErrorIs(t, err, domain.ErrReguiaNotAllowed)

	fresh, err := f.uc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Constructora Andina C.A.", fresh.Client, "rechazo sin mutación parcial")
}

func TestReguia_DireccionInexistente_NadaAMedias(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)
	avanzarHasta(t, f, o.ID, entity.StatusCargando, entity.StatusEnRuta)

	_, err := f.uc.Reguia(context.Background(), o.ID, dto.ReguiaRequest{
		ClientID: "c2", AddressID: "no-existe",
	}, "ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	fresh, err := f.uc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Constructora Andina C.A.", fresh.Client)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transporte, pago, campo único
// ──────────────────────────────────────────────────────────────────────────────

func TestReassignTransport_ResuelveContraLaFlota(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)

	updated, err := f.uc.ReassignTransport(context.Background(), o.ID, dto.ReassignTransportRequest{
		DriverID: "d1", TruckID: "t1",
	}, "ana")
	require.NoError(t, err)

	assert.Equal(t, "José Mendoza", updated.Driver)
	assert.Equal(t, "A12BC3D", updated.Plate)
	assert.Empty(t, updated.TrailerPlate, "lo no seleccionado no se toca")
	assert.Equal(t, "Transporte reasignado", updated.History[0].Action)
}

func TestReassignTransport_IDDesconocido(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)

	_, err := f.uc.ReassignTransport(context.Background(), o.ID, dto.ReassignTransportRequest{
		DriverID: "fantasma",
	}, "ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReassignTransport_SeleccionVacia(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)

	_, err := f.uc.ReassignTransport(context.Background(), o.ID, dto.ReassignTransportRequest{}, "ana")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterPayment_IndependienteDelEstado(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f) // aún Cargado en sistema

	updated, err := f.uc.RegisterPayment(context.Background(), o.ID, dto.RegisterPaymentRequest{
		Status: entity.PaymentPagado, Method: "transferencia", Reference: "TRF-100",
	}, "ana")
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentPagado, updated.PaymentStatus)
	assert.Equal(t, entity.StatusCargado, updated.Status)
	assert.Contains(t, updated.History[0].Details, "TRF-100")
}

func TestActualizadoresDeCampoUnico_UnaEntradaCadaUno(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := crearPedido(t, f)

	_, err := f.uc.UpdateSalesOrderNumber(ctx, o.ID, "SO-991", "ana")
	require.NoError(t, err)
	_, err = f.uc.UpdateDeliveryDate(ctx, o.ID, "2025-07-01", "ana")
	require.NoError(t, err)
	updated, err := f.uc.UpdateLoadedQuantity(ctx, o.ID, "29 TON", "ana")
	require.NoError(t, err)

	assert.Equal(t, "SO-991", updated.SalesOrderNumber)
	assert.Equal(t, "2025-07-01", updated.DeliveryDate)
	assert.Equal(t, "29 TON", updated.LoadedQuantity)
	assert.Len(t, updated.History, 4, "creación + tres ediciones de campo único")
}

func TestUpdateClient_SincronizaDestinoEfectivo(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)

	updated, err := f.uc.UpdateClient(context.Background(), o.ID, "c2", "ana")
	require.NoError(t, err)

	assert.Equal(t, "Ferretería El Tonelero", updated.Client)
	assert.Equal(t, "J-98765432-1", updated.RIF)
	// El destino efectivo no puede quedar apuntando al cliente anterior.
	assert.Equal(t, "Ferretería El Tonelero", updated.FinalClient)
	assert.Equal(t, "Carrera 5, Guanare, Portuguesa", updated.FinalAddress)
	assert.Equal(t, "Portuguesa", updated.DestinationState)
	assert.Len(t, updated.History, 2)
	assert.Equal(t, "Cambio de cliente", updated.History[0].Action)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recorrido completo: crear → tránsito → reguía → completar → billetera
// ──────────────────────────────────────────────────────────────────────────────

func TestRecorridoCompleto_DeficitLlegaALaBilletera(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := crearPedido(t, f)

	_, err := f.uc.UpdateLoadedQuantity(ctx, o.ID, "29 TON", "ana")
	require.NoError(t, err)
	avanzarHasta(t, f, o.ID, entity.StatusCargando, entity.StatusEnRuta)

	_, err = f.uc.Reguia(ctx, o.ID, dto.ReguiaRequest{ClientID: "c2", AddressID: "b1", SellerID: "v1"}, "ana")
	require.NoError(t, err)

	// Se completa directamente desde En Ruta, sin registrar llegada a sitio.
	done, err := f.uc.ChangeStatus(ctx, o.ID,
		dto.ChangeStatusRequest{Status: entity.StatusCompletado}, "ana")
	require.NoError(t, err)
	assert.Equal(t, "Luisa Rondón", done.SellerName)
	// creación + cantidad cargada + 2 avances + reguía + finalización.
	assert.Len(t, done.History, 6)

	all, _, err := f.orders.GetAll(ctx)
	require.NoError(t, err)
	wallet := finance.PlantWallet(all)
	require.Contains(t, wallet, "Planta Barquisimeto")
	assert.True(t, wallet["Planta Barquisimeto"].QuantityOwed.Equal(decimal.NewFromInt(1)),
		"30 facturadas, 29 cargadas: la planta queda debiendo 1 TON")
}

func TestCredit_ReportaDeficitYMonto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := crearPedido(t, f)

	_, err := f.uc.UpdateLoadedQuantity(ctx, o.ID, "27 TON", "ana")
	require.NoError(t, err)

	credit, err := f.uc.Credit(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, credit.Deficit.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, "TON", credit.Unit)
	// PlantCost 600 sobre 30 TON facturadas → 20 por TON → 60 de crédito.
	assert.True(t, credit.EstimatedCredit.Equal(decimal.NewFromInt(60)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reintento ante conflicto de versión
// ──────────────────────────────────────────────────────────────────────────────

// conflictingRepo fuerza ErrVersionConflict en los primeros n SaveAll.
type conflictingRepo struct {
	repository.OrderRepository
	failures int
}

func (r *conflictingRepo) SaveAll(ctx context.Context, all []entity.Order, version int64) error {
	if r.failures > 0 {
		r.failures--
		return domain.ErrVersionConflict
	}
	return r.OrderRepository.SaveAll(ctx, all, version)
}

func TestMutate_ReintentaTrasConflicto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o := crearPedido(t, f)

	flaky := &conflictingRepo{OrderRepository: f.orders, failures: 2}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := orders.NewLifecycleUseCase(flaky, nil, nil, nil, nil, log)

	updated, err := uc.UpdateSalesOrderNumber(ctx, o.ID, "SO-777", "ana")
	require.NoError(t, err, "dos conflictos seguidos se absorben con reintento")
	assert.Equal(t, "SO-777", updated.SalesOrderNumber)
	assert.Zero(t, flaky.failures)
}

func TestMutate_ConflictoPersistenteSeRinde(t *testing.T) {
	f := newFixture(t)
	o := crearPedido(t, f)

	flaky := &conflictingRepo{OrderRepository: f.orders, failures: 100}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := orders.NewLifecycleUseCase(flaky, nil, nil, nil, nil, log)

	_, err := uc.UpdateSalesOrderNumber(context.Background(), o.ID, "SO-778", "ana")
	assert.True(t, errors.Is(err, domain.ErrVersionConflict), "agotados los intentos el conflicto sube al llamador")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y mantenimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltroPorEstadoYCliente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := crearPedido(t, f)
	crearPedido(t, f)
	avanzarHasta(t, f, a.ID, entity.StatusCargando)

	porEstado, err := f.uc.List(ctx, dto.OrderFilter{Status: entity.StatusCargando})
	require.NoError(t, err)
	require.Len(t, porEstado, 1)
	assert.Equal(t, a.ID, porEstado[0].ID)

	// Subcadena en minúsculas contra "Constructora Andina C.A.".
	porCliente, err := f.uc.List(ctx, dto.OrderFilter{Client: "constructora andina"})
	require.NoError(t, err)
	assert.Len(t, porCliente, 2)
}

func TestDeleteByStatus_SoloElEstadoIndicado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := crearPedido(t, f)
	crearPedido(t, f)
	avanzarHasta(t, f, a.ID, entity.StatusCargando)

	n, err := f.uc.DeleteByStatus(ctx, entity.StatusCargando, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	restantes, err := f.uc.List(ctx, dto.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, restantes, 1)
}

func TestTruncate_VaciaLaColeccion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	crearPedido(t, f)
	crearPedido(t, f)

	require.NoError(t, f.uc.Truncate(ctx, "admin"))

	restantes, err := f.uc.List(ctx, dto.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, restantes)
}
