// Package orders orquesta todas las mutaciones del ciclo de vida del pedido.
// Cada operación sigue el mismo camino: leer la colección completa, validar la
// política (transiciones, precondiciones de reguía), aplicar el motor puro de
// internal/domain/order y reescribir la colección completa con reintento ante
// conflicto de versión.
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/finance"
	"github.com/tu-usuario/fletes-pro/internal/domain/order"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
	"github.com/tu-usuario/fletes-pro/pkg/logger"
	"github.com/tu-usuario/fletes-pro/pkg/texto"
)

// LifecycleUseCase casos de uso del ciclo de vida del pedido.
type LifecycleUseCase struct {
	orders  repository.OrderRepository
	clients repository.ClientRepository
	sellers repository.SellerRepository
	plants  repository.PlantRepository
	fleet   repository.FleetRepository
	log     *logger.Logger
	now     func() time.Time
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	sellers repository.SellerRepository,
	plants repository.PlantRepository,
	fleet repository.FleetRepository,
	log *logger.Logger,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		orders:  orders,
		clients: clients,
		sellers: sellers,
		plants:  plants,
		fleet:   fleet,
		log:     log.Component("pedidos"),
		now:     time.Now,
	}
}

// List devuelve los pedidos, opcionalmente filtrados por estado y por nombre
// de cliente (búsqueda insensible a acentos).
func (uc *LifecycleUseCase) List(ctx context.Context, filter dto.OrderFilter) ([]entity.Order, error) {
	all, _, err := uc.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Status == "" && filter.Client == "" {
		return all, nil
	}
	var out []entity.Order
	for _, o := range all {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Client != "" && !texto.Contains(o.Client, filter.Client) && !texto.Contains(o.FinalClient, filter.Client) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// Get devuelve un pedido por ID.
func (uc *LifecycleUseCase) Get(ctx context.Context, id string) (entity.Order, error) {
	all, _, err := uc.orders.GetAll(ctx)
	if err != nil {
		return entity.Order{}, err
	}
	for _, o := range all {
		if o.ID == id {
			return o, nil
		}
	}
	return entity.Order{}, domain.ErrNotFound
}

// Credit devuelve el déficit de carga del pedido y su crédito estimado
// (diff * costo unitario; ver finance.EstimatedCredit).
func (uc *LifecycleUseCase) Credit(ctx context.Context, id string) (dto.OrderCreditResponse, error) {
	o, err := uc.Get(ctx, id)
	if err != nil {
		return dto.OrderCreditResponse{}, err
	}
	billed, unit := order.ParseQuantity(o.Quantity)
	loaded := order.ParseQuantityValue(o.LoadedQuantity)
	diff := billed.Sub(loaded)
	resp := dto.OrderCreditResponse{
		OrderID:         o.ID,
		BilledQuantity:  o.Quantity,
		LoadedQuantity:  o.LoadedQuantity,
		Unit:            unit,
		EstimatedCredit: finance.EstimatedCredit(o),
	}
	// Solo el déficit (facturado > cargado) representa crédito; el exceso no se reporta.
	if diff.IsPositive() {
		resp.Deficit = diff
	}
	return resp, nil
}

// ChangeStatus avanza el estado operativo del pedido. La transición se valida
// contra el autómata antes de tocar el pedido; pasar a Completado acepta una
// cantidad entregada que, si difiere de la facturada, se finaliza en el mismo
// update con una sola entrada de historial.
func (uc *LifecycleUseCase) ChangeStatus(ctx context.Context, id string, in dto.ChangeStatusRequest, user string) (entity.Order, error) {
	updated, err := uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		if err := order.ValidateTransition(o.Status, in.Status); err != nil {
			return entity.Order{}, err
		}
		if in.Status == entity.StatusCompletado {
			return order.Complete(o, in.DeliveredQuantity, user, uc.now()), nil
		}
		return order.ChangeStatus(o, in.Status, user, uc.now()), nil
	})
	if err != nil {
		return entity.Order{}, err
	}
	uc.log.Info().Str("pedido", id).Str("estado", in.Status).Str("usuario", user).Msg("estado actualizado")
	return updated, nil
}

// UpdateClient reasigna el cliente del pedido (actualización de campo único
// con su propia línea de historial). El destino efectivo sigue al cliente de
// registro: FinalClient se sincroniza y la dirección se rederiva de la
// dirección fiscal del nuevo cliente (si no tiene direcciones registradas se
// conserva la anterior). Cliente desconocido: ErrNotFound.
func (uc *LifecycleUseCase) UpdateClient(ctx context.Context, id, clientID, user string) (entity.Order, error) {
	client, err := uc.findClient(ctx, clientID)
	if err != nil {
		return entity.Order{}, err
	}
	return uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		ch := order.Changes{Client: &client.Name, RIF: &client.RIF, FinalClient: &client.Name}
		if a := client.FiscalAddress(); a != nil {
			label := addressLabel(*a)
			ch.FinalAddress = &label
			ch.DestinationState = &a.State
			ch.DestinationMunicipality = &a.Municipality
			ch.DestinationParish = &a.Parish
			ch.DestinationDetail = &a.Detail
		}
		entry := order.NewHistoryEntry(uc.now(), "Cambio de cliente",
			"Cliente cambiado a "+client.Name+" (antes "+o.Client+")", user)
		return order.ApplyUpdate(o, ch, &entry), nil
	})
}

// UpdateSeller reasigna el vendedor (campo único, su propia línea de historial).
func (uc *LifecycleUseCase) UpdateSeller(ctx context.Context, id, sellerID, user string) (entity.Order, error) {
	seller, err := uc.findSeller(ctx, sellerID)
	if err != nil {
		return entity.Order{}, err
	}
	return uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		ch := order.Changes{SellerID: &seller.ID, SellerName: &seller.Name}
		entry := order.NewHistoryEntry(uc.now(), "Cambio de vendedor",
			"Vendedor cambiado a "+seller.Name+" (antes "+o.SellerName+")", user)
		return order.ApplyUpdate(o, ch, &entry), nil
	})
}

// UpdateSalesOrderNumber fija el número de orden de venta (campo único).
func (uc *LifecycleUseCase) UpdateSalesOrderNumber(ctx context.Context, id, number, user string) (entity.Order, error) {
	return uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		ch := order.Changes{SalesOrderNumber: &number}
		entry := order.NewHistoryEntry(uc.now(), "Número de orden de venta",
			"Número de orden de venta: "+number, user)
		return order.ApplyUpdate(o, ch, &entry), nil
	})
}

// UpdateDeliveryDate fija la fecha de entrega (campo único).
func (uc *LifecycleUseCase) UpdateDeliveryDate(ctx context.Context, id, date, user string) (entity.Order, error) {
	return uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		ch := order.Changes{DeliveryDate: &date}
		entry := order.NewHistoryEntry(uc.now(), "Fecha de entrega",
			"Fecha de entrega: "+date, user)
		return order.ApplyUpdate(o, ch, &entry), nil
	})
}

// UpdateLoadedQuantity registra la cantidad que la planta realmente cargó.
// La diferencia con la facturada alimenta la billetera de plantas.
func (uc *LifecycleUseCase) UpdateLoadedQuantity(ctx context.Context, id, loaded, user string) (entity.Order, error) {
	return uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		ch := order.Changes{LoadedQuantity: &loaded}
		entry := order.NewHistoryEntry(uc.now(), "Cantidad cargada",
			"Cantidad cargada por planta: "+loaded, user)
		return order.ApplyUpdate(o, ch, &entry), nil
	})
}

// RegisterPayment registra el estado de pago, independiente del estado
// operativo del pedido.
func (uc *LifecycleUseCase) RegisterPayment(ctx context.Context, id string, in dto.RegisterPaymentRequest, user string) (entity.Order, error) {
	return uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		ch := order.Changes{
			PaymentStatus:    &in.Status,
			PaymentMethod:    &in.Method,
			PaymentReference: &in.Reference,
			PaymentComment:   &in.Comment,
			PaymentDate:      &in.Date,
		}
		details := "Pago: " + in.Status
		if in.Method != "" {
			details += ", método " + in.Method
		}
		if in.Reference != "" {
			details += ", ref. " + in.Reference
		}
		entry := order.NewHistoryEntry(uc.now(), "Pago registrado", details, user)
		return order.ApplyUpdate(o, ch, &entry), nil
	})
}

// findClient resuelve un cliente del directorio; ErrNotFound si no existe.
func (uc *LifecycleUseCase) findClient(ctx context.Context, id string) (entity.Client, error) {
	clients, _, err := uc.clients.GetAll(ctx)
	if err != nil {
		return entity.Client{}, err
	}
	for _, c := range clients {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Client{}, fmt.Errorf("cliente %q: %w", id, domain.ErrNotFound)
}

// findSeller resuelve un vendedor del directorio; ErrNotFound si no existe.
func (uc *LifecycleUseCase) findSeller(ctx context.Context, id string) (entity.Seller, error) {
	sellers, _, err := uc.sellers.GetAll(ctx)
	if err != nil {
		return entity.Seller{}, err
	}
	for _, s := range sellers {
		if s.ID == id {
			return s, nil
		}
	}
	return entity.Seller{}, fmt.Errorf("vendedor %q: %w", id, domain.ErrNotFound)
}

// addressLabel arma el texto completo de una dirección de entrega.
func addressLabel(a entity.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Detail, a.Parish, a.Municipality, a.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
