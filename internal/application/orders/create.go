package orders

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/order"
)

// Prefijos de ID de pedido: PED para despachos inmediatos, VIA para viajes
// programados. El sufijo es un consecutivo de 4 dígitos por prefijo.
const (
	orderPrefix     = "PED"
	scheduledPrefix = "VIA"
)

// Create ejecuta el asistente de creación: resuelve planta, cliente, producto
// y vendedor contra los directorios, aplica los valores por defecto (cantidad
// por defecto de la planta, vendedor Oficina) y agrega el pedido a la
// colección en su estado inicial con su primera entrada de historial.
func (uc *LifecycleUseCase) Create(ctx context.Context, in dto.CreateOrderRequest, user string) (entity.Order, error) {
	plant, err := uc.findPlant(ctx, in.PlantID)
	if err != nil {
		return entity.Order{}, err
	}
	plantProduct := plant.ProductByID(in.ProductID)
	if plantProduct == nil {
		return entity.Order{}, fmt.Errorf("la planta %s no despacha el producto %q: %w", plant.Name, in.ProductID, domain.ErrInvalidInput)
	}
	client, err := uc.findClient(ctx, in.ClientID)
	if err != nil {
		return entity.Order{}, err
	}

	// Sin vendedor asignado, el pedido es de la casa: Oficina (V-000), 0% comisión.
	seller := entity.HouseSeller()
	if in.SellerID != "" {
		seller, err = uc.findSeller(ctx, in.SellerID)
		if err != nil {
			return entity.Order{}, err
		}
	}

	quantity := in.Quantity
	if quantity == "" {
		quantity = plantProduct.DefaultQuantity
	}

	address := client.FiscalAddress()
	if in.AddressID != "" {
		if a := client.AddressByID(in.AddressID); a != nil {
			address = a
		}
	}

	status := entity.StatusCargado
	prefix := orderPrefix
	if in.Scheduled {
		status = entity.StatusProgramado
		prefix = scheduledPrefix
	}

	now := uc.now()
	created, err := uc.appendOrder(ctx, func(all []entity.Order) (entity.Order, error) {
		o := entity.Order{
			ID:               nextOrderID(all, prefix),
			PlantOrderNumber: in.PlantOrderNumber,
			SalesOrderNumber: in.SalesOrderNumber,
			Client:           client.Name,
			RIF:              client.RIF,
			FinalClient:      client.Name,
			SellerID:         seller.ID,
			SellerName:       seller.Name,
			Product:          in.ProductID,
			Quantity:         quantity,
			Origin:           plant.Name,
			Status:           status,
			DeliveryDate:     in.DeliveryDate,
			FreightPrice:     in.FreightPrice,
			PlantCost:        in.PlantCost,
			DriverPayment:    in.DriverPayment,
			PaymentStatus:    entity.PaymentPendiente,
			CreatedAt:        now,
			History: []entity.HistoryEntry{
				order.NewHistoryEntry(now, "Pedido creado", "Creado en estado "+status, user),
			},
		}
		if address != nil {
			o.FinalAddress = addressLabel(*address)
			o.DestinationState = address.State
			o.DestinationMunicipality = address.Municipality
			o.DestinationParish = address.Parish
			o.DestinationDetail = address.Detail
		}
		return o, nil
	})
	if err != nil {
		return entity.Order{}, err
	}
	uc.log.Info().Str("pedido", created.ID).Str("cliente", client.Name).Str("usuario", user).Msg("pedido creado")
	return created, nil
}

// findPlant resuelve una planta del directorio; ErrNotFound si no existe.
func (uc *LifecycleUseCase) findPlant(ctx context.Context, id string) (entity.Plant, error) {
	plants, _, err := uc.plants.GetAll(ctx)
	if err != nil {
		return entity.Plant{}, err
	}
	for _, p := range plants {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Plant{}, fmt.Errorf("planta %q: %w", id, domain.ErrNotFound)
}

// nextOrderID genera el siguiente consecutivo para el prefijo dado:
// PED-0001, PED-0002, ... Se recalcula en cada intento de guardado porque
// otro escritor pudo haber tomado el número.
func nextOrderID(all []entity.Order, prefix string) string {
	max := 0
	for _, o := range all {
		rest, ok := strings.CutPrefix(o.ID, prefix+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, max+1)
}
