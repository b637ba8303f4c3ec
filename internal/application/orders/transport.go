package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/order"
)

// ReassignTransport asigna chofer, chuto y batea al pedido. Los tres se
// seleccionan de forma independiente y cualquiera puede faltar; solo los
// presentes se aplican, en un único patch con una sola entrada de historial
// consolidada. Un ID suministrado pero inexistente rechaza la operación.
func (uc *LifecycleUseCase) ReassignTransport(ctx context.Context, id string, in dto.ReassignTransportRequest, user string) (entity.Order, error) {
	sel := order.TransportSelection{}

	if in.DriverID != "" {
		drivers, _, err := uc.fleet.GetDrivers(ctx)
		if err != nil {
			return entity.Order{}, err
		}
		for i := range drivers {
			if drivers[i].ID == in.DriverID {
				sel.Driver = &drivers[i]
				break
			}
		}
		if sel.Driver == nil {
			return entity.Order{}, fmt.Errorf("chofer %q: %w", in.DriverID, domain.ErrNotFound)
		}
	}
	if in.TruckID != "" {
		trucks, _, err := uc.fleet.GetTrucks(ctx)
		if err != nil {
			return entity.Order{}, err
		}
		for i := range trucks {
			if trucks[i].ID == in.TruckID {
				sel.Truck = &trucks[i]
				break
			}
		}
		if sel.Truck == nil {
			return entity.Order{}, fmt.Errorf("chuto %q: %w", in.TruckID, domain.ErrNotFound)
		}
	}
	if in.TrailerID != "" {
		trailers, _, err := uc.fleet.GetTrailers(ctx)
		if err != nil {
			return entity.Order{}, err
		}
		for i := range trailers {
			if trailers[i].ID == in.TrailerID {
				sel.Trailer = &trailers[i]
				break
			}
		}
		if sel.Trailer == nil {
			return entity.Order{}, fmt.Errorf("batea %q: %w", in.TrailerID, domain.ErrNotFound)
		}
	}

	if sel.Driver == nil && sel.Truck == nil && sel.Trailer == nil {
		return entity.Order{}, fmt.Errorf("selección de transporte vacía: %w", domain.ErrInvalidInput)
	}

	return uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		return order.ReassignTransport(o, sel, user, uc.now()), nil
	})
}
