package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/order"
)

// Reguia desvía un pedido en tránsito hacia otro cliente/destino/vendedor.
//
// Precondición de negocio: el pedido debe estar En Ruta o En Sitio. Antes del
// despacho la desviación no tiene sentido (se edita el pedido directamente) y
// después de Completado o Cancelado ya no hay carga que desviar. La
// precondición se verifica dentro de la mutación, sobre el estado recién
// leído, para que una carrera con otro escritor no la burle.
//
// Cliente o dirección inexistentes rechazan la operación completa con
// ErrNotFound: no se aplica ningún campo a medias.
func (uc *LifecycleUseCase) Reguia(ctx context.Context, id string, in dto.ReguiaRequest, user string) (entity.Order, error) {
	client, err := uc.findClient(ctx, in.ClientID)
	if err != nil {
		return entity.Order{}, err
	}
	address := client.AddressByID(in.AddressID)
	if address == nil {
		return entity.Order{}, fmt.Errorf("dirección %q del cliente %s: %w", in.AddressID, client.Name, domain.ErrNotFound)
	}

	data := order.ReguiaData{
		ClientName:   client.Name,
		AddressLabel: addressLabel(*address),
		State:        address.State,
		Municipality: address.Municipality,
		Parish:       address.Parish,
		Detail:       address.Detail,
	}
	if in.SellerID != "" {
		seller, err := uc.findSeller(ctx, in.SellerID)
		if err != nil {
			return entity.Order{}, err
		}
		data.SellerID = seller.ID
		data.SellerName = seller.Name
	}

	updated, err := uc.mutate(ctx, id, func(o entity.Order) (entity.Order, error) {
		if o.Status != entity.StatusEnRuta && o.Status != entity.StatusEnSitio {
			return entity.Order{}, fmt.Errorf("%w (estado actual: %s)", domain.ErrReguiaNotAllowed, o.Status)
		}
		return order.ApplyReguia(o, data, user, uc.now()), nil
	})
	if err != nil {
		return entity.Order{}, err
	}
	uc.log.Info().Str("pedido", id).Str("nuevoCliente", client.Name).Str("usuario", user).Msg("reguía aplicada")
	return updated, nil
}
