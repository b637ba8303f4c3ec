package collections

import (
	"context"

	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo expone la colección active_orders. Toda mutación de pedidos pasa
// por leer la colección completa y reescribirla completa: no existe API por
// fila, por fidelidad con el almacén documental original.
type OrderRepo struct {
	store repository.CollectionStore
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(store repository.CollectionStore) *OrderRepo {
	return &OrderRepo{store: store}
}

// GetAll devuelve todos los pedidos y la versión de la colección.
func (r *OrderRepo) GetAll(ctx context.Context) ([]entity.Order, int64, error) {
	return loadAll[entity.Order](ctx, r.store, repository.KeyActiveOrders)
}

// SaveAll reemplaza la colección completa de pedidos.
func (r *OrderRepo) SaveAll(ctx context.Context, orders []entity.Order, version int64) error {
	return saveAll(ctx, r.store, repository.KeyActiveOrders, orders, version)
}
