package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
)

const maxSaveAttempts = 5

// mutate es el camino único de toda mutación de pedidos: lee la colección
// completa, localiza el pedido, aplica fn y reescribe la colección completa
// presentando la versión leída. Si otro escritor ganó la carrera
// (ErrVersionConflict) se relee y se reintenta con backoff exponencial, de
// modo que dos ediciones concurrentes sobre pedidos distintos convergen en
// lugar de pisarse. Los errores de política de fn no se reintentan.
func (uc *LifecycleUseCase) mutate(ctx context.Context, id string, fn func(entity.Order) (entity.Order, error)) (entity.Order, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond

	for attempt := 1; ; attempt++ {
		all, version, err := uc.orders.GetAll(ctx)
		if err != nil {
			return entity.Order{}, err
		}
		idx := -1
		for i := range all {
			if all[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return entity.Order{}, fmt.Errorf("pedido %q: %w", id, domain.ErrNotFound)
		}

		updated, err := fn(all[idx])
		if err != nil {
			return entity.Order{}, err
		}
		all[idx] = updated

		err = uc.orders.SaveAll(ctx, all, version)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) || attempt >= maxSaveAttempts {
			return entity.Order{}, err
		}

		uc.log.Warn().Str("pedido", id).Int("intento", attempt).Msg("conflicto de versión al guardar, reintentando")
		sleep := bo.NextBackOff()
		if sleep == backoff.Stop {
			sleep = bo.MaxInterval
		}
		select {
		case <-ctx.Done():
			return entity.Order{}, ctx.Err()
		case <-time.After(sleep):
		}
	}
}

// appendOrder agrega un pedido nuevo a la colección con el mismo esquema de
// reintento. fn recibe la colección actual y devuelve el pedido a agregar
// (se re-ejecuta en cada intento porque el ID depende del contenido).
func (uc *LifecycleUseCase) appendOrder(ctx context.Context, fn func([]entity.Order) (entity.Order, error)) (entity.Order, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond

	for attempt := 1; ; attempt++ {
		all, version, err := uc.orders.GetAll(ctx)
		if err != nil {
			return entity.Order{}, err
		}
		created, err := fn(all)
		if err != nil {
			return entity.Order{}, err
		}
		err = uc.orders.SaveAll(ctx, append(all, created), version)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) || attempt >= maxSaveAttempts {
			return entity.Order{}, err
		}

		sleep := bo.NextBackOff()
		if sleep == backoff.Stop {
			sleep = bo.MaxInterval
		}
		select {
		case <-ctx.Done():
			return entity.Order{}, ctx.Err()
		case <-time.After(sleep):
		}
	}
}
