package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
)

// Operaciones administrativas de mantenimiento sobre la colección completa.
// Los pedidos nunca se eliminan individualmente; solo existen estas
// operaciones masivas, restringidas al rol admin en el router.

// DeleteByStatus elimina todos los pedidos en el estado dado y devuelve
// cuántos se eliminaron.
func (uc *LifecycleUseCase) DeleteByStatus(ctx context.Context, status, user string) (int, error) {
	all, version, err := uc.orders.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]entity.Order, 0, len(all))
	removed := 0
	for _, o := range all {
		if o.Status == status {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := uc.orders.SaveAll(ctx, kept, version); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			return 0, fmt.Errorf("mantenimiento: %w", err)
		}
		return 0, err
	}
	uc.log.Warn().Str("estado", status).Int("eliminados", removed).Str("usuario", user).Msg("eliminación masiva por estado")
	return removed, nil
}

// Truncate vacía la colección de pedidos por completo.
func (uc *LifecycleUseCase) Truncate(ctx context.Context, user string) error {
	_, version, err := uc.orders.GetAll(ctx)
	if err != nil {
		return err
	}
	if err := uc.orders.SaveAll(ctx, nil, version); err != nil {
		return err
	}
	uc.log.Warn().Str("usuario", user).Msg("colección de pedidos truncada")
	return nil
}
