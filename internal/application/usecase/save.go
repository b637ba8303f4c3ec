package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tu-usuario/fletes-pro/internal/domain"
)

const maxSaveAttempts = 5

// saveCollection ejecuta el ciclo leer-modificar-guardar de los catálogos:
// lee la colección completa, aplica fn y la reescribe presentando la versión
// leída. Un ErrVersionConflict relee y reintenta con backoff exponencial;
// cualquier otro error (incluidos los de política de fn) corta de inmediato.
func saveCollection[T any](
	ctx context.Context,
	get func(context.Context) ([]T, int64, error),
	save func(context.Context, []T, int64) error,
	fn func([]T) ([]T, error),
) ([]T, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond

	for attempt := 1; ; attempt++ {
		all, version, err := get(ctx)
		if err != nil {
			return nil, err
		}
		updated, err := fn(all)
		if err != nil {
			return nil, err
		}
		err = save(ctx, updated, version)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) || attempt >= maxSaveAttempts {
			return nil, err
		}

		sleep := bo.NextBackOff()
		if sleep == backoff.Stop {
			sleep = bo.MaxInterval
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
}
