// Package collections adapta el almacén documental (CollectionStore) a los
// repositorios tipados del dominio. Cada repositorio lee y reescribe su
// colección completa como un arreglo JSON; la versión leída viaja junto con
// los datos para que el escritor la presente al guardar.
package collections

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
)

// loadAll deserializa la colección completa bajo key. Colección inexistente
// equivale a lista vacía con versión 0.
func loadAll[T any](ctx context.Context, store repository.CollectionStore, key string) ([]T, int64, error) {
	raw, version, err := store.Get(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	if len(raw) == 0 {
		return nil, 0, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0, fmt.Errorf("decodificar colección %q: %w", key, err)
	}
	return items, version, nil
}

// saveAll serializa y reemplaza la colección completa bajo key.
func saveAll[T any](ctx context.Context, store repository.CollectionStore, key string, items []T, version int64) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar colección %q: %w", key, err)
	}
	return store.Save(ctx, key, raw, version)
}
