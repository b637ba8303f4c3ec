// Package repository define los puertos de persistencia del dominio.
//
// El almacén subyacente es documental: cada clave nombra una colección lógica
// y el valor es un documento JSON (normalmente un arreglo de registros). No
// hay API de actualización parcial: toda mutación lee la colección completa,
// transforma un registro y reescribe la colección completa. Esa granularidad
// se conserva a propósito; el control de versión optimista en Save evita que
// dos escritores concurrentes se pisen la colección.
package repository

import (
	"context"
	"encoding/json"
)

// Claves de colección del almacén documental.
const (
	KeyActiveOrders = "active_orders"
	KeyClients      = "clients_data"
	KeySellers      = "sellers_data"
	KeyPlants       = "plants_data"
	KeyDrivers      = "drivers_data"
	KeyFleet        = "fleet_data"
	KeyTrailers     = "trailers_data"
	KeyUsers        = "users_data"
)

// CollectionStore es el colaborador externo de persistencia.
// Get devuelve (nil, 0, nil) si la colección no existe todavía.
// Save con version distinta a la actual devuelve domain.ErrVersionConflict.
type CollectionStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, int64, error)
	Save(ctx context.Context, key string, value json.RawMessage, version int64) error
}
