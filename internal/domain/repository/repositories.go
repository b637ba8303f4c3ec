package repository

import (
	"context"

	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
)

// Los repositorios exponen la semántica real del almacén: lectura de la
// colección completa y reemplazo de la colección completa. La versión que
// devuelve GetAll debe pasarse a SaveAll para detectar escritores
// concurrentes (domain.ErrVersionConflict).

// OrderRepository trabaja sobre la colección active_orders.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]entity.Order, int64, error)
	SaveAll(ctx context.Context, orders []entity.Order, version int64) error
}

// ClientRepository trabaja sobre clients_data.
type ClientRepository interface {
	GetAll(ctx context.Context) ([]entity.Client, int64, error)
	SaveAll(ctx context.Context, clients []entity.Client, version int64) error
}

// SellerRepository trabaja sobre sellers_data. La implementación siembra el
// vendedor de casa Oficina (V-000) cuando la colección está vacía.
type SellerRepository interface {
	GetAll(ctx context.Context) ([]entity.Seller, int64, error)
	SaveAll(ctx context.Context, sellers []entity.Seller, version int64) error
}

// PlantRepository trabaja sobre plants_data.
type PlantRepository interface {
	GetAll(ctx context.Context) ([]entity.Plant, int64, error)
	SaveAll(ctx context.Context, plants []entity.Plant, version int64) error
}

// FleetRepository agrupa las colecciones de flota: choferes, chutos y bateas.
type FleetRepository interface {
	GetDrivers(ctx context.Context) ([]entity.Driver, int64, error)
	SaveDrivers(ctx context.Context, drivers []entity.Driver, version int64) error
	GetTrucks(ctx context.Context) ([]entity.Truck, int64, error)
	SaveTrucks(ctx context.Context, trucks []entity.Truck, version int64) error
	GetTrailers(ctx context.Context) ([]entity.Trailer, int64, error)
	SaveTrailers(ctx context.Context, trailers []entity.Trailer, version int64) error
}

// UserRepository trabaja sobre users_data.
type UserRepository interface {
	GetAll(ctx context.Context) ([]entity.User, int64, error)
	SaveAll(ctx context.Context, users []entity.User, version int64) error
}
