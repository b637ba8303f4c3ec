package collections

import (
	"context"

	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
)

var (
	_ repository.ClientRepository = (*ClientRepo)(nil)
	_ repository.SellerRepository = (*SellerRepo)(nil)
	_ repository.PlantRepository  = (*PlantRepo)(nil)
	_ repository.FleetRepository  = (*FleetRepo)(nil)
	_ repository.UserRepository   = (*UserRepo)(nil)
)

// ClientRepo expone la colección clients_data.
type ClientRepo struct {
	store repository.CollectionStore
}

// NewClientRepository construye el adaptador.
func NewClientRepository(store repository.CollectionStore) *ClientRepo {
	return &ClientRepo{store: store}
}

func (r *ClientRepo) GetAll(ctx context.Context) ([]entity.Client, int64, error) {
	return loadAll[entity.Client](ctx, r.store, repository.KeyClients)
}

func (r *ClientRepo) SaveAll(ctx context.Context, clients []entity.Client, version int64) error {
	return saveAll(ctx, r.store, repository.KeyClients, clients, version)
}

// SellerRepo expone la colección sellers_data. Cuando la colección está
// vacía, GetAll la devuelve con el vendedor de casa Oficina (V-000): el
// registro protegido existe siempre, aunque nadie lo haya creado.
type SellerRepo struct {
	store repository.CollectionStore
}

// NewSellerRepository construye el adaptador.
func NewSellerRepository(store repository.CollectionStore) *SellerRepo {
	return &SellerRepo{store: store}
}

func (r *SellerRepo) GetAll(ctx context.Context) ([]entity.Seller, int64, error) {
	sellers, version, err := loadAll[entity.Seller](ctx, r.store, repository.KeySellers)
	if err != nil {
		return nil, 0, err
	}
	for _, s := range sellers {
		if s.ID == entity.HouseSellerID {
			return sellers, version, nil
		}
	}
	return append([]entity.Seller{entity.HouseSeller()}, sellers...), version, nil
}

func (r *SellerRepo) SaveAll(ctx context.Context, sellers []entity.Seller, version int64) error {
	return saveAll(ctx, r.store, repository.KeySellers, sellers, version)
}

// PlantRepo expone la colección plants_data.
type PlantRepo struct {
	store repository.CollectionStore
}

// NewPlantRepository construye el adaptador.
func NewPlantRepository(store repository.CollectionStore) *PlantRepo {
	return &PlantRepo{store: store}
}

func (r *PlantRepo) GetAll(ctx context.Context) ([]entity.Plant, int64, error) {
	return loadAll[entity.Plant](ctx, r.store, repository.KeyPlants)
}

func (r *PlantRepo) SaveAll(ctx context.Context, plants []entity.Plant, version int64) error {
	return saveAll(ctx, r.store, repository.KeyPlants, plants, version)
}

// FleetRepo agrupa las colecciones de flota: drivers_data (choferes),
// fleet_data (chutos) y trailers_data (bateas).
type FleetRepo struct {
	store repository.CollectionStore
}

// NewFleetRepository construye el adaptador.
func NewFleetRepository(store repository.CollectionStore) *FleetRepo {
	return &FleetRepo{store: store}
}

func (r *FleetRepo) GetDrivers(ctx context.Context) ([]entity.Driver, int64, error) {
	return loadAll[entity.Driver](ctx, r.store, repository.KeyDrivers)
}

func (r *FleetRepo) SaveDrivers(ctx context.Context, drivers []entity.Driver, version int64) error {
	return saveAll(ctx, r.store, repository.KeyDrivers, drivers, version)
}

func (r *FleetRepo) GetTrucks(ctx context.Context) ([]entity.Truck, int64, error) {
	return loadAll[entity.Truck](ctx, r.store, repository.KeyFleet)
}

func (r *FleetRepo) SaveTrucks(ctx context.Context, trucks []entity.Truck, version int64) error {
	return saveAll(ctx, r.store, repository.KeyFleet, trucks, version)
}

func (r *FleetRepo) GetTrailers(ctx context.Context) ([]entity.Trailer, int64, error) {
	return loadAll[entity.Trailer](ctx, r.store, repository.KeyTrailers)
}

func (r *FleetRepo) SaveTrailers(ctx context.Context, trailers []entity.Trailer, version int64) error {
	return saveAll(ctx, r.store, repository.KeyTrailers, trailers, version)
}

// UserRepo expone la colección users_data.
type UserRepo struct {
	store repository.CollectionStore
}

// NewUserRepository construye el adaptador.
func NewUserRepository(store repository.CollectionStore) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) GetAll(ctx context.Context) ([]entity.User, int64, error) {
	return loadAll[entity.User](ctx, r.store, repository.KeyUsers)
}

func (r *UserRepo) SaveAll(ctx context.Context, users []entity.User, version int64) error {
	return saveAll(ctx, r.store, repository.KeyUsers, users, version)
}
