package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
)

// FleetUseCase casos de uso CRUD para la flota: choferes, chutos y bateas.
type FleetUseCase struct {
	repo repository.FleetRepository
}

// NewFleetUseCase construye el caso de uso.
func NewFleetUseCase(repo repository.FleetRepository) *FleetUseCase {
	return &FleetUseCase{repo: repo}
}

// --- Choferes ---

func (uc *FleetUseCase) ListDrivers(ctx context.Context) ([]entity.Driver, error) {
	all, _, err := uc.repo.GetDrivers(ctx)
	return all, err
}

func (uc *FleetUseCase) CreateDriver(ctx context.Context, in dto.CreateDriverRequest) (entity.Driver, error) {
	now := time.Now()
	driver := entity.Driver{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Cedula:    in.Cedula,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := saveCollection(ctx, uc.repo.GetDrivers, uc.repo.SaveDrivers, func(all []entity.Driver) ([]entity.Driver, error) {
		for _, d := range all {
			if d.Cedula != "" && d.Cedula == driver.Cedula {
				return nil, fmt.Errorf("cédula %q: %w", driver.Cedula, domain.ErrDuplicate)
			}
		}
		return append(all, driver), nil
	})
	if err != nil {
		return entity.Driver{}, err
	}
	return driver, nil
}

func (uc *FleetUseCase) UpdateDriver(ctx context.Context, id string, in dto.UpdateDriverRequest) (entity.Driver, error) {
	var updated entity.Driver
	_, err := saveCollection(ctx, uc.repo.GetDrivers, uc.repo.SaveDrivers, func(all []entity.Driver) ([]entity.Driver, error) {
		for i := range all {
			if all[i].ID != id {
				continue
			}
			if in.Name != nil {
				all[i].Name = *in.Name
			}
			if in.Cedula != nil {
				all[i].Cedula = *in.Cedula
			}
			if in.Phone != nil {
				all[i].Phone = *in.Phone
			}
			all[i].UpdatedAt = time.Now()
			updated = all[i]
			return all, nil
		}
		return nil, fmt.Errorf("chofer %q: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return entity.Driver{}, err
	}
	return updated, nil
}

func (uc *FleetUseCase) DeleteDriver(ctx context.Context, id string) error {
	_, err := saveCollection(ctx, uc.repo.GetDrivers, uc.repo.SaveDrivers, func(all []entity.Driver) ([]entity.Driver, error) {
		for i := range all {
			if all[i].ID == id {
				return append(all[:i:i], all[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("chofer %q: %w", id, domain.ErrNotFound)
	})
	return err
}

// --- Chutos ---

func (uc *FleetUseCase) ListTrucks(ctx context.Context) ([]entity.Truck, error) {
	all, _, err := uc.repo.GetTrucks(ctx)
	return all, err
}

func (uc *FleetUseCase) CreateTruck(ctx context.Context, in dto.CreateTruckRequest) (entity.Truck, error) {
	now := time.Now()
	truck := entity.Truck{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Plate:     in.Plate,
		Brand:     in.Brand,
		Model:     in.Model,
		Color:     in.Color,
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := saveCollection(ctx, uc.repo.GetTrucks, uc.repo.SaveTrucks, func(all []entity.Truck) ([]entity.Truck, error) {
		for _, t := range all {
			if t.Plate == truck.Plate {
				return nil, fmt.Errorf("placa %q: %w", truck.Plate, domain.ErrDuplicate)
			}
		}
		return append(all, truck), nil
	})
	if err != nil {
		return entity.Truck{}, err
	}
	return truck, nil
}

func (uc *FleetUseCase) UpdateTruck(ctx context.Context, id string, in dto.UpdateTruckRequest) (entity.Truck, error) {
	var updated entity.Truck
	_, err := saveCollection(ctx, uc.repo.GetTrucks, uc.repo.SaveTrucks, func(all []entity.Truck) ([]entity.Truck, error) {
		for i := range all {
			if all[i].ID != id {
				continue
			}
			if in.Name != nil {
				all[i].Name = *in.Name
			}
			if in.Plate != nil {
				all[i].Plate = *in.Plate
			}
			if in.Brand != nil {
				all[i].Brand = *in.Brand
			}
			if in.Model != nil {
				all[i].Model = *in.Model
			}
			if in.Color != nil {
				all[i].Color = *in.Color
			}
			if in.Type != nil {
				all[i].Type = *in.Type
			}
			all[i].UpdatedAt = time.Now()
			updated = all[i]
			return all, nil
		}
		return nil, fmt.Errorf("chuto %q: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return entity.Truck{}, err
	}
	return updated, nil
}

func (uc *FleetUseCase) DeleteTruck(ctx context.Context, id string) error {
	_, err := saveCollection(ctx, uc.repo.GetTrucks, uc.repo.SaveTrucks, func(all []entity.Truck) ([]entity.Truck, error) {
		for i := range all {
			if all[i].ID == id {
				return append(all[:i:i], all[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("chuto %q: %w", id, domain.ErrNotFound)
	})
	return err
}

// --- Bateas ---

func (uc *FleetUseCase) ListTrailers(ctx context.Context) ([]entity.Trailer, error) {
	all, _, err := uc.repo.GetTrailers(ctx)
	return all, err
}

func (uc *FleetUseCase) CreateTrailer(ctx context.Context, in dto.CreateTrailerRequest) (entity.Trailer, error) {
	now := time.Now()
	trailer := entity.Trailer{
		ID:        uuid.New().String(),
		Plate:     in.Plate,
		Brand:     in.Brand,
		Type:      in.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := saveCollection(ctx, uc.repo.GetTrailers, uc.repo.SaveTrailers, func(all []entity.Trailer) ([]entity.Trailer, error) {
		for _, t := range all {
			if t.Plate == trailer.Plate {
				return nil, fmt.Errorf("placa %q: %w", trailer.Plate, domain.ErrDuplicate)
			}
		}
		return append(all, trailer), nil
	})
	if err != nil {
		return entity.Trailer{}, err
	}
	return trailer, nil
}

func (uc *FleetUseCase) UpdateTrailer(ctx context.Context, id string, in dto.UpdateTrailerRequest) (entity.Trailer, error) {
	var updated entity.Trailer
	_, err := saveCollection(ctx, uc.repo.GetTrailers, uc.repo.SaveTrailers, func(all []entity.Trailer) ([]entity.Trailer, error) {
		for i := range all {
			if all[i].ID != id {
				continue
			}
			if in.Plate != nil {
				all[i].Plate = *in.Plate
			}
			if in.Brand != nil {
				all[i].Brand = *in.Brand
			}
			if in.Type != nil {
				all[i].Type = *in.Type
			}
			all[i].UpdatedAt = time.Now()
			updated = all[i]
			return all, nil
		}
		return nil, fmt.Errorf("batea %q: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return entity.Trailer{}, err
	}
	return updated, nil
}

func (uc *FleetUseCase) DeleteTrailer(ctx context.Context, id string) error {
	_, err := saveCollection(ctx, uc.repo.GetTrailers, uc.repo.SaveTrailers, func(all []entity.Trailer) ([]entity.Trailer, error) {
		for i := range all {
			if all[i].ID == id {
				return append(all[:i:i], all[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("batea %q: %w", id, domain.ErrNotFound)
	})
	return err
}
