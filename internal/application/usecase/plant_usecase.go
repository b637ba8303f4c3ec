package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/fletes-pro/internal/application/dto"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/order"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
)

// PlantUseCase casos de uso CRUD para plantas de origen.
type PlantUseCase struct {
	repo repository.PlantRepository
}

// NewPlantUseCase construye el caso de uso.
func NewPlantUseCase(repo repository.PlantRepository) *PlantUseCase {
	return &PlantUseCase{repo: repo}
}

// List lista las plantas.
func (uc *PlantUseCase) List(ctx context.Context) ([]entity.Plant, error) {
	all, _, err := uc.repo.GetAll(ctx)
	return all, err
}

// GetByID obtiene una planta por ID.
func (uc *PlantUseCase) GetByID(ctx context.Context, id string) (entity.Plant, error) {
	all, _, err := uc.repo.GetAll(ctx)
	if err != nil {
		return entity.Plant{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Plant{}, fmt.Errorf("planta %q: %w", id, domain.ErrNotFound)
}

// Create crea una planta con su lista de productos despachables.
func (uc *PlantUseCase) Create(ctx context.Context, in dto.CreatePlantRequest) (entity.Plant, error) {
	products, err := toPlantProducts(in.Products)
	if err != nil {
		return entity.Plant{}, err
	}
	now := time.Now()
	plant := entity.Plant{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		Products:  products,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Plant) ([]entity.Plant, error) {
		for _, p := range all {
			if p.Name == plant.Name {
				return nil, fmt.Errorf("planta %q: %w", plant.Name, domain.ErrDuplicate)
			}
		}
		return append(all, plant), nil
	})
	if err != nil {
		return entity.Plant{}, err
	}
	return plant, nil
}

// Update actualiza una planta. Products, si viene, reemplaza la lista completa.
func (uc *PlantUseCase) Update(ctx context.Context, id string, in dto.UpdatePlantRequest) (entity.Plant, error) {
	var products []entity.PlantProduct
	if in.Products != nil {
		var err error
		products, err = toPlantProducts(in.Products)
		if err != nil {
			return entity.Plant{}, err
		}
	}
	var updated entity.Plant
	_, err := saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Plant) ([]entity.Plant, error) {
		for i := range all {
			if all[i].ID != id {
				continue
			}
			if in.Name != nil {
				all[i].Name = *in.Name
			}
			if in.Location != nil {
				all[i].Location = *in.Location
			}
			if in.Products != nil {
				all[i].Products = products
			}
			all[i].UpdatedAt = time.Now()
			updated = all[i]
			return all, nil
		}
		return nil, fmt.Errorf("planta %q: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return entity.Plant{}, err
	}
	return updated, nil
}

// Delete elimina una planta por ID.
func (uc *PlantUseCase) Delete(ctx context.Context, id string) error {
	_, err := saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Plant) ([]entity.Plant, error) {
		for i := range all {
			if all[i].ID == id {
				return append(all[:i:i], all[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("planta %q: %w", id, domain.ErrNotFound)
	})
	return err
}

// toPlantProducts valida que las cantidades por defecto sean parseables
// antes de aceptarlas; una cantidad ilegible en el catálogo produciría
// pedidos con cantidad 0 silenciosa.
func toPlantProducts(in []dto.PlantProductRequest) ([]entity.PlantProduct, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]entity.PlantProduct, 0, len(in))
	for _, p := range in {
		if p.DefaultQuantity != "" {
			if v, _ := order.ParseQuantity(p.DefaultQuantity); v.IsZero() {
				return nil, fmt.Errorf("cantidad por defecto %q del producto %q: %w", p.DefaultQuantity, p.ProductID, domain.ErrInvalidInput)
			}
		}
		out = append(out, entity.PlantProduct{ProductID: p.ProductID, DefaultQuantity: p.DefaultQuantity})
	}
	return out, nil
}
