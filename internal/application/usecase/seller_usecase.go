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
	"github.com/tu-usuario/fletes-pro/pkg/texto"
)

// SellerUseCase casos de uso CRUD para vendedores. El vendedor de casa
// Oficina (V-000) es un registro protegido: no se edita ni se elimina.
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// List lista los vendedores, Oficina incluida.
func (uc *SellerUseCase) List(ctx context.Context, search string) ([]entity.Seller, error) {
	all, _, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return all, nil
	}
	out := make([]entity.Seller, 0, len(all))
	for _, s := range all {
		if texto.Contains(s.Name, search) {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetByID obtiene un vendedor por ID.
func (uc *SellerUseCase) GetByID(ctx context.Context, id string) (entity.Seller, error) {
	all, _, err := uc.repo.GetAll(ctx)
	if err != nil {
		return entity.Seller{}, err
	}
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return entity.Seller{}, fmt.Errorf("vendedor %q: %w", id, domain.ErrNotFound)
}

// Create crea un vendedor.
func (uc *SellerUseCase) Create(ctx context.Context, in dto.CreateSellerRequest) (entity.Seller, error) {
	if in.Commission.IsNegative() {
		return entity.Seller{}, fmt.Errorf("comisión negativa: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	seller := entity.Seller{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Commission: in.Commission,
		Phone:      in.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Seller) ([]entity.Seller, error) {
		return append(all, seller), nil
	})
	if err != nil {
		return entity.Seller{}, err
	}
	return seller, nil
}

// Update actualiza un vendedor. Rechaza ediciones sobre Oficina.
func (uc *SellerUseCase) Update(ctx context.Context, id string, in dto.UpdateSellerRequest) (entity.Seller, error) {
	if id == entity.HouseSellerID {
		return entity.Seller{}, domain.ErrProtectedSeller
	}
	if in.Commission != nil && in.Commission.IsNegative() {
		return entity.Seller{}, fmt.Errorf("comisión negativa: %w", domain.ErrInvalidInput)
	}
	var updated entity.Seller
	_, err := saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Seller) ([]entity.Seller, error) {
		for i := range all {
			if all[i].ID != id {
				continue
			}
			if in.Name != nil {
				all[i].Name = *in.Name
			}
			if in.Commission != nil {
				all[i].Commission = *in.Commission
			}
			if in.Phone != nil {
				all[i].Phone = *in.Phone
			}
			all[i].UpdatedAt = time.Now()
			updated = all[i]
			return all, nil
		}
		return nil, fmt.Errorf("vendedor %q: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return entity.Seller{}, err
	}
	return updated, nil
}

// Delete elimina un vendedor. Oficina nunca se elimina.
func (uc *SellerUseCase) Delete(ctx context.Context, id string) error {
	if id == entity.HouseSellerID {
		return domain.ErrProtectedSeller
	}
	_, err := saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Seller) ([]entity.Seller, error) {
		for i := range all {
			if all[i].ID == id {
				return append(all[:i:i], all[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("vendedor %q: %w", id, domain.ErrNotFound)
	})
	return err
}
