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

// ClientUseCase casos de uso CRUD para clientes y sus direcciones.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List lista los clientes. El filtro busca en nombre, RIF y código de
// cliente sin distinguir mayúsculas ni acentos.
func (uc *ClientUseCase) List(ctx context.Context, search string) ([]entity.Client, error) {
	all, _, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return all, nil
	}
	out := make([]entity.Client, 0, len(all))
	for _, c := range all {
		if texto.Contains(c.Name, search) || texto.Contains(c.RIF, search) || texto.Contains(c.ClientCode, search) {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (entity.Client, error) {
	all, _, err := uc.repo.GetAll(ctx)
	if err != nil {
		return entity.Client{}, err
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Client{}, fmt.Errorf("cliente %q: %w", id, domain.ErrNotFound)
}

// Create crea un cliente. Si ninguna dirección viene marcada como fiscal se
// promueve la primera, de modo que todo cliente con direcciones tenga
// exactamente una fiscal.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (entity.Client, error) {
	now := time.Now()
	client := entity.Client{
		ID:         uuid.New().String(),
		Name:       in.Name,
		RIF:        in.RIF,
		ClientCode: in.ClientCode,
		Phone:      in.Phone,
		Addresses:  toAddresses(in.Addresses),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Client) ([]entity.Client, error) {
		for _, c := range all {
			if c.RIF != "" && c.RIF == client.RIF {
				return nil, fmt.Errorf("RIF %q: %w", client.RIF, domain.ErrDuplicate)
			}
		}
		return append(all, client), nil
	})
	if err != nil {
		return entity.Client{}, err
	}
	return client, nil
}

// Update actualiza los datos básicos de un cliente. Las direcciones se
// manejan con AddAddress y RemoveAddress.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (entity.Client, error) {
	var updated entity.Client
	_, err := uc.mutate(ctx, id, func(c entity.Client) (entity.Client, error) {
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.RIF != nil {
			c.RIF = *in.RIF
		}
		if in.ClientCode != nil {
			c.ClientCode = *in.ClientCode
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		c.UpdatedAt = time.Now()
		updated = c
		return c, nil
	})
	if err != nil {
		return entity.Client{}, err
	}
	return updated, nil
}

// AddAddress agrega una dirección al cliente. Si viene marcada como fiscal
// desplaza a la fiscal anterior.
func (uc *ClientUseCase) AddAddress(ctx context.Context, clientID string, in dto.AddressRequest) (entity.Client, error) {
	var updated entity.Client
	_, err := uc.mutate(ctx, clientID, func(c entity.Client) (entity.Client, error) {
		addr := entity.Address{
			ID:            uuid.New().String(),
			State:         in.State,
			Municipality:  in.Municipality,
			Parish:        in.Parish,
			Detail:        in.Detail,
			PostalCode:    in.PostalCode,
			ConsigneeCode: in.ConsigneeCode,
			IsFiscal:      in.IsFiscal,
		}
		if addr.IsFiscal {
			for i := range c.Addresses {
				c.Addresses[i].IsFiscal = false
			}
		}
		if len(c.Addresses) == 0 {
			addr.IsFiscal = true
		}
		c.Addresses = append(c.Addresses, addr)
		c.UpdatedAt = time.Now()
		updated = c
		return c, nil
	})
	if err != nil {
		return entity.Client{}, err
	}
	return updated, nil
}

// RemoveAddress elimina una dirección. Si era la fiscal se promueve la
// primera restante.
func (uc *ClientUseCase) RemoveAddress(ctx context.Context, clientID, addressID string) (entity.Client, error) {
	var updated entity.Client
	_, err := uc.mutate(ctx, clientID, func(c entity.Client) (entity.Client, error) {
		idx := -1
		for i := range c.Addresses {
			if c.Addresses[i].ID == addressID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return entity.Client{}, fmt.Errorf("dirección %q: %w", addressID, domain.ErrNotFound)
		}
		wasFiscal := c.Addresses[idx].IsFiscal
		c.Addresses = append(c.Addresses[:idx:idx], c.Addresses[idx+1:]...)
		if wasFiscal && len(c.Addresses) > 0 {
			c.Addresses[0].IsFiscal = true
		}
		c.UpdatedAt = time.Now()
		updated = c
		return c, nil
	})
	if err != nil {
		return entity.Client{}, err
	}
	return updated, nil
}

// Delete elimina un cliente por ID.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	_, err := saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Client) ([]entity.Client, error) {
		for i := range all {
			if all[i].ID == id {
				return append(all[:i:i], all[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("cliente %q: %w", id, domain.ErrNotFound)
	})
	return err
}

func (uc *ClientUseCase) mutate(ctx context.Context, id string, fn func(entity.Client) (entity.Client, error)) ([]entity.Client, error) {
	return saveCollection(ctx, uc.repo.GetAll, uc.repo.SaveAll, func(all []entity.Client) ([]entity.Client, error) {
		for i := range all {
			if all[i].ID == id {
				c, err := fn(all[i])
				if err != nil {
					return nil, err
				}
				all[i] = c
				return all, nil
			}
		}
		return nil, fmt.Errorf("cliente %q: %w", id, domain.ErrNotFound)
	})
}

func toAddresses(in []dto.AddressRequest) []entity.Address {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.Address, 0, len(in))
	fiscalSeen := false
	for _, a := range in {
		addr := entity.Address{
			ID:            uuid.New().String(),
			State:         a.State,
			Municipality:  a.Municipality,
			Parish:        a.Parish,
			Detail:        a.Detail,
			PostalCode:    a.PostalCode,
			ConsigneeCode: a.ConsigneeCode,
			IsFiscal:      a.IsFiscal && !fiscalSeen,
		}
		if addr.IsFiscal {
			fiscalSeen = true
		}
		out = append(out, addr)
	}
	if !fiscalSeen {
		out[0].IsFiscal = true
	}
	return out
}
