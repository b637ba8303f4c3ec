package collections_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
	"github.com/tu-usuario/fletes-pro/internal/infrastructure/collections"
)

func TestMemStore_GetInexistente(t *testing.T) {
	store := collections.NewMemStore()
	value, version, err := store.Get(context.Background(), repository.KeyActiveOrders)

	require.NoError(t, err)
	assert.Nil(t, value, "una colección inexistente no es un error, es vacía")
	assert.Zero(t, version)
}

func TestMemStore_SaveLuegoGet(t *testing.T) {
	store := collections.NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, repository.KeyClients, json.RawMessage(`[{"id":"c1"}]`), 0))

	value, version, err := store.Get(ctx, repository.KeyClients)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c1"}]`, string(value))
	assert.Equal(t, int64(1), version, "cada escritura incrementa la versión")
}

// Dos escritores leen la misma versión; el segundo en guardar pierde.
func TestMemStore_ConflictoDeVersion(t *testing.T) {
	store := collections.NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, repository.KeyActiveOrders, json.RawMessage(`[]`), 0))

	_, version, err := store.Get(ctx, repository.KeyActiveOrders)
	require.NoError(t, err)

	// Primer escritor gana.
	require.NoError(t, store.Save(ctx, repository.KeyActiveOrders, json.RawMessage(`["a"]`), version))

	// Segundo escritor presenta la versión vieja y debe fallar.
	err = store.Save(ctx, repository.KeyActiveOrders, json.RawMessage(`["b"]`), version)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	// El contenido del ganador sigue intacto.
	value, _, err := store.Get(ctx, repository.KeyActiveOrders)
	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, string(value))
}

func TestMemStore_CrearConVersionDistintaDeCeroFalla(t *testing.T) {
	store := collections.NewMemStore()
	err := store.Save(context.Background(), repository.KeyPlants, json.RawMessage(`[]`), 7)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestMemStore_GetDevuelveCopia(t *testing.T) {
	store := collections.NewMemStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, repository.KeyClients, json.RawMessage(`[1]`), 0))

	value, _, err := store.Get(ctx, repository.KeyClients)
	require.NoError(t, err)
	value[1] = '9' // mutar la copia no debe tocar lo almacenado

	fresh, _, err := store.Get(ctx, repository.KeyClients)
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(fresh))
}

// ──────────────────────────────────────────────────────────────────────────────
// SellerRepo: siembra del vendedor de casa
// ──────────────────────────────────────────────────────────────────────────────

func TestSellerRepo_SiembraOficinaEnColeccionVacia(t *testing.T) {
	repo := collections.NewSellerRepository(collections.NewMemStore())

	sellers, version, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, version)
	require.Len(t, sellers, 1)
	assert.Equal(t, entity.HouseSellerID, sellers[0].ID)
	assert.Equal(t, entity.HouseSellerName, sellers[0].Name)
	assert.True(t, sellers[0].Commission.IsZero(), "Oficina no comisiona")
}

func TestSellerRepo_NoDuplicaOficinaSiYaExiste(t *testing.T) {
	ctx := context.Background()
	repo := collections.NewSellerRepository(collections.NewMemStore())

	sellers, version, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.SaveAll(ctx, append(sellers, entity.Seller{ID: "v-1", Name: "Pedro"}), version))

	sellers, _, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, sellers, 2)

	oficinas := 0
	for _, s := range sellers {
		if s.ID == entity.HouseSellerID {
			oficinas++
		}
	}
	assert.Equal(t, 1, oficinas)
}

func TestOrderRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := collections.NewOrderRepository(collections.NewMemStore())

	orders, version, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	require.NoError(t, repo.SaveAll(ctx, []entity.Order{{ID: "PED-0001", Status: entity.StatusCargado}}, version))

	orders, version, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "PED-0001", orders[0].ID)
	assert.Equal(t, int64(1), version)
}
