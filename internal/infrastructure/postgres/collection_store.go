package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
)

// isUniqueViolation detecta el código SQLSTATE 23505 (unique_violation).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ repository.CollectionStore = (*CollectionStore)(nil)

// CollectionStore implementa el almacén documental sobre PostgreSQL: una fila
// por colección lógica, el documento completo en JSONB y una columna de
// versión para concurrencia optimista. La fila entera se reemplaza en cada
// Save, igual que el blob único del almacén original.
type CollectionStore struct {
	q Querier
}

// NewCollectionStore construye el adaptador. Pasar pool o tx (Querier).
func NewCollectionStore(q Querier) *CollectionStore {
	return &CollectionStore{q: q}
}

// EnsureSchema crea la tabla de colecciones si no existe.
func (s *CollectionStore) EnsureSchema(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			clave   TEXT PRIMARY KEY,
			valor   JSONB NOT NULL,
			version BIGINT NOT NULL DEFAULT 1
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla collections: %w", err)
	}
	return nil
}

// Get devuelve el documento y su versión; (nil, 0, nil) si la colección no existe.
func (s *CollectionStore) Get(ctx context.Context, key string) (json.RawMessage, int64, error) {
	var value []byte
	var version int64
	err := s.q.QueryRow(ctx,
		`SELECT valor, version FROM collections WHERE clave = $1`, key,
	).Scan(&value, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("get collection %q: %w", key, err)
	}
	return value, version, nil
}

// Save reemplaza el documento completo. version debe ser la versión leída
// (0 si la colección aún no existía); si otro escritor la cambió entre la
// lectura y esta escritura, devuelve domain.ErrVersionConflict y no escribe.
func (s *CollectionStore) Save(ctx context.Context, key string, value json.RawMessage, version int64) error {
	if version == 0 {
		_, err := s.q.Exec(ctx,
			`INSERT INTO collections (clave, valor, version) VALUES ($1, $2, 1)`,
			key, value)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrVersionConflict
			}
			return fmt.Errorf("insert collection %q: %w", key, err)
		}
		return nil
	}
	tag, err := s.q.Exec(ctx,
		`UPDATE collections SET valor = $2, version = version + 1
		 WHERE clave = $1 AND version = $3`,
		key, value, version)
	if err != nil {
		return fmt.Errorf("update collection %q: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	return nil
}
