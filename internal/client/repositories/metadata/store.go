package metadata

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teebay/internal/dbx"
)

// Store is the database-backed key/value store used by the session. It adds
// atomic multi-key writes on top of SQLiteRepository.
type Store struct {
	*SQLiteRepository
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{SQLiteRepository: NewSQLiteRepository(db), db: db}
}

// SetMany writes all values in one transaction.
func (s *Store) SetMany(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		for k, v := range values {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}
