package checkpoint

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	parsectx "github.com/somranjan/beanio/internal/context"
)

// SQLStore is the SQLite-backed Store (SPEC_FULL.md §3 Domain Stack):
// a real, runnable persistence option alongside Memory, against a
// single table `checkpoint(key TEXT PRIMARY KEY, value INTEGER)`.
// Grounded on the pool-construction/fail-fast shape of the retrieval
// pack's other `database/sql` user (`quadgatefoundation-fluxor`'s
// `pkg/db.NewPool`) — open, ping, and prepare the schema eagerly at
// construction rather than lazily on first use.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (creating if necessary) a SQLite database at
// path and ensures its checkpoint table exists.
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening checkpoint database %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening checkpoint database %s: %w", path, err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS checkpoint (
		key   TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	)`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating checkpoint table: %w", err)
	}

	return &SQLStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Save(ctx context.Context, state parsectx.StateMap) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saving checkpoint: %w", err)
	}

	defer tx.Rollback()

	const upsert = `INSERT INTO checkpoint (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	for key, value := range state {
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("saving checkpoint: key %q has non-integer value %T", key, value)
		}

		if _, err := tx.ExecContext(ctx, upsert, key, n); err != nil {
			return fmt.Errorf("saving checkpoint key %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving checkpoint: %w", err)
	}

	return nil
}

func (s *SQLStore) Load(ctx context.Context, namespace string) (parsectx.StateMap, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM checkpoint WHERE key LIKE ?`, namespace+".%")
	if err != nil {
		return nil, fmt.Errorf("loading checkpoint for %q: %w", namespace, err)
	}

	defer rows.Close()

	out := parsectx.StateMap{}

	for rows.Next() {
		var (
			key   string
			value int
		)

		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("loading checkpoint for %q: %w", namespace, err)
		}

		out[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading checkpoint for %q: %w", namespace, err)
	}

	return out, nil
}
