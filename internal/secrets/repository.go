package secrets

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when an entry does not exist or belongs to another
// owner. The two cases are indistinguishable on purpose: repositories filter
// by owner in the WHERE clause itself.
var ErrNotFound = errors.New("secrets: entry not found")

// Repository persists secret entries. Password fields hold ciphertext at this
// layer.
type Repository interface {
	List(ctx context.Context, ownerID int64) ([]Entry, error)
	Create(ctx context.Context, entry Entry) (Entry, error)
	Update(ctx context.Context, entry Entry) (Entry, error)
	Delete(ctx context.Context, ownerID, id int64) error
	SearchByService(ctx context.Context, ownerID int64, substring string) ([]Entry, error)
}

// PostgresRepository stores entries in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all entries owned by ownerID, oldest first.
func (r *PostgresRepository) List(ctx context.Context, ownerID int64) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, owner_id, service, username, encrypted_password
        FROM passwords WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Create inserts an entry and returns it with the assigned id.
func (r *PostgresRepository) Create(ctx context.Context, entry Entry) (Entry, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO passwords (owner_id, service, username, encrypted_password)
        VALUES ($1, $2, $3, $4) RETURNING id`, entry.OwnerID, entry.Service, entry.Username, entry.Password)
	if err := row.Scan(&entry.ID); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Update mutates service, username, and password of an owned entry. Updating
// a row that is absent or owned by someone else yields ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, entry Entry) (Entry, error) {
	row := r.db.QueryRow(ctx, `UPDATE passwords SET service = $1, username = $2, encrypted_password = $3
        WHERE id = $4 AND owner_id = $5
        RETURNING id, owner_id, service, username, encrypted_password`,
		entry.Service, entry.Username, entry.Password, entry.ID, entry.OwnerID)
	var updated Entry
	if err := row.Scan(&updated.ID, &updated.OwnerID, &updated.Service, &updated.Username, &updated.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return updated, nil
}

// Delete removes an owned entry; same not-found semantics as Update.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passwords WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchByService returns the owner's entries whose service contains the
// substring, case-insensitively.
func (r *PostgresRepository) SearchByService(ctx context.Context, ownerID int64, substring string) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, owner_id, service, username, encrypted_password
        FROM passwords WHERE owner_id = $1 AND service ILIKE '%' || $2 || '%' ORDER BY id`, ownerID, substring)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]Entry, error) {
	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Service, &e.Username, &e.Password); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
