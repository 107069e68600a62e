package status

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a status check.
func (r *PGRepo) Create(ctx context.Context, check Check) error {
	const query = `INSERT INTO status_checks (id, client_name, created_at) VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp)
	return err
}

// List returns status checks oldest first.
func (r *PGRepo) List(ctx context.Context, limit int) ([]Check, error) {
	const query = `
SELECT id, client_name, created_at
FROM status_checks
ORDER BY created_at ASC, id
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Check{}
	for rows.Next() {
		var c Check
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
