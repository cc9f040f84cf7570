package categoryrepo

import (
	"context"
	"database/sql"

	"github.com/YoYolops/boardcamp/model"
)

type Repo interface {
	Create(ctx context.Context, name string) (int64, error)
	List(ctx context.Context) ([]model.Category, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

// Create inserts the category keeping its original case. Case-insensitive
// uniqueness is enforced by the unique index on lower(name); a duplicate
// surfaces as a pg unique violation for the service to map.
func (r *repo) Create(ctx context.Context, name string) (int64, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) List(ctx context.Context) ([]model.Category, error) {
	const q = `
SELECT id, name
FROM categories
ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
