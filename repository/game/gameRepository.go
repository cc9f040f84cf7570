package gamerepo

import (
	"context"
	"database/sql"

	"github.com/YoYolops/boardcamp/model"
)

type Repo interface {
	Create(ctx context.Context, g *model.Game) error
	List(ctx context.Context, namePrefix string) ([]model.Game, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

// Create inserts the game. Duplicate names and missing categories surface
// as pg unique / foreign-key violations for the service to map.
func (r *repo) Create(ctx context.Context, g *model.Game) error {
	const q = `
INSERT INTO games (name, image, stock_total, category_id, price_per_day)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		g.Name, g.Image, g.StockTotal, g.CategoryID, g.PricePerDay,
	).Scan(&g.ID)
}

func (r *repo) List(ctx context.Context, namePrefix string) ([]model.Game, error) {
	const q = `
SELECT id, name, image, stock_total, category_id, price_per_day
FROM games
WHERE $1 = '' OR name ILIKE $1 || '%'
ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, namePrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Game{}
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
