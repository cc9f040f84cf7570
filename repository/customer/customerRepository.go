package customerrepo

import (
	"context"
	"database/sql"

	"github.com/YoYolops/boardcamp/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
INSERT INTO customers (name, phone, cpf, birthday)
VALUES ($1, $2, $3, $4)
RETURNING id`
	return r.db.QueryRowContext(ctx, q, c.Name, c.Phone, c.CPF, c.Birthday).Scan(&c.ID)
}

// Update replaces the whole row. A cpf collision with another row surfaces
// as a pg unique violation; updating a customer to their own cpf is a
// plain no-conflict write. Returns sql.ErrNoRows when the id is unknown.
func (r *repo) Update(ctx context.Context, c *model.Customer) error {
	const q = `
UPDATE customers
SET name = $2, phone = $3, cpf = $4, birthday = $5
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, c.ID, c.Name, c.Phone, c.CPF, c.Birthday)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `
SELECT id, name, phone, cpf, birthday
FROM customers
WHERE id = $1`
	var c model.Customer
	err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &c.Birthday)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	const q = `
SELECT id, name, phone, cpf, birthday
FROM customers
WHERE $1 = '' OR cpf LIKE $1 || '%'
ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, cpfPrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.CPF, &c.Birthday); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
