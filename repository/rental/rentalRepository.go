package rentalrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YoYolops/boardcamp/model"
)

// Filter narrows List results. Zero values mean "no filter".
type Filter struct {
	CustomerID int64
	GameID     int64
}

// Detail is a rental row joined with its customer and game for listing.
type Detail struct {
	model.Rental
	Customer CustomerRef `json:"customer"`
	Game     GameRef     `json:"game"`
}

type CustomerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GameRef struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Repo is the storage capability for the rental lifecycle. InTx runs fn
// against a repo bound to a single transaction; every write path of the
// lifecycle goes through it so a failed step leaves no partial state.
type Repo interface {
	InTx(ctx context.Context, fn func(Repo) error) error

	// admission (create tx)
	LockGame(ctx context.Context, gameID int64) (*model.Game, error)
	CountActiveByGame(ctx context.Context, gameID int64) (int64, error)
	CustomerExists(ctx context.Context, customerID int64) (bool, error)
	Insert(ctx context.Context, r *model.Rental) error

	// return / delete tx
	GetForUpdate(ctx context.Context, rentalID int64) (*model.Rental, error)
	SetReturned(ctx context.Context, rentalID int64, returnDate time.Time, delayFee decimal.Decimal) error
	Delete(ctx context.Context, rentalID int64) error

	List(ctx context.Context, f Filter) ([]Detail, error)
}

type repo struct {
	db *sql.DB
	tx *sql.Tx
}

func New(db *sql.DB) Repo { return &repo{db: db} }

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *repo) q() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repo) InTx(ctx context.Context, fn func(Repo) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(&repo{db: r.db, tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

// LockGame reads the game row FOR UPDATE. The row lock is the per-game
// serialization point: concurrent admissions for the same game queue here,
// so the count-then-insert below observes a settled outstanding count.
func (r *repo) LockGame(ctx context.Context, gameID int64) (*model.Game, error) {
	const q = `
SELECT id, name, image, stock_total, category_id, price_per_day
FROM games
WHERE id = $1
FOR UPDATE`
	var g model.Game
	err := r.q().QueryRowContext(ctx, q, gameID).Scan(
		&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repo) CountActiveByGame(ctx context.Context, gameID int64) (int64, error) {
	const q = `
SELECT COUNT(*)
FROM rentals
WHERE game_id = $1
  AND return_date IS NULL`
	var n int64
	err := r.q().QueryRowContext(ctx, q, gameID).Scan(&n)
	return n, err
}

func (r *repo) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`
	var ok bool
	err := r.q().QueryRowContext(ctx, q, customerID).Scan(&ok)
	return ok, err
}

func (r *repo) Insert(ctx context.Context, rental *model.Rental) error {
	const q = `
INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee)
VALUES ($1, $2, $3, $4, NULL, $5, NULL)
RETURNING id`
	return r.q().QueryRowContext(ctx, q,
		rental.CustomerID, rental.GameID, rental.RentDate, rental.DaysRented, rental.OriginalPrice,
	).Scan(&rental.ID)
}

// GetForUpdate locks the rental row so the active-state guard and the
// subsequent return/delete write act on the same committed state.
func (r *repo) GetForUpdate(ctx context.Context, rentalID int64) (*model.Rental, error) {
	const q = `
SELECT id, customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee
FROM rentals
WHERE id = $1
FOR UPDATE`
	var rental model.Rental
	err := r.q().QueryRowContext(ctx, q, rentalID).Scan(
		&rental.ID, &rental.CustomerID, &rental.GameID, &rental.RentDate,
		&rental.DaysRented, &rental.ReturnDate, &rental.OriginalPrice, &rental.DelayFee,
	)
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *repo) SetReturned(ctx context.Context, rentalID int64, returnDate time.Time, delayFee decimal.Decimal) error {
	const q = `
UPDATE rentals
SET return_date = $2,
    delay_fee = $3
WHERE id = $1
  AND return_date IS NULL`
	res, err := r.q().ExecContext(ctx, q, rentalID, returnDate, delayFee)
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

func (r *repo) Delete(ctx context.Context, rentalID int64) error {
	const q = `DELETE FROM rentals WHERE id = $1`
	_, err := r.q().ExecContext(ctx, q, rentalID)
	return err
}

func (r *repo) List(ctx context.Context, f Filter) ([]Detail, error) {
	const q = `
SELECT r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented,
       r.return_date, r.original_price, r.delay_fee,
       c.id, c.name,
       g.id, g.name, cat.id, cat.name
FROM rentals r
JOIN customers c ON c.id = r.customer_id
JOIN games g ON g.id = r.game_id
JOIN categories cat ON cat.id = g.category_id
WHERE ($1 = 0 OR r.customer_id = $1)
  AND ($2 = 0 OR r.game_id = $2)
ORDER BY r.id`
	rows, err := r.q().QueryContext(ctx, q, f.CustomerID, f.GameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Detail{}
	for rows.Next() {
		var d Detail
		if err := rows.Scan(
			&d.ID, &d.CustomerID, &d.GameID, &d.RentDate, &d.DaysRented,
			&d.ReturnDate, &d.OriginalPrice, &d.DelayFee,
			&d.Customer.ID, &d.Customer.Name,
			&d.Game.ID, &d.Game.Name, &d.Game.CategoryID, &d.Game.CategoryName,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
