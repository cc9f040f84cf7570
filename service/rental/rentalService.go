package rentalsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YoYolops/boardcamp/model"
	rentalrepo "github.com/YoYolops/boardcamp/repository/rental"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalid          ErrCode = "INVALID"
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrCustomerNotFound ErrCode = "CUSTOMER_NOT_FOUND"
	ErrGameNotFound     ErrCode = "GAME_NOT_FOUND"
	ErrOutOfStock       ErrCode = "OUT_OF_STOCK"
	ErrAlreadyReturned  ErrCode = "ALREADY_RETURNED"
	ErrNotActive        ErrCode = "NOT_ACTIVE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Create admits a new rental against the game's declared stock and
	// inserts it active, all within one transaction.
	Create(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error)

	// Return marks an active rental returned, computing its delay fee.
	Return(ctx context.Context, rentalID int64) (*model.Rental, error)

	// Delete removes a rental that is still active.
	Delete(ctx context.Context, rentalID int64) error

	// List returns rentals joined with customer and game details.
	List(ctx context.Context, f rentalrepo.Filter) ([]rentalrepo.Detail, error)
}

type service struct {
	r   rentalrepo.Repo
	now func() time.Time
}

func New(r rentalrepo.Repo) Service { return &service{r: r, now: time.Now} }

func (s *service) Create(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error) {
	if customerID <= 0 || gameID <= 0 || daysRented < 1 {
		return nil, makeErr(ErrInvalid)
	}

	var out *model.Rental
	err := s.r.InTx(ctx, func(tx rentalrepo.Repo) error {
		ok, err := tx.CustomerExists(ctx, customerID)
		if err != nil {
			return err
		}
		if !ok {
			return makeErr(ErrCustomerNotFound)
		}

		// The game row lock serializes concurrent admissions for the
		// same game; the outstanding count below cannot move until this
		// transaction ends.
		g, err := tx.LockGame(ctx, gameID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return makeErr(ErrGameNotFound)
			}
			return err
		}

		active, err := tx.CountActiveByGame(ctx, gameID)
		if err != nil {
			return err
		}
		if active >= int64(g.StockTotal) {
			return makeErr(ErrOutOfStock)
		}

		rental := &model.Rental{
			CustomerID:    customerID,
			GameID:        gameID,
			RentDate:      dateOnly(s.now()),
			DaysRented:    daysRented,
			OriginalPrice: g.PricePerDay.Mul(decimal.NewFromInt(int64(daysRented))),
		}
		if err := tx.Insert(ctx, rental); err != nil {
			return err
		}
		out = rental
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Return(ctx context.Context, rentalID int64) (*model.Rental, error) {
	var out *model.Rental
	err := s.r.InTx(ctx, func(tx rentalrepo.Repo) error {
		rental, err := tx.GetForUpdate(ctx, rentalID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return makeErr(ErrNotFound)
			}
			return err
		}
		if rental.Returned() {
			return makeErr(ErrAlreadyReturned)
		}

		returnDate := dateOnly(s.now())
		fee := DelayFee(rental.RentDate, returnDate, rental.DaysRented, rental.OriginalPrice)
		if err := tx.SetReturned(ctx, rental.ID, returnDate, fee); err != nil {
			return err
		}
		rental.ReturnDate = &returnDate
		rental.DelayFee = &fee
		out = rental
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, rentalID int64) error {
	return s.r.InTx(ctx, func(tx rentalrepo.Repo) error {
		rental, err := tx.GetForUpdate(ctx, rentalID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return makeErr(ErrNotFound)
			}
			return err
		}
		if rental.Returned() {
			return makeErr(ErrNotActive)
		}
		return tx.Delete(ctx, rental.ID)
	})
}

func (s *service) List(ctx context.Context, f rentalrepo.Filter) ([]rentalrepo.Detail, error) {
	return s.r.List(ctx, f)
}
