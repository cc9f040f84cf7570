package customersvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/YoYolops/boardcamp/model"
	customerrepo "github.com/YoYolops/boardcamp/repository/customer"
)

var (
	ErrCPFTaken = errors.New("cpf already registered")
	ErrNotFound = errors.New("customer not found")
)

type Service interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
}

type service struct{ r customerrepo.Repo }

func New(r customerrepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, c *model.Customer) error {
	if err := s.r.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return ErrCPFTaken
		}
		return err
	}
	return nil
}

// Update is a full row replace. The unique index only rejects a cpf held
// by a different row, so a customer keeping their own cpf updates cleanly.
func (s *service) Update(ctx context.Context, c *model.Customer) error {
	if err := s.r.Update(ctx, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			return ErrCPFTaken
		}
		return err
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	return s.r.List(ctx, cpfPrefix)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
