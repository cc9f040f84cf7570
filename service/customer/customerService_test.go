package customersvc_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/YoYolops/boardcamp/model"
	customersvc "github.com/YoYolops/boardcamp/service/customer"
)

type repoMock struct {
	createFn func(ctx context.Context, c *model.Customer) error
	updateFn func(ctx context.Context, c *model.Customer) error
	getFn    func(ctx context.Context, id int64) (*model.Customer, error)
	listFn   func(ctx context.Context, cpfPrefix string) ([]model.Customer, error)
}

func (m *repoMock) Create(ctx context.Context, c *model.Customer) error { return m.createFn(ctx, c) }
func (m *repoMock) Update(ctx context.Context, c *model.Customer) error { return m.updateFn(ctx, c) }
func (m *repoMock) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context, cpfPrefix string) ([]model.Customer, error) {
	return m.listFn(ctx, cpfPrefix)
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "customers_cpf_key"}
}

func sample() *model.Customer {
	return &model.Customer{
		Name:     "Joao",
		Phone:    "21998899222",
		CPF:      "01234567890",
		Birthday: time.Date(1992, time.October, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate_DuplicateCPF(t *testing.T) {
	m := &repoMock{createFn: func(ctx context.Context, c *model.Customer) error {
		return uniqueViolation()
	}}
	s := customersvc.New(m)
	if err := s.Create(context.Background(), sample()); err != customersvc.ErrCPFTaken {
		t.Fatalf("got %v; want ErrCPFTaken", err)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{createFn: func(ctx context.Context, c *model.Customer) error {
		c.ID = 7
		return nil
	}}
	s := customersvc.New(m)
	c := sample()
	if err := s.Create(context.Background(), c); err != nil || c.ID != 7 {
		t.Fatalf("got id=%d err=%v; want 7 nil", c.ID, err)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	m := &repoMock{updateFn: func(ctx context.Context, c *model.Customer) error {
		return sql.ErrNoRows
	}}
	s := customersvc.New(m)
	if err := s.Update(context.Background(), sample()); err != customersvc.ErrNotFound {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestUpdate_CPFOwnedByOther(t *testing.T) {
	m := &repoMock{updateFn: func(ctx context.Context, c *model.Customer) error {
		return uniqueViolation()
	}}
	s := customersvc.New(m)
	if err := s.Update(context.Background(), sample()); err != customersvc.ErrCPFTaken {
		t.Fatalf("got %v; want ErrCPFTaken", err)
	}
}

func TestUpdate_OwnCPF(t *testing.T) {
	// the unique index never fires when the row keeps its own cpf
	m := &repoMock{updateFn: func(ctx context.Context, c *model.Customer) error {
		return nil
	}}
	s := customersvc.New(m)
	if err := s.Update(context.Background(), sample()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	m := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Customer, error) {
		return nil, sql.ErrNoRows
	}}
	s := customersvc.New(m)
	if _, err := s.GetByID(context.Background(), 99); err != customersvc.ErrNotFound {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}
