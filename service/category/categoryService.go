package categorysvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/YoYolops/boardcamp/model"
	categoryrepo "github.com/YoYolops/boardcamp/repository/category"
)

var (
	ErrBadInput  = errors.New("bad input")
	ErrNameTaken = errors.New("category name already taken")
)

type Service interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

type service struct{ r categoryrepo.Repo }

func New(r categoryrepo.Repo) Service { return &service{r} }

// Create stores the name with its original case. The unique index on
// lower(name) makes the case-insensitive check and the insert a single
// atomic step, so racing duplicates cannot both commit.
func (s *service) Create(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBadInput
	}
	id, err := s.r.Create(ctx, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return &model.Category{ID: id, Name: name}, nil
}

func (s *service) List(ctx context.Context) ([]model.Category, error) {
	return s.r.List(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
