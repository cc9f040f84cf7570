package gamesvc

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/YoYolops/boardcamp/model"
	gamerepo "github.com/YoYolops/boardcamp/repository/game"
)

var (
	ErrBadInput        = errors.New("bad input")
	ErrNameTaken       = errors.New("game name already taken")
	ErrUnknownCategory = errors.New("category does not exist")
)

var one = decimal.NewFromInt(1)

type Service interface {
	Create(ctx context.Context, g *model.Game) error
	List(ctx context.Context, namePrefix string) ([]model.Game, error)
}

type service struct{ r gamerepo.Repo }

func New(r gamerepo.Repo) Service { return &service{r} }

// Create relies on the games_name_key unique index and the category
// foreign key to enforce uniqueness and referential integrity at commit
// time; pre-checking them separately would reopen the race the
// constraints close.
func (s *service) Create(ctx context.Context, g *model.Game) error {
	if g.Name == "" || g.StockTotal < 1 || g.CategoryID <= 0 || g.PricePerDay.LessThan(one) {
		return ErrBadInput
	}
	if err := s.r.Create(ctx, g); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return ErrNameTaken
			case pgerrcode.ForeignKeyViolation:
				return ErrUnknownCategory
			}
		}
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, namePrefix string) ([]model.Game, error) {
	return s.r.List(ctx, namePrefix)
}
