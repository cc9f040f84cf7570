package categorysvc

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/YoYolops/boardcamp/model"
)

// repoMock mimics the unique index on lower(name): inserting a name that
// only differs in case raises a pg unique violation, like Postgres would.
type repoMock struct {
	byLower map[string]int64
	nextID  int64
}

func newRepoMock() *repoMock { return &repoMock{byLower: map[string]int64{}} }

func (m *repoMock) Create(ctx context.Context, name string) (int64, error) {
	key := strings.ToLower(name)
	if _, ok := m.byLower[key]; ok {
		return 0, &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "categories_name_lower_key"}
	}
	m.nextID++
	m.byLower[key] = m.nextID
	return m.nextID, nil
}

func (m *repoMock) List(ctx context.Context) ([]model.Category, error) { return nil, nil }

func TestCreate_EmptyName(t *testing.T) {
	s := New(newRepoMock())
	for _, name := range []string{"", "   "} {
		_, err := s.Create(context.Background(), name)
		require.ErrorIs(t, err, ErrBadInput)
	}
}

func TestCreate_KeepsOriginalCase(t *testing.T) {
	s := New(newRepoMock())
	cat, err := s.Create(context.Background(), "Strategy")
	require.NoError(t, err)
	require.Equal(t, "Strategy", cat.Name)
	require.Equal(t, int64(1), cat.ID)
}

func TestCreate_CaseInsensitiveConflict(t *testing.T) {
	s := New(newRepoMock())
	ctx := context.Background()

	_, err := s.Create(ctx, "action")
	require.NoError(t, err)

	_, err = s.Create(ctx, "Action")
	require.ErrorIs(t, err, ErrNameTaken)
}
