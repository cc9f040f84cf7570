package rental

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoYolops/boardcamp/model"
	rentalrepo "github.com/YoYolops/boardcamp/repository/rental"
	rentalsvc "github.com/YoYolops/boardcamp/service/rental"
)

type svcMock struct {
	createFn func(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error)
	returnFn func(ctx context.Context, rentalID int64) (*model.Rental, error)
	deleteFn func(ctx context.Context, rentalID int64) error
	listFn   func(ctx context.Context, f rentalrepo.Filter) ([]rentalrepo.Detail, error)
}

func (m *svcMock) Create(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error) {
	return m.createFn(ctx, customerID, gameID, daysRented)
}
func (m *svcMock) Return(ctx context.Context, rentalID int64) (*model.Rental, error) {
	return m.returnFn(ctx, rentalID)
}
func (m *svcMock) Delete(ctx context.Context, rentalID int64) error { return m.deleteFn(ctx, rentalID) }
func (m *svcMock) List(ctx context.Context, f rentalrepo.Filter) ([]rentalrepo.Detail, error) {
	return m.listFn(ctx, f)
}

type codedErr struct{ code rentalsvc.ErrCode }

func (e codedErr) Error() string           { return string(e.code) }
func (e codedErr) Code() rentalsvc.ErrCode { return e.code }
func coded(c rentalsvc.ErrCode) error      { return codedErr{code: c} }

func newController(svc rentalsvc.Service) *Controller {
	return &Controller{
		Svc: svc,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string, setup func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreate_Created(t *testing.T) {
	svc := &svcMock{createFn: func(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error) {
		price := decimal.NewFromInt(10).Mul(decimal.NewFromInt(int64(daysRented)))
		return &model.Rental{ID: 1, CustomerID: customerID, GameID: gameID, DaysRented: daysRented, OriginalPrice: price}, nil
	}}
	h := newController(svc)

	rec := doRequest(t, h.Create, http.MethodPost, "/rentals",
		`{"customerId":1,"gameId":7,"daysRented":3}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "30", strings.Trim(string(resp["originalPrice"]), `"`))
	assert.Equal(t, "null", string(resp["returnDate"]))
}

func TestCreate_BadPayload(t *testing.T) {
	h := newController(&svcMock{})

	rec := doRequest(t, h.Create, http.MethodPost, "/rentals",
		`{"customerId":1,"gameId":7}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_OutcomeMapping(t *testing.T) {
	cases := []struct {
		name string
		code rentalsvc.ErrCode
		want int
	}{
		{"customer missing", rentalsvc.ErrCustomerNotFound, http.StatusNotFound},
		{"game missing", rentalsvc.ErrGameNotFound, http.StatusNotFound},
		{"out of stock", rentalsvc.ErrOutOfStock, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &svcMock{createFn: func(ctx context.Context, _, _ int64, _ int) (*model.Rental, error) {
				return nil, coded(tc.code)
			}}
			h := newController(svc)

			rec := doRequest(t, h.Create, http.MethodPost, "/rentals",
				`{"customerId":1,"gameId":7,"daysRented":3}`, nil)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestReturn_AlreadyReturned(t *testing.T) {
	svc := &svcMock{returnFn: func(ctx context.Context, rentalID int64) (*model.Rental, error) {
		return nil, coded(rentalsvc.ErrAlreadyReturned)
	}}
	h := newController(svc)

	rec := doRequest(t, h.Return, http.MethodPost, "/rentals/5/return", "", func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("5")
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDelete_ReturnedConflict(t *testing.T) {
	svc := &svcMock{deleteFn: func(ctx context.Context, rentalID int64) error {
		return coded(rentalsvc.ErrNotActive)
	}}
	h := newController(svc)

	rec := doRequest(t, h.Delete, http.MethodDelete, "/rentals/5", "", func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("5")
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}
