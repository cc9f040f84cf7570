package customer

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/YoYolops/boardcamp/model"
	customersvc "github.com/YoYolops/boardcamp/service/customer"
)

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /customers
func (h *Controller) Create(c echo.Context) error {
	cust, ok := h.bind(c)
	if !ok {
		return nil
	}
	if err := h.Svc.Create(c.Request().Context(), cust); err != nil {
		if errors.Is(err, customersvc.ErrCPFTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "cpf already registered"})
		}
		h.Log.Error("customer create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, cust)
}

// PUT /customers/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	cust, ok := h.bind(c)
	if !ok {
		return nil
	}
	cust.ID = id
	if err := h.Svc.Update(c.Request().Context(), cust); err != nil {
		switch {
		case errors.Is(err, customersvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case errors.Is(err, customersvc.ErrCPFTaken):
			return c.JSON(http.StatusConflict, echo.Map{"message": "cpf already registered"})
		default:
			h.Log.Error("customer update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, cust)
}

// GET /customers/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	cust, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, customersvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		}
		h.Log.Error("customer detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// GET /customers?cpf=prefix
func (h *Controller) List(c echo.Context) error {
	custs, err := h.Svc.List(c.Request().Context(), c.QueryParam("cpf"))
	if err != nil {
		h.Log.Error("customer list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, custs)
}

// bind parses and validates the payload, writing the error response
// itself when the input is rejected.
func (h *Controller) bind(c echo.Context) (*model.Customer, bool) {
	var req CustomerReq
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
		return nil, false
	}
	if err := h.V.Struct(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
		return nil, false
	}
	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid birthday"})
		return nil, false
	}
	return &model.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: birthday,
	}, true
}
