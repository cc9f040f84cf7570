package game

import "github.com/shopspring/decimal"

type CreateGameReq struct {
	Name        string          `json:"name" validate:"required"`
	Image       *string         `json:"image"`
	StockTotal  int             `json:"stockTotal" validate:"required,gte=1"`
	CategoryID  int64           `json:"categoryId" validate:"required,gt=0"`
	PricePerDay decimal.Decimal `json:"pricePerDay" validate:"required"`
}
