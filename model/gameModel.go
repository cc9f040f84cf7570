package model

import "github.com/shopspring/decimal"

type Game struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Image       *string         `json:"image,omitempty"`
	StockTotal  int             `json:"stockTotal"`
	CategoryID  int64           `json:"categoryId"`
	PricePerDay decimal.Decimal `json:"pricePerDay"`
}
