package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental is active while ReturnDate is nil. ReturnDate and DelayFee are
// set together, exactly once, when the rental is returned.
type Rental struct {
	ID            int64            `json:"id"`
	CustomerID    int64            `json:"customerId"`
	GameID        int64            `json:"gameId"`
	RentDate      time.Time        `json:"rentDate"`
	DaysRented    int              `json:"daysRented"`
	ReturnDate    *time.Time       `json:"returnDate"`
	OriginalPrice decimal.Decimal  `json:"originalPrice"`
	DelayFee      *decimal.Decimal `json:"delayFee"`
}

func (r *Rental) Returned() bool { return r.ReturnDate != nil }
