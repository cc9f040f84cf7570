package rentalsvc

import (
	"time"

	"github.com/shopspring/decimal"
)

// DelayFee charges one per-day rate for each whole calendar day held past
// the contracted period. Both dates are truncated to calendar days first,
// so a late-evening return on the due date still costs nothing.
func DelayFee(rentDate, returnDate time.Time, daysRented int, originalPrice decimal.Decimal) decimal.Decimal {
	elapsed := int(dateOnly(returnDate).Sub(dateOnly(rentDate)).Hours() / 24)
	late := elapsed - daysRented
	if late <= 0 {
		return decimal.Zero
	}
	perDay := originalPrice.Div(decimal.NewFromInt(int64(daysRented)))
	return perDay.Mul(decimal.NewFromInt(int64(late)))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
