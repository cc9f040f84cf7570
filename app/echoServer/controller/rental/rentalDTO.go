package rental

type CreateRentalReq struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0"`
	GameID     int64 `json:"gameId" validate:"required,gt=0"`
	DaysRented int   `json:"daysRented" validate:"required,gte=1"`
}
