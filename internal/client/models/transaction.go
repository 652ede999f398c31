package models

import (
	"github.com/dmitrijs2005/teebay/internal/common"
	"github.com/dmitrijs2005/teebay/internal/timex"
)

// Purchase describes both a buy (seen by the buyer) and a sale (seen by the seller).
type Purchase struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Product   ProductSnapshot `json:"product"`
	BuyerID   string          `json:"buyerId"`
	SellerID  string          `json:"sellerId"`
	Price     float64         `json:"price"`
	Status    string          `json:"status"`
	CreatedAt timex.Time      `json:"createdAt"`
	UpdatedAt timex.Time      `json:"updatedAt"`
}

// Rental describes both a rental (renter side) and a lending (owner side).
type Rental struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	Product     ProductSnapshot `json:"product"`
	RenterID    string          `json:"renterId"`
	OwnerID     string          `json:"ownerId"`
	StartDate   timex.Time      `json:"startDate"`
	EndDate     timex.Time      `json:"endDate"`
	RentalPrice float64         `json:"rentalPrice"`
	Status      string          `json:"status"`
	CreatedAt   timex.Time      `json:"createdAt"`
}

// Validate checks that the rental period is non-empty.
func (r Rental) Validate() error {
	if r.StartDate.IsZero() || r.EndDate.IsZero() || !r.StartDate.Before(r.EndDate.Time) {
		return common.ErrInvalidPeriod
	}
	return nil
}

// Transactions groups the four transaction lists of the current user.
type Transactions struct {
	Purchases []Purchase
	Sales     []Purchase
	Rentals   []Rental
	Lendings  []Rental
}
