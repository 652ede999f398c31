package models

import "time"

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// UpdateProfileInput is a partial profile; nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// Empty reports whether no field is set.
func (in UpdateProfileInput) Empty() bool {
	return in.FirstName == nil && in.LastName == nil && in.Phone == nil && in.Address == nil
}

// ProductInput is used for both create and update. Prices are sent as null
// when absent so an update can clear them.
type ProductInput struct {
	ID            string        `json:"id,omitempty"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	CategoryIDs   []string      `json:"categoryIds"`
	PurchasePrice *float64      `json:"purchasePrice"`
	RentalPrice   *float64      `json:"rentalPrice"`
	RentUnit      RentUnit      `json:"rentUnit,omitempty"`
	Status        ProductStatus `json:"status,omitempty"`
}

type RentInput struct {
	ProductID string    `json:"productId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// MutationResult is the generic success/message envelope.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProductResult is returned by create and update product.
type ProductResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Product *Product `json:"product"`
}
