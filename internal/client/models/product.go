// Package models defines the marketplace types exchanged with the Teebay API.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teebay/internal/timex"
)

// RentUnit is the billing period of a rental price.
type RentUnit string

const (
	RentUnitHourly  RentUnit = "HOURLY"
	RentUnitDaily   RentUnit = "DAILY"
	RentUnitWeekly  RentUnit = "WEEKLY"
	RentUnitMonthly RentUnit = "MONTHLY"
)

// RentUnits lists the units in display order.
var RentUnits = []RentUnit{RentUnitHourly, RentUnitDaily, RentUnitWeekly, RentUnitMonthly}

// ParseRentUnit accepts a unit name in any case ("daily", "DAILY").
func ParseRentUnit(s string) (RentUnit, error) {
	u := RentUnit(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range RentUnits {
		if u == known {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown rent unit %q", s)
}

// Label is the lower-case form used in "per day" style captions.
func (u RentUnit) Label() string {
	switch u {
	case RentUnitHourly:
		return "hour"
	case RentUnitDaily:
		return "day"
	case RentUnitWeekly:
		return "week"
	case RentUnitMonthly:
		return "month"
	default:
		return strings.ToLower(string(u))
	}
}

// ProductStatus is the publication state of a product.
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "DRAFT"
	ProductStatusPublished ProductStatus = "PUBLISHED"
)

type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt timex.Time `json:"createdAt"`
}

// Product is a marketplace listing. Prices are optional; a nil price means
// the product is not offered in that mode.
type Product struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Categories        []Category    `json:"categories"`
	PurchasePrice     *float64      `json:"purchasePrice"`
	RentalPrice       *float64      `json:"rentalPrice"`
	RentUnit          RentUnit      `json:"rentUnit"`
	Status            ProductStatus `json:"status"`
	UserID            string        `json:"userId"`
	CreatedAt         timex.Time    `json:"createdAt"`
	UpdatedAt         timex.Time    `json:"updatedAt"`
	IsBought          bool          `json:"isBought"`
	IsCurrentlyRented bool          `json:"isCurrentlyRented"`
}

// CanBuy reports whether the product is offered for purchase.
func (p Product) CanBuy() bool {
	return p.PurchasePrice != nil && *p.PurchasePrice > 0
}

// CanRent reports whether the product is offered for rent.
func (p Product) CanRent() bool {
	return p.RentalPrice != nil && *p.RentalPrice > 0 && p.RentUnit != ""
}

// Actionable reports whether any buy or rent action applies.
func (p Product) Actionable() bool {
	return p.CanBuy() || p.CanRent()
}

func (p Product) DisplayTitle() string {
	if strings.TrimSpace(p.Title) == "" {
		return "Untitled"
	}
	return p.Title
}

// CategoryIDs returns the ids of the product's categories.
func (p Product) CategoryIDs() []string {
	ids := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// CategoryNames joins category names with ", ".
func (p Product) CategoryNames() string {
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// ProductSnapshot is the product subset embedded in transaction records.
type ProductSnapshot struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Categories    []Category `json:"categories"`
	PurchasePrice *float64   `json:"purchasePrice"`
	RentalPrice   *float64   `json:"rentalPrice"`
	RentUnit      RentUnit   `json:"rentUnit"`
	CreatedAt     timex.Time `json:"createdAt"`
}

func (p ProductSnapshot) DisplayTitle() string {
	if strings.TrimSpace(p.Title) == "" {
		return "Untitled"
	}
	return p.Title
}

// ProductPage is one page of the product listing.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// ProductFilter selects a page of products.
type ProductFilter struct {
	Limit  int
	Offset int
	Status ProductStatus
}
