package views

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/client/pricing"
	"github.com/dmitrijs2005/teebay/internal/common"
)

// BuyDialog confirms a purchase.
type BuyDialog struct {
	Open   bool
	Status Status
}

// RentDialog confirms a rental over [Start, End).
type RentDialog struct {
	Open   bool
	Start  time.Time
	End    time.Time
	Status Status
}

// ProductDetail shows one product with its buy and rent actions.
type ProductDetail struct {
	catalog Catalog

	product *models.Product
	Status  Status
	Buy     BuyDialog
	Rent    RentDialog
	// Notice is the confirmation of the last successful transaction.
	Notice string
}

func NewProductDetail(catalog Catalog) *ProductDetail {
	return &ProductDetail{catalog: catalog}
}

// Product returns the loaded product, nil before Load.
func (d *ProductDetail) Product() *models.Product { return d.product }

func (d *ProductDetail) Load(ctx context.Context, id string) error {
	d.Status.begin(PhaseLoading)
	d.Buy, d.Rent, d.Notice = BuyDialog{}, RentDialog{}, ""
	p, err := d.catalog.Get(ctx, id, client.CacheFirst)
	if err != nil {
		d.product = nil
		return d.Status.end(err)
	}
	if p == nil {
		d.product = nil
		return d.Status.end(ErrNoProduct)
	}
	d.product = p
	return d.Status.end(nil)
}

// CanBuy is false when the product is not for sale, already bought or
// currently rented.
func (d *ProductDetail) CanBuy() bool {
	p := d.product
	return p != nil && p.CanBuy() && !p.IsBought && !p.IsCurrentlyRented
}

// CanRent is false when the product is not for rent, currently rented or
// already bought.
func (d *ProductDetail) CanRent() bool {
	p := d.product
	return p != nil && p.CanRent() && !p.IsCurrentlyRented && !p.IsBought
}

func (d *ProductDetail) OpenBuy() error {
	if d.product == nil {
		return ErrNoProduct
	}
	if !d.CanBuy() {
		return ErrActionDisabled
	}
	d.Buy = BuyDialog{Open: true}
	return nil
}

func (d *ProductDetail) CancelBuy() { d.Buy = BuyDialog{} }

// ConfirmBuy sends the purchase. On failure the dialog stays open with the
// error.
func (d *ProductDetail) ConfirmBuy(ctx context.Context) (string, error) {
	if !d.Buy.Open {
		return "", ErrNoDialog
	}
	if d.Buy.Status.Busy() {
		return "", nil
	}
	d.Buy.Status.begin(PhaseSubmitting)
	purchase, err := d.catalog.Buy(ctx, d.product.ID)
	if err != nil {
		return "", d.Buy.Status.end(err)
	}

	price := purchase.Price
	if price == 0 {
		price = common.Deref(d.product.PurchasePrice)
	}
	d.Notice = fmt.Sprintf("Successfully purchased %s for %s", d.product.DisplayTitle(), FormatAmount(price))
	d.product.IsBought = true
	d.Buy = BuyDialog{}
	return PathHome, nil
}

// OpenRent opens the rent dialog for [start, end).
func (d *ProductDetail) OpenRent(start, end time.Time) error {
	if d.product == nil {
		return ErrNoProduct
	}
	if !d.CanRent() {
		return ErrActionDisabled
	}
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return common.ErrInvalidPeriod
	}
	d.Rent = RentDialog{Open: true, Start: start, End: end}
	return nil
}

func (d *ProductDetail) CancelRent() { d.Rent = RentDialog{} }

// Quote estimates the total of the open rent dialog. ok is false when the
// total cannot be determined.
func (d *ProductDetail) Quote() (float64, bool) {
	if d.product == nil || !d.Rent.Open {
		return 0, false
	}
	return pricing.RentalTotal(d.Rent.Start, d.Rent.End, common.Deref(d.product.RentalPrice), d.product.RentUnit)
}

// ConfirmRent sends the rental. The billed total comes from the backend.
func (d *ProductDetail) ConfirmRent(ctx context.Context) (string, error) {
	if !d.Rent.Open {
		return "", ErrNoDialog
	}
	if d.Rent.Status.Busy() {
		return "", nil
	}
	d.Rent.Status.begin(PhaseSubmitting)
	rental, err := d.catalog.Rent(ctx, d.product.ID, d.Rent.Start, d.Rent.End)
	if err != nil {
		return "", d.Rent.Status.end(err)
	}

	total := rental.RentalPrice
	if total == 0 {
		total, _ = d.Quote()
	}
	d.Notice = fmt.Sprintf("Successfully rented %s for %s", d.product.DisplayTitle(), FormatAmount(total))
	d.product.IsCurrentlyRented = true
	d.Rent = RentDialog{}
	return PathHome, nil
}
