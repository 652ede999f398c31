package views

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
)

// Form field names used as FieldErrors keys.
const (
	FieldTitle         = "title"
	FieldCategories    = "categories"
	FieldDescription   = "description"
	FieldPurchasePrice = "purchasePrice"
	FieldRentalPrice   = "rentalPrice"
	FieldRentUnit      = "rentUnit"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldConfirm       = "confirmPassword"
	FieldFirstName     = "firstName"
	FieldLastName      = "lastName"
	FieldPhone         = "phone"
	FieldAddress       = "address"
)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when it is empty.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ProductForm holds raw product input as typed. Prices stay strings until
// the form is converted to a models.ProductInput.
type ProductForm struct {
	Title         string
	Description   string
	CategoryIDs   []string
	PurchasePrice string
	RentalPrice   string
	RentUnit      models.RentUnit
}

// FormFromProduct fills a form with the current values of p.
func FormFromProduct(p models.Product) ProductForm {
	f := ProductForm{
		Title:       p.Title,
		Description: p.Description,
		CategoryIDs: p.CategoryIDs(),
		RentUnit:    p.RentUnit,
	}
	if p.PurchasePrice != nil {
		f.PurchasePrice = strconv.FormatFloat(*p.PurchasePrice, 'f', -1, 64)
	}
	if p.RentalPrice != nil {
		f.RentalPrice = strconv.FormatFloat(*p.RentalPrice, 'f', -1, 64)
	}
	return f
}

// ToggleCategory adds id to the selection, or removes it if present.
func (f *ProductForm) ToggleCategory(id string) {
	if i := slices.Index(f.CategoryIDs, id); i >= 0 {
		f.CategoryIDs = slices.Delete(f.CategoryIDs, i, i+1)
		return
	}
	f.CategoryIDs = append(f.CategoryIDs, id)
}

func (f ProductForm) validateTitle(errs FieldErrors) {
	if common.Blank(f.Title) {
		errs[FieldTitle] = "Please enter a product title"
	}
}

func (f ProductForm) validateCategories(errs FieldErrors, known []models.Category) {
	if len(f.CategoryIDs) == 0 {
		errs[FieldCategories] = "Please select at least one category"
		return
	}
	if len(known) == 0 {
		return
	}
	for _, id := range f.CategoryIDs {
		if !slices.ContainsFunc(known, func(c models.Category) bool { return c.ID == id }) {
			errs[FieldCategories] = "Unknown category " + id
			return
		}
	}
}

func (f ProductForm) validateDescription(errs FieldErrors) {
	if common.Blank(f.Description) {
		errs[FieldDescription] = "Please enter a product description"
	}
}

func (f ProductForm) validatePricing(errs FieldErrors) {
	if common.Blank(f.PurchasePrice) {
		errs[FieldPurchasePrice] = "Please enter a purchase price"
	} else if _, err := parsePrice(f.PurchasePrice); err != nil {
		errs[FieldPurchasePrice] = "Purchase price must be a non-negative number"
	}
	if _, err := parsePrice(f.RentalPrice); err != nil {
		errs[FieldRentalPrice] = "Rental price must be a non-negative number"
	}
	if f.RentUnit != "" {
		if _, err := models.ParseRentUnit(string(f.RentUnit)); err != nil {
			errs[FieldRentUnit] = "Unknown rent unit"
		}
	}
}

// Validate checks every field at once.
func (f ProductForm) Validate(known []models.Category) FieldErrors {
	errs := FieldErrors{}
	f.validateTitle(errs)
	f.validateCategories(errs, known)
	f.validateDescription(errs)
	f.validatePricing(errs)
	return errs
}

// Input converts a valid form. The rent unit is sent only with a rental
// price and defaults to DAILY.
func (f ProductForm) Input(id string, status models.ProductStatus) (models.ProductInput, error) {
	purchase, err := parsePrice(f.PurchasePrice)
	if err != nil {
		return models.ProductInput{}, err
	}
	rental, err := parsePrice(f.RentalPrice)
	if err != nil {
		return models.ProductInput{}, err
	}

	in := models.ProductInput{
		ID:            id,
		Title:         strings.TrimSpace(f.Title),
		Description:   strings.TrimSpace(f.Description),
		CategoryIDs:   append([]string(nil), f.CategoryIDs...),
		PurchasePrice: purchase,
		RentalPrice:   rental,
		Status:        status,
	}
	if rental != nil {
		in.RentUnit = models.RentUnitDaily
		if u, err := models.ParseRentUnit(string(f.RentUnit)); err == nil {
			in.RentUnit = u
		}
	}
	return in, nil
}

// parsePrice reads an optional non-negative price; blank means absent.
func parsePrice(s string) (*float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, common.ErrInvalidPrice
	}
	return &v, nil
}
