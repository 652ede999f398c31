package cli

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/client/views"
)

const descriptionPreview = 120

// showFieldErrors prints validation messages under the form, one per field.
// It reports whether err was a validation error.
func (a *App) showFieldErrors(err error) bool {
	var fe views.FieldErrors
	if !errors.As(err, &fe) {
		return false
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		a.printf("  %s: %s\n", f, fe[f])
	}
	return true
}

// showBanner prints a failed status as a banner and dismisses it.
func (a *App) showBanner(s *views.Status) {
	if s.Err == nil {
		return
	}
	a.printf("[!] %s\n", s.Message())
	s.Dismiss()
}

// showPageError reports a failed fetch with a way back to the list.
func (a *App) showPageError(what string, err error) {
	a.printf("Error loading %s: %s\n", what, describe(err))
	a.println("Type 'list' to go back to products.")
}

// showAlert reports a failed or refused action.
func (a *App) showAlert(err error) {
	if a.showFieldErrors(err) {
		return
	}
	a.printf("Alert: %s\n", describe(err))
}

func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "the server is unavailable, try again later"
	case errors.Is(err, views.ErrActionDisabled):
		return "this action is not available"
	case errors.Is(err, views.ErrNoProduct):
		return "product not found"
	}
	return client.Message(err)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}

func (a *App) renderList(l *views.ProductList) {
	products := l.Products()
	if len(products) == 0 {
		a.println("No products found.")
		return
	}
	a.printf("Products: page %d of %d (%d total)\n\n", l.Page(), l.TotalPages(), l.Total())
	for _, p := range products {
		a.printf("[%s] %s\n", p.ID, p.DisplayTitle())
		a.printf("    Categories: %s\n", orDash(p.CategoryNames()))
		a.printf("    Price: %s | Rent: %s\n",
			views.FormatPrice(p.PurchasePrice), views.FormatRentalPrice(p.RentalPrice, p.RentUnit))
		if d := truncate(p.Description, descriptionPreview); d != "" {
			a.printf("    %s\n", d)
		}
		a.printf("    Date posted: %s\n", views.FormatDate(p.CreatedAt))
		if l.Editable(p) {
			a.printf("    Actions: edit %s, delete %s\n", p.ID, p.ID)
		}
	}
	a.println()
	a.println("Commands: show <id>, next, prev, page <n>, add")
}

func (a *App) renderDetail(d *views.ProductDetail) {
	p := d.Product()
	if p == nil {
		return
	}
	a.printf("%s\n", p.DisplayTitle())
	a.printf("Categories: %s\n", orDash(p.CategoryNames()))
	a.printf("Price: %s | Rent: %s\n",
		views.FormatPrice(p.PurchasePrice), views.FormatRentalPrice(p.RentalPrice, p.RentUnit))
	if p.Description != "" {
		a.println(p.Description)
	}
	a.printf("Date posted: %s\n", views.FormatDate(p.CreatedAt))
	switch {
	case p.IsBought:
		a.println("This product has been bought.")
	case p.IsCurrentlyRented:
		a.println("This product is currently rented.")
	}

	var actions []string
	if d.CanBuy() {
		actions = append(actions, "buy "+p.ID)
	}
	if d.CanRent() {
		actions = append(actions, "rent "+p.ID+" <start> <end>")
	}
	if len(actions) > 0 {
		a.printf("Actions: %s\n", strings.Join(actions, ", "))
	}
}

func (a *App) renderForm(f views.ProductForm, categories []string) {
	a.printf("Title: %s\n", f.Title)
	a.printf("Categories: %s\n", strings.Join(categories, ", "))
	a.printf("Description: %s\n", f.Description)
	a.printf("Purchase price: %s\n", orDash(f.PurchasePrice))
	if strings.TrimSpace(f.RentalPrice) == "" {
		a.println("Rental price: -")
		return
	}
	unit, err := models.ParseRentUnit(string(f.RentUnit))
	if err != nil {
		unit = models.RentUnitDaily
	}
	a.printf("Rental price: %s per %s\n", f.RentalPrice, unit.Label())
}

func (a *App) renderCategories(cats []models.Category, selected []string) {
	for i, c := range cats {
		mark := " "
		for _, id := range selected {
			if id == c.ID {
				mark = "x"
			}
		}
		a.printf("  [%s] %d) %s\n", mark, i+1, c.Name)
	}
}

func (a *App) renderTransactions(t *views.Transactions) {
	tabs := make([]string, 0, len(views.Tabs))
	for _, tab := range views.Tabs {
		label := string(tab)
		if tab == t.Tab() {
			label = "*" + label + "*"
		}
		tabs = append(tabs, label+" ("+strconv.Itoa(t.Count(tab))+")")
	}
	a.println(strings.Join(tabs, " | "))

	switch t.Tab() {
	case views.TabBought, views.TabSold:
		records := t.Purchases()
		if len(records) == 0 {
			a.println("No transactions.")
		}
		for _, r := range records {
			a.printf("[%s] %s  %s  %s\n", r.ID, r.Product.DisplayTitle(), views.FormatAmount(r.Price), views.FormatDate(r.CreatedAt))
		}
	default:
		records := t.Rentals()
		if len(records) == 0 {
			a.println("No transactions.")
		}
		for _, r := range records {
			a.printf("[%s] %s  %s  %s\n", r.ID, r.Product.DisplayTitle(), views.FormatPeriod(r.StartDate, r.EndDate), views.FormatAmount(r.RentalPrice))
		}
	}
	a.println("Switch tabs with: tx bought|sold|borrowed|lent")
}

func (a *App) renderUser(u *models.User) {
	a.printf("Name: %s\n", u.FullName())
	a.printf("Email: %s\n", u.Email)
	a.printf("Phone: %s\n", orDash(u.Phone))
	a.printf("Address: %s\n", orDash(u.Address))
	a.printf("Member since: %s\n", views.FormatDate(u.CreatedAt))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
