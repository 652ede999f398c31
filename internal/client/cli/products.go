package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/views"
	"github.com/dmitrijs2005/teebay/internal/common"
)

// List opens the product list at its current page.
func (a *App) List(ctx context.Context) error {
	return a.Go(ctx, views.PathHome)
}

// Page opens page n of the product list.
func (a *App) Page(ctx context.Context, n int) error {
	return a.onList(ctx, func(ctx context.Context) error { return a.list.GoTo(ctx, n) })
}

func (a *App) Next(ctx context.Context) error {
	return a.onList(ctx, a.list.Next)
}

func (a *App) Prev(ctx context.Context) error {
	return a.onList(ctx, a.list.Prev)
}

func (a *App) onList(ctx context.Context, load func(context.Context) error) error {
	ok, err := a.enter(ctx, views.PathHome)
	if !ok {
		return err
	}
	return a.productsPage(ctx, load)
}

func (a *App) productsPage(ctx context.Context, load func(context.Context) error) error {
	if err := load(ctx); err != nil {
		a.showPageError("products", err)
		return err
	}
	a.renderList(a.list)
	return nil
}

// Show opens a product's detail page.
func (a *App) Show(ctx context.Context, id string) error {
	return a.Go(ctx, views.ProductPath(id))
}

func (a *App) detailPage(ctx context.Context, id string) error {
	if err := a.detail.Load(ctx, id); err != nil {
		a.showPageError("product", err)
		return err
	}
	a.renderDetail(a.detail)
	a.renderOwner(ctx, a.detail.Product().UserID)
	return nil
}

// renderOwner prints who posted the product. Lookup failures only hide the
// line.
func (a *App) renderOwner(ctx context.Context, id string) {
	if a.users == nil || id == "" {
		return
	}
	u, err := a.users.Get(ctx, id)
	if err != nil || u == nil {
		a.log.Debug(ctx, "owner lookup failed", "user_id", id, "error", err)
		return
	}
	a.printf("Posted by: %s\n", u.FullName())
}

// openDetail makes the product page current and loads it without
// rendering.
func (a *App) openDetail(ctx context.Context, id string) (bool, error) {
	ok, err := a.enter(ctx, views.ProductPath(id))
	if !ok {
		return false, err
	}
	if err := a.detail.Load(ctx, id); err != nil {
		a.showPageError("product", err)
		return false, err
	}
	return true, nil
}

// Buy purchases a product after an explicit confirmation.
func (a *App) Buy(ctx context.Context, id string) error {
	ok, err := a.openDetail(ctx, id)
	if !ok {
		return err
	}
	if err := a.detail.OpenBuy(); err != nil {
		a.showAlert(err)
		return err
	}

	p := a.detail.Product()
	yes, err := GetConfirmation(a.reader,
		fmt.Sprintf("Are you sure you want to buy %s for %s?", p.DisplayTitle(), views.FormatAmount(common.Deref(p.PurchasePrice))), a.out)
	if err != nil {
		return err
	}
	if !yes {
		a.detail.CancelBuy()
		a.println("Cancelled.")
		return nil
	}

	next, err := a.detail.ConfirmBuy(ctx)
	if err != nil {
		a.showAlert(err)
		return err
	}
	a.println(a.detail.Notice)
	return a.Go(ctx, next)
}

// Rent rents a product for [start, end) after an explicit confirmation.
// Missing dates are prompted for.
func (a *App) Rent(ctx context.Context, id string, dates []string) error {
	ok, err := a.openDetail(ctx, id)
	if !ok {
		return err
	}

	start, end, err := a.readPeriod(dates)
	if err != nil {
		a.showAlert(err)
		return err
	}
	if err := a.detail.OpenRent(start, end); err != nil {
		a.showAlert(err)
		return err
	}

	p := a.detail.Product()
	total := "-"
	if v, ok := a.detail.Quote(); ok {
		total = views.FormatAmount(v)
	}
	a.printf("Rent %s from %s to %s at %s: total %s\n", p.DisplayTitle(),
		start.Format(time.DateOnly), end.Format(time.DateOnly),
		views.FormatRentalPrice(p.RentalPrice, p.RentUnit), total)

	yes, err := GetConfirmation(a.reader, "Confirm the rental?", a.out)
	if err != nil {
		return err
	}
	if !yes {
		a.detail.CancelRent()
		a.println("Cancelled.")
		return nil
	}

	next, err := a.detail.ConfirmRent(ctx)
	if err != nil {
		a.showAlert(err)
		return err
	}
	a.println(a.detail.Notice)
	return a.Go(ctx, next)
}

func (a *App) readPeriod(dates []string) (time.Time, time.Time, error) {
	prompts := []string{"Start date (YYYY-MM-DD)", "End date (YYYY-MM-DD)"}
	values := make([]time.Time, 2)
	for i := range values {
		var raw string
		if i < len(dates) {
			raw = dates[i]
		} else {
			v, err := getSimpleText(a.reader, prompts[i], a.out)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			raw = v
		}
		t, err := views.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q", raw)
		}
		values[i] = t
	}
	return values[0], values[1], nil
}

// Delete removes one of the user's products from the current list page
// after an explicit confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	ok, err := a.enter(ctx, views.PathHome)
	if !ok {
		return err
	}
	if len(a.list.Products()) == 0 {
		if err := a.list.Load(ctx); err != nil {
			a.showPageError("products", err)
			return err
		}
	}
	if err := a.list.OpenDelete(id); err != nil {
		a.showAlert(err)
		return err
	}

	yes, err := GetConfirmation(a.reader, fmt.Sprintf("Are you sure you want to delete %s?", a.list.Dialog().Title), a.out)
	if err != nil {
		return err
	}
	if !yes {
		a.list.CancelDelete()
		a.println("Cancelled.")
		return nil
	}

	if err := a.list.ConfirmDelete(ctx); err != nil {
		if a.list.Dialog().Open {
			a.list.CancelDelete()
			a.showAlert(err)
			return err
		}
		a.println("Product deleted.")
		a.showPageError("products", err)
		return err
	}
	a.println("Product deleted.")
	a.renderList(a.list)
	return nil
}
