package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/client/views"
)

const (
	cmdBack   = "back"
	cmdCancel = "cancel"
	cmdSubmit = "submit"
)

var errCancelled = errors.New("cancelled")

// Add opens the create product wizard.
func (a *App) Add(ctx context.Context) error {
	return a.Go(ctx, views.PathAddProduct)
}

// Edit opens the edit page of one of the user's products.
func (a *App) Edit(ctx context.Context, id string) error {
	return a.Go(ctx, views.EditProductPath(id))
}

// ask reads one wizard answer. It returns errCancelled on "cancel" and
// back=true on "back".
func (a *App) ask(prompt, current string) (value string, back bool, err error) {
	v, err := GetWithDefault(a.reader, prompt, current, a.out)
	if err != nil {
		return "", false, err
	}
	switch strings.ToLower(v) {
	case cmdCancel:
		return "", false, errCancelled
	case cmdBack:
		return "", true, nil
	}
	return v, false, nil
}

// selectCategories turns "1,3" or category ids into a selection.
func selectCategories(input string, cats []models.Category) []string {
	var ids []string
	for _, tok := range strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' }) {
		id := tok
		if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= len(cats) {
			id = cats[n-1].ID
		}
		if !containsString(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// selectionNumbers renders the current selection the way selectCategories
// reads it.
func selectionNumbers(ids []string, cats []models.Category) string {
	nums := make([]string, 0, len(ids))
	for _, id := range ids {
		for i, c := range cats {
			if c.ID == id {
				nums = append(nums, strconv.Itoa(i+1))
			}
		}
	}
	return strings.Join(nums, ",")
}

func (a *App) addPage(ctx context.Context) (string, error) {
	w := views.NewCreateWizard(a.catalog)
	if err := w.LoadCategories(ctx); err != nil {
		a.showPageError("categories", err)
		return "", err
	}
	a.println("Add a product. Type 'back' for the previous step or 'cancel' to stop.")

	for {
		a.printf("\nStep %d of %d: %s\n", w.Step(), views.StepCount, w.Step())

		back, err := a.wizardStep(w)
		if errors.Is(err, errCancelled) {
			a.println("Cancelled.")
			return views.PathHome, nil
		}
		if err != nil {
			return "", err
		}
		if back {
			w.Back()
			continue
		}

		if w.Step() != views.StepReview {
			if err := w.Next(); err != nil {
				a.showFieldErrors(err)
			}
			continue
		}

		next, err := w.Submit(ctx)
		if err != nil {
			a.showAlert(err)
			continue
		}
		a.println("Product created.")
		return next, nil
	}
}

// wizardStep prompts for the fields of the current step.
func (a *App) wizardStep(w *views.CreateWizard) (bool, error) {
	f := &w.Form
	switch w.Step() {
	case views.StepTitle:
		v, back, err := a.ask("Select a title for your product", f.Title)
		if err != nil || back {
			return back, err
		}
		f.Title = v

	case views.StepCategories:
		a.renderCategories(w.Categories, f.CategoryIDs)
		v, back, err := a.ask("Select categories (numbers, comma separated)", selectionNumbers(f.CategoryIDs, w.Categories))
		if err != nil || back {
			return back, err
		}
		f.CategoryIDs = selectCategories(v, w.Categories)

	case views.StepDescription:
		v, back, err := a.ask("Select description", f.Description)
		if err != nil || back {
			return back, err
		}
		f.Description = v

	case views.StepPricing:
		return a.askPricing(f)

	case views.StepReview:
		a.println("Summary")
		a.renderForm(*f, w.CategoryNames())
		for {
			v, err := getSimpleText(a.reader, fmt.Sprintf("Type '%s' to publish, '%s' to change or '%s' to stop", cmdSubmit, cmdBack, cmdCancel), a.out)
			if err != nil {
				return false, err
			}
			switch strings.ToLower(v) {
			case cmdSubmit:
				return false, nil
			case cmdBack:
				return true, nil
			case cmdCancel:
				return false, errCancelled
			}
		}
	}
	return false, nil
}

func (a *App) askPricing(f *views.ProductForm) (bool, error) {
	v, back, err := a.ask("Purchase price", f.PurchasePrice)
	if err != nil || back {
		return back, err
	}
	f.PurchasePrice = v

	v, back, err = a.ask("Rental price (optional)", f.RentalPrice)
	if err != nil || back {
		return back, err
	}
	f.RentalPrice = v
	if strings.TrimSpace(f.RentalPrice) == "" {
		f.RentUnit = ""
		return false, nil
	}

	unit := strings.ToLower(string(f.RentUnit))
	if unit == "" {
		unit = strings.ToLower(string(models.RentUnitDaily))
	}
	v, back, err = a.ask("Rent unit (hourly, daily, weekly, monthly)", unit)
	if err != nil || back {
		return back, err
	}
	f.RentUnit = models.RentUnit(v)
	return false, nil
}

func (a *App) editPage(ctx context.Context, id string) (string, error) {
	e := views.NewEditProduct(a.catalog, a.session)
	if err := e.Load(ctx, id); err != nil {
		if errors.Is(err, views.ErrActionDisabled) {
			a.println("Alert: you can only edit your own products.")
		} else {
			a.showPageError("product", err)
		}
		return "", err
	}

	a.printf("Edit %s (press Enter to keep the current value, 'back' to skip a field, 'cancel' to stop).\n", e.Product().DisplayTitle())
	f := &e.Form
	steps := []func() (bool, error){
		func() (bool, error) {
			v, back, err := a.ask("Title", f.Title)
			if err == nil && !back {
				f.Title = v
			}
			return back, err
		},
		func() (bool, error) {
			a.renderCategories(e.Categories, f.CategoryIDs)
			v, back, err := a.ask("Categories (numbers, comma separated)", selectionNumbers(f.CategoryIDs, e.Categories))
			if err == nil && !back {
				f.CategoryIDs = selectCategories(v, e.Categories)
			}
			return back, err
		},
		func() (bool, error) {
			v, back, err := a.ask("Description", f.Description)
			if err == nil && !back {
				f.Description = v
			}
			return back, err
		},
		func() (bool, error) { return a.askPricing(f) },
	}
	for _, step := range steps {
		if _, err := step(); err != nil {
			if errors.Is(err, errCancelled) {
				a.println("Cancelled.")
				return "", nil
			}
			return "", err
		}
	}

	a.println("Summary")
	a.renderForm(*f, e.CategoryNames())
	yes, err := GetConfirmation(a.reader, "Save changes?", a.out)
	if err != nil {
		return "", err
	}
	if !yes {
		a.println("Cancelled.")
		return "", nil
	}

	next, err := e.Submit(ctx)
	if err != nil {
		a.showAlert(err)
		return "", err
	}
	a.println("Product updated.")
	return next, nil
}
