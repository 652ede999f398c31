package views

import (
	"context"

	"github.com/dmitrijs2005/teebay/internal/client/models"
)

// Step is a create wizard step, 1-based.
type Step int

const (
	StepTitle Step = iota + 1
	StepCategories
	StepDescription
	StepPricing
	StepReview
)

// StepCount is the number of wizard steps.
const StepCount = int(StepReview)

func (s Step) String() string {
	switch s {
	case StepTitle:
		return "Title"
	case StepCategories:
		return "Categories"
	case StepDescription:
		return "Description"
	case StepPricing:
		return "Pricing"
	case StepReview:
		return "Review"
	default:
		return "Unknown"
	}
}

// CreateWizard collects a new product over five linear steps. Its state
// lives only as long as the controller.
type CreateWizard struct {
	catalog Catalog

	step       Step
	Form       ProductForm
	Errors     FieldErrors
	Status     Status
	Categories []models.Category
	CatStatus  Status
}

func NewCreateWizard(catalog Catalog) *CreateWizard {
	return &CreateWizard{catalog: catalog, step: StepTitle, Errors: FieldErrors{}}
}

func (w *CreateWizard) Step() Step { return w.step }

// LoadCategories fetches the category choices for step 2.
func (w *CreateWizard) LoadCategories(ctx context.Context) error {
	w.CatStatus.begin(PhaseLoading)
	cats, err := w.catalog.Categories(ctx)
	if err != nil {
		return w.CatStatus.end(err)
	}
	w.Categories = cats
	return w.CatStatus.end(nil)
}

// Next validates the current step and advances. At review it stays put.
func (w *CreateWizard) Next() error {
	errs := FieldErrors{}
	switch w.step {
	case StepTitle:
		w.Form.validateTitle(errs)
	case StepCategories:
		w.Form.validateCategories(errs, w.Categories)
	case StepDescription:
		w.Form.validateDescription(errs)
	case StepPricing:
		w.Form.validatePricing(errs)
	}
	w.Errors = errs
	if err := errs.Err(); err != nil {
		return err
	}
	if w.step < StepReview {
		w.step++
	}
	return nil
}

// Back returns to the previous step, never below the first.
func (w *CreateWizard) Back() {
	if w.step > StepTitle {
		w.step--
	}
	w.Errors = FieldErrors{}
}

// Submit creates the product as PUBLISHED. It is only valid at review; a
// failure keeps the wizard at review with the error.
func (w *CreateWizard) Submit(ctx context.Context) (string, error) {
	if w.step != StepReview {
		return "", ErrNotReviewed
	}
	if w.Status.Busy() {
		return "", nil
	}
	w.Errors = w.Form.Validate(w.Categories)
	if err := w.Errors.Err(); err != nil {
		return "", err
	}

	in, err := w.Form.Input("", models.ProductStatusPublished)
	if err != nil {
		return "", err
	}

	w.Status.begin(PhaseSubmitting)
	if _, err := w.catalog.Create(ctx, in); err != nil {
		return "", w.Status.end(err)
	}
	w.Status.end(nil)
	return PathHome, nil
}

// CategoryNames resolves the selected ids against the loaded categories.
func (w *CreateWizard) CategoryNames() []string {
	return categoryNames(w.Categories, w.Form.CategoryIDs)
}

func categoryNames(known []models.Category, ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name := id
		for _, c := range known {
			if c.ID == id {
				name = c.Name
				break
			}
		}
		names = append(names, name)
	}
	return names
}
