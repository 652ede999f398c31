package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// EditProduct edits an existing product with the wizard's rules applied to
// all fields at once.
type EditProduct struct {
	catalog Catalog
	session SessionReader

	product    *models.Product
	Form       ProductForm
	Errors     FieldErrors
	Categories []models.Category
	Status     Status
	Save       Status
}

func NewEditProduct(catalog Catalog, session SessionReader) *EditProduct {
	return &EditProduct{catalog: catalog, session: session, Errors: FieldErrors{}}
}

// Product returns the product being edited, nil before Load.
func (e *EditProduct) Product() *models.Product { return e.product }

// Load fetches the product and the categories and fills the form. Only the
// owner may edit.
func (e *EditProduct) Load(ctx context.Context, id string) error {
	e.Status.begin(PhaseLoading)

	var (
		p    *models.Product
		cats []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		p, err = e.catalog.Get(gctx, id, client.NetworkOnly)
		return err
	})
	g.Go(func() (err error) {
		cats, err = e.catalog.Categories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return e.Status.end(fmt.Errorf("load product: %w", err))
	}
	if p == nil {
		return e.Status.end(ErrNoProduct)
	}

	u := e.session.User()
	if u == nil || !Editable(*p, u.ID) {
		return e.Status.end(ErrActionDisabled)
	}

	e.product = p
	e.Categories = cats
	e.Form = FormFromProduct(*p)
	e.Errors = FieldErrors{}
	return e.Status.end(nil)
}

// Submit validates and saves the form, keeping the product's status.
func (e *EditProduct) Submit(ctx context.Context) (string, error) {
	if e.product == nil {
		return "", ErrNoProduct
	}
	if e.Save.Busy() {
		return "", nil
	}
	e.Errors = e.Form.Validate(e.Categories)
	if err := e.Errors.Err(); err != nil {
		return "", err
	}

	in, err := e.Form.Input(e.product.ID, e.product.Status)
	if err != nil {
		return "", err
	}

	e.Save.begin(PhaseSubmitting)
	updated, err := e.catalog.Update(ctx, in)
	if err != nil {
		return "", e.Save.end(err)
	}
	if updated != nil {
		e.product = updated
	}
	e.Save.end(nil)
	return PathHome, nil
}

// CategoryNames resolves the selected ids against the loaded categories.
func (e *EditProduct) CategoryNames() []string {
	return categoryNames(e.Categories, e.Form.CategoryIDs)
}
