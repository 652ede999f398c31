package views

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditProduct_LoadAndSubmit(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog(1, "u1")
	e := NewEditProduct(cat, signedIn("u1"))

	_, err := e.Submit(ctx)
	require.ErrorIs(t, err, ErrNoProduct)

	require.NoError(t, e.Load(ctx, "p1"))
	assert.Equal(t, "Product 1", e.Form.Title)
	assert.Equal(t, "100", e.Form.PurchasePrice)
	assert.Equal(t, "10", e.Form.RentalPrice)
	assert.Equal(t, []string{"c1"}, e.Form.CategoryIDs)
	assert.Equal(t, []string{"Electronics"}, e.CategoryNames())

	e.Form.Title = ""
	e.Form.Description = ""
	_, err = e.Submit(ctx)
	require.Error(t, err)
	assert.Contains(t, e.Errors, FieldTitle)
	assert.Contains(t, e.Errors, FieldDescription)
	assert.Empty(t, cat.updated)

	e.Form.Title = "Renamed"
	e.Form.Description = "Now described"
	next, err := e.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, PathHome, next)
	require.Len(t, cat.updated, 1)
	assert.Equal(t, "p1", cat.updated[0].ID)
	assert.Equal(t, models.ProductStatusPublished, cat.updated[0].Status)
	assert.Equal(t, "Renamed", e.Product().Title)
}

func TestEditProduct_LoadRejections(t *testing.T) {
	ctx := context.Background()

	e := NewEditProduct(newCatalog(1, "u2"), signedIn("u1"))
	assert.ErrorIs(t, e.Load(ctx, "p1"), ErrActionDisabled)
	assert.Nil(t, e.Product())

	e = NewEditProduct(newCatalog(1, "u1"), signedIn("u1"))
	assert.ErrorIs(t, e.Load(ctx, "nope"), ErrNoProduct)

	cat := newCatalog(1, "u1")
	cat.catErr = errBackend
	e = NewEditProduct(cat, signedIn("u1"))
	assert.ErrorIs(t, e.Load(ctx, "p1"), errBackend)
	assert.Equal(t, PhaseError, e.Status.Phase)
}
