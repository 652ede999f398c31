package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
	"github.com/dmitrijs2005/teebay/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProducts(api *fakeClient) *ProductService {
	return NewProductService(api, logging.Discard())
}

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		page, size, offset int
	}{
		{page: 1, size: 10, offset: 0},
		{page: 3, size: 10, offset: 20},
		{page: 0, size: 10, offset: 0},
		{page: 2, size: 5, offset: 5},
	}
	for _, tt := range tests {
		api := &fakeClient{ProductsRet: &models.ProductPage{}}
		_, err := newProducts(api).Page(context.Background(), tt.page, tt.size, client.NetworkOnly)
		require.NoError(t, err)
		assert.Equal(t, models.ProductFilter{Limit: tt.size, Offset: tt.offset, Status: models.ProductStatusPublished}, api.LastFilter)
		assert.Equal(t, []client.FetchPolicy{client.NetworkOnly}, api.LastPolicies)
	}
}

func TestCreate_InvalidatesLists(t *testing.T) {
	api := &fakeClient{CreateRet: &models.ProductResult{Success: true, Product: &models.Product{ID: "p1"}}}
	p, err := newProducts(api).Create(context.Background(), models.ProductInput{Title: "Bike"})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.ElementsMatch(t, []string{client.RootAllProducts, client.RootUserProducts}, api.Invalidated)
	assert.Empty(t, api.Evicted)
}

func TestCreate_UnsuccessfulCarriesMessage(t *testing.T) {
	api := &fakeClient{CreateRet: &models.ProductResult{Success: false, Message: "Title already used"}}
	_, err := newProducts(api).Create(context.Background(), models.ProductInput{Title: "Bike"})
	require.ErrorIs(t, err, common.ErrOperationFailed)
	assert.Equal(t, "Title already used", err.Error())
	assert.Empty(t, api.Invalidated)
}

func TestUpdate_EvictsAndInvalidates(t *testing.T) {
	api := &fakeClient{UpdateRet: &models.ProductResult{Success: true, Product: &models.Product{ID: "p1"}}}
	_, err := newProducts(api).Update(context.Background(), models.ProductInput{ID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, api.Evicted)
	assert.Contains(t, api.Invalidated, client.RootAllProducts)
}

func TestUpdate_TransportError(t *testing.T) {
	api := &fakeClient{UpdateErr: &client.OperationError{Op: "updateProduct", Message: "server unavailable", Err: client.ErrUnavailable}}
	_, err := newProducts(api).Update(context.Background(), models.ProductInput{ID: "p1"})
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Empty(t, api.Evicted)
}

func TestDelete(t *testing.T) {
	api := &fakeClient{DeleteRet: &models.MutationResult{Success: true}}
	require.NoError(t, newProducts(api).Delete(context.Background(), "p1"))
	assert.Equal(t, []string{"p1"}, api.Evicted)

	api = &fakeClient{DeleteRet: &models.MutationResult{Success: false}}
	err := newProducts(api).Delete(context.Background(), "p1")
	require.ErrorIs(t, err, common.ErrOperationFailed)
	assert.Equal(t, "deleteProduct failed", err.Error())
}

func TestBuy_InvalidatesPurchases(t *testing.T) {
	api := &fakeClient{BuyRet: &models.Purchase{ID: "b1"}}
	_, err := newProducts(api).Buy(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, api.Evicted)
	assert.Subset(t, api.Invalidated, []string{client.RootAllProducts, client.RootMyBuys, client.RootMySales})
}

func TestRent_ValidatesPeriodBeforeSending(t *testing.T) {
	api := &fakeClient{RentRet: &models.Rental{ID: "r1"}}
	svc := newProducts(api)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Rent(ctx, "p1", start, start)
	require.ErrorIs(t, err, common.ErrInvalidPeriod)
	_, err = svc.Rent(ctx, "p1", start, start.Add(-time.Hour))
	require.ErrorIs(t, err, common.ErrInvalidPeriod)
	_, err = svc.Rent(ctx, "p1", time.Time{}, start)
	require.ErrorIs(t, err, common.ErrInvalidPeriod)
	assert.Empty(t, api.MutationLog)

	r, err := svc.Rent(ctx, "p1", start, start.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, "p1", api.LastRent.ProductID)
	assert.Equal(t, []string{"rent"}, api.MutationLog)
	assert.Subset(t, api.Invalidated, []string{client.RootMyRentals, client.RootMyLendings})
}

func TestGetAndCategories(t *testing.T) {
	api := &fakeClient{
		ProductRet:    &models.Product{ID: "p1"},
		CategoriesRet: []models.Category{{ID: "c1", Name: "Toys"}},
		CategoriesErr: nil,
	}
	svc := newProducts(api)
	p, err := svc.Get(context.Background(), "p1", client.CacheFirst)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	api.ProductErr = errors.New("boom")
	_, err = svc.Get(context.Background(), "p1", client.NetworkOnly)
	require.Error(t, err)
}

func TestOwnedBy(t *testing.T) {
	api := &fakeClient{UserProductsRet: &models.ProductPage{Total: 2}}
	page, err := newProducts(api).OwnedBy(context.Background(), "u1", client.CacheFirst)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}
