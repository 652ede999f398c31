package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/client/repositories/metadata"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupStore(t *testing.T) *metadata.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return metadata.NewStore(db)
}

// ---- fake client ----

// fakeClient implements client.Client for service tests. Results and errors
// are configured per method; calls are recorded for assertions.
type fakeClient struct {
	mu sync.Mutex

	MeRet *models.User
	MeErr error

	UserRet *models.User
	UserErr error

	ProductsRet  *models.ProductPage
	ProductsErr  error
	LastFilter   models.ProductFilter
	LastPolicies []client.FetchPolicy

	ProductRet *models.Product
	ProductErr error

	UserProductsRet *models.ProductPage

	CategoriesRet []models.Category
	CategoriesErr error

	BuysRet     []models.Purchase
	BuysErr     error
	SalesRet    []models.Purchase
	RentalsRet  []models.Rental
	LendingsRet []models.Rental

	LoginRet    *models.AuthPayload
	LoginErr    error
	LastEmail   string
	LastPass    string
	RegisterRet *models.AuthPayload
	RegisterErr error
	LastReg     models.RegisterInput

	UpdateProfileRet *models.User
	UpdateProfileErr error

	CreateRet   *models.ProductResult
	CreateErr   error
	UpdateRet   *models.ProductResult
	UpdateErr   error
	LastInput   models.ProductInput
	DeleteRet   *models.MutationResult
	DeleteErr   error
	BuyRet      *models.Purchase
	BuyErr      error
	RentRet     *models.Rental
	RentErr     error
	LastRent    models.RentInput
	MutationLog []string

	Identity     *models.User
	Invalidated  []string
	Evicted      []string
	IdentityGone bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MutationLog = append(f.MutationLog, op)
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) { return f.MeRet, f.MeErr }

func (f *fakeClient) User(ctx context.Context, id string, policy client.FetchPolicy) (*models.User, error) {
	return f.UserRet, f.UserErr
}

func (f *fakeClient) Products(ctx context.Context, filter models.ProductFilter, policy client.FetchPolicy) (*models.ProductPage, error) {
	f.mu.Lock()
	f.LastFilter = filter
	f.LastPolicies = append(f.LastPolicies, policy)
	f.mu.Unlock()
	return f.ProductsRet, f.ProductsErr
}

func (f *fakeClient) Product(ctx context.Context, id string, policy client.FetchPolicy) (*models.Product, error) {
	return f.ProductRet, f.ProductErr
}

func (f *fakeClient) UserProducts(ctx context.Context, userID string, policy client.FetchPolicy) (*models.ProductPage, error) {
	return f.UserProductsRet, nil
}

func (f *fakeClient) Categories(ctx context.Context, policy client.FetchPolicy) ([]models.Category, error) {
	return f.CategoriesRet, f.CategoriesErr
}

func (f *fakeClient) MyBuys(ctx context.Context, status string, policy client.FetchPolicy) ([]models.Purchase, error) {
	return f.BuysRet, f.BuysErr
}

func (f *fakeClient) MySales(ctx context.Context, policy client.FetchPolicy) ([]models.Purchase, error) {
	return f.SalesRet, nil
}

func (f *fakeClient) MyRentals(ctx context.Context, status string, policy client.FetchPolicy) ([]models.Rental, error) {
	return f.RentalsRet, nil
}

func (f *fakeClient) MyLendings(ctx context.Context, policy client.FetchPolicy) ([]models.Rental, error) {
	return f.LendingsRet, nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.AuthPayload, error) {
	f.LastEmail, f.LastPass = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, in models.RegisterInput) (*models.AuthPayload, error) {
	f.LastReg = in
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.User, error) {
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) CreateProduct(ctx context.Context, in models.ProductInput) (*models.ProductResult, error) {
	f.LastInput = in
	f.record("create")
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateProduct(ctx context.Context, in models.ProductInput) (*models.ProductResult, error) {
	f.LastInput = in
	f.record("update")
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteProduct(ctx context.Context, id string) (*models.MutationResult, error) {
	f.record("delete")
	return f.DeleteRet, f.DeleteErr
}

func (f *fakeClient) BuyProduct(ctx context.Context, productID string) (*models.Purchase, error) {
	f.record("buy")
	return f.BuyRet, f.BuyErr
}

func (f *fakeClient) RentProduct(ctx context.Context, in models.RentInput) (*models.Rental, error) {
	f.LastRent = in
	f.record("rent")
	return f.RentRet, f.RentErr
}

func (f *fakeClient) WriteIdentity(u models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Identity = &u
	f.IdentityGone = false
}

func (f *fakeClient) EvictIdentity() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Identity = nil
	f.IdentityGone = true
}

func (f *fakeClient) Invalidate(prefixes ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Invalidated = append(f.Invalidated, prefixes...)
}

func (f *fakeClient) EvictProduct(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Evicted = append(f.Evicted, id)
}
