package client

import (
	"context"

	"github.com/dmitrijs2005/teebay/internal/client/models"
)

// FetchPolicy selects how a query uses the cache.
type FetchPolicy int

const (
	// CacheFirst answers from the cache when the root is present.
	CacheFirst FetchPolicy = iota
	// NetworkOnly always queries the backend and refreshes the cache.
	NetworkOnly
)

func (p FetchPolicy) String() string {
	if p == NetworkOnly {
		return "network-only"
	}
	return "cache-first"
}

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means the request is sent without credentials.
type TokenSource interface {
	Token() string
}

// Root name prefixes used for invalidation.
const (
	RootAllProducts  = "allProducts"
	RootProduct      = "product:"
	RootUserProducts = "userProducts:"
	RootCategories   = "categories"
	RootUser         = "user:"
	RootMyBuys       = "myBuys"
	RootMySales      = "mySales"
	RootMyRentals    = "myRentals"
	RootMyLendings   = "myLendings"
)

type Client interface {
	Me(ctx context.Context) (*models.User, error)
	User(ctx context.Context, id string, policy FetchPolicy) (*models.User, error)
	Products(ctx context.Context, filter models.ProductFilter, policy FetchPolicy) (*models.ProductPage, error)
	Product(ctx context.Context, id string, policy FetchPolicy) (*models.Product, error)
	UserProducts(ctx context.Context, userID string, policy FetchPolicy) (*models.ProductPage, error)
	Categories(ctx context.Context, policy FetchPolicy) ([]models.Category, error)
	MyBuys(ctx context.Context, status string, policy FetchPolicy) ([]models.Purchase, error)
	MySales(ctx context.Context, policy FetchPolicy) ([]models.Purchase, error)
	MyRentals(ctx context.Context, status string, policy FetchPolicy) ([]models.Rental, error)
	MyLendings(ctx context.Context, policy FetchPolicy) ([]models.Rental, error)

	Login(ctx context.Context, email, password string) (*models.AuthPayload, error)
	Register(ctx context.Context, in models.RegisterInput) (*models.AuthPayload, error)
	UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.User, error)
	CreateProduct(ctx context.Context, in models.ProductInput) (*models.ProductResult, error)
	UpdateProduct(ctx context.Context, in models.ProductInput) (*models.ProductResult, error)
	DeleteProduct(ctx context.Context, id string) (*models.MutationResult, error)
	BuyProduct(ctx context.Context, productID string) (*models.Purchase, error)
	RentProduct(ctx context.Context, in models.RentInput) (*models.Rental, error)

	// WriteIdentity stores u as the "me" root and as its User entity.
	WriteIdentity(u models.User)
	// EvictIdentity drops the "me" root and user entity, then collects
	// entities nothing references any more.
	EvictIdentity()
	// Invalidate drops every cached root whose name has one of prefixes.
	Invalidate(prefixes ...string)
	// EvictProduct drops the product entity and every root referencing it.
	EvictProduct(id string)
}
