package views

import (
	"context"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
)

// SessionReader is the read side of the session used for guards and
// ownership checks.
type SessionReader interface {
	IsAuthenticated() bool
	User() *models.User
}

// Authenticator is the session as seen by the login, register and profile
// pages.
type Authenticator interface {
	SessionReader
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, in models.RegisterInput) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.User, error)
	LastEmail(ctx context.Context) string
}

// Catalog is implemented by services.ProductService.
type Catalog interface {
	Page(ctx context.Context, page, size int, policy client.FetchPolicy) (*models.ProductPage, error)
	Get(ctx context.Context, id string, policy client.FetchPolicy) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, in models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, in models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	Buy(ctx context.Context, productID string) (*models.Purchase, error)
	Rent(ctx context.Context, productID string, start, end time.Time) (*models.Rental, error)
}

// TransactionLoader is implemented by services.TransactionService.
type TransactionLoader interface {
	Load(ctx context.Context, policy client.FetchPolicy) (*models.Transactions, error)
}
