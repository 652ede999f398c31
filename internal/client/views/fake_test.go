package views

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
)

var errBackend = errors.New("backend failure")

type fakeSession struct {
	user      *models.User
	lastEmail string
	loginErr  error
	logins    []string
	registers []models.RegisterInput
	updates   []models.UpdateProfileInput
	loggedOut bool
}

func signedIn(id string) *fakeSession {
	return &fakeSession{user: &models.User{ID: id, Email: id + "@example.com", FirstName: "Ada", LastName: "Lovelace"}}
}

func (s *fakeSession) IsAuthenticated() bool { return s.user != nil }
func (s *fakeSession) User() *models.User    { return s.user }

func (s *fakeSession) Login(_ context.Context, email, _ string) error {
	s.logins = append(s.logins, email)
	if s.loginErr != nil {
		return s.loginErr
	}
	s.user = &models.User{ID: "u1", Email: email}
	return nil
}

func (s *fakeSession) Register(_ context.Context, in models.RegisterInput) error {
	s.registers = append(s.registers, in)
	if s.loginErr != nil {
		return s.loginErr
	}
	s.user = &models.User{ID: "u1", Email: in.Email}
	return nil
}

func (s *fakeSession) Logout(context.Context) error {
	s.loggedOut = true
	s.user = nil
	return nil
}

func (s *fakeSession) UpdateProfile(_ context.Context, in models.UpdateProfileInput) (*models.User, error) {
	s.updates = append(s.updates, in)
	return s.user, nil
}

func (s *fakeSession) LastEmail(context.Context) string { return s.lastEmail }

// fakeCatalog serves a fixed product set. pageHook, when set, runs before
// a page is returned and may block.
type fakeCatalog struct {
	mu         sync.Mutex
	products   []models.Product
	categories []models.Category

	pageHook func(page int)
	pageErr  error
	buyErr   error
	rentErr  error
	delErr   error
	catErr   error

	pageCalls []client.FetchPolicy
	created   []models.ProductInput
	updated   []models.ProductInput
	deleted   []string
	bought    []string
	rented    []string
}

func newCatalog(n int, owner string) *fakeCatalog {
	c := &fakeCatalog{categories: []models.Category{{ID: "c1", Name: "Electronics"}, {ID: "c2", Name: "Toys"}}}
	for i := 1; i <= n; i++ {
		c.products = append(c.products, models.Product{
			ID:            fmt.Sprintf("p%d", i),
			Title:         fmt.Sprintf("Product %d", i),
			UserID:        owner,
			Status:        models.ProductStatusPublished,
			Categories:    []models.Category{{ID: "c1", Name: "Electronics"}},
			PurchasePrice: common.Ptr(100.0),
			RentalPrice:   common.Ptr(10.0),
			RentUnit:      models.RentUnitDaily,
		})
	}
	return c
}

func (c *fakeCatalog) Page(_ context.Context, page, size int, policy client.FetchPolicy) (*models.ProductPage, error) {
	if c.pageHook != nil {
		c.pageHook(page)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageCalls = append(c.pageCalls, policy)
	if c.pageErr != nil {
		return nil, c.pageErr
	}
	offset := (page - 1) * size
	res := &models.ProductPage{Total: len(c.products)}
	for i := offset; i < len(c.products) && i < offset+size; i++ {
		res.Products = append(res.Products, c.products[i])
	}
	return res, nil
}

func (c *fakeCatalog) Get(_ context.Context, id string, _ client.FetchPolicy) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (c *fakeCatalog) Categories(context.Context) ([]models.Category, error) {
	if c.catErr != nil {
		return nil, c.catErr
	}
	return c.categories, nil
}

func (c *fakeCatalog) Create(_ context.Context, in models.ProductInput) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.created = append(c.created, in)
	return &models.Product{ID: "new", Title: in.Title, Status: in.Status}, nil
}

func (c *fakeCatalog) Update(_ context.Context, in models.ProductInput) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updated = append(c.updated, in)
	return &models.Product{ID: in.ID, Title: in.Title, Status: in.Status}, nil
}

func (c *fakeCatalog) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.delErr != nil {
		return c.delErr
	}
	c.deleted = append(c.deleted, id)
	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			break
		}
	}
	return nil
}

func (c *fakeCatalog) Buy(_ context.Context, id string) (*models.Purchase, error) {
	if c.buyErr != nil {
		return nil, c.buyErr
	}
	c.bought = append(c.bought, id)
	return &models.Purchase{ID: "pu1", ProductID: id, Price: 100}, nil
}

func (c *fakeCatalog) Rent(_ context.Context, id string, start, end time.Time) (*models.Rental, error) {
	if c.rentErr != nil {
		return nil, c.rentErr
	}
	c.rented = append(c.rented, id)
	return &models.Rental{ID: "r1", ProductID: id}, nil
}

type fakeLoader struct {
	tx       *models.Transactions
	err      error
	policies []client.FetchPolicy
}

func (l *fakeLoader) Load(_ context.Context, policy client.FetchPolicy) (*models.Transactions, error) {
	l.policies = append(l.policies, policy)
	return l.tx, l.err
}
