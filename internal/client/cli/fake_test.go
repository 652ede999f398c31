package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
	"github.com/dmitrijs2005/teebay/internal/logging"
)

type fakeSession struct {
	user       *models.User
	restoreErr error
	loginErr   error
	logins     []string
	registers  []models.RegisterInput
	updates    []models.UpdateProfileInput
	loggedOut  bool
}

func alice() *models.User {
	return &models.User{ID: "u1", Email: "alice@example.com", FirstName: "Alice", LastName: "Smith", Phone: "123"}
}

func (s *fakeSession) IsAuthenticated() bool { return s.user != nil }
func (s *fakeSession) User() *models.User    { return s.user }

func (s *fakeSession) Restore(context.Context) error { return s.restoreErr }

func (s *fakeSession) Login(_ context.Context, email, _ string) error {
	s.logins = append(s.logins, email)
	if s.loginErr != nil {
		return s.loginErr
	}
	s.user = alice()
	return nil
}

func (s *fakeSession) Register(_ context.Context, in models.RegisterInput) error {
	s.registers = append(s.registers, in)
	s.user = &models.User{ID: "u9", Email: in.Email, FirstName: in.FirstName, LastName: in.LastName}
	return nil
}

func (s *fakeSession) Logout(context.Context) error {
	s.loggedOut = true
	s.user = nil
	return nil
}

func (s *fakeSession) UpdateProfile(_ context.Context, in models.UpdateProfileInput) (*models.User, error) {
	s.updates = append(s.updates, in)
	if in.Phone != nil {
		s.user.Phone = *in.Phone
	}
	return s.user, nil
}

func (s *fakeSession) LastEmail(context.Context) string { return "" }

type fakeCatalog struct {
	products []models.Product
	created  []models.ProductInput
	updated  []models.ProductInput
	deleted  []string
	bought   []string
	rented   []string
}

func newCatalog(n int, owner string) *fakeCatalog {
	c := &fakeCatalog{}
	for i := 1; i <= n; i++ {
		c.products = append(c.products, models.Product{
			ID:            fmt.Sprintf("p%d", i),
			Title:         fmt.Sprintf("Product %d", i),
			UserID:        owner,
			Categories:    []models.Category{{ID: "c1", Name: "Electronics"}},
			PurchasePrice: common.Ptr(100.0),
			RentalPrice:   common.Ptr(10.0),
			RentUnit:      models.RentUnitDaily,
			Status:        models.ProductStatusPublished,
		})
	}
	return c
}

func (c *fakeCatalog) Page(_ context.Context, page, size int, _ client.FetchPolicy) (*models.ProductPage, error) {
	res := &models.ProductPage{Total: len(c.products)}
	for i := (page - 1) * size; i >= 0 && i < len(c.products) && i < page*size; i++ {
		res.Products = append(res.Products, c.products[i])
	}
	return res, nil
}

func (c *fakeCatalog) Get(_ context.Context, id string, _ client.FetchPolicy) (*models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (c *fakeCatalog) Categories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: "c1", Name: "Electronics"}, {ID: "c2", Name: "Toys"}}, nil
}

func (c *fakeCatalog) Create(_ context.Context, in models.ProductInput) (*models.Product, error) {
	c.created = append(c.created, in)
	return &models.Product{ID: "new", Title: in.Title}, nil
}

func (c *fakeCatalog) Update(_ context.Context, in models.ProductInput) (*models.Product, error) {
	c.updated = append(c.updated, in)
	return &models.Product{ID: in.ID, Title: in.Title}, nil
}

func (c *fakeCatalog) Delete(_ context.Context, id string) error {
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
	c.bought = append(c.bought, id)
	return &models.Purchase{ID: "pu1", ProductID: id, Price: 100}, nil
}

func (c *fakeCatalog) Rent(_ context.Context, id string, _, _ time.Time) (*models.Rental, error) {
	c.rented = append(c.rented, id)
	return &models.Rental{ID: "r1", ProductID: id}, nil
}

type fakeUsers struct{}

func (fakeUsers) Get(_ context.Context, id string) (*models.User, error) {
	if id == "u2" {
		return &models.User{ID: "u2", FirstName: "Bob", LastName: "Seller"}, nil
	}
	return nil, common.ErrNotFound
}

type fakeLoader struct {
	tx models.Transactions
}

func (l *fakeLoader) Load(context.Context, client.FetchPolicy) (*models.Transactions, error) {
	tx := l.tx
	return &tx, nil
}

// newTestApp builds an App reading the scripted input. REPL prompts are
// discarded and passwords always read as "secret1".
func newTestApp(t *testing.T, s *fakeSession, c *fakeCatalog, input string) (*App, *bytes.Buffer) {
	t.Helper()

	origPrint, origPassword := printlnFn, getPassword
	printlnFn = func(...any) (int, error) { return 0, nil }
	getPassword = func(string, io.Writer) ([]byte, error) { return []byte("secret1"), nil }
	t.Cleanup(func() { printlnFn, getPassword = origPrint, origPassword })

	var out bytes.Buffer
	loader := &fakeLoader{tx: models.Transactions{
		Purchases: []models.Purchase{{ID: "b1", Product: models.ProductSnapshot{Title: "Lamp"}, Price: 40}},
		Sales:     []models.Purchase{{ID: "s1", Product: models.ProductSnapshot{Title: "Desk"}, Price: 90}},
	}}
	deps := Deps{Session: s, Catalog: c, Transactions: loader, Users: fakeUsers{}}
	return NewApp(deps, logging.Discard(), strings.NewReader(input), &out), &out
}
