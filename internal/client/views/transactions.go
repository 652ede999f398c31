package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
)

// Tab selects one of the four transaction lists.
type Tab string

const (
	TabBought   Tab = "bought"
	TabSold     Tab = "sold"
	TabBorrowed Tab = "borrowed"
	TabLent     Tab = "lent"
)

var Tabs = []Tab{TabBought, TabSold, TabBorrowed, TabLent}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// Transactions is the "my transactions" page.
type Transactions struct {
	loader TransactionLoader

	tab    Tab
	data   models.Transactions
	Status Status
}

func NewTransactions(loader TransactionLoader) *Transactions {
	return &Transactions{loader: loader, tab: TabBought}
}

// Load always goes to the network: transactions change outside this client.
func (t *Transactions) Load(ctx context.Context) error {
	t.Status.begin(PhaseLoading)
	tx, err := t.loader.Load(ctx, client.NetworkOnly)
	if err != nil {
		return t.Status.end(err)
	}
	t.data = models.Transactions{}
	if tx != nil {
		t.data = *tx
	}
	return t.Status.end(nil)
}

func (t *Transactions) Tab() Tab { return t.tab }

func (t *Transactions) SetTab(tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	t.tab = tab
	return nil
}

// Purchases returns the records of a purchase tab (bought or sold).
func (t *Transactions) Purchases() []models.Purchase {
	switch t.tab {
	case TabBought:
		return t.data.Purchases
	case TabSold:
		return t.data.Sales
	}
	return nil
}

// Rentals returns the records of a rental tab (borrowed or lent).
func (t *Transactions) Rentals() []models.Rental {
	switch t.tab {
	case TabBorrowed:
		return t.data.Rentals
	case TabLent:
		return t.data.Lendings
	}
	return nil
}

// Count returns the number of records in tab.
func (t *Transactions) Count(tab Tab) int {
	switch tab {
	case TabBought:
		return len(t.data.Purchases)
	case TabSold:
		return len(t.data.Sales)
	case TabBorrowed:
		return len(t.data.Rentals)
	case TabLent:
		return len(t.data.Lendings)
	}
	return 0
}
