package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"golang.org/x/sync/errgroup"
)

type TransactionService struct {
	api client.Client
}

func NewTransactionService(api client.Client) *TransactionService {
	return &TransactionService{api: api}
}

// Load fetches the four transaction lists concurrently. The first failure
// cancels the others and is returned.
func (s *TransactionService) Load(ctx context.Context, policy client.FetchPolicy) (*models.Transactions, error) {
	var tx models.Transactions
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		tx.Purchases, err = s.api.MyBuys(ctx, "", policy)
		return err
	})
	g.Go(func() (err error) {
		tx.Sales, err = s.api.MySales(ctx, policy)
		return err
	})
	g.Go(func() (err error) {
		tx.Rentals, err = s.api.MyRentals(ctx, "", policy)
		return err
	})
	g.Go(func() (err error) {
		tx.Lendings, err = s.api.MyLendings(ctx, policy)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return &tx, nil
}
