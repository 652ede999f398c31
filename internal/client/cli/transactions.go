package cli

import (
	"context"

	"github.com/dmitrijs2005/teebay/internal/client/views"
)

// Transactions opens the transactions page, optionally on a given tab.
func (a *App) Transactions(ctx context.Context, tab string) error {
	if tab != "" {
		t, err := views.ParseTab(tab)
		if err != nil {
			a.showAlert(err)
			return err
		}
		if err := a.tx.SetTab(t); err != nil {
			return err
		}
	}
	return a.Go(ctx, views.PathTransactions)
}

func (a *App) transactionsPage(ctx context.Context) error {
	if err := a.tx.Load(ctx); err != nil {
		a.showPageError("transactions", err)
		return err
	}
	a.renderTransactions(a.tx)
	return nil
}
