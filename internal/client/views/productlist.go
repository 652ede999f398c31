package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
)

// Editable reports whether userID owns p and may edit or delete it.
func Editable(p models.Product, userID string) bool {
	return userID != "" && p.UserID == userID
}

// DeleteDialog is the confirmation shown before a product is deleted.
type DeleteDialog struct {
	Open      bool
	ProductID string
	Title     string
	Status    Status
}

// ProductList is the paginated listing of published products.
type ProductList struct {
	catalog Catalog
	session SessionReader
	pager   Pager

	mu       sync.Mutex
	seq      uint64
	status   Status
	products []models.Product
	total    int
	page     int
	dialog   DeleteDialog
}

func NewProductList(catalog Catalog, session SessionReader) *ProductList {
	return &ProductList{catalog: catalog, session: session, pager: Pager{Size: PageSize}, page: 1}
}

func (l *ProductList) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Products returns a copy of the current page.
func (l *ProductList) Products() []models.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Product(nil), l.products...)
}

func (l *ProductList) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

func (l *ProductList) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

func (l *ProductList) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pager.TotalPages(l.total)
}

func (l *ProductList) Dialog() DeleteDialog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dialog
}

// Editable reports whether the signed-in user owns p.
func (l *ProductList) Editable(p models.Product) bool {
	u := l.session.User()
	return u != nil && Editable(p, u.ID)
}

// Load fetches the current page, from the cache when possible.
func (l *ProductList) Load(ctx context.Context) error {
	return l.fetch(ctx, l.Page(), client.CacheFirst)
}

// GoTo fetches page n.
func (l *ProductList) GoTo(ctx context.Context, n int) error {
	if n < 1 {
		n = 1
	}
	return l.fetch(ctx, n, client.CacheFirst)
}

// Next moves forward one page; on the last page it does nothing.
func (l *ProductList) Next(ctx context.Context) error {
	page, last := l.Page(), l.TotalPages()
	if page >= last {
		return nil
	}
	return l.GoTo(ctx, page+1)
}

// Prev moves back one page; on the first page it does nothing.
func (l *ProductList) Prev(ctx context.Context) error {
	page := l.Page()
	if page <= 1 {
		return nil
	}
	return l.GoTo(ctx, page-1)
}

// fetch loads page n. A response that arrives after a newer fetch started
// is dropped.
func (l *ProductList) fetch(ctx context.Context, n int, policy client.FetchPolicy) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.status.begin(PhaseLoading)
	l.mu.Unlock()

	res, err := l.catalog.Page(ctx, n, l.pager.Size, policy)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return nil
	}
	if err != nil {
		return l.status.end(err)
	}
	l.products = append([]models.Product(nil), res.Products...)
	l.total = res.Total
	l.page = n
	return l.status.end(nil)
}

// OpenDelete opens the confirmation dialog for one of the user's products.
func (l *ProductList) OpenDelete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	u := l.session.User()
	for _, p := range l.products {
		if p.ID != id {
			continue
		}
		if u == nil || !Editable(p, u.ID) {
			return ErrActionDisabled
		}
		l.dialog = DeleteDialog{Open: true, ProductID: id, Title: p.DisplayTitle()}
		return nil
	}
	return ErrNoProduct
}

func (l *ProductList) CancelDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dialog = DeleteDialog{}
}

// ConfirmDelete deletes the product in the open dialog. On success the
// product is dropped from the page and the page is refetched from the
// network; on failure the dialog stays open with the error.
func (l *ProductList) ConfirmDelete(ctx context.Context) error {
	l.mu.Lock()
	if !l.dialog.Open {
		l.mu.Unlock()
		return ErrNoDialog
	}
	if l.dialog.Status.Busy() {
		l.mu.Unlock()
		return nil
	}
	id := l.dialog.ProductID
	l.dialog.Status.begin(PhaseSubmitting)
	l.mu.Unlock()

	err := l.catalog.Delete(ctx, id)

	l.mu.Lock()
	if err != nil {
		l.dialog.Status.end(err)
		l.mu.Unlock()
		return err
	}
	kept := l.products[:0:0]
	for _, p := range l.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	l.products = kept
	if l.total > 0 {
		l.total--
	}
	l.dialog = DeleteDialog{}
	page := l.pager.Clamp(l.page, l.total)
	l.mu.Unlock()

	return l.fetch(ctx, page, client.NetworkOnly)
}
