package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/client/views"
	"github.com/dmitrijs2005/teebay/internal/common"
	"github.com/dmitrijs2005/teebay/internal/logging"
)

// SessionManager is the session as the CLI needs it: the views'
// authenticator plus restoring a saved token at startup.
type SessionManager interface {
	views.Authenticator
	Restore(ctx context.Context) error
}

// UserLookup resolves a product owner for the detail page.
type UserLookup interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// Deps are the services the App drives. Users is optional.
type Deps struct {
	Session      SessionManager
	Catalog      views.Catalog
	Transactions views.TransactionLoader
	Users        UserLookup
}

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	session SessionManager
	catalog views.Catalog
	loader  views.TransactionLoader
	users   UserLookup
	router  *views.Router
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	current views.Match
	list    *views.ProductList
	detail  *views.ProductDetail
	tx      *views.Transactions
}

// NewApp wires the controllers to the given services. Input is read from in
// and everything the user sees goes to out.
func NewApp(d Deps, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		session: d.Session,
		catalog: d.Catalog,
		loader:  d.Transactions,
		users:   d.Users,
		router:  views.NewRouter(d.Session),
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		list:    views.NewProductList(d.Catalog, d.Session),
		detail:  views.NewProductDetail(d.Catalog),
		tx:      views.NewTransactions(d.Transactions),
	}
}

// Run restores the saved session, opens the product list and runs the REPL
// until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session not restored", "error", err)
		if errors.Is(err, common.ErrSessionExpired) {
			a.println("Your session has expired, please log in again.")
		}
	}
	_ = a.Go(ctx, views.PathHome)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status is shown in the prompt: the current path and who is signed in.
func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("%s (%s)", a.current.Path, u.Email)
	}
	return a.current.Path
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// Go resolves path through the router and opens the resulting page. Pages
// that finish with a route (after login, a purchase and so on) are followed.
func (a *App) Go(ctx context.Context, path string) error {
	m := a.router.Resolve(path)
	if m.Redirected {
		a.println("Please log in to continue.")
	}
	a.current = m

	var (
		next string
		err  error
	)
	switch m.Page {
	case views.PageLogin:
		next, err = a.loginPage(ctx)
	case views.PageSignup:
		next, err = a.registerPage(ctx)
	case views.PageAddProduct:
		next, err = a.addPage(ctx)
	case views.PageProductDetail:
		err = a.detailPage(ctx, m.ProductID)
	case views.PageEditProduct:
		next, err = a.editPage(ctx, m.ProductID)
	case views.PageTransactions:
		err = a.transactionsPage(ctx)
	case views.PageProfile:
		err = a.profilePage()
	default:
		err = a.productsPage(ctx, a.list.Load)
	}
	if err != nil || next == "" {
		return err
	}
	return a.Go(ctx, next)
}

// enter makes path the current page without rendering it. It returns false
// when the guard sent the user elsewhere.
func (a *App) enter(ctx context.Context, path string) (bool, error) {
	m := a.router.Resolve(path)
	if m.Redirected {
		return false, a.Go(ctx, path)
	}
	a.current = m
	return true, nil
}
