package views

import (
	"net/url"
	"strings"
)

const (
	PathLogin        = "/login"
	PathSignup       = "/signup"
	PathHome         = "/"
	PathAddProduct   = "/add-product"
	PathTransactions = "/my-transactions"
	PathProfile      = "/profile"
)

func ProductPath(id string) string     { return "/products/" + url.PathEscape(id) }
func EditProductPath(id string) string { return ProductPath(id) + "/edit" }

// Page identifies a screen.
type Page int

const (
	PageProducts Page = iota
	PageLogin
	PageSignup
	PageAddProduct
	PageProductDetail
	PageEditProduct
	PageTransactions
	PageProfile
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageSignup:
		return "signup"
	case PageAddProduct:
		return "add-product"
	case PageProductDetail:
		return "product"
	case PageEditProduct:
		return "edit-product"
	case PageTransactions:
		return "transactions"
	case PageProfile:
		return "profile"
	default:
		return "products"
	}
}

// Public reports whether the page is reachable without a session.
func (p Page) Public() bool {
	return p == PageLogin || p == PageSignup
}

// Match is a resolved route.
type Match struct {
	Page      Page
	Path      string
	ProductID string

	// Redirected is set when the auth guard replaced the requested page.
	Redirected bool
}

// Router maps paths to pages and applies the auth guard.
type Router struct {
	session SessionReader
}

func NewRouter(session SessionReader) *Router {
	return &Router{session: session}
}

// Resolve returns the page for path. Unknown paths resolve to the product
// list; protected pages resolve to login when no one is signed in.
func (r *Router) Resolve(path string) Match {
	m := match(path)
	if !m.Page.Public() && !r.session.IsAuthenticated() {
		return Match{Page: PageLogin, Path: PathLogin, Redirected: true}
	}
	return m
}

func match(raw string) Match {
	path := strings.TrimSpace(raw)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	switch path {
	case PathHome:
		return Match{Page: PageProducts, Path: PathHome}
	case PathLogin:
		return Match{Page: PageLogin, Path: PathLogin}
	case PathSignup:
		return Match{Page: PageSignup, Path: PathSignup}
	case PathAddProduct:
		return Match{Page: PageAddProduct, Path: PathAddProduct}
	case PathTransactions:
		return Match{Page: PageTransactions, Path: PathTransactions}
	case PathProfile:
		return Match{Page: PageProfile, Path: PathProfile}
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "products" && parts[1] != "" {
		id, err := url.PathUnescape(parts[1])
		if err == nil {
			switch {
			case len(parts) == 2:
				return Match{Page: PageProductDetail, Path: ProductPath(id), ProductID: id}
			case len(parts) == 3 && parts[2] == "edit":
				return Match{Page: PageEditProduct, Path: EditProductPath(id), ProductID: id}
			}
		}
	}

	return Match{Page: PageProducts, Path: PathHome}
}
