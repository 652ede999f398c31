package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/cache"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
	"github.com/dmitrijs2005/teebay/internal/logging"
	"github.com/dmitrijs2005/teebay/internal/netx"
	"github.com/google/uuid"
	"github.com/machinebox/graphql"
)

// GraphQLClient implements Client over a single GraphQL endpoint.
type GraphQLClient struct {
	gql   *graphql.Client
	cache *cache.Store
	log   logging.Logger

	mu     sync.RWMutex
	tokens TokenSource
}

func NewGraphQLClient(endpoint string, timeout time.Duration, log logging.Logger) (*GraphQLClient, error) {
	c := &GraphQLClient{cache: cache.New(), log: log}

	hc, err := netx.NewHTTPClient(timeout, c.decorate)
	if err != nil {
		return nil, err
	}
	c.gql = graphql.NewClient(endpoint, graphql.WithHTTPClient(hc))
	return c, nil
}

// UseTokenSource swaps the token source. The session registers itself here
// once it has been constructed around the client.
func (c *GraphQLClient) UseTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

func (c *GraphQLClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *GraphQLClient) decorate(r *http.Request) {
	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	if tok := c.token(); tok != "" {
		r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}
}

func (c *GraphQLClient) run(ctx context.Context, op, doc string, vars map[string]any, resp any) error {
	req := graphql.NewRequest(doc)
	for k, v := range vars {
		req.Var(k, v)
	}
	id := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, id)

	start := time.Now()
	err := c.gql.Run(ctx, req, resp)
	if err != nil {
		c.log.Debug(ctx, "graphql operation failed", "op", op, "request_id", id, "duration", time.Since(start), "error", err)
		return mapError(op, err)
	}
	c.log.Debug(ctx, "graphql operation", "op", op, "request_id", id, "duration", time.Since(start))
	return nil
}

func (c *GraphQLClient) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		Me *models.User `json:"me"`
	}
	if err := c.run(ctx, "me", meQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Me, nil
}

func (c *GraphQLClient) User(ctx context.Context, id string, policy FetchPolicy) (*models.User, error) {
	root := RootUser + id
	if policy == CacheFirst {
		if users, _, ok := cache.Resolve[models.User](c.cache, root); ok && len(users) == 1 {
			return &users[0], nil
		}
	}

	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.run(ctx, "user", userQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &OperationError{Op: "user", Message: "user not found", Err: common.ErrNotFound}
	}
	c.cache.Write(cache.UserKey(resp.User.ID), *resp.User)
	c.cache.WriteRoot(root, cache.Root{Refs: []cache.Key{cache.UserKey(resp.User.ID)}})
	return resp.User, nil
}

func productsRoot(f models.ProductFilter) string {
	return fmt.Sprintf("%s:limit=%d:offset=%d:status=%s", RootAllProducts, f.Limit, f.Offset, f.Status)
}

type productList struct {
	Success  bool             `json:"success"`
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

func (c *GraphQLClient) Products(ctx context.Context, filter models.ProductFilter, policy FetchPolicy) (*models.ProductPage, error) {
	root := productsRoot(filter)
	if policy == CacheFirst {
		if products, total, ok := cache.Resolve[models.Product](c.cache, root); ok {
			return &models.ProductPage{Products: products, Total: total}, nil
		}
	}

	vars := map[string]any{"limit": filter.Limit, "offset": filter.Offset}
	if filter.Status != "" {
		vars["status"] = filter.Status
	}
	var resp struct {
		AllProducts productList `json:"allProducts"`
	}
	if err := c.run(ctx, "allProducts", allProductsQuery, vars, &resp); err != nil {
		return nil, err
	}
	if !resp.AllProducts.Success {
		return nil, &OperationError{Op: "allProducts", Message: "failed to load products", Err: common.ErrOperationFailed}
	}

	refs := c.writeProducts(resp.AllProducts.Products, true)
	c.cache.WriteRoot(root, cache.Root{Refs: refs, Total: resp.AllProducts.Total})
	return &models.ProductPage{Products: resp.AllProducts.Products, Total: resp.AllProducts.Total}, nil
}

func (c *GraphQLClient) Product(ctx context.Context, id string, policy FetchPolicy) (*models.Product, error) {
	root := RootProduct + id
	if policy == CacheFirst {
		if products, _, ok := cache.Resolve[models.Product](c.cache, root); ok && len(products) == 1 {
			return &products[0], nil
		}
	}

	var resp struct {
		Product *models.Product `json:"product"`
	}
	if err := c.run(ctx, "product", productQuery, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Product == nil {
		return nil, &OperationError{Op: "product", Message: "product not found", Err: common.ErrNotFound}
	}

	refs := c.writeProducts([]models.Product{*resp.Product}, true)
	c.cache.WriteRoot(root, cache.Root{Refs: refs})
	return resp.Product, nil
}

func (c *GraphQLClient) UserProducts(ctx context.Context, userID string, policy FetchPolicy) (*models.ProductPage, error) {
	root := RootUserProducts + userID
	if policy == CacheFirst {
		if products, total, ok := cache.Resolve[models.Product](c.cache, root); ok {
			return &models.ProductPage{Products: products, Total: total}, nil
		}
	}

	var resp struct {
		GetUserProducts productList `json:"getUserProducts"`
	}
	if err := c.run(ctx, "getUserProducts", userProductsQuery, map[string]any{"userId": userID}, &resp); err != nil {
		return nil, err
	}
	if !resp.GetUserProducts.Success {
		return nil, &OperationError{Op: "getUserProducts", Message: "failed to load products", Err: common.ErrOperationFailed}
	}

	refs := c.writeProducts(resp.GetUserProducts.Products, false)
	c.cache.WriteRoot(root, cache.Root{Refs: refs, Total: resp.GetUserProducts.Total})

	products := make([]models.Product, 0, len(refs))
	for _, k := range refs {
		p, _ := cache.Get[models.Product](c.cache, k)
		products = append(products, p)
	}
	return &models.ProductPage{Products: products, Total: resp.GetUserProducts.Total}, nil
}

// writeProducts stores products and their categories. When the query did
// not select the derived flags, the cached values are kept.
func (c *GraphQLClient) writeProducts(products []models.Product, derived bool) []cache.Key {
	refs := make([]cache.Key, 0, len(products))
	for _, p := range products {
		for _, cat := range p.Categories {
			c.cache.Write(cache.CategoryKey(cat.ID), cat)
		}
		k := cache.ProductKey(p.ID)
		c.cache.Merge(k, func(cur any) any {
			if old, ok := cur.(models.Product); ok && !derived {
				p.IsBought = old.IsBought
				p.IsCurrentlyRented = old.IsCurrentlyRented
			}
			return p
		})
		refs = append(refs, k)
	}
	return refs
}

func (c *GraphQLClient) Categories(ctx context.Context, policy FetchPolicy) ([]models.Category, error) {
	if policy == CacheFirst {
		if cats, _, ok := cache.Resolve[models.Category](c.cache, RootCategories); ok {
			return cats, nil
		}
	}

	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.run(ctx, "categories", categoriesQuery, nil, &resp); err != nil {
		return nil, err
	}

	refs := make([]cache.Key, 0, len(resp.Categories))
	for _, cat := range resp.Categories {
		k := cache.CategoryKey(cat.ID)
		c.cache.Write(k, cat)
		refs = append(refs, k)
	}
	c.cache.WriteRoot(RootCategories, cache.Root{Refs: refs, Total: len(refs)})
	return resp.Categories, nil
}

func (c *GraphQLClient) MyBuys(ctx context.Context, status string, policy FetchPolicy) ([]models.Purchase, error) {
	return c.purchases(ctx, "myBuys", myBuysQuery, RootMyBuys+":"+status, statusVars(status), policy)
}

func (c *GraphQLClient) MySales(ctx context.Context, policy FetchPolicy) ([]models.Purchase, error) {
	return c.purchases(ctx, "mySales", mySalesQuery, RootMySales, nil, policy)
}

func (c *GraphQLClient) MyRentals(ctx context.Context, status string, policy FetchPolicy) ([]models.Rental, error) {
	return c.rentals(ctx, "myRentals", myRentalsQuery, RootMyRentals+":"+status, statusVars(status), policy)
}

func (c *GraphQLClient) MyLendings(ctx context.Context, policy FetchPolicy) ([]models.Rental, error) {
	return c.rentals(ctx, "myLendings", myLendingsQuery, RootMyLendings, nil, policy)
}

func statusVars(status string) map[string]any {
	if status == "" {
		return nil
	}
	return map[string]any{"status": status}
}

func (c *GraphQLClient) purchases(ctx context.Context, op, doc, root string, vars map[string]any, policy FetchPolicy) ([]models.Purchase, error) {
	if policy == CacheFirst {
		if list, _, ok := cache.Resolve[models.Purchase](c.cache, root); ok {
			return list, nil
		}
	}

	resp := map[string][]models.Purchase{}
	if err := c.run(ctx, op, doc, vars, &resp); err != nil {
		return nil, err
	}

	list := resp[op]
	refs := make([]cache.Key, 0, len(list))
	for _, p := range list {
		k := cache.PurchaseKey(p.ID)
		c.cache.Write(k, p)
		refs = append(refs, k)
	}
	c.cache.WriteRoot(root, cache.Root{Refs: refs, Total: len(refs)})
	return list, nil
}

func (c *GraphQLClient) rentals(ctx context.Context, op, doc, root string, vars map[string]any, policy FetchPolicy) ([]models.Rental, error) {
	if policy == CacheFirst {
		if list, _, ok := cache.Resolve[models.Rental](c.cache, root); ok {
			return list, nil
		}
	}

	resp := map[string][]models.Rental{}
	if err := c.run(ctx, op, doc, vars, &resp); err != nil {
		return nil, err
	}

	list := resp[op]
	refs := make([]cache.Key, 0, len(list))
	for _, r := range list {
		k := cache.RentalKey(r.ID)
		c.cache.Write(k, r)
		refs = append(refs, k)
	}
	c.cache.WriteRoot(root, cache.Root{Refs: refs, Total: len(refs)})
	return list, nil
}

func (c *GraphQLClient) Login(ctx context.Context, email, password string) (*models.AuthPayload, error) {
	var resp struct {
		Login *models.AuthPayload `json:"login"`
	}
	vars := map[string]any{"email": email, "password": password}
	if err := c.run(ctx, "login", loginMutation, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Login == nil || resp.Login.User == nil || resp.Login.Token == "" {
		return nil, &OperationError{Op: "login", Message: "login failed", Err: common.ErrOperationFailed}
	}
	return resp.Login, nil
}

func (c *GraphQLClient) Register(ctx context.Context, in models.RegisterInput) (*models.AuthPayload, error) {
	var resp struct {
		Register *models.AuthPayload `json:"register"`
	}
	if err := c.run(ctx, "register", registerMutation, map[string]any{"data": in}, &resp); err != nil {
		return nil, err
	}
	if resp.Register == nil || resp.Register.User == nil || resp.Register.Token == "" {
		return nil, &OperationError{Op: "register", Message: "registration failed", Err: common.ErrOperationFailed}
	}
	return resp.Register, nil
}

func (c *GraphQLClient) UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (*models.User, error) {
	var resp struct {
		UpdateProfile *models.User `json:"updateProfile"`
	}
	if err := c.run(ctx, "updateProfile", updateProfileMutation, map[string]any{"data": in}, &resp); err != nil {
		return nil, err
	}
	if resp.UpdateProfile == nil {
		return nil, &OperationError{Op: "updateProfile", Message: "profile update failed", Err: common.ErrOperationFailed}
	}
	c.cache.Write(cache.UserKey(resp.UpdateProfile.ID), *resp.UpdateProfile)
	return resp.UpdateProfile, nil
}

func (c *GraphQLClient) CreateProduct(ctx context.Context, in models.ProductInput) (*models.ProductResult, error) {
	var resp struct {
		CreateProduct models.ProductResult `json:"createProduct"`
	}
	if err := c.run(ctx, "createProduct", createProductMutation, map[string]any{"input": in}, &resp); err != nil {
		return nil, err
	}
	if p := resp.CreateProduct.Product; p != nil && resp.CreateProduct.Success {
		c.writeProducts([]models.Product{*p}, false)
	}
	return &resp.CreateProduct, nil
}

func (c *GraphQLClient) UpdateProduct(ctx context.Context, in models.ProductInput) (*models.ProductResult, error) {
	var resp struct {
		UpdateProduct models.ProductResult `json:"updateProduct"`
	}
	if err := c.run(ctx, "updateProduct", updateProductMutation, map[string]any{"input": in}, &resp); err != nil {
		return nil, err
	}
	if p := resp.UpdateProduct.Product; p != nil && resp.UpdateProduct.Success {
		c.writeProducts([]models.Product{*p}, false)
	}
	return &resp.UpdateProduct, nil
}

func (c *GraphQLClient) DeleteProduct(ctx context.Context, id string) (*models.MutationResult, error) {
	var resp struct {
		DeleteProduct models.MutationResult `json:"deleteProduct"`
	}
	if err := c.run(ctx, "deleteProduct", deleteProductMutation, map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	return &resp.DeleteProduct, nil
}

func (c *GraphQLClient) BuyProduct(ctx context.Context, productID string) (*models.Purchase, error) {
	var resp struct {
		BuyProduct *models.Purchase `json:"buyProduct"`
	}
	vars := map[string]any{"input": map[string]any{"productId": productID}}
	if err := c.run(ctx, "buyProduct", buyProductMutation, vars, &resp); err != nil {
		return nil, err
	}
	if resp.BuyProduct == nil {
		return nil, &OperationError{Op: "buyProduct", Message: "purchase failed", Err: common.ErrOperationFailed}
	}
	return resp.BuyProduct, nil
}

func (c *GraphQLClient) RentProduct(ctx context.Context, in models.RentInput) (*models.Rental, error) {
	var resp struct {
		RentProduct *models.Rental `json:"rentProduct"`
	}
	if err := c.run(ctx, "rentProduct", rentProductMutation, map[string]any{"input": in}, &resp); err != nil {
		return nil, err
	}
	if resp.RentProduct == nil {
		return nil, &OperationError{Op: "rentProduct", Message: "rental failed", Err: common.ErrOperationFailed}
	}
	return resp.RentProduct, nil
}

func (c *GraphQLClient) WriteIdentity(u models.User) {
	k := cache.UserKey(u.ID)
	c.cache.Write(k, u)
	c.cache.WriteRoot(cache.RootMe, cache.Root{Refs: []cache.Key{k}})
}

func (c *GraphQLClient) EvictIdentity() {
	r, ok := c.cache.Root(cache.RootMe)
	c.cache.EvictRoot(cache.RootMe)
	if ok {
		for _, k := range r.Refs {
			c.cache.Evict(k)
		}
	}
	n := c.cache.GC()
	c.log.Debug(context.Background(), "identity evicted", "collected", n, "entities", c.cache.Len())
}

func (c *GraphQLClient) Invalidate(prefixes ...string) {
	n := c.cache.InvalidateRoots(prefixes...)
	c.log.Debug(context.Background(), "cache roots invalidated", "prefixes", prefixes, "dropped", n)
}

func (c *GraphQLClient) EvictProduct(id string) {
	c.cache.Evict(cache.ProductKey(id))
}
