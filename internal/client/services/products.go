package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/teebay/internal/client/client"
	"github.com/dmitrijs2005/teebay/internal/client/models"
	"github.com/dmitrijs2005/teebay/internal/common"
	"github.com/dmitrijs2005/teebay/internal/logging"
)

// listRoots are the cached product listings a product mutation can change.
var listRoots = []string{client.RootAllProducts, client.RootUserProducts}

type ProductService struct {
	api client.Client
	log logging.Logger
}

func NewProductService(api client.Client, log logging.Logger) *ProductService {
	return &ProductService{api: api, log: log}
}

// Page fetches 1-based page of published products.
func (s *ProductService) Page(ctx context.Context, page, size int, policy client.FetchPolicy) (*models.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	filter := models.ProductFilter{Limit: size, Offset: (page - 1) * size, Status: models.ProductStatusPublished}
	return s.api.Products(ctx, filter, policy)
}

func (s *ProductService) Get(ctx context.Context, id string, policy client.FetchPolicy) (*models.Product, error) {
	return s.api.Product(ctx, id, policy)
}

func (s *ProductService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx, client.CacheFirst)
}

// OwnedBy lists every product of userID, drafts included.
func (s *ProductService) OwnedBy(ctx context.Context, userID string, policy client.FetchPolicy) (*models.ProductPage, error) {
	return s.api.UserProducts(ctx, userID, policy)
}

func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	res, err := s.api.CreateProduct(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if !res.Success {
		return nil, failed("createProduct", res.Message)
	}
	s.invalidate(ctx, listRoots...)
	return res.Product, nil
}

func (s *ProductService) Update(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	res, err := s.api.UpdateProduct(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if !res.Success {
		return nil, failed("updateProduct", res.Message)
	}
	s.api.EvictProduct(in.ID)
	s.invalidate(ctx, listRoots...)
	return res.Product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	res, err := s.api.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !res.Success {
		return failed("deleteProduct", res.Message)
	}
	s.api.EvictProduct(id)
	s.invalidate(ctx, listRoots...)
	return nil
}

func (s *ProductService) Buy(ctx context.Context, productID string) (*models.Purchase, error) {
	p, err := s.api.BuyProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("buy product: %w", err)
	}
	s.api.EvictProduct(productID)
	s.invalidate(ctx, slices.Concat(listRoots, []string{client.RootMyBuys, client.RootMySales})...)
	return p, nil
}

// Rent checks the period locally before sending the rent mutation.
func (s *ProductService) Rent(ctx context.Context, productID string, start, end time.Time) (*models.Rental, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil, common.ErrInvalidPeriod
	}
	r, err := s.api.RentProduct(ctx, models.RentInput{ProductID: productID, StartDate: start, EndDate: end})
	if err != nil {
		return nil, fmt.Errorf("rent product: %w", err)
	}
	s.api.EvictProduct(productID)
	s.invalidate(ctx, slices.Concat(listRoots, []string{client.RootMyRentals, client.RootMyLendings})...)
	return r, nil
}

func (s *ProductService) invalidate(ctx context.Context, roots ...string) {
	s.log.Debug(ctx, "invalidating cached lists", "roots", roots)
	s.api.Invalidate(roots...)
}

func failed(op, msg string) error {
	if msg == "" {
		msg = op + " failed"
	}
	return &client.OperationError{Op: op, Message: msg, Err: common.ErrOperationFailed}
}
