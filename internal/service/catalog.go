package service

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/kmalyshev/online_store/internal/cache"
	"github.com/kmalyshev/online_store/internal/es"
	"github.com/kmalyshev/online_store/internal/logging"
	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/repo"
	searchsvc "github.com/kmalyshev/online_store/internal/service/search"
)

// CatalogService owns products and categories. ES and the cache are optional:
// a nil client skips indexing, a nil cache is a permanent miss.
type CatalogService struct {
	Repo  *repo.GormRepo
	ES    *elasticsearch.Client
	Cache *cache.ProductCache
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("name required: %w", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}

	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return mapRepoErr(err)
	}
	s.reindex(ctx, p)
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	if p, ok := s.Cache.Get(ctx, id); ok {
		return p, nil
	}

	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if err := s.Cache.Set(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("product_cache_set_failed", "error", err)
	}
	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, offset, limit int) ([]models.Product, int64, error) {
	items, total, err := s.Repo.ListProducts(ctx, offset, limit)
	if err != nil {
		return nil, 0, mapRepoErr(err)
	}
	return items, total, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, fields map[string]any) (*models.Product, error) {
	p, err := s.Repo.UpdateProduct(ctx, id, fields)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if err := s.Cache.Invalidate(ctx, id); err != nil {
		logging.FromContext(ctx).Warn("product_cache_invalidate_failed", "error", err)
	}
	s.reindex(ctx, p)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	if err := s.Cache.Invalidate(ctx, id); err != nil {
		logging.FromContext(ctx).Warn("product_cache_invalidate_failed", "error", err)
	}
	if s.ES != nil {
		if err := searchsvc.Delete(ctx, s.ES, es.ProductIndex, id); err != nil {
			logging.FromContext(ctx).Warn("product_index_delete_failed", "error", err)
		}
	}
	return nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if s.ES == nil {
		return 0, nil, fmt.Errorf("%w: search backend is not configured", ErrPersistence)
	}
	return searchsvc.Search(ctx, s.ES, es.ProductIndex, query, from, size)
}

// reindex is best-effort: catalog writes must not fail because the search
// index is behind.
func (s *CatalogService) reindex(ctx context.Context, p *models.Product) {
	if s.ES == nil {
		return
	}
	if err := searchsvc.Index(ctx, s.ES, es.ProductIndex, p); err != nil {
		logging.FromContext(ctx).Warn("product_index_failed", "productID", p.ID, "error", err)
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, c *models.Category) error {
	if len(c.Name) < 3 {
		return fmt.Errorf("name must be at least 3 characters: %w", ErrValidation)
	}
	if err := s.Repo.CreateCategory(ctx, c); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	c, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return c, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return cats, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	if len(name) < 3 {
		return nil, fmt.Errorf("name must be at least 3 characters: %w", ErrValidation)
	}
	c, err := s.Repo.UpdateCategory(ctx, id, name)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}
