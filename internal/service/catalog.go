package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"pooja-setu/internal/core/cache"
	"pooja-setu/internal/domain"
)

const (
	keyServices   = "catalog:services"
	keyCategories = "catalog:categories"
	catalogTTL    = 5 * time.Minute
)

// CatalogService serves the public category/service listings through a
// read-through redis cache (nil cache falls back to the database) and lets
// admins mutate the catalog, invalidating on every write.
type CatalogService struct {
	repo  domain.CatalogRepository
	cache *cache.Cache
	log   *zap.Logger
}

func NewCatalogService(repo domain.CatalogRepository, c *cache.Cache, log *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: c, log: log}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	if s.cache == nil {
		return s.repo.ListCategories()
	}
	out, err := cache.GetOrLoadJSON[[]domain.ServiceCategory](s.cache, ctx, keyCategories, catalogTTL,
		func(context.Context) (*[]domain.ServiceCategory, error) {
			v, e := s.repo.ListCategories()
			return &v, e
		})
	if err != nil || out == nil {
		return nil, err
	}
	return *out, nil
}

func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	if s.cache == nil {
		return s.repo.ListServices()
	}
	out, err := cache.GetOrLoadJSON[[]domain.Service](s.cache, ctx, keyServices, catalogTTL,
		func(context.Context) (*[]domain.Service, error) {
			v, e := s.repo.ListServices()
			return &v, e
		})
	if err != nil || out == nil {
		return nil, err
	}
	return *out, nil
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	BgColor     string `json:"bgColor"`
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*domain.ServiceCategory, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("category name is required")
	}
	c := &domain.ServiceCategory{
		ID:          domain.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
		BgColor:     in.BgColor,
	}
	if err := s.repo.CreateCategory(c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*domain.ServiceCategory, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("category name is required")
	}
	c := &domain.ServiceCategory{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
		BgColor:     in.BgColor,
	}
	if err := s.repo.UpdateCategory(c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.DeleteCategory(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

type ServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	CategoryID  string  `json:"categoryId"`
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("service name is required")
	}
	if in.Price < 0 {
		return domain.Invalid("price cannot be negative")
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return domain.Invalid("categoryId is required")
	}
	return nil
}

func (s *CatalogService) CreateService(ctx context.Context, in ServiceInput) (*domain.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ok, err := s.repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	svc := &domain.Service{
		ID:          domain.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}
	if err := s.repo.CreateService(svc); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return svc, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, in ServiceInput) (*domain.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	svc := &domain.Service{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}
	if err := s.repo.UpdateService(svc); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.repo.DeleteService(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.RDB.Del(ctx, keyServices, keyCategories).Err(); err != nil {
		s.log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
