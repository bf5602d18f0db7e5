package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"pooja-setu/internal/domain"
)

func newCatalogEnv() (*CatalogService, *fakeCatalog) {
	repo := newFakeCatalog()
	// nil cache: reads go straight to the repository
	return NewCatalogService(repo, nil, zap.NewNop()), repo
}

func TestCreateServiceRequiresExistingCategory(t *testing.T) {
	svc, repo := newCatalogEnv()
	ctx := context.Background()

	_, err := svc.CreateService(ctx, ServiceInput{Name: "Homam", Price: 5000, CategoryID: "missing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for dangling category, got %v", err)
	}

	cat, err := svc.CreateCategory(ctx, CategoryInput{Name: "Homas"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	created, err := svc.CreateService(ctx, ServiceInput{Name: "Homam", Price: 5000, CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	if got, _ := repo.FindService(created.ID); got == nil {
		t.Fatal("service not persisted")
	}
}

func TestServiceInputValidation(t *testing.T) {
	svc, _ := newCatalogEnv()
	ctx := context.Background()

	if _, err := svc.CreateService(ctx, ServiceInput{Name: "", Price: 1, CategoryID: "c"}); !domain.IsValidation(err) {
		t.Fatalf("empty name: %v", err)
	}
	if _, err := svc.CreateService(ctx, ServiceInput{Name: "X", Price: -1, CategoryID: "c"}); !domain.IsValidation(err) {
		t.Fatalf("negative price: %v", err)
	}
	if _, err := svc.CreateCategory(ctx, CategoryInput{Name: "  "}); !domain.IsValidation(err) {
		t.Fatalf("blank category name: %v", err)
	}
}

func TestCatalogListsWithoutCache(t *testing.T) {
	svc, _ := newCatalogEnv()
	ctx := context.Background()

	cat, _ := svc.CreateCategory(ctx, CategoryInput{Name: "Poojas"})
	if _, err := svc.CreateService(ctx, ServiceInput{Name: "Satyanarayana", Price: 3000, CategoryID: cat.ID}); err != nil {
		t.Fatal(err)
	}

	cats, err := svc.ListCategories(ctx)
	if err != nil || len(cats) != 1 {
		t.Fatalf("categories: %v %v", cats, err)
	}
	svcs, err := svc.ListServices(ctx)
	if err != nil || len(svcs) != 1 {
		t.Fatalf("services: %v %v", svcs, err)
	}
}
