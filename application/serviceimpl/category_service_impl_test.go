package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"menu-api/domain/services"
)

func TestCategoryList(t *testing.T) {
	repo := newFakeCategoryRepo("Meal", "Beverage")
	svc := NewCategoryService(repo, nil, 0)

	categories, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Meal" || categories[1].Name != "Beverage" {
		t.Errorf("List = %+v", categories)
	}
}

func TestCategoryListPropagatesError(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewCategoryService(repo, nil, 0)

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCategoryListUsesCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCategoryRepo("Meal")
	cache := newFakeCache()
	svc := NewCategoryService(repo, cache, time.Minute)

	for i := 0; i < 2; i++ {
		categories, err := svc.List(ctx)
		if err != nil || len(categories) != 1 {
			t.Fatalf("List = %v, %v", categories, err)
		}
	}
	if repo.listCalls != 1 {
		t.Errorf("repo listed %d times, want 1", repo.listCalls)
	}

	if err := svc.EnsureDefaults(ctx, []string{"Dessert"}); err != nil {
		t.Fatal(err)
	}
	categories, _ := svc.List(ctx)
	if len(categories) != 2 {
		t.Errorf("cache not invalidated after seeding: %d categories", len(categories))
	}
}

func TestCategoryGetByID(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo("Meal"), nil, 0)

	category, err := svc.GetByID(context.Background(), 1)
	if err != nil || category.Name != "Meal" {
		t.Fatalf("GetByID = %+v, %v", category, err)
	}
	if _, err := svc.GetByID(context.Background(), 7); !errors.Is(err, services.ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCategoryRepo("Beverage")
	svc := NewCategoryService(repo, nil, 0)

	names := []string{"Meal", "Dessert", "Beverage"}
	for i := 0; i < 2; i++ {
		if err := svc.EnsureDefaults(ctx, names); err != nil {
			t.Fatalf("EnsureDefaults: %v", err)
		}
	}
	if count := len(repo.categories); count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}
