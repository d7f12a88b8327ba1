package service

import (
	"testing"

	"quizhub/internal/apperr"
	"quizhub/internal/dto"
)

func TestCategoryAddListRoundTrip(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	if err := svc.Add(dto.CategoryCreateDTO{Name: "Geography", Description: "Maps and places."}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Add(dto.CategoryCreateDTO{Name: "Geography", Description: "Duplicate."}); !apperr.Is(err, apperr.Conflict) {
		t.Fatalf("expected Conflict for duplicate name, got %v", err)
	}

	categories, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Geography" {
		t.Fatalf("unexpected catalog: %+v", categories)
	}
}

func TestCategoryUpdateAndRemove(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)
	svc.Add(dto.CategoryCreateDTO{Name: "Geography", Description: "Maps."})

	if err := svc.Update("Geography", "Maps and places."); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	categories, _ := svc.List()
	if categories[0].Description != "Maps and places." {
		t.Fatalf("description not updated: %+v", categories[0])
	}

	if err := svc.Update("Nope", "x"); !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound updating missing category, got %v", err)
	}
	if err := svc.Remove("Geography"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.Remove("Geography"); !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound on second remove, got %v", err)
	}
}

func TestCategorySeedOnlyWhenEmpty(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	if err := svc.Seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	categories, _ := svc.List()
	if len(categories) != 4 {
		t.Fatalf("expected 4 seeded categories, got %d", len(categories))
	}

	// Running again must not duplicate anything.
	if err := svc.Seed(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	categories, _ = svc.List()
	if len(categories) != 4 {
		t.Fatalf("seed must be idempotent, got %d categories", len(categories))
	}
}
