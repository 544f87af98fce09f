package products

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

type stubRepo struct {
	created int
}

func (r *stubRepo) List(ctx context.Context) ([]Product, error) { return nil, nil }

func (r *stubRepo) GetByID(ctx context.Context, id string) (Product, error) {
	return Product{}, ErrNotFound
}

func (r *stubRepo) Create(ctx context.Context, p Product) (Product, error) {
	r.created++
	return p, nil
}

func catalog() []Product {
	return []Product{
		{ID: "p-1", Name: "Ração Premium Cães", Category: CategoryNutrition},
		{ID: "p-2", Name: "Antipulgas Max", Category: CategoryMedication},
		{ID: "p-3", Name: "Shampoo Neutro", Category: CategoryHygiene},
		{ID: "p-4", Name: "Ração Gatos Castrados", Category: CategoryNutrition},
	}
}

func TestFilter_TermAndCategoryAreConjunctive(t *testing.T) {
	got := Filter(catalog(), "ração", CategoryNutrition)
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}

	// Term matches but category does not.
	got = Filter(catalog(), "ração", CategoryHygiene)
	if len(got) != 0 {
		t.Fatalf("expected no products, got %d", len(got))
	}
}

func TestFilter_EmptyCategoryMeansAll(t *testing.T) {
	got := Filter(catalog(), "", "")
	if len(got) != 4 {
		t.Fatalf("expected the whole catalog, got %d", len(got))
	}
}

func TestFilter_TermIsCaseInsensitive(t *testing.T) {
	got := Filter(catalog(), "SHAMPOO", "")
	if len(got) != 1 || got[0].ID != "p-3" {
		t.Fatalf("expected p-3, got %v", got)
	}
}

func TestParseCategory_AcceptsAnyCase(t *testing.T) {
	c, ok := ParseCategory(" Medication ")
	if !ok || c != CategoryMedication {
		t.Fatalf("expected medication, got %q ok=%v", c, ok)
	}
	if _, ok := ParseCategory("toys"); ok {
		t.Fatalf("unknown category must not parse")
	}
}

func TestValidateProduct_RejectsNegativePriceAndStock(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	bad := []Product{
		{Name: "X", Category: CategoryHygiene, Price: decimal.RequireFromString("-1")},
		{Name: "X", Category: CategoryHygiene, Stock: -1},
		{Name: "  ", Category: CategoryHygiene},
		{Name: "X", Category: "toys"},
	}
	for i, p := range bad {
		if _, err := svc.Create(context.Background(), p); err != ErrInvalidInput {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
	if repo.created != 0 {
		t.Fatalf("rejected product must not reach the repo")
	}
}
