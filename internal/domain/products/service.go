package products

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Product) (Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return Product{}, ErrInvalidInput
	}
	if _, ok := ParseCategory(string(p.Category)); !ok {
		return Product{}, ErrInvalidInput
	}
	if p.Price.IsNegative() || p.Stock < 0 {
		return Product{}, ErrInvalidInput
	}
	p.Name = strings.TrimSpace(p.Name)
	return s.repo.Create(ctx, p)
}

// Filter aplica búsqueda por nombre (substring, case-insensitive) y
// categoría sobre el catálogo ya traído. Category vacía = todas.
func Filter(all []Product, term string, category Category) []Product {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]Product, 0, len(all))
	for _, p := range all {
		if category != "" && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
