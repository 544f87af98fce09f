package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"vetcare-pro/internal/domain/products"
)

type ProductsRepo struct {
	mu   sync.RWMutex
	byID map[string]products.Product
}

func NewProductsRepo() *ProductsRepo {
	return &ProductsRepo{byID: make(map[string]products.Product)}
}

func (r *ProductsRepo) List(ctx context.Context) ([]products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]products.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *ProductsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return products.Product{}, products.ErrNotFound
	}
	return p, nil
}

func (r *ProductsRepo) Create(ctx context.Context, p products.Product) (products.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	r.byID[p.ID] = p
	return p, nil
}
