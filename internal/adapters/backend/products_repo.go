package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"vetcare-pro/internal/domain/products"
	"vetcare-pro/internal/platform/httpclient"
)

type productsRepo struct {
	gw *httpclient.Client
}

func NewProductsRepo(gw *httpclient.Client) products.Repository {
	return &productsRepo{gw: gw}
}

type wireProduct struct {
	ID          wireID          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Stock       int             `json:"stock"`
}

func (w wireProduct) toDomain() products.Product {
	return products.Product{
		ID:          string(w.ID),
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		Category:    categoryFromWire(w.Category),
		ImageURL:    w.ImageURL,
		Stock:       w.Stock,
	}
}

func (r *productsRepo) List(ctx context.Context) ([]products.Product, error) {
	var raw []wireProduct
	if err := r.gw.DoJSON(ctx, http.MethodGet, "/products", nil, &raw); err != nil {
		return nil, fmt.Errorf("backend: list products: %w", err)
	}

	out := make([]products.Product, 0, len(raw))
	for _, w := range raw {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (r *productsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	var raw wireProduct
	if err := r.gw.DoJSON(ctx, http.MethodGet, "/products/"+id, nil, &raw); err != nil {
		return products.Product{}, notFound(err, products.ErrNotFound)
	}
	return raw.toDomain(), nil
}

func (r *productsRepo) Create(ctx context.Context, p products.Product) (products.Product, error) {
	in := map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category.Label(),
		"imageUrl":    p.ImageURL,
		"stock":       p.Stock,
	}

	var raw wireProduct
	if err := r.gw.DoJSON(ctx, http.MethodPost, "/products", in, &raw); err != nil {
		return products.Product{}, fmt.Errorf("backend: create product: %w", err)
	}
	return raw.toDomain(), nil
}
