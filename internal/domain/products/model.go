package products

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category define las categorías del catálogo.
type Category string

const (
	CategoryMedication  Category = "medication"
	CategoryNutrition   Category = "nutrition"
	CategoryAccessories Category = "accessories"
	CategoryHygiene     Category = "hygiene"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryMedication:
		return CategoryMedication, true
	case CategoryNutrition:
		return CategoryNutrition, true
	case CategoryAccessories:
		return CategoryAccessories, true
	case CategoryHygiene:
		return CategoryHygiene, true
	}
	return "", false
}

func (c Category) Label() string {
	switch c {
	case CategoryMedication:
		return "Medicamento"
	case CategoryNutrition:
		return "Nutrição"
	case CategoryAccessories:
		return "Acessórios"
	case CategoryHygiene:
		return "Higiene"
	default:
		return string(c)
	}
}

// Product es un ítem del catálogo. De solo lectura para el cliente;
// el stock es informativo y no se descuenta en el checkout.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	ImageURL    string
	Stock       int
}
