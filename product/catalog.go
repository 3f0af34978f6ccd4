package product

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/model"
	"storefront/units"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "all"

// FeaturedCount is how many of the cheapest products the home page shows.
const FeaturedCount = 3

// View is a catalog product with its per-ton price for display.
type View struct {
	model.Product
	PricePerTon decimal.Decimal `json:"price_per_ton"`
}

func NewViews(products []model.Product) []View {
	views := make([]View, 0, len(products))
	for _, p := range products {
		views = append(views, View{Product: p, PricePerTon: units.PricePerTon(p.PricePerBag)})
	}
	return views
}

// Filter keeps products of the given category whose brand, sub-type or
// product type contains term, case-insensitively. Empty or "all" category
// and an empty term match everything.
func Filter(products []model.Product, category, term string) []model.Product {
	category = strings.TrimSpace(category)
	term = strings.ToLower(strings.TrimSpace(term))

	out := []model.Product{}
	for _, p := range products {
		if category != "" && category != AllCategories && p.ProductType != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Brand), term) &&
			!strings.Contains(strings.ToLower(p.SubType), term) &&
			!strings.Contains(strings.ToLower(p.ProductType), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories lists distinct product types, sorted, with "all" first.
func Categories(products []model.Product) []string {
	seen := make(map[string]struct{})
	var types []string
	for _, p := range products {
		if p.ProductType == "" {
			continue
		}
		if _, ok := seen[p.ProductType]; ok {
			continue
		}
		seen[p.ProductType] = struct{}{}
		types = append(types, p.ProductType)
	}
	sort.Strings(types)
	return append([]string{AllCategories}, types...)
}
