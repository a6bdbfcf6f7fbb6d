package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a single catalog record. The catalog is loaded once at startup
// and never written, so products are safe to share by value.
type Product struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID uint            `json:"categoryId"`
	Rating     float64         `json:"rating"`
	Stock      int             `json:"stock"`
	Image      string          `json:"image,omitempty"`
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SortOption values mirror the storefront's sort dropdown.
type SortOption string

const (
	SortNone      SortOption = ""
	SortPriceAsc  SortOption = "price-low-high"
	SortPriceDesc SortOption = "price-high-low"
	SortNameAsc   SortOption = "alpha-asc"
	SortNameDesc  SortOption = "alpha-desc"
)

// FilterConfig drives catalog filtering. Nil price bounds mean unbounded.
// An empty Categories slice means no category restriction.
type FilterConfig struct {
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Categories []uint
	Sort       SortOption
	Search     string
}

// Matches reports whether p satisfies the filter predicate:
// price within range, category selected (or none selected) and
// case-insensitive substring match on the name.
func (f FilterConfig) Matches(p Product) bool {
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if len(f.Categories) > 0 {
		found := false
		for _, id := range f.Categories {
			if p.CategoryID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}
