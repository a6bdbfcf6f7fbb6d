package catalog

import (
	"sort"
	"strings"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// Filter returns the products matching cfg, sorted per cfg.Sort. It is pure:
// the input slice is never mutated and the result is freshly allocated, so it
// is safe to call on every keystroke. A price range with min > max yields an
// empty result rather than an error.
func Filter(products []models.Product, cfg models.FilterConfig) []models.Product {
	out := make([]models.Product, 0, len(products))
	if cfg.MinPrice != nil && cfg.MaxPrice != nil && cfg.MinPrice.GreaterThan(*cfg.MaxPrice) {
		return out
	}
	for _, p := range products {
		if cfg.Matches(p) {
			out = append(out, p)
		}
	}

	// Stable sort: ties keep the filtered (dataset) order.
	switch cfg.Sort {
	case models.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case models.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case models.SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return lessName(out[i].Name, out[j].Name) })
	case models.SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool { return lessName(out[j].Name, out[i].Name) })
	}
	return out
}

func lessName(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
