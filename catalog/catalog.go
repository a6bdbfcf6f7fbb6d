// Package catalog holds the read-only product dataset and the pure
// filtering logic over it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

//go:embed data/products.json
var defaultData []byte

// Catalog is an immutable product list loaded wholesale at startup.
// All accessors return copies; nothing here mutates after Load.
type Catalog struct {
	products   []models.Product
	byID       map[uint]models.Product
	categories []models.Category
}

type dataset struct {
	Categories []models.Category `json:"categories"`
	Products   []models.Product  `json:"products"`
}

// Load builds a catalog from the JSON file at path, or from the embedded
// dataset when path is empty.
func Load(path string) (*Catalog, error) {
	raw := defaultData
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}

	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byID := make(map[uint]models.Product, len(ds.Products))
	for _, p := range ds.Products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %d has negative price", p.ID)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("product %d has negative stock", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: ds.Products, byID: byID, categories: ds.Categories}, nil
}

// Products returns a copy of the full product list in dataset order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id uint) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

// BestSelling returns products rated 4.0 or higher, best rated first,
// truncated to limit. Ties keep dataset order.
func (c *Catalog) BestSelling(limit int) []models.Product {
	out := make([]models.Product, 0, limit)
	for _, p := range c.products {
		if p.Rating >= 4.0 {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
