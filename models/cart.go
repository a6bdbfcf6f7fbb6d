package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CartEntry is what gets persisted: a product reference and a quantity.
// The referenced product is not guaranteed to exist in the catalog; entries
// that no longer resolve are pruned during reconciliation.
type CartEntry struct {
	ProductID uint      `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// CartLine is a cart entry joined against the catalog and priced.
type CartLine struct {
	ProductID  uint            `json:"productId"`
	Name       string          `json:"name"`
	Image      string          `json:"image,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
	Stock      int             `json:"stock"`
	OutOfStock bool            `json:"outOfStock"`
}

func (l CartLine) MarshalJSON() ([]byte, error) {
	type alias CartLine
	return json.Marshal(struct {
		alias
		UnitPrice string `json:"unitPrice"`
		LineTotal string `json:"lineTotal"`
	}{
		alias:     alias(l),
		UnitPrice: l.UnitPrice.StringFixed(2),
		LineTotal: l.LineTotal.StringFixed(2),
	})
}

// Totals hold full-precision amounts; rounding to two places happens only
// when they are rendered.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Shipping   decimal.Decimal
	GrandTotal decimal.Decimal
}

func (t Totals) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Subtotal   string `json:"subtotal"`
		Tax        string `json:"tax"`
		Shipping   string `json:"shipping"`
		GrandTotal string `json:"grandTotal"`
	}{
		Subtotal:   t.Subtotal.StringFixed(2),
		Tax:        t.Tax.StringFixed(2),
		Shipping:   t.Shipping.StringFixed(2),
		GrandTotal: t.GrandTotal.StringFixed(2),
	})
}
