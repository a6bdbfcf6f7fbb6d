// Package cart implements the persisted shopping cart: the pure reconciler
// that joins entries against the catalog and prices them, and the service
// that owns cart mutations and persistence.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// Pricing holds the configurable totals constants.
type Pricing struct {
	TaxRate     decimal.Decimal // e.g. 0.075
	ShippingFee decimal.Decimal // flat fee, charged only when subtotal > 0
}

// Reconciliation is the priced, validated cart view.
type Reconciliation struct {
	Lines          []models.CartLine `json:"lines"`
	Totals         models.Totals     `json:"totals"`
	Removed        []uint            `json:"removed,omitempty"`
	TotalItems     int               `json:"totalItems"`
	UniqueProducts int               `json:"uniqueProducts"`
}

// Surviving returns the entries whose product still exists in the catalog,
// in their original order. The caller persists this to self-heal the cart.
func Surviving(entries []models.CartEntry, removed []uint) []models.CartEntry {
	if len(removed) == 0 {
		return entries
	}
	gone := make(map[uint]bool, len(removed))
	for _, id := range removed {
		gone[id] = true
	}
	out := make([]models.CartEntry, 0, len(entries))
	for _, e := range entries {
		if !gone[e.ProductID] {
			out = append(out, e)
		}
	}
	return out
}

type lookup interface {
	Get(id uint) (models.Product, bool)
}

// Reconcile joins each entry against the catalog and computes totals.
// Entries whose product no longer exists are dropped from Lines and reported
// in Removed. Totals are computed with exact decimal arithmetic; rounding
// happens only at render time.
func Reconcile(entries []models.CartEntry, cat lookup, pricing Pricing) Reconciliation {
	rec := Reconciliation{Lines: make([]models.CartLine, 0, len(entries))}

	subtotal := decimal.Zero
	for _, e := range entries {
		p, ok := cat.Get(e.ProductID)
		if !ok {
			rec.Removed = append(rec.Removed, e.ProductID)
			continue
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
		rec.Lines = append(rec.Lines, models.CartLine{
			ProductID:  e.ProductID,
			Name:       p.Name,
			Image:      p.Image,
			Quantity:   e.Quantity,
			UnitPrice:  p.Price,
			LineTotal:  lineTotal,
			Stock:      p.Stock,
			OutOfStock: p.Stock == 0,
		})
		subtotal = subtotal.Add(lineTotal)
		rec.TotalItems += e.Quantity
	}
	rec.UniqueProducts = len(rec.Lines)

	tax := subtotal.Mul(pricing.TaxRate)
	shipping := decimal.Zero
	if subtotal.IsPositive() {
		shipping = pricing.ShippingFee
	}
	rec.Totals = models.Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		Shipping:   shipping,
		GrandTotal: subtotal.Add(tax).Add(shipping),
	}
	return rec
}

// AdmitCheckout is the checkout admission check. It fails when the cart is
// empty or any line asks for more than the available stock; the returned
// error lists every offending line.
func AdmitCheckout(rec Reconciliation) *models.CheckoutBlockedError {
	if len(rec.Lines) == 0 {
		return &models.CheckoutBlockedError{Reason: "Your cart is empty."}
	}
	var blocked []models.CartLine
	for _, l := range rec.Lines {
		if l.Quantity > l.Stock {
			blocked = append(blocked, l)
		}
	}
	if len(blocked) > 0 {
		return &models.CheckoutBlockedError{Lines: blocked}
	}
	return nil
}
