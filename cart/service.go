package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emmanuel-nwafor/Fore-made-webApp/catalog"
	"github.com/emmanuel-nwafor/Fore-made-webApp/kvstore"
	"github.com/emmanuel-nwafor/Fore-made-webApp/metrics"
	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// ErrItemNotFound is returned when a remove targets a product that is not
// in the cart.
var ErrItemNotFound = errors.New("cart item not found")

// Service owns one cart per user, persisted as a JSON blob after every
// mutation. Loading self-heals: a malformed blob resets to an empty cart and
// entries referencing products missing from the catalog are pruned, both
// reported as non-blocking notices rather than errors.
type Service struct {
	store   kvstore.Store
	cat     *catalog.Catalog
	pricing Pricing
	log     zerolog.Logger
}

func NewService(store kvstore.Store, cat *catalog.Catalog, pricing Pricing, log zerolog.Logger) *Service {
	return &Service{store: store, cat: cat, pricing: pricing, log: log.With().Str("component", "cart").Logger()}
}

// Get loads, self-heals and reconciles the user's cart.
func (s *Service) Get(ctx context.Context, userID string) (Reconciliation, []string, error) {
	entries, notices, err := s.load(ctx, userID)
	if err != nil {
		return Reconciliation{}, nil, err
	}
	rec, pruneNotices, err := s.reconcileAndHeal(ctx, userID, entries)
	if err != nil {
		return Reconciliation{}, nil, err
	}
	return rec, append(notices, pruneNotices...), nil
}

// UpdateItem sets the quantity of a product in the cart. A quantity of zero
// or less removes the item. A quantity above the available stock is clamped
// to the stock and reported as a notice, not an error.
func (s *Service) UpdateItem(ctx context.Context, userID string, productID uint, quantity int) (Reconciliation, []string, error) {
	product, ok := s.cat.Get(productID)
	if !ok {
		return Reconciliation{}, nil, &models.ValidationError{Field: "product_id", Message: "Product does not exist"}
	}

	if quantity <= 0 {
		return s.Remove(ctx, userID, productID)
	}

	entries, notices, err := s.load(ctx, userID)
	if err != nil {
		return Reconciliation{}, nil, err
	}

	if product.Stock > 0 && quantity > product.Stock {
		notices = append(notices, fmt.Sprintf("Cannot add more than %d units of %s.", product.Stock, product.Name))
		quantity = product.Stock
	}

	updated := false
	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity = quantity
			entries[i].AddedAt = time.Now()
			updated = true
			break
		}
	}
	if !updated {
		entries = append(entries, models.CartEntry{ProductID: productID, Quantity: quantity, AddedAt: time.Now()})
	}
	if updated {
		notices = append(notices, fmt.Sprintf("Updated quantity of %s to %d.", product.Name, quantity))
	}

	if err := s.persist(ctx, userID, entries); err != nil {
		return Reconciliation{}, nil, err
	}
	metrics.CartMutations.WithLabelValues("update").Inc()

	rec, pruneNotices, err := s.reconcileAndHeal(ctx, userID, entries)
	if err != nil {
		return Reconciliation{}, nil, err
	}
	return rec, append(notices, pruneNotices...), nil
}

// Remove deletes a product from the cart.
func (s *Service) Remove(ctx context.Context, userID string, productID uint) (Reconciliation, []string, error) {
	entries, notices, err := s.load(ctx, userID)
	if err != nil {
		return Reconciliation{}, nil, err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return Reconciliation{}, nil, ErrItemNotFound
	}

	if err := s.persist(ctx, userID, kept); err != nil {
		return Reconciliation{}, nil, err
	}
	metrics.CartMutations.WithLabelValues("remove").Inc()

	name := fmt.Sprintf("item %d", productID)
	if p, ok := s.cat.Get(productID); ok {
		name = p.Name
	}
	notices = append(notices, fmt.Sprintf("Removed %s from cart.", name))

	rec, pruneNotices, err := s.reconcileAndHeal(ctx, userID, kept)
	if err != nil {
		return Reconciliation{}, nil, err
	}
	return rec, append(notices, pruneNotices...), nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, kvstore.CartKey(userID)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	metrics.CartMutations.WithLabelValues("clear").Inc()
	return nil
}

// Checkout runs the admission check and, on success, returns the final
// reconciliation. Payment and order placement happen elsewhere.
func (s *Service) Checkout(ctx context.Context, userID string) (Reconciliation, error) {
	rec, _, err := s.Get(ctx, userID)
	if err != nil {
		return Reconciliation{}, err
	}
	if blocked := AdmitCheckout(rec); blocked != nil {
		reason := "out_of_stock"
		if len(blocked.Lines) == 0 {
			reason = "empty_cart"
		}
		metrics.CheckoutBlocked.WithLabelValues(reason).Inc()
		return Reconciliation{}, blocked
	}
	return rec, nil
}

// load reads the persisted entries. A blob that fails to decode resets the
// cart instead of failing the request.
func (s *Service) load(ctx context.Context, userID string) ([]models.CartEntry, []string, error) {
	raw, ok, err := s.store.Get(ctx, kvstore.CartKey(userID))
	if err != nil {
		return nil, nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil, nil
	}

	var entries []models.CartEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("cart blob malformed, resetting")
		if err := s.persist(ctx, userID, nil); err != nil {
			return nil, nil, err
		}
		return nil, []string{"Cart data was invalid and has been reset."}, nil
	}

	// Drop entries with a non-positive quantity; they only appear when an
	// older client persisted a removal as quantity zero.
	kept := entries[:0]
	for _, e := range entries {
		if e.Quantity > 0 {
			kept = append(kept, e)
		}
	}
	return kept, nil, nil
}

func (s *Service) persist(ctx context.Context, userID string, entries []models.CartEntry) error {
	if entries == nil {
		entries = []models.CartEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.CartKey(userID), string(raw)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// reconcileAndHeal reconciles entries and, when dangling entries were
// dropped, re-persists the pruned cart so the stored blob never dangles.
func (s *Service) reconcileAndHeal(ctx context.Context, userID string, entries []models.CartEntry) (Reconciliation, []string, error) {
	rec := Reconcile(entries, s.cat, s.pricing)
	if len(rec.Removed) == 0 {
		return rec, nil, nil
	}

	if err := s.persist(ctx, userID, Surviving(entries, rec.Removed)); err != nil {
		return Reconciliation{}, nil, err
	}
	metrics.CartEntriesPruned.Add(float64(len(rec.Removed)))
	s.log.Info().Str("user_id", userID).Uints("removed", rec.Removed).Msg("pruned dangling cart entries")
	return rec, []string{"Some cart items were invalid and have been removed."}, nil
}
