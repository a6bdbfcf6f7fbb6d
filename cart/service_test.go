package cart

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmanuel-nwafor/Fore-made-webApp/catalog"
	"github.com/emmanuel-nwafor/Fore-made-webApp/kvstore"
	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

const testCatalogJSON = `{
  "categories": [{"id": 1, "name": "Test"}],
  "products": [
    {"id": 1, "name": "Widget", "price": 1000, "categoryId": 1, "rating": 4.5, "stock": 2},
    {"id": 2, "name": "Gadget", "price": 250, "categoryId": 1, "rating": 4.0, "stock": 10},
    {"id": 3, "name": "Sold Out Thing", "price": 900, "categoryId": 1, "rating": 3.0, "stock": 0}
  ]
}`

func newTestService(t *testing.T) (*Service, *kvstore.MemStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogJSON), 0o600))
	cat, err := catalog.Load(path)
	require.NoError(t, err)

	store := kvstore.NewMemStore()
	return NewService(store, cat, testPricing(), zerolog.Nop()), store
}

func TestUpdateItemAddsAndPersists(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	rec, notices, err := svc.UpdateItem(ctx, "u1", 2, 3)
	require.NoError(t, err)
	require.Len(t, rec.Lines, 1)
	assert.Equal(t, 3, rec.Lines[0].Quantity)
	assert.Empty(t, notices)

	raw, ok, err := store.Get(ctx, kvstore.CartKey("u1"))
	require.NoError(t, err)
	require.True(t, ok, "cart must be persisted after every mutation")

	var persisted []models.CartEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, uint(2), persisted[0].ProductID)
}

func TestUpdateItemClampsToStock(t *testing.T) {
	svc, _ := newTestService(t)

	rec, notices, err := svc.UpdateItem(context.Background(), "u1", 1, 5)
	require.NoError(t, err)
	require.Len(t, rec.Lines, 1)
	assert.Equal(t, 2, rec.Lines[0].Quantity, "quantity clamped to stock")
	require.NotEmpty(t, notices)
	assert.Contains(t, notices[0], "Cannot add more than 2 units of Widget.")
}

func TestUpdateItemZeroQuantityRemoves(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.UpdateItem(ctx, "u1", 2, 1)
	require.NoError(t, err)

	rec, notices, err := svc.UpdateItem(ctx, "u1", 2, 0)
	require.NoError(t, err)
	assert.Empty(t, rec.Lines)
	require.NotEmpty(t, notices)
	assert.Contains(t, notices[0], "Removed Gadget from cart.")

	// Negative quantities behave the same.
	_, _, err = svc.UpdateItem(ctx, "u1", 2, 1)
	require.NoError(t, err)
	rec, _, err = svc.UpdateItem(ctx, "u1", 2, -4)
	require.NoError(t, err)
	assert.Empty(t, rec.Lines)
}

func TestUpdateItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.UpdateItem(context.Background(), "u1", 999, 1)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "product_id", vErr.Field)
}

func TestUpdateKeepsEntryOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.UpdateItem(ctx, "u1", 1, 1)
	require.NoError(t, err)
	_, _, err = svc.UpdateItem(ctx, "u1", 2, 1)
	require.NoError(t, err)

	// Updating the first product's quantity must not move it to the back.
	rec, _, err := svc.UpdateItem(ctx, "u1", 1, 2)
	require.NoError(t, err)
	require.Len(t, rec.Lines, 2)
	assert.Equal(t, uint(1), rec.Lines[0].ProductID)
	assert.Equal(t, uint(2), rec.Lines[1].ProductID)
}

func TestRemoveMissingItem(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Remove(context.Background(), "u1", 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetSelfHealsMalformedBlob(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kvstore.CartKey("u1"), "{not json"))

	rec, notices, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, rec.Lines)
	require.NotEmpty(t, notices)
	assert.Contains(t, notices[0], "Cart data was invalid and has been reset.")

	raw, ok, err := store.Get(ctx, kvstore.CartKey("u1"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[]", raw)
}

func TestGetPrunesDanglingEntries(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	blob, err := json.Marshal([]models.CartEntry{
		{ProductID: 1, Quantity: 1},
		{ProductID: 777, Quantity: 2},
	})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, kvstore.CartKey("u1"), string(blob)))

	rec, notices, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rec.Lines, 1)
	assert.Equal(t, []uint{777}, rec.Removed)
	require.NotEmpty(t, notices)

	// The persisted cart no longer dangles.
	raw, _, err := store.Get(ctx, kvstore.CartKey("u1"))
	require.NoError(t, err)
	var persisted []models.CartEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, uint(1), persisted[0].ProductID)
}

func TestCheckoutEmptyCartBlocked(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Checkout(context.Background(), "u1")
	var blocked *models.CheckoutBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Contains(t, blocked.Error(), "empty")
}

func TestCheckoutOverStockBlocked(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// Quantity 5 of a stock-2 product, persisted directly as an older
	// client could have left it.
	blob, err := json.Marshal([]models.CartEntry{{ProductID: 1, Quantity: 5}})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, kvstore.CartKey("u1"), string(blob)))

	_, err = svc.Checkout(ctx, "u1")
	var blocked *models.CheckoutBlockedError
	require.ErrorAs(t, err, &blocked)
	require.Len(t, blocked.Lines, 1)
	assert.Equal(t, uint(1), blocked.Lines[0].ProductID)
}

func TestCheckoutBlockedForOutOfStockEntry(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	blob, err := json.Marshal([]models.CartEntry{{ProductID: 3, Quantity: 1}})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, kvstore.CartKey("u1"), string(blob)))

	// The entry stays in the cart...
	rec, _, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rec.Lines, 1)
	assert.True(t, rec.Lines[0].OutOfStock)

	// ...but blocks checkout.
	_, err = svc.Checkout(ctx, "u1")
	var blocked *models.CheckoutBlockedError
	require.ErrorAs(t, err, &blocked)
}

func TestClear(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.UpdateItem(ctx, "u1", 2, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "u1"))

	_, ok, err := store.Get(ctx, kvstore.CartKey("u1"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckoutPasses(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.UpdateItem(ctx, "u1", 1, 2)
	require.NoError(t, err)

	rec, err := svc.Checkout(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rec.Lines, 1)
	assert.True(t, rec.Totals.GrandTotal.Equal(rec.Totals.Subtotal.Add(rec.Totals.Tax).Add(rec.Totals.Shipping)))
}
