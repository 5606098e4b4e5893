package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, productID string, createdAt time.Time) WishlistItem {
	return WishlistItem{
		ID:        id,
		CreatedAt: createdAt,
		Product: Product{
			ID:    productID,
			Name:  "Mouse",
			Price: decimal.NewFromFloat(15.5),
		},
	}
}

func TestFindProduct(t *testing.T) {
	now := time.Now().UTC()
	w := &Wishlist{Items: []WishlistItem{
		item("item-1", "prod-1", now),
		item("item-2", "prod-2", now),
	}}

	found := w.FindProduct("prod-2")
	require.NotNil(t, found)
	assert.Equal(t, "prod-2", found.ID)

	assert.Nil(t, w.FindProduct("prod-3"))
}

func TestFindProductLastMatchWins(t *testing.T) {
	now := time.Now().UTC()
	first := item("item-1", "prod-1", now)
	second := item("item-2", "prod-1", now)
	second.Product.Name = "Mouse v2"
	w := &Wishlist{Items: []WishlistItem{first, second}}

	found := w.FindProduct("prod-1")
	require.NotNil(t, found)
	assert.Equal(t, "Mouse v2", found.Name)
}

func TestFindProductEmptyWishlist(t *testing.T) {
	w := &Wishlist{}
	assert.Nil(t, w.FindProduct("prod-1"))
}

func TestFindItemIndex(t *testing.T) {
	now := time.Now().UTC()
	w := &Wishlist{Items: []WishlistItem{
		item("item-1", "prod-1", now),
		item("item-2", "prod-2", now),
	}}

	assert.Equal(t, 0, w.FindItemIndex("item-1"))
	assert.Equal(t, 1, w.FindItemIndex("item-2"))
	assert.Equal(t, -1, w.FindItemIndex("item-3"))
}

func TestSortItems(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := &Wishlist{Items: []WishlistItem{
		item("item-c", "prod-c", base.Add(2*time.Minute)),
		item("item-a", "prod-a", base),
		item("item-b", "prod-b", base.Add(time.Minute)),
	}}

	w.SortItems()

	assert.Equal(t, "item-a", w.Items[0].ID)
	assert.Equal(t, "item-b", w.Items[1].ID)
	assert.Equal(t, "item-c", w.Items[2].ID)
}

func TestSortItemsStableForEqualTimestamps(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := &Wishlist{Items: []WishlistItem{
		item("item-x", "prod-x", ts),
		item("item-y", "prod-y", ts),
	}}

	w.SortItems()

	assert.Equal(t, "item-x", w.Items[0].ID)
	assert.Equal(t, "item-y", w.Items[1].ID)
}

func TestTouch(t *testing.T) {
	w := &Wishlist{}
	require.Nil(t, w.UpdatedAt)

	now := time.Now().UTC()
	w.Touch(now)

	require.NotNil(t, w.UpdatedAt)
	assert.Equal(t, now, *w.UpdatedAt)
}

func TestNewProductCheckResult(t *testing.T) {
	p := &Product{ID: "prod-1", Name: "Mouse", Price: decimal.NewFromFloat(15.5)}

	found := NewProductCheckResult(p)
	assert.True(t, found.HasProduct)
	assert.Equal(t, MessageProductFound, found.Message)
	require.NotNil(t, found.Product)
	assert.Equal(t, "prod-1", found.Product.ID)

	absent := NewProductCheckResult(nil)
	assert.False(t, absent.HasProduct)
	assert.Equal(t, MessageProductNotFound, absent.Message)
	assert.Nil(t, absent.Product)
}
