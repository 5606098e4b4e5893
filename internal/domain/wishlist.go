package domain

import (
	"sort"
	"time"
)

// MaxItems is the maximum number of items a single wishlist may hold.
const MaxItems = 20

// Wishlist represents a user's collection of product references. Each user
// owns at most one wishlist; items are exclusively owned by their parent.
type Wishlist struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Items     []WishlistItem `json:"items"`
	Revision  int            `json:"revision"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

// WishlistItem is an entry in a wishlist capturing a point-in-time product
// snapshot. Items are created only by a successful add and removed only by id.
type WishlistItem struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Product   Product   `json:"product"`
}

// FindProduct scans the items for one whose embedded product id matches.
// Returns the last matching snapshot, or nil when absent. Duplicates cannot
// occur under the add-item invariant; the last match wins if they ever do.
func (w *Wishlist) FindProduct(productID string) *Product {
	var found *Product
	for i := range w.Items {
		if w.Items[i].Product.ID == productID {
			found = &w.Items[i].Product
		}
	}
	return found
}

// FindItemIndex returns the index of the item with the given item id, or -1.
func (w *Wishlist) FindItemIndex(itemID string) int {
	for i := range w.Items {
		if w.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// SortItems orders the items ascending by creation time. The order is a
// read-time normalization, not a stored property.
func (w *Wishlist) SortItems() {
	sort.SliceStable(w.Items, func(i, j int) bool {
		return w.Items[i].CreatedAt.Before(w.Items[j].CreatedAt)
	})
}

// Touch records a successful mutation.
func (w *Wishlist) Touch(now time.Time) {
	w.UpdatedAt = &now
}
