package repository

import (
	"context"

	"github.com/romuloqaz/jayatech-wishlist-api/internal/domain"
)

// WishlistRepository defines the persistence contract for wishlist documents.
// Wishlists are saved whole; document-level writes are the unit of atomicity.
type WishlistRepository interface {
	// FindByID retrieves a wishlist by its id.
	FindByID(ctx context.Context, id string) (*domain.Wishlist, error)

	// FindByUserID retrieves the wishlist owned by the given user.
	FindByUserID(ctx context.Context, userID string) (*domain.Wishlist, error)

	// Create persists a new wishlist, reserving the one-wishlist-per-user
	// constraint at the store level. A conflicting reservation is the
	// authoritative already-exists signal.
	Create(ctx context.Context, wishlist *domain.Wishlist) error

	// SaveIfRevision persists the wishlist only if the stored revision still
	// equals expectedRevision, incrementing the revision on success. Returns
	// false without error when another writer got there first.
	SaveIfRevision(ctx context.Context, wishlist *domain.Wishlist, expectedRevision int) (bool, error)
}

// ProductRepository defines the persistence contract for the product catalog.
type ProductRepository interface {
	// GetByID retrieves a product by its id.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns the full catalog.
	List(ctx context.Context) ([]domain.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *domain.Product) error
}
