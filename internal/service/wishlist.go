package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/romuloqaz/jayatech-wishlist-api/internal/domain"
	"github.com/romuloqaz/jayatech-wishlist-api/internal/event"
	"github.com/romuloqaz/jayatech-wishlist-api/internal/repository"
	apperrors "github.com/romuloqaz/jayatech-wishlist-api/pkg/errors"
)

// maxSaveAttempts bounds how many times a mutation is revalidated and
// retried after losing an optimistic-lock race.
const maxSaveAttempts = 3

// WishlistService implements the business logic for wishlist operations.
type WishlistService struct {
	repo     repository.WishlistRepository
	catalog  repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, catalog repository.ProductRepository, producer *event.Producer, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:     repo,
		catalog:  catalog,
		producer: producer,
		logger:   logger,
	}
}

// Create creates a new empty wishlist for the user. Each user may own at
// most one wishlist; the store-level reservation is the authoritative
// uniqueness check, the lookup merely gives a friendlier fast path.
func (s *WishlistService) Create(ctx context.Context, userID string) (*domain.Wishlist, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	if _, err := s.repo.FindByUserID(ctx, userID); err == nil {
		return nil, apperrors.AlreadyExists("wishlist", "user_id", userID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("lookup wishlist by user: %w", err)
	}

	wishlist := &domain.Wishlist{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []domain.WishlistItem{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, wishlist); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.AlreadyExists("wishlist", "user_id", userID)
		}
		return nil, apperrors.Internal(fmt.Errorf("create wishlist: %w", err))
	}

	if err := s.producer.PublishWishlistCreated(ctx, wishlist); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.created event",
			slog.String("wishlist_id", wishlist.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "wishlist created",
		slog.String("wishlist_id", wishlist.ID),
		slog.String("user_id", userID),
	)

	return wishlist, nil
}

// GetByID retrieves a wishlist. Items are sorted ascending by creation
// time before being returned; the stored order is not relied upon.
func (s *WishlistService) GetByID(ctx context.Context, id string) (*domain.Wishlist, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("wishlist id is required")
	}

	wishlist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wishlist.SortItems()
	return wishlist, nil
}

// AddItem adds a catalog product to the wishlist. The product snapshot is
// embedded in the item at insertion time. Duplicate and capacity checks
// run against the freshly loaded state on every attempt, so a mutation
// that lost an optimistic-lock race is revalidated before being retried.
func (s *WishlistService) AddItem(ctx context.Context, wishlistID, productID string) (*domain.Wishlist, error) {
	if wishlistID == "" {
		return nil, apperrors.InvalidInput("wishlist id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		wishlist, err := s.repo.FindByID(ctx, wishlistID)
		if err != nil {
			return nil, err
		}

		// Duplicate check runs before the capacity check: a wishlist
		// that is both full and already holds the product reports the
		// duplicate.
		if wishlist.FindProduct(productID) != nil {
			return nil, apperrors.DuplicateItem(productID)
		}
		if len(wishlist.Items) >= domain.MaxItems {
			return nil, apperrors.CapacityExceeded(domain.MaxItems)
		}

		now := time.Now().UTC()
		wishlist.Items = append(wishlist.Items, domain.WishlistItem{
			ID:        uuid.NewString(),
			CreatedAt: now,
			Product:   *product,
		})
		wishlist.Touch(now)

		expectedRevision := wishlist.Revision
		ok, err := s.repo.SaveIfRevision(ctx, wishlist, expectedRevision)
		if err != nil {
			return nil, apperrors.Internal(fmt.Errorf("save wishlist: %w", err))
		}
		if !ok {
			s.logger.WarnContext(ctx, "wishlist save lost revision race, retrying",
				slog.String("wishlist_id", wishlistID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}

		if err := s.producer.PublishWishlistUpdated(ctx, wishlist); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
				slog.String("wishlist_id", wishlistID),
				slog.String("error", err.Error()),
			)
		}

		s.logger.InfoContext(ctx, "item added to wishlist",
			slog.String("wishlist_id", wishlistID),
			slog.String("product_id", productID),
			slog.Int("item_count", len(wishlist.Items)),
		)

		return wishlist, nil
	}

	return nil, apperrors.Conflict("wishlist was modified concurrently, please retry")
}

// RemoveItem removes the item with the given id from the wishlist.
// Removing from an empty wishlist is a no-op; removing an unknown item
// from a non-empty wishlist is an error, and nothing is persisted.
func (s *WishlistService) RemoveItem(ctx context.Context, wishlistID, itemID string) error {
	if wishlistID == "" {
		return apperrors.InvalidInput("wishlist id is required")
	}
	if itemID == "" {
		return apperrors.InvalidInput("item id is required")
	}

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		wishlist, err := s.repo.FindByID(ctx, wishlistID)
		if err != nil {
			return err
		}

		if len(wishlist.Items) == 0 {
			return nil
		}

		idx := wishlist.FindItemIndex(itemID)
		if idx < 0 {
			return apperrors.NotFound("wishlist item", itemID)
		}

		removedProductID := wishlist.Items[idx].Product.ID
		wishlist.Items = append(wishlist.Items[:idx], wishlist.Items[idx+1:]...)
		wishlist.Touch(time.Now().UTC())

		expectedRevision := wishlist.Revision
		ok, err := s.repo.SaveIfRevision(ctx, wishlist, expectedRevision)
		if err != nil {
			return apperrors.Internal(fmt.Errorf("save wishlist: %w", err))
		}
		if !ok {
			s.logger.WarnContext(ctx, "wishlist save lost revision race, retrying",
				slog.String("wishlist_id", wishlistID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}

		if err := s.producer.PublishWishlistItemRemoved(ctx, wishlist, removedProductID); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish wishlist.item_removed event",
				slog.String("wishlist_id", wishlistID),
				slog.String("error", err.Error()),
			)
		}

		s.logger.InfoContext(ctx, "item removed from wishlist",
			slog.String("wishlist_id", wishlistID),
			slog.String("item_id", itemID),
			slog.Int("item_count", len(wishlist.Items)),
		)

		return nil
	}

	return apperrors.Conflict("wishlist was modified concurrently, please retry")
}

// CheckProduct reports whether the product is present in the wishlist.
// Absence is a normal outcome, not an error.
func (s *WishlistService) CheckProduct(ctx context.Context, wishlistID, productID string) (*domain.ProductCheckResult, error) {
	if wishlistID == "" {
		return nil, apperrors.InvalidInput("wishlist id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	wishlist, err := s.repo.FindByID(ctx, wishlistID)
	if err != nil {
		return nil, err
	}

	result := domain.NewProductCheckResult(wishlist.FindProduct(productID))
	return &result, nil
}
