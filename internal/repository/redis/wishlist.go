package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/romuloqaz/jayatech-wishlist-api/internal/domain"
	apperrors "github.com/romuloqaz/jayatech-wishlist-api/pkg/errors"
)

const (
	idKeyPrefix   = "wishlist:id:"
	userKeyPrefix = "wishlist:user:"
)

// errRevisionMismatch signals a conditional save that lost the race. It never
// escapes this package.
var errRevisionMismatch = errors.New("wishlist revision mismatch")

// WishlistRepository implements repository.WishlistRepository using Redis.
// Each wishlist is stored whole as a JSON document under wishlist:id:<id>;
// wishlist:user:<userID> maps an owner to their wishlist id and doubles as
// the store-level uniqueness constraint.
type WishlistRepository struct {
	client *redis.Client
}

// NewWishlistRepository creates a new Redis-backed wishlist repository.
func NewWishlistRepository(client *redis.Client) *WishlistRepository {
	return &WishlistRepository{client: client}
}

// FindByID retrieves a wishlist document by its id.
func (r *WishlistRepository) FindByID(ctx context.Context, id string) (*domain.Wishlist, error) {
	data, err := r.client.Get(ctx, idKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("wishlist", id)
		}
		return nil, fmt.Errorf("redis get wishlist: %w", err)
	}

	var wishlist domain.Wishlist
	if err := json.Unmarshal(data, &wishlist); err != nil {
		return nil, fmt.Errorf("unmarshal wishlist: %w", err)
	}

	return &wishlist, nil
}

// FindByUserID resolves the user index key and loads the wishlist it points to.
func (r *WishlistRepository) FindByUserID(ctx context.Context, userID string) (*domain.Wishlist, error) {
	id, err := r.client.Get(ctx, userKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("wishlist for user", userID)
		}
		return nil, fmt.Errorf("redis get wishlist user index: %w", err)
	}

	return r.FindByID(ctx, id)
}

// Create reserves the user index key atomically and stores the new document.
// A taken index key means the user already owns a wishlist.
func (r *WishlistRepository) Create(ctx context.Context, wishlist *domain.Wishlist) error {
	reserved, err := r.client.SetNX(ctx, userKeyPrefix+wishlist.UserID, wishlist.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("redis reserve wishlist user index: %w", err)
	}
	if !reserved {
		return apperrors.AlreadyExists("wishlist", "user_id", wishlist.UserID)
	}

	data, err := json.Marshal(wishlist)
	if err != nil {
		return fmt.Errorf("marshal wishlist: %w", err)
	}

	if err := r.client.Set(ctx, idKeyPrefix+wishlist.ID, data, 0).Err(); err != nil {
		// Release the reservation so a later create can succeed.
		_ = r.client.Del(ctx, userKeyPrefix+wishlist.UserID).Err()
		return fmt.Errorf("redis set wishlist: %w", err)
	}

	return nil
}

// SaveIfRevision performs a compare-and-swap on the wishlist document keyed
// by its revision. The WATCH aborts the transaction if another writer
// modifies the key between the read and the write.
func (r *WishlistRepository) SaveIfRevision(ctx context.Context, wishlist *domain.Wishlist, expectedRevision int) (bool, error) {
	key := idKeyPrefix + wishlist.ID

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			if expectedRevision != 0 {
				return errRevisionMismatch
			}
		case err != nil:
			return fmt.Errorf("redis get wishlist: %w", err)
		default:
			var current domain.Wishlist
			if err := json.Unmarshal(data, &current); err != nil {
				return fmt.Errorf("unmarshal wishlist: %w", err)
			}
			if current.Revision != expectedRevision {
				return errRevisionMismatch
			}
		}

		wishlist.Revision = expectedRevision + 1
		payload, err := json.Marshal(wishlist)
		if err != nil {
			return fmt.Errorf("marshal wishlist: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errRevisionMismatch), errors.Is(err, redis.TxFailedErr):
		wishlist.Revision = expectedRevision
		return false, nil
	default:
		wishlist.Revision = expectedRevision
		return false, fmt.Errorf("redis save wishlist: %w", err)
	}
}
