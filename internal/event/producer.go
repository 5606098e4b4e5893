package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/romuloqaz/jayatech-wishlist-api/internal/domain"
	pkgkafka "github.com/romuloqaz/jayatech-wishlist-api/pkg/kafka"
)

// Kafka topic constants for wishlist domain events.
const (
	TopicWishlistCreated     = "wishlist.created"
	TopicWishlistUpdated     = "wishlist.updated"
	TopicWishlistItemRemoved = "wishlist.item_removed"
)

// Aggregate type constant.
const AggregateTypeWishlist = "wishlist"

// Source identifier for events originating from this service.
const SourceWishlistService = "wishlist-api"

// WishlistCreatedData is the payload for a wishlist.created event.
type WishlistCreatedData struct {
	WishlistID string `json:"wishlist_id"`
	UserID     string `json:"user_id"`
}

// WishlistUpdatedData is the payload for a wishlist.updated event.
type WishlistUpdatedData struct {
	WishlistID string   `json:"wishlist_id"`
	UserID     string   `json:"user_id"`
	ProductIDs []string `json:"product_ids"`
	ItemCount  int      `json:"item_count"`
}

// WishlistItemRemovedData is the payload for a wishlist.item_removed event.
type WishlistItemRemovedData struct {
	WishlistID string `json:"wishlist_id"`
	UserID     string `json:"user_id"`
	ProductID  string `json:"product_id"`
	ItemCount  int    `json:"item_count"`
}

// Producer publishes wishlist domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the wishlist service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishWishlistCreated publishes a wishlist.created event.
func (p *Producer) PublishWishlistCreated(ctx context.Context, w *domain.Wishlist) error {
	data := WishlistCreatedData{
		WishlistID: w.ID,
		UserID:     w.UserID,
	}

	event, err := pkgkafka.NewEvent(TopicWishlistCreated, w.ID, AggregateTypeWishlist, SourceWishlistService, data)
	if err != nil {
		return fmt.Errorf("create wishlist.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistCreated, event); err != nil {
		return fmt.Errorf("publish wishlist.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published wishlist.created event",
		slog.String("wishlist_id", w.ID),
		slog.String("user_id", w.UserID),
	)

	return nil
}

// PublishWishlistUpdated publishes a wishlist.updated event.
func (p *Producer) PublishWishlistUpdated(ctx context.Context, w *domain.Wishlist) error {
	productIDs := make([]string, len(w.Items))
	for i, item := range w.Items {
		productIDs[i] = item.Product.ID
	}

	data := WishlistUpdatedData{
		WishlistID: w.ID,
		UserID:     w.UserID,
		ProductIDs: productIDs,
		ItemCount:  len(w.Items),
	}

	event, err := pkgkafka.NewEvent(TopicWishlistUpdated, w.ID, AggregateTypeWishlist, SourceWishlistService, data)
	if err != nil {
		return fmt.Errorf("create wishlist.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistUpdated, event); err != nil {
		return fmt.Errorf("publish wishlist.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published wishlist.updated event",
		slog.String("wishlist_id", w.ID),
		slog.Int("item_count", len(w.Items)),
	)

	return nil
}

// PublishWishlistItemRemoved publishes a wishlist.item_removed event.
func (p *Producer) PublishWishlistItemRemoved(ctx context.Context, w *domain.Wishlist, productID string) error {
	data := WishlistItemRemovedData{
		WishlistID: w.ID,
		UserID:     w.UserID,
		ProductID:  productID,
		ItemCount:  len(w.Items),
	}

	event, err := pkgkafka.NewEvent(TopicWishlistItemRemoved, w.ID, AggregateTypeWishlist, SourceWishlistService, data)
	if err != nil {
		return fmt.Errorf("create wishlist.item_removed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistItemRemoved, event); err != nil {
		return fmt.Errorf("publish wishlist.item_removed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published wishlist.item_removed event",
		slog.String("wishlist_id", w.ID),
		slog.String("product_id", productID),
	)

	return nil
}
