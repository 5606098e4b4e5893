package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product. Products are immutable once created
// and owned by the catalog store; wishlist items embed a snapshot of them.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Check result messages returned by ProductCheckResult.
const (
	MessageProductFound    = "product.found"
	MessageProductNotFound = "product.not.found"
)

// ProductCheckResult reports whether a product is present in a wishlist.
// Absence is a normal outcome, not an error.
type ProductCheckResult struct {
	Product    *Product `json:"product,omitempty"`
	HasProduct bool     `json:"has_product_in_wishlist"`
	Message    string   `json:"message"`
}

// NewProductCheckResult builds a check result for the given product snapshot.
// A nil product yields the not-found sentinel.
func NewProductCheckResult(product *Product) ProductCheckResult {
	if product == nil {
		return ProductCheckResult{
			HasProduct: false,
			Message:    MessageProductNotFound,
		}
	}
	return ProductCheckResult{
		Product:    product,
		HasProduct: true,
		Message:    MessageProductFound,
	}
}
