package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/romuloqaz/jayatech-wishlist-api/internal/service"
	"github.com/romuloqaz/jayatech-wishlist-api/pkg/httputil"
	"github.com/romuloqaz/jayatech-wishlist-api/pkg/validator"
)

// WishlistHandler handles HTTP requests for wishlist endpoints.
type WishlistHandler struct {
	service *service.WishlistService
	logger  *slog.Logger
}

// NewWishlistHandler creates a new wishlist HTTP handler.
func NewWishlistHandler(svc *service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CreateWishlistRequest is the JSON request body for creating a wishlist.
type CreateWishlistRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// AddItemRequest is the JSON request body for adding a product to a wishlist.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// --- Handlers ---

// Create handles POST /api/v1/wishlists
func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	wishlist, err := h.service.Create(r.Context(), req.UserID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: wishlist})
}

// GetByID handles GET /api/v1/wishlists/{wishlistId}
func (h *WishlistHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	wishlistID := chi.URLParam(r, "wishlistId")

	wishlist, err := h.service.GetByID(r.Context(), wishlistID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wishlist})
}

// AddItem handles POST /api/v1/wishlists/{wishlistId}/items
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	wishlistID := chi.URLParam(r, "wishlistId")

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	wishlist, err := h.service.AddItem(r.Context(), wishlistID, req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: wishlist})
}

// RemoveItem handles DELETE /api/v1/wishlists/{wishlistId}/items/{itemId}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	wishlistID := chi.URLParam(r, "wishlistId")
	itemID := chi.URLParam(r, "itemId")

	if err := h.service.RemoveItem(r.Context(), wishlistID, itemID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckProduct handles GET /api/v1/wishlists/{wishlistId}/check/{productId}
func (h *WishlistHandler) CheckProduct(w http.ResponseWriter, r *http.Request) {
	wishlistID := chi.URLParam(r, "wishlistId")
	productID := chi.URLParam(r, "productId")

	result, err := h.service.CheckProduct(r.Context(), wishlistID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}
