package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/romuloqaz/jayatech-wishlist-api/internal/service"
	"github.com/romuloqaz/jayatech-wishlist-api/pkg/health"
	"github.com/romuloqaz/jayatech-wishlist-api/pkg/middleware"
)

// NewRouter creates a chi router with all wishlist API routes registered.
func NewRouter(
	wishlistService *service.WishlistService,
	catalogService *service.CatalogService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	pprofCIDRs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("wishlist"))
	r.Use(middleware.Tracing("wishlist"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	wishlistHandler := NewWishlistHandler(wishlistService, logger)
	productHandler := NewProductHandler(catalogService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/wishlists", func(r chi.Router) {
			r.Post("/", wishlistHandler.Create)
			r.Get("/{wishlistId}", wishlistHandler.GetByID)
			r.Post("/{wishlistId}/items", wishlistHandler.AddItem)
			r.Delete("/{wishlistId}/items/{itemId}", wishlistHandler.RemoveItem)
			r.Get("/{wishlistId}/check/{productId}", wishlistHandler.CheckProduct)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{productId}", productHandler.GetByID)
			r.Post("/", productHandler.Create)
		})
	})

	return r
}
