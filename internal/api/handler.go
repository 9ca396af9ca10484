// Package api exposes the catalog, search, and basket operations over
// HTTP. Handlers map domain results and errors to JSON responses; all
// business logic stays in the domain services.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skypro/skyshop/internal/domain/article"
	"github.com/skypro/skyshop/internal/domain/basket"
	"github.com/skypro/skyshop/internal/domain/product"
	"github.com/skypro/skyshop/internal/domain/search"
)

// Catalog is the read-only view of the catalog store served by the API.
type Catalog interface {
	Products(ctx context.Context) ([]product.Product, error)
	Articles(ctx context.Context) ([]*article.Article, error)
}

// Sessions resolves the basket handle for the current request's
// session, creating the session when needed.
type Sessions interface {
	Basket(w http.ResponseWriter, r *http.Request) *basket.Basket
}

// Handler wires the domain services to HTTP routes.
type Handler struct {
	catalog   Catalog
	searchSvc *search.Service
	basketSvc *basket.Service
	sessions  Sessions
}

// NewHandler constructs a Handler with the required dependencies.
func NewHandler(
	catalog Catalog,
	searchSvc *search.Service,
	basketSvc *basket.Service,
	sessions Sessions,
) *Handler {
	return &Handler{
		catalog:   catalog,
		searchSvc: searchSvc,
		basketSvc: basketSvc,
		sessions:  sessions,
	}
}

// Routes returns the API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", h.listProducts)
	r.Get("/articles", h.listArticles)
	r.Get("/search", h.searchEntries)
	r.Post("/basket/{id}", h.addToBasket)
	r.Get("/basket", h.currentBasket)

	return r
}
