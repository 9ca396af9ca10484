package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skypro/skyshop/internal/domain/basket"
	"github.com/skypro/skyshop/internal/domain/product"
)

// addToBasket adds one unit of the product to the session basket. An
// unknown id fails with 404 and leaves the basket unchanged.
func (h *Handler) addToBasket(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	b := h.sessions.Basket(w, r)
	if err := h.basketSvc.Add(r.Context(), b, id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		zctx.From(r.Context()).Error("add to basket failed",
			zap.String("product_id", id.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// currentBasket returns the priced snapshot of the session basket. A
// consistency failure between basket and catalog is a server fault, not
// a user-facing not-found.
func (h *Handler) currentBasket(w http.ResponseWriter, r *http.Request) {
	b := h.sessions.Basket(w, r)

	view, err := h.basketSvc.Snapshot(r.Context(), b)
	if err != nil {
		var cerr *basket.ConsistencyError
		if errors.As(err, &cerr) {
			zctx.From(r.Context()).Error("basket diverged from catalog",
				zap.String("product_id", cerr.ProductID.String()))
		} else {
			zctx.From(r.Context()).Error("basket snapshot failed", zap.Error(err))
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, item := range view.Items() {
						e.Obj(func(e *jx.Encoder) {
							e.Field("product", func(e *jx.Encoder) { encodeProduct(e, item.Product) })
							e.Field("quantity", func(e *jx.Encoder) { e.Int(item.Quantity) })
						})
					}
				})
			})
			e.Field("total", func(e *jx.Encoder) { e.Int(view.Total()) })
		})
	})
}
