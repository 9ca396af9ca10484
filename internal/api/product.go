package api

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/skypro/skyshop/internal/domain/product"
)

// listProducts returns every product in the catalog.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Products(r.Context())
	if err != nil {
		zctx.From(r.Context()).Error("list products failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, p := range products {
				encodeProduct(e, p)
			}
		})
	})
}

// encodeProduct writes one product object. Price is always the derived
// current price of the variant.
func encodeProduct(e *jx.Encoder, p product.Product) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(p.ID().String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(p.Name()) })
		e.Field("price", func(e *jx.Encoder) { e.Int(p.Price()) })
		e.Field("special", func(e *jx.Encoder) { e.Bool(p.Special()) })
	})
}
