package api

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// listArticles returns every article in the catalog.
func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.catalog.Articles(r.Context())
	if err != nil {
		zctx.From(r.Context()).Error("list articles failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, a := range articles {
				e.Obj(func(e *jx.Encoder) {
					e.Field("id", func(e *jx.Encoder) { e.Str(a.ID().String()) })
					e.Field("title", func(e *jx.Encoder) { e.Str(a.Title()) })
					e.Field("text", func(e *jx.Encoder) { e.Str(a.Text()) })
				})
			}
		})
	})
}
