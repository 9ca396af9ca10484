package api

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// searchEntries runs the text search over products and articles. A
// missing or blank pattern returns every entry.
func (h *Handler) searchEntries(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")

	results, err := h.searchSvc.Search(r.Context(), pattern)
	if err != nil {
		zctx.From(r.Context()).Error("search failed",
			zap.String("pattern", pattern), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, res := range results {
				e.Obj(func(e *jx.Encoder) {
					e.Field("id", func(e *jx.Encoder) { e.Str(res.ID.String()) })
					e.Field("name", func(e *jx.Encoder) { e.Str(res.Name) })
					e.Field("contentType", func(e *jx.Encoder) { e.Str(res.ContentType) })
				})
			}
		})
	})
}
