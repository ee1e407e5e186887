package handlers

import (
	"log/slog"
	"net/http"

	service "github.com/aaravmahajanofficial/catalog-manager/internal/services"
	"github.com/aaravmahajanofficial/catalog-manager/internal/web"
)

type HomeHandler struct {
	catalogService service.CatalogService
	renderer       *web.Renderer
}

func NewHomeHandler(catalogService service.CatalogService, renderer *web.Renderer) *HomeHandler {
	return &HomeHandler{catalogService: catalogService, renderer: renderer}
}

// Index is the catalog landing page with the collection counts.
func (h *HomeHandler) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := h.catalogService.Overview(r.Context())
		if err != nil {
			slog.Error("Failed to fetch catalog overview", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "index", web.IndexData{
			Title:    "Catalog Manager",
			Overview: overview,
		})
	}
}
