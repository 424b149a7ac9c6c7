package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/application/catalog"
	"github.com/carbase/carbase/internal/domain"
)

// CatalogHandler handles the read-only brand/model catalog endpoints.
type CatalogHandler struct {
	brands *catalog.ListBrands
	models *catalog.ListModels
	log    zerolog.Logger
}

func NewCatalogHandler(brands *catalog.ListBrands, models *catalog.ListModels, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{brands: brands, models: models, log: log}
}

// BrandResponse is the JSON shape of a brand.
type BrandResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ModelResponse is the JSON shape of a model.
type ModelResponse struct {
	ID      string `json:"id"`
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

// ListBrands returns every brand.
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brands.Execute(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list brands failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	items := make([]BrandResponse, 0, len(brands))
	for _, b := range brands {
		items = append(items, BrandResponse{ID: b.ID.String(), Name: b.Name})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"brands": items})
}

// ListModels returns the models of the brand in the path.
func (h *CatalogHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		writeErr(w, http.StatusBadRequest, "", "invalid brand id")
		return
	}
	models, err := h.models.Execute(r.Context(), domain.NewBrandID(id))
	if err != nil {
		h.log.Error().Err(err).Msg("list models failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	items := make([]ModelResponse, 0, len(models))
	for _, m := range models {
		items = append(items, ModelResponse{ID: m.ID.String(), BrandID: m.BrandID.String(), Name: m.Name})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": items})
}
