// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/classkit/mission-market/catalog"
	"github.com/classkit/mission-market/middleware"
	"github.com/classkit/mission-market/models"
)

type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// List handles GET /catalog
// The optional ?category= filter only changes what is displayed; it
// never mutates session state. An empty catalog reports guidance for
// supplying one.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	resp := models.CatalogResponse{
		Products:   h.cat.Filter(category),
		Categories: h.cat.Categories(),
		Empty:      h.cat.Empty(),
	}
	if resp.Empty {
		resp.Hint = "상품 목록이 비어 있습니다. " + h.cat.Path() + " 파일을 준비하거나 POST /catalog/bootstrap 으로 예시 목록을 만드세요."
	}
	if resp.Products == nil {
		resp.Products = []models.Product{}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Bootstrap handles POST /catalog/bootstrap
// One-shot creation of the fixed example catalog when none exists.
func (h *CatalogHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	err := h.cat.Bootstrap()
	if errors.Is(err, catalog.ErrNotEmpty) {
		middleware.ErrorResponse(w, http.StatusConflict, "Catalog is not empty")
		return
	}
	if err != nil {
		slog.Error("failed to bootstrap catalog", "path", h.cat.Path(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to write example catalog")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.BootstrapResponse{
		Created:  true,
		Products: h.cat.Products(),
	})
}
