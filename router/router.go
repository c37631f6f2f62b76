// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/classkit/mission-market/catalog"
	"github.com/classkit/mission-market/handlers"
	"github.com/classkit/mission-market/middleware"
	"github.com/classkit/mission-market/render"
	"github.com/classkit/mission-market/session"
)

func NewRouter(cat *catalog.Catalog, store *session.Store, renderer *render.Renderer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store)
	missionHandler := handlers.NewMissionHandler(store)
	shoppingHandler := handlers.NewShoppingHandler(store, cat)
	resultHandler := handlers.NewResultHandler(store, renderer)
	catalogHandler := handlers.NewCatalogHandler(cat)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Mission table
	mux.HandleFunc("GET /missions", middleware.WithLogging(missionHandler.List))

	// Catalog
	mux.HandleFunc("GET /catalog", middleware.WithLogging(catalogHandler.List))
	mux.HandleFunc("POST /catalog/bootstrap", middleware.WithLogging(catalogHandler.Bootstrap))

	// Session lifecycle
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Create))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("POST /sessions/{id}/reset", middleware.WithLogging(sessionHandler.Reset))

	// Screen transitions
	mux.HandleFunc("POST /sessions/{id}/mission", middleware.WithLogging(missionHandler.Select))
	mux.HandleFunc("PUT /sessions/{id}/cart", middleware.WithLogging(shoppingHandler.SetQuantity))
	mux.HandleFunc("POST /sessions/{id}/submit", middleware.WithLogging(shoppingHandler.Submit))
	mux.HandleFunc("POST /sessions/{id}/return", middleware.WithLogging(resultHandler.ReturnToShop))

	// Summary
	mux.HandleFunc("GET /sessions/{id}/summary", middleware.WithLogging(resultHandler.Summary))
	mux.HandleFunc("GET /sessions/{id}/summary.png", middleware.WithLogging(resultHandler.ExportImage))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mission-market API v1"))
	})

	return mux
}
