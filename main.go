// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/classkit/mission-market/catalog"
	"github.com/classkit/mission-market/cliparse"
	"github.com/classkit/mission-market/render"
	"github.com/classkit/mission-market/router"
	"github.com/classkit/mission-market/session"
)

func main() {
	// Load .env before flags so env fallbacks see it
	cliparse.LoadEnv()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the product catalog. A missing file is fine; the tool starts
	// with an empty catalog and offers the bootstrap endpoint.
	cat := catalog.Open(cfg.CatalogPath)
	if cat.Empty() {
		slog.Warn("catalog is empty",
			"path", cfg.CatalogPath,
			"hint", "supply a CSV with name,price,category,image_url or POST /catalog/bootstrap")
	}

	store := session.NewStore()
	renderer := render.New(cfg.FontPath)

	// Create router
	mux := router.NewRouter(cat, store, renderer)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
