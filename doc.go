// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mission Market API server.

Mission Market is a classroom exercise tool: a student picks a mission
(a budget tier), shops from a CSV product catalog within that budget,
writes a justification, and views a summary they can download as a PNG.

# Starting the Server

	go run main.go -c products.csv

Or with environment variables (a .env file is loaded when present):

	CATALOG_PATH=products.csv PORT=5022 go run main.go

# Configuration

Optional settings (nothing is required):

  - PORT (-p): server port (default: 5022)
  - CATALOG_PATH (-c): product CSV path (default: products.csv); a
    missing file means an empty catalog, not an error
  - FONT_PATH (-f): TTF for summary images; Korean text needs a
    Hangul-capable font, otherwise a built-in fallback face is used

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sessions, missions, shopping, results, catalog)
  - router: Route definitions using Go 1.22+ routing
  - session: Per-user state and the start/shop/result state machine
  - catalog: CSV product loading and the example-file bootstrap
  - render: Summary PNG rendering
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
