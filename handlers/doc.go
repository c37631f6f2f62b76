// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Mission Market
API.

# Handler Types

Each handler is a struct with its dependencies injected via a
constructor:

  - SessionHandler: session lifecycle (create, view, reset)
  - MissionHandler: mission table and mission confirmation
  - ShoppingHandler: cart quantity edits and submit
  - ResultHandler: summary, PNG export, empty-cart return
  - CatalogHandler: catalog listing, category filter, bootstrap

# Screen Flow

Sessions move through three screens: start → shop → result

	POST /sessions               → Create (screen=start)
	POST /sessions/{id}/mission  → Select (start → shop)
	PUT  /sessions/{id}/cart     → SetQuantity (shop self-loop)
	POST /sessions/{id}/submit   → Submit (shop → result)
	POST /sessions/{id}/return   → ReturnToShop (empty-cart result → shop)
	POST /sessions/{id}/reset    → Reset (any → start, full reset)

Actions fired on the wrong screen answer 409; the state machine itself
lives in the session package, handlers only translate its sentinel
errors into status codes.

# Summary and Export

	GET /sessions/{id}/summary     → textual summary (409 on empty cart)
	GET /sessions/{id}/summary.png → PNG download (filename result.png)

A rendering failure on export degrades to a plain-text print/screenshot
hint with status 200; the summary screen keeps working either way.
*/
package handlers
