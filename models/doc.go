// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Product: one catalog entry (name, price, category, image URL)
  - Mission: a budget tier; the fixed table is exposed via Missions()
  - CartKey: composite (category, name) cart key
  - CartLine: quantity plus the unit price snapshotted at add time
  - Cart: cart-key → line mapping with Set/Total/Lines
  - SummaryLine / SummaryData: render-ready cart views

# Cart Invariants

A line with quantity 0 never exists; Cart.Set deletes the entry instead.
Cart.Total recomputes Σ unit_price × quantity in integer arithmetic on
every call and is never cached. Cart keys are composite so categories
sharing a product name cannot collide, and entries persist across
category switches.

# Constants

Screen values:

	ScreenStart  = "start"
	ScreenShop   = "shop"
	ScreenResult = "result"

Catalog fallback category:

	CategoryFallback = "기타"

# Mission Table

Three fixed tiers, selected atomically (label and budget together):

	미션 1 - 기본 → 10000
	미션 2 - 중간 → 20000
	미션 3 - 도전 → 30000
*/
package models
