// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds per-user exercise state and its screen state
machine.

# Screens

Three screens, no terminal state:

	start → (SelectMission) → shop
	shop  → (Submit)        → result
	shop  → (SetQuantity)   → shop   (self-loop; qty 0 removes the line)
	result → (ReturnToShop) → shop   (only exit when the cart is empty)
	any   → (Reset)         → start  (full reset to fresh defaults)

Each transition method validates its guard and returns a sentinel error
(ErrWrongScreen, ErrUnknownMission, ErrNegativeQty, ErrCartNotEmpty) on
violation. A corrupted screen value is repaired by resetting to start
rather than failing.

# Store

Store is a mutex-guarded in-memory map from session ID (uuid) to
Session. State is deliberately non-durable: one session lives exactly as
long as one interactive run of the exercise. Each session also carries
its own mutex so a misbehaving client issuing parallel actions cannot
corrupt the cart; the intended model is still one action at a time.
*/
package session
