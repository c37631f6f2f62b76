// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"sync"

	"github.com/classkit/mission-market/models"
)

var (
	ErrUnknownMission  = errors.New("unknown mission label")
	ErrWrongScreen     = errors.New("action not available on this screen")
	ErrNegativeQty     = errors.New("quantity must be non-negative")
	ErrCartNotEmpty    = errors.New("cart is not empty")
	ErrSessionNotFound = errors.New("session not found")
)

// Session holds the full per-user state of one exercise run: the current
// screen, the chosen mission and its budget, the cart, and the
// justification text. All mutation goes through the transition methods.
type Session struct {
	mu sync.Mutex

	ID      string
	Screen  string
	Mission *models.Mission
	Budget  int
	Cart    models.Cart
	Reason  string
}

// SelectMission confirms a mission on the start screen. The label and its
// budget are set together from the fixed mission table; they can never
// disagree. Transition: start → shop.
func (s *Session) SelectMission(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screenLocked() != models.ScreenStart {
		return ErrWrongScreen
	}
	m, ok := models.MissionByLabel(label)
	if !ok {
		return ErrUnknownMission
	}
	s.Mission = &m
	s.Budget = m.Budget
	s.Screen = models.ScreenShop
	return nil
}

// SetQuantity records a quantity change for a product while shopping.
// Quantity 0 removes the line; a positive quantity upserts it with a
// fresh snapshot of the product's current price. The screen does not
// change.
func (s *Session) SetQuantity(p models.Product, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screenLocked() != models.ScreenShop {
		return ErrWrongScreen
	}
	if qty < 0 {
		return ErrNegativeQty
	}
	s.Cart.Set(models.CartKey{Category: p.Category, Name: p.Name}, p.Price, qty)
	return nil
}

// Submit freezes the justification text and moves to the result screen.
// The cart may be empty; the result screen guards that case itself.
// Transition: shop → result.
func (s *Session) Submit(reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screenLocked() != models.ScreenShop {
		return ErrWrongScreen
	}
	s.Reason = reason
	s.Screen = models.ScreenResult
	return nil
}

// ReturnToShop is the single exit from an empty-cart result screen.
// Transition: result → shop, only when the cart is empty.
func (s *Session) ReturnToShop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screenLocked() != models.ScreenResult {
		return ErrWrongScreen
	}
	if len(s.Cart) > 0 {
		return ErrCartNotEmpty
	}
	s.Screen = models.ScreenShop
	return nil
}

// Reset restores the fresh-session defaults from any screen: screen
// start, no mission, budget 0, empty cart, empty reason.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.Screen = models.ScreenStart
	s.Mission = nil
	s.Budget = 0
	s.Cart = models.Cart{}
	s.Reason = ""
}

// CurrentScreen returns the screen, repairing a corrupted value by
// resetting to start rather than failing.
func (s *Session) CurrentScreen() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screenLocked()
}

// screenLocked validates the screen value under the held lock. An
// unknown value is a recoverable fault: the session resets to start.
func (s *Session) screenLocked() string {
	switch s.Screen {
	case models.ScreenStart, models.ScreenShop, models.ScreenResult:
		return s.Screen
	}
	s.reset()
	return s.Screen
}

// View renders the session into its API representation.
func (s *Session) View() models.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := models.SessionView{
		SessionID: s.ID,
		Screen:    s.screenLocked(),
		Mission:   s.Mission,
		Budget:    s.Budget,
		Cart:      s.Cart.Lines(),
		Total:     s.Cart.Total(),
		Reason:    s.Reason,
	}
	view.OverBudget = view.Total > view.Budget && view.Budget > 0
	if view.Screen == models.ScreenResult && len(s.Cart) == 0 {
		view.Warning = "장바구니가 비어 있습니다. 쇼핑 화면으로 돌아가세요."
	}
	return view
}

// Summary snapshots the render-ready cart data for the result screen.
func (s *Session) Summary() models.SummaryData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SummaryData{
		Budget: s.Budget,
		Lines:  s.Cart.Lines(),
		Total:  s.Cart.Total(),
		Reason: s.Reason,
	}
}

// CartLen reports the number of cart lines.
func (s *Session) CartLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Cart)
}
