// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/classkit/mission-market/models"
	"github.com/classkit/mission-market/render"
	"github.com/classkit/mission-market/session"
	"github.com/classkit/mission-market/testutil"
)

// TestFullExerciseWorkflow tests the complete end-to-end flow:
// 1. Create a session
// 2. Select 미션 1 - 기본 (budget 10000)
// 3. Add 샌드위치 (3000) x2 and 물병 (1000) x1
// 4. Submit the reason 건강한 간식
// 5. Verify the summary (total 7000, lines, verbatim reason, budget)
// 6. Export the summary PNG
// 7. Reset back to a fresh session
func TestFullExerciseWorkflow(t *testing.T) {
	cat := testutil.OpenTestCatalog(t, testutil.DefaultCatalogCSV)
	store := session.NewStore()

	sessionHandler := NewSessionHandler(store)
	missionHandler := NewMissionHandler(store)
	shoppingHandler := NewShoppingHandler(store, cat)
	resultHandler := NewResultHandler(store, render.New(""))

	// Step 1: Create a session
	w := httptest.NewRecorder()
	sessionHandler.Create(w, testutil.MakeRequest("POST", "/sessions", nil, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create session failed: %d - %s", w.Code, w.Body.String())
	}
	var created models.CreateSessionResponse
	testutil.AssertJSON(t, w, &created)
	id := created.SessionID
	if id == "" {
		t.Fatal("Step 1 - Missing session_id")
	}
	t.Logf("Step 1 - Created session: %s", id)

	// Step 2: Select the basic mission
	w = httptest.NewRecorder()
	req := testutil.MakeRequest("POST", "/sessions/"+id+"/mission",
		models.SelectMissionRequest{Label: "미션 1 - 기본"}, nil)
	req.SetPathValue("id", id)
	missionHandler.Select(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Select mission failed: %d - %s", w.Code, w.Body.String())
	}
	var view models.SessionView
	testutil.AssertJSON(t, w, &view)
	if view.Budget != 10000 {
		t.Fatalf("Step 2 - Budget = %d, want 10000", view.Budget)
	}
	t.Log("Step 2 - Mission selected, budget 10000")

	// Step 3: Shop
	for _, item := range []models.SetQuantityRequest{
		{Category: "간식", Name: "샌드위치", Quantity: 2},
		{Category: "음료", Name: "물병", Quantity: 1},
	} {
		w = httptest.NewRecorder()
		req = testutil.MakeRequest("PUT", "/sessions/"+id+"/cart", item, nil)
		req.SetPathValue("id", id)
		shoppingHandler.SetQuantity(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 3 - SetQuantity(%s) failed: %d - %s", item.Name, w.Code, w.Body.String())
		}
	}
	t.Log("Step 3 - Cart filled")

	// Step 4: Submit with a reason
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("POST", "/sessions/"+id+"/submit",
		models.SubmitRequest{Reason: "건강한 간식"}, nil)
	req.SetPathValue("id", id)
	shoppingHandler.Submit(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Submit failed: %d - %s", w.Code, w.Body.String())
	}
	t.Log("Step 4 - Submitted")

	// Step 5: Verify the summary
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("GET", "/sessions/"+id+"/summary", nil, nil)
	req.SetPathValue("id", id)
	resultHandler.Summary(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Summary failed: %d - %s", w.Code, w.Body.String())
	}
	var summary models.SummaryResponse
	testutil.AssertJSON(t, w, &summary)

	if summary.Total != 7000 {
		t.Errorf("Step 5 - Total = %d, want 7000", summary.Total)
	}
	if summary.Budget != 10000 {
		t.Errorf("Step 5 - Budget = %d, want 10000", summary.Budget)
	}
	if summary.Reason != "건강한 간식" {
		t.Errorf("Step 5 - Reason = %q, want verbatim reproduction", summary.Reason)
	}
	if len(summary.Lines) != 2 {
		t.Fatalf("Step 5 - expected 2 lines, got %d", len(summary.Lines))
	}
	if l := summary.Lines[0]; l.Name != "샌드위치" || l.Quantity != 2 || l.UnitPrice != 3000 || l.Subtotal != 6000 {
		t.Errorf("Step 5 - unexpected line: %+v", l)
	}
	if l := summary.Lines[1]; l.Name != "물병" || l.Quantity != 1 || l.UnitPrice != 1000 || l.Subtotal != 1000 {
		t.Errorf("Step 5 - unexpected line: %+v", l)
	}
	t.Log("Step 5 - Summary verified")

	// Step 6: Export the PNG
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("GET", "/sessions/"+id+"/summary.png", nil, nil)
	req.SetPathValue("id", id)
	resultHandler.ExportImage(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Export failed: %d", w.Code)
	}
	if w.Header().Get("Content-Type") == "image/png" {
		if _, err := png.Decode(bytes.NewReader(w.Body.Bytes())); err != nil {
			t.Errorf("Step 6 - invalid PNG: %v", err)
		}
	}
	t.Log("Step 6 - Image exported")

	// Step 7: Reset back to start
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("POST", "/sessions/"+id+"/reset", nil, nil)
	req.SetPathValue("id", id)
	sessionHandler.Reset(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Reset failed: %d", w.Code)
	}
	testutil.AssertJSON(t, w, &view)
	if view.Screen != models.ScreenStart || view.Mission != nil || view.Budget != 0 ||
		len(view.Cart) != 0 || view.Reason != "" {
		t.Errorf("Step 7 - reset view not fresh default: %+v", view)
	}
	t.Log("Step 7 - Reset verified")
}

// TestEmptyCartDetour covers the guarded warning state: submitting an
// empty cart lands on a result screen whose only exit is back to the
// shop.
func TestEmptyCartDetour(t *testing.T) {
	cat := testutil.OpenTestCatalog(t, testutil.DefaultCatalogCSV)
	store := session.NewStore()

	shoppingHandler := NewShoppingHandler(store, cat)
	resultHandler := NewResultHandler(store, render.New(""))

	s := testutil.NewShoppingSession(t, store)

	// Submit with nothing in the cart.
	w := httptest.NewRecorder()
	req := testutil.MakeRequest("POST", "/sessions/"+s.ID+"/submit", models.SubmitRequest{}, nil)
	req.SetPathValue("id", s.ID)
	shoppingHandler.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.SessionView
	testutil.AssertJSON(t, w, &view)
	if view.Warning == "" {
		t.Error("empty-cart result must warn")
	}

	// The summary refuses.
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("GET", "/sessions/"+s.ID+"/summary", nil, nil)
	req.SetPathValue("id", s.ID)
	resultHandler.Summary(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// The single available action routes back to the shop.
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("POST", "/sessions/"+s.ID+"/return", nil, nil)
	req.SetPathValue("id", s.ID)
	resultHandler.ReturnToShop(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &view)
	if view.Screen != models.ScreenShop {
		t.Errorf("Screen = %q, want shop", view.Screen)
	}
}
