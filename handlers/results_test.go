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

// submittedSession builds a session on the result screen with the
// standard two-line cart.
func submittedSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()

	s := testutil.NewShoppingSession(t, store)
	if err := s.SetQuantity(models.Product{Name: "샌드위치", Price: 3000, Category: "간식"}, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.SetQuantity(models.Product{Name: "물병", Price: 1000, Category: "음료"}, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit("건강한 간식"); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSummary(t *testing.T) {
	store := session.NewStore()
	handler := NewResultHandler(store, render.New(""))

	s := submittedSession(t, store)

	req := testutil.MakeRequest("GET", "/sessions/"+s.ID+"/summary", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SummaryResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Budget != 10000 {
		t.Errorf("Budget = %d, want 10000", resp.Budget)
	}
	if resp.Total != 7000 {
		t.Errorf("Total = %d, want 7000", resp.Total)
	}
	if resp.OverBudget {
		t.Error("7000 of 10000 must not be over budget")
	}
	if resp.Reason != "건강한 간식" {
		t.Errorf("Reason = %q, want verbatim text", resp.Reason)
	}
	if resp.ExportHint == "" {
		t.Error("summary must always carry the export hint")
	}

	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(resp.Lines))
	}
	if resp.Lines[0].Name != "샌드위치" || resp.Lines[0].Subtotal != 6000 {
		t.Errorf("unexpected first line: %+v", resp.Lines[0])
	}
	if resp.Lines[1].Name != "물병" || resp.Lines[1].Subtotal != 1000 {
		t.Errorf("unexpected second line: %+v", resp.Lines[1])
	}
}

func TestSummaryGuards(t *testing.T) {
	store := session.NewStore()
	handler := NewResultHandler(store, render.New(""))

	tests := []struct {
		name           string
		setup          func(t *testing.T) string
		expectedStatus int
	}{
		{
			name: "not on result screen",
			setup: func(t *testing.T) string {
				return testutil.NewShoppingSession(t, store).ID
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "empty cart",
			setup: func(t *testing.T) string {
				s := testutil.NewShoppingSession(t, store)
				if err := s.Submit(""); err != nil {
					t.Fatal(err)
				}
				return s.ID
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown session",
			setup: func(t *testing.T) string {
				return "nope"
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.setup(t)
			req := testutil.MakeRequest("GET", "/sessions/"+id+"/summary", nil, nil)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()

			handler.Summary(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestExportImage(t *testing.T) {
	store := session.NewStore()
	handler := NewResultHandler(store, render.New(""))

	s := submittedSession(t, store)

	req := testutil.MakeRequest("GET", "/sessions/"+s.ID+"/summary.png", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()

	handler.ExportImage(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="result.png"` {
		t.Errorf("Content-Disposition = %q", cd)
	}

	if _, err := png.Decode(bytes.NewReader(w.Body.Bytes())); err != nil {
		t.Errorf("body is not a decodable PNG: %v", err)
	}
}

func TestExportImageEmptyCart(t *testing.T) {
	store := session.NewStore()
	handler := NewResultHandler(store, render.New(""))

	s := testutil.NewShoppingSession(t, store)
	if err := s.Submit(""); err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("GET", "/sessions/"+s.ID+"/summary.png", nil, nil)
	req.SetPathValue("id", s.ID)
	w := httptest.NewRecorder()

	handler.ExportImage(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestReturnToShop(t *testing.T) {
	store := session.NewStore()
	handler := NewResultHandler(store, render.New(""))

	tests := []struct {
		name           string
		setup          func(t *testing.T) string
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.SessionView)
	}{
		{
			name: "empty cart returns to shop",
			setup: func(t *testing.T) string {
				s := testutil.NewShoppingSession(t, store)
				if err := s.Submit(""); err != nil {
					t.Fatal(err)
				}
				return s.ID
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.SessionView) {
				if resp.Screen != models.ScreenShop {
					t.Errorf("Screen = %q, want shop", resp.Screen)
				}
				// Mission survives the detour.
				if resp.Mission == nil || resp.Budget != 10000 {
					t.Errorf("mission lost on return: %+v", resp)
				}
			},
		},
		{
			name: "non-empty cart conflicts",
			setup: func(t *testing.T) string {
				return submittedSession(t, store).ID
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "wrong screen conflicts",
			setup: func(t *testing.T) string {
				return testutil.NewShoppingSession(t, store).ID
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.setup(t)
			req := testutil.MakeRequest("POST", "/sessions/"+id+"/return", nil, nil)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()

			handler.ReturnToShop(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var resp models.SessionView
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}
