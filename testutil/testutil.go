// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/classkit/mission-market/catalog"
	"github.com/classkit/mission-market/models"
	"github.com/classkit/mission-market/session"
)

// DefaultCatalogCSV is a small, well-formed catalog used by most tests.
const DefaultCatalogCSV = `name,price,category,image_url
샌드위치,3000,간식,
물병,1000,음료,
공책,2000,기타,
연필,500,문구,
`

// WriteCatalogFile writes CSV contents to a temp file and returns its path.
func WriteCatalogFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}
	return path
}

// OpenTestCatalog opens a catalog backed by a temp file with the given
// contents. An empty string yields a catalog whose file is absent.
func OpenTestCatalog(t *testing.T, contents string) *catalog.Catalog {
	t.Helper()

	if contents == "" {
		return catalog.Open(filepath.Join(t.TempDir(), "products.csv"))
	}
	return catalog.Open(WriteCatalogFile(t, contents))
}

// NewShoppingSession creates a session already advanced to the shop
// screen with the first mission selected.
func NewShoppingSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()

	s := store.Create()
	if err := s.SelectMission(models.Missions()[0].Label); err != nil {
		t.Fatalf("Failed to select mission: %v", err)
	}
	return s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
