// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type SelectMissionRequest struct {
	Label string `json:"label"`
}

type SetQuantityRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type SubmitRequest struct {
	Reason string `json:"reason"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string    `json:"session_id"`
	Screen    string    `json:"screen"`
	Missions  []Mission `json:"missions"`
}

// SessionView is the full render-ready state of one session.
type SessionView struct {
	SessionID  string        `json:"session_id"`
	Screen     string        `json:"screen"`
	Mission    *Mission      `json:"mission,omitempty"`
	Budget     int           `json:"budget"`
	Cart       []SummaryLine `json:"cart"`
	Total      int           `json:"total"`
	OverBudget bool          `json:"over_budget"`
	Reason     string        `json:"reason"`
	// Warning is set when the result screen is reached with an empty
	// cart; the only action then is returning to the shop.
	Warning string `json:"warning,omitempty"`
}

type MissionListResponse struct {
	Missions []Mission `json:"missions"`
}

type CatalogResponse struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
	Empty      bool      `json:"empty"`
	Hint       string    `json:"hint,omitempty"`
}

type BootstrapResponse struct {
	Created  bool      `json:"created"`
	Products []Product `json:"products"`
}

type SummaryResponse struct {
	Budget     int           `json:"budget"`
	Lines      []SummaryLine `json:"lines"`
	Total      int           `json:"total"`
	OverBudget bool          `json:"over_budget"`
	Reason     string        `json:"reason"`
	ExportHint string        `json:"export_hint"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
