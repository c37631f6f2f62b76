package models

import "sort"

// Screen constants
const (
	ScreenStart  = "start"
	ScreenShop   = "shop"
	ScreenResult = "result"
)

// CategoryFallback is substituted when a catalog row has no category.
const CategoryFallback = "기타"

// Mission is a named budget tier. Label and Budget are set together and
// must never disagree.
type Mission struct {
	Label  string `json:"label"`
	Budget int    `json:"budget"`
}

// missionTable is the fixed tier list in display order.
var missionTable = []Mission{
	{Label: "미션 1 - 기본", Budget: 10000},
	{Label: "미션 2 - 중간", Budget: 20000},
	{Label: "미션 3 - 도전", Budget: 30000},
}

// Missions returns the fixed mission table in display order.
func Missions() []Mission {
	out := make([]Mission, len(missionTable))
	copy(out, missionTable)
	return out
}

// MissionByLabel looks up a mission by its exact label.
func MissionByLabel(label string) (Mission, bool) {
	for _, m := range missionTable {
		if m.Label == label {
			return m, true
		}
	}
	return Mission{}, false
}

// Product is one catalog entry. Immutable once loaded.
type Product struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	ImageURL string `json:"image_url,omitempty"`
}

// CartKey identifies a cart line. The key is composite so that two
// categories sharing a product name never collide.
type CartKey struct {
	Category string
	Name     string
}

// CartLine holds the quantity and the unit price snapshotted when the
// product was added. The price is not re-read from the catalog later.
type CartLine struct {
	UnitPrice int
	Quantity  int
}

// Subtotal is UnitPrice × Quantity in exact integer arithmetic.
func (l CartLine) Subtotal() int {
	return l.UnitPrice * l.Quantity
}

// Cart maps cart keys to lines. A line with quantity 0 never exists:
// Set removes the entry instead.
type Cart map[CartKey]CartLine

// Set upserts a line for key. Quantity 0 removes the entry entirely.
// Negative quantities are the caller's responsibility to reject.
func (c Cart) Set(key CartKey, unitPrice, quantity int) {
	if quantity == 0 {
		delete(c, key)
		return
	}
	c[key] = CartLine{UnitPrice: unitPrice, Quantity: quantity}
}

// Total recomputes Σ unit_price × quantity on every call. Never cached.
func (c Cart) Total() int {
	total := 0
	for _, line := range c {
		total += line.Subtotal()
	}
	return total
}

// SummaryLine is one rendered cart entry.
type SummaryLine struct {
	Category  string `json:"category"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int    `json:"subtotal"`
}

// Lines returns the cart in deterministic order (category, then name)
// for rendering.
func (c Cart) Lines() []SummaryLine {
	lines := make([]SummaryLine, 0, len(c))
	for key, line := range c {
		lines = append(lines, SummaryLine{
			Category:  key.Category,
			Name:      key.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Category != lines[j].Category {
			return lines[i].Category < lines[j].Category
		}
		return lines[i].Name < lines[j].Name
	})
	return lines
}

// SummaryData is everything the summary renderer needs.
type SummaryData struct {
	Budget int
	Lines  []SummaryLine
	Total  int
	Reason string
}
