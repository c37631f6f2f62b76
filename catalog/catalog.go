// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/classkit/mission-market/models"
)

var ErrNotEmpty = errors.New("catalog is not empty")

// exampleProducts is the fixed three-item catalog written by Bootstrap.
var exampleProducts = []models.Product{
	{Name: "샌드위치", Price: 3000, Category: "간식"},
	{Name: "물병", Price: 1000, Category: "음료"},
	{Name: "공책", Price: 2000, Category: models.CategoryFallback},
}

// Load reads the product CSV at path. A missing or unreadable file yields
// an empty catalog, never an error: the tool must start without one.
//
// Columns are mapped by header name (name, price, category, image_url).
// Malformed fields are defaulted individually — an unparseable price
// becomes 0, a missing category becomes 기타, a missing image_url becomes
// empty — and rows are never dropped for parse errors.
func Load(path string) []models.Product {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("catalog file unavailable, starting empty", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // short rows are padded, not rejected
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		slog.Warn("catalog file has no header, starting empty", "path", path, "error", err)
		return nil
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var products []models.Product
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A ragged or badly quoted line loses only itself, not
			// the rest of the file.
			slog.Warn("skipping unreadable catalog line", "path", path, "error", err)
			continue
		}
		products = append(products, normalize(record, col))
	}

	slog.Info("catalog loaded", "path", path, "products", len(products))
	return products
}

// normalize builds a Product from one record, defaulting each malformed
// field independently.
func normalize(record []string, col map[string]int) models.Product {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	p := models.Product{
		Name:     field("name"),
		Category: field("category"),
		ImageURL: field("image_url"),
	}
	if p.Category == "" {
		p.Category = models.CategoryFallback
	}
	p.Price = parsePrice(field("price"))
	return p
}

// parsePrice coerces a price field to a non-negative integer. Anything
// unparseable is 0; fractional values are truncated.
func parsePrice(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 {
			return 0
		}
		return int(f)
	}
	return 0
}

// Catalog is a reloadable handle on the product list. Reads are shared;
// Reload and Bootstrap take the write lock.
type Catalog struct {
	path string

	mu       sync.RWMutex
	products []models.Product
}

// Open loads the catalog at path. The handle is valid even when the file
// is absent (empty catalog).
func Open(path string) *Catalog {
	return &Catalog{path: path, products: Load(path)}
}

// Path returns the configured source location.
func (c *Catalog) Path() string {
	return c.path
}

// Products returns a copy of the loaded product list.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Empty reports whether the catalog has no products.
func (c *Catalog) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products) == 0
}

// Categories returns category labels in first-seen order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Filter returns products in the given category; an empty category
// returns everything. Filtering never mutates state — it only changes
// what is displayed.
func (c *Catalog) Filter(category string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if category == "" {
		out := make([]models.Product, len(c.products))
		copy(out, c.products)
		return out
	}
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FindProduct looks up a product by category and name.
func (c *Catalog) FindProduct(category, name string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.Category == category && p.Name == name {
			return p, true
		}
	}
	return models.Product{}, false
}

// Reload re-reads the source file.
func (c *Catalog) Reload() {
	products := Load(c.path)
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
}

// Bootstrap writes the fixed example catalog to the source location and
// reloads. It refuses when products are already loaded: this is a
// one-shot convenience for an empty catalog, not part of normal load
// semantics. The file write itself is last-writer-wins across processes.
func (c *Catalog) Bootstrap() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.products) > 0 {
		return ErrNotEmpty
	}

	f, err := os.Create(c.path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	records := [][]string{{"name", "price", "category", "image_url"}}
	for _, p := range exampleProducts {
		records = append(records, []string{p.Name, strconv.Itoa(p.Price), p.Category, p.ImageURL})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	c.products = Load(c.path)
	slog.Info("example catalog written", "path", c.path, "products", len(c.products))
	return nil
}
