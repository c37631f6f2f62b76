// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/classkit/mission-market/models"
)

const (
	imageWidth = 640
	margin     = 20
	minHeight  = 240

	// WrapWidth is the fixed column width for the reason text.
	WrapWidth = 40

	fontSize = 16
	fontDPI  = 72
)

// Renderer turns a summary into a fixed-width PNG.
type Renderer struct {
	fontPath string
}

// New returns a renderer. fontPath may be empty or point at a missing
// file; rendering then falls back to the built-in face.
func New(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

// face loads the configured TTF, falling back to the built-in bitmap
// face when the font is absent or unreadable. Font trouble is a
// degradation, never an error.
func (r *Renderer) face() font.Face {
	if r.fontPath == "" {
		return basicfont.Face7x13
	}
	b, err := os.ReadFile(r.fontPath)
	if err != nil {
		slog.Warn("summary font unavailable, using fallback face", "path", r.fontPath, "error", err)
		return basicfont.Face7x13
	}
	ft, err := opentype.Parse(b)
	if err != nil {
		slog.Warn("summary font unparseable, using fallback face", "path", r.fontPath, "error", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		slog.Warn("summary font face creation failed, using fallback face", "path", r.fontPath, "error", err)
		return basicfont.Face7x13
	}
	return face
}

// Summary renders budget, cart lines, total, and the wrapped reason text
// into a PNG. Image height grows with the line count, floored at a
// minimum so short carts don't produce a degenerate image.
func (r *Renderer) Summary(data models.SummaryData) ([]byte, error) {
	lines := summaryLines(data)
	face := r.face()

	metrics := face.Metrics()
	lineHeight := (metrics.Height + fixed.I(4)).Ceil()
	ascent := metrics.Ascent.Ceil()

	height := 2*margin + lineHeight*len(lines)
	if height < minHeight {
		height = minHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, imageWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	y := margin + ascent
	for _, line := range lines {
		d.Dot = fixed.P(margin, y)
		d.DrawString(line)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode summary image: %w", err)
	}
	return buf.Bytes(), nil
}

// summaryLines lays out the text content in display order.
func summaryLines(data models.SummaryData) []string {
	lines := []string{
		fmt.Sprintf("예산: %d원", data.Budget),
		"",
	}
	for _, l := range data.Lines {
		lines = append(lines, fmt.Sprintf("%s: %d x %d = %d원", l.Name, l.Quantity, l.UnitPrice, l.Subtotal))
	}
	lines = append(lines,
		fmt.Sprintf("총 금액: %d원", data.Total),
		"",
		"이유:",
	)
	lines = append(lines, Wrap(data.Reason, WrapWidth)...)
	return lines
}
