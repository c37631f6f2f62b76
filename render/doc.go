// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render draws the result-screen summary as a PNG.

The image is a fixed 640px wide, black-on-white text layout: the budget
line, one line per cart entry ("name: qty x price = subtotal원"), the
total, and the reason text word-wrapped at 40 runes. Height grows with
the line count and is floored at 240px.

Text is drawn with golang.org/x/image/font. A TTF configured via
FONT_PATH is used when readable (Korean text needs a Hangul-capable
font); otherwise the built-in basicfont face is the fallback — font
trouble degrades the rendering, it never fails the summary screen.
*/
package render
