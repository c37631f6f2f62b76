// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog loads the product list from a CSV file.

# File Format

Four columns mapped by header name:

	name,price,category,image_url
	샌드위치,3000,간식,
	물병,1000,음료,

# Degradation Rules

The loader never surfaces an error to the caller:

  - missing or unreadable file → empty catalog
  - price not parseable as a number → 0
  - missing category → 기타
  - missing image_url → empty (no image shown)

Malformed fields are defaulted one at a time; a bad price does not lose
the rest of its row.

# Bootstrap

When the catalog is empty, Bootstrap writes a fixed three-item example
file to the configured path and reloads. It refuses on a non-empty
catalog. Concurrent bootstraps from separate processes are
last-writer-wins on the file; at this tool's scale that race is accepted
and the contents are identical anyway.
*/
package catalog
