// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags override environment variables, which override defaults:

 1. CLI flags (-p, -c, -f)
 2. Environment variables (PORT, CATALOG_PATH, FONT_PATH), including
    values from a .env file loaded by LoadEnv
 3. Defaults (port 5022, catalog products.csv, no font)

# Settings

  - Port (-p / PORT): HTTP listen port
  - CatalogPath (-c / CATALOG_PATH): product CSV location; a missing
    file is not an error, the catalog starts empty
  - FontPath (-f / FONT_PATH): optional TTF for summary images; absent
    means the built-in fallback face

No setting is required, so ParseFlags only fails on malformed values.
*/
package cliparse
