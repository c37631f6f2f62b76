// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers.

Routes use Go 1.22+ method patterns on http.ServeMux. NewRouter takes
the catalog, the session store, and the summary renderer and builds the
full route table; every route except the health check and root banner is
wrapped in request logging.
*/
package router
