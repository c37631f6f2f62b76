// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: logs request start/completion with duration
  - CORS: allows cross-origin requests from a browser frontend

# Helpers

  - JSONResponse: writes a JSON response with status code
  - ErrorResponse: writes a standard ErrorResponse body
  - ParseJSONBody: decodes a JSON request body

All handlers route their failure paths through ErrorResponse so clients
always receive the same error shape.
*/
package middleware
