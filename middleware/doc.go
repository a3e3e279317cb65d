// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

WithLogging wraps a handler with structured request logging; each
request gets a uuid so start and completion lines correlate.

JSONResponse, ErrorResponse, and ParseJSONBody centralize JSON
encoding so handlers stay focused on their operation.

CORS allows cross-origin requests and answers preflights.
*/
package middleware
