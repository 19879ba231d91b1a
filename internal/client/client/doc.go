// Package client talks to the bookshop HTTP API.
//
// # Overview
//
// Client is the API contract: catalog lookups, registration and login, and
// review mutations. HTTPClient implements it over JSON/HTTP and keeps the
// session token returned by Login for the authenticated review calls.
//
// # Error Handling
//
// A request that never reaches the server wraps ErrUnavailable. A non-2xx
// answer is an *APIError carrying the status code and the server's message;
// it unwraps to ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound,
// ErrConflict or ErrServer so callers can match with errors.Is.
//
// HTTPClient is safe for concurrent use.
package client
