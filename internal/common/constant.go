// Package common contains constants shared by the transport and CLI layers.
package common

// RequestIDHeaderName carries the per-request correlation id on outbound
// HTTP requests. The same id is attached to log entries.
const RequestIDHeaderName = "X-Request-ID"

// DefaultServerURL is the local development backend.
const DefaultServerURL = "http://localhost:5050"

// Backend routes, relative to the server base URL.
const (
	UsersPath      = "/api/users"
	CreateUserPath = "/api/users/add"
)
