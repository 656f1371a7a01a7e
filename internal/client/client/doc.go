// Package client talks to the user-directory backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     three backend operations: CreateUser, ListUsers and DeleteUser.
//  2. A concrete REST implementation (see HTTPClient) that builds JSON
//     requests against an injected base URL, tags each request with an
//     X-Request-ID and maps failures to sentinel errors.
//  3. ExtractMessage, which turns a rejection body into a human-readable
//     message.
//
// # Error Handling
//
// No response at all (dial failure, timeout, cancelled context) is reported
// as ErrUnavailable. A non-2xx response is a *RejectedError carrying the
// status and the extracted message. A 2xx list response of unknown shape is
// ErrMalformedResponse. Match with errors.Is / errors.As.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every operation takes a
// context.Context; cancellation aborts the in-flight request.
package client
