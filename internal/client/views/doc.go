// Package views holds the state and behaviour of the client's two screens,
// independent of how they are drawn.
//
// AddUserForm collects name, email and phone, validates presence locally and
// submits a creation request, exposing the outcome as inline error or success
// text. UserList keeps a snapshot of the directory that is re-fetched on every
// focus, filters it by a search term and deletes users after confirmation.
//
// The two views share nothing in memory; the list always re-reads the backend.
package views
