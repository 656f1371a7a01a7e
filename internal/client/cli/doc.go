// Package cli provides the interactive user-directory command-line client.
//
// It wires configuration, the REST API client and the two views (the add-user
// form and the user list) into a read–eval–print loop. Typical flow: fill in
// the form with "add", submit, then "list" to see the directory, "search" to
// narrow it down and "delete <id>" to remove an entry after confirmation.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is cancelled. See App and runREPL for details.
package cli
