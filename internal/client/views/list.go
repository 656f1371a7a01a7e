package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

// Alert texts shown by UserList.
const (
	MsgLoadFailed    = "Could not load users. Check if backend is running."
	MsgDeleteConfirm = "Are you sure you want to delete this user?"
	MsgUserDeleted   = "User deleted"
	MsgDeleteFailed  = "Error: Failed to delete"
	MsgNetworkError  = "Error: Network error"
)

// UserDirectory is the part of the backend API the list needs.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserList holds the last fetched snapshot of the directory.
//
// Refresh and Delete are not serialised against each other. A refresh whose
// response was produced before a concurrent delete completed can bring the
// deleted row back into the snapshot.
type UserList struct {
	mu      sync.Mutex
	api     UserDirectory
	confirm Confirmer
	log     logging.Logger

	users   []models.User
	loading bool
	search  string
	alert   string
}

func NewUserList(api UserDirectory, confirm Confirmer, log logging.Logger) *UserList {
	if log == nil {
		log = logging.Nop()
	}
	return &UserList{api: api, confirm: confirm, log: log.With("view", "user_list")}
}

// Focus is called every time the list is shown. It always refetches.
func (l *UserList) Focus(ctx context.Context) error {
	return l.Refresh(ctx)
}

// Refresh replaces the snapshot with the backend's current list. On failure
// the previous snapshot is kept and the alert is set.
func (l *UserList) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	users, err := l.api.ListUsers(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false

	if err != nil {
		l.alert = MsgLoadFailed
		l.log.Error(ctx, "failed to fetch users", "error", err)
		return fmt.Errorf("refresh users: %w", err)
	}

	l.users = users
	l.alert = ""
	l.log.Debug(ctx, "users fetched", "count", len(users))
	return nil
}

// Delete asks for confirmation and, if given, deletes the user on the
// backend. The row leaves the snapshot only after the backend accepted the
// delete. confirmed reports whether a request was sent.
func (l *UserList) Delete(ctx context.Context, id string) (confirmed bool, err error) {
	ok, err := l.confirm.Confirm(ctx, MsgDeleteConfirm)
	if err != nil {
		return false, fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return false, nil
	}

	err = l.api.DeleteUser(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		var rej *client.RejectedError
		if errors.As(err, &rej) {
			l.alert = MsgDeleteFailed
		} else {
			l.alert = MsgNetworkError
		}
		l.log.Warn(ctx, "delete user failed", "id", id, "error", err)
		return true, fmt.Errorf("delete user %s: %w", id, err)
	}

	kept := make([]models.User, 0, len(l.users))
	for _, u := range l.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	l.users = kept
	l.alert = MsgUserDeleted
	l.log.Info(ctx, "user deleted", "id", id)
	return true, nil
}

// SetSearch sets the filter term. It does not touch the backend.
func (l *UserList) SetSearch(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.search = term
}

func (l *UserList) Search() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.search
}

// Visible returns the snapshot rows matching the current search term.
func (l *UserList) Visible() []models.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Filter(l.users, l.search)
}

// Snapshot returns a copy of the full last fetched list.
func (l *UserList) Snapshot() []models.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.User(nil), l.users...)
}

// Len is the size of the full snapshot, ignoring the search term.
func (l *UserList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.users)
}

func (l *UserList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Alert is the last non-fatal message produced by a refresh or delete.
func (l *UserList) Alert() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.alert
}

// Filter returns the users whose name or email contains term, ignoring case.
// An empty term matches everyone. The input slice is not modified.
func Filter(users []models.User, term string) []models.User {
	needle := strings.ToLower(term)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}
