package client

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/client/models"
)

type Client interface {
	// CreateUser returns the backend-supplied confirmation message, which may
	// be empty.
	CreateUser(ctx context.Context, u models.NewUser) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
}
