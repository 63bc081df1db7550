// Package api contains the REST client for the CoinKeeper backend: a
// json-server style resource server exposing /users, /categories and
// /transactions with standard CRUD semantics.
package api

import (
	"context"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
)

// Client is the remote backend surface consumed by the session store and the
// resource services. Failures are classified with the sentinels in
// internal/common (ErrNotFound, ErrTransport); callers match with errors.Is.
type Client interface {
	Close() error

	// FindUserByEmail returns nil (not an error) when no account matches.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	// Logout is a best-effort notification; the mock backend ignores it.
	Logout(ctx context.Context, token string) error

	ListCategories(ctx context.Context, ownerID string) ([]models.Category, error)
	CreateCategory(ctx context.Context, c models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, c models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListTransactions(ctx context.Context, ownerID string) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}
