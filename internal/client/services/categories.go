// Package services contains the owner-scoped resource services of the
// CoinKeeper client. Each service binds the session identity, the backend
// client and a collection store: every operation requires a resolved
// identity, issues exactly one request, and settles the result into the
// collection under the stale-response guard.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/client/api"
	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
	"github.com/dmitrijs2005/coinkeeper/internal/client/session"
	"github.com/dmitrijs2005/coinkeeper/internal/client/state"
	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"
)

// Categories is the resource service for the category collection.
type Categories struct {
	session *session.Store
	client  api.Client
	col     state.Collection[models.Category]
	log     logging.Logger
}

func NewCategories(sess *session.Store, client api.Client, log logging.Logger) *Categories {
	return &Categories{session: sess, client: client, log: log}
}

// Items returns the current collection contents in arrival order.
func (s *Categories) Items() []models.Category { return s.col.Items() }

// Loading reports whether a request against the collection is outstanding.
func (s *Categories) Loading() bool { return s.col.Loading() }

// Err returns the last settled request failure, or nil.
func (s *Categories) Err() error { return s.col.Err() }

// Reset drops the collection contents (used when the identity goes away).
func (s *Categories) Reset() { s.col.Reset() }

func (s *Categories) owner() (string, error) {
	id := s.session.Identity()
	if id == nil {
		return "", fmt.Errorf("%w: categories require an owner identity", common.ErrNotAuthenticated)
	}
	return id.ID, nil
}

// FetchAll replaces the collection wholesale with the backend's current
// result set for the owner.
func (s *Categories) FetchAll(ctx context.Context) ([]models.Category, error) {
	ownerID, err := s.owner()
	if err != nil {
		return nil, err
	}

	gen := s.col.Begin()
	items, err := s.client.ListCategories(ctx, ownerID)
	s.col.SettleReplace(gen, items, err)
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return items, nil
}

// Create sends the draft plus the owner id and appends the backend-assigned
// category to the collection.
func (s *Categories) Create(ctx context.Context, draft models.CategoryDraft) (*models.Category, error) {
	ownerID, err := s.owner()
	if err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	gen := s.col.Begin()
	created, err := s.client.CreateCategory(ctx, models.Category{
		OwnerID: ownerID,
		Name:    draft.Name,
		Icon:    draft.Icon,
		Color:   draft.Color,
	})
	if err != nil {
		s.col.SettleAppend(gen, models.Category{}, err)
		return nil, fmt.Errorf("creating category: %w", err)
	}
	s.col.SettleAppend(gen, *created, nil)
	return created, nil
}

// Update replaces the backend record and the matching item in place,
// preserving its position.
func (s *Categories) Update(ctx context.Context, id string, draft models.CategoryDraft) (*models.Category, error) {
	ownerID, err := s.owner()
	if err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	gen := s.col.Begin()
	updated, err := s.client.UpdateCategory(ctx, models.Category{
		ID:      id,
		OwnerID: ownerID,
		Name:    draft.Name,
		Icon:    draft.Icon,
		Color:   draft.Color,
	})
	if err != nil {
		s.col.SettleUpdate(gen, models.Category{}, err)
		return nil, fmt.Errorf("updating category %s: %w", id, err)
	}
	s.col.SettleUpdate(gen, *updated, nil)
	return updated, nil
}

// Remove deletes the backend record and drops the matching item. Deleting a
// category does not touch transactions referencing its name; those keep the
// dangling name and surface in statistics under a synthesized bucket.
func (s *Categories) Remove(ctx context.Context, id string) (string, error) {
	if _, err := s.owner(); err != nil {
		return "", err
	}

	gen := s.col.Begin()
	err := s.client.DeleteCategory(ctx, id)
	s.col.SettleRemove(gen, id, err)
	if err != nil {
		return "", fmt.Errorf("deleting category %s: %w", id, err)
	}
	return id, nil
}
