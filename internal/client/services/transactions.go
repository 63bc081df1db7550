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

// Transactions is the resource service for the transaction collection.
type Transactions struct {
	session *session.Store
	client  api.Client
	col     state.Collection[models.Transaction]
	log     logging.Logger
}

func NewTransactions(sess *session.Store, client api.Client, log logging.Logger) *Transactions {
	return &Transactions{session: sess, client: client, log: log}
}

// Items returns the current collection contents in arrival order.
func (s *Transactions) Items() []models.Transaction { return s.col.Items() }

// Loading reports whether a request against the collection is outstanding.
func (s *Transactions) Loading() bool { return s.col.Loading() }

// Err returns the last settled request failure, or nil.
func (s *Transactions) Err() error { return s.col.Err() }

// Reset drops the collection contents (used when the identity goes away).
func (s *Transactions) Reset() { s.col.Reset() }

func (s *Transactions) owner() (string, error) {
	id := s.session.Identity()
	if id == nil {
		return "", fmt.Errorf("%w: transactions require an owner identity", common.ErrNotAuthenticated)
	}
	return id.ID, nil
}

// FetchAll replaces the collection wholesale with the backend's current
// result set for the owner. Local mutations not yet reflected server-side
// are clobbered; the collection is rebuilt from fetches, not merged.
func (s *Transactions) FetchAll(ctx context.Context) ([]models.Transaction, error) {
	ownerID, err := s.owner()
	if err != nil {
		return nil, err
	}

	gen := s.col.Begin()
	items, err := s.client.ListTransactions(ctx, ownerID)
	s.col.SettleReplace(gen, items, err)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return items, nil
}

// Create sends the draft plus the owner id and appends the backend-assigned
// transaction to the collection.
func (s *Transactions) Create(ctx context.Context, draft models.TransactionDraft) (*models.Transaction, error) {
	ownerID, err := s.owner()
	if err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	gen := s.col.Begin()
	created, err := s.client.CreateTransaction(ctx, models.Transaction{
		OwnerID:  ownerID,
		Type:     draft.Type,
		Amount:   draft.Amount,
		Category: draft.Category,
		Date:     draft.Date,
		Comment:  draft.Comment,
	})
	if err != nil {
		s.col.SettleAppend(gen, models.Transaction{}, err)
		return nil, fmt.Errorf("creating transaction: %w", err)
	}
	s.col.SettleAppend(gen, *created, nil)
	return created, nil
}

// Update replaces the backend record and the matching item in place,
// preserving its position.
func (s *Transactions) Update(ctx context.Context, id string, draft models.TransactionDraft) (*models.Transaction, error) {
	ownerID, err := s.owner()
	if err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	gen := s.col.Begin()
	updated, err := s.client.UpdateTransaction(ctx, models.Transaction{
		ID:       id,
		OwnerID:  ownerID,
		Type:     draft.Type,
		Amount:   draft.Amount,
		Category: draft.Category,
		Date:     draft.Date,
		Comment:  draft.Comment,
	})
	if err != nil {
		s.col.SettleUpdate(gen, models.Transaction{}, err)
		return nil, fmt.Errorf("updating transaction %s: %w", id, err)
	}
	s.col.SettleUpdate(gen, *updated, nil)
	return updated, nil
}

// Remove deletes the backend record and drops the matching item.
func (s *Transactions) Remove(ctx context.Context, id string) (string, error) {
	if _, err := s.owner(); err != nil {
		return "", err
	}

	gen := s.col.Begin()
	err := s.client.DeleteTransaction(ctx, id)
	s.col.SettleRemove(gen, id, err)
	if err != nil {
		return "", fmt.Errorf("deleting transaction %s: %w", id, err)
	}
	return id, nil
}
