package services

import (
	"context"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
	"github.com/dmitrijs2005/coinkeeper/internal/client/session"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Syncer keeps the resource collections consistent with the session: when an
// identity appears the collections are (re-)fetched for that owner, when it
// goes away they are reset. Mutations go through the services directly;
// the syncer only coordinates whole-collection lifecycle.
type Syncer struct {
	categories   *Categories
	transactions *Transactions
	log          logging.Logger
}

func NewSyncer(categories *Categories, transactions *Transactions, log logging.Logger) *Syncer {
	return &Syncer{categories: categories, transactions: transactions, log: log}
}

// Bind registers the syncer on the session store so identity changes drive
// the collections without the front end having to remember to.
func (s *Syncer) Bind(store *session.Store) {
	store.OnIdentityChange(func(identity *models.Identity) {
		ctx := context.Background()
		if identity == nil {
			s.Reset()
			return
		}
		if err := s.Refresh(ctx); err != nil {
			s.log.Warn(ctx, "initial collection fetch failed", "owner", identity.ID, "error", err)
		}
	})
}

// Refresh fetches both collections for the current identity. The two
// fetches run concurrently; the first failure is returned but both
// collections record their own outcome.
func (s *Syncer) Refresh(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.categories.FetchAll(ctx)
		return err
	})
	g.Go(func() error {
		_, err := s.transactions.FetchAll(ctx)
		return err
	})
	return g.Wait()
}

// Reset drops both collections.
func (s *Syncer) Reset() {
	s.categories.Reset()
	s.transactions.Reset()
}
