package store

import (
	"context"

	"github.com/avandyck/daypack/internal/models"
	"golang.org/x/sync/errgroup"
)

// SyncAll fetches all eight entity collections concurrently, refreshing the
// local cache. Used on boot and for explicit resync. Individual fetch
// failures degrade to cached state as usual; the first error is returned so
// callers that care (the CLI) can report it.
func (s *Store) SyncAll(ctx context.Context) error {
	// A failed collection must not cancel the others, so no group context.
	var g errgroup.Group

	g.Go(func() error {
		_, err := fetchAll[models.DailyEntry](ctx, s, keyDailyEntries)
		return err
	})
	g.Go(func() error {
		_, err := fetchAll[models.Idea](ctx, s, keyIdeas)
		return err
	})
	g.Go(func() error {
		_, err := fetchAll[models.WeeklyOutcome](ctx, s, keyOutcomes)
		return err
	})
	g.Go(func() error {
		_, err := fetchAll[models.Todo](ctx, s, keyTodos)
		return err
	})
	g.Go(func() error {
		_, err := fetchAll[models.DecisionGate](ctx, s, keyGates)
		return err
	})
	g.Go(func() error {
		_, err := fetchAll[models.Contact](ctx, s, keyContacts)
		return err
	})
	g.Go(func() error {
		_, err := fetchAll[models.Discovery](ctx, s, keyDiscoveries)
		return err
	})
	g.Go(func() error {
		_, err := fetchAll[models.Expense](ctx, s, keyExpenses)
		return err
	})

	return g.Wait()
}
