package portal

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LoadPage runs the three page-load fetches concurrently. They write
// disjoint regions, so a failure in one leaves the others intact; the first
// error is returned after all three finish.
func (p *Portal) LoadPage(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := p.LoadOffres(ctx)
		return err
	})
	g.Go(func() error {
		_, err := p.LoadReco(ctx)
		return err
	})
	g.Go(func() error {
		_, err := p.LoadStats(ctx)
		return err
	})
	return g.Wait()
}
