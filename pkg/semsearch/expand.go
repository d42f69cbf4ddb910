package semsearch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/models"
	"github.com/anant0059/sementic-search-spreadsheets/pkg/semsearch/resolve"
)

// ExpandAll expands every formula-bearing cell in the index into an Item,
// fanning out across opts.Jobs workers. Expansion is a read-only traversal
// over the index, so workers share nothing but the index and the resolver's
// memo cache. Items come back in stable (book, sheet, row, column) order.
func ExpandAll(ctx context.Context, ix *resolve.Index, opts Options) ([]models.Item, error) {
	addrs := ix.Formulas()
	if len(addrs) == 0 {
		return nil, nil
	}

	r := resolve.NewResolver(ix, opts.params())
	items := make([]models.Item, len(addrs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.jobs(), len(addrs)))

	for i, addr := range addrs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			entry, _ := ix.Lookup(addr)
			items[i] = models.Item{
				Book:        addr.Book,
				Sheet:       addr.Sheet,
				Cell:        addr.Coord,
				Formula:     entry.Formula,
				Description: r.Resolve(addr),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
