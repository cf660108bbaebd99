// Package library composes the local recipe store with the remote catalog
// into one view. It is the only place the two sources meet.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"shaker/internal/cocktail"
	"shaker/internal/store"
)

// ErrSearchFailed wraps a remote failure during combined search. Local
// matches are deliberately discarded with it: a partial result set with
// ambiguous provenance is worse than a clean failure the caller can retry.
var ErrSearchFailed = errors.New("search failed")

// Catalog is the remote side of the composition. Satisfied by
// catalog.Client; tests substitute a fake.
type Catalog interface {
	SearchByName(ctx context.Context, query string) ([]cocktail.Recipe, error)
	FetchByID(ctx context.Context, id string) (*cocktail.Recipe, error)
}

type Library struct {
	store   *store.Store
	catalog Catalog
}

func New(s *store.Store, c Catalog) *Library {
	return &Library{store: s, catalog: c}
}

// Search merges custom recipes whose name contains the query (case
// insensitively) with the catalog's matches, customs first, each source in
// its own order. A blank query is the idle state: no remote call, no results.
// No cross-source dedup happens; a catalog recipe sharing a name with a
// custom one shows up twice.
func (l *Library) Search(ctx context.Context, query string) ([]cocktail.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var remote []cocktail.Recipe
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		remote, err = l.catalog.SearchByName(gctx, query)
		return err
	})

	lowered := strings.ToLower(query)
	local := lo.Filter(l.store.ListAll(), func(r cocktail.Recipe, _ int) bool {
		return strings.Contains(strings.ToLower(r.Name), lowered)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	return append(local, remote...), nil
}

// Resolve fetches one recipe by id. Ids carrying the local prefix can never
// legitimately exist in the catalog, so they are answered from the store
// alone without a network round trip; everything else goes to the catalog.
func (l *Library) Resolve(ctx context.Context, id string) (*cocktail.Recipe, error) {
	if strings.HasPrefix(id, store.CustomIDPrefix) {
		return l.store.GetByID(id)
	}
	return l.catalog.FetchByID(ctx, id)
}
