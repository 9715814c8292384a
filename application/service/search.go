package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/internal/config"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MinSearchQueryLength is the shortest query the search will run. Anything
// shorter returns no results rather than an error.
const MinSearchQueryLength = 2

// EntitySearch performs cross-table entity search within one tenant.
type EntitySearch struct {
	stores entity.Stores
	limit  int
	logger *slog.Logger
}

// NewEntitySearch creates an EntitySearch with the default per-table limit.
func NewEntitySearch(stores entity.Stores, logger *slog.Logger) *EntitySearch {
	return &EntitySearch{
		stores: stores,
		limit:  config.DefaultSearchPerTableLimit,
		logger: logger,
	}
}

// WithPerTableLimit sets how many rows each entity table may contribute.
func (s *EntitySearch) WithPerTableLimit(limit int) *EntitySearch {
	if limit > 0 {
		s.limit = limit
	}
	return s
}

// Search matches the query against every entity table concurrently and
// concatenates the per-table results in a fixed kind order. Results are
// not deduplicated or ranked across tables; a table whose search fails
// contributes nothing instead of failing the whole call.
func (s *EntitySearch) Search(ctx context.Context, orgID uuid.UUID, query string) ([]entity.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < MinSearchQueryLength {
		return []entity.SearchResult{}, nil
	}

	perKind := make([][]entity.SearchResult, len(entity.ProbeOrder))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range entity.ProbeOrder {
		i, kind := i, kind
		searcher := s.stores.Searcher(kind)
		if searcher == nil {
			continue
		}
		g.Go(func() error {
			results, err := searcher.SearchByName(gctx, orgID, trimmed, s.limit)
			if err != nil {
				s.logger.WarnContext(gctx, "entity search degraded",
					"kind", kind, "error", err)
				return nil
			}
			perKind[i] = results
			return nil
		})
	}
	_ = g.Wait()

	combined := make([]entity.SearchResult, 0, len(entity.ProbeOrder)*s.limit)
	for _, results := range perKind {
		combined = append(combined, results...)
	}
	return combined, nil
}
