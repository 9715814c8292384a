package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/dealdeskhq/dealdesk/internal/database"
	"github.com/google/uuid"
)

// EntityLinker turns a stored AI output's entity candidates into validated
// news-entity links.
type EntityLinker struct {
	outputs    news.OutputStore
	newsStore  news.NewsStore
	links      news.LinkStore
	stores     entity.Stores
	creator    *EntityCreator
	normalizer *entity.Normalizer
	logger     *slog.Logger
}

// NewEntityLinker creates an EntityLinker.
func NewEntityLinker(
	outputs news.OutputStore,
	newsStore news.NewsStore,
	links news.LinkStore,
	stores entity.Stores,
	creator *EntityCreator,
	normalizer *entity.Normalizer,
	logger *slog.Logger,
) *EntityLinker {
	return &EntityLinker{
		outputs:    outputs,
		newsStore:  newsStore,
		links:      links,
		stores:     stores,
		creator:    creator,
		normalizer: normalizer,
		logger:     logger,
	}
}

// LinkFromOutput walks the output's candidates and links each one that
// matches an existing entity by name, creating the entity first when the
// candidate is flagged for auto-creation. It returns how many links were
// written. Candidates with unknown types, no match, or an existing link
// are skipped; a failure on one candidate skips it rather than aborting
// the rest.
func (l *EntityLinker) LinkFromOutput(ctx context.Context, orgID, outputID uuid.UUID) (int, error) {
	output, err := l.outputs.FindOne(ctx, store.WithID(outputID), store.WithOrgID(orgID))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, news.ErrNotFound
		}
		return 0, fmt.Errorf("load output: %w", err)
	}

	record, err := l.newsStore.FindOne(ctx, store.WithID(output.NewsID()), store.WithOrgID(orgID))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, news.ErrNotFound
		}
		return 0, fmt.Errorf("load news: %w", err)
	}

	created := 0
	for _, candidate := range output.Candidates() {
		linked, err := l.linkCandidate(ctx, orgID, record, candidate)
		if err != nil {
			l.logger.WarnContext(ctx, "candidate skipped",
				"news_id", record.ID(), "name", candidate.Name, "error", err)
			continue
		}
		if linked {
			created++
		}
	}
	return created, nil
}

func (l *EntityLinker) linkCandidate(ctx context.Context, orgID uuid.UUID, record news.News, candidate news.Candidate) (bool, error) {
	name := strings.TrimSpace(candidate.Name)
	if name == "" {
		return false, nil
	}

	kind := candidate.Kind(l.normalizer)
	if kind == entity.KindUnknown {
		l.logger.DebugContext(ctx, "candidate type not recognized",
			"name", candidate.Name, "type", candidate.Type)
		return false, nil
	}

	ref, err := l.match(ctx, kind, orgID, name)
	if err != nil {
		return false, err
	}
	if ref.IsZero() {
		if !candidate.AutoCreate {
			return false, nil
		}
		ref, err = l.creator.Create(ctx, orgID, string(kind), name, record.CreatedBy())
		if err != nil {
			return false, fmt.Errorf("auto-create: %w", err)
		}
	}

	existing, err := l.links.Find(ctx,
		news.WithNewsID(record.ID()),
		news.WithEntity(string(ref.Kind()), ref.ID()),
		store.WithLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("check existing link: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	if _, err := l.links.Save(ctx, news.NewLink(record.ID(), ref.Kind(), ref.ID(), record.CreatedBy())); err != nil {
		return false, fmt.Errorf("save link: %w", err)
	}
	return true, nil
}

// match looks for an existing entity whose name equals the candidate's,
// ignoring case. The lookup is an equality query over the whole table:
// a capped substring search can bury the exact hit below rows that sort
// earlier, and a buried hit would auto-create a duplicate.
func (l *EntityLinker) match(ctx context.Context, kind entity.Kind, orgID uuid.UUID, name string) (entity.Ref, error) {
	searcher := l.stores.Searcher(kind)
	if searcher == nil {
		return entity.Ref{}, nil
	}

	results, err := searcher.FindByName(ctx, orgID, name)
	if err != nil {
		return entity.Ref{}, fmt.Errorf("find %s by name: %w", kind, err)
	}
	if len(results) == 0 {
		return entity.Ref{}, nil
	}
	result := results[0]
	return entity.NewRef(result.Kind(), result.ID(), orgID, result.Name()), nil
}
