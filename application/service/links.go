package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/dealdeskhq/dealdesk/internal/database"
	"github.com/google/uuid"
)

// LinkService creates and lists validated news-entity links.
type LinkService struct {
	newsStore news.NewsStore
	links     news.LinkStore
	resolver  *EntityResolver
	logger    *slog.Logger
}

// NewLinkService creates a LinkService.
func NewLinkService(newsStore news.NewsStore, links news.LinkStore, resolver *EntityResolver, logger *slog.Logger) *LinkService {
	return &LinkService{
		newsStore: newsStore,
		links:     links,
		resolver:  resolver,
		logger:    logger,
	}
}

// CreateLink links a news record to an entity. Both sides are validated
// inside the caller's tenant first: a missing news record yields
// news.ErrNotFound and an unresolvable entity yields entity.ErrNotFound.
// The stored link carries the canonical kind the entity resolved under,
// not the raw type the caller sent. Linking the same entity twice is
// idempotent and returns the existing link.
func (s *LinkService) CreateLink(ctx context.Context, orgID, newsID uuid.UUID, rawType string, entityID, createdBy uuid.UUID) (news.Link, error) {
	if _, err := s.newsStore.FindOne(ctx, store.WithID(newsID), store.WithOrgID(orgID)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return news.Link{}, news.ErrNotFound
		}
		return news.Link{}, fmt.Errorf("load news: %w", err)
	}

	ref, err := s.resolver.Resolve(ctx, orgID, rawType, entityID)
	if err != nil {
		return news.Link{}, err
	}

	existing, err := s.links.Find(ctx,
		news.WithNewsID(newsID),
		news.WithEntity(string(ref.Kind()), ref.ID()),
		store.WithLimit(1),
	)
	if err != nil {
		return news.Link{}, fmt.Errorf("check existing link: %w", err)
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	link, err := s.links.Save(ctx, news.NewLink(newsID, ref.Kind(), ref.ID(), createdBy))
	if err != nil {
		return news.Link{}, fmt.Errorf("save link: %w", err)
	}

	s.logger.DebugContext(ctx, "news linked to entity",
		"news_id", newsID, "kind", ref.Kind(), "entity_id", ref.ID())
	return link, nil
}

// ListForNews returns a news record's links, oldest first. The news record
// must exist in the caller's tenant.
func (s *LinkService) ListForNews(ctx context.Context, orgID, newsID uuid.UUID) ([]news.Link, error) {
	if _, err := s.newsStore.FindOne(ctx, store.WithID(newsID), store.WithOrgID(orgID)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, news.ErrNotFound
		}
		return nil, fmt.Errorf("load news: %w", err)
	}

	links, err := s.links.Find(ctx,
		news.WithNewsID(newsID),
		store.WithOrderAsc("created_at"),
	)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

// NewsForEntity returns the news records linked to an entity, newest first.
// The entity must resolve within the caller's tenant; link rows whose news
// record is gone are skipped.
func (s *LinkService) NewsForEntity(ctx context.Context, orgID uuid.UUID, rawType string, entityID uuid.UUID) ([]news.News, error) {
	ref, err := s.resolver.Resolve(ctx, orgID, rawType, entityID)
	if err != nil {
		return nil, err
	}

	links, err := s.links.Find(ctx,
		news.WithEntity(string(ref.Kind()), ref.ID()),
		store.WithOrderDesc("created_at"),
	)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	records := make([]news.News, 0, len(links))
	for _, link := range links {
		record, err := s.newsStore.FindOne(ctx, store.WithID(link.NewsID()), store.WithOrgID(orgID))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("load news: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
