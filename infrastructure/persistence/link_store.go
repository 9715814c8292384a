package persistence

import (
	"context"
	"fmt"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/internal/database"
)

// LinkStore implements news.LinkStore using GORM.
type LinkStore struct {
	database.Repository[news.Link, LinkModel]
}

// NewLinkStore creates a new LinkStore.
func NewLinkStore(db database.Database) LinkStore {
	return LinkStore{
		Repository: database.NewRepository[news.Link, LinkModel](db, LinkMapper{}, "news link"),
	}
}

// Save creates or updates a news-entity link.
func (s LinkStore) Save(ctx context.Context, l news.Link) (news.Link, error) {
	model := s.Mapper().ToModel(l)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return news.Link{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a news-entity link.
func (s LinkStore) Delete(ctx context.Context, l news.Link) error {
	model := s.Mapper().ToModel(l)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete news link: %w", err)
	}
	return nil
}
