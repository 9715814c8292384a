package persistence

import (
	"context"
	"fmt"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/dealdeskhq/dealdesk/internal/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsStore implements news.NewsStore using GORM.
type NewsStore struct {
	database.Repository[news.News, NewsModel]
}

// NewNewsStore creates a new NewsStore.
func NewNewsStore(db database.Database) NewsStore {
	return NewsStore{
		Repository: database.NewRepository[news.News, NewsModel](db, NewsMapper{}, "news"),
	}
}

// Save creates or updates a news record.
func (s NewsStore) Save(ctx context.Context, n news.News) (news.News, error) {
	model := s.Mapper().ToModel(n)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return news.News{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a news record.
func (s NewsStore) Delete(ctx context.Context, n news.News) error {
	model := s.Mapper().ToModel(n)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

// Claim atomically moves a record from NEW or FAILED to PROCESSING and
// increments the attempt counter. The status predicate lives inside the
// UPDATE itself so two concurrent claimers cannot both win: the loser's
// UPDATE matches zero rows.
func (s NewsStore) Claim(ctx context.Context, orgID, newsID uuid.UUID) error {
	result := s.DB(ctx).Model(&NewsModel{}).
		Where("id = ? AND org_id = ?", newsID.String(), orgID.String()).
		Where("status IN ?", []string{string(news.StatusNew), string(news.StatusFailed)}).
		Updates(map[string]any{
			"status":   string(news.StatusProcessing),
			"attempts": gorm.Expr("attempts + 1"),
		})
	if result.Error != nil {
		return fmt.Errorf("claim news: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		exists, err := s.Exists(ctx, store.WithID(newsID), store.WithOrgID(orgID))
		if err != nil {
			return fmt.Errorf("claim news: %w", err)
		}
		if !exists {
			return news.ErrNotFound
		}
		return news.ErrAlreadyClaimed
	}
	return nil
}

// SetStatus records an outcome for a claimed record.
func (s NewsStore) SetStatus(ctx context.Context, orgID, newsID uuid.UUID, status news.Status) error {
	result := s.DB(ctx).Model(&NewsModel{}).
		Where("id = ? AND org_id = ?", newsID.String(), orgID.String()).
		Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("set news status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return news.ErrNotFound
	}
	return nil
}

// FindNew returns up to limit NEW records, oldest-created first, across
// all tenants.
func (s NewsStore) FindNew(ctx context.Context, limit int) ([]news.News, error) {
	return s.Find(ctx,
		news.WithStatus(news.StatusNew),
		store.WithOrderAsc("created_at"),
		store.WithLimit(limit),
	)
}

// FindRetryable returns up to limit FAILED records with fewer than
// maxAttempts processing attempts, oldest-updated first, across all
// tenants. Records at the ceiling stay FAILED until someone intervenes.
func (s NewsStore) FindRetryable(ctx context.Context, limit, maxAttempts int) ([]news.News, error) {
	return s.Find(ctx,
		news.WithStatus(news.StatusFailed),
		store.WithWhere("attempts < ?", maxAttempts),
		store.WithOrderAsc("updated_at"),
		store.WithLimit(limit),
	)
}
