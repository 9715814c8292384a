package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/dealdeskhq/dealdesk/internal/database"
	"github.com/google/uuid"
)

// NewsGateway derives canonical news records from research tasks. Each
// task yields exactly one news record; the task's metadata carries the
// back-reference once the record exists.
type NewsGateway struct {
	tasks     news.TaskStore
	newsStore news.NewsStore
	logger    *slog.Logger
}

// NewNewsGateway creates a NewsGateway.
func NewNewsGateway(tasks news.TaskStore, newsStore news.NewsStore, logger *slog.Logger) *NewsGateway {
	return &NewsGateway{
		tasks:     tasks,
		newsStore: newsStore,
		logger:    logger,
	}
}

// EnsureNewsRecord returns the news record for a research task, creating
// it on first call. Repeat calls return the existing record without
// touching it, keyed by the news id stored in the task metadata. A news
// id in the metadata that no longer resolves is treated as unset and the
// record is recreated.
func (g *NewsGateway) EnsureNewsRecord(ctx context.Context, orgID, taskID uuid.UUID) (news.News, error) {
	task, err := g.tasks.FindOne(ctx, store.WithID(taskID), store.WithOrgID(orgID))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return news.News{}, news.ErrNotFound
		}
		return news.News{}, fmt.Errorf("load task: %w", err)
	}

	meta := task.Metadata()
	if newsID := meta.NewsUUID(); newsID != uuid.Nil {
		existing, err := g.newsStore.FindOne(ctx, store.WithID(newsID), store.WithOrgID(orgID))
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, database.ErrNotFound) {
			return news.News{}, fmt.Errorf("load news: %w", err)
		}
		g.logger.WarnContext(ctx, "task metadata references missing news record, recreating",
			"task_id", taskID, "news_id", newsID)
	}

	headline := meta.Headline
	if headline == "" {
		headline = task.Title()
	}
	publishDate := time.Time{}
	if meta.PublishDate != nil {
		publishDate = *meta.PublishDate
	}

	record, err := g.newsStore.Save(ctx, news.NewNews(
		orgID,
		headline,
		meta.SourceName,
		publishDate,
		meta.URL,
		meta.RawText,
		meta.CleanedText,
		task.CreatedBy(),
	))
	if err != nil {
		return news.News{}, fmt.Errorf("save news: %w", err)
	}

	if err := g.tasks.UpdateMetadata(ctx, orgID, taskID, task.WithNewsID(record.ID()).Metadata()); err != nil {
		return news.News{}, fmt.Errorf("write back news id: %w", err)
	}

	g.logger.InfoContext(ctx, "news record created from task",
		"task_id", taskID, "news_id", record.ID())
	return record, nil
}
