package persistence

import (
	"context"
	"fmt"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/internal/database"
	"github.com/google/uuid"
)

// TaskStore implements news.TaskStore using GORM.
type TaskStore struct {
	database.Repository[news.ResearchTask, ResearchTaskModel]
}

// NewTaskStore creates a new TaskStore.
func NewTaskStore(db database.Database) TaskStore {
	return TaskStore{
		Repository: database.NewRepository[news.ResearchTask, ResearchTaskModel](db, ResearchTaskMapper{}, "research task"),
	}
}

// Save creates or updates a research task.
func (s TaskStore) Save(ctx context.Context, t news.ResearchTask) (news.ResearchTask, error) {
	model := s.Mapper().ToModel(t)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return news.ResearchTask{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes a research task.
func (s TaskStore) Delete(ctx context.Context, t news.ResearchTask) error {
	model := s.Mapper().ToModel(t)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete research task: %w", err)
	}
	return nil
}

// UpdateMetadata writes a task's metadata payload, scoped by both task id
// and tenant.
func (s TaskStore) UpdateMetadata(ctx context.Context, orgID, taskID uuid.UUID, metadata news.TaskMetadata) error {
	result := s.DB(ctx).Model(&ResearchTaskModel{}).
		Where("id = ? AND org_id = ?", taskID.String(), orgID.String()).
		Update("metadata", marshalMetadata(metadata))
	if result.Error != nil {
		return fmt.Errorf("update task metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return news.ErrNotFound
	}
	return nil
}
