package persistence

import (
	"context"
	"fmt"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/internal/database"
)

// OutputStore implements news.OutputStore using GORM.
type OutputStore struct {
	database.Repository[news.Output, OutputModel]
}

// NewOutputStore creates a new OutputStore.
func NewOutputStore(db database.Database) OutputStore {
	return OutputStore{
		Repository: database.NewRepository[news.Output, OutputModel](db, OutputMapper{}, "ai output"),
	}
}

// Save creates or updates an AI output.
func (s OutputStore) Save(ctx context.Context, o news.Output) (news.Output, error) {
	model := s.Mapper().ToModel(o)
	if err := upsert(s.DB(ctx), &model, s.Label()); err != nil {
		return news.Output{}, err
	}
	return s.Mapper().ToDomain(model), nil
}

// Delete removes an AI output.
func (s OutputStore) Delete(ctx context.Context, o news.Output) error {
	model := s.Mapper().ToModel(o)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete ai output: %w", err)
	}
	return nil
}
