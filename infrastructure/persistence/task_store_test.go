package persistence

import (
	"context"
	"testing"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStore_MetadataRoundTrip(t *testing.T) {
	db := newTestDB(t)
	s := NewTaskStore(db)
	ctx := context.Background()
	orgID := uuid.New()

	task := news.NewResearchTask(orgID, "Acme closes Fund IV", news.TaskMetadata{
		Headline:   "Acme Capital closes Fund IV at $2bn",
		SourceName: "PE Wire",
		URL:        "https://example.com/acme",
		RawText:    "Acme Capital announced...",
	}, uuid.New())

	_, err := s.Save(ctx, task)
	require.NoError(t, err)

	found, err := s.FindOne(ctx, store.WithID(task.ID()), store.WithOrgID(orgID))
	require.NoError(t, err)
	assert.Equal(t, "Acme Capital closes Fund IV at $2bn", found.Metadata().Headline)
	assert.Equal(t, "PE Wire", found.Metadata().SourceName)
	assert.Equal(t, uuid.Nil, found.Metadata().NewsUUID())
}

func TestTaskStore_UpdateMetadata(t *testing.T) {
	db := newTestDB(t)
	s := NewTaskStore(db)
	ctx := context.Background()
	orgID := uuid.New()

	task := news.NewResearchTask(orgID, "task", news.TaskMetadata{Headline: "h"}, uuid.New())
	_, err := s.Save(ctx, task)
	require.NoError(t, err)

	newsID := uuid.New()
	updated := task.WithNewsID(newsID)
	require.NoError(t, s.UpdateMetadata(ctx, orgID, task.ID(), updated.Metadata()))

	found, err := s.FindOne(ctx, store.WithID(task.ID()), store.WithOrgID(orgID))
	require.NoError(t, err)
	assert.Equal(t, newsID, found.Metadata().NewsUUID())
	assert.Equal(t, "h", found.Metadata().Headline)
}

func TestTaskStore_UpdateMetadata_WrongTenant(t *testing.T) {
	db := newTestDB(t)
	s := NewTaskStore(db)
	ctx := context.Background()

	task := news.NewResearchTask(uuid.New(), "task", news.TaskMetadata{}, uuid.New())
	_, err := s.Save(ctx, task)
	require.NoError(t, err)

	err = s.UpdateMetadata(ctx, uuid.New(), task.ID(), news.TaskMetadata{Headline: "stolen"})
	require.ErrorIs(t, err, news.ErrNotFound)
}
