package service

import (
	"context"
	"testing"
	"time"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(env *testEnv) *NewsGateway {
	return NewNewsGateway(env.tasks, env.newsStore, env.logger)
}

func seedTask(t *testing.T, env *testEnv, orgID uuid.UUID, meta news.TaskMetadata) news.ResearchTask {
	t.Helper()
	task, err := env.tasks.Save(context.Background(),
		news.NewResearchTask(orgID, "Research Acme fund close", meta, uuid.New()))
	require.NoError(t, err)
	return task
}

func TestNewsGateway_CreatesRecordFromMetadata(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()
	gw := newGateway(env)

	published := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	task := seedTask(t, env, orgID, news.TaskMetadata{
		Headline:    "Acme Capital closes Fund IV",
		SourceName:  "PE Wire",
		PublishDate: &published,
		URL:         "https://example.com/acme-fund-iv",
		RawText:     "raw text",
		CleanedText: "cleaned text",
	})

	record, err := gw.EnsureNewsRecord(ctx, orgID, task.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme Capital closes Fund IV", record.Headline())
	assert.Equal(t, "PE Wire", record.SourceName())
	assert.True(t, published.Equal(record.PublishDate()))
	assert.Equal(t, news.StatusNew, record.Status())
	assert.Equal(t, task.CreatedBy(), record.CreatedBy())

	// The task metadata now references the record.
	reloaded, err := env.tasks.FindOne(ctx, store.WithID(task.ID()), store.WithOrgID(orgID))
	require.NoError(t, err)
	assert.Equal(t, record.ID(), reloaded.Metadata().NewsUUID())
}

func TestNewsGateway_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()
	gw := newGateway(env)

	task := seedTask(t, env, orgID, news.TaskMetadata{Headline: "Acme news"})

	first, err := gw.EnsureNewsRecord(ctx, orgID, task.ID())
	require.NoError(t, err)

	second, err := gw.EnsureNewsRecord(ctx, orgID, task.ID())
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())

	records, err := env.newsStore.Find(ctx, store.WithOrgID(orgID))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNewsGateway_HeadlineFallsBackToTitle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()
	gw := newGateway(env)

	task := seedTask(t, env, orgID, news.TaskMetadata{RawText: "raw text only"})

	record, err := gw.EnsureNewsRecord(ctx, orgID, task.ID())
	require.NoError(t, err)
	assert.Equal(t, "Research Acme fund close", record.Headline())
}

func TestNewsGateway_DanglingNewsIDRecreates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()
	gw := newGateway(env)

	task := seedTask(t, env, orgID, news.TaskMetadata{
		Headline: "Acme news",
		NewsID:   uuid.New().String(),
	})

	record, err := gw.EnsureNewsRecord(ctx, orgID, task.ID())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, record.ID())

	reloaded, err := env.tasks.FindOne(ctx, store.WithID(task.ID()), store.WithOrgID(orgID))
	require.NoError(t, err)
	assert.Equal(t, record.ID(), reloaded.Metadata().NewsUUID())
}

func TestNewsGateway_TaskNotFound(t *testing.T) {
	env := newTestEnv(t)
	gw := newGateway(env)

	_, err := gw.EnsureNewsRecord(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, news.ErrNotFound)
}

func TestNewsGateway_TaskInOtherTenant(t *testing.T) {
	env := newTestEnv(t)
	gw := newGateway(env)

	task := seedTask(t, env, uuid.New(), news.TaskMetadata{Headline: "Acme news"})

	_, err := gw.EnsureNewsRecord(context.Background(), uuid.New(), task.ID())
	require.ErrorIs(t, err, news.ErrNotFound)
}
