package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyst struct {
	outputID uuid.UUID
	err      error
	calls    int
}

func (f *fakeAnalyst) Analyze(_ context.Context, _, _ uuid.UUID) (uuid.UUID, error) {
	f.calls++
	return f.outputID, f.err
}

type fakeLinker struct {
	linked int
	err    error
	calls  int
}

func (f *fakeLinker) LinkFromOutput(_ context.Context, _, _ uuid.UUID) (int, error) {
	f.calls++
	return f.linked, f.err
}

func newsStatus(t *testing.T, env *testEnv, orgID, newsID uuid.UUID) news.Status {
	t.Helper()
	record, err := env.newsStore.FindOne(context.Background(),
		store.WithID(newsID), store.WithOrgID(orgID))
	require.NoError(t, err)
	return record.Status()
}

func TestNewsProcessor_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	record := env.seedNews(t, orgID)
	analyst := &fakeAnalyst{outputID: uuid.New()}
	linker := &fakeLinker{linked: 2}
	processor := NewNewsProcessor(env.newsStore, analyst, linker, env.logger)

	require.NoError(t, processor.Process(ctx, orgID, record.ID()))
	assert.Equal(t, 1, analyst.calls)
	assert.Equal(t, 1, linker.calls)
	assert.Equal(t, news.StatusCompleted, newsStatus(t, env, orgID, record.ID()))
}

func TestNewsProcessor_AnalyzeFailureMarksFailed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	record := env.seedNews(t, orgID)
	analyst := &fakeAnalyst{err: errors.New("model unavailable")}
	linker := &fakeLinker{}
	processor := NewNewsProcessor(env.newsStore, analyst, linker, env.logger)

	err := processor.Process(ctx, orgID, record.ID())
	require.Error(t, err)
	assert.Equal(t, 0, linker.calls)
	assert.Equal(t, news.StatusFailed, newsStatus(t, env, orgID, record.ID()))
}

func TestNewsProcessor_LinkFailureMarksFailed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	record := env.seedNews(t, orgID)
	analyst := &fakeAnalyst{outputID: uuid.New()}
	linker := &fakeLinker{err: errors.New("links table locked")}
	processor := NewNewsProcessor(env.newsStore, analyst, linker, env.logger)

	err := processor.Process(ctx, orgID, record.ID())
	require.Error(t, err)
	assert.Equal(t, news.StatusFailed, newsStatus(t, env, orgID, record.ID()))
}

func TestNewsProcessor_AlreadyClaimed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	record := env.seedNews(t, orgID)
	require.NoError(t, env.newsStore.Claim(ctx, orgID, record.ID()))

	analyst := &fakeAnalyst{outputID: uuid.New()}
	processor := NewNewsProcessor(env.newsStore, analyst, &fakeLinker{}, env.logger)

	err := processor.Process(ctx, orgID, record.ID())
	require.ErrorIs(t, err, news.ErrAlreadyClaimed)
	assert.Equal(t, 0, analyst.calls)
}

func TestNewsProcessor_RetryAfterFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	orgID := uuid.New()

	record := env.seedNews(t, orgID)
	analyst := &fakeAnalyst{err: errors.New("model unavailable")}
	linker := &fakeLinker{}
	processor := NewNewsProcessor(env.newsStore, analyst, linker, env.logger)

	require.Error(t, processor.Process(ctx, orgID, record.ID()))

	// The failure cleared, so the retry claims the FAILED record and
	// finishes it.
	analyst.err = nil
	analyst.outputID = uuid.New()

	require.NoError(t, processor.Process(ctx, orgID, record.ID()))
	assert.Equal(t, news.StatusCompleted, newsStatus(t, env, orgID, record.ID()))

	reloaded, err := env.newsStore.FindOne(ctx, store.WithID(record.ID()), store.WithOrgID(orgID))
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Attempts())
}

func TestNewsProcessor_NotFound(t *testing.T) {
	env := newTestEnv(t)
	processor := NewNewsProcessor(env.newsStore, &fakeAnalyst{}, &fakeLinker{}, env.logger)

	err := processor.Process(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, news.ErrNotFound)
}
