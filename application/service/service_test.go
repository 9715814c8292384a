package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/infrastructure/persistence"
	"github.com/dealdeskhq/dealdesk/internal/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the stores the service tests share, backed by one
// in-memory database per test.
type testEnv struct {
	stores     entity.Stores
	newsStore  news.NewsStore
	links      news.LinkStore
	tasks      news.TaskStore
	outputs    news.OutputStore
	normalizer *entity.Normalizer
	logger     *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testdb.New(t)
	return &testEnv{
		stores:     persistence.NewEntityStores(db),
		newsStore:  persistence.NewNewsStore(db),
		links:      persistence.NewLinkStore(db),
		tasks:      persistence.NewTaskStore(db),
		outputs:    persistence.NewOutputStore(db),
		normalizer: entity.NewNormalizer(nil),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (e *testEnv) resolver() *EntityResolver {
	return NewEntityResolver(e.stores, e.normalizer, e.logger)
}

func (e *testEnv) creator() *EntityCreator {
	return NewEntityCreator(e.stores, e.normalizer, e.logger)
}

func (e *testEnv) seedGP(t *testing.T, orgID uuid.UUID, name string) entity.GP {
	t.Helper()
	gp, err := e.stores.GPs.Save(context.Background(), entity.NewGP(orgID, name, "", uuid.New()))
	require.NoError(t, err)
	return gp
}

func (e *testEnv) seedFund(t *testing.T, orgID uuid.UUID, name string) entity.Fund {
	t.Helper()
	fund, err := e.stores.Funds.Save(context.Background(), entity.NewFund(orgID, name, "", uuid.New()))
	require.NoError(t, err)
	return fund
}

func (e *testEnv) seedNews(t *testing.T, orgID uuid.UUID) news.News {
	t.Helper()
	record, err := e.newsStore.Save(context.Background(), news.NewNews(
		orgID, "Acme Capital closes Fund IV", "PE Wire",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		"https://example.com/acme-fund-iv", "raw text", "cleaned text",
		uuid.New()))
	require.NoError(t, err)
	return record
}
