// Package dealdesk provides a library for private-markets CRM entity
// resolution, cross-table search, and AI-assisted news processing.
//
// Dealdesk keeps six entity tables (GPs, LPs, funds, portfolio companies,
// contacts, service providers) behind one resolution and search surface,
// and runs news records through a claim-based processing state machine
// that extracts and links the entities a story mentions.
//
// Basic usage:
//
//	client, err := dealdesk.New(
//	    dealdesk.WithSQLite(".dealdesk/data.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Resolve a loosely-typed reference
//	ref, err := client.Resolver.Resolve(ctx, orgID, "PE", entityID)
//
//	// Search across every entity table
//	results, err := client.Search.Search(ctx, orgID, "apex")
package dealdesk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/dealdeskhq/dealdesk/application/service"
	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/infrastructure/analyst"
	"github.com/dealdeskhq/dealdesk/infrastructure/persistence"
	"github.com/dealdeskhq/dealdesk/infrastructure/provider"
	"github.com/dealdeskhq/dealdesk/internal/database"
)

// ErrNoDatabase is returned by New when no database option was given.
var ErrNoDatabase = errors.New("no database configured: use WithSQLite or WithPostgres")

// ErrClientClosed is returned when operating on a closed client.
var ErrClientClosed = errors.New("client is closed")

// Client is the main entry point for the dealdesk library. The background
// scheduler starts automatically on creation unless disabled.
//
// Access resources via struct fields:
//
//	client.Resolver.Resolve(ctx, orgID, "gp", id)
//	client.Search.Search(ctx, orgID, "apex")
//	client.Links.CreateLink(ctx, orgID, newsID, "fund", id, userID)
type Client struct {
	Resolver  *service.EntityResolver
	Search    *service.EntitySearch
	Creator   *service.EntityCreator
	Directory *service.Directory
	Links     *service.LinkService
	Gateway   *service.NewsGateway
	Processor *service.NewsProcessor

	db        database.Database
	stores    entity.Stores
	newsStore news.NewsStore
	tasks     news.TaskStore
	outputs   news.OutputStore

	generator provider.TextGenerator
	scheduler *service.Scheduler

	logger  *slog.Logger
	dataDir string
	closed  atomic.Bool
}

// New creates a new Client with the given options. The background
// scheduler is started automatically when a generation provider is
// available.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.database == databaseUnset {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, buildDatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	stores := persistence.NewEntityStores(db)
	newsStore := persistence.NewNewsStore(db)
	linkStore := persistence.NewLinkStore(db)
	taskStore := persistence.NewTaskStore(db)
	outputStore := persistence.NewOutputStore(db)

	normalizer := entity.NewNormalizer(cfg.aliasOverrides)

	resolver := service.NewEntityResolver(stores, normalizer, logger)
	search := service.NewEntitySearch(stores, logger).WithPerTableLimit(cfg.searchLimit)
	creator := service.NewEntityCreator(stores, normalizer, logger)
	directory := service.NewDirectory(stores)
	links := service.NewLinkService(newsStore, linkStore, resolver, logger)
	gateway := service.NewNewsGateway(taskStore, newsStore, logger)

	// A generation provider is optional: without one the entity surface
	// works fully, but news records cannot be processed.
	generator := cfg.generator
	if generator == nil && cfg.generation != nil && cfg.generation.IsConfigured() {
		generator = provider.NewOpenAIProvider(*cfg.generation)
	}

	client := &Client{
		Resolver:  resolver,
		Search:    search,
		Creator:   creator,
		Directory: directory,
		Links:     links,
		Gateway:   gateway,
		db:        db,
		stores:    stores,
		newsStore: newsStore,
		tasks:     taskStore,
		outputs:   outputStore,
		generator: generator,
		logger:    logger,
		dataDir:   cfg.dataDir,
	}

	if generator != nil {
		newsAnalyst := analyst.NewNewsAnalyst(generator, newsStore, outputStore, logger)
		linker := service.NewEntityLinker(outputStore, newsStore, linkStore, stores,
			creator, normalizer, logger)
		client.Processor = service.NewNewsProcessor(newsStore, newsAnalyst, linker, logger)

		if cfg.scheduler.Enabled() && !cfg.disableScheduler {
			pool := service.NewPool(client.Processor, cfg.scheduler.WorkerCount(), logger)
			client.scheduler = service.NewScheduler(newsStore, pool, cfg.scheduler, logger)
			client.scheduler.Start(ctx)
		}
	} else {
		logger.Info("no generation endpoint configured, news processing disabled")
	}

	return client, nil
}

// Close stops the scheduler and releases all resources.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	if c.scheduler != nil {
		c.scheduler.Stop()
	}
	if c.generator != nil {
		if err := c.generator.Close(); err != nil {
			c.logger.Error("failed to close generation provider", "error", err)
		}
	}
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("dealdesk client closed")
	return nil
}

// NewsStore exposes the news store for HTTP handlers and tooling.
func (c *Client) NewsStore() news.NewsStore {
	return c.newsStore
}

// TaskStore exposes the research task store.
func (c *Client) TaskStore() news.TaskStore {
	return c.tasks
}

// ProcessingEnabled reports whether a generation provider is configured.
func (c *Client) ProcessingEnabled() bool {
	return c.Processor != nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

func buildDatabaseURL(cfg *clientConfig) string {
	switch cfg.database {
	case databaseSQLite:
		path := cfg.dbPath
		if path == "" {
			path = filepath.Join(cfg.dataDir, "dealdesk.db")
		}
		return "sqlite:///" + path
	case databasePostgres:
		return cfg.dbDSN
	default:
		return ""
	}
}
