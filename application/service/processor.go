package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/google/uuid"
)

// Analyst runs an AI generation pass over a news record and returns the
// stored output's id.
type Analyst interface {
	Analyze(ctx context.Context, orgID, newsID uuid.UUID) (uuid.UUID, error)
}

// Linker turns a stored output's candidates into news-entity links.
type Linker interface {
	LinkFromOutput(ctx context.Context, orgID, outputID uuid.UUID) (int, error)
}

// NewsProcessor drives one news record through the processing pipeline:
// claim, analyze, link, finish.
type NewsProcessor struct {
	newsStore news.NewsStore
	analyst   Analyst
	linker    Linker
	logger    *slog.Logger
}

// NewNewsProcessor creates a NewsProcessor.
func NewNewsProcessor(newsStore news.NewsStore, analyst Analyst, linker Linker, logger *slog.Logger) *NewsProcessor {
	return &NewsProcessor{
		newsStore: newsStore,
		analyst:   analyst,
		linker:    linker,
		logger:    logger,
	}
}

// Process claims the record and runs the pipeline to a terminal status.
// Losing the claim race returns news.ErrAlreadyClaimed so callers can skip
// quietly. Any failure after a successful claim marks the record FAILED
// and returns the error; the scheduler retries FAILED records later.
func (p *NewsProcessor) Process(ctx context.Context, orgID, newsID uuid.UUID) error {
	if err := p.newsStore.Claim(ctx, orgID, newsID); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "news processing started", "news_id", newsID)

	if err := p.run(ctx, orgID, newsID); err != nil {
		p.fail(ctx, orgID, newsID)
		return fmt.Errorf("process news %s: %w", newsID, err)
	}

	if err := p.newsStore.SetStatus(ctx, orgID, newsID, news.StatusCompleted); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}

	p.logger.InfoContext(ctx, "news processing completed", "news_id", newsID)
	return nil
}

func (p *NewsProcessor) run(ctx context.Context, orgID, newsID uuid.UUID) error {
	outputID, err := p.analyst.Analyze(ctx, orgID, newsID)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	linked, err := p.linker.LinkFromOutput(ctx, orgID, outputID)
	if err != nil {
		return fmt.Errorf("link entities: %w", err)
	}

	p.logger.DebugContext(ctx, "entities linked from output",
		"news_id", newsID, "output_id", outputID, "links", linked)
	return nil
}

// fail records the FAILED status best-effort. The original processing error
// is what callers need to see, not a follow-on status write failure.
func (p *NewsProcessor) fail(ctx context.Context, orgID, newsID uuid.UUID) {
	err := p.newsStore.SetStatus(ctx, orgID, newsID, news.StatusFailed)
	if err != nil && !errors.Is(err, news.ErrNotFound) {
		p.logger.ErrorContext(ctx, "failed to mark news record FAILED",
			"news_id", newsID, "error", err)
	}
}
