package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/internal/config"
)

// Scheduler feeds the worker pool from the database: a fast loop for NEW
// records and a slower one for FAILED records still under the attempt
// ceiling. Records stuck in PROCESSING are never picked up again; the
// claim transition guarantees each record is handed out at most once per
// terminal cycle.
type Scheduler struct {
	newsStore news.NewsStore
	pool      *Pool
	cfg       config.SchedulerConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewScheduler creates a Scheduler.
func NewScheduler(newsStore news.NewsStore, pool *Pool, cfg config.SchedulerConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		newsStore: newsStore,
		pool:      pool,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start launches the pool, both polling loops, and the result drain.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.pool.Start(ctx)

	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		s.poll(ctx, s.cfg.PollInterval(), s.pollNew)
	}()
	go func() {
		defer s.wg.Done()
		s.poll(ctx, s.cfg.RetryInterval(), s.pollRetries)
	}()
	go func() {
		defer s.wg.Done()
		s.drain()
	}()

	s.logger.Info("news scheduler started",
		"poll_interval", s.cfg.PollInterval(),
		"retry_interval", s.cfg.RetryInterval(),
		"max_attempts", s.cfg.MaxAttempts())
}

// Stop shuts down the polling loops and the pool, then waits for the
// result drain to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.pool.Stop()
	s.wg.Wait()
	s.logger.Info("news scheduler stopped")
}

func (s *Scheduler) poll(ctx context.Context, interval time.Duration, tick func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick(ctx)
		}
	}
}

func (s *Scheduler) pollNew(ctx context.Context) {
	records, err := s.newsStore.FindNew(ctx, s.cfg.PollBatch())
	if err != nil {
		s.logger.Error("poll for new records failed", "error", err)
		return
	}
	s.submit(ctx, records, false)
}

func (s *Scheduler) pollRetries(ctx context.Context) {
	records, err := s.newsStore.FindRetryable(ctx, s.cfg.RetryBatch(), s.cfg.MaxAttempts())
	if err != nil {
		s.logger.Error("poll for retryable records failed", "error", err)
		return
	}
	s.submit(ctx, records, true)
}

func (s *Scheduler) submit(ctx context.Context, records []news.News, retry bool) {
	for _, record := range records {
		job := Job{OrgID: record.OrgID(), NewsID: record.ID(), Retry: retry}
		if err := s.pool.Submit(ctx, job); err != nil {
			return
		}
	}
}

// drain logs every job outcome. Lost claim races are routine, not errors:
// another submission already holds the record.
func (s *Scheduler) drain() {
	for result := range s.pool.Results() {
		switch {
		case errors.Is(result.Err, news.ErrAlreadyClaimed):
			s.logger.Debug("news record already claimed, skipped",
				"news_id", result.Job.NewsID)
		case result.Err != nil:
			s.logger.Warn("news processing failed",
				"news_id", result.Job.NewsID,
				"retry", result.Job.Retry,
				"error", result.Err)
		default:
			s.logger.Info("news processing finished",
				"news_id", result.Job.NewsID,
				"retry", result.Job.Retry,
				"duration", result.Duration)
		}
	}
}
