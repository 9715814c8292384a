package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dealdeskhq/dealdesk/internal/config"
	"github.com/google/uuid"
)

// Processor drives one news record to a terminal status.
type Processor interface {
	Process(ctx context.Context, orgID, newsID uuid.UUID) error
}

// Job identifies one news record to process.
type Job struct {
	OrgID  uuid.UUID
	NewsID uuid.UUID
	Retry  bool
}

// JobResult reports the outcome of one processed job.
type JobResult struct {
	Job      Job
	Err      error
	Duration time.Duration
}

// Pool fans news-processing jobs out over a fixed number of workers and
// reports every outcome on a results channel.
type Pool struct {
	processor Processor
	workers   int
	logger    *slog.Logger

	jobs    chan Job
	results chan JobResult

	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewPool creates a worker pool of the given size.
func NewPool(processor Processor, workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = config.DefaultWorkerCount
	}
	return &Pool{
		processor: processor,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan Job, workers*2),
		results:   make(chan JobResult, workers*2),
	}
}

// Start launches the workers. The pool runs until Stop is called.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(ctx)
		}()
	}

	p.logger.Info("worker pool started", "workers", p.workers)
}

// Stop shuts the pool down, waits for in-flight jobs to finish, and closes
// the results channel.
func (p *Pool) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.wg.Wait()
	close(p.results)
	p.logger.Info("worker pool stopped")
}

// Submit queues a job. It blocks when the queue is full and returns the
// context error when the caller gives up first.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Results returns the channel job outcomes are reported on. It is closed
// by Stop once the workers have drained.
func (p *Pool) Results() <-chan JobResult {
	return p.results
}

func (p *Pool) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			result := p.process(ctx, job)
			select {
			case p.results <- result:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (p *Pool) process(ctx context.Context, job Job) (result JobResult) {
	start := time.Now()
	result.Job = job

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("processor panicked: %v", r)
		}
		result.Duration = time.Since(start)
	}()

	result.Err = p.processor.Process(ctx, job.OrgID, job.NewsID)
	return result
}
