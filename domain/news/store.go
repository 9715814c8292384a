package news

import (
	"context"
	"errors"

	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/google/uuid"
)

// ErrNotFound indicates a news record, task, or output does not exist or
// is outside the caller's tenant.
var ErrNotFound = errors.New("news record not found")

// ErrAlreadyClaimed indicates another caller won the NEW/FAILED → PROCESSING
// transition; the losing caller must skip the record, not fail.
var ErrAlreadyClaimed = errors.New("news record already claimed")

// NewsStore persists news records and owns the status transitions.
type NewsStore interface {
	store.Store[News]

	// Claim atomically moves the record from NEW or FAILED to PROCESSING,
	// incrementing the attempt counter. It returns ErrAlreadyClaimed when
	// the record is not in a claimable state (someone else won the race or
	// the record is terminal) and ErrNotFound when no such record exists
	// in the tenant.
	Claim(ctx context.Context, orgID, newsID uuid.UUID) error

	// SetStatus records a terminal outcome (COMPLETED or FAILED) for a
	// record currently in PROCESSING.
	SetStatus(ctx context.Context, orgID, newsID uuid.UUID, status Status) error

	// FindNew returns up to limit records in NEW, oldest-created first,
	// across all tenants.
	FindNew(ctx context.Context, limit int) ([]News, error)

	// FindRetryable returns up to limit records in FAILED with fewer than
	// maxAttempts processing attempts, oldest-updated first, across all
	// tenants.
	FindRetryable(ctx context.Context, limit, maxAttempts int) ([]News, error)
}

// LinkStore persists news-entity links.
type LinkStore interface {
	store.Store[Link]
}

// TaskStore persists research tasks.
type TaskStore interface {
	store.Store[ResearchTask]

	// UpdateMetadata writes the task's metadata, scoped by both task id and
	// the already-verified tenant so a race can never retarget another
	// task's metadata.
	UpdateMetadata(ctx context.Context, orgID, taskID uuid.UUID, metadata TaskMetadata) error
}

// OutputStore persists AI generation outputs.
type OutputStore interface {
	store.Store[Output]
}

// Typed query options shared by the news stores.

// WithNewsID filters by the "news_id" column.
func WithNewsID(newsID uuid.UUID) store.Option {
	return store.WithCondition("news_id", newsID.String())
}

// WithStatus filters by the "status" column.
func WithStatus(status Status) store.Option {
	return store.WithCondition("status", string(status))
}

// WithEntity filters links by entity kind and id.
func WithEntity(kind string, entityID uuid.UUID) store.Option {
	return func(q store.Query) store.Query {
		q = store.WithCondition("entity_kind", kind)(q)
		return store.WithCondition("entity_id", entityID.String())(q)
	}
}
