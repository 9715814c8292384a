// Package news provides the news-processing domain: tenant-scoped news
// records, their processing state machine, entity links, and the research
// tasks news records are created from.
package news

import (
	"time"

	"github.com/google/uuid"
)

// Status is the processing state of a news record.
type Status string

// Status values. A record moves NEW → PROCESSING → {COMPLETED, FAILED};
// FAILED → PROCESSING on a scheduler-driven retry. COMPLETED is terminal.
const (
	StatusNew        Status = "NEW"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// IsTerminal reports whether the status permits no further processing.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// CanProcess reports whether processing may be (re)initiated from s.
// NEW and FAILED are the only eligible states.
func (s Status) CanProcess() bool {
	return s == StatusNew || s == StatusFailed
}

// News is a canonical news record. Exactly one exists per source task;
// only the state machine mutates it, and nothing here deletes it.
type News struct {
	id          uuid.UUID
	orgID       uuid.UUID
	headline    string
	sourceName  string
	publishDate time.Time
	url         string
	rawText     string
	cleanedText string
	status      Status
	attempts    int
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewNews creates an unpersisted news record in StatusNew.
func NewNews(orgID uuid.UUID, headline, sourceName string, publishDate time.Time, url, rawText, cleanedText string, createdBy uuid.UUID) News {
	return News{
		id:          uuid.New(),
		orgID:       orgID,
		headline:    headline,
		sourceName:  sourceName,
		publishDate: publishDate,
		url:         url,
		rawText:     rawText,
		cleanedText: cleanedText,
		status:      StatusNew,
		createdBy:   createdBy,
	}
}

// ReconstructNews recreates a news record from persistence.
func ReconstructNews(
	id, orgID uuid.UUID,
	headline, sourceName string,
	publishDate time.Time,
	url, rawText, cleanedText string,
	status Status,
	attempts int,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) News {
	return News{
		id:          id,
		orgID:       orgID,
		headline:    headline,
		sourceName:  sourceName,
		publishDate: publishDate,
		url:         url,
		rawText:     rawText,
		cleanedText: cleanedText,
		status:      status,
		attempts:    attempts,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the news id.
func (n News) ID() uuid.UUID { return n.id }

// OrgID returns the owning tenant.
func (n News) OrgID() uuid.UUID { return n.orgID }

// Headline returns the headline.
func (n News) Headline() string { return n.headline }

// SourceName returns the publication name.
func (n News) SourceName() string { return n.sourceName }

// PublishDate returns the publish date.
func (n News) PublishDate() time.Time { return n.publishDate }

// URL returns the source URL.
func (n News) URL() string { return n.url }

// RawText returns the scraped article text.
func (n News) RawText() string { return n.rawText }

// CleanedText returns the cleaned article text.
func (n News) CleanedText() string { return n.cleanedText }

// Status returns the processing status.
func (n News) Status() Status { return n.status }

// Attempts returns how many times processing has been started.
func (n News) Attempts() int { return n.attempts }

// CreatedBy returns the creating user.
func (n News) CreatedBy() uuid.UUID { return n.createdBy }

// CreatedAt returns when the record was created.
func (n News) CreatedAt() time.Time { return n.createdAt }

// UpdatedAt returns when the record was last updated.
func (n News) UpdatedAt() time.Time { return n.updatedAt }

// Text returns the text processing should operate on: the cleaned text when
// available, otherwise the raw text.
func (n News) Text() string {
	if n.cleanedText != "" {
		return n.cleanedText
	}
	return n.rawText
}
