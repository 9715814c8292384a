package news

import (
	"time"

	"github.com/google/uuid"
)

// TaskMetadata is the research task's JSON metadata payload. The gateway
// reads the article fields from it and writes NewsID back after creating
// the canonical news record.
type TaskMetadata struct {
	Headline    string     `json:"headline,omitempty"`
	SourceName  string     `json:"source_name,omitempty"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
	URL         string     `json:"url,omitempty"`
	RawText     string     `json:"raw_text,omitempty"`
	CleanedText string     `json:"cleaned_text,omitempty"`
	NewsID      string     `json:"news_id,omitempty"`
}

// NewsUUID parses the metadata's news id, returning uuid.Nil when unset
// or malformed.
func (m TaskMetadata) NewsUUID() uuid.UUID {
	if m.NewsID == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(m.NewsID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ResearchTask is a source task produced upstream (scraping, manual entry)
// from which exactly one canonical news record is derived.
type ResearchTask struct {
	id        uuid.UUID
	orgID     uuid.UUID
	title     string
	metadata  TaskMetadata
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewResearchTask creates an unpersisted research task.
func NewResearchTask(orgID uuid.UUID, title string, metadata TaskMetadata, createdBy uuid.UUID) ResearchTask {
	return ResearchTask{
		id:        uuid.New(),
		orgID:     orgID,
		title:     title,
		metadata:  metadata,
		createdBy: createdBy,
	}
}

// ReconstructResearchTask recreates a research task from persistence.
func ReconstructResearchTask(id, orgID uuid.UUID, title string, metadata TaskMetadata, createdBy uuid.UUID, createdAt, updatedAt time.Time) ResearchTask {
	return ResearchTask{
		id:        id,
		orgID:     orgID,
		title:     title,
		metadata:  metadata,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the task id.
func (t ResearchTask) ID() uuid.UUID { return t.id }

// OrgID returns the owning tenant.
func (t ResearchTask) OrgID() uuid.UUID { return t.orgID }

// Title returns the task title.
func (t ResearchTask) Title() string { return t.title }

// Metadata returns the task metadata.
func (t ResearchTask) Metadata() TaskMetadata { return t.metadata }

// CreatedBy returns the creating user.
func (t ResearchTask) CreatedBy() uuid.UUID { return t.createdBy }

// CreatedAt returns when the task was created.
func (t ResearchTask) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns when the task was last updated.
func (t ResearchTask) UpdatedAt() time.Time { return t.updatedAt }

// WithNewsID returns a copy whose metadata references the given news record.
func (t ResearchTask) WithNewsID(newsID uuid.UUID) ResearchTask {
	t.metadata.NewsID = newsID.String()
	return t
}
