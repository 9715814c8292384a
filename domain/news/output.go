package news

import (
	"time"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/google/uuid"
)

// Candidate is one entity mention the AI extracted from a news item. The
// linker resolves candidates against the CRM and creates missing entities
// when AutoCreate is set.
type Candidate struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	AutoCreate bool   `json:"auto_create,omitempty"`
}

// Kind normalizes the candidate's loosely-typed Type through the given
// normalizer.
func (c Candidate) Kind(normalizer *entity.Normalizer) entity.Kind {
	return normalizer.Normalize(c.Type)
}

// Output is the persisted result of one AI generation pass over a news
// item. The state machine hands its id to the entity linker.
type Output struct {
	id         uuid.UUID
	newsID     uuid.UUID
	orgID      uuid.UUID
	summary    string
	sentiment  string
	candidates []Candidate
	model      string
	createdAt  time.Time
}

// NewOutput creates an unpersisted AI output.
func NewOutput(newsID, orgID uuid.UUID, summary, sentiment string, candidates []Candidate, model string) Output {
	return Output{
		id:         uuid.New(),
		newsID:     newsID,
		orgID:      orgID,
		summary:    summary,
		sentiment:  sentiment,
		candidates: copyCandidates(candidates),
		model:      model,
	}
}

// ReconstructOutput recreates an AI output from persistence.
func ReconstructOutput(id, newsID, orgID uuid.UUID, summary, sentiment string, candidates []Candidate, model string, createdAt time.Time) Output {
	return Output{
		id:         id,
		newsID:     newsID,
		orgID:      orgID,
		summary:    summary,
		sentiment:  sentiment,
		candidates: copyCandidates(candidates),
		model:      model,
		createdAt:  createdAt,
	}
}

// ID returns the output id.
func (o Output) ID() uuid.UUID { return o.id }

// NewsID returns the news item the output was generated from.
func (o Output) NewsID() uuid.UUID { return o.newsID }

// OrgID returns the owning tenant.
func (o Output) OrgID() uuid.UUID { return o.orgID }

// Summary returns the generated summary.
func (o Output) Summary() string { return o.summary }

// Sentiment returns the generated sentiment label.
func (o Output) Sentiment() string { return o.sentiment }

// Candidates returns a copy of the extracted entity candidates.
func (o Output) Candidates() []Candidate {
	return copyCandidates(o.candidates)
}

// Model returns the model identifier that produced the output.
func (o Output) Model() string { return o.model }

// CreatedAt returns when the output was stored.
func (o Output) CreatedAt() time.Time { return o.createdAt }

func copyCandidates(candidates []Candidate) []Candidate {
	if candidates == nil {
		return nil
	}
	result := make([]Candidate, len(candidates))
	copy(result, candidates)
	return result
}
