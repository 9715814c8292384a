package dto

import (
	"time"

	"github.com/dealdeskhq/dealdesk/domain/news"
)

// News is a canonical news record.
type News struct {
	ID          string     `json:"id"`
	Headline    string     `json:"headline"`
	SourceName  string     `json:"source_name,omitempty"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
	URL         string     `json:"url,omitempty"`
	Status      string     `json:"status"`
	Attempts    int        `json:"attempts"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewNews maps a domain news record.
func NewNews(record news.News) News {
	out := News{
		ID:         record.ID().String(),
		Headline:   record.Headline(),
		SourceName: record.SourceName(),
		URL:        record.URL(),
		Status:     string(record.Status()),
		Attempts:   record.Attempts(),
		CreatedAt:  record.CreatedAt(),
	}
	if !record.PublishDate().IsZero() {
		published := record.PublishDate()
		out.PublishDate = &published
	}
	return out
}

// Link is a news-entity link.
type Link struct {
	ID         string    `json:"id"`
	NewsID     string    `json:"news_id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewLink maps a domain link.
func NewLink(link news.Link) Link {
	return Link{
		ID:         link.ID().String(),
		NewsID:     link.NewsID().String(),
		EntityType: string(link.EntityKind()),
		EntityID:   link.EntityID().String(),
		CreatedAt:  link.CreatedAt(),
	}
}

// LinksResponse lists a news record's links.
type LinksResponse struct {
	Links []Link `json:"links"`
}

// NewLinksResponse maps a list of domain links.
func NewLinksResponse(links []news.Link) LinksResponse {
	out := make([]Link, len(links))
	for i, l := range links {
		out[i] = NewLink(l)
	}
	return LinksResponse{Links: out}
}

// CreateLinkRequest links a news record to an entity.
type CreateLinkRequest struct {
	Type      string `json:"type"`
	EntityID  string `json:"entity_id"`
	CreatedBy string `json:"created_by"`
}

// ProcessResponse reports the outcome of an on-demand processing run.
type ProcessResponse struct {
	NewsID string `json:"news_id"`
	Status string `json:"status"`
}
