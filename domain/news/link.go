package news

import (
	"time"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/google/uuid"
)

// Link associates a news item with a resolved CRM entity. The referenced
// entity must resolve within the news record's tenant at creation time;
// the linking service rejects anything else. A news item may carry zero or
// many links, and an entity may be linked from many news items.
type Link struct {
	id         uuid.UUID
	newsID     uuid.UUID
	entityKind entity.Kind
	entityID   uuid.UUID
	createdBy  uuid.UUID
	createdAt  time.Time
}

// NewLink creates an unpersisted link.
func NewLink(newsID uuid.UUID, kind entity.Kind, entityID, createdBy uuid.UUID) Link {
	return Link{
		id:         uuid.New(),
		newsID:     newsID,
		entityKind: kind,
		entityID:   entityID,
		createdBy:  createdBy,
	}
}

// ReconstructLink recreates a link from persistence.
func ReconstructLink(id, newsID uuid.UUID, kind entity.Kind, entityID, createdBy uuid.UUID, createdAt time.Time) Link {
	return Link{
		id:         id,
		newsID:     newsID,
		entityKind: kind,
		entityID:   entityID,
		createdBy:  createdBy,
		createdAt:  createdAt,
	}
}

// ID returns the link id.
func (l Link) ID() uuid.UUID { return l.id }

// NewsID returns the linked news item.
func (l Link) NewsID() uuid.UUID { return l.newsID }

// EntityKind returns the linked entity's canonical kind.
func (l Link) EntityKind() entity.Kind { return l.entityKind }

// EntityID returns the linked entity's id.
func (l Link) EntityID() uuid.UUID { return l.entityID }

// CreatedBy returns the creating user.
func (l Link) CreatedBy() uuid.UUID { return l.createdBy }

// CreatedAt returns when the link was created.
func (l Link) CreatedAt() time.Time { return l.createdAt }
