package entity

import "github.com/google/uuid"

// Ref is a resolved, normalized reference to an entity row. A Ref is only
// valid when a row with the same id exists in kind's table under orgID;
// cross-tenant references never resolve.
type Ref struct {
	id    uuid.UUID
	orgID uuid.UUID
	kind  Kind
	name  string
}

// NewRef creates a resolved entity reference.
func NewRef(kind Kind, id, orgID uuid.UUID, name string) Ref {
	return Ref{id: id, orgID: orgID, kind: kind, name: name}
}

// ID returns the entity id.
func (r Ref) ID() uuid.UUID { return r.id }

// OrgID returns the owning tenant.
func (r Ref) OrgID() uuid.UUID { return r.orgID }

// Kind returns the canonical entity kind.
func (r Ref) Kind() Kind { return r.kind }

// Name returns the derived display name.
func (r Ref) Name() string { return r.name }

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool { return r.id == uuid.Nil }

// SearchResult is one cross-table search hit. Kind is always canonical,
// regardless of which alias or table matched. Results are computed on
// demand and never persisted.
type SearchResult struct {
	id   uuid.UUID
	name string
	kind Kind
}

// NewSearchResult creates a search hit.
func NewSearchResult(id uuid.UUID, name string, kind Kind) SearchResult {
	return SearchResult{id: id, name: name, kind: kind}
}

// ID returns the matched entity id.
func (s SearchResult) ID() uuid.UUID { return s.id }

// Name returns the display name.
func (s SearchResult) Name() string { return s.name }

// Kind returns the canonical kind.
func (s SearchResult) Kind() Kind { return s.kind }
