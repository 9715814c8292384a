// Package dto defines the JSON request and response bodies for the v1 API.
package dto

import "github.com/dealdeskhq/dealdesk/domain/entity"

// EntityRef is a resolved entity reference.
type EntityRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// NewEntityRef maps a domain reference.
func NewEntityRef(ref entity.Ref) EntityRef {
	return EntityRef{
		ID:   ref.ID().String(),
		Type: string(ref.Kind()),
		Name: ref.Name(),
	}
}

// ResolveRequest asks for a loosely-typed reference to be resolved.
type ResolveRequest struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// CreateEntityRequest creates a new entity.
type CreateEntityRequest struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
}

// SearchResult is one cross-table search hit.
type SearchResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// SearchResponse is the cross-table search result list.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// NewSearchResponse maps domain search results.
func NewSearchResponse(results []entity.SearchResult) SearchResponse {
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{
			ID:   r.ID().String(),
			Name: r.Name(),
			Type: string(r.Kind()),
		}
	}
	return SearchResponse{Results: out}
}

// EntitySummary is one row in a directory listing.
type EntitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListResponse is a directory listing page.
type ListResponse struct {
	Items []EntitySummary `json:"items"`
}
