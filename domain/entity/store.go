package entity

import (
	"context"

	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/google/uuid"
)

// NameSearcher performs tenant-scoped name matching over an entity table's
// display name. SearchByName is a case-insensitive substring match capped
// at limit rows; FindByName is a case-insensitive equality match over the
// whole table, unaffected by any search cap.
type NameSearcher interface {
	SearchByName(ctx context.Context, orgID uuid.UUID, query string, limit int) ([]SearchResult, error)
	FindByName(ctx context.Context, orgID uuid.UUID, name string) ([]SearchResult, error)
}

// GPStore persists GP firms.
type GPStore interface {
	store.Store[GP]
	NameSearcher
}

// LPStore persists LP institutions.
type LPStore interface {
	store.Store[LP]
	NameSearcher
}

// FundStore persists funds.
type FundStore interface {
	store.Store[Fund]
	NameSearcher
}

// PortfolioCompanyStore persists portfolio companies.
type PortfolioCompanyStore interface {
	store.Store[PortfolioCompany]
	NameSearcher
}

// ServiceProviderStore persists service providers.
type ServiceProviderStore interface {
	store.Store[ServiceProvider]
	NameSearcher
}

// ContactStore persists contacts.
type ContactStore interface {
	store.Store[Contact]
	NameSearcher
}

// Stores bundles one store per entity kind, in a single value the resolver,
// search, and creation services share.
type Stores struct {
	GPs              GPStore
	LPs              LPStore
	Funds            FundStore
	Companies        PortfolioCompanyStore
	Contacts         ContactStore
	ServiceProviders ServiceProviderStore
}

// Searcher returns the NameSearcher for the given kind, or nil for an
// unknown kind.
func (s Stores) Searcher(kind Kind) NameSearcher {
	switch kind {
	case KindGP:
		return s.GPs
	case KindLP:
		return s.LPs
	case KindFund:
		return s.Funds
	case KindPortfolioCompany:
		return s.Companies
	case KindContact:
		return s.Contacts
	case KindServiceProvider:
		return s.ServiceProviders
	default:
		return nil
	}
}
