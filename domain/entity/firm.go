package entity

import (
	"time"

	"github.com/google/uuid"
)

// GP is a general-partner firm (the investing side of the ledger).
type GP struct {
	id        uuid.UUID
	orgID     uuid.UUID
	name      string
	firmType  string
	website   string
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// DefaultGPFirmType is the firm_type applied when a GP is created on the fly
// (e.g. by the news-linking flow) without an explicit type.
const DefaultGPFirmType = "PE"

// NewGP creates an unpersisted GP. An empty firmType gets the default.
func NewGP(orgID uuid.UUID, name, firmType string, createdBy uuid.UUID) GP {
	if firmType == "" {
		firmType = DefaultGPFirmType
	}
	return GP{
		id:        uuid.New(),
		orgID:     orgID,
		name:      name,
		firmType:  firmType,
		createdBy: createdBy,
	}
}

// ReconstructGP recreates a GP from persistence.
func ReconstructGP(id, orgID uuid.UUID, name, firmType, website string, createdBy uuid.UUID, createdAt, updatedAt time.Time) GP {
	return GP{
		id:        id,
		orgID:     orgID,
		name:      name,
		firmType:  firmType,
		website:   website,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the firm id.
func (g GP) ID() uuid.UUID { return g.id }

// OrgID returns the owning tenant.
func (g GP) OrgID() uuid.UUID { return g.orgID }

// Name returns the firm name.
func (g GP) Name() string { return g.name }

// FirmType returns the firm type discriminator (e.g. "PE", "VC").
func (g GP) FirmType() string { return g.firmType }

// Website returns the firm website.
func (g GP) Website() string { return g.website }

// CreatedBy returns the creating user.
func (g GP) CreatedBy() uuid.UUID { return g.createdBy }

// CreatedAt returns when the firm was created.
func (g GP) CreatedAt() time.Time { return g.createdAt }

// UpdatedAt returns when the firm was last updated.
func (g GP) UpdatedAt() time.Time { return g.updatedAt }

// Ref returns the normalized reference for this firm.
func (g GP) Ref() Ref { return NewRef(KindGP, g.id, g.orgID, g.name) }

// LP is a limited-partner institution (the capital side of the ledger).
type LP struct {
	id        uuid.UUID
	orgID     uuid.UUID
	name      string
	lpType    string
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// DefaultLPType is the lp_type applied on implicit creation.
const DefaultLPType = "Pension Fund"

// NewLP creates an unpersisted LP. An empty lpType gets the default.
func NewLP(orgID uuid.UUID, name, lpType string, createdBy uuid.UUID) LP {
	if lpType == "" {
		lpType = DefaultLPType
	}
	return LP{
		id:        uuid.New(),
		orgID:     orgID,
		name:      name,
		lpType:    lpType,
		createdBy: createdBy,
	}
}

// ReconstructLP recreates an LP from persistence.
func ReconstructLP(id, orgID uuid.UUID, name, lpType string, createdBy uuid.UUID, createdAt, updatedAt time.Time) LP {
	return LP{
		id:        id,
		orgID:     orgID,
		name:      name,
		lpType:    lpType,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the institution id.
func (l LP) ID() uuid.UUID { return l.id }

// OrgID returns the owning tenant.
func (l LP) OrgID() uuid.UUID { return l.orgID }

// Name returns the institution name.
func (l LP) Name() string { return l.name }

// LPType returns the investor type discriminator.
func (l LP) LPType() string { return l.lpType }

// CreatedBy returns the creating user.
func (l LP) CreatedBy() uuid.UUID { return l.createdBy }

// CreatedAt returns when the institution was created.
func (l LP) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns when the institution was last updated.
func (l LP) UpdatedAt() time.Time { return l.updatedAt }

// Ref returns the normalized reference for this institution.
func (l LP) Ref() Ref { return NewRef(KindLP, l.id, l.orgID, l.name) }

// ServiceProvider is a law firm, placement agent, fund admin, or similar.
type ServiceProvider struct {
	id          uuid.UUID
	orgID       uuid.UUID
	name        string
	serviceType string
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// DefaultServiceType is the service_type applied on implicit creation.
const DefaultServiceType = "Advisor"

// NewServiceProvider creates an unpersisted ServiceProvider.
func NewServiceProvider(orgID uuid.UUID, name, serviceType string, createdBy uuid.UUID) ServiceProvider {
	if serviceType == "" {
		serviceType = DefaultServiceType
	}
	return ServiceProvider{
		id:          uuid.New(),
		orgID:       orgID,
		name:        name,
		serviceType: serviceType,
		createdBy:   createdBy,
	}
}

// ReconstructServiceProvider recreates a ServiceProvider from persistence.
func ReconstructServiceProvider(id, orgID uuid.UUID, name, serviceType string, createdBy uuid.UUID, createdAt, updatedAt time.Time) ServiceProvider {
	return ServiceProvider{
		id:          id,
		orgID:       orgID,
		name:        name,
		serviceType: serviceType,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the provider id.
func (s ServiceProvider) ID() uuid.UUID { return s.id }

// OrgID returns the owning tenant.
func (s ServiceProvider) OrgID() uuid.UUID { return s.orgID }

// Name returns the provider name.
func (s ServiceProvider) Name() string { return s.name }

// ServiceType returns the service type discriminator.
func (s ServiceProvider) ServiceType() string { return s.serviceType }

// CreatedBy returns the creating user.
func (s ServiceProvider) CreatedBy() uuid.UUID { return s.createdBy }

// CreatedAt returns when the provider was created.
func (s ServiceProvider) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns when the provider was last updated.
func (s ServiceProvider) UpdatedAt() time.Time { return s.updatedAt }

// Ref returns the normalized reference for this provider.
func (s ServiceProvider) Ref() Ref { return NewRef(KindServiceProvider, s.id, s.orgID, s.name) }
