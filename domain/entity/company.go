package entity

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioCompany is an operating business held (or tracked) by the tenant.
type PortfolioCompany struct {
	id        uuid.UUID
	orgID     uuid.UUID
	name      string
	sector    string
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewPortfolioCompany creates an unpersisted PortfolioCompany.
func NewPortfolioCompany(orgID uuid.UUID, name, sector string, createdBy uuid.UUID) PortfolioCompany {
	return PortfolioCompany{
		id:        uuid.New(),
		orgID:     orgID,
		name:      name,
		sector:    sector,
		createdBy: createdBy,
	}
}

// ReconstructPortfolioCompany recreates a PortfolioCompany from persistence.
func ReconstructPortfolioCompany(id, orgID uuid.UUID, name, sector string, createdBy uuid.UUID, createdAt, updatedAt time.Time) PortfolioCompany {
	return PortfolioCompany{
		id:        id,
		orgID:     orgID,
		name:      name,
		sector:    sector,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the company id.
func (c PortfolioCompany) ID() uuid.UUID { return c.id }

// OrgID returns the owning tenant.
func (c PortfolioCompany) OrgID() uuid.UUID { return c.orgID }

// Name returns the company name.
func (c PortfolioCompany) Name() string { return c.name }

// Sector returns the sector classification.
func (c PortfolioCompany) Sector() string { return c.sector }

// CreatedBy returns the creating user.
func (c PortfolioCompany) CreatedBy() uuid.UUID { return c.createdBy }

// CreatedAt returns when the company was created.
func (c PortfolioCompany) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the company was last updated.
func (c PortfolioCompany) UpdatedAt() time.Time { return c.updatedAt }

// Ref returns the normalized reference for this company.
func (c PortfolioCompany) Ref() Ref { return NewRef(KindPortfolioCompany, c.id, c.orgID, c.name) }
