package entity

import (
	"time"

	"github.com/google/uuid"
)

// Fund is an investment vehicle, optionally managed by a GP firm.
type Fund struct {
	id        uuid.UUID
	orgID     uuid.UUID
	name      string
	fundType  string
	managerID uuid.UUID
	vintage   int
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// DefaultFundType is the fund_type applied on implicit creation.
const DefaultFundType = "Buyout"

// NewFund creates an unpersisted Fund. An empty fundType gets the default.
func NewFund(orgID uuid.UUID, name, fundType string, createdBy uuid.UUID) Fund {
	if fundType == "" {
		fundType = DefaultFundType
	}
	return Fund{
		id:        uuid.New(),
		orgID:     orgID,
		name:      name,
		fundType:  fundType,
		createdBy: createdBy,
	}
}

// ReconstructFund recreates a Fund from persistence.
func ReconstructFund(id, orgID uuid.UUID, name, fundType string, managerID uuid.UUID, vintage int, createdBy uuid.UUID, createdAt, updatedAt time.Time) Fund {
	return Fund{
		id:        id,
		orgID:     orgID,
		name:      name,
		fundType:  fundType,
		managerID: managerID,
		vintage:   vintage,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the fund id.
func (f Fund) ID() uuid.UUID { return f.id }

// OrgID returns the owning tenant.
func (f Fund) OrgID() uuid.UUID { return f.orgID }

// Name returns the fund name.
func (f Fund) Name() string { return f.name }

// FundType returns the strategy discriminator (e.g. "Buyout").
func (f Fund) FundType() string { return f.fundType }

// ManagerID returns the managing GP's id, or uuid.Nil when unset.
func (f Fund) ManagerID() uuid.UUID { return f.managerID }

// Vintage returns the vintage year, or 0 when unset.
func (f Fund) Vintage() int { return f.vintage }

// CreatedBy returns the creating user.
func (f Fund) CreatedBy() uuid.UUID { return f.createdBy }

// CreatedAt returns when the fund was created.
func (f Fund) CreatedAt() time.Time { return f.createdAt }

// UpdatedAt returns when the fund was last updated.
func (f Fund) UpdatedAt() time.Time { return f.updatedAt }

// WithManager returns a copy of the fund managed by the given GP.
func (f Fund) WithManager(managerID uuid.UUID) Fund {
	f.managerID = managerID
	return f
}

// Ref returns the normalized reference for this fund.
func (f Fund) Ref() Ref { return NewRef(KindFund, f.id, f.orgID, f.name) }
