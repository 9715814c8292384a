package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a person, optionally affiliated with a firm.
type Contact struct {
	id          uuid.UUID
	orgID       uuid.UUID
	firstName   string
	lastName    string
	companyName string
	email       string
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewContact creates an unpersisted Contact from a full name, splitting on
// the first whitespace: "Jane van Dam" becomes first "Jane", last "van Dam".
// A name with no whitespace becomes the first name only.
func NewContact(orgID uuid.UUID, fullName string, createdBy uuid.UUID) Contact {
	first, last := SplitName(fullName)
	return Contact{
		id:        uuid.New(),
		orgID:     orgID,
		firstName: first,
		lastName:  last,
		createdBy: createdBy,
	}
}

// ReconstructContact recreates a Contact from persistence.
func ReconstructContact(id, orgID uuid.UUID, firstName, lastName, companyName, email string, createdBy uuid.UUID, createdAt, updatedAt time.Time) Contact {
	return Contact{
		id:          id,
		orgID:       orgID,
		firstName:   firstName,
		lastName:    lastName,
		companyName: companyName,
		email:       email,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the contact id.
func (c Contact) ID() uuid.UUID { return c.id }

// OrgID returns the owning tenant.
func (c Contact) OrgID() uuid.UUID { return c.orgID }

// FirstName returns the first name.
func (c Contact) FirstName() string { return c.firstName }

// LastName returns the last name.
func (c Contact) LastName() string { return c.lastName }

// CompanyName returns the affiliated company name, if any.
func (c Contact) CompanyName() string { return c.companyName }

// Email returns the contact email.
func (c Contact) Email() string { return c.email }

// CreatedBy returns the creating user.
func (c Contact) CreatedBy() uuid.UUID { return c.createdBy }

// CreatedAt returns when the contact was created.
func (c Contact) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the contact was last updated.
func (c Contact) UpdatedAt() time.Time { return c.updatedAt }

// WithCompany returns a copy affiliated with the given company name.
func (c Contact) WithCompany(companyName string) Contact {
	c.companyName = companyName
	return c
}

// DisplayName derives the contact's display name: "first last", falling back
// to "Unknown" when both parts are blank, with the company affiliation
// appended in parentheses when present.
func (c Contact) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(c.firstName) + " " + strings.TrimSpace(c.lastName))
	if name == "" {
		name = "Unknown"
	}
	if c.companyName != "" {
		name += " (" + c.companyName + ")"
	}
	return name
}

// Ref returns the normalized reference for this contact.
func (c Contact) Ref() Ref { return NewRef(KindContact, c.id, c.orgID, c.DisplayName()) }

// SplitName splits a full name into first and last on the first whitespace
// run. Leading and trailing whitespace is ignored.
func SplitName(fullName string) (first, last string) {
	trimmed := strings.TrimSpace(fullName)
	if trimmed == "" {
		return "", ""
	}
	parts := strings.SplitN(trimmed, " ", 2)
	first = parts[0]
	if len(parts) == 2 {
		last = strings.TrimSpace(parts[1])
	}
	return first, last
}
