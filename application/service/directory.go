package service

import (
	"context"
	"fmt"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/google/uuid"
)

// Directory lists CRM entities within one tenant, ordered by name.
type Directory struct {
	stores entity.Stores
}

// NewDirectory creates a Directory.
func NewDirectory(stores entity.Stores) *Directory {
	return &Directory{stores: stores}
}

func listOptions(orgID uuid.UUID, limit, offset int) []store.Option {
	opts := []store.Option{
		store.WithOrgID(orgID),
		store.WithOrderAsc("name"),
	}
	if limit > 0 {
		opts = append(opts, store.WithLimit(limit))
	}
	if offset > 0 {
		opts = append(opts, store.WithOffset(offset))
	}
	return opts
}

// GPs lists GP firms.
func (d *Directory) GPs(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]entity.GP, error) {
	gps, err := d.stores.GPs.Find(ctx, listOptions(orgID, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list gps: %w", err)
	}
	return gps, nil
}

// LPs lists LP institutions.
func (d *Directory) LPs(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]entity.LP, error) {
	lps, err := d.stores.LPs.Find(ctx, listOptions(orgID, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list lps: %w", err)
	}
	return lps, nil
}

// Funds lists funds.
func (d *Directory) Funds(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]entity.Fund, error) {
	funds, err := d.stores.Funds.Find(ctx, listOptions(orgID, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}
	return funds, nil
}

// Companies lists portfolio companies.
func (d *Directory) Companies(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]entity.PortfolioCompany, error) {
	companies, err := d.stores.Companies.Find(ctx, listOptions(orgID, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list portfolio companies: %w", err)
	}
	return companies, nil
}

// ServiceProviders lists service providers.
func (d *Directory) ServiceProviders(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]entity.ServiceProvider, error) {
	providers, err := d.stores.ServiceProviders.Find(ctx, listOptions(orgID, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list service providers: %w", err)
	}
	return providers, nil
}

// Contacts lists contacts, ordered by last then first name since contacts
// carry no single name column.
func (d *Directory) Contacts(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]entity.Contact, error) {
	opts := []store.Option{
		store.WithOrgID(orgID),
		store.WithOrderAsc("last_name"),
		store.WithOrderAsc("first_name"),
	}
	if limit > 0 {
		opts = append(opts, store.WithLimit(limit))
	}
	if offset > 0 {
		opts = append(opts, store.WithOffset(offset))
	}

	contacts, err := d.stores.Contacts.Find(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}
