package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/google/uuid"
)

// EntityCreator creates CRM entities from loosely-typed input, applying
// per-kind defaults.
type EntityCreator struct {
	stores     entity.Stores
	normalizer *entity.Normalizer
	logger     *slog.Logger
}

// NewEntityCreator creates an EntityCreator.
func NewEntityCreator(stores entity.Stores, normalizer *entity.Normalizer, logger *slog.Logger) *EntityCreator {
	return &EntityCreator{
		stores:     stores,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Create persists a new entity of the kind the raw type normalizes to and
// returns its reference. An unrecognized type or blank name is a
// validation error, not a storage one.
func (c *EntityCreator) Create(ctx context.Context, orgID uuid.UUID, rawType, name string, createdBy uuid.UUID) (entity.Ref, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return entity.Ref{}, entity.NewValidationError("entity name must not be blank")
	}

	kind := c.normalizer.Normalize(rawType)
	if kind == entity.KindUnknown {
		return entity.Ref{}, entity.NewValidationError("unrecognized entity type %q", rawType)
	}

	ref, err := c.create(ctx, kind, orgID, trimmed, createdBy)
	if err != nil {
		return entity.Ref{}, fmt.Errorf("create %s: %w", kind, err)
	}

	c.logger.InfoContext(ctx, "entity created",
		"kind", kind, "entity_id", ref.ID(), "name", ref.Name())
	return ref, nil
}

func (c *EntityCreator) create(ctx context.Context, kind entity.Kind, orgID uuid.UUID, name string, createdBy uuid.UUID) (entity.Ref, error) {
	switch kind {
	case entity.KindGP:
		gp, err := c.stores.GPs.Save(ctx, entity.NewGP(orgID, name, "", createdBy))
		if err != nil {
			return entity.Ref{}, err
		}
		return gp.Ref(), nil
	case entity.KindLP:
		lp, err := c.stores.LPs.Save(ctx, entity.NewLP(orgID, name, "", createdBy))
		if err != nil {
			return entity.Ref{}, err
		}
		return lp.Ref(), nil
	case entity.KindFund:
		fund, err := c.stores.Funds.Save(ctx, entity.NewFund(orgID, name, "", createdBy))
		if err != nil {
			return entity.Ref{}, err
		}
		return fund.Ref(), nil
	case entity.KindPortfolioCompany:
		company, err := c.stores.Companies.Save(ctx, entity.NewPortfolioCompany(orgID, name, "", createdBy))
		if err != nil {
			return entity.Ref{}, err
		}
		return company.Ref(), nil
	case entity.KindContact:
		contact, err := c.stores.Contacts.Save(ctx, entity.NewContact(orgID, name, createdBy))
		if err != nil {
			return entity.Ref{}, err
		}
		return contact.Ref(), nil
	case entity.KindServiceProvider:
		sp, err := c.stores.ServiceProviders.Save(ctx, entity.NewServiceProvider(orgID, name, "", createdBy))
		if err != nil {
			return entity.Ref{}, err
		}
		return sp.Ref(), nil
	default:
		return entity.Ref{}, entity.NewValidationError("unrecognized entity kind %q", kind)
	}
}
