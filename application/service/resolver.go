// Package service provides application layer services that orchestrate
// domain operations.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/dealdeskhq/dealdesk/internal/database"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// EntityResolver resolves a loosely-typed (type, id) pair to a canonical
// entity reference within one tenant.
type EntityResolver struct {
	stores     entity.Stores
	normalizer *entity.Normalizer
	logger     *slog.Logger
}

// NewEntityResolver creates an EntityResolver.
func NewEntityResolver(stores entity.Stores, normalizer *entity.Normalizer, logger *slog.Logger) *EntityResolver {
	return &EntityResolver{
		stores:     stores,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Resolve maps a raw type string and entity id to a canonical reference.
// The raw type is treated as a hint: when its table misses (stale callers,
// legacy type vocabularies), every entity table is probed in a fixed order
// and the first hit wins, so the result is deterministic regardless of
// which probe returns fastest. Legacy discriminators from the
// pre-migration schema never short-circuit to a single table, even when
// they normalize to a canonical kind: the id may live anywhere, so only
// the ordered probe gives a deterministic answer. A storage failure on
// one table degrades to a miss on that table rather than failing the
// whole resolution.
func (r *EntityResolver) Resolve(ctx context.Context, orgID uuid.UUID, rawType string, entityID uuid.UUID) (entity.Ref, error) {
	if entityID == uuid.Nil {
		return entity.Ref{}, entity.ErrNotFound
	}

	kind := r.normalizer.Normalize(rawType)
	if kind != entity.KindUnknown && !r.normalizer.IsLegacy(rawType) {
		if ref, ok := r.lookup(ctx, kind, orgID, entityID); ok {
			return ref, nil
		}
	}

	if ref, ok := r.probe(ctx, orgID, entityID); ok {
		if kind != entity.KindUnknown && ref.Kind() != kind {
			r.logger.DebugContext(ctx, "entity resolved under different kind",
				"requested", kind, "resolved", ref.Kind(), "entity_id", entityID)
		}
		return ref, nil
	}

	return entity.Ref{}, entity.ErrNotFound
}

// probe looks the id up in every entity table concurrently. Hits are
// collected by table position and scanned in entity.ProbeOrder, so the
// winner never depends on goroutine timing.
func (r *EntityResolver) probe(ctx context.Context, orgID, entityID uuid.UUID) (entity.Ref, bool) {
	refs := make([]entity.Ref, len(entity.ProbeOrder))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range entity.ProbeOrder {
		i, kind := i, kind
		g.Go(func() error {
			if ref, ok := r.lookup(gctx, kind, orgID, entityID); ok {
				refs[i] = ref
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, ref := range refs {
		if !ref.IsZero() {
			return ref, true
		}
	}
	return entity.Ref{}, false
}

// lookup fetches the id from a single kind's table. Storage errors other
// than not-found are logged and reported as a miss.
func (r *EntityResolver) lookup(ctx context.Context, kind entity.Kind, orgID, entityID uuid.UUID) (entity.Ref, bool) {
	opts := []store.Option{store.WithID(entityID), store.WithOrgID(orgID)}

	var ref entity.Ref
	var err error

	switch kind {
	case entity.KindGP:
		var gp entity.GP
		if gp, err = r.stores.GPs.FindOne(ctx, opts...); err == nil {
			ref = gp.Ref()
		}
	case entity.KindLP:
		var lp entity.LP
		if lp, err = r.stores.LPs.FindOne(ctx, opts...); err == nil {
			ref = lp.Ref()
		}
	case entity.KindFund:
		var fund entity.Fund
		if fund, err = r.stores.Funds.FindOne(ctx, opts...); err == nil {
			ref = fund.Ref()
		}
	case entity.KindPortfolioCompany:
		var company entity.PortfolioCompany
		if company, err = r.stores.Companies.FindOne(ctx, opts...); err == nil {
			ref = company.Ref()
		}
	case entity.KindContact:
		var contact entity.Contact
		if contact, err = r.stores.Contacts.FindOne(ctx, opts...); err == nil {
			ref = contact.Ref()
		}
	case entity.KindServiceProvider:
		var sp entity.ServiceProvider
		if sp, err = r.stores.ServiceProviders.FindOne(ctx, opts...); err == nil {
			ref = sp.Ref()
		}
	default:
		return entity.Ref{}, false
	}

	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			r.logger.WarnContext(ctx, "entity lookup degraded to miss",
				"kind", kind, "entity_id", entityID, "error", err)
		}
		return entity.Ref{}, false
	}
	return ref, true
}
