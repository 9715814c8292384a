package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/dealdeskhq/dealdesk/domain/store"
	"gorm.io/gorm"
)

// ErrNotFound indicates the requested row was not found.
var ErrNotFound = errors.New("record not found")

// EntityMapper maps between a domain type and its database model.
type EntityMapper[D any, E any] interface {
	ToDomain(model E) D
	ToModel(domain D) E
}

// Repository provides generic persistence operations for a single table,
// shaped by store.Option-based queries. Concrete stores embed it and add
// their bespoke methods (Save, conditional updates, search).
type Repository[D any, E any] struct {
	db     Database
	mapper EntityMapper[D, E]
	label  string
}

// NewRepository creates a new Repository. The label names the aggregate in
// wrapped errors ("find gp: ...").
func NewRepository[D any, E any](db Database, mapper EntityMapper[D, E], label string) Repository[D, E] {
	return Repository[D, E]{
		db:     db,
		mapper: mapper,
		label:  label,
	}
}

// Find retrieves rows matching the given options.
func (r Repository[D, E]) Find(ctx context.Context, options ...store.Option) ([]D, error) {
	var models []E
	db := ApplyOptions(r.db.Session(ctx).Model(new(E)), options...)
	if result := db.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("find %s: %w", r.label, result.Error)
	}

	domains := make([]D, len(models))
	for i, model := range models {
		domains[i] = r.mapper.ToDomain(model)
	}
	return domains, nil
}

// FindOne retrieves a single row matching the given options.
// A missing row yields ErrNotFound.
func (r Repository[D, E]) FindOne(ctx context.Context, options ...store.Option) (D, error) {
	var model E
	db := ApplyOptions(r.db.Session(ctx), options...)
	if result := db.First(&model); result.Error != nil {
		var zero D
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%w: %s", ErrNotFound, r.label)
		}
		return zero, fmt.Errorf("find one %s: %w", r.label, result.Error)
	}
	return r.mapper.ToDomain(model), nil
}

// Exists checks whether any row matches the given options.
func (r Repository[D, E]) Exists(ctx context.Context, options ...store.Option) (bool, error) {
	count, err := r.Count(ctx, options...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of rows matching the given options.
func (r Repository[D, E]) Count(ctx context.Context, options ...store.Option) (int64, error) {
	var count int64
	db := ApplyConditions(r.db.Session(ctx).Model(new(E)), options...)
	if result := db.Count(&count); result.Error != nil {
		return 0, fmt.Errorf("count %s: %w", r.label, result.Error)
	}
	return count, nil
}

// DeleteBy removes rows matching the given options.
func (r Repository[D, E]) DeleteBy(ctx context.Context, options ...store.Option) error {
	db := ApplyOptions(r.db.Session(ctx), options...)
	if result := db.Delete(new(E)); result.Error != nil {
		return fmt.Errorf("delete %s: %w", r.label, result.Error)
	}
	return nil
}

// DB returns a GORM session for bespoke store queries.
func (r Repository[D, E]) DB(ctx context.Context) *gorm.DB {
	return r.db.Session(ctx)
}

// Mapper returns the entity mapper.
func (r Repository[D, E]) Mapper() EntityMapper[D, E] {
	return r.mapper
}

// Label returns the aggregate label used in wrapped errors.
func (r Repository[D, E]) Label() string {
	return r.label
}
