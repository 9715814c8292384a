package store

import "github.com/google/uuid"

// WithCondition adds a field = value equality condition.
// Domain packages use this to define their own typed options.
func WithCondition(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: value})
		return q
	}
}

// WithConditionIn adds a field IN (values) condition.
func WithConditionIn(field string, values any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: values, in: true})
		return q
	}
}

// WithWhere adds a raw WHERE fragment with positional arguments.
func WithWhere(expr string, args ...any) Option {
	return func(q Query) Query {
		q.clauses = append(q.clauses, Clause{expr: expr, args: args})
		return q
	}
}

// WithID filters by the "id" column.
func WithID(id uuid.UUID) Option {
	return WithCondition("id", id.String())
}

// WithOrgID scopes the query to a single tenant. Every store lookup that
// touches tenant data must carry this option.
func WithOrgID(orgID uuid.UUID) Option {
	return WithCondition("org_id", orgID.String())
}

// WithCreatedBy filters by the "created_by" column.
func WithCreatedBy(userID uuid.UUID) Option {
	return WithCondition("created_by", userID.String())
}

// WithLimit sets the maximum number of results.
func WithLimit(limit int) Option {
	return func(q Query) Query {
		q.limit = limit
		return q
	}
}

// WithOffset sets the result offset.
func WithOffset(offset int) Option {
	return func(q Query) Query {
		q.offset = offset
		return q
	}
}

// WithPagination combines limit and offset.
func WithPagination(limit, offset int) []Option {
	return []Option{WithLimit(limit), WithOffset(offset)}
}

// WithOrderAsc adds an ascending sort on the given column.
func WithOrderAsc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: true})
		return q
	}
}

// WithOrderDesc adds a descending sort on the given column.
func WithOrderDesc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: false})
		return q
	}
}
