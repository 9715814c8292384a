package middleware

import (
	"context"
	"net/http"

	applog "github.com/dealdeskhq/dealdesk/internal/log"
	"github.com/google/uuid"
)

// OrgIDHeader carries the caller's tenant on every API request.
const OrgIDHeader = "X-Org-ID"

type orgIDKey struct{}

// Tenant returns a middleware that requires a valid tenant id header and
// stores it in the request context. Requests without one never reach a
// handler: every query below the API is tenant-scoped.
func Tenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(OrgIDHeader)
			if raw == "" {
				WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "missing " + OrgIDHeader + " header"})
				return
			}
			orgID, err := uuid.Parse(raw)
			if err != nil {
				WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + OrgIDHeader + " header"})
				return
			}

			ctx := context.WithValue(r.Context(), orgIDKey{}, orgID)
			ctx = applog.WithOrgID(ctx, orgID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OrgID returns the tenant id stored by the Tenant middleware, or uuid.Nil
// when the middleware did not run.
func OrgID(ctx context.Context) uuid.UUID {
	orgID, _ := ctx.Value(orgIDKey{}).(uuid.UUID)
	return orgID
}
