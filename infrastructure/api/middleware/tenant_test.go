package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestTenant_ValidHeader(t *testing.T) {
	orgID := uuid.New()
	var seen uuid.UUID

	handler := Tenant()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = OrgID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(OrgIDHeader, orgID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen != orgID {
		t.Errorf("OrgID() = %v, want %v", seen, orgID)
	}
}

func TestTenant_MissingHeader(t *testing.T) {
	called := false
	handler := Tenant()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if called {
		t.Error("handler should not run without a tenant header")
	}
}

func TestTenant_MalformedHeader(t *testing.T) {
	handler := Tenant()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(OrgIDHeader, "not-a-uuid")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOrgID_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if got := OrgID(req.Context()); got != uuid.Nil {
		t.Errorf("OrgID() = %v, want uuid.Nil", got)
	}
}
