// Package v1 implements the v1 HTTP API routers.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dealdeskhq/dealdesk"
	"github.com/dealdeskhq/dealdesk/domain/entity"
	"github.com/dealdeskhq/dealdesk/infrastructure/api/middleware"
	"github.com/dealdeskhq/dealdesk/infrastructure/api/v1/dto"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// EntityRouter handles entity API endpoints.
type EntityRouter struct {
	client *dealdesk.Client
	logger *slog.Logger
}

// NewEntityRouter creates an EntityRouter.
func NewEntityRouter(client *dealdesk.Client) *EntityRouter {
	return &EntityRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for entity endpoints.
func (r *EntityRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/search", r.Search)
	router.Post("/resolve", r.Resolve)
	router.Post("/", r.Create)
	router.Get("/{kind}", r.List)
	router.Get("/{kind}/{entityID}/news", r.News)

	return router
}

// Search handles GET /api/v1/entities/search?q=.
func (r *EntityRouter) Search(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)
	query := req.URL.Query().Get("q")

	results, err := r.client.Search.Search(ctx, orgID, query)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.NewSearchResponse(results))
}

// Resolve handles POST /api/v1/entities/resolve.
func (r *EntityRouter) Resolve(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)

	var body dto.ResolveRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}

	entityID, err := uuid.Parse(body.ID)
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid entity id", err), r.logger)
		return
	}

	ref, err := r.client.Resolver.Resolve(ctx, orgID, body.Type, entityID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.NewEntityRef(ref))
}

// Create handles POST /api/v1/entities.
func (r *EntityRouter) Create(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)

	var body dto.CreateEntityRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}

	createdBy, err := uuid.Parse(body.CreatedBy)
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid created_by", err), r.logger)
		return
	}

	ref, err := r.client.Creator.Create(ctx, orgID, body.Type, body.Name, createdBy)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, dto.NewEntityRef(ref))
}

// List handles GET /api/v1/entities/{kind}.
func (r *EntityRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)
	limit, offset := pagination(req)

	var (
		items []dto.EntitySummary
		err   error
	)

	switch chi.URLParam(req, "kind") {
	case "gps":
		var gps []entity.GP
		if gps, err = r.client.Directory.GPs(ctx, orgID, limit, offset); err == nil {
			items = make([]dto.EntitySummary, len(gps))
			for i, gp := range gps {
				items[i] = dto.EntitySummary{ID: gp.ID().String(), Name: gp.Name()}
			}
		}
	case "lps":
		var lps []entity.LP
		if lps, err = r.client.Directory.LPs(ctx, orgID, limit, offset); err == nil {
			items = make([]dto.EntitySummary, len(lps))
			for i, lp := range lps {
				items[i] = dto.EntitySummary{ID: lp.ID().String(), Name: lp.Name()}
			}
		}
	case "funds":
		var funds []entity.Fund
		if funds, err = r.client.Directory.Funds(ctx, orgID, limit, offset); err == nil {
			items = make([]dto.EntitySummary, len(funds))
			for i, fund := range funds {
				items[i] = dto.EntitySummary{ID: fund.ID().String(), Name: fund.Name()}
			}
		}
	case "companies":
		var companies []entity.PortfolioCompany
		if companies, err = r.client.Directory.Companies(ctx, orgID, limit, offset); err == nil {
			items = make([]dto.EntitySummary, len(companies))
			for i, company := range companies {
				items[i] = dto.EntitySummary{ID: company.ID().String(), Name: company.Name()}
			}
		}
	case "service-providers":
		var providers []entity.ServiceProvider
		if providers, err = r.client.Directory.ServiceProviders(ctx, orgID, limit, offset); err == nil {
			items = make([]dto.EntitySummary, len(providers))
			for i, sp := range providers {
				items[i] = dto.EntitySummary{ID: sp.ID().String(), Name: sp.Name()}
			}
		}
	case "contacts":
		var contacts []entity.Contact
		if contacts, err = r.client.Directory.Contacts(ctx, orgID, limit, offset); err == nil {
			items = make([]dto.EntitySummary, len(contacts))
			for i, contact := range contacts {
				items[i] = dto.EntitySummary{ID: contact.ID().String(), Name: contact.DisplayName()}
			}
		}
	default:
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusNotFound, "unknown entity collection", nil), r.logger)
		return
	}

	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.ListResponse{Items: items})
}

// News handles GET /api/v1/entities/{kind}/{entityID}/news.
func (r *EntityRouter) News(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)

	entityID, err := uuid.Parse(chi.URLParam(req, "entityID"))
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid entity id", err), r.logger)
		return
	}

	records, err := r.client.Links.NewsForEntity(ctx, orgID, chi.URLParam(req, "kind"), entityID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	out := make([]dto.News, len(records))
	for i, record := range records {
		out[i] = dto.NewNews(record)
	}
	middleware.WriteJSON(w, http.StatusOK, map[string][]dto.News{"news": out})
}

// pagination reads limit and offset query parameters; absent or malformed
// values fall back to 0, which the directory treats as unpaginated.
func pagination(req *http.Request) (limit, offset int) {
	if v := req.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := req.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}
