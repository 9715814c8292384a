package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dealdeskhq/dealdesk"
	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/domain/store"
	"github.com/dealdeskhq/dealdesk/infrastructure/api/middleware"
	"github.com/dealdeskhq/dealdesk/infrastructure/api/v1/dto"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// NewsRouter handles news API endpoints.
type NewsRouter struct {
	client *dealdesk.Client
	logger *slog.Logger
}

// NewNewsRouter creates a NewsRouter.
func NewNewsRouter(client *dealdesk.Client) *NewsRouter {
	return &NewsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for news endpoints.
func (r *NewsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/from-task/{taskID}", r.EnsureFromTask)
	router.Get("/{newsID}", r.Get)
	router.Post("/{newsID}/process", r.Process)
	router.Get("/{newsID}/links", r.ListLinks)
	router.Post("/{newsID}/links", r.CreateLink)

	return router
}

// EnsureFromTask handles POST /api/v1/news/from-task/{taskID}. It is
// idempotent: repeat calls return the existing record.
func (r *NewsRouter) EnsureFromTask(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)

	taskID, err := uuid.Parse(chi.URLParam(req, "taskID"))
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid task id", err), r.logger)
		return
	}

	record, err := r.client.Gateway.EnsureNewsRecord(ctx, orgID, taskID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.NewNews(record))
}

// Get handles GET /api/v1/news/{newsID}.
func (r *NewsRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)

	newsID, err := uuid.Parse(chi.URLParam(req, "newsID"))
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid news id", err), r.logger)
		return
	}

	record, err := r.client.NewsStore().FindOne(ctx, store.WithID(newsID), store.WithOrgID(orgID))
	if err != nil {
		middleware.WriteError(w, req, news.ErrNotFound, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.NewNews(record))
}

// Process handles POST /api/v1/news/{newsID}/process, running the
// processing pipeline synchronously. A lost claim race is a 409.
func (r *NewsRouter) Process(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)

	newsID, err := uuid.Parse(chi.URLParam(req, "newsID"))
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid news id", err), r.logger)
		return
	}

	if !r.client.ProcessingEnabled() {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusServiceUnavailable, "news processing is not configured", nil), r.logger)
		return
	}

	if err := r.client.Processor.Process(ctx, orgID, newsID); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.ProcessResponse{
		NewsID: newsID.String(),
		Status: string(news.StatusCompleted),
	})
}

// ListLinks handles GET /api/v1/news/{newsID}/links.
func (r *NewsRouter) ListLinks(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)

	newsID, err := uuid.Parse(chi.URLParam(req, "newsID"))
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid news id", err), r.logger)
		return
	}

	links, err := r.client.Links.ListForNews(ctx, orgID, newsID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.NewLinksResponse(links))
}

// CreateLink handles POST /api/v1/news/{newsID}/links.
func (r *NewsRouter) CreateLink(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	orgID := middleware.OrgID(ctx)

	newsID, err := uuid.Parse(chi.URLParam(req, "newsID"))
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid news id", err), r.logger)
		return
	}

	var body dto.CreateLinkRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid request body", err), r.logger)
		return
	}

	entityID, err := uuid.Parse(body.EntityID)
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid entity id", err), r.logger)
		return
	}
	createdBy, err := uuid.Parse(body.CreatedBy)
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewAPIError(http.StatusBadRequest, "invalid created_by", err), r.logger)
		return
	}

	link, err := r.client.Links.CreateLink(ctx, orgID, newsID, body.Type, entityID, createdBy)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, dto.NewLink(link))
}
