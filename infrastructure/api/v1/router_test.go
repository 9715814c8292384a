package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dealdeskhq/dealdesk"
	"github.com/dealdeskhq/dealdesk/domain/news"
	"github.com/dealdeskhq/dealdesk/infrastructure/api"
	"github.com/dealdeskhq/dealdesk/infrastructure/api/middleware"
	"github.com/dealdeskhq/dealdesk/infrastructure/api/v1/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *dealdesk.Client) {
	t.Helper()

	client, err := dealdesk.New(
		dealdesk.WithSQLite(":memory:"),
		dealdesk.WithoutScheduler(),
		dealdesk.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	server := api.NewServer("127.0.0.1:0", client.Logger())
	server.MountV1(client)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts, client
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, orgID uuid.UUID, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if orgID != uuid.Nil {
		req.Header.Set(middleware.OrgIDHeader, orgID.String())
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAPI_RequiresTenantHeader(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/entities/search?q=apex", uuid.Nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_CreateAndSearchEntities(t *testing.T) {
	ts, _ := newTestServer(t)
	orgID := uuid.New()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/entities", orgID, dto.CreateEntityRequest{
		Type:      "gp",
		Name:      "Apex Partners",
		CreatedBy: uuid.New().String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.EntityRef](t, resp)
	assert.Equal(t, "gp", created.Type)
	assert.Equal(t, "Apex Partners", created.Name)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/entities/search?q=apex", orgID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	search := decode[dto.SearchResponse](t, resp)
	require.Len(t, search.Results, 1)
	assert.Equal(t, created.ID, search.Results[0].ID)
}

func TestAPI_SearchIsTenantScoped(t *testing.T) {
	ts, _ := newTestServer(t)
	orgID := uuid.New()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/entities", orgID, dto.CreateEntityRequest{
		Type: "gp", Name: "Apex Partners", CreatedBy: uuid.New().String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/entities/search?q=apex", uuid.New(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	search := decode[dto.SearchResponse](t, resp)
	assert.Empty(t, search.Results)
}

func TestAPI_Resolve(t *testing.T) {
	ts, _ := newTestServer(t)
	orgID := uuid.New()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/entities", orgID, dto.CreateEntityRequest{
		Type: "fund", Name: "Apex Buyout Fund III", CreatedBy: uuid.New().String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.EntityRef](t, resp)

	// Resolution ignores a wrong type hint and probes the other tables.
	resp = doJSON(t, ts, http.MethodPost, "/api/v1/entities/resolve", orgID, dto.ResolveRequest{
		Type: "lp", ID: created.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resolved := decode[dto.EntityRef](t, resp)
	assert.Equal(t, "fund", resolved.Type)
	assert.Equal(t, created.ID, resolved.ID)
}

func TestAPI_ResolveNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/entities/resolve", uuid.New(), dto.ResolveRequest{
		Type: "gp", ID: uuid.New().String(),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_CreateEntityValidation(t *testing.T) {
	ts, _ := newTestServer(t)
	orgID := uuid.New()

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/entities", orgID, dto.CreateEntityRequest{
		Type: "spaceship", Name: "Rocket Co", CreatedBy: uuid.New().String(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/entities", orgID, dto.CreateEntityRequest{
		Type: "gp", Name: "  ", CreatedBy: uuid.New().String(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ListEntities(t *testing.T) {
	ts, _ := newTestServer(t)
	orgID := uuid.New()

	for _, name := range []string{"Zenith Capital", "Apex Partners"} {
		resp := doJSON(t, ts, http.MethodPost, "/api/v1/entities", orgID, dto.CreateEntityRequest{
			Type: "gp", Name: name, CreatedBy: uuid.New().String(),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, ts, http.MethodGet, "/api/v1/entities/gps", orgID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse](t, resp)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Apex Partners", list.Items[0].Name)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/entities/starships", orgID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_NewsFromTaskAndLinks(t *testing.T) {
	ts, client := newTestServer(t)
	orgID := uuid.New()
	ctx := context.Background()

	task, err := client.TaskStore().Save(ctx, news.NewResearchTask(orgID, "Research Acme",
		news.TaskMetadata{Headline: "Acme Capital closes Fund IV"}, uuid.New()))
	require.NoError(t, err)

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/news/from-task/"+task.ID().String(), orgID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	record := decode[dto.News](t, resp)
	assert.Equal(t, "Acme Capital closes Fund IV", record.Headline)
	assert.Equal(t, string(news.StatusNew), record.Status)

	// Idempotent: the second call returns the same record.
	resp = doJSON(t, ts, http.MethodPost, "/api/v1/news/from-task/"+task.ID().String(), orgID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	again := decode[dto.News](t, resp)
	assert.Equal(t, record.ID, again.ID)

	// Link an entity to the record.
	resp = doJSON(t, ts, http.MethodPost, "/api/v1/entities", orgID, dto.CreateEntityRequest{
		Type: "gp", Name: "Acme Capital", CreatedBy: uuid.New().String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	gp := decode[dto.EntityRef](t, resp)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/news/"+record.ID+"/links", orgID, dto.CreateLinkRequest{
		Type: "gp", EntityID: gp.ID, CreatedBy: uuid.New().String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/news/"+record.ID+"/links", orgID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	links := decode[dto.LinksResponse](t, resp)
	require.Len(t, links.Links, 1)
	assert.Equal(t, gp.ID, links.Links[0].EntityID)
}

func TestAPI_NewsForEntity(t *testing.T) {
	ts, client := newTestServer(t)
	orgID := uuid.New()
	ctx := context.Background()

	task, err := client.TaskStore().Save(ctx, news.NewResearchTask(orgID, "Research Acme",
		news.TaskMetadata{Headline: "Acme Capital closes Fund IV"}, uuid.New()))
	require.NoError(t, err)

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/news/from-task/"+task.ID().String(), orgID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	record := decode[dto.News](t, resp)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/entities", orgID, dto.CreateEntityRequest{
		Type: "gp", Name: "Acme Capital", CreatedBy: uuid.New().String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	gp := decode[dto.EntityRef](t, resp)

	resp = doJSON(t, ts, http.MethodPost, "/api/v1/news/"+record.ID+"/links", orgID, dto.CreateLinkRequest{
		Type: "gp", EntityID: gp.ID, CreatedBy: uuid.New().String(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/entities/gps/"+gp.ID+"/news", orgID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	feed := decode[map[string][]dto.News](t, resp)
	require.Len(t, feed["news"], 1)
	assert.Equal(t, record.ID, feed["news"][0].ID)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/entities/gps/"+uuid.New().String()+"/news", orgID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_NewsLinksWrongTenant(t *testing.T) {
	ts, client := newTestServer(t)
	orgID := uuid.New()
	ctx := context.Background()

	task, err := client.TaskStore().Save(ctx, news.NewResearchTask(orgID, "Research Acme",
		news.TaskMetadata{Headline: "Acme news"}, uuid.New()))
	require.NoError(t, err)

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/news/from-task/"+task.ID().String(), orgID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	record := decode[dto.News](t, resp)

	resp = doJSON(t, ts, http.MethodGet, "/api/v1/news/"+record.ID+"/links", uuid.New(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_ProcessWithoutProviderIsUnavailable(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, ts, http.MethodPost, "/api/v1/news/"+uuid.New().String()+"/process", uuid.New(), nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAPI_Healthz(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
