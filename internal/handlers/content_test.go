package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"mediation_portal/internal/audit"
	"mediation_portal/internal/config"
	"mediation_portal/internal/content"
	"mediation_portal/internal/middleware"
	"mediation_portal/internal/models"
	"mediation_portal/internal/revalidate"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (s *recordingSink) Insert(_ context.Context, entry models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func contentApp(store ContentStore) *fiber.App {
	rec := audit.NewRecorder(&recordingSink{}, zap.NewNop())
	reval := revalidate.NewClient(config.RevalidateConfig{}, zap.NewNop())
	h := NewContentHandler(store, rec, reval, true)

	app := fiber.New()
	for _, e := range content.All() {
		g := app.Group("/api/content/" + e.Segment)
		if e.Singleton {
			g.Get("/", h.GetSingleton(e))
			g.Put("/", h.PutSingleton(e))
			continue
		}
		g.Get("/", h.Get(e))
		g.Post("/", h.Post(e))
		g.Put("/", h.Put(e))
		g.Delete("/", h.Delete(e))
	}
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doReq(t *testing.T, app *fiber.App, method, url, body string, admin bool) (*http.Response, envelope) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set(middleware.HeaderUserID, "66c6248b98c56c39f018e7d5")
		req.Header.Set(middleware.HeaderUserRole, models.RoleAdmin)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	resp.Body.Close()
	return resp, env
}

func TestGetFiltersInactiveForPublic(t *testing.T) {
	store := newMemStore()
	store.seed(content.Partners,
		bson.M{"name": "Visible", "isActive": true, "order": 1},
		bson.M{"name": "Hidden", "isActive": false, "order": 2},
	)
	app := contentApp(store)

	_, env := doReq(t, app, http.MethodGet, "/api/content/partners", "", false)
	var items []bson.M
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Visible", items[0]["name"])
}

func TestGetAllRequiresAdminRole(t *testing.T) {
	store := newMemStore()
	store.seed(content.Partners,
		bson.M{"name": "Visible", "isActive": true},
		bson.M{"name": "Hidden", "isActive": false},
	)
	app := contentApp(store)

	// ?all=true without the gate-injected admin role is ignored
	_, env := doReq(t, app, http.MethodGet, "/api/content/partners?all=true", "", false)
	var items []bson.M
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 1)

	_, env = doReq(t, app, http.MethodGet, "/api/content/partners?all=true", "", true)
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)
}

func TestCreatePartnerScenario(t *testing.T) {
	store := newMemStore()
	app := contentApp(store)

	body := `{"name":"Acme","category":"strategic","logo":{"url":"https://cdn/a.png","alt":"Acme"},"order":1,"isActive":true}`
	resp, env := doReq(t, app, http.MethodPost, "/api/content/partners", body, true)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, env.Success)

	var doc bson.M
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	assert.NotEmpty(t, doc["_id"])

	_, env = doReq(t, app, http.MethodGet, "/api/content/partners", "", false)
	var items []bson.M
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0]["name"])
}

func TestCreateRejectsUnknownField(t *testing.T) {
	app := contentApp(newMemStore())

	resp, env := doReq(t, app, http.MethodPost, "/api/content/partners",
		`{"name":"Acme","category":"strategic","sneaky":true}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Error, "sneaky")
}

func TestUpdateMissingDocumentIs404(t *testing.T) {
	store := newMemStore()
	store.seed(content.Partners, bson.M{"name": "Keep", "isActive": true})
	app := contentApp(store)

	body := `{"_id":"66c6248b98c56c39f018e7d5","name":"Changed"}`
	resp, _ := doReq(t, app, http.MethodPut, "/api/content/partners", body, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// collection unchanged
	docs := store.all(content.Partners)
	require.Len(t, docs, 1)
	assert.Equal(t, "Keep", docs[0]["name"])
}

func TestUpdateRequiresID(t *testing.T) {
	app := contentApp(newMemStore())
	resp, _ := doReq(t, app, http.MethodPut, "/api/content/partners", `{"name":"X"}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateMalformedIDIs400(t *testing.T) {
	app := contentApp(newMemStore())
	resp, _ := doReq(t, app, http.MethodPut, "/api/content/partners", `{"_id":"nope","name":"X"}`, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteSemantics(t *testing.T) {
	store := newMemStore()
	store.seed(content.Partners, bson.M{"name": "Gone", "isActive": true})
	id := store.all(content.Partners)[0]["_id"].(bson.ObjectID)
	app := contentApp(store)

	resp, _ := doReq(t, app, http.MethodDelete, "/api/content/partners?id="+bson.NewObjectID().Hex(), "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doReq(t, app, http.MethodDelete, "/api/content/partners?id="+id.Hex(), "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, store.all(content.Partners))

	resp, _ = doReq(t, app, http.MethodDelete, "/api/content/partners?id="+id.Hex(), "", true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteWithoutIDIs400(t *testing.T) {
	app := contentApp(newMemStore())
	resp, _ := doReq(t, app, http.MethodDelete, "/api/content/partners", "", true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSingletonActivePutClearsSibling(t *testing.T) {
	store := newMemStore()
	store.seed(content.MCIEvent,
		bson.M{"title": "MCI 2024", "isActive": true, "order": 1},
		bson.M{"title": "MCI 2025", "isActive": false, "order": 2},
	)
	inactive := store.all(content.MCIEvent)[1]["_id"].(bson.ObjectID)
	app := contentApp(store)

	body := `{"_id":"` + inactive.Hex() + `","isActive":true}`
	resp, _ := doReq(t, app, http.MethodPut, "/api/content/mci-event", body, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	active := 0
	for _, doc := range store.all(content.MCIEvent) {
		if doc["isActive"] == true {
			active++
			assert.Equal(t, "MCI 2025", doc["title"])
		}
	}
	assert.Equal(t, 1, active)
}

func TestSingletonActivePostClearsSiblings(t *testing.T) {
	store := newMemStore()
	store.seed(content.ConclaveEvent, bson.M{"title": "Old", "isActive": true})
	app := contentApp(store)

	resp, _ := doReq(t, app, http.MethodPost, "/api/content/conclave-event",
		`{"title":"New","isActive":true}`, true)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	active := 0
	for _, doc := range store.all(content.ConclaveEvent) {
		if doc["isActive"] == true {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestSingletonSettingsLifecycle(t *testing.T) {
	store := newMemStore()
	app := contentApp(store)

	// absence is a null payload, not an error
	resp, env := doReq(t, app, http.MethodGet, "/api/content/site-settings", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", strings.TrimSpace(string(env.Data)))

	resp, _ = doReq(t, app, http.MethodPut, "/api/content/site-settings",
		`{"siteName":"Mediation Council"}`, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, env = doReq(t, app, http.MethodGet, "/api/content/site-settings", "", false)
	var doc bson.M
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	assert.Equal(t, "Mediation Council", doc["siteName"])
}

func TestSecondaryFilter(t *testing.T) {
	store := newMemStore()
	store.seed(content.Partners,
		bson.M{"name": "A", "category": "strategic", "isActive": true},
		bson.M{"name": "B", "category": "media", "isActive": true},
	)
	app := contentApp(store)

	_, env := doReq(t, app, http.MethodGet, "/api/content/partners?category=media", "", false)
	var items []bson.M
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0]["name"])
}

func TestGetByIDMalformedAndMissing(t *testing.T) {
	store := newMemStore()
	app := contentApp(store)

	resp, _ := doReq(t, app, http.MethodGet, "/api/content/partners?id=zzz", "", false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doReq(t, app, http.MethodGet, "/api/content/partners?id="+bson.NewObjectID().Hex(), "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetByIDHidesInactiveFromPublic(t *testing.T) {
	store := newMemStore()
	store.seed(content.Partners, bson.M{"name": "Draft", "isActive": false})
	id := store.all(content.Partners)[0]["_id"].(bson.ObjectID)
	app := contentApp(store)

	resp, _ := doReq(t, app, http.MethodGet, "/api/content/partners?id="+id.Hex(), "", false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, env := doReq(t, app, http.MethodGet, "/api/content/partners?id="+id.Hex(), "", true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var doc bson.M
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	assert.Equal(t, "Draft", doc["name"])
}

func TestSingletonActivePutMissIDLeavesSiblingsActive(t *testing.T) {
	store := newMemStore()
	store.seed(content.MCIEvent, bson.M{"title": "MCI 2025", "isActive": true})
	app := contentApp(store)

	body := `{"_id":"` + bson.NewObjectID().Hex() + `","isActive":true}`
	resp, _ := doReq(t, app, http.MethodPut, "/api/content/mci-event", body, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	docs := store.all(content.MCIEvent)
	require.Len(t, docs, 1)
	assert.Equal(t, true, docs[0]["isActive"])
}
