package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatepass/internal/handler"
	"gatepass/internal/model"
	"gatepass/internal/service"
	"gatepass/internal/store"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	dataStore := store.NewFileStore(filepath.Join(t.TempDir(), "database.json"))
	ds := model.NewDataset()
	ds.Users = []model.User{
		{ID: "S1", Name: "Alice", Password: "secret", Role: model.RoleStudent},
		{ID: "M1", Name: "Mod1", Password: "modpass", Role: model.RoleModerator},
	}
	require.NoError(t, dataStore.Save(context.Background(), ds))

	authService := service.NewAuthService(dataStore)
	requestService := service.NewRequestService(dataStore, nil, time.Second)

	e := echo.New()
	Register(
		e,
		handler.NewAuthHandler(authService),
		handler.NewRequestHandler(requestService),
		handler.NewGateHandler(requestService),
		handler.NewStatsHandler(requestService),
	)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func TestLoginEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(e, http.MethodPost, "/api/login", `{"userId":"S1","password":"secret","role":"Student"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "S1", user["id"])
	assert.Equal(t, "Alice", user["name"])
	assert.Equal(t, "Student", user["role"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	rec, body = doJSON(e, http.MethodPost, "/api/login", `{"userId":"S1","password":"wrong","role":"Student"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestGatePassScenario(t *testing.T) {
	e := newTestServer(t)

	// Student creates a request.
	rec, body := doJSON(e, http.MethodPost, "/api/requests", `{"studentId":"S1","studentName":"Alice","reason":"Doctor","returnTime":"18:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := body["request"].(map[string]interface{})
	assert.Equal(t, "Pending", created["status"])
	assert.Equal(t, false, created["used"])
	requestID := created["id"].(string)
	require.True(t, strings.HasPrefix(requestID, "REQ"))

	// Moderator approves it.
	rec, body = doJSON(e, http.MethodPut, "/api/requests/"+requestID+"/review", `{"status":"Approved","moderatorId":"M1","moderatorName":"Mod1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	reviewed := body["request"].(map[string]interface{})
	assert.Equal(t, "Approved", reviewed["status"])
	assert.Equal(t, "M1", reviewed["moderatorId"])

	// Gatekeeper finds the pass.
	rec, body = doJSON(e, http.MethodGet, "/api/verify/S1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["hasPass"])
	pass := body["pass"].(map[string]interface{})
	assert.Equal(t, requestID, pass["id"])

	// Gatekeeper consumes the pass.
	rec, _ = doJSON(e, http.MethodPut, "/api/requests/"+requestID+"/use", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// The pass no longer verifies.
	rec, body = doJSON(e, http.MethodGet, "/api/verify/S1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["hasPass"])

	// Re-review conflicts.
	rec, _ = doJSON(e, http.MethodPut, "/api/requests/"+requestID+"/review", `{"status":"Rejected","moderatorId":"M1","moderatorName":"Mod1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Re-use conflicts.
	rec, _ = doJSON(e, http.MethodPut, "/api/requests/"+requestID+"/use", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Stats reflect the lifecycle.
	rec, body = doJSON(e, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["total"])
	assert.Equal(t, float64(1), stats["approved"])
	assert.Equal(t, float64(1), stats["used"])
	assert.Equal(t, float64(1), stats["today"])
}

func TestCreateRequestValidation(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(e, http.MethodPost, "/api/requests", `{"studentId":"S1","studentName":"Alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestReviewUnknownRequest(t *testing.T) {
	e := newTestServer(t)

	rec, _ := doJSON(e, http.MethodPut, "/api/requests/REQ404/review", `{"status":"Approved","moderatorId":"M1","moderatorName":"Mod1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(e, http.MethodPut, "/api/requests/REQ404/use", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEndpointsOrder(t *testing.T) {
	e := newTestServer(t)

	for _, reason := range []string{"first", "second", "third"} {
		rec, _ := doJSON(e, http.MethodPost, "/api/requests", `{"studentId":"S1","studentName":"Alice","reason":"`+reason+`","returnTime":"18:00"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, body := doJSON(e, http.MethodGet, "/api/requests", "")
	require.Equal(t, http.StatusOK, rec.Code)
	requests := body["requests"].([]interface{})
	require.Len(t, requests, 3)

	prev := time.Now().Add(time.Hour)
	for _, raw := range requests {
		r := raw.(map[string]interface{})
		ts, err := time.Parse(time.RFC3339Nano, r["timestamp"].(string))
		require.NoError(t, err)
		assert.False(t, ts.After(prev), "requests must be sorted most recent first")
		prev = ts
	}

	rec, body = doJSON(e, http.MethodGet, "/api/requests/student/S999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["requests"])
}

func TestUnknownRouteListsAvailableRoutes(t *testing.T) {
	e := newTestServer(t)

	rec, body := doJSON(e, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "API endpoint not found", body["message"])
	routes := body["availableRoutes"].([]interface{})
	assert.Len(t, routes, len(availableRoutes))
}
