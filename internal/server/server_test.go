package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/storage/memory"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	trk, err := tracker.New(memory.NewStore())
	require.NoError(t, err)
	return New(cfg, trk).setupRouter()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestPing(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w, _ := doJSON(t, router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestTablingLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	body := `{"name":"Quad Day Table","date":"2026-02-10T00:00:00Z","startTime":"10","endTime":"2","location":"Main Quad","staff":["Alex"]}`
	w, env := doJSON(t, router, http.MethodPost, "/api/events/tabling", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var created struct {
		ID        string `json:"id"`
		StartTime string `json:"startTime"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "10 PM", created.StartTime)

	w, env = doJSON(t, router, http.MethodGet, "/api/events/tabling", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	// Missing fields never create anything.
	w, _ = doJSON(t, router, http.MethodPost, "/api/events/tabling", `{"name":"No Location"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPatch, "/api/events/tabling/"+created.ID+"/space-status", `{"status":"submitted"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPatch, "/api/events/tabling/"+created.ID+"/space-status", `{"status":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = doJSON(t, router, http.MethodPost, "/api/events/tabling/"+created.ID+"/complete", "")
	require.Equal(t, http.StatusOK, w.Code)
	var done struct {
		ID     string `json:"id"`
		Source string `json:"source"`
		Time   string `json:"time"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &done))
	assert.Equal(t, "tabling", done.Source)
	assert.Equal(t, "10 PM - 2 AM", done.Time)

	w, _ = doJSON(t, router, http.MethodPatch, "/api/events/completed/"+done.ID+"/interacted", `{"interacted":15}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, router, http.MethodGet, "/api/events/completed/total-interacted", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":15}`, string(env.Data))

	w, env = doJSON(t, router, http.MethodPost, "/api/events/completed/"+done.ID+"/incomplete", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"source":"tabling"}`, string(env.Data))

	w, _ = doJSON(t, router, http.MethodPost, "/api/events/completed/missing/incomplete", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthGate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("orange-and-blue"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.PasswordHash = string(hash)
	router := newTestRouter(t, cfg)

	w, _ := doJSON(t, router, http.MethodGet, "/api/events/tabling", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The health check and the login route stay open.
	w, _ = doJSON(t, router, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/auth/login", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"password":"orange-and-blue"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/events/tabling", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalendarFeed(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	body := `{"name":"Quad Day Table","date":"2026-02-10T00:00:00Z","startTime":"10 AM","endTime":"2 PM","location":"Main Quad"}`
	w, _ := doJSON(t, router, http.MethodPost, "/api/events/tabling", body)
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/calendar.ics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/calendar")
	feed := rec.Body.String()
	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "SUMMARY:Quad Day Table")
	assert.Contains(t, feed, "LOCATION:Main Quad")
}

func TestCompletedExport(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	body := `{"source":"presentations","name":"LEAD 260","date":"2026-02-12T00:00:00Z","time":"9 AM","location":"Lincoln Hall","interacted":30}`
	w, _ := doJSON(t, router, http.MethodPost, "/api/events/completed", body)
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/events/completed/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "completed-events-")
	assert.NotZero(t, rec.Body.Len())
}

func TestEmailEndpoints(t *testing.T) {
	cfg := &config.Config{}
	cfg.Org.CFOAPAL = "1-100000-200000-300000"
	cfg.Org.SupervisorName = "Jordan Lee"
	cfg.Org.SupervisorPhone = "217-555-0199"
	cfg.Org.SupervisorEmail = "jlee@illinois.edu"
	router := newTestRouter(t, cfg)

	body := `{"instructorName":"Dr. Smith","yourName":"Alex","courseNumber":"LEAD 260","courseName":"Leadership Theories","instructorEmail":"smith@illinois.edu"}`
	w, env := doJSON(t, router, http.MethodPost, "/api/emails/presentation", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Brand Ambassador")

	w, _ = doJSON(t, router, http.MethodPost, "/api/emails/presentation", `{"yourName":"Alex"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Drafts save whatever is typed and read back as saved.
	w, _ = doJSON(t, router, http.MethodPut, "/api/emails/drafts/presentation", `{"yourName":"Alex"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w, env = doJSON(t, router, http.MethodGet, "/api/emails/drafts/presentation", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"yourName":"Alex"`)

	w, _ = doJSON(t, router, http.MethodGet, "/api/emails/drafts/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReserveSpaceLink(t *testing.T) {
	cfg := &config.Config{}
	cfg.Org.ReserveSpaceURL = "https://illiniunion.illinois.edu/EventServices/SubmitRequest.aspx"
	router := newTestRouter(t, cfg)

	w, env := doJSON(t, router, http.MethodGet, "/api/links/reserve-space", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "illiniunion.illinois.edu")
}
