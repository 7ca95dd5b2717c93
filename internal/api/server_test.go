// internal/api/server_test.go
package api

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/agarwalaashrut/JobAppREST/internal/common/config"
	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/handlers"
	"github.com/agarwalaashrut/JobAppREST/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==========================
// Fakes
// ==========================

type stubSearcher struct{}

func (stubSearcher) Search(context.Context, string) []models.JobListing {
	return []models.JobListing{}
}

type stubStore struct{}

func (stubStore) Create(_ context.Context, rec models.ApplicationRecord) (models.ApplicationRecord, error) {
	rec.ID = "id-1"
	return rec, nil
}

func (stubStore) ListAll(context.Context) ([]models.ApplicationRecord, error) {
	return []models.ApplicationRecord{}, nil
}

func (stubStore) UpdateStatus(context.Context, string, string) (bool, error) {
	return false, nil
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, pingErr error) *Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Version = "test"
	cfg.Server.Port = 0

	log := logger.NewNoOpLogger()
	server := NewServer(cfg, log,
		handlers.NewSearchHandler(stubSearcher{}, log),
		handlers.NewApplicationsHandler(stubStore{}, config.ApplicationsConfig{
			DefaultFormStatus: "applied",
			DefaultAPIStatus:  "wishlist",
		}, log),
		handlers.NewHealthHandler("test", stubPinger{err: pingErr}),
	)

	tmpl := template.Must(template.New("index.html").Parse(`form`))
	template.Must(tmpl.New("result.html").Parse(`results`))
	template.Must(tmpl.New("applications.html").Parse(`apps`))
	server.Engine().SetHTMLTemplate(tmpl)

	return server
}

func serve(server *Server, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

// ==========================
// Tests
// ==========================

func TestServer_RoutesRegistered(t *testing.T) {
	server := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/applications", http.StatusOK},
		{http.MethodGet, "/api/applications", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			w := serve(server, tt.method, tt.path)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestServer_HealthReportsMongoDown(t *testing.T) {
	server := newTestServer(t, fmt.Errorf("server selection timeout"))

	w := serve(server, http.MethodGet, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"mongo":"down"`)
}

func TestServer_AssignsRequestID(t *testing.T) {
	server := newTestServer(t, nil)

	w := serve(server, http.MethodGet, "/health")

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_HonorsCallerRequestID(t *testing.T) {
	server := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied", w.Header().Get("X-Request-ID"))
}

func TestServer_MetricsExposition(t *testing.T) {
	server := newTestServer(t, nil)

	// Generate one request so the histogram has a sample.
	serve(server, http.MethodGet, "/health")
	w := serve(server, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobapp_http_request_duration_seconds")
}
