// internal/handlers/search_test.go
package handlers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==========================
// Fakes
// ==========================

type fakeSearcher struct {
	results   []models.JobListing
	called    bool
	lastQuery string
}

func (f *fakeSearcher) Search(_ context.Context, query string) []models.JobListing {
	f.called = true
	f.lastQuery = query
	return f.results
}

// testTemplates gives the HTML handlers something to render without
// touching the real template files.
func testTemplates() *template.Template {
	tmpl := template.Must(template.New("index.html").Parse(`search form`))
	template.Must(tmpl.New("result.html").Parse(`{{.Query}}|{{len .Listings}}`))
	template.Must(tmpl.New("applications.html").Parse(`records:{{len .Records}}`))
	return tmpl
}

func newSearchRouter(searcher *fakeSearcher) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(testTemplates())

	h := NewSearchHandler(searcher, logger.NewNoOpLogger())
	router.GET("/", h.Index)
	router.POST("/submit", h.Submit)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ==========================
// Tests
// ==========================

func TestSearchHandler_Index(t *testing.T) {
	router := newSearchRouter(&fakeSearcher{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "search form")
}

func TestSearchHandler_Submit_RendersResults(t *testing.T) {
	searcher := &fakeSearcher{results: []models.JobListing{
		{Title: "Go Developer", Company: "Initech"},
		{Title: "N/A", Company: "Globex"},
	}}
	router := newSearchRouter(searcher)

	w := postForm(router, "/submit", url.Values{"jobTitle": {"go developer"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, searcher.called)
	assert.Equal(t, "go developer", searcher.lastQuery)
	assert.Contains(t, w.Body.String(), "go developer|2")
}

func TestSearchHandler_Submit_BlankTitleSkipsSearch(t *testing.T) {
	searcher := &fakeSearcher{}
	router := newSearchRouter(searcher)

	for _, title := range []string{"", "   "} {
		w := postForm(router, "/submit", url.Values{"jobTitle": {title}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "|0")
	}
	assert.False(t, searcher.called, "blank titles must not trigger a search")
}

func TestSearchHandler_Submit_MissingField(t *testing.T) {
	searcher := &fakeSearcher{}
	router := newSearchRouter(searcher)

	w := postForm(router, "/submit", url.Values{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, searcher.called)
}
