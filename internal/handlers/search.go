// internal/handlers/search.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/models"
)

// SearchHandler serves the HTML search flow.
type SearchHandler struct {
	searcher JobSearcher
	logger   logger.Logger
}

func NewSearchHandler(searcher JobSearcher, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		logger:   log,
	}
}

// Index renders the search form.
func (h *SearchHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Submit runs a job search for the submitted title and renders the results.
// A blank title never reaches the searcher.
func (h *SearchHandler) Submit(c *gin.Context) {
	query := strings.TrimSpace(c.PostForm("jobTitle"))

	listings := []models.JobListing{}
	if query != "" {
		listings = h.searcher.Search(c.Request.Context(), query)
	}

	c.HTML(http.StatusOK, "result.html", gin.H{
		"Query":    query,
		"Listings": listings,
	})
}
