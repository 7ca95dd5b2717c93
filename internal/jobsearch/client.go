// internal/jobsearch/client.go
package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	commonhttp "github.com/agarwalaashrut/JobAppREST/internal/common/http"
	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/common/metrics"
	"github.com/agarwalaashrut/JobAppREST/internal/models"
)

// Client queries the upstream job board API. It never returns an error to
// callers: any upstream failure degrades to an empty result set so that the
// web layer stays up when the job board is down.
type Client struct {
	config     *Config
	httpClient *commonhttp.Client
	logger     logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config:     config,
		httpClient: commonhttp.NewClient(config.Timeout),
		logger:     log,
	}
}

// Search fetches listings matching query from the upstream API. An empty or
// whitespace-only query short-circuits without issuing a request.
func (c *Client) Search(ctx context.Context, query string) []models.JobListing {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.JobListing{}
	}

	metrics.SearchRequests.Inc()
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	searchURL := fmt.Sprintf("%s/jobs?search=%s",
		strings.TrimRight(c.config.BaseURL, "/"), url.QueryEscape(query))

	reqCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	resp, err := c.httpClient.Get(reqCtx, searchURL)
	if err != nil {
		reason := metrics.ReasonNetwork
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			reason = metrics.ReasonTimeout
		}
		return c.degrade(query, reason, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return c.degrade(query, metrics.ReasonStatus,
			fmt.Errorf("upstream returned status %d", resp.StatusCode))
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return c.degrade(query, metrics.ReasonBadBody, err)
	}

	rawJobs, ok := payload["jobs"].([]interface{})
	if !ok {
		return c.degrade(query, metrics.ReasonBadShape,
			fmt.Errorf("response missing jobs array"))
	}

	listings := make([]models.JobListing, 0, len(rawJobs))
	for _, raw := range rawJobs {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		listings = append(listings, normalizeListing(item))
	}

	c.logger.Debug("Job search completed", map[string]interface{}{
		"query":        query,
		"result_count": len(listings),
	})

	return listings
}

// degrade logs the failure, counts it, and returns an empty result.
func (c *Client) degrade(query, reason string, err error) []models.JobListing {
	metrics.SearchFailures.WithLabelValues(reason).Inc()
	c.logger.WithError(err).Warn("Job search degraded to empty results", map[string]interface{}{
		"query":  query,
		"reason": reason,
	})
	return []models.JobListing{}
}

// normalizeListing maps one upstream item to a JobListing. A missing title
// becomes "N/A"; other missing fields become empty strings.
func normalizeListing(item map[string]interface{}) models.JobListing {
	return models.JobListing{
		Title:    stringField(item, "title", "N/A"),
		Company:  stringField(item, "company", ""),
		Location: stringField(item, "location", ""),
		Link:     stringField(item, "link", ""),
	}
}

func stringField(item map[string]interface{}, key, fallback string) string {
	v, ok := item[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
