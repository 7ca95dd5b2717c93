// internal/handlers/handlers.go
package handlers

import (
	"context"

	"github.com/agarwalaashrut/JobAppREST/internal/models"
)

// JobSearcher finds listings for a query. Implementations never fail: an
// unreachable upstream yields an empty result.
type JobSearcher interface {
	Search(ctx context.Context, query string) []models.JobListing
}

// ApplicationStore persists application records.
type ApplicationStore interface {
	Create(ctx context.Context, rec models.ApplicationRecord) (models.ApplicationRecord, error)
	ListAll(ctx context.Context) ([]models.ApplicationRecord, error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
}
