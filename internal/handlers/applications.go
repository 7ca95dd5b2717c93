// internal/handlers/applications.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agarwalaashrut/JobAppREST/internal/common/config"
	"github.com/agarwalaashrut/JobAppREST/internal/common/errors"
	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/common/metrics"
	"github.com/agarwalaashrut/JobAppREST/internal/common/validation"
	"github.com/agarwalaashrut/JobAppREST/internal/models"
)

// createApplicationSchema validates JSON API create payloads before they
// reach the store. The form flow stays lenient; only the JSON surface
// enforces a shape.
var createApplicationSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"company": {Type: "string", MinLength: intPtr(1)},
		"title":   {Type: "string", MinLength: intPtr(1)},
		"url":     {Type: "string"},
		"status":  {Type: "string"},
		"date":    {Type: "string"},
	},
	Required:             []string{"company", "title"},
	AdditionalProperties: false,
}

func intPtr(v int) *int { return &v }

// ApplicationsHandler serves the form and JSON surfaces over the record store.
type ApplicationsHandler struct {
	store    ApplicationStore
	defaults config.ApplicationsConfig
	logger   logger.Logger
}

func NewApplicationsHandler(store ApplicationStore, defaults config.ApplicationsConfig, log logger.Logger) *ApplicationsHandler {
	return &ApplicationsHandler{
		store:    store,
		defaults: defaults,
		logger:   log,
	}
}

// ApplyForm saves a record submitted from the HTML form and redirects to the
// applications page. A missing status falls back to the configured form
// default.
func (h *ApplicationsHandler) ApplyForm(c *gin.Context) {
	status := strings.TrimSpace(c.PostForm("status"))
	if status == "" {
		status = h.defaults.DefaultFormStatus
	}

	rec := models.ApplicationRecord{
		Title:    c.PostForm("title"),
		Company:  c.PostForm("company"),
		Location: c.PostForm("location"),
		Link:     c.PostForm("link"),
		Status:   status,
	}

	if _, err := h.store.Create(c.Request.Context(), rec); err != nil {
		h.logger.WithError(err).Error("Failed to save application from form", nil)
		c.String(http.StatusInternalServerError, "failed to save application")
		return
	}

	metrics.ApplicationsCreated.WithLabelValues("form").Inc()
	c.Redirect(http.StatusSeeOther, "/applications")
}

// ListPage renders the stored applications as HTML.
func (h *ApplicationsHandler) ListPage(c *gin.Context) {
	records, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list applications", nil)
		c.String(http.StatusInternalServerError, "failed to load applications")
		return
	}

	c.HTML(http.StatusOK, "applications.html", gin.H{
		"Records": records,
	})
}

// ListJSON returns every stored record as a JSON array.
func (h *ApplicationsHandler) ListJSON(c *gin.Context) {
	records, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list applications", nil)
		c.JSON(errors.ToResponse(err))
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateJSON validates a JSON payload, applies the API status default, and
// responds 201 with the stored record including its assigned id.
func (h *ApplicationsHandler) CreateJSON(c *gin.Context) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(errors.ToResponse(errors.NewInvalidRequestError("request body must be a JSON object")))
		return
	}

	if result := validation.ValidateInput(input, createApplicationSchema); !result.Valid {
		status, resp := errors.ToResponse(errors.NewApplicationValidationFailedError(result.ErrorString()))
		c.JSON(status, gin.H{
			"error":   resp.Error,
			"code":    resp.Code,
			"details": result.Errors,
		})
		return
	}

	var req models.CreateApplicationRequest
	raw, _ := json.Marshal(input)
	if err := json.Unmarshal(raw, &req); err != nil {
		c.JSON(errors.ToResponse(errors.NewInvalidRequestError(err.Error())))
		return
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = h.defaults.DefaultAPIStatus
	}

	rec, err := h.store.Create(c.Request.Context(), models.ApplicationRecord{
		Title:   req.Title,
		Company: req.Company,
		URL:     req.URL,
		Status:  status,
		Date:    req.Date,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create application", nil)
		c.JSON(errors.ToResponse(err))
		return
	}

	metrics.ApplicationsCreated.WithLabelValues("api").Inc()
	c.JSON(http.StatusCreated, rec)
}

// PatchStatus updates one record's status. A missing status is a 400; an
// unknown or malformed id is reported as ok=false, not an error.
func (h *ApplicationsHandler) PatchStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		c.JSON(errors.ToResponse(errors.NewInvalidRequestError("status is required")))
		return
	}

	ok, err := h.store.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.logger.WithError(err).Error("Failed to update application status", map[string]interface{}{
			"id": c.Param("id"),
		})
		c.JSON(errors.ToResponse(err))
		return
	}

	result := "updated"
	if !ok {
		result = "not_found"
	}
	metrics.ApplicationStatusUpdates.WithLabelValues(result).Inc()

	c.JSON(http.StatusOK, gin.H{"ok": ok})
}
