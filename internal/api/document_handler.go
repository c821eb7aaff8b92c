package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/templating"
	"github.com/kingrain94/property-docs-api/pkg/logger"
	"github.com/kingrain94/property-docs-api/pkg/utils"
)

var (
	errInvalidTimeFilter = errors.New("start_time and end_time must be RFC3339 or YYYY-MM-DD")
	errTimeRangeOrder    = errors.New("start_time must be before end_time")
)

//go:generate mockery --name DocumentService --output ../mocks
type DocumentService interface {
	Generate(ctx context.Context, identity *domain.Identity, templateID string, req dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DocumentResponse, error)
	List(ctx context.Context, filter *domain.DocumentFilter) ([]dto.DocumentResponse, error)
	Search(ctx context.Context, filter *domain.DocumentFilter) ([]dto.DocumentSearchHit, error)
	ScheduleCleanup(ctx context.Context, userID string, beforeDate time.Time) error
}

type DocumentHandler struct {
	*BaseHandler
	service DocumentService
	logger  *logger.Logger
	now     func() time.Time
}

func NewDocumentHandler(service DocumentService, logger *logger.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, logger: logger, now: time.Now}
}

// GenerateDocument Generate a document from a template
// @Summary Generate document
// @Description Fill a template with property, tenant and landlord data. The result is stored unless saveToDocuments is false.
// @Tags    document_templates
// @Accept  json
// @Produce json
// @Param   id path string true "Template ID"
// @Param   body body dto.GenerateDocumentRequest true "Generation request"
// @Success 201 {object} dto.GenerateDocumentResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /document-templates/{id}/generate [post]
func (h *DocumentHandler) GenerateDocument(c *gin.Context) {
	var req dto.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message := "Invalid request body"
		if errors.Is(err, templating.ErrCustomVariablesNotObject) {
			message = err.Error()
		}
		c.JSON(http.StatusBadRequest, dto.Error{Error: message})
		return
	}

	ctx := h.RequestCtx(c)
	resp, err := h.service.Generate(ctx, h.Identity(ctx), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate document")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetDocument Get a stored document by ID
// @Summary Get document
// @Description Get one of the caller's stored documents, including its content
// @Tags    documents
// @Produce json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get document")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ListDocuments List or search stored documents
// @Summary List documents
// @Description Lists the caller's documents newest first. With q set, runs a full-text search over generated documents instead.
// @Tags    documents
// @Produce json
// @Param   q query string false "Full-text query"
// @Param   property_id query string false "Filter by property ID"
// @Param   tenant_id query string false "Filter by tenant ID"
// @Param   category query string false "Filter by category"
// @Param   start_time query string false "Created at or after (RFC3339 or YYYY-MM-DD)" example:"2026-01-01T00:00:00Z"
// @Param   end_time query string false "Created at or before (RFC3339 or YYYY-MM-DD)" example:"2026-12-31T23:59:59Z"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Success 200 {array} dto.DocumentResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	ctx := h.RequestCtx(c)
	identity := h.Identity(ctx)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "not authenticated"})
		return
	}

	filter, err := getFilterFromQuery(c, identity.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	if filter.Query != "" {
		hits, err := h.service.Search(ctx, filter)
		if err != nil {
			respondError(c, h.logger, err, "Failed to search documents")
			return
		}
		c.JSON(http.StatusOK, hits)
		return
	}

	docs, err := h.service.List(ctx, filter)
	if err != nil {
		respondError(c, h.logger, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, docs)
}

func getFilterFromQuery(c *gin.Context, userID string) (*domain.DocumentFilter, error) {
	filter := &domain.DocumentFilter{
		UserID:     userID,
		PropertyID: c.Query("property_id"),
		TenantID:   c.Query("tenant_id"),
		Category:   c.Query("category"),
		Query:      c.Query("q"),
	}

	// Parse pagination
	if page := c.Query("page"); page != "" {
		if pageNum, err := strconv.Atoi(page); err == nil {
			filter.Page = pageNum
		}
	}
	if pageSize := c.Query("page_size"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil {
			filter.PageSize = size
		}
	}

	// Parse time filters
	if startTime := c.Query("start_time"); startTime != "" {
		t, err := utils.ParseUserTime(startTime, false)
		if err != nil {
			return nil, errInvalidTimeFilter
		}
		filter.StartTime = t
	}
	if endTime := c.Query("end_time"); endTime != "" {
		t, err := utils.ParseUserTime(endTime, true)
		if err != nil {
			return nil, errInvalidTimeFilter
		}
		filter.EndTime = t
	}
	if !filter.StartTime.IsZero() && !filter.EndTime.IsZero() && filter.StartTime.After(filter.EndTime) {
		return nil, errTimeRangeOrder
	}

	return filter, nil
}

// Cleanup Schedule removal of old generated documents
// @Summary Schedule document cleanup
// @Description Queues an archive job for generated documents created before the date. Deletion follows once the archive is written.
// @Tags    documents
// @Produce json
// @Param   before_date query string true "Remove documents created before this date (RFC3339 or YYYY-MM-DD)"
// @Success 202 {object} dto.CleanupResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /documents/cleanup [delete]
func (h *DocumentHandler) Cleanup(c *gin.Context) {
	ctx := h.RequestCtx(c)
	identity := h.Identity(ctx)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "not authenticated"})
		return
	}

	beforeDateStr := c.Query("before_date")
	if beforeDateStr == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date parameter is required"})
		return
	}

	beforeDate, err := utils.ParseUserTime(beforeDateStr, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date must be RFC3339 or YYYY-MM-DD"})
		return
	}

	if beforeDate.After(h.now()) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date cannot be in the future"})
		return
	}

	if err := h.service.ScheduleCleanup(ctx, identity.ID, beforeDate); err != nil {
		respondError(c, h.logger, err, "Failed to schedule cleanup")
		return
	}

	c.JSON(http.StatusAccepted, dto.CleanupResponse{
		Message:    "Cleanup scheduled",
		BeforeDate: beforeDate,
	})
}
