package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

//go:generate mockery --name TemplateService --output ../mocks
type TemplateService interface {
	List(ctx context.Context, identity *domain.Identity, category string) ([]dto.TemplateResponse, error)
	GetByID(ctx context.Context, identity *domain.Identity, id string) (*dto.TemplateResponse, error)
	Variables() []dto.VariableResponse
}

type TemplateHandler struct {
	*BaseHandler
	service TemplateService
	logger  *logger.Logger
}

func NewTemplateHandler(service TemplateService, logger *logger.Logger) *TemplateHandler {
	return &TemplateHandler{service: service, logger: logger}
}

// ListTemplates List templates the caller may generate from
// @Summary List document templates
// @Description System templates plus the caller's own, system templates first
// @Tags    document_templates
// @Produce json
// @Param   category query string false "Filter by category"
// @Success 200 {array} dto.TemplateResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /document-templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	ctx := h.RequestCtx(c)

	templates, err := h.service.List(ctx, h.Identity(ctx), c.Query("category"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to list templates")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate Get a template by ID
// @Summary Get document template
// @Description Get a system template or one of the caller's own templates
// @Tags    document_templates
// @Produce json
// @Param   id path string true "Template ID"
// @Success 200 {object} dto.TemplateResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /document-templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	ctx := h.RequestCtx(c)

	tmpl, err := h.service.GetByID(ctx, h.Identity(ctx), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get template")
		return
	}

	c.JSON(http.StatusOK, tmpl)
}

// ListVariables List the built-in placeholders
// @Summary List template variables
// @Description Built-in placeholders in the order they are substituted
// @Tags    document_templates
// @Produce json
// @Success 200 {array} dto.VariableResponse
// @Failure 401 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /document-templates/variables [get]
func (h *TemplateHandler) ListVariables(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Variables())
}
