package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/middleware"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

type Server struct {
	template   *TemplateHandler
	document   *DocumentHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	config     *config.Config
}

func NewServer(
	cfg *config.Config,
	templateService TemplateService,
	documentService DocumentService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub DocumentPubSub,
) *Server {
	return &Server{
		template:   NewTemplateHandler(templateService, logger),
		document:   NewDocumentHandler(documentService, logger),
		websocket:  NewWebSocketHandler(logger, pubsub),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
		config:     cfg,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(s.config.MaxRequestBodyBytes))
	api.Use(s.validation.ValidateContentType("application/json"))

	api.Use(s.rateLimit.GlobalRateLimit(s.config.GlobalRateLimit))

	{
		// Role checks for generation happen in the service so that they
		// report the same errors as the other authorization rules.
		templates := api.Group("/document-templates", s.auth.JWTAuth(), s.rateLimit.UserRateLimit())
		{
			templates.GET("", s.template.ListTemplates)
			templates.GET("/variables", s.template.ListVariables)
			templates.GET("/:id", s.template.GetTemplate)
			templates.POST("/:id/generate", s.document.GenerateDocument)
		}

		documents := api.Group("/documents", s.auth.JWTAuth(), s.rateLimit.UserRateLimit(), s.auth.RequireUserType(domain.UserTypeLandlord))
		{
			documents.GET("", s.document.ListDocuments)
			documents.GET("/stream", s.websocket.HandleWebSocket)
			documents.DELETE("/cleanup", s.document.Cleanup)
			documents.GET("/:id", s.document.GetDocument)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting documents
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// StopWebSocketHub stops the hub and drops all pub/sub subscriptions
func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
