package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

// suspiciousPatterns are matched against the path, query values and headers.
// Request bodies are not scanned: template content is HTML.
var suspiciousPatterns = compilePatterns(
	// SQL injection
	`(?i)(\bUNION\b.*\bSELECT\b)`,
	`(?i)(\bOR\b.*=.*\bOR\b)`,
	`(?i)(\bAND\b.*=.*\bAND\b)`,
	`(?i)(\bINSERT\b.*\bINTO\b)`,
	`(?i)(\bDELETE\b.*\bFROM\b)`,
	`(?i)(\bUPDATE\b.*\bSET\b)`,
	`(?i)(\bDROP\b.*\bTABLE\b)`,
	`(?i)(\bALTER\b.*\bTABLE\b)`,
	`--`,
	`/\*.*\*/`,
	// XSS
	`(?i)<script.*?>`,
	`(?i)javascript:`,
	`(?i)on(load|click|error)=`,
	`(?i)<(iframe|object|embed).*?>`,
	// Path traversal
	`\.\./`,
	`\.\.\\`,
	`(?i)%2e%2e(%2f|%5c)`,
)

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// SanitizeInput strips null bytes and control characters from query values
// and headers.
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false
		for key, values := range query {
			for i, value := range values {
				if sanitized := sanitizeString(value); sanitized != value {
					m.logger.Info("Sanitized query parameter", zap.String("key", key))
					values[i] = sanitized
					changed = true
				}
			}
		}
		if changed {
			c.Request.URL.RawQuery = query.Encode()
		}

		for key, values := range c.Request.Header {
			if strings.EqualFold(key, "authorization") {
				continue
			}
			for i, value := range values {
				if sanitized := sanitizeString(value); sanitized != value {
					m.logger.Info("Sanitized header", zap.String("key", key))
					values[i] = sanitized
				}
			}
		}

		c.Next()
	}
}

// ValidateContentType rejects bodies of any other media type. Requests
// without a body are let through.
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete {
			c.Next()
			return
		}

		contentType := strings.TrimSpace(strings.Split(c.GetHeader("Content-Type"), ";")[0])
		if contentType == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "Content-Type header is required"})
			return
		}

		for _, allowed := range allowedTypes {
			if strings.EqualFold(contentType, allowed) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.Error{
			Error: "Unsupported Content-Type, expected " + strings.Join(allowedTypes, " or "),
		})
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			m.logger.Warn("Rejected oversized request",
				zap.Int64("max_size", maxSize),
				zap.Int64("received_size", c.Request.ContentLength))
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.Error{Error: "Request body too large"})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns blocks requests whose path, query or headers look
// like an injection attempt.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		if containsSuspiciousPattern(c.Request.URL.Path) {
			m.block(c, zap.String("path", c.Request.URL.Path))
			return
		}

		for key, values := range c.Request.URL.Query() {
			for _, value := range values {
				if containsSuspiciousPattern(value) {
					m.block(c, zap.String("query", key))
					return
				}
			}
		}

		for key, values := range c.Request.Header {
			if strings.EqualFold(key, "authorization") {
				continue
			}
			for _, value := range values {
				if containsSuspiciousPattern(value) {
					m.block(c, zap.String("header", key))
					return
				}
			}
		}

		c.Next()
	}
}

func (m *ValidationMiddleware) block(c *gin.Context, field zap.Field) {
	m.logger.Warn("Blocked suspicious request", field, zap.String("ip", c.ClientIP()))
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "Invalid request"})
}

// sanitizeString drops null bytes and control characters other than
// newline, carriage return and tab.
func sanitizeString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsSuspiciousPattern(input string) bool {
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}
