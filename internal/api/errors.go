package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/property-docs-api/internal/api/dto"
	"github.com/kingrain94/property-docs-api/internal/service"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrNotAuthenticated, http.StatusUnauthorized},
	{service.ErrNotLandlord, http.StatusForbidden},
	{service.ErrTemplateAccessDenied, http.StatusForbidden},
	{service.ErrPropertyAccessDenied, http.StatusForbidden},
	{service.ErrPropertyIDRequired, http.StatusBadRequest},
	{service.ErrTemplateNotFound, http.StatusNotFound},
	{service.ErrPropertyNotFound, http.StatusNotFound},
	{service.ErrTenantNotAssociated, http.StatusNotFound},
	{service.ErrDocumentNotFound, http.StatusNotFound},
}

// statusForError returns the HTTP status of a known service error.
// ok is false for anything unexpected.
func statusForError(err error) (status int, ok bool) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, true
		}
	}
	return http.StatusInternalServerError, false
}

// respondError writes err as a dto.Error. Unexpected errors are logged and
// replaced by fallback so internals never reach the client.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	status, ok := statusForError(err)
	if !ok {
		log.Error(fallback, err)
		c.JSON(status, dto.Error{Error: fallback})
		return
	}
	c.JSON(status, dto.Error{Error: err.Error()})
}
