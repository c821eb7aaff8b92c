package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// Identity returns the authenticated caller, or nil when the request carries none.
func (h *BaseHandler) Identity(ctx context.Context) *domain.Identity {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil
	}
	return identity
}
