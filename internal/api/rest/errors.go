package rest

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/steel-suvidha/marketplace-api/internal/api/shared/errors"
	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
)

// respondError translates a domain error into the failure envelope.
// Internal errors are logged; only their generic message reaches the client.
func (h *handler) respondError(c *gin.Context, err error) {
	status, apiErr := apierrors.FromError(err)
	if apiErr.Code == apierrors.ErrCodeInternalError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		if h.debug {
			apiErr.Message = err.Error()
		}
	}
	c.JSON(status, apiErr)
}

// bindJSON decodes the request body, rejecting unknown fields
func (h *handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			h.respondError(c, domain.NewValidationError("Request body is required"))
			return false
		}
		h.respondError(c, domain.NewValidationError("Invalid request body: %s", strings.TrimPrefix(err.Error(), "json: ")))
		return false
	}
	return true
}

