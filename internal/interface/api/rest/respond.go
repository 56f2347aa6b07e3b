package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/apperrors"
)

// respondError maps a typed error onto its HTTP status. Internal failures are
// logged and masked with a generic message; everything else surfaces its text.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	msg := err.Error()

	if apperrors.KindOf(err) == apperrors.Internal {
		logger.Error("request failed",
			zap.String("url", c.FullPath()),
			zap.Error(err),
		)
		msg = "internal server error"
	}

	c.JSON(status, gin.H{"error": msg})
}
