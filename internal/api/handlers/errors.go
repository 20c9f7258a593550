package handlers

import (
	"net/http"
	"strings"

	apperrors "aircraft-manufacturing-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes. Validation failures
// from the service layer arrive wrapped in a "validation failed" error rather
// than as a typed error, so they are matched by prefix.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err),
		apperrors.IsPartInUse(err), apperrors.IsPartNotAvailable(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsPermissionDenied(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
