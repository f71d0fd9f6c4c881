package handler

import (
	"errors"
	"net/http"

	"mlflow-registry/internal/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrModelNotFound),
		errors.Is(err, domain.ErrVersionNotFound),
		errors.Is(err, domain.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrModelNameConflict),
		errors.Is(err, domain.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrInvalidModelName),
		errors.Is(err, domain.ErrInvalidVersionNumber),
		errors.Is(err, domain.ErrInvalidStage),
		errors.Is(err, domain.ErrArchiveInactiveTarget),
		errors.Is(err, domain.ErrVersionInActiveStage),
		errors.Is(err, domain.ErrModelHasActiveVersions):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
