// Package handlers exposes the REST surface. Handlers bind requests, call a
// repository or service, and translate the returned outcome to a status code.
package handlers

import (
	"errors"
	"net/http"

	"towline/database/repository/outcome"
	"towline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps a repository outcome to its HTTP status code.
func statusFor(out outcome.Outcome) int {
	switch out {
	case outcome.OkCreated:
		return http.StatusCreated
	case outcome.NotFoundNone:
		return http.StatusNotFound
	case outcome.ValidationErrorNone:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

// respond writes the standard response for a repository call. Validation
// failures carry their cause in the body; unexpected errors become a 500
// without leaking internals.
func respond(c *gin.Context, payload any, out outcome.Outcome, err error) {
	if out == outcome.ValidationErrorNone {
		var cause *outcome.ValidationCause
		if errors.As(err, &cause) {
			c.JSON(http.StatusBadRequest, gin.H{"error": cause.Cause, "data": cause.Data})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed"})
		return
	}
	if err != nil {
		utils.GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if out == outcome.NotFoundNone {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(statusFor(out), payload)
}
