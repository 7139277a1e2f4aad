package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brickshare/internal/client"
	apperrors "brickshare/internal/errors"
	"brickshare/internal/logger"
	"brickshare/internal/middleware"
)

// ErrorResponse documents the JSON error envelope returned by the gateway.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// getSession extracts the forwarded bearer session from the Gin context.
// Returns ErrUnauthorized if the session middleware did not run.
func getSession(c *gin.Context) (client.Session, error) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return client.Session{}, apperrors.ErrUnauthorized
	}
	return session, nil
}

// requireParam returns a non-empty path parameter or a named error state.
func requireParam(c *gin.Context, param string, missing *apperrors.AppError) (string, error) {
	value := c.Param(param)
	if value == "" {
		return "", missing
	}
	return value, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
