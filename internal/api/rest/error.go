package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/domain"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/logger"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/providers/coinmarketcap"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest ErrorCode = "bad_request"
	errCodeNotFound   ErrorCode = "not_found"

	// Server errors (5xx)
	errCodeInternalError       ErrorCode = "internal_error"
	errCodeProviderError       ErrorCode = "provider_error"
	errCodeProviderRateLimited ErrorCode = "provider_rate_limited"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondServiceError maps a service failure onto the HTTP surface. Provider
// throttling surfaces as 503 so clients know to back off; other provider
// failures surface as 502.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		respondWithError(c, http.StatusBadRequest, errCodeBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, err.Error())
		return
	}

	var apiErr *coinmarketcap.APIError
	if errors.As(err, &apiErr) {
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		switch apiErr.Kind {
		case coinmarketcap.ErrorKindRateLimited:
			respondWithError(c, http.StatusServiceUnavailable, errCodeProviderRateLimited, "Market data provider is throttling requests")
		default:
			respondWithError(c, http.StatusBadGateway, errCodeProviderError, "Market data provider request failed")
		}
		return
	}

	logger.Error(err, zap.String("path", c.Request.URL.Path))
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, "Internal server error")
}
