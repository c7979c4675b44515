package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mamta-server/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details.
type ErrorResponse struct {
	Code      string `json:"code,omitempty"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError maps domain errors to HTTP responses. Typed errors carry their
// own status; anything else is an internal error.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(domainErr.GetErrorType())

		reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
			Code:      domainErr.GetUUID(),
			Error:     domainErr.Message,
			Message:   message,
			RequestID: domainErr.GetRequestID(),
		})
		return
	}

	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   err.Error(),
		Message: message,
	})
}
