package platformerrors

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrorType represents the category of error.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeUpstream     ErrorType = "UPSTREAM"
	ErrorTypeStorage      ErrorType = "STORAGE"
	ErrorTypeUpload       ErrorType = "UPLOAD"
	ErrorTypeInternal     ErrorType = "INTERNAL"
)

// Layer represents the application layer where the error occurred.
type Layer string

const (
	LayerStore          Layer = "store"
	LayerDomain         Layer = "domain"
	LayerHandler        Layer = "handler"
	LayerInfrastructure Layer = "infrastructure"
)

type requestIDKey struct{}

// ContextWithRequestID stores the request ID for error reporting.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// PlatformError is an error with category, layer and request metadata.
type PlatformError struct {
	UUID      string
	Type      ErrorType
	Message   string
	Err       error
	RequestID string
	Layer     Layer
	Timestamp time.Time
}

// Error implements the error interface.
func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s][%s] %s: %v", e.Layer, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s][%s] %s", e.Layer, e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *PlatformError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the error type.
func (e *PlatformError) GetErrorType() ErrorType {
	return e.Type
}

// GetRequestID returns the request ID.
func (e *PlatformError) GetRequestID() string {
	return e.RequestID
}

// GetUUID returns the error UUID.
func (e *PlatformError) GetUUID() string {
	return e.UUID
}

// NewError creates a PlatformError tagged with the calling layer.
func NewError(ctx context.Context, layer Layer, errorType ErrorType, message string, err error) *PlatformError {
	return &PlatformError{
		UUID:      uuid.NewString(),
		Type:      errorType,
		Message:   message,
		Err:       err,
		RequestID: requestIDFromContext(ctx),
		Layer:     layer,
		Timestamp: time.Now().UTC(),
	}
}

// ErrorTypeToHTTPStatus maps error categories to HTTP status codes.
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeUpstream:
		return http.StatusBadGateway
	case ErrorTypeUpload, ErrorTypeStorage, ErrorTypeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
