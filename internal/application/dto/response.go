package dto

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/errors"
)

// APIResponse is the uniform envelope of every API reply.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorDTO   `json:"error,omitempty"`
	TraceID   string      `json:"trace_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// ErrorDTO carries the machine-readable error body.
type ErrorDTO struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// SendSuccess writes a success envelope with the given status.
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, &APIResponse{
		Success:   true,
		Data:      data,
		TraceID:   traceIDFrom(c),
		Timestamp: time.Now().Unix(),
	})
}

// SendError maps any error onto the envelope. Unrecognized errors become an
// opaque internal_error so storage details never leak to callers.
func SendError(c *gin.Context, err error) {
	var errorDTO *ErrorDTO
	if appErr, ok := errors.As(err); ok {
		errorDTO = &ErrorDTO{
			Code:    string(appErr.Code),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	} else {
		errorDTO = &ErrorDTO{
			Code:    "internal_error",
			Message: "internal server error",
		}
	}

	c.AbortWithStatusJSON(errors.HTTPStatusOf(err), &APIResponse{
		Success:   false,
		Error:     errorDTO,
		TraceID:   traceIDFrom(c),
		Timestamp: time.Now().Unix(),
	})
}

func traceIDFrom(c *gin.Context) string {
	span := trace.SpanFromContext(c.Request.Context())
	if span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}
