package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoggerKey is the gin context key under which the request scoped logger is stored.
const LoggerKey = "logger"

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

// RespondNoContent writes a 204. The message only goes to the log, a 204
// cannot carry a body.
func RespondNoContent(c *gin.Context, message string) {
	RequestLogger(c).WithField("reason", message).Debug("responding with no content")
	c.Status(http.StatusNoContent)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// RequestLogger returns the logger attached by the logging middleware, or the
// logrus standard logger when none is present.
func RequestLogger(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(logrus.FieldLogger); ok {
			return l
		}
	}
	return logrus.StandardLogger()
}

func HandleServiceError(c *gin.Context, err error) {
	message := err.Error()
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		message = serviceErr.Message
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrEmptyResult):
		RespondNoContent(c, message)
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, message)
	case errors.Is(err, ErrInvalidID):
		RespondError(c, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Skip must be a non-negative integer")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Limit must be between 1 and 100")
	case errors.Is(err, ErrConflict), errors.Is(err, ErrReference):
		RespondError(c, http.StatusConflict, message)
	case errors.Is(err, ErrDatabaseError):
		RequestLogger(c).WithError(err).Error("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		RequestLogger(c).WithError(err).Error("unknown error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
