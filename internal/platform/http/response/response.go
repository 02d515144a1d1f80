// Package response writes error responses and maps error kinds to HTTP status codes.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"account_backend/internal/platform/logger"
	"account_backend/internal/shared/apperr"
)

// InternalErrorMessage is the only message clients see for unclassified failures.
const InternalErrorMessage = "Internal server error"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Status maps an error kind to an HTTP status. Errors without a kind are 500.
func Status(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindDomain:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err using its kind. Unclassified errors are logged and replaced by a generic message.
func Error(c *gin.Context, err error) {
	status := Status(err)
	log := logger.FromGin(c).WithError(err)
	if status == http.StatusInternalServerError {
		log.Error("unhandled error")
		c.AbortWithStatusJSON(status, ErrorResponse{Error: InternalErrorMessage})
		return
	}
	log.Warn("request rejected")
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}

// BindError writes a 400 for a request that failed gin binding.
func BindError(c *gin.Context, err error) {
	logger.FromGin(c).WithError(err).Warn("request validation failed")
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: ValidationMessage(err)})
}

// ValidationMessage turns a binding error into one human-readable sentence.
// Only the first failing field is reported.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(verrs[0])
	}
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "Invalid request body"
	}
	return "Invalid request"
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
