package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// WriteBusiness mapeia a taxonomia de erros de negócio para HTTP:
// NotFound → 404, SchedulingConflict → 409, Validation → 400,
// Integrity → 409. Qualquer outro erro vira 500.
func WriteBusiness(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, be.Message)
	case KindSchedulingConflict:
		Conflict(c, be.Code, be.Message)
	case KindValidation:
		BadRequest(c, be.Code, be.Message)
	case KindIntegrity:
		Conflict(c, be.Code, be.Message)
	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}
