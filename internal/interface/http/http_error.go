package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/docbridge/pkg/errors"
)

const (
	codeInvalidRequest = "invalid_request"
	codeInternal       = "internal_error"

	msgInternal = "An internal error occurred."
)

// HTTPError pairs the client-facing message with the cause that only reaches the logs.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil:
		return e.Code + ": " + e.Err.Error()
	default:
		return e.Code + ": " + e.Message
	}
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError builds an HTTPError with an explicit status.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func newBadRequest(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, codeInvalidRequest, msgInvalidRequest, err)
}

// newServiceError reports a domain failure as 500, logging the domain code (provider_error, llm_error).
func newServiceError(message string, err error) *HTTPError {
	code := apperrors.CodeOf(err)
	if code == "" {
		code = codeInternal
	}
	return NewHTTPError(http.StatusInternalServerError, code, message, err)
}

// asHTTPError falls back to a generic 500 for errors recorded without an HTTPError, e.g. by gin itself.
func asHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewHTTPError(http.StatusInternalServerError, codeInternal, msgInternal, err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	_ = c.Error(err)
	c.Abort()
}
