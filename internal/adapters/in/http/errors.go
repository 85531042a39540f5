package http

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error codes returned in the code field of every error response.
const (
	CodeNotFound      = "not_found"
	CodeInvalidStatus = "invalid_status"
	CodeInvalidValue  = "invalid_value"
	CodeConflict      = "conflict"
	CodeInternal      = "internal"
)

// statusOf maps a domain error to its HTTP status and code. Joined errors
// take the first match in the order below.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, CodeInvalidValue
	case errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusUnprocessableEntity, CodeInvalidStatus
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// fail writes the error response for a failed use case.
func fail(c echo.Context, err error) error {
	status, code := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromEcho(c).Error("request failed", zap.Error(err))
		message = http.StatusText(status)
	}
	return c.JSON(status, servers.Error{Code: code, Message: message})
}

// ErrorHandler renders errors raised outside the handlers (routing, binding,
// contract validation) in the same shape as use case errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = fail(c, err)
		return
	}

	code := CodeInternal
	switch {
	case he.Code == http.StatusNotFound:
		code = CodeNotFound
	case he.Code < http.StatusInternalServerError:
		code = CodeInvalidValue
	default:
		logger.FromEcho(c).Error("request failed", zap.Error(err))
	}

	message := http.StatusText(he.Code)
	if he.Code < http.StatusInternalServerError {
		message = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(he.Code, servers.Error{Code: code, Message: message})
}
