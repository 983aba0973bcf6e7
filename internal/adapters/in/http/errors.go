package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	unknownEndpointMessage = "unknown endpoint"
	internalErrorMessage   = "internal server error"
)

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UnknownEndpoint answers any request no earlier stage handled.
func UnknownEndpoint(c echo.Context) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: unknownEndpointMessage})
}

// ErrorHandler is the last stage. Client errors raised as *echo.HTTPError keep
// their status and message; anything else becomes a generic 500 and is logged.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := http.StatusInternalServerError, internalErrorMessage
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code >= 400 && he.Code < 500 {
			status, message = he.Code, httpErrorMessage(he)
		}

		req := c.Request()
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(req.Context(), "Request failed",
				"error", err,
				"method", req.Method,
				"uri", req.RequestURI,
			)
		}

		var writeErr error
		if req.Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorResponse{Error: message})
		}
		if writeErr != nil {
			logger.ErrorContext(req.Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	default:
		return http.StatusText(he.Code)
	}
}

// toHTTPError maps use case errors onto client statuses. Unknown errors pass
// through untouched and end up as 500.
func toHTTPError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}

	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		return err
	}

	return echo.NewHTTPError(status, oneLine(err)).SetInternal(err)
}

// oneLine flattens errors.Join output.
func oneLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

func badRequest(format string, args ...any) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}
