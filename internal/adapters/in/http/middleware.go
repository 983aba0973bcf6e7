package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// allowAnyOrigin marks every response as readable from any origin, including
// requests that carry no Origin header, which echo's CORS middleware skips.
func allowAnyOrigin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
			return next(c)
		}
	}
}

// jsonBody rejects malformed application/json bodies with 400 before any
// route runs, then rewinds the body for the handler's Bind.
func jsonBody() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.Body == http.NoBody ||
				!strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
				return next(c)
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				return err
			}
			if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
				return echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body")
			}

			req.Body = io.NopCloser(bytes.NewReader(body))
			return next(c)
		}
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError: true,
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// recoverer turns a panic into an ordinary error so the error handler answers
// 500 no matter what value was panicked.
func recoverer(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.ErrorContext(contextOf(c), "Panic recovered",
				"error", err,
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"stack", string(stack),
			)
			return fmt.Errorf("panic recovered: %v", err)
		},
	})
}

func contextOf(c echo.Context) context.Context {
	if req := c.Request(); req != nil {
		return req.Context()
	}
	return context.Background()
}
