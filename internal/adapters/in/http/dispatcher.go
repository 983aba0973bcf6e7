// Package http is the inbound HTTP adapter: the ordered request dispatcher and
// the jobs, users and docs sub-dispatchers mounted on it.
package http

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
)

const (
	JobsPrefix  = "/api/jobs"
	UsersPrefix = "/api/users"
	DocsPrefix  = "/api-docs"

	DefaultBodyLimit = "1M"
)

// Router is a sub-dispatcher mounted under a fixed prefix.
type Router interface {
	Register(g *echo.Group)
}

// DispatcherConfig is everything NewDispatcher needs. It is built once and
// never mutated after the dispatcher exists.
type DispatcherConfig struct {
	Jobs  Router
	Users Router
	Docs  Router

	// AllowOrigins defaults to every origin.
	AllowOrigins []string
	// BodyLimit uses gommon byte notation ("512K", "1M").
	BodyLimit string

	Logger *slog.Logger
}

// Validate rejects configs that would make NewDispatcher panic.
func (c DispatcherConfig) Validate() error {
	var missing []string
	if c.Jobs == nil {
		missing = append(missing, "jobs router")
	}
	if c.Users == nil {
		missing = append(missing, "users router")
	}
	if c.Docs == nil {
		missing = append(missing, "docs router")
	}
	if c.Logger == nil {
		missing = append(missing, "logger")
	}
	if len(missing) > 0 {
		return fmt.Errorf("dispatcher config is missing %s", strings.Join(missing, ", "))
	}

	if c.BodyLimit != "" {
		if _, err := bytes.Parse(c.BodyLimit); err != nil {
			return fmt.Errorf("invalid body limit %q: %w", c.BodyLimit, err)
		}
	}
	return nil
}

// Stage is one step of the dispatcher's fixed registration order. Stages
// without a Prefix see every request.
type Stage struct {
	Name   string
	Prefix string
	Apply  func(e *echo.Echo)
}

func (s Stage) String() string {
	if s.Prefix == "" {
		return s.Name
	}
	return s.Name + " " + s.Prefix
}

// Stages lists the dispatcher stages in registration order:
// CORS, JSON body parsing, the three prefix mounts, the unknown-endpoint
// fallback and finally the error handler.
func Stages(cfg DispatcherConfig) []Stage {
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	limit := cfg.BodyLimit
	if limit == "" {
		limit = DefaultBodyLimit
	}

	return []Stage{
		{
			Name: "cors",
			Apply: func(e *echo.Echo) {
				if slices.Contains(origins, "*") {
					e.Use(allowAnyOrigin())
				}
				e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: origins}))
			},
		},
		{
			Name: "json body",
			Apply: func(e *echo.Echo) {
				e.Use(middleware.BodyLimit(limit), jsonBody())
			},
		},
		{
			Name:   "jobs",
			Prefix: JobsPrefix,
			Apply:  func(e *echo.Echo) { cfg.Jobs.Register(e.Group(JobsPrefix)) },
		},
		{
			Name:   "users",
			Prefix: UsersPrefix,
			Apply:  func(e *echo.Echo) { cfg.Users.Register(e.Group(UsersPrefix)) },
		},
		{
			Name:   "docs",
			Prefix: DocsPrefix,
			Apply:  func(e *echo.Echo) { cfg.Docs.Register(e.Group(DocsPrefix)) },
		},
		{
			Name:   "unknown endpoint",
			Prefix: "/*",
			Apply:  func(e *echo.Echo) { e.RouteNotFound("/*", UnknownEndpoint) },
		},
		{
			Name: "error handler",
			Apply: func(e *echo.Echo) {
				e.HTTPErrorHandler = ErrorHandler(cfg.Logger)
				// Pre runs ahead of routing, so these wrap every other stage.
				e.Pre(requestLogger(cfg.Logger), recoverer(cfg.Logger))
			},
		},
	}
}

// NewDispatcher applies Stages in order and returns the unbound handler.
// The route table is not modified afterwards.
func NewDispatcher(cfg DispatcherConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	for _, stage := range Stages(cfg) {
		stage.Apply(e)
	}

	return e
}
