package http

import (
	"context"
	"net/http"
	"time"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type (
	JobLister interface {
		Handle(ctx context.Context, q queries.GetAllJobsQuery) ([]queries.JobView, error)
	}
	JobGetter interface {
		Handle(ctx context.Context, q queries.GetJobByIDQuery) (queries.JobView, error)
	}
	JobCreator interface {
		Handle(ctx context.Context, cmd commands.CreateJobCommand) (*job.Job, error)
	}
	JobUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateJobCommand) (*job.Job, error)
	}
	JobDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteJobCommand) error
	}
)

// JobsHandlers are the use cases behind /api/jobs.
type JobsHandlers struct {
	List   JobLister
	Get    JobGetter
	Create JobCreator
	Update JobUpdater
	Delete JobDeleter
}

// JobsRouter serves job postings under /api/jobs.
type JobsRouter struct {
	h   JobsHandlers
	now func() time.Time
}

func NewJobsRouter(h JobsHandlers) *JobsRouter {
	return &JobsRouter{h: h, now: time.Now}
}

func (r *JobsRouter) Register(g *echo.Group) {
	g.GET("", r.list)
	g.GET("/", r.list)
	g.POST("", r.create)
	g.POST("/", r.create)
	g.GET("/:jobId", r.get)
	g.PUT("/:jobId", r.update)
	g.DELETE("/:jobId", r.delete)
}

func (r *JobsRouter) list(c echo.Context) error {
	views, err := r.h.List.Handle(c.Request().Context(), queries.NewGetAllJobsQuery())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]JobResponse, len(views))
	for i, v := range views {
		resp[i] = jobResponseFromView(v)
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *JobsRouter) create(c echo.Context) error {
	var req JobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewCreateJobCommand(kernel.NewUUID(), details, r.now())
	if err != nil {
		return toHTTPError(err)
	}
	created, err := r.h.Create.Handle(c.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, JobsPrefix+"/"+created.ID().String())
	return c.JSON(http.StatusCreated, jobResponseFromAggregate(created))
}

func (r *JobsRouter) get(c echo.Context) error {
	id, err := jobIDFromPath(c)
	if err != nil {
		return err
	}
	q, err := queries.NewGetJobByIDQuery(id)
	if err != nil {
		return toHTTPError(err)
	}

	view, err := r.h.Get.Handle(c.Request().Context(), q)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, jobResponseFromView(view))
}

func (r *JobsRouter) update(c echo.Context) error {
	id, err := jobIDFromPath(c)
	if err != nil {
		return err
	}
	var req JobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewUpdateJobCommand(id, details)
	if err != nil {
		return toHTTPError(err)
	}
	updated, err := r.h.Update.Handle(c.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, jobResponseFromAggregate(updated))
}

func (r *JobsRouter) delete(c echo.Context) error {
	id, err := jobIDFromPath(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteJobCommand(id)
	if err != nil {
		return toHTTPError(err)
	}

	if err := r.h.Delete.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
