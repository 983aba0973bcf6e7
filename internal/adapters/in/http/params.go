package http

import (
	"jobboard/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/oapi-codegen/runtime/types"
)

const jobIDParam = "jobId"

// jobIDFromPath binds the :jobId segment the way generated oapi-codegen
// wrappers bind path parameters.
func jobIDFromPath(c echo.Context) (kernel.UUID, error) {
	var raw types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", jobIDParam, c.Param(jobIDParam), &raw,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, badRequest("Invalid format for parameter %s: %v", jobIDParam, err)
	}

	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, badRequest("Invalid format for parameter %s: %v", jobIDParam, err)
	}
	return id, nil
}
