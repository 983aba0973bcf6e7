package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// DocsRouter serves the interactive API docs under /api-docs. The Swagger UI
// reads the swag-registered document; openapi.json is its OpenAPI 3 rendering.
type DocsRouter struct {
	openAPI3 []byte
}

func NewDocsRouter(openAPI3JSON []byte) *DocsRouter {
	return &DocsRouter{openAPI3: openAPI3JSON}
}

func (r *DocsRouter) Register(g *echo.Group) {
	g.GET("", redirectToUI)
	g.GET("/", redirectToUI)
	g.GET("/openapi.json", r.serveOpenAPI3)
	g.GET("/*", echoSwagger.WrapHandler)
	// Other methods get the same 404 as any unknown endpoint.
	g.RouteNotFound("/*", UnknownEndpoint)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, DocsPrefix+"/index.html")
}

func (r *DocsRouter) serveOpenAPI3(c echo.Context) error {
	if len(r.openAPI3) == 0 {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, r.openAPI3)
}
