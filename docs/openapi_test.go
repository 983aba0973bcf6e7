package docs_test

import (
	"encoding/json"
	"testing"

	"jobboard/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument_IsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc("swagger")
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "2.0", parsed["swagger"])
}

func TestOpenAPI3(t *testing.T) {
	doc, err := docs.OpenAPI3(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "Job Board API", doc.Info.Title)
	for _, path := range []string{"/api/jobs", "/api/jobs/{jobId}", "/api/users/signup", "/api/users/login"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	item := doc.Paths.Find("/api/jobs/{jobId}")
	require.NotNil(t, item)
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Put)
	assert.NotNil(t, item.Delete)
	assert.NotNil(t, item.Put.RequestBody, "body parameter becomes a request body")
	assert.Contains(t, doc.Components.Schemas, "JobRequest")
}

func TestOpenAPI3JSON(t *testing.T) {
	raw, err := docs.OpenAPI3JSON(t.Context())
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Regexp(t, `^3\.`, parsed["openapi"])
}
