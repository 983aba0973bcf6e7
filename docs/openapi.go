package docs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI3 converts the registered Swagger 2.0 document to OpenAPI 3 and
// validates the result.
func OpenAPI3(ctx context.Context) (*openapi3.T, error) {
	var v2 openapi2.T
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &v2); err != nil {
		return nil, fmt.Errorf("failed to parse swagger document: %w", err)
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert swagger document: %w", err)
	}
	if err := v3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid API document: %w", err)
	}

	return v3, nil
}

// OpenAPI3JSON is OpenAPI3 rendered as JSON.
func OpenAPI3JSON(ctx context.Context) ([]byte, error) {
	doc, err := OpenAPI3(ctx)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}
