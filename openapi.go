// Package diskprobe embeds the OpenAPI description of the HTTP API.
package diskprobe

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.1 -config oapi-codegen.yaml openapi.yaml

// OpenAPIYAML is the OpenAPI 3 document served at /spec.yaml.
//
//go:embed openapi.yaml
var OpenAPIYAML []byte

// Swagger parses OpenAPIYAML for request validation.
func Swagger() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(OpenAPIYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	return doc, nil
}
