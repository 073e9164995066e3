// Package openapi embeds the backend's OpenAPI document.
//
// The document is the source of truth for the generated models and for the shape checks run on
// decoded responses. Replace invokeai.openapi.json and run `go generate ./...` to pick up a new
// backend release.
package openapi

import _ "embed"

// Document is the raw OpenAPI 3.1 JSON as published by the backend.
//
//go:embed invokeai.openapi.json
var Document []byte

// SchemaRef returns the JSON pointer fragment of a component schema.
func SchemaRef(component string) string {
	return "#/components/schemas/" + component
}
