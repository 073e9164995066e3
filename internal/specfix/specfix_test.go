package specfix

import (
	"encoding/json"
	"testing"
)

func schemaOf(t *testing.T, doc any, name string) map[string]any {
	t.Helper()
	root := doc.(map[string]any)
	schemas := root["components"].(map[string]any)["schemas"].(map[string]any)
	s, ok := schemas[name].(map[string]any)
	if !ok {
		t.Fatalf("schema %s missing", name)
	}
	return s
}

func TestFix_DowngradesOpenAPIVersion(t *testing.T) {
	doc := map[string]any{
		"openapi": "3.1.0",
		"info":    map[string]any{"title": "x", "version": "0"},
	}
	Fix(doc)

	if got, _ := doc["openapi"].(string); got != "3.0.3" {
		t.Fatalf("expected openapi 3.0.3, got %q", got)
	}
}

func TestFix_TransformsNullableAnyOf(t *testing.T) {
	input := []byte(`{
		"openapi": "3.1.0",
		"components": {
			"schemas": {
				"BoardChanges": {
					"type": "object",
					"properties": {
						"board_name": {
							"description": "The board's new name.",
							"anyOf": [
								{"type": "string", "maxLength": 300},
								{"type": "null"}
							]
						}
					}
				}
			}
		}
	}`)

	var doc any
	if err := json.Unmarshal(input, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	Fix(doc)

	props := schemaOf(t, doc, "BoardChanges")["properties"].(map[string]any)
	name := props["board_name"].(map[string]any)
	if _, ok := name["anyOf"]; ok {
		t.Fatalf("expected anyOf removed")
	}
	if got, _ := name["type"].(string); got != "string" {
		t.Fatalf("expected type string, got %v", name["type"])
	}
	if got, _ := name["nullable"].(bool); !got {
		t.Fatalf("expected nullable true")
	}
	if got, _ := name["maxLength"].(float64); got != 300 {
		t.Fatalf("expected maxLength preserved, got %v", name["maxLength"])
	}
	if got, _ := name["description"].(string); got != "The board's new name." {
		t.Fatalf("expected description preserved, got %q", got)
	}
}

func TestFix_WrapsNullableRefInAllOf(t *testing.T) {
	doc := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"ImageRecordChanges": map[string]any{
					"anyOf": []any{
						map[string]any{"$ref": "#/components/schemas/ImageCategory"},
						map[string]any{"type": "null"},
					},
				},
			},
		},
	}
	Fix(doc)

	s := schemaOf(t, doc, "ImageRecordChanges")
	if _, ok := s["$ref"]; ok {
		t.Fatalf("expected $ref moved under allOf")
	}
	all, ok := s["allOf"].([]any)
	if !ok || len(all) != 1 {
		t.Fatalf("expected single allOf entry, got %v", s["allOf"])
	}
	if got, _ := s["nullable"].(bool); !got {
		t.Fatalf("expected nullable true")
	}
}

func TestFix_TransformsNullableTypeArray(t *testing.T) {
	doc := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"Example": map[string]any{
					"type": []any{"integer", "null"},
				},
			},
		},
	}
	Fix(doc)

	ex := schemaOf(t, doc, "Example")
	if got, _ := ex["type"].(string); got != "integer" {
		t.Fatalf("expected type integer, got %v", ex["type"])
	}
	if got, _ := ex["nullable"].(bool); !got {
		t.Fatalf("expected nullable true")
	}
}

func TestFix_RewritesConstAsEnum(t *testing.T) {
	doc := map[string]any{"const": "range"}
	Apply(doc, Options{Downgrade: true})

	if _, ok := doc["const"]; ok {
		t.Fatalf("expected const removed")
	}
	enum, _ := doc["enum"].([]any)
	if len(enum) != 1 || enum[0] != "range" {
		t.Fatalf("expected enum [range], got %v", doc["enum"])
	}
}

func TestRequireDiscriminants_MarksLiteralTypeRequired(t *testing.T) {
	input := []byte(`{
		"components": {
			"schemas": {
				"RangeInvocation": {
					"type": "object",
					"required": ["id"],
					"properties": {
						"id": {"type": "string"},
						"type": {"type": "string", "enum": ["range"], "default": "range"},
						"start": {"type": "integer"}
					}
				},
				"ValidationError": {
					"type": "object",
					"required": ["msg"],
					"properties": {
						"msg": {"type": "string"},
						"type": {"type": "string"}
					}
				}
			}
		}
	}`)
	var doc any
	if err := json.Unmarshal(input, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	Apply(doc, Options{RequireDiscriminants: true})

	rng := schemaOf(t, doc, "RangeInvocation")
	req, _ := rng["required"].([]any)
	if len(req) != 2 || req[0] != "id" || req[1] != "type" {
		t.Fatalf("expected required [id type], got %v", req)
	}
	typ := rng["properties"].(map[string]any)["type"].(map[string]any)
	if _, ok := typ["default"]; ok {
		t.Fatalf("expected default dropped from required discriminant")
	}

	// A free-form "type" field is not a discriminant.
	ve := schemaOf(t, doc, "ValidationError")
	if req, _ := ve["required"].([]any); len(req) != 1 {
		t.Fatalf("expected ValidationError.required untouched, got %v", req)
	}
}

func TestRequireDiscriminants_Idempotent(t *testing.T) {
	doc := map[string]any{
		"properties": map[string]any{
			"type": map[string]any{"const": "image_output"},
		},
		"required": []any{"type"},
	}
	Apply(doc, Options{RequireDiscriminants: true})
	Apply(doc, Options{RequireDiscriminants: true})

	if req, _ := doc["required"].([]any); len(req) != 1 {
		t.Fatalf("expected a single required entry, got %v", req)
	}
}
