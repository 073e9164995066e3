package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/invokego/invoke-go/internal/specfix"
)

func TestRun_WritesFixedDocument(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "build", "out.json")

	src := `{
		"openapi": "3.1.0",
		"components": {"schemas": {"ImageOutput": {
			"type": "object",
			"required": ["image"],
			"properties": {
				"image": {"$ref": "#/components/schemas/ImageField"},
				"type": {"type": "string", "enum": ["image_output"], "default": "image_output"}
			}
		}}}
	}`
	if err := os.WriteFile(in, []byte(src), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if err := run(in, out, specfix.Options{Downgrade: true, RequireDiscriminants: true}); err != nil {
		t.Fatalf("run: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc struct {
		OpenAPI    string `json:"openapi"`
		Components struct {
			Schemas map[string]struct {
				Required []string `json:"required"`
			} `json:"schemas"`
		} `json:"components"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if doc.OpenAPI != "3.0.3" {
		t.Fatalf("expected 3.0.3, got %q", doc.OpenAPI)
	}
	req := doc.Components.Schemas["ImageOutput"].Required
	if len(req) != 2 || req[1] != "type" {
		t.Fatalf("expected type to be required, got %v", req)
	}
}

func TestRun_RejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	if err := os.WriteFile(in, []byte("{"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if err := run(in, filepath.Join(dir, "out.json"), specfix.Options{}); err == nil {
		t.Fatalf("expected parse error")
	}
}
