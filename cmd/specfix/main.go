// Command specfix prepares the backend OpenAPI document for code generation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invokego/invoke-go/internal/specfix"
)

func main() {
	var inPath string
	var outPath string
	var keepOptional bool
	flag.StringVar(&inPath, "in", "", "Input OpenAPI JSON path")
	flag.StringVar(&outPath, "out", "", "Output OpenAPI JSON path")
	flag.BoolVar(&keepOptional, "keep-optional-discriminants", false, "Leave literal `type` properties optional")
	flag.Parse()

	if inPath == "" || outPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: specfix -in <openapi.json> -out <out.json>")
		os.Exit(2)
	}

	opts := specfix.Options{Downgrade: true, RequireDiscriminants: !keepOptional}
	if err := run(inPath, outPath, opts); err != nil {
		fmt.Fprintf(os.Stderr, "specfix: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, opts specfix.Options) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}

	specfix.Apply(doc, opts)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
