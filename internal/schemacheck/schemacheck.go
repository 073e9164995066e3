// Package schemacheck validates JSON payloads against component schemas of the embedded OpenAPI
// document.
package schemacheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/invokego/invoke-go/internal/specfix"
	"github.com/invokego/invoke-go/openapi"
)

const documentURL = "file:///invokeai.openapi.json"

// ErrUnknownComponent is returned when the document has no schema with the requested name.
var ErrUnknownComponent = errors.New("schemacheck: unknown component")

// Validator compiles component schemas on first use and caches them.
type Validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	names    map[string]struct{}
	compiled map[string]*jsonschema.Schema
}

// New builds a Validator over doc. Literal discriminants are treated as required, matching the
// generated models.
func New(doc []byte) (*Validator, error) {
	var decoded any
	if err := json.Unmarshal(doc, &decoded); err != nil {
		return nil, fmt.Errorf("schemacheck: parse document: %w", err)
	}
	specfix.Apply(decoded, specfix.Options{RequireDiscriminants: true})

	names := map[string]struct{}{}
	if root, ok := decoded.(map[string]any); ok {
		if comps, ok := root["components"].(map[string]any); ok {
			if schemas, ok := comps["schemas"].(map[string]any); ok {
				for name := range schemas {
					names[name] = struct{}{}
				}
			}
		}
	}

	fixed, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("schemacheck: encode document: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(documentURL, bytes.NewReader(fixed)); err != nil {
		return nil, fmt.Errorf("schemacheck: add document: %w", err)
	}

	return &Validator{
		compiler: c,
		names:    names,
		compiled: map[string]*jsonschema.Schema{},
	}, nil
}

// Has reports whether the document defines component.
func (v *Validator) Has(component string) bool {
	_, ok := v.names[component]
	return ok
}

func (v *Validator) schema(component string) (*jsonschema.Schema, error) {
	if !v.Has(component) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if s, ok := v.compiled[component]; ok {
		return s, nil
	}
	s, err := v.compiler.Compile(documentURL + openapi.SchemaRef(component))
	if err != nil {
		return nil, fmt.Errorf("schemacheck: compile %s: %w", component, err)
	}
	v.compiled[component] = s
	return s, nil
}

// Validate checks body against the named component schema. A body that does not conform yields a
// *jsonschema.ValidationError.
func (v *Validator) Validate(component string, body []byte) error {
	s, err := v.schema(component)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return fmt.Errorf("schemacheck: parse body: %w", err)
	}
	return s.Validate(value)
}

// ValidateValue marshals value and validates it against component.
func (v *Validator) ValidateValue(component string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("schemacheck: encode value: %w", err)
	}
	return v.Validate(component, b)
}

var (
	once       sync.Once
	defaultVal *Validator
	defaultErr error
)

// Default returns the Validator for the embedded backend document.
func Default() (*Validator, error) {
	once.Do(func() {
		defaultVal, defaultErr = New(openapi.Document)
	})
	return defaultVal, defaultErr
}

// Validate checks body against component using the Default validator.
func Validate(component string, body []byte) error {
	v, err := Default()
	if err != nil {
		return err
	}
	return v.Validate(component, body)
}
