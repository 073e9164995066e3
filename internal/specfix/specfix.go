// Package specfix rewrites the backend's OpenAPI document into the shape the Go tooling expects.
//
// Two independent passes exist. Downgrade turns OpenAPI 3.1 nullability (`anyOf` with a null
// member, `type: [T, "null"]`, `const`) into 3.0 form for oapi-codegen. RequireDiscriminants marks
// literal discriminant properties as required, which the upstream schema leaves optional because
// they carry defaults.
package specfix

import "sort"

// DefaultDiscriminator is the property name used by every tagged schema in the document.
const DefaultDiscriminator = "type"

// Options select the passes Apply runs.
type Options struct {
	// Downgrade rewrites 3.1 constructs into their 3.0 equivalents.
	Downgrade bool

	// RequireDiscriminants marks single-literal discriminant properties as required.
	RequireDiscriminants bool

	// Discriminator is the property considered a discriminant. Defaults to DefaultDiscriminator.
	Discriminator string
}

// Apply runs the selected passes over a decoded JSON document in place.
func Apply(doc any, opts Options) {
	prop := opts.Discriminator
	if prop == "" {
		prop = DefaultDiscriminator
	}
	walk(doc, func(v map[string]any) {
		if opts.Downgrade {
			downgrade(v)
		}
		if opts.RequireDiscriminants {
			requireDiscriminant(v, prop)
		}
	})
}

// Fix runs every pass with default options. It is what the code generator consumes.
func Fix(doc any) {
	Apply(doc, Options{Downgrade: true, RequireDiscriminants: true})
}

func walk(node any, visit func(map[string]any)) {
	switch v := node.(type) {
	case map[string]any:
		visit(v)
		for _, child := range v {
			walk(child, visit)
		}
	case []any:
		for _, child := range v {
			walk(child, visit)
		}
	}
}

func downgrade(v map[string]any) {
	if s, ok := v["openapi"].(string); ok && len(s) >= 3 && s[:3] == "3.1" {
		v["openapi"] = "3.0.3"
	}
	if c, ok := v["const"]; ok {
		delete(v, "const")
		v["enum"] = []any{c}
	}
	transformNullableAnyOf(v, "anyOf")
	transformNullableAnyOf(v, "oneOf")
	transformNullableTypeArray(v)
}

// requireDiscriminant adds prop to the schema's required list when prop is a string property
// restricted to exactly one literal.
func requireDiscriminant(schema map[string]any, prop string) {
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		return
	}
	p, ok := props[prop].(map[string]any)
	if !ok || literalValue(p) == "" {
		return
	}

	required, _ := schema["required"].([]any)
	for _, r := range required {
		if s, ok := r.(string); ok && s == prop {
			return
		}
	}
	required = append(required, prop)
	sort.SliceStable(required, func(i, j int) bool {
		a, _ := required[i].(string)
		b, _ := required[j].(string)
		return a < b
	})
	schema["required"] = required
	delete(p, "default")
}

// literalValue returns the single literal a schema allows, or "" when it allows more than one.
func literalValue(schema map[string]any) string {
	if c, ok := schema["const"].(string); ok {
		return c
	}
	enum, ok := schema["enum"].([]any)
	if !ok || len(enum) != 1 {
		return ""
	}
	s, _ := enum[0].(string)
	return s
}

func transformNullableAnyOf(obj map[string]any, key string) bool {
	arr, ok := obj[key].([]any)
	if !ok || len(arr) != 2 {
		return false
	}

	nullIdx := -1
	nonNullIdx := -1
	for i, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if isNullSchema(m) {
			nullIdx = i
			continue
		}
		nonNullIdx = i
	}
	if nullIdx == -1 || nonNullIdx == -1 {
		return false
	}

	nonNull, ok := arr[nonNullIdx].(map[string]any)
	if !ok {
		return false
	}

	// A bare $ref cannot carry siblings in 3.0, so refs are wrapped in allOf.
	if _, isRef := nonNull["$ref"]; isRef {
		nonNull = map[string]any{"allOf": []any{nonNull}}
	}

	// Outer keys like description/title survive the merge.
	merged := map[string]any{}
	for k, v := range obj {
		if k == key {
			continue
		}
		merged[k] = v
	}
	for k, v := range nonNull {
		merged[k] = v
	}
	merged["nullable"] = true

	for k := range obj {
		delete(obj, k)
	}
	for k, v := range merged {
		obj[k] = v
	}
	return true
}

func transformNullableTypeArray(obj map[string]any) bool {
	t, ok := obj["type"].([]any)
	if !ok || len(t) != 2 {
		return false
	}
	nullFound := false
	other := ""
	for _, item := range t {
		s, ok := item.(string)
		if !ok {
			return false
		}
		if s == "null" {
			nullFound = true
		} else {
			other = s
		}
	}
	if !nullFound || other == "" {
		return false
	}
	obj["type"] = other
	obj["nullable"] = true
	return true
}

func isNullSchema(schema map[string]any) bool {
	if t, ok := schema["type"].(string); ok && t == "null" {
		return true
	}
	if t, ok := schema["type"].([]any); ok {
		for _, item := range t {
			if s, ok := item.(string); ok && s == "null" {
				return true
			}
		}
	}
	return false
}
