package invoke

import (
	"fmt"
	"strings"
)

// ConfigurationError indicates invalid or missing endpoint configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "invoke: configuration error"
	}
	return fmt.Sprintf("invoke: configuration error: %s", e.Message)
}

// APIStatusError is returned for non-2xx HTTP responses.
type APIStatusError struct {
	StatusCode   int
	Method       string
	URL          string
	ResponseText string
}

func (e *APIStatusError) Error() string {
	if e == nil {
		return "invoke: api status error"
	}
	if e.ResponseText != "" {
		return fmt.Sprintf("invoke: api error (%d) %s %s: %s", e.StatusCode, e.Method, e.URL, e.ResponseText)
	}
	return fmt.Sprintf("invoke: api error (%d) %s %s", e.StatusCode, e.Method, e.URL)
}

// APIValidationError is returned for HTTP 422 responses, which the backend sends when a request
// fails its pydantic request models. ValidationError holds the decoded HTTPValidationError body
// when there is one; its detail items name the offending location, such as body.graph.nodes.
type APIValidationError struct {
	APIStatusError
	ValidationError *HTTPValidationError
}

// Fields renders each detail item as "loc: msg", with loc parts joined by dots.
func (e *APIValidationError) Fields() []string {
	if e == nil || e.ValidationError == nil || e.ValidationError.Detail == nil {
		return nil
	}
	out := make([]string, 0, len(*e.ValidationError.Detail))
	for _, d := range *e.ValidationError.Detail {
		loc := make([]string, 0, len(d.Loc))
		for _, part := range d.Loc {
			loc = append(loc, fmt.Sprint(part))
		}
		out = append(out, strings.Join(loc, ".")+": "+d.Msg)
	}
	return out
}

func (e *APIValidationError) Error() string {
	if e == nil {
		return "invoke: api validation error"
	}
	if fields := e.Fields(); len(fields) > 0 {
		return fmt.Sprintf("invoke: api validation error (%d) %s %s: %s",
			e.StatusCode, e.Method, e.URL, strings.Join(fields, "; "))
	}
	return (&e.APIStatusError).Error()
}

// UnexpectedShapeError reports a payload that does not match the expected discriminant or schema.
//
// Type names the Go type or schema component being decoded. Tag carries the discriminant value
// that was seen, if any. Err holds the underlying decode or schema error.
type UnexpectedShapeError struct {
	Type   string
	Tag    string
	Reason string
	Err    error
}

func (e *UnexpectedShapeError) Error() string {
	if e == nil {
		return "invoke: unexpected shape"
	}
	msg := fmt.Sprintf("invoke: unexpected %s shape", e.Type)
	if e.Tag != "" {
		msg += fmt.Sprintf(" (tag %q)", e.Tag)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnexpectedShapeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
