// Package invoke is a typed Go binding for the InvokeAI backend API.
//
// The package re-exports the schema-derived models from the generated package, adds the unions
// the schema leaves implicit (model configs, post-upload actions), and offers helpers for
// building and validating node graphs.
//
// It does not perform HTTP itself. Endpoint builds *http.Request values for the caller's
// transport, and DecodeResponse turns the resulting *http.Response into a typed model.
//
// By default, Endpoint reads its base URL from the environment:
//
//   - INVOKEAI_API_URL (optional; defaults to http://127.0.0.1:9090)
package invoke
