package generated

// This package contains code generated from the OpenAPI schema.
//
// Regenerate with:
//
// 	go generate ./...
//
// The schema lives at openapi/invokeai.openapi.json and is owned by the backend.

// The backend publishes OpenAPI 3.1 and leaves literal `type` discriminants optional because they
// carry defaults. specfix rewrites nullability into 3.0 form and marks those discriminants required,
// so the generated structs hold them as plain values instead of pointers.
//
//go:generate go run ../cmd/specfix -in ../openapi/invokeai.openapi.json -out ../build/openapi-3.0.json
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -generate types -package generated -o types.gen.go ../build/openapi-3.0.json
