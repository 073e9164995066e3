package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"reflect"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// DefaultBaseURL is the address a local InvokeAI server listens on.
//
// Request builders use paths like "/api/v1/images/" under this base.
const DefaultBaseURL = "http://127.0.0.1:9090"

// BaseURLEnv names the environment variable consulted when Options.BaseURL is empty.
const BaseURLEnv = "INVOKEAI_API_URL"

// Options configure an Endpoint.
type Options struct {
	// BaseURL is the API base URL. Defaults to INVOKEAI_API_URL if set, else DefaultBaseURL.
	BaseURL string

	// Header is copied onto every request built by the Endpoint.
	Header http.Header
}

// Endpoint builds requests against one InvokeAI server. It never sends them: the caller owns
// the transport and passes responses to DecodeResponse.
type Endpoint struct {
	baseURL *url.URL
	header  http.Header
}

// NewEndpoint constructs an Endpoint.
//
// Returns ConfigurationError if the base URL is invalid.
func NewEndpoint(opts Options) (*Endpoint, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = strings.TrimSpace(os.Getenv(BaseURLEnv))
	}
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("invalid base URL: %v", err)}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ConfigurationError{Message: fmt.Sprintf("invalid base URL %q: scheme and host are required", base)}
	}

	return &Endpoint{
		baseURL: parsed,
		header:  opts.Header.Clone(),
	}, nil
}

// BaseURL returns a copy of the configured base URL.
func (e *Endpoint) BaseURL() *url.URL {
	u := *e.baseURL
	return &u
}

// NewRequest builds a low-level request.
//
// apiPath must already be escaped. A non-nil body is marshaled as JSON.
func (e *Endpoint) NewRequest(ctx context.Context, method, apiPath string, query url.Values, body any) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	reqURL, err := e.buildURL(apiPath, query)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return nil, err
	}

	for k, vs := range e.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// ListImages builds GET /api/v1/images/. Decode with OffsetPaginatedResultsImageDTO.
func (e *Endpoint) ListImages(ctx context.Context, args ListImagesArgs) (*http.Request, error) {
	q, err := queryParams(args)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodGet, "/api/v1/images/", q, nil)
}

// GetImage builds GET /api/v1/images/i/{image_name}. Decode with ImageDTO.
func (e *Endpoint) GetImage(ctx context.Context, imageName string) (*http.Request, error) {
	p, err := pathParam("image_name", imageName)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodGet, "/api/v1/images/i/"+p, nil, nil)
}

// DeleteImage builds DELETE /api/v1/images/i/{image_name}.
func (e *Endpoint) DeleteImage(ctx context.Context, imageName string) (*http.Request, error) {
	p, err := pathParam("image_name", imageName)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodDelete, "/api/v1/images/i/"+p, nil, nil)
}

// DeleteImages builds POST /api/v1/images/delete. Decode with DeleteImagesResult.
func (e *Endpoint) DeleteImages(ctx context.Context, imageNames []string) (*http.Request, error) {
	if len(imageNames) == 0 {
		return nil, &ConfigurationError{Message: "delete requires at least one image name"}
	}
	return e.NewRequest(ctx, http.MethodPost, "/api/v1/images/delete", nil, DeleteImagesFromListBody{ImageNames: imageNames})
}

// UpdateImage builds PATCH /api/v1/images/i/{image_name}. Decode with ImageDTO.
func (e *Endpoint) UpdateImage(ctx context.Context, imageName string, changes ImageRecordChanges) (*http.Request, error) {
	p, err := pathParam("image_name", imageName)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodPatch, "/api/v1/images/i/"+p, nil, changes)
}

// UploadImage builds the multipart POST /api/v1/images/upload. Pass the response to
// CompleteUpload to run args.PostUploadAction.
func (e *Endpoint) UploadImage(ctx context.Context, args UploadImageArgs) (*http.Request, error) {
	if len(args.File) == 0 {
		return nil, &ConfigurationError{Message: "upload requires non-empty file bytes"}
	}
	if strings.TrimSpace(args.FileName) == "" {
		return nil, &ConfigurationError{Message: "upload requires FileName"}
	}
	if args.Params.ImageCategory == "" {
		return nil, &ConfigurationError{Message: "upload requires Params.ImageCategory"}
	}

	var file File
	file.InitFromBytes(args.File, args.FileName)
	q, err := queryParams(args.Params)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", file.Filename())
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	r, err := file.Reader()
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if _, err := io.Copy(fw, r); err != nil {
		_ = w.Close()
		return nil, err
	}
	_ = r.Close()
	if err := w.Close(); err != nil {
		return nil, err
	}

	reqURL, err := e.buildURL("/api/v1/images/upload", q)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), &buf)
	if err != nil {
		return nil, err
	}
	for k, vs := range e.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// ListBoards builds GET /api/v1/boards/. With All set the backend returns []BoardDTO, otherwise
// OffsetPaginatedResultsBoardDTO.
func (e *Endpoint) ListBoards(ctx context.Context, args ListBoardsArgs) (*http.Request, error) {
	q, err := queryParams(args)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodGet, "/api/v1/boards/", q, nil)
}

// CreateBoard builds POST /api/v1/boards/. Decode with BoardDTO.
func (e *Endpoint) CreateBoard(ctx context.Context, boardName string) (*http.Request, error) {
	if strings.TrimSpace(boardName) == "" {
		return nil, &ConfigurationError{Message: "board name is required"}
	}
	q, err := queryParams(CreateBoardArgs{BoardName: boardName})
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodPost, "/api/v1/boards/", q, nil)
}

// GetBoard builds GET /api/v1/boards/{board_id}. Decode with BoardDTO.
func (e *Endpoint) GetBoard(ctx context.Context, boardID string) (*http.Request, error) {
	p, err := pathParam("board_id", boardID)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodGet, "/api/v1/boards/"+p, nil, nil)
}

// UpdateBoard builds PATCH /api/v1/boards/{board_id}. Decode with BoardDTO.
func (e *Endpoint) UpdateBoard(ctx context.Context, args UpdateBoardArgs) (*http.Request, error) {
	p, err := pathParam("board_id", args.BoardID)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodPatch, "/api/v1/boards/"+p, nil, args.Changes)
}

// DeleteBoard builds DELETE /api/v1/boards/{board_id}. Decode with DeleteBoardResult.
func (e *Endpoint) DeleteBoard(ctx context.Context, boardID string, args DeleteBoardArgs) (*http.Request, error) {
	p, err := pathParam("board_id", boardID)
	if err != nil {
		return nil, err
	}
	q, err := queryParams(args)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodDelete, "/api/v1/boards/"+p, q, nil)
}

// ListModels builds GET /api/v1/models/. Decode with ModelsList.
func (e *Endpoint) ListModels(ctx context.Context, args ListModelsArgs) (*http.Request, error) {
	q, err := queryParams(args)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodGet, "/api/v1/models/", q, nil)
}

// CreateSession builds POST /api/v1/sessions/. The graph is checked with ValidateGraph first.
// Decode with GraphExecutionState.
func (e *Endpoint) CreateSession(ctx context.Context, graph Graph) (*http.Request, error) {
	if err := ValidateGraph(graph); err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodPost, "/api/v1/sessions/", nil, graph)
}

// GetSession builds GET /api/v1/sessions/{session_id}. Decode with GraphExecutionState.
func (e *Endpoint) GetSession(ctx context.Context, sessionID string) (*http.Request, error) {
	p, err := pathParam("session_id", sessionID)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodGet, "/api/v1/sessions/"+p, nil, nil)
}

// InvokeSession builds PUT /api/v1/sessions/{session_id}/invoke.
func (e *Endpoint) InvokeSession(ctx context.Context, sessionID string, args InvokeSessionArgs) (*http.Request, error) {
	p, err := pathParam("session_id", sessionID)
	if err != nil {
		return nil, err
	}
	q, err := queryParams(args)
	if err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodPut, "/api/v1/sessions/"+p+"/invoke", q, nil)
}

// CreateBatch builds POST /api/v1/batches/. Decode with BatchProcessResponse.
func (e *Endpoint) CreateBatch(ctx context.Context, body CreateBatchBody) (*http.Request, error) {
	if err := ValidateGraph(body.Graph); err != nil {
		return nil, err
	}
	return e.NewRequest(ctx, http.MethodPost, "/api/v1/batches/", nil, body)
}

// queryParams styles every field of a generated params struct as an exploded form parameter,
// keyed by its `form` tag. Nil optional fields are skipped.
func queryParams(params any) (url.Values, error) {
	q := url.Values{}
	v := reflect.ValueOf(params)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("form")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}

		frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, fv.Interface())
		if err != nil {
			return nil, fmt.Errorf("invoke: query parameter %s: %w", name, err)
		}
		parsed, err := url.ParseQuery(frag)
		if err != nil {
			return nil, fmt.Errorf("invoke: query parameter %s: %w", name, err)
		}
		for k, vs := range parsed {
			for _, s := range vs {
				q.Add(k, s)
			}
		}
	}
	return q, nil
}

func pathParam(name, value string) (string, error) {
	if value == "" {
		return "", &ConfigurationError{Message: fmt.Sprintf("path parameter %s is required", name)}
	}
	return runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
}

func (e *Endpoint) buildURL(apiPath string, query url.Values) (*url.URL, error) {
	// Ensure path join doesn't drop base path.
	u := *e.baseURL
	joined := apiPath
	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	hadTrailingSlash := joined != "/" && strings.HasSuffix(joined, "/")
	cleaned := path.Clean(strings.TrimSuffix(u.EscapedPath(), "/") + joined)
	if hadTrailingSlash && !strings.HasSuffix(cleaned, "/") {
		cleaned += "/"
	}
	unescaped, err := url.PathUnescape(cleaned)
	if err != nil {
		return nil, err
	}
	u.Path = unescaped
	u.RawPath = cleaned
	u.RawQuery = query.Encode()
	return &u, nil
}
