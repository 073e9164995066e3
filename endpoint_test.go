package invoke

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/invokego/invoke-go/generated"
)

const imageJSON = `{
	"image_name": "img.png",
	"image_url": "/api/v1/images/i/img.png/full",
	"thumbnail_url": "/api/v1/images/i/img.png/thumbnail",
	"image_origin": "internal",
	"image_category": "general",
	"width": 512,
	"height": 768,
	"created_at": "2023-07-01 10:00:00",
	"updated_at": "2023-07-01 10:00:00",
	"is_intermediate": false,
	"starred": false
}`

func TestNewEndpoint_UsesEnvBaseURL(t *testing.T) {
	t.Setenv("INVOKEAI_API_URL", "http://invoke.local:9090")
	e, err := NewEndpoint(Options{})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got := e.BaseURL().String(); got != "http://invoke.local:9090" {
		t.Fatalf("expected env base URL, got %q", got)
	}
}

func TestNewEndpoint_DefaultsToLocalServer(t *testing.T) {
	t.Setenv("INVOKEAI_API_URL", "")
	e, err := NewEndpoint(Options{})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	if got := e.BaseURL().String(); got != DefaultBaseURL {
		t.Fatalf("expected %q, got %q", DefaultBaseURL, got)
	}
}

func TestNewEndpoint_RejectsRelativeBaseURL(t *testing.T) {
	_, err := NewEndpoint(Options{BaseURL: "invoke.local"})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T (%v)", err, err)
	}
}

func TestNewRequest_KeepsBasePathAndHeaders(t *testing.T) {
	e, err := NewEndpoint(Options{
		BaseURL: "http://proxy.local/invoke/",
		Header:  http.Header{"X-Forwarded-User": []string{"alice"}},
	})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	req, err := e.NewRequest(context.Background(), http.MethodGet, "/api/v1/boards/", nil, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if got := req.URL.String(); got != "http://proxy.local/invoke/api/v1/boards/" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := req.Header.Get("X-Forwarded-User"); got != "alice" {
		t.Fatalf("expected header copied, got %q", got)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Fatalf("expected json accept header, got %q", got)
	}
}

func TestListImages_StylesQueryParams(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	origin := generated.ResourceOriginInternal
	categories := []ImageCategory{generated.ImageCategoryGeneral, generated.ImageCategoryMask}
	intermediate := false
	limit := 10

	req, err := e.ListImages(context.Background(), ListImagesArgs{
		ImageOrigin:    &origin,
		Categories:     &categories,
		IsIntermediate: &intermediate,
		Limit:          &limit,
	})
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}
	if req.Method != http.MethodGet || req.URL.Path != "/api/v1/images/" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	q := req.URL.Query()
	if got := q["categories"]; len(got) != 2 || got[0] != "general" || got[1] != "mask" {
		t.Fatalf("expected exploded categories, got %v", got)
	}
	if got := q.Get("image_origin"); got != "internal" {
		t.Fatalf("expected image_origin internal, got %q", got)
	}
	if got := q.Get("is_intermediate"); got != "false" {
		t.Fatalf("expected is_intermediate false, got %q", got)
	}
	if got := q.Get("limit"); got != "10" {
		t.Fatalf("expected limit 10, got %q", got)
	}
	if q.Has("offset") || q.Has("board_id") {
		t.Fatalf("expected nil params omitted, got %v", q)
	}
}

func TestGetImage_EscapesPathParam(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	req, err := e.GetImage(context.Background(), "a b/c.png")
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}
	if got := req.URL.EscapedPath(); got != "/api/v1/images/i/a%20b%2Fc.png" {
		t.Fatalf("unexpected escaped path %q", got)
	}
}

func TestGetImage_RequiresName(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	if _, err := e.GetImage(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty image name")
	}
}

func TestDeleteBoard_PathAndQuery(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	include := true
	req, err := e.DeleteBoard(context.Background(), "board-1", DeleteBoardArgs{IncludeImages: &include})
	if err != nil {
		t.Fatalf("DeleteBoard: %v", err)
	}
	if req.Method != http.MethodDelete {
		t.Fatalf("expected DELETE, got %s", req.Method)
	}
	if got := req.URL.String(); got != "http://invoke.local/api/v1/boards/board-1?include_images=true" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestCreateBoard_SendsNameAsQuery(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	req, err := e.CreateBoard(context.Background(), "My Board")
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if got := req.URL.Query().Get("board_name"); got != "My Board" {
		t.Fatalf("expected board_name query, got %q", got)
	}
	if req.Body != nil {
		t.Fatalf("expected no body")
	}
}

func TestUpdateBoard_SendsChanges(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	name := "renamed"
	req, err := e.UpdateBoard(context.Background(), UpdateBoardArgs{BoardID: "b1", Changes: BoardChanges{BoardName: &name}})
	if err != nil {
		t.Fatalf("UpdateBoard: %v", err)
	}
	if req.Method != http.MethodPatch || req.URL.Path != "/api/v1/boards/b1" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}
	b, _ := io.ReadAll(req.Body)
	if string(b) != `{"board_name":"renamed"}` {
		t.Fatalf("unexpected body %s", b)
	}
}

func TestDeleteImages_PostsNames(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	req, err := e.DeleteImages(context.Background(), []string{"a.png", "b.png"})
	if err != nil {
		t.Fatalf("DeleteImages: %v", err)
	}
	if req.Method != http.MethodPost || req.URL.Path != "/api/v1/images/delete" {
		t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
	}
	b, _ := io.ReadAll(req.Body)
	if string(b) != `{"image_names":["a.png","b.png"]}` {
		t.Fatalf("unexpected body %s", b)
	}

	var cfgErr *ConfigurationError
	if _, err := e.DeleteImages(context.Background(), nil); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for no names, got %v", err)
	}
}

func TestInvokeSession_UsesPut(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	all := true
	req, err := e.InvokeSession(context.Background(), "s1", InvokeSessionArgs{All: &all})
	if err != nil {
		t.Fatalf("InvokeSession: %v", err)
	}
	if req.Method != http.MethodPut {
		t.Fatalf("expected PUT, got %s", req.Method)
	}
	if got := req.URL.String(); got != "http://invoke.local/api/v1/sessions/s1/invoke?all=true" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestListModels_StylesBaseModels(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	bases := []BaseModelType{generated.BaseModelTypeSd1, generated.BaseModelTypeSdxl}
	mt := generated.ModelTypeMain
	req, err := e.ListModels(context.Background(), ListModelsArgs{BaseModels: &bases, ModelType: &mt})
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	q := req.URL.Query()
	if got := q["base_models"]; len(got) != 2 || got[0] != "sd-1" || got[1] != "sdxl" {
		t.Fatalf("expected exploded base_models, got %v", got)
	}
	if got := q.Get("model_type"); got != "main" {
		t.Fatalf("expected model_type main, got %q", got)
	}
}

func TestCreateSession_RejectsInvalidGraph(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	g := NewGraph("g1")
	Connect(&g, "missing", "value", "other", "value")

	if _, err := e.CreateSession(context.Background(), g); err == nil {
		t.Fatalf("expected graph validation error")
	}
}

func TestUploadImage_RequiresFile(t *testing.T) {
	e, err := NewEndpoint(Options{BaseURL: "http://invoke.local"})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	_, err = e.UploadImage(context.Background(), UploadImageArgs{FileName: "x.png"})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T", err)
	}
}

func TestUploadImage_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/images/upload" {
			w.WriteHeader(404)
			return
		}
		if got := r.URL.Query().Get("image_category"); got != "control" {
			t.Errorf("expected image_category control, got %q", got)
		}
		if got := r.URL.Query().Get("is_intermediate"); got != "true" {
			t.Errorf("expected is_intermediate true, got %q", got)
		}

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Errorf("expected multipart content type, got %q", r.Header.Get("Content-Type"))
			w.WriteHeader(400)
			return
		}
		mr := multipart.NewReader(r.Body, params["boundary"])
		part, err := mr.NextPart()
		if err != nil {
			t.Errorf("NextPart: %v", err)
			w.WriteHeader(400)
			return
		}
		if part.FormName() != "file" || part.FileName() != "canny.png" {
			t.Errorf("unexpected part %q %q", part.FormName(), part.FileName())
		}
		b, _ := io.ReadAll(part)
		if string(b) != "PNGDATA" {
			t.Errorf("unexpected file bytes %q", b)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		_, _ = io.WriteString(w, imageJSON)
	}))
	t.Cleanup(srv.Close)

	e, err := NewEndpoint(Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	req, err := e.UploadImage(context.Background(), UploadImageArgs{
		File:     []byte("PNGDATA"),
		FileName: "canny.png",
		Params: generated.UploadImageParams{
			ImageCategory:  generated.ImageCategoryControl,
			IsIntermediate: true,
		},
	})
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	img, err := DecodeResponse[ImageDTO](resp)
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if img.ImageName != "img.png" || img.Height != 768 {
		t.Fatalf("unexpected image %+v", img)
	}
}
