package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordingHandler struct {
	calls []PostUploadActionType
	image ImageDTO
	last  PostUploadAction
}

func (h *recordingHandler) record(image ImageDTO, a PostUploadAction) error {
	h.calls = append(h.calls, a.ActionType())
	h.image = image
	h.last = a
	return nil
}

func (h *recordingHandler) SetControlNetImage(image ImageDTO, a ControlNetAction) error {
	return h.record(image, a)
}

func (h *recordingHandler) SetInitialImage(image ImageDTO, a InitialImageAction) error {
	return h.record(image, a)
}

func (h *recordingHandler) SetNodesImage(image ImageDTO, a NodesAction) error {
	return h.record(image, a)
}

func (h *recordingHandler) SetCanvasInitialImage(image ImageDTO, a CanvasInitialImageAction) error {
	return h.record(image, a)
}

func (h *recordingHandler) Toast(image ImageDTO, a ToastAction) error {
	return h.record(image, a)
}

func (h *recordingHandler) AddToBatch(image ImageDTO, a AddToBatchAction) error {
	return h.record(image, a)
}

func TestPostUploadAction_RoundTrip(t *testing.T) {
	duration := 3000
	cases := []struct {
		name   string
		action PostUploadAction
		json   string
	}{
		{"controlnet", ControlNetAction{ControlNetID: "cn-1"}, `{"controlNetId":"cn-1","type":"SET_CONTROLNET_IMAGE"}`},
		{"initial", InitialImageAction{}, `{"type":"SET_INITIAL_IMAGE"}`},
		{"nodes", NodesAction{NodeID: "n1", FieldName: "image"}, `{"fieldName":"image","nodeId":"n1","type":"SET_NODES_IMAGE"}`},
		{"canvas", CanvasInitialImageAction{}, `{"type":"SET_CANVAS_INITIAL_IMAGE"}`},
		{"toast", ToastAction{ToastOptions: &ToastOptions{Title: "Uploaded", Status: ToastStatusSuccess, Duration: &duration}},
			`{"toastOptions":{"title":"Uploaded","status":"success","duration":3000},"type":"TOAST"}`},
		{"toast without options", ToastAction{}, `{"type":"TOAST"}`},
		{"batch", AddToBatchAction{}, `{"type":"ADD_TO_BATCH"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.action)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tc.json {
				t.Fatalf("expected %s, got %s", tc.json, b)
			}

			decoded, err := DecodePostUploadAction(b)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if decoded.ActionType() != tc.action.ActionType() {
				t.Fatalf("expected %s, got %s", tc.action.ActionType(), decoded.ActionType())
			}
			again, _ := json.Marshal(decoded)
			if string(again) != tc.json {
				t.Fatalf("expected stable encoding %s, got %s", tc.json, again)
			}
		})
	}
}

func TestPostUploadAction_AddToBatchCarriesNoTargets(t *testing.T) {
	a, err := DecodePostUploadAction([]byte(`{"type":"ADD_TO_BATCH"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := a.(AddToBatchAction); !ok {
		t.Fatalf("expected AddToBatchAction, got %T", a)
	}
	if _, ok := a.(ControlNetAction); ok {
		t.Fatalf("ADD_TO_BATCH must not narrow to ControlNetAction")
	}
	if _, ok := a.(NodesAction); ok {
		t.Fatalf("ADD_TO_BATCH must not narrow to NodesAction")
	}

	h := &recordingHandler{}
	if err := Dispatch(ImageDTO{ImageName: "x.png"}, a, h); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(h.calls) != 1 || h.calls[0] != PostUploadActionAddToBatch {
		t.Fatalf("expected AddToBatch handler only, got %v", h.calls)
	}
}

func TestDecodePostUploadAction_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing type":             `{"controlNetId":"cn-1"}`,
		"unknown type":             `{"type":"SET_MASK_IMAGE"}`,
		"lowercase tag":            `{"type":"toast"}`,
		"controlnet without id":    `{"type":"SET_CONTROLNET_IMAGE"}`,
		"controlnet blank id":      `{"type":"SET_CONTROLNET_IMAGE","controlNetId":"  "}`,
		"nodes without field":      `{"type":"SET_NODES_IMAGE","nodeId":"n1"}`,
		"nodes without node":       `{"type":"SET_NODES_IMAGE","fieldName":"image"}`,
		"batch with controlnet id": `{"type":"ADD_TO_BATCH","controlNetId":"cn-1"}`,
		"initial with node id":     `{"type":"SET_INITIAL_IMAGE","nodeId":"n1"}`,
		"bad toast status":         `{"type":"TOAST","toastOptions":{"status":"loud"}}`,
		"not an object":            `["TOAST"]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePostUploadAction([]byte(body))
			var shapeErr *UnexpectedShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected UnexpectedShapeError, got %T (%v)", err, err)
			}
		})
	}
}

func TestDispatch_RoutesEachVariant(t *testing.T) {
	img := ImageDTO{ImageName: "img.png"}
	for _, a := range []PostUploadAction{
		ControlNetAction{ControlNetID: "cn"},
		InitialImageAction{},
		NodesAction{NodeID: "n", FieldName: "image"},
		CanvasInitialImageAction{},
		ToastAction{},
		AddToBatchAction{},
	} {
		h := &recordingHandler{}
		if err := Dispatch(img, a, h); err != nil {
			t.Fatalf("Dispatch(%s): %v", a.ActionType(), err)
		}
		if len(h.calls) != 1 || h.calls[0] != a.ActionType() {
			t.Fatalf("expected single %s call, got %v", a.ActionType(), h.calls)
		}
		if h.image.ImageName != "img.png" {
			t.Fatalf("expected image passed through")
		}
	}
	if got := len(PostUploadActionTypes()); got != 6 {
		t.Fatalf("expected 6 action types, got %d", got)
	}
}

func TestDispatch_NilActionAndInvalidAction(t *testing.T) {
	h := &recordingHandler{}
	if err := Dispatch(ImageDTO{}, nil, h); err != nil {
		t.Fatalf("expected nil action to be a no-op, got %v", err)
	}
	if err := Dispatch(ImageDTO{}, NodesAction{NodeID: "n"}, h); err == nil {
		t.Fatalf("expected error for NodesAction without fieldName")
	}
	if len(h.calls) != 0 {
		t.Fatalf("expected no handler calls, got %v", h.calls)
	}
	if err := Dispatch(ImageDTO{}, ToastAction{}, nil); err == nil {
		t.Fatalf("expected error for nil handler")
	}
}

func TestCompleteUpload_DispatchesOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		_, _ = io.WriteString(w, imageJSON)
	}))
	t.Cleanup(srv.Close)

	e, err := NewEndpoint(Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewEndpoint: %v", err)
	}
	args := UploadImageArgs{
		File:             []byte("PNG"),
		FileName:         "img.png",
		Params:           UploadImageParams{ImageCategory: "user"},
		PostUploadAction: NodesAction{NodeID: "n1", FieldName: "image"},
	}
	req, err := e.UploadImage(context.Background(), args)
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	h := &recordingHandler{}
	img, err := CompleteUpload(resp, args, h)
	if err != nil {
		t.Fatalf("CompleteUpload: %v", err)
	}
	if img.ImageName != "img.png" {
		t.Fatalf("unexpected image %+v", img)
	}
	if len(h.calls) != 1 || h.calls[0] != PostUploadActionSetNodesImage {
		t.Fatalf("expected one SetNodesImage call, got %v", h.calls)
	}
	if got := h.last.(NodesAction); got.NodeID != "n1" || got.FieldName != "image" {
		t.Fatalf("unexpected action %+v", got)
	}
}
