package invoke

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// PostUploadActionType is the discriminant of a PostUploadAction.
type PostUploadActionType string

const (
	PostUploadActionSetControlNetImage    PostUploadActionType = "SET_CONTROLNET_IMAGE"
	PostUploadActionSetInitialImage       PostUploadActionType = "SET_INITIAL_IMAGE"
	PostUploadActionSetNodesImage         PostUploadActionType = "SET_NODES_IMAGE"
	PostUploadActionSetCanvasInitialImage PostUploadActionType = "SET_CANVAS_INITIAL_IMAGE"
	PostUploadActionToast                 PostUploadActionType = "TOAST"
	PostUploadActionAddToBatch            PostUploadActionType = "ADD_TO_BATCH"
)

// PostUploadActionTypes lists every action tag in declaration order.
func PostUploadActionTypes() []PostUploadActionType {
	return []PostUploadActionType{
		PostUploadActionSetControlNetImage,
		PostUploadActionSetInitialImage,
		PostUploadActionSetNodesImage,
		PostUploadActionSetCanvasInitialImage,
		PostUploadActionToast,
		PostUploadActionAddToBatch,
	}
}

// PostUploadAction describes what should happen once an image upload completes.
//
// The set of implementations is closed: ControlNetAction, InitialImageAction, NodesAction,
// CanvasInitialImageAction, ToastAction and AddToBatchAction.
type PostUploadAction interface {
	ActionType() PostUploadActionType

	validate() error
	accept(image ImageDTO, h PostUploadActionHandler) error
}

// PostUploadActionHandler consumes a completed upload. Adding a variant adds a method here, so
// every handler has to handle it.
type PostUploadActionHandler interface {
	SetControlNetImage(image ImageDTO, action ControlNetAction) error
	SetInitialImage(image ImageDTO, action InitialImageAction) error
	SetNodesImage(image ImageDTO, action NodesAction) error
	SetCanvasInitialImage(image ImageDTO, action CanvasInitialImageAction) error
	Toast(image ImageDTO, action ToastAction) error
	AddToBatch(image ImageDTO, action AddToBatchAction) error
}

// ControlNetAction attaches the uploaded image to a control-net slot.
type ControlNetAction struct {
	ControlNetID string `json:"controlNetId"`
}

func (ControlNetAction) ActionType() PostUploadActionType { return PostUploadActionSetControlNetImage }

func (a ControlNetAction) validate() error {
	if strings.TrimSpace(a.ControlNetID) == "" {
		return errors.New("controlNetId is required")
	}
	return nil
}

func (a ControlNetAction) accept(image ImageDTO, h PostUploadActionHandler) error {
	return h.SetControlNetImage(image, a)
}

func (a ControlNetAction) MarshalJSON() ([]byte, error) {
	type body ControlNetAction
	return marshalAction(a.ActionType(), body(a))
}

// InitialImageAction sets the uploaded image as the image-to-image source.
type InitialImageAction struct{}

func (InitialImageAction) ActionType() PostUploadActionType { return PostUploadActionSetInitialImage }

func (InitialImageAction) validate() error { return nil }

func (a InitialImageAction) accept(image ImageDTO, h PostUploadActionHandler) error {
	return h.SetInitialImage(image, a)
}

func (a InitialImageAction) MarshalJSON() ([]byte, error) {
	type body InitialImageAction
	return marshalAction(a.ActionType(), body(a))
}

// NodesAction writes the uploaded image into a field of a workflow node.
type NodesAction struct {
	NodeID    string `json:"nodeId"`
	FieldName string `json:"fieldName"`
}

func (NodesAction) ActionType() PostUploadActionType { return PostUploadActionSetNodesImage }

func (a NodesAction) validate() error {
	var errs []error
	if strings.TrimSpace(a.NodeID) == "" {
		errs = append(errs, errors.New("nodeId is required"))
	}
	if strings.TrimSpace(a.FieldName) == "" {
		errs = append(errs, errors.New("fieldName is required"))
	}
	return errors.Join(errs...)
}

func (a NodesAction) accept(image ImageDTO, h PostUploadActionHandler) error {
	return h.SetNodesImage(image, a)
}

func (a NodesAction) MarshalJSON() ([]byte, error) {
	type body NodesAction
	return marshalAction(a.ActionType(), body(a))
}

// CanvasInitialImageAction places the uploaded image on the unified canvas.
type CanvasInitialImageAction struct{}

func (CanvasInitialImageAction) ActionType() PostUploadActionType {
	return PostUploadActionSetCanvasInitialImage
}

func (CanvasInitialImageAction) validate() error { return nil }

func (a CanvasInitialImageAction) accept(image ImageDTO, h PostUploadActionHandler) error {
	return h.SetCanvasInitialImage(image, a)
}

func (a CanvasInitialImageAction) MarshalJSON() ([]byte, error) {
	type body CanvasInitialImageAction
	return marshalAction(a.ActionType(), body(a))
}

// ToastStatus is the severity of a toast.
type ToastStatus string

const (
	ToastStatusInfo    ToastStatus = "info"
	ToastStatusSuccess ToastStatus = "success"
	ToastStatusWarning ToastStatus = "warning"
	ToastStatusError   ToastStatus = "error"
)

// ToastOptions configure the toast shown after upload.
type ToastOptions struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Status      ToastStatus `json:"status,omitempty"`
	Duration    *int        `json:"duration,omitempty"`
	IsClosable  *bool       `json:"isClosable,omitempty"`
}

// ToastAction shows a toast. ToastOptions is optional.
type ToastAction struct {
	ToastOptions *ToastOptions `json:"toastOptions,omitempty"`
}

func (ToastAction) ActionType() PostUploadActionType { return PostUploadActionToast }

func (a ToastAction) validate() error {
	if a.ToastOptions == nil || a.ToastOptions.Status == "" {
		return nil
	}
	switch a.ToastOptions.Status {
	case ToastStatusInfo, ToastStatusSuccess, ToastStatusWarning, ToastStatusError:
		return nil
	}
	return fmt.Errorf("unknown toast status %q", a.ToastOptions.Status)
}

func (a ToastAction) accept(image ImageDTO, h PostUploadActionHandler) error {
	return h.Toast(image, a)
}

func (a ToastAction) MarshalJSON() ([]byte, error) {
	type body ToastAction
	return marshalAction(a.ActionType(), body(a))
}

// AddToBatchAction appends the uploaded image to the current batch selection.
type AddToBatchAction struct{}

func (AddToBatchAction) ActionType() PostUploadActionType { return PostUploadActionAddToBatch }

func (AddToBatchAction) validate() error { return nil }

func (a AddToBatchAction) accept(image ImageDTO, h PostUploadActionHandler) error {
	return h.AddToBatch(image, a)
}

func (a AddToBatchAction) MarshalJSON() ([]byte, error) {
	type body AddToBatchAction
	return marshalAction(a.ActionType(), body(a))
}

func marshalAction(tag PostUploadActionType, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	t, _ := json.Marshal(tag)
	fields["type"] = t
	return json.Marshal(fields)
}

// DecodePostUploadAction decodes a tagged action. Unknown tags, unknown fields and missing
// variant fields are reported as *UnexpectedShapeError.
func DecodePostUploadAction(b []byte) (PostUploadAction, error) {
	var envelope struct {
		Type *PostUploadActionType `json:"type"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return nil, &UnexpectedShapeError{Type: "PostUploadAction", Err: err}
	}
	if envelope.Type == nil {
		return nil, &UnexpectedShapeError{Type: "PostUploadAction", Reason: "missing type"}
	}

	tag := *envelope.Type
	var action PostUploadAction
	var err error
	switch tag {
	case PostUploadActionSetControlNetImage:
		action, err = decodeStrict[ControlNetAction](b)
	case PostUploadActionSetInitialImage:
		action, err = decodeStrict[InitialImageAction](b)
	case PostUploadActionSetNodesImage:
		action, err = decodeStrict[NodesAction](b)
	case PostUploadActionSetCanvasInitialImage:
		action, err = decodeStrict[CanvasInitialImageAction](b)
	case PostUploadActionToast:
		action, err = decodeStrict[ToastAction](b)
	case PostUploadActionAddToBatch:
		action, err = decodeStrict[AddToBatchAction](b)
	default:
		return nil, &UnexpectedShapeError{Type: "PostUploadAction", Tag: string(tag), Reason: "unknown action type"}
	}
	if err != nil {
		return nil, &UnexpectedShapeError{Type: "PostUploadAction", Tag: string(tag), Err: err}
	}
	if err := action.validate(); err != nil {
		return nil, &UnexpectedShapeError{Type: "PostUploadAction", Tag: string(tag), Err: err}
	}
	return action, nil
}

// decodeStrict decodes b into T, ignoring the "type" tag and rejecting any other unknown field.
func decodeStrict[T any](b []byte) (T, error) {
	var fields map[string]json.RawMessage
	var out T
	if err := json.Unmarshal(b, &fields); err != nil {
		return out, err
	}
	delete(fields, "type")
	rest, err := json.Marshal(fields)
	if err != nil {
		return out, err
	}
	dec := json.NewDecoder(bytes.NewReader(rest))
	dec.DisallowUnknownFields()
	err = dec.Decode(&out)
	return out, err
}

// Dispatch routes a completed upload to the handler method for action. A nil action is a no-op.
func Dispatch(image ImageDTO, action PostUploadAction, h PostUploadActionHandler) error {
	if action == nil {
		return nil
	}
	if h == nil {
		return &ConfigurationError{Message: "post-upload dispatch requires a handler"}
	}
	if err := action.validate(); err != nil {
		return &UnexpectedShapeError{Type: "PostUploadAction", Tag: string(action.ActionType()), Err: err}
	}
	return action.accept(image, h)
}

// CompleteUpload decodes the upload response and hands the image to h according to the action
// carried in args. The action is consumed once; the returned image is the uploaded ImageDTO.
func CompleteUpload(resp *http.Response, args UploadImageArgs, h PostUploadActionHandler) (*ImageDTO, error) {
	img, err := DecodeResponse[ImageDTO](resp)
	if err != nil {
		return nil, err
	}
	if err := Dispatch(*img, args.PostUploadAction, h); err != nil {
		return img, err
	}
	return img, nil
}
