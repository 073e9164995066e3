package invoke

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/invokego/invoke-go/internal/schemacheck"
)

// responseComponents maps response models to the schema component their body must satisfy.
var responseComponents = map[reflect.Type]string{
	reflect.TypeOf(ImageDTO{}):                       "ImageDTO",
	reflect.TypeOf(OffsetPaginatedResultsImageDTO{}): "OffsetPaginatedResults_ImageDTO_",
	reflect.TypeOf(DeleteImagesResult{}):             "DeleteImagesResult",
	reflect.TypeOf(BoardDTO{}):                       "BoardDTO",
	reflect.TypeOf(OffsetPaginatedResultsBoardDTO{}): "OffsetPaginatedResults_BoardDTO_",
	reflect.TypeOf(DeleteBoardResult{}):              "DeleteBoardResult",
	reflect.TypeOf(ModelsList{}):                     "ModelsList",
	reflect.TypeOf(Graph{}):                          "Graph",
	reflect.TypeOf(GraphExecutionState{}):            "GraphExecutionState",
	reflect.TypeOf(BatchProcessResponse{}):           "BatchProcessResponse",
}

// DecodeResponse reads resp and decodes its JSON body into T, closing the body.
//
// For non-2xx responses, an *APIStatusError or *APIValidationError is returned. When T is a
// known response model the body is validated against its schema first, and a mismatch is
// returned as *UnexpectedShapeError.
func DecodeResponse[T any](resp *http.Response) (*T, error) {
	raw, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	var out T
	typeName := reflect.TypeOf(out).String()
	component, known := responseComponents[reflect.TypeOf(out)]
	if len(raw) == 0 {
		if known {
			return nil, &UnexpectedShapeError{Type: component, Reason: "empty body"}
		}
		return &out, nil
	}

	if known {
		v, err := schemacheck.Default()
		if err != nil {
			return nil, err
		}
		if err := v.Validate(component, raw); err != nil {
			return nil, &UnexpectedShapeError{Type: component, Err: err}
		}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &UnexpectedShapeError{Type: typeName, Err: err}
	}
	return &out, nil
}

// CheckResponse maps a response without a meaningful body (delete, invoke) to an error,
// closing the body.
func CheckResponse(resp *http.Response) error {
	_, err := readResponse(resp)
	return err
}

func readResponse(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, &ConfigurationError{Message: "nil response"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	statusErr := APIStatusError{StatusCode: resp.StatusCode, ResponseText: strings.TrimSpace(string(raw))}
	if resp.Request != nil {
		statusErr.Method = resp.Request.Method
		if resp.Request.URL != nil {
			statusErr.URL = resp.Request.URL.String()
		}
	}
	if resp.StatusCode == http.StatusUnprocessableEntity {
		var ve HTTPValidationError
		if len(raw) > 0 && json.Unmarshal(raw, &ve) == nil {
			return nil, &APIValidationError{APIStatusError: statusErr, ValidationError: &ve}
		}
		return nil, &APIValidationError{APIStatusError: statusErr}
	}
	return nil, &statusErr
}
