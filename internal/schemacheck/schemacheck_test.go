package schemacheck

import (
	"errors"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ValidatesImageDTO(t *testing.T) {
	v, err := Default()
	require.NoError(t, err)

	body := `{
		"image_name": "a.png",
		"image_url": "api/v1/images/i/a.png/full",
		"thumbnail_url": "api/v1/images/i/a.png/thumbnail",
		"image_origin": "internal",
		"image_category": "general",
		"width": 512,
		"height": 768,
		"created_at": "2023-08-01 10:00:00",
		"updated_at": "2023-08-01 10:00:00",
		"is_intermediate": false,
		"starred": false,
		"board_id": null
	}`
	assert.NoError(t, v.Validate("ImageDTO", []byte(body)))
}

func TestValidate_RejectsWrongEnum(t *testing.T) {
	err := Validate("ImageDTO", []byte(`{
		"image_name": "a.png",
		"image_url": "u",
		"thumbnail_url": "t",
		"image_origin": "somewhere",
		"image_category": "general",
		"width": 1, "height": 1,
		"created_at": "", "updated_at": "",
		"is_intermediate": false, "starred": false
	}`))
	require.Error(t, err)

	var ve *jsonschema.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestValidate_GraphNodeRequiresDiscriminant(t *testing.T) {
	ok := `{"id": "g", "nodes": {"r": {"id": "r", "type": "range", "start": 0, "stop": 10, "step": 1}}, "edges": []}`
	assert.NoError(t, Validate("Graph", []byte(ok)))

	missing := `{"id": "g", "nodes": {"r": {"id": "r", "start": 0}}, "edges": []}`
	assert.Error(t, Validate("Graph", []byte(missing)))

	unknown := `{"id": "g", "nodes": {"r": {"id": "r", "type": "teleport"}}, "edges": []}`
	assert.Error(t, Validate("Graph", []byte(unknown)))
}

func TestValidate_EdgeShape(t *testing.T) {
	assert.NoError(t, Validate("Edge", []byte(`{"source": {"node_id": "a", "field": "image"}, "destination": {"node_id": "b", "field": "image"}}`)))
	assert.Error(t, Validate("Edge", []byte(`{"source": {"node_id": "a"}, "destination": {"node_id": "b", "field": "image"}}`)))
}

func TestValidate_OutputUnionPicksExactlyOne(t *testing.T) {
	assert.NoError(t, Validate("InvocationOutput", []byte(`{"type": "integer_output", "a": 3}`)))
	assert.NoError(t, Validate("InvocationOutput", []byte(`{"type": "graph_output"}`)))
	assert.Error(t, Validate("InvocationOutput", []byte(`{}`)))
}

func TestValidate_UnknownComponent(t *testing.T) {
	err := Validate("NoSuchThing", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownComponent)
}

func TestValidate_MalformedBody(t *testing.T) {
	err := Validate("BoardDTO", []byte(`{`))
	require.Error(t, err)

	var ve *jsonschema.ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestNew_RejectsInvalidDocument(t *testing.T) {
	_, err := New([]byte(`not json`))
	assert.Error(t, err)
}
