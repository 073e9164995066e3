package batch

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invoke "github.com/invokego/invoke-go"
)

func testGraph(t *testing.T) invoke.Graph {
	t.Helper()
	g := invoke.NewGraph("base")
	require.NoError(t, invoke.AddNode(&g, invoke.StringInvocation{Id: "prompt"}))
	require.NoError(t, invoke.AddNode(&g, invoke.IntegerInvocation{Id: "seed"}))
	require.NoError(t, invoke.AddNode(&g, invoke.ImageInvocation{Id: "init"}))
	return g
}

func rows(t *testing.T, body string) []map[string]invoke.BatchDataValue {
	t.Helper()
	var out []map[string]invoke.BatchDataValue
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func nodeJSON(t *testing.T, g invoke.Graph, id string) map[string]any {
	t.Helper()
	raw, err := (*g.Nodes)[id].MarshalJSON()
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestNewProcess(t *testing.T) {
	p := NewProcess(testGraph(t))
	assert.NotEmpty(t, p.BatchID)
	assert.NotNil(t, p.Batches)
	assert.False(t, p.Canceled)
	assert.Equal(t, 1, p.Runs())
	assert.NotEqual(t, p.BatchID, NewProcess(testGraph(t)).BatchID)
}

func TestProcess_Expand(t *testing.T) {
	g := testGraph(t)
	p := NewProcess(g,
		invoke.Batch{NodeId: "prompt", Data: rows(t, `[{"text": "a cat"}, {"text": "a dog"}]`)},
		invoke.Batch{NodeId: "seed", Data: rows(t, `[{"a": 1}, {"a": 2}]`)},
	)
	require.NoError(t, p.Validate())

	graphs, err := p.Expand()
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	assert.Equal(t, "a cat", nodeJSON(t, graphs[0], "prompt")["text"])
	assert.Equal(t, float64(1), nodeJSON(t, graphs[0], "seed")["a"])
	assert.Equal(t, "a dog", nodeJSON(t, graphs[1], "prompt")["text"])
	assert.Equal(t, float64(2), nodeJSON(t, graphs[1], "seed")["a"])

	assert.NotEqual(t, *graphs[0].Id, *graphs[1].Id)
	assert.NotEqual(t, "base", *graphs[0].Id)

	_, hasText := nodeJSON(t, g, "prompt")["text"]
	assert.False(t, hasText, "source graph must not be modified")
}

func TestProcess_ExpandIsReproducible(t *testing.T) {
	p := NewProcess(testGraph(t),
		invoke.Batch{NodeId: "seed", Data: rows(t, `[{"a": 1}, {"a": 2}, {"a": 3}]`)},
	)

	first, err := p.Expand()
	require.NoError(t, err)
	second, err := p.Expand()
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, *first[i].Id, *second[i].Id)
		assert.Equal(t, p.RunID(i), *first[i].Id)
	}
	assert.NotEqual(t, *first[0].Id, *first[1].Id)

	other := p
	other.BatchID = NewProcess(testGraph(t)).BatchID
	assert.NotEqual(t, p.RunID(0), other.RunID(0))

	named := Process{BatchID: "b1"}
	assert.Equal(t, named.RunID(2), named.RunID(2))
	assert.NotEqual(t, named.RunID(1), named.RunID(2))
}

func TestProcess_ExpandImageValue(t *testing.T) {
	p := NewProcess(testGraph(t),
		invoke.Batch{NodeId: "init", Data: rows(t, `[{"image": {"image_name": "a.png"}}]`)},
	)
	graphs, err := p.Expand()
	require.NoError(t, err)
	require.Len(t, graphs, 1)

	v, err := invoke.DecodeNode((*graphs[0].Nodes)["init"])
	require.NoError(t, err)
	img, ok := v.(invoke.ImageInvocation)
	require.True(t, ok)
	require.NotNil(t, img.Image)
	assert.Equal(t, "a.png", img.Image.ImageName)
}

func TestProcess_ExpandRejectsFields(t *testing.T) {
	cases := map[string]invoke.Batch{
		"unknown field": {NodeId: "prompt", Data: rows(t, `[{"colour": "red"}]`)},
		"id field":      {NodeId: "prompt", Data: rows(t, `[{"id": "other"}]`)},
		"wrong type":    {NodeId: "seed", Data: rows(t, `[{"a": "one"}]`)},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewProcess(testGraph(t), b).Expand()
			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr), "got %v", err)
			assert.Equal(t, b.NodeId, fieldErr.NodeID)
		})
	}
}

func TestProcess_Validate(t *testing.T) {
	t.Run("missing node", func(t *testing.T) {
		p := NewProcess(testGraph(t), invoke.Batch{NodeId: "ghost", Data: rows(t, `[{"a": 1}]`)})
		assert.ErrorContains(t, p.Validate(), `node "ghost" not in graph`)
	})
	t.Run("no rows", func(t *testing.T) {
		p := NewProcess(testGraph(t), invoke.Batch{NodeId: "seed"})
		assert.ErrorContains(t, p.Validate(), "no rows")
	})
	t.Run("uneven rows", func(t *testing.T) {
		p := NewProcess(testGraph(t),
			invoke.Batch{NodeId: "seed", Data: rows(t, `[{"a": 1}, {"a": 2}]`)},
			invoke.Batch{NodeId: "prompt", Data: rows(t, `[{"text": "x"}]`)},
		)
		assert.ErrorContains(t, p.Validate(), "1 rows, want 2")
		_, err := p.Expand()
		assert.Error(t, err)
	})
	t.Run("missing batch id", func(t *testing.T) {
		p := Process{Graph: testGraph(t)}
		assert.ErrorContains(t, p.Validate(), "missing batch id")
	})
}

func TestDataValue(t *testing.T) {
	cases := []struct {
		body string
		want any
	}{
		{`"text"`, "text"},
		{`42`, 42},
		{`-7`, -7},
		{`0.5`, float32(0.5)},
		{`1e3`, float32(1000)},
		{`{"image_name": "a.png"}`, invoke.ImageField{ImageName: "a.png"}},
	}
	for _, tc := range cases {
		var v invoke.BatchDataValue
		require.NoError(t, json.Unmarshal([]byte(tc.body), &v))
		got, err := DataValue(v)
		require.NoError(t, err, tc.body)
		assert.Equal(t, tc.want, got, tc.body)
	}

	for _, body := range []string{`true`, `null`, `[1]`, `{}`} {
		var v invoke.BatchDataValue
		require.NoError(t, json.Unmarshal([]byte(body), &v))
		_, err := DataValue(v)
		assert.Error(t, err, body)
	}
}

func TestSessionChanges(t *testing.T) {
	c, err := DecodeSessionChanges([]byte(`{"state": "completed"}`))
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, c.State)

	_, err = DecodeSessionChanges([]byte(`{"state": "paused"}`))
	assert.Error(t, err)

	_, err = DecodeSessionChanges([]byte(`{"state": "error", "session_id": "x"}`))
	assert.Error(t, err)

	s := NewSession("b1", "s1")
	assert.Equal(t, StateCreated, s.State)
	assert.Len(t, SessionStates(), 4)
}

func TestErrors(t *testing.T) {
	inner := errors.New("boom")
	err := error(&StoreError{Op: OpSaveProcess, Err: inner})
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "batch: save process: boom", err.Error())

	var nilStore *StoreError
	var nilField *FieldError
	assert.Equal(t, "batch: store error", nilStore.Error())
	assert.Equal(t, "batch: field error", nilField.Error())
	assert.Contains(t, (&FieldError{NodeID: "n", Field: "f"}).Error(), "unknown field")
}
