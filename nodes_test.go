package invoke

import (
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/oapi-codegen/runtime"
)

func TestNodeRegistry_MatchesGeneratedUnion(t *testing.T) {
	types := NodeTypes()
	if len(types) != 48 {
		t.Fatalf("expected 48 node types, got %d", len(types))
	}
	if !sort.StringsAreSorted(types) {
		t.Fatalf("expected sorted node types")
	}

	for _, s := range NodeSpecs() {
		zero, err := json.Marshal(reflect.New(s.goType).Interface())
		if err != nil {
			t.Fatalf("%s: marshal: %v", s.Type, err)
		}
		tag, _ := json.Marshal(map[string]string{"id": "n", "type": s.Type})
		merged, err := runtime.JSONMerge(zero, tag)
		if err != nil {
			t.Fatalf("%s: merge: %v", s.Type, err)
		}
		var gn GraphNode
		if err := gn.UnmarshalJSON(merged); err != nil {
			t.Fatalf("%s: unmarshal: %v", s.Type, err)
		}
		v, err := gn.ValueByDiscriminator()
		if err != nil {
			t.Fatalf("%s: ValueByDiscriminator: %v", s.Type, err)
		}
		if got := reflect.TypeOf(v); got != s.goType {
			t.Fatalf("%s: registry says %s, union yields %s", s.Type, s.goType, got)
		}
		if !IsOutputType(s.Output) {
			t.Fatalf("%s: output %q is not a registered output", s.Type, s.Output)
		}
		if s.Component != s.goType.Name() {
			t.Fatalf("%s: component %q does not match Go type", s.Type, s.Component)
		}
	}
}

func TestNodeCategoryOf(t *testing.T) {
	cases := map[string]NodeCategory{
		"range":                 NodeCategoryMath,
		"collect":               NodeCategoryGeneral,
		"integer":               NodeCategoryPrimitive,
		"canny_image_processor": NodeCategoryControlNet,
		"controlnet":            NodeCategoryControlNet,
		"main_model_loader":     NodeCategoryModelLoader,
		"t2l":                   NodeCategoryLatents,
		"compel":                NodeCategoryConditioning,
		"img_resize":            NodeCategoryImage,
	}
	for typ, want := range cases {
		got, ok := NodeCategoryOf(typ)
		if !ok || got != want {
			t.Fatalf("%s: expected %s, got %s (%v)", typ, want, got, ok)
		}
	}
	if _, ok := NodeCategoryOf("nope"); ok {
		t.Fatalf("expected unknown type to have no category")
	}

	seen := map[NodeCategory]bool{}
	for _, s := range NodeSpecs() {
		seen[s.Category] = true
	}
	for _, c := range NodeCategories() {
		if !seen[c] {
			t.Fatalf("category %s has no nodes", c)
		}
	}
}

func TestOutputRegistry(t *testing.T) {
	if got := len(OutputTypes()); got != 28 {
		t.Fatalf("expected 28 output types, got %d", got)
	}
	if !IsOutputType("image_output") || IsOutputType("image") {
		t.Fatalf("unexpected output membership")
	}
	if got, ok := OutputTypeOf("range"); !ok || got != "integer_collection_output" {
		t.Fatalf("expected range to produce integer_collection_output, got %q", got)
	}
	if !IsNodeType("range") || IsNodeType("integer_output") {
		t.Fatalf("unexpected node membership")
	}
}

func TestNewGraphNode_StampsDiscriminant(t *testing.T) {
	start, stop := 0, 10
	gn, err := NewGraphNode(RangeInvocation{Id: "r", Start: &start, Stop: &stop})
	if err != nil {
		t.Fatalf("NewGraphNode: %v", err)
	}
	typ, err := gn.Discriminator()
	if err != nil || typ != "range" {
		t.Fatalf("expected discriminant range, got %q (%v)", typ, err)
	}

	v, err := DecodeNode(gn)
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}
	r, ok := v.(RangeInvocation)
	if !ok {
		t.Fatalf("expected RangeInvocation, got %T", v)
	}
	if r.Stop == nil || *r.Stop != 10 {
		t.Fatalf("expected stop preserved, got %+v", r)
	}

	ptr, err := NewGraphNode(&IntegerInvocation{Id: "i"})
	if err != nil {
		t.Fatalf("NewGraphNode(pointer): %v", err)
	}
	if typ, _ := ptr.Discriminator(); typ != "integer" {
		t.Fatalf("expected integer discriminant, got %q", typ)
	}
}

func TestNewGraphNode_Rejects(t *testing.T) {
	var shapeErr *UnexpectedShapeError
	if _, err := NewGraphNode(RangeInvocation{}); !errors.As(err, &shapeErr) {
		t.Fatalf("expected shape error for missing id, got %v", err)
	}
	if _, err := NewGraphNode(ImageOutput{}); !errors.As(err, &shapeErr) {
		t.Fatalf("expected shape error for an output type, got %v", err)
	}
	if _, err := NewGraphNode(nil); !errors.As(err, &shapeErr) {
		t.Fatalf("expected shape error for nil, got %v", err)
	}
}

func TestDecodeNode_RequiresDiscriminant(t *testing.T) {
	cases := map[string]string{
		"missing type": `{"id": "r", "start": 0}`,
		"unknown type": `{"id": "r", "type": "teleport"}`,
		"bad field":    `{"id": "r", "type": "range", "start": "zero"}`,
		"missing id":   `{"type": "range"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var gn GraphNode
			if err := json.Unmarshal([]byte(body), &gn); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			_, err := DecodeNode(gn)
			var shapeErr *UnexpectedShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected UnexpectedShapeError, got %T (%v)", err, err)
			}
		})
	}
}

func TestDecodeOutput(t *testing.T) {
	var out InvocationOutput
	if err := json.Unmarshal([]byte(`{"type": "integer_collection_output", "collection": [1, 2, 3]}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	v, err := DecodeOutput(out)
	if err != nil {
		t.Fatalf("DecodeOutput: %v", err)
	}
	c, ok := v.(IntegerCollectionOutput)
	if !ok {
		t.Fatalf("expected IntegerCollectionOutput, got %T", v)
	}
	if c.Collection == nil || len(*c.Collection) != 3 {
		t.Fatalf("unexpected collection %+v", c.Collection)
	}

	var missing InvocationOutput
	_ = json.Unmarshal([]byte(`{"collection": []}`), &missing)
	if _, err := DecodeOutput(missing); err == nil {
		t.Fatalf("expected error for output without type")
	}
}
