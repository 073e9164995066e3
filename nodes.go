package invoke

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/oapi-codegen/runtime"

	"github.com/invokego/invoke-go/internal/schemacheck"
)

// NodeCategory groups invocation node types for catalogs and UIs.
type NodeCategory string

const (
	NodeCategoryGeneral      NodeCategory = "general"
	NodeCategoryImage        NodeCategory = "image"
	NodeCategoryModelLoader  NodeCategory = "model-loader"
	NodeCategoryControlNet   NodeCategory = "control-net"
	NodeCategoryMath         NodeCategory = "math"
	NodeCategoryLatents      NodeCategory = "latents"
	NodeCategoryPrimitive    NodeCategory = "primitive"
	NodeCategoryConditioning NodeCategory = "conditioning"
)

// NodeCategories returns every category in catalog order.
func NodeCategories() []NodeCategory {
	return []NodeCategory{
		NodeCategoryGeneral,
		NodeCategoryPrimitive,
		NodeCategoryMath,
		NodeCategoryImage,
		NodeCategoryLatents,
		NodeCategoryConditioning,
		NodeCategoryModelLoader,
		NodeCategoryControlNet,
	}
}

// NodeSpec describes one invocation node type.
type NodeSpec struct {
	// Type is the node's discriminant, e.g. "range".
	Type string

	// Category groups the node.
	Category NodeCategory

	// Output is the discriminant of the output the node produces.
	Output string

	// Component is the schema component (and Go type) name, e.g. "RangeInvocation".
	Component string

	goType reflect.Type
}

// OutputSpec describes one invocation output type.
type OutputSpec struct {
	Type      string
	Component string

	goType reflect.Type
}

func nodeSpec(typ string, cat NodeCategory, output string, sample any) NodeSpec {
	t := reflect.TypeOf(sample)
	return NodeSpec{Type: typ, Category: cat, Output: output, Component: t.Name(), goType: t}
}

func outputSpec(typ string, sample any) OutputSpec {
	t := reflect.TypeOf(sample)
	return OutputSpec{Type: typ, Component: t.Name(), goType: t}
}

var nodeSpecs = []NodeSpec{
	nodeSpec("collect", NodeCategoryGeneral, "collect_output", CollectInvocation{}),
	nodeSpec("iterate", NodeCategoryGeneral, "iterate_output", IterateInvocation{}),
	nodeSpec("graph", NodeCategoryGeneral, "graph_output", GraphInvocation{}),
	nodeSpec("metadata_accumulator", NodeCategoryGeneral, "metadata_accumulator_output", MetadataAccumulatorInvocation{}),

	nodeSpec("boolean", NodeCategoryPrimitive, "boolean_output", BooleanInvocation{}),
	nodeSpec("integer", NodeCategoryPrimitive, "integer_output", IntegerInvocation{}),
	nodeSpec("float", NodeCategoryPrimitive, "float_output", FloatInvocation{}),
	nodeSpec("string", NodeCategoryPrimitive, "string_output", StringInvocation{}),
	nodeSpec("image", NodeCategoryPrimitive, "image_output", ImageInvocation{}),
	nodeSpec("image_collection", NodeCategoryPrimitive, "image_collection_output", ImageCollectionInvocation{}),
	nodeSpec("latents", NodeCategoryPrimitive, "latents_output", LatentsInvocation{}),
	nodeSpec("color", NodeCategoryPrimitive, "color_output", ColorInvocation{}),
	nodeSpec("conditioning", NodeCategoryPrimitive, "conditioning_output", ConditioningInvocation{}),

	nodeSpec("div", NodeCategoryMath, "integer_output", DivideInvocation{}),
	nodeSpec("rand_int", NodeCategoryMath, "integer_output", RandomIntInvocation{}),
	nodeSpec("random_range", NodeCategoryMath, "integer_collection_output", RandomRangeInvocation{}),
	nodeSpec("range", NodeCategoryMath, "integer_collection_output", RangeInvocation{}),
	nodeSpec("range_of_size", NodeCategoryMath, "integer_collection_output", RangeOfSizeInvocation{}),

	nodeSpec("img_nsfw", NodeCategoryImage, "image_output", ImageNSFWBlurInvocation{}),
	nodeSpec("img_resize", NodeCategoryImage, "image_output", ImageResizeInvocation{}),
	nodeSpec("img_scale", NodeCategoryImage, "image_output", ImageScaleInvocation{}),
	nodeSpec("img_watermark", NodeCategoryImage, "image_output", ImageWatermarkInvocation{}),
	nodeSpec("esrgan", NodeCategoryImage, "image_output", ESRGANInvocation{}),

	nodeSpec("t2l", NodeCategoryLatents, "latents_output", TextToLatentsInvocation{}),
	nodeSpec("l2l", NodeCategoryLatents, "latents_output", LatentsToLatentsInvocation{}),
	nodeSpec("l2i", NodeCategoryLatents, "image_output", LatentsToImageInvocation{}),
	nodeSpec("i2l", NodeCategoryLatents, "latents_output", ImageToLatentsInvocation{}),
	nodeSpec("noise", NodeCategoryLatents, "noise_output", NoiseInvocation{}),
	nodeSpec("inpaint", NodeCategoryLatents, "image_output", InpaintInvocation{}),

	nodeSpec("compel", NodeCategoryConditioning, "conditioning_output", CompelInvocation{}),
	nodeSpec("dynamic_prompt", NodeCategoryConditioning, "string_collection_output", DynamicPromptInvocation{}),

	nodeSpec("main_model_loader", NodeCategoryModelLoader, "model_loader_output", MainModelLoaderInvocation{}),
	nodeSpec("lora_loader", NodeCategoryModelLoader, "lora_loader_output", LoraLoaderInvocation{}),
	nodeSpec("onnx_model_loader", NodeCategoryModelLoader, "model_loader_output_onnx", OnnxModelLoaderInvocation{}),
	nodeSpec("seamless", NodeCategoryModelLoader, "seamless_output", SeamlessModeInvocation{}),

	nodeSpec("controlnet", NodeCategoryControlNet, "control_output", ControlNetInvocation{}),
	nodeSpec("canny_image_processor", NodeCategoryControlNet, "image_output", CannyImageProcessorInvocation{}),
	nodeSpec("content_shuffle_image_processor", NodeCategoryControlNet, "image_output", ContentShuffleImageProcessorInvocation{}),
	nodeSpec("hed_image_processor", NodeCategoryControlNet, "image_output", HedImageProcessorInvocation{}),
	nodeSpec("lineart_image_processor", NodeCategoryControlNet, "image_output", LineartImageProcessorInvocation{}),
	nodeSpec("lineart_anime_image_processor", NodeCategoryControlNet, "image_output", LineartAnimeImageProcessorInvocation{}),
	nodeSpec("mediapipe_face_processor", NodeCategoryControlNet, "image_output", MediapipeFaceProcessorInvocation{}),
	nodeSpec("midas_depth_image_processor", NodeCategoryControlNet, "image_output", MidasDepthImageProcessorInvocation{}),
	nodeSpec("mlsd_image_processor", NodeCategoryControlNet, "image_output", MlsdImageProcessorInvocation{}),
	nodeSpec("normalbae_image_processor", NodeCategoryControlNet, "image_output", NormalbaeImageProcessorInvocation{}),
	nodeSpec("openpose_image_processor", NodeCategoryControlNet, "image_output", OpenposeImageProcessorInvocation{}),
	nodeSpec("pidi_image_processor", NodeCategoryControlNet, "image_output", PidiImageProcessorInvocation{}),
	nodeSpec("zoe_depth_image_processor", NodeCategoryControlNet, "image_output", ZoeDepthImageProcessorInvocation{}),
}

var outputSpecs = []OutputSpec{
	outputSpec("boolean_output", BooleanOutput{}),
	outputSpec("boolean_collection_output", BooleanCollectionOutput{}),
	outputSpec("integer_output", IntegerOutput{}),
	outputSpec("integer_collection_output", IntegerCollectionOutput{}),
	outputSpec("float_output", FloatOutput{}),
	outputSpec("float_collection_output", FloatCollectionOutput{}),
	outputSpec("string_output", StringOutput{}),
	outputSpec("string_collection_output", StringCollectionOutput{}),
	outputSpec("image_output", ImageOutput{}),
	outputSpec("image_collection_output", ImageCollectionOutput{}),
	outputSpec("latents_output", LatentsOutput{}),
	outputSpec("latents_collection_output", LatentsCollectionOutput{}),
	outputSpec("color_output", ColorOutput{}),
	outputSpec("color_collection_output", ColorCollectionOutput{}),
	outputSpec("conditioning_output", ConditioningOutput{}),
	outputSpec("conditioning_collection_output", ConditioningCollectionOutput{}),
	outputSpec("collect_output", CollectInvocationOutput{}),
	outputSpec("iterate_output", IterateInvocationOutput{}),
	outputSpec("graph_output", GraphInvocationOutput{}),
	outputSpec("control_output", ControlOutput{}),
	outputSpec("mask_output", MaskOutput{}),
	outputSpec("noise_output", NoiseOutput{}),
	outputSpec("prompt", PromptOutput{}),
	outputSpec("model_loader_output", ModelLoaderOutput{}),
	outputSpec("model_loader_output_onnx", ONNXModelLoaderOutput{}),
	outputSpec("lora_loader_output", LoraLoaderOutput{}),
	outputSpec("seamless_output", SeamlessModeOutput{}),
	outputSpec("metadata_accumulator_output", MetadataAccumulatorOutput{}),
}

var (
	nodesByType   = map[string]NodeSpec{}
	nodesByGoType = map[reflect.Type]NodeSpec{}
	outputsByType = map[string]OutputSpec{}
)

func init() {
	for _, s := range nodeSpecs {
		nodesByType[s.Type] = s
		nodesByGoType[s.goType] = s
	}
	for _, s := range outputSpecs {
		outputsByType[s.Type] = s
	}
}

// NodeTypes returns every invocation node discriminant, sorted.
func NodeTypes() []string {
	out := make([]string, 0, len(nodeSpecs))
	for _, s := range nodeSpecs {
		out = append(out, s.Type)
	}
	sort.Strings(out)
	return out
}

// NodeSpecs returns the registry in catalog order.
func NodeSpecs() []NodeSpec {
	return append([]NodeSpec(nil), nodeSpecs...)
}

// NodeSpecOf looks up a node by discriminant.
func NodeSpecOf(nodeType string) (NodeSpec, bool) {
	s, ok := nodesByType[nodeType]
	return s, ok
}

// NodeCategoryOf returns the category of a node discriminant.
func NodeCategoryOf(nodeType string) (NodeCategory, bool) {
	s, ok := nodesByType[nodeType]
	return s.Category, ok
}

// IsNodeType reports whether nodeType is a known invocation discriminant.
func IsNodeType(nodeType string) bool {
	_, ok := nodesByType[nodeType]
	return ok
}

// OutputTypes returns every output discriminant, sorted.
func OutputTypes() []string {
	out := make([]string, 0, len(outputSpecs))
	for _, s := range outputSpecs {
		out = append(out, s.Type)
	}
	sort.Strings(out)
	return out
}

// OutputTypeOf returns the discriminant of the output a node type produces.
func OutputTypeOf(nodeType string) (string, bool) {
	s, ok := nodesByType[nodeType]
	return s.Output, ok
}

// IsOutputType reports whether outputType is a known output discriminant.
func IsOutputType(outputType string) bool {
	_, ok := outputsByType[outputType]
	return ok
}

// nodeSpecFor resolves the NodeSpec of a concrete node value such as RangeInvocation or *RangeInvocation.
func nodeSpecFor(node any) (NodeSpec, bool) {
	t := reflect.TypeOf(node)
	if t == nil {
		return NodeSpec{}, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s, ok := nodesByGoType[t]
	return s, ok
}

// NewGraphNode wraps a concrete invocation in a GraphNode, stamping its discriminant.
// The node must carry a non-empty id.
func NewGraphNode(node any) (GraphNode, error) {
	var gn GraphNode
	spec, ok := nodeSpecFor(node)
	if !ok {
		return gn, &UnexpectedShapeError{Type: "GraphNode", Reason: fmt.Sprintf("not an invocation type: %T", node)}
	}
	b, err := json.Marshal(node)
	if err != nil {
		return gn, err
	}
	tag, _ := json.Marshal(map[string]string{"type": spec.Type})
	merged, err := runtime.JSONMerge(b, tag)
	if err != nil {
		return gn, err
	}
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(merged, &head); err != nil {
		return gn, err
	}
	if head.ID == "" {
		return gn, &UnexpectedShapeError{Type: spec.Component, Tag: spec.Type, Reason: "missing id"}
	}
	err = gn.UnmarshalJSON(merged)
	return gn, err
}

// nodeHeader reads the fields every node shares.
func nodeHeader(n GraphNode) (id, typ string, err error) {
	raw, err := n.MarshalJSON()
	if err != nil {
		return "", "", err
	}
	var head struct {
		ID   *string `json:"id"`
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", "", &UnexpectedShapeError{Type: "GraphNode", Err: err}
	}
	if head.Type == nil {
		return "", "", &UnexpectedShapeError{Type: "GraphNode", Reason: "missing type"}
	}
	if head.ID != nil {
		id = *head.ID
	}
	return id, *head.Type, nil
}

// DecodeNode narrows a GraphNode to its concrete invocation type, e.g. RangeInvocation.
// A node without a type, with an unknown type, or failing its schema is rejected.
func DecodeNode(n GraphNode) (any, error) {
	_, typ, err := nodeHeader(n)
	if err != nil {
		return nil, err
	}
	spec, ok := nodesByType[typ]
	if !ok {
		return nil, &UnexpectedShapeError{Type: "GraphNode", Tag: typ, Reason: "unknown node type"}
	}
	if err := validateComponent(spec.Component, n); err != nil {
		return nil, &UnexpectedShapeError{Type: spec.Component, Tag: typ, Err: err}
	}
	return n.ValueByDiscriminator()
}

// DecodeOutput narrows an InvocationOutput to its concrete output type.
func DecodeOutput(o InvocationOutput) (any, error) {
	typ, err := o.Discriminator()
	if err != nil {
		return nil, &UnexpectedShapeError{Type: "InvocationOutput", Err: err}
	}
	if typ == "" {
		return nil, &UnexpectedShapeError{Type: "InvocationOutput", Reason: "missing type"}
	}
	spec, ok := outputsByType[typ]
	if !ok {
		return nil, &UnexpectedShapeError{Type: "InvocationOutput", Tag: typ, Reason: "unknown output type"}
	}
	if err := validateComponent(spec.Component, o); err != nil {
		return nil, &UnexpectedShapeError{Type: spec.Component, Tag: typ, Err: err}
	}
	return o.ValueByDiscriminator()
}

// validateComponent checks a marshalable value against its schema component. Components the
// embedded document does not define are accepted.
func validateComponent(component string, v json.Marshaler) error {
	val, err := schemacheck.Default()
	if err != nil {
		return err
	}
	raw, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	err = val.Validate(component, raw)
	if errors.Is(err, schemacheck.ErrUnknownComponent) {
		return nil
	}
	return err
}
