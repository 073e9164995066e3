package invoke

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/invokego/invoke-go/generated"
)

// ModelConfigKind names the concrete model config a payload decodes to.
type ModelConfigKind string

const (
	ModelConfigKindLoRA                        ModelConfigKind = "LoRAModelConfig"
	ModelConfigKindVae                         ModelConfigKind = "VaeModelConfig"
	ModelConfigKindControlNetCheckpoint        ModelConfigKind = "ControlNetModelCheckpointConfig"
	ModelConfigKindControlNetDiffusers         ModelConfigKind = "ControlNetModelDiffusersConfig"
	ModelConfigKindTextualInversion            ModelConfigKind = "TextualInversionModelConfig"
	ModelConfigKindStableDiffusion1Checkpoint  ModelConfigKind = "StableDiffusion1ModelCheckpointConfig"
	ModelConfigKindStableDiffusion1Diffusers   ModelConfigKind = "StableDiffusion1ModelDiffusersConfig"
	ModelConfigKindStableDiffusion2Checkpoint  ModelConfigKind = "StableDiffusion2ModelCheckpointConfig"
	ModelConfigKindStableDiffusion2Diffusers   ModelConfigKind = "StableDiffusion2ModelDiffusersConfig"
	ModelConfigKindStableDiffusionXLCheckpoint ModelConfigKind = "StableDiffusionXLModelCheckpointConfig"
	ModelConfigKindStableDiffusionXLDiffusers  ModelConfigKind = "StableDiffusionXLModelDiffusersConfig"
	ModelConfigKindONNXStableDiffusion1        ModelConfigKind = "ONNXStableDiffusion1ModelConfig"
)

// modelConfigVariant maps a (model_type, base_model, model_format) key to a kind.
// Empty bases or formats match any value.
type modelConfigVariant struct {
	kind      ModelConfigKind
	modelType ModelType
	bases     []BaseModelType
	formats   []string
}

var modelConfigVariants = []modelConfigVariant{
	{kind: ModelConfigKindLoRA, modelType: generated.ModelTypeLora,
		formats: []string{string(generated.LoRAModelFormatLycoris), string(generated.LoRAModelFormatDiffusers)}},
	{kind: ModelConfigKindVae, modelType: generated.ModelTypeVae,
		formats: []string{string(generated.VaeModelFormatCheckpoint), string(generated.VaeModelFormatDiffusers)}},
	{kind: ModelConfigKindTextualInversion, modelType: generated.ModelTypeEmbedding},
	{kind: ModelConfigKindControlNetCheckpoint, modelType: generated.ModelTypeControlnet,
		formats: []string{"checkpoint"}},
	{kind: ModelConfigKindControlNetDiffusers, modelType: generated.ModelTypeControlnet,
		formats: []string{"diffusers"}},
	{kind: ModelConfigKindStableDiffusion1Checkpoint, modelType: generated.ModelTypeMain,
		bases: []BaseModelType{generated.BaseModelTypeSd1}, formats: []string{"checkpoint"}},
	{kind: ModelConfigKindStableDiffusion1Diffusers, modelType: generated.ModelTypeMain,
		bases: []BaseModelType{generated.BaseModelTypeSd1}, formats: []string{"diffusers"}},
	{kind: ModelConfigKindStableDiffusion2Checkpoint, modelType: generated.ModelTypeMain,
		bases: []BaseModelType{generated.BaseModelTypeSd2}, formats: []string{"checkpoint"}},
	{kind: ModelConfigKindStableDiffusion2Diffusers, modelType: generated.ModelTypeMain,
		bases: []BaseModelType{generated.BaseModelTypeSd2}, formats: []string{"diffusers"}},
	{kind: ModelConfigKindStableDiffusionXLCheckpoint, modelType: generated.ModelTypeMain,
		bases: []BaseModelType{generated.BaseModelTypeSdxl, generated.BaseModelTypeSdxlRefiner}, formats: []string{"checkpoint"}},
	{kind: ModelConfigKindStableDiffusionXLDiffusers, modelType: generated.ModelTypeMain,
		bases: []BaseModelType{generated.BaseModelTypeSdxl, generated.BaseModelTypeSdxlRefiner}, formats: []string{"diffusers"}},
	{kind: ModelConfigKindONNXStableDiffusion1, modelType: generated.ModelTypeOnnx,
		bases: []BaseModelType{generated.BaseModelTypeSd1}, formats: []string{"onnx"}},
}

// ModelConfigKinds returns every kind a model config payload can decode to.
func ModelConfigKinds() []ModelConfigKind {
	out := make([]ModelConfigKind, 0, len(modelConfigVariants))
	for _, v := range modelConfigVariants {
		out = append(out, v.kind)
	}
	return out
}

var errEmptyModelConfig = errors.New("empty payload")

type modelConfigKey struct {
	ModelType   ModelType     `json:"model_type"`
	BaseModel   BaseModelType `json:"base_model"`
	ModelFormat string        `json:"model_format"`
}

// classifyModelConfig resolves raw to a kind. Errors are *UnexpectedShapeError tagged with union.
func classifyModelConfig(union string, raw json.RawMessage) (ModelConfigKind, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", &UnexpectedShapeError{Type: union, Err: errEmptyModelConfig}
	}
	var key modelConfigKey
	if err := json.Unmarshal(raw, &key); err != nil {
		return "", &UnexpectedShapeError{Type: union, Err: err}
	}
	if key.ModelType == "" {
		return "", &UnexpectedShapeError{Type: union, Reason: "missing model_type"}
	}
	for _, v := range modelConfigVariants {
		if v.modelType != key.ModelType {
			continue
		}
		if len(v.bases) > 0 && !slices.Contains(v.bases, key.BaseModel) {
			continue
		}
		if len(v.formats) > 0 && !slices.Contains(v.formats, key.ModelFormat) {
			continue
		}
		return v.kind, nil
	}
	return "", &UnexpectedShapeError{
		Type:   union,
		Tag:    string(key.ModelType),
		Reason: fmt.Sprintf("no model config for base_model %q and model_format %q", key.BaseModel, key.ModelFormat),
	}
}

// checkModelConfig classifies raw and requires the kind to be one of allowed.
func checkModelConfig(union string, raw json.RawMessage, allowed ...ModelConfigKind) (ModelConfigKind, error) {
	kind, err := classifyModelConfig(union, raw)
	if err != nil {
		return "", err
	}
	if !slices.Contains(allowed, kind) {
		return "", &UnexpectedShapeError{Type: union, Tag: string(kind), Reason: "variant not allowed here"}
	}
	return kind, nil
}

// asModelConfig narrows raw to T when its kind is one of want.
func asModelConfig[T any](union string, raw json.RawMessage, want ...ModelConfigKind) (T, error) {
	var out T
	if _, err := checkModelConfig(union, raw, want...); err != nil {
		return out, err
	}
	err := json.Unmarshal(raw, &out)
	return out, err
}

// fromModelConfig marshals v into dst when it classifies as one of allowed. dst is left
// unchanged on error.
func fromModelConfig(union string, dst *json.RawMessage, v any, allowed ...ModelConfigKind) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := checkModelConfig(union, b, allowed...); err != nil {
		return err
	}
	*dst = b
	return nil
}

func marshalModelConfig(union string, raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 {
		return nil, &UnexpectedShapeError{Type: union, Err: errEmptyModelConfig}
	}
	return raw, nil
}

func unmarshalModelConfig(union string, b []byte, dst *json.RawMessage, allowed ...ModelConfigKind) error {
	if _, err := checkModelConfig(union, b, allowed...); err != nil {
		return err
	}
	*dst = append((*dst)[:0], b...)
	return nil
}

// ControlNetModelConfig is exactly one of ControlNetModelCheckpointConfig or
// ControlNetModelDiffusersConfig.
type ControlNetModelConfig struct {
	union json.RawMessage
}

var controlNetKinds = []ModelConfigKind{ModelConfigKindControlNetCheckpoint, ModelConfigKindControlNetDiffusers}

// Kind reports which variant the union holds.
func (t ControlNetModelConfig) Kind() (ModelConfigKind, error) {
	return checkModelConfig("ControlNetModelConfig", t.union, controlNetKinds...)
}

func (t ControlNetModelConfig) AsControlNetModelCheckpointConfig() (ControlNetModelCheckpointConfig, error) {
	return asModelConfig[ControlNetModelCheckpointConfig]("ControlNetModelConfig", t.union, ModelConfigKindControlNetCheckpoint)
}

func (t *ControlNetModelConfig) FromControlNetModelCheckpointConfig(v ControlNetModelCheckpointConfig) error {
	v.ModelType = generated.ControlNetModelCheckpointConfigModelTypeControlnet
	v.ModelFormat = generated.ControlNetModelCheckpointConfigModelFormatCheckpoint
	return fromModelConfig("ControlNetModelConfig", &t.union, v, ModelConfigKindControlNetCheckpoint)
}

func (t ControlNetModelConfig) AsControlNetModelDiffusersConfig() (ControlNetModelDiffusersConfig, error) {
	return asModelConfig[ControlNetModelDiffusersConfig]("ControlNetModelConfig", t.union, ModelConfigKindControlNetDiffusers)
}

func (t *ControlNetModelConfig) FromControlNetModelDiffusersConfig(v ControlNetModelDiffusersConfig) error {
	v.ModelType = generated.ControlNetModelDiffusersConfigModelTypeControlnet
	v.ModelFormat = generated.ControlNetModelDiffusersConfigModelFormatDiffusers
	return fromModelConfig("ControlNetModelConfig", &t.union, v, ModelConfigKindControlNetDiffusers)
}

// ValueByKind returns the concrete variant.
func (t ControlNetModelConfig) ValueByKind() (any, error) {
	kind, err := t.Kind()
	if err != nil {
		return nil, err
	}
	if kind == ModelConfigKindControlNetCheckpoint {
		return t.AsControlNetModelCheckpointConfig()
	}
	return t.AsControlNetModelDiffusersConfig()
}

func (t ControlNetModelConfig) MarshalJSON() ([]byte, error) {
	return marshalModelConfig("ControlNetModelConfig", t.union)
}

func (t *ControlNetModelConfig) UnmarshalJSON(b []byte) error {
	return unmarshalModelConfig("ControlNetModelConfig", b, &t.union, controlNetKinds...)
}

// DiffusersModelConfig is one of the Stable Diffusion 1, 2 or XL diffusers configs.
type DiffusersModelConfig struct {
	union json.RawMessage
}

var diffusersKinds = []ModelConfigKind{
	ModelConfigKindStableDiffusion1Diffusers,
	ModelConfigKindStableDiffusion2Diffusers,
	ModelConfigKindStableDiffusionXLDiffusers,
}

func (t DiffusersModelConfig) Kind() (ModelConfigKind, error) {
	return checkModelConfig("DiffusersModelConfig", t.union, diffusersKinds...)
}

func (t DiffusersModelConfig) AsStableDiffusion1ModelDiffusersConfig() (StableDiffusion1ModelDiffusersConfig, error) {
	return asModelConfig[StableDiffusion1ModelDiffusersConfig]("DiffusersModelConfig", t.union, ModelConfigKindStableDiffusion1Diffusers)
}

func (t *DiffusersModelConfig) FromStableDiffusion1ModelDiffusersConfig(v StableDiffusion1ModelDiffusersConfig) error {
	v.ModelType = generated.StableDiffusion1ModelDiffusersConfigModelTypeMain
	v.ModelFormat = generated.StableDiffusion1ModelDiffusersConfigModelFormatDiffusers
	if v.BaseModel == "" {
		v.BaseModel = generated.BaseModelTypeSd1
	}
	return fromModelConfig("DiffusersModelConfig", &t.union, v, ModelConfigKindStableDiffusion1Diffusers)
}

func (t DiffusersModelConfig) AsStableDiffusion2ModelDiffusersConfig() (StableDiffusion2ModelDiffusersConfig, error) {
	return asModelConfig[StableDiffusion2ModelDiffusersConfig]("DiffusersModelConfig", t.union, ModelConfigKindStableDiffusion2Diffusers)
}

func (t *DiffusersModelConfig) FromStableDiffusion2ModelDiffusersConfig(v StableDiffusion2ModelDiffusersConfig) error {
	v.ModelType = generated.StableDiffusion2ModelDiffusersConfigModelTypeMain
	v.ModelFormat = generated.StableDiffusion2ModelDiffusersConfigModelFormatDiffusers
	if v.BaseModel == "" {
		v.BaseModel = generated.BaseModelTypeSd2
	}
	return fromModelConfig("DiffusersModelConfig", &t.union, v, ModelConfigKindStableDiffusion2Diffusers)
}

func (t DiffusersModelConfig) AsStableDiffusionXLModelDiffusersConfig() (StableDiffusionXLModelDiffusersConfig, error) {
	return asModelConfig[StableDiffusionXLModelDiffusersConfig]("DiffusersModelConfig", t.union, ModelConfigKindStableDiffusionXLDiffusers)
}

func (t *DiffusersModelConfig) FromStableDiffusionXLModelDiffusersConfig(v StableDiffusionXLModelDiffusersConfig) error {
	v.ModelType = generated.StableDiffusionXLModelDiffusersConfigModelTypeMain
	v.ModelFormat = generated.StableDiffusionXLModelDiffusersConfigModelFormatDiffusers
	if v.BaseModel == "" {
		v.BaseModel = generated.BaseModelTypeSdxl
	}
	return fromModelConfig("DiffusersModelConfig", &t.union, v, ModelConfigKindStableDiffusionXLDiffusers)
}

func (t DiffusersModelConfig) ValueByKind() (any, error) {
	kind, err := t.Kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case ModelConfigKindStableDiffusion1Diffusers:
		return t.AsStableDiffusion1ModelDiffusersConfig()
	case ModelConfigKindStableDiffusion2Diffusers:
		return t.AsStableDiffusion2ModelDiffusersConfig()
	default:
		return t.AsStableDiffusionXLModelDiffusersConfig()
	}
}

func (t DiffusersModelConfig) MarshalJSON() ([]byte, error) {
	return marshalModelConfig("DiffusersModelConfig", t.union)
}

func (t *DiffusersModelConfig) UnmarshalJSON(b []byte) error {
	return unmarshalModelConfig("DiffusersModelConfig", b, &t.union, diffusersKinds...)
}

// CheckpointModelConfig is one of the Stable Diffusion 1, 2 or XL checkpoint configs.
type CheckpointModelConfig struct {
	union json.RawMessage
}

var checkpointKinds = []ModelConfigKind{
	ModelConfigKindStableDiffusion1Checkpoint,
	ModelConfigKindStableDiffusion2Checkpoint,
	ModelConfigKindStableDiffusionXLCheckpoint,
}

func (t CheckpointModelConfig) Kind() (ModelConfigKind, error) {
	return checkModelConfig("CheckpointModelConfig", t.union, checkpointKinds...)
}

func (t CheckpointModelConfig) AsStableDiffusion1ModelCheckpointConfig() (StableDiffusion1ModelCheckpointConfig, error) {
	return asModelConfig[StableDiffusion1ModelCheckpointConfig]("CheckpointModelConfig", t.union, ModelConfigKindStableDiffusion1Checkpoint)
}

func (t *CheckpointModelConfig) FromStableDiffusion1ModelCheckpointConfig(v StableDiffusion1ModelCheckpointConfig) error {
	v.ModelType = generated.StableDiffusion1ModelCheckpointConfigModelTypeMain
	v.ModelFormat = generated.StableDiffusion1ModelCheckpointConfigModelFormatCheckpoint
	if v.BaseModel == "" {
		v.BaseModel = generated.BaseModelTypeSd1
	}
	return fromModelConfig("CheckpointModelConfig", &t.union, v, ModelConfigKindStableDiffusion1Checkpoint)
}

func (t CheckpointModelConfig) AsStableDiffusion2ModelCheckpointConfig() (StableDiffusion2ModelCheckpointConfig, error) {
	return asModelConfig[StableDiffusion2ModelCheckpointConfig]("CheckpointModelConfig", t.union, ModelConfigKindStableDiffusion2Checkpoint)
}

func (t *CheckpointModelConfig) FromStableDiffusion2ModelCheckpointConfig(v StableDiffusion2ModelCheckpointConfig) error {
	v.ModelType = generated.StableDiffusion2ModelCheckpointConfigModelTypeMain
	v.ModelFormat = generated.StableDiffusion2ModelCheckpointConfigModelFormatCheckpoint
	if v.BaseModel == "" {
		v.BaseModel = generated.BaseModelTypeSd2
	}
	return fromModelConfig("CheckpointModelConfig", &t.union, v, ModelConfigKindStableDiffusion2Checkpoint)
}

func (t CheckpointModelConfig) AsStableDiffusionXLModelCheckpointConfig() (StableDiffusionXLModelCheckpointConfig, error) {
	return asModelConfig[StableDiffusionXLModelCheckpointConfig]("CheckpointModelConfig", t.union, ModelConfigKindStableDiffusionXLCheckpoint)
}

func (t *CheckpointModelConfig) FromStableDiffusionXLModelCheckpointConfig(v StableDiffusionXLModelCheckpointConfig) error {
	v.ModelType = generated.StableDiffusionXLModelCheckpointConfigModelTypeMain
	v.ModelFormat = generated.StableDiffusionXLModelCheckpointConfigModelFormatCheckpoint
	if v.BaseModel == "" {
		v.BaseModel = generated.BaseModelTypeSdxl
	}
	return fromModelConfig("CheckpointModelConfig", &t.union, v, ModelConfigKindStableDiffusionXLCheckpoint)
}

func (t CheckpointModelConfig) ValueByKind() (any, error) {
	kind, err := t.Kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case ModelConfigKindStableDiffusion1Checkpoint:
		return t.AsStableDiffusion1ModelCheckpointConfig()
	case ModelConfigKindStableDiffusion2Checkpoint:
		return t.AsStableDiffusion2ModelCheckpointConfig()
	default:
		return t.AsStableDiffusionXLModelCheckpointConfig()
	}
}

func (t CheckpointModelConfig) MarshalJSON() ([]byte, error) {
	return marshalModelConfig("CheckpointModelConfig", t.union)
}

func (t *CheckpointModelConfig) UnmarshalJSON(b []byte) error {
	return unmarshalModelConfig("CheckpointModelConfig", b, &t.union, checkpointKinds...)
}

// MainModelConfig is either a DiffusersModelConfig or a CheckpointModelConfig.
type MainModelConfig struct {
	union json.RawMessage
}

var mainKinds = slices.Concat(diffusersKinds, checkpointKinds)

func (t MainModelConfig) Kind() (ModelConfigKind, error) {
	return checkModelConfig("MainModelConfig", t.union, mainKinds...)
}

func (t MainModelConfig) AsDiffusersModelConfig() (DiffusersModelConfig, error) {
	return asModelConfig[DiffusersModelConfig]("MainModelConfig", t.union, diffusersKinds...)
}

func (t *MainModelConfig) FromDiffusersModelConfig(v DiffusersModelConfig) error {
	return fromModelConfig("MainModelConfig", &t.union, v, diffusersKinds...)
}

func (t MainModelConfig) AsCheckpointModelConfig() (CheckpointModelConfig, error) {
	return asModelConfig[CheckpointModelConfig]("MainModelConfig", t.union, checkpointKinds...)
}

func (t *MainModelConfig) FromCheckpointModelConfig(v CheckpointModelConfig) error {
	return fromModelConfig("MainModelConfig", &t.union, v, checkpointKinds...)
}

// ValueByKind returns the concrete Stable Diffusion config, not the intermediate union.
func (t MainModelConfig) ValueByKind() (any, error) {
	kind, err := t.Kind()
	if err != nil {
		return nil, err
	}
	if slices.Contains(diffusersKinds, kind) {
		return DiffusersModelConfig{union: t.union}.ValueByKind()
	}
	return CheckpointModelConfig{union: t.union}.ValueByKind()
}

func (t MainModelConfig) MarshalJSON() ([]byte, error) {
	return marshalModelConfig("MainModelConfig", t.union)
}

func (t *MainModelConfig) UnmarshalJSON(b []byte) error {
	return unmarshalModelConfig("MainModelConfig", b, &t.union, mainKinds...)
}

// OnnxModelConfig is the only ONNX model config the backend exposes.
type OnnxModelConfig = ONNXStableDiffusion1ModelConfig

// AnyModelConfig is any model config the models endpoint can return.
type AnyModelConfig struct {
	union json.RawMessage
}

func (t AnyModelConfig) Kind() (ModelConfigKind, error) {
	return checkModelConfig("AnyModelConfig", t.union, ModelConfigKinds()...)
}

func (t AnyModelConfig) AsLoRAModelConfig() (LoRAModelConfig, error) {
	return asModelConfig[LoRAModelConfig]("AnyModelConfig", t.union, ModelConfigKindLoRA)
}

func (t *AnyModelConfig) FromLoRAModelConfig(v LoRAModelConfig) error {
	v.ModelType = generated.LoRAModelConfigModelTypeLora
	return fromModelConfig("AnyModelConfig", &t.union, v, ModelConfigKindLoRA)
}

func (t AnyModelConfig) AsVaeModelConfig() (VaeModelConfig, error) {
	return asModelConfig[VaeModelConfig]("AnyModelConfig", t.union, ModelConfigKindVae)
}

func (t *AnyModelConfig) FromVaeModelConfig(v VaeModelConfig) error {
	v.ModelType = generated.VaeModelConfigModelTypeVae
	return fromModelConfig("AnyModelConfig", &t.union, v, ModelConfigKindVae)
}

func (t AnyModelConfig) AsControlNetModelConfig() (ControlNetModelConfig, error) {
	return asModelConfig[ControlNetModelConfig]("AnyModelConfig", t.union, controlNetKinds...)
}

func (t *AnyModelConfig) FromControlNetModelConfig(v ControlNetModelConfig) error {
	return fromModelConfig("AnyModelConfig", &t.union, v, controlNetKinds...)
}

func (t AnyModelConfig) AsTextualInversionModelConfig() (TextualInversionModelConfig, error) {
	return asModelConfig[TextualInversionModelConfig]("AnyModelConfig", t.union, ModelConfigKindTextualInversion)
}

func (t *AnyModelConfig) FromTextualInversionModelConfig(v TextualInversionModelConfig) error {
	v.ModelType = generated.TextualInversionModelConfigModelTypeEmbedding
	return fromModelConfig("AnyModelConfig", &t.union, v, ModelConfigKindTextualInversion)
}

func (t AnyModelConfig) AsMainModelConfig() (MainModelConfig, error) {
	return asModelConfig[MainModelConfig]("AnyModelConfig", t.union, mainKinds...)
}

func (t *AnyModelConfig) FromMainModelConfig(v MainModelConfig) error {
	return fromModelConfig("AnyModelConfig", &t.union, v, mainKinds...)
}

func (t AnyModelConfig) AsOnnxModelConfig() (OnnxModelConfig, error) {
	return asModelConfig[OnnxModelConfig]("AnyModelConfig", t.union, ModelConfigKindONNXStableDiffusion1)
}

func (t *AnyModelConfig) FromOnnxModelConfig(v OnnxModelConfig) error {
	v.ModelType = generated.ONNXStableDiffusion1ModelConfigModelTypeOnnx
	v.ModelFormat = generated.ONNXStableDiffusion1ModelConfigModelFormatOnnx
	if v.BaseModel == "" {
		v.BaseModel = generated.BaseModelTypeSd1
	}
	return fromModelConfig("AnyModelConfig", &t.union, v, ModelConfigKindONNXStableDiffusion1)
}

// ValueByKind returns the concrete leaf config, such as a StableDiffusion1ModelCheckpointConfig.
func (t AnyModelConfig) ValueByKind() (any, error) {
	kind, err := t.Kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case ModelConfigKindLoRA:
		return t.AsLoRAModelConfig()
	case ModelConfigKindVae:
		return t.AsVaeModelConfig()
	case ModelConfigKindTextualInversion:
		return t.AsTextualInversionModelConfig()
	case ModelConfigKindONNXStableDiffusion1:
		return t.AsOnnxModelConfig()
	case ModelConfigKindControlNetCheckpoint, ModelConfigKindControlNetDiffusers:
		return ControlNetModelConfig{union: t.union}.ValueByKind()
	default:
		return MainModelConfig{union: t.union}.ValueByKind()
	}
}

func (t AnyModelConfig) MarshalJSON() ([]byte, error) {
	return marshalModelConfig("AnyModelConfig", t.union)
}

func (t *AnyModelConfig) UnmarshalJSON(b []byte) error {
	return unmarshalModelConfig("AnyModelConfig", b, &t.union, ModelConfigKinds()...)
}

// ModelsList is the response of the list models endpoint.
type ModelsList struct {
	Models []AnyModelConfig `json:"models"`
}

// UnmarshalJSON keeps every item as received and classifies it on read. An item no kind
// matches, such as an onnx config with base_model sd-2, stays in Models and reports an
// *UnexpectedShapeError from Kind; Unrecognized lists those items.
func (l *ModelsList) UnmarshalJSON(b []byte) error {
	var raw struct {
		Models []json.RawMessage `json:"models"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	l.Models = make([]AnyModelConfig, 0, len(raw.Models))
	for _, m := range raw.Models {
		l.Models = append(l.Models, AnyModelConfig{union: m})
	}
	return nil
}

// Unrecognized returns the configs in l that match no ModelConfigKind.
func (l ModelsList) Unrecognized() []AnyModelConfig {
	var out []AnyModelConfig
	for _, m := range l.Models {
		if _, err := m.Kind(); err != nil {
			out = append(out, m)
		}
	}
	return out
}

// FilterKind returns the configs in l whose kind is one of kinds.
func (l ModelsList) FilterKind(kinds ...ModelConfigKind) []AnyModelConfig {
	var out []AnyModelConfig
	for _, m := range l.Models {
		k, err := m.Kind()
		if err == nil && slices.Contains(kinds, k) {
			out = append(out, m)
		}
	}
	return out
}
