package invoke

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/invokego/invoke-go/generated"
)

func TestControlNetModelConfig_ExactlyOneVariant(t *testing.T) {
	var cn ControlNetModelConfig
	if err := cn.FromControlNetModelCheckpointConfig(ControlNetModelCheckpointConfig{
		ModelName: "canny",
		BaseModel: generated.BaseModelTypeSd1,
		Path:      "/models/canny.safetensors",
		Config:    "cldm_v15.yaml",
	}); err != nil {
		t.Fatalf("FromControlNetModelCheckpointConfig: %v", err)
	}

	kind, err := cn.Kind()
	if err != nil || kind != ModelConfigKindControlNetCheckpoint {
		t.Fatalf("expected checkpoint kind, got %q (%v)", kind, err)
	}
	ckpt, err := cn.AsControlNetModelCheckpointConfig()
	if err != nil {
		t.Fatalf("AsControlNetModelCheckpointConfig: %v", err)
	}
	if ckpt.Config != "cldm_v15.yaml" || ckpt.ModelFormat != "checkpoint" || ckpt.ModelType != "controlnet" {
		t.Fatalf("unexpected checkpoint config %+v", ckpt)
	}
	if _, err := cn.AsControlNetModelDiffusersConfig(); err == nil {
		t.Fatalf("a checkpoint config must not narrow to diffusers")
	}
}

func TestControlNetModelConfig_RejectsNeither(t *testing.T) {
	var cn ControlNetModelConfig
	if _, err := cn.Kind(); err == nil {
		t.Fatalf("expected error for empty union")
	}
	if _, err := json.Marshal(cn); err == nil {
		t.Fatalf("expected marshal error for empty union")
	}

	for name, body := range map[string]string{
		"null":          `null`,
		"no format":     `{"model_type":"controlnet","base_model":"sd-1","model_name":"x","path":"/x"}`,
		"onnx format":   `{"model_type":"controlnet","base_model":"sd-1","model_format":"onnx"}`,
		"lora payload":  `{"model_type":"lora","base_model":"sd-1","model_format":"lycoris"}`,
		"missing types": `{"model_name":"x"}`,
	} {
		t.Run(name, func(t *testing.T) {
			var got ControlNetModelConfig
			err := json.Unmarshal([]byte(body), &got)
			var shapeErr *UnexpectedShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected UnexpectedShapeError, got %T (%v)", err, err)
			}
		})
	}
}

func TestAnyModelConfig_SelectsByCompositeKey(t *testing.T) {
	cases := []struct {
		body string
		kind ModelConfigKind
	}{
		{`{"model_type":"lora","base_model":"sdxl","model_format":"lycoris","model_name":"l","path":"/l"}`, ModelConfigKindLoRA},
		{`{"model_type":"vae","base_model":"sd-1","model_format":"diffusers","model_name":"v","path":"/v"}`, ModelConfigKindVae},
		{`{"model_type":"embedding","base_model":"sd-2","model_name":"e","path":"/e"}`, ModelConfigKindTextualInversion},
		{`{"model_type":"controlnet","base_model":"sd-1","model_format":"diffusers","model_name":"c","path":"/c"}`, ModelConfigKindControlNetDiffusers},
		{`{"model_type":"main","base_model":"sd-1","model_format":"checkpoint","model_name":"m","path":"/m","config":"c.yaml","variant":"normal"}`, ModelConfigKindStableDiffusion1Checkpoint},
		{`{"model_type":"main","base_model":"sd-2","model_format":"diffusers","model_name":"m","path":"/m","variant":"normal"}`, ModelConfigKindStableDiffusion2Diffusers},
		{`{"model_type":"main","base_model":"sdxl-refiner","model_format":"diffusers","model_name":"m","path":"/m","variant":"normal"}`, ModelConfigKindStableDiffusionXLDiffusers},
		{`{"model_type":"onnx","base_model":"sd-1","model_format":"onnx","model_name":"o","path":"/o","variant":"normal"}`, ModelConfigKindONNXStableDiffusion1},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			var cfg AnyModelConfig
			if err := json.Unmarshal([]byte(tc.body), &cfg); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			kind, err := cfg.Kind()
			if err != nil || kind != tc.kind {
				t.Fatalf("expected %s, got %s (%v)", tc.kind, kind, err)
			}
			v, err := cfg.ValueByKind()
			if err != nil {
				t.Fatalf("ValueByKind: %v", err)
			}
			if got := typeName(v); got != string(tc.kind) {
				t.Fatalf("expected value of type %s, got %s", tc.kind, got)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case LoRAModelConfig:
		return "LoRAModelConfig"
	case VaeModelConfig:
		return "VaeModelConfig"
	case TextualInversionModelConfig:
		return "TextualInversionModelConfig"
	case ControlNetModelDiffusersConfig:
		return "ControlNetModelDiffusersConfig"
	case ControlNetModelCheckpointConfig:
		return "ControlNetModelCheckpointConfig"
	case StableDiffusion1ModelCheckpointConfig:
		return "StableDiffusion1ModelCheckpointConfig"
	case StableDiffusion2ModelDiffusersConfig:
		return "StableDiffusion2ModelDiffusersConfig"
	case StableDiffusionXLModelDiffusersConfig:
		return "StableDiffusionXLModelDiffusersConfig"
	case OnnxModelConfig:
		return "ONNXStableDiffusion1ModelConfig"
	}
	return "unknown"
}

func TestAnyModelConfig_RejectsUnknownKey(t *testing.T) {
	var cfg AnyModelConfig
	err := json.Unmarshal([]byte(`{"model_type":"main","base_model":"sd-3","model_format":"diffusers"}`), &cfg)
	var shapeErr *UnexpectedShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected UnexpectedShapeError, got %T", err)
	}
	if shapeErr.Tag != "main" {
		t.Fatalf("expected tag main, got %q", shapeErr.Tag)
	}
}

func TestMainModelConfig_NestedUnions(t *testing.T) {
	var diffusers DiffusersModelConfig
	if err := diffusers.FromStableDiffusionXLModelDiffusersConfig(StableDiffusionXLModelDiffusersConfig{
		ModelName: "sdxl-base",
		Path:      "/models/sdxl",
		Variant:   "normal",
	}); err != nil {
		t.Fatalf("FromStableDiffusionXLModelDiffusersConfig: %v", err)
	}

	var mainCfg MainModelConfig
	if err := mainCfg.FromDiffusersModelConfig(diffusers); err != nil {
		t.Fatalf("FromDiffusersModelConfig: %v", err)
	}
	if _, err := mainCfg.AsCheckpointModelConfig(); err == nil {
		t.Fatalf("diffusers config must not narrow to checkpoint")
	}
	inner, err := mainCfg.AsDiffusersModelConfig()
	if err != nil {
		t.Fatalf("AsDiffusersModelConfig: %v", err)
	}
	xl, err := inner.AsStableDiffusionXLModelDiffusersConfig()
	if err != nil {
		t.Fatalf("AsStableDiffusionXLModelDiffusersConfig: %v", err)
	}
	if xl.BaseModel != generated.BaseModelTypeSdxl || xl.ModelType != "main" || xl.ModelFormat != "diffusers" {
		t.Fatalf("expected stamped discriminants, got %+v", xl)
	}
	if _, err := inner.AsStableDiffusion1ModelDiffusersConfig(); err == nil {
		t.Fatalf("sdxl config must not narrow to sd-1")
	}

	var cfg AnyModelConfig
	if err := cfg.FromMainModelConfig(mainCfg); err != nil {
		t.Fatalf("FromMainModelConfig: %v", err)
	}
	if _, err := cfg.AsLoRAModelConfig(); err == nil {
		t.Fatalf("main config must not narrow to lora")
	}
	v, err := cfg.ValueByKind()
	if err != nil {
		t.Fatalf("ValueByKind: %v", err)
	}
	if _, ok := v.(StableDiffusionXLModelDiffusersConfig); !ok {
		t.Fatalf("expected leaf config, got %T", v)
	}
}

func TestCheckpointModelConfig_RoundTrip(t *testing.T) {
	var ckpt CheckpointModelConfig
	if err := ckpt.FromStableDiffusion2ModelCheckpointConfig(StableDiffusion2ModelCheckpointConfig{
		ModelName: "sd2",
		Path:      "/models/sd2.ckpt",
		Config:    "v2-inference-v.yaml",
		Variant:   "normal",
	}); err != nil {
		t.Fatalf("FromStableDiffusion2ModelCheckpointConfig: %v", err)
	}
	b, err := json.Marshal(ckpt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back CheckpointModelConfig
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, err := back.AsStableDiffusion2ModelCheckpointConfig()
	if err != nil {
		t.Fatalf("AsStableDiffusion2ModelCheckpointConfig: %v", err)
	}
	if got.BaseModel != generated.BaseModelTypeSd2 || got.Config != "v2-inference-v.yaml" {
		t.Fatalf("unexpected config %+v", got)
	}

	var diffusers DiffusersModelConfig
	if err := json.Unmarshal(b, &diffusers); err == nil {
		t.Fatalf("checkpoint payload must not decode as DiffusersModelConfig")
	}
}

func TestModelConfigKinds_CoverEveryConfig(t *testing.T) {
	if got := len(ModelConfigKinds()); got != 12 {
		t.Fatalf("expected 12 kinds, got %d", got)
	}
}

func TestAnyModelConfig_FromRequiresFormat(t *testing.T) {
	var cfg AnyModelConfig
	var shapeErr *UnexpectedShapeError
	if err := cfg.FromLoRAModelConfig(LoRAModelConfig{ModelName: "x", Path: "/p", BaseModel: generated.BaseModelTypeSd1}); !errors.As(err, &shapeErr) {
		t.Fatalf("expected UnexpectedShapeError for lora without format, got %v", err)
	}
	if err := cfg.FromVaeModelConfig(VaeModelConfig{ModelName: "x", Path: "/p", BaseModel: generated.BaseModelTypeSd1}); !errors.As(err, &shapeErr) {
		t.Fatalf("expected UnexpectedShapeError for vae without format, got %v", err)
	}
	if _, err := json.Marshal(cfg); err == nil {
		t.Fatalf("a rejected From must leave the union empty")
	}
}

func TestAnyModelConfig_FromKeepsPreviousValueOnError(t *testing.T) {
	var cfg AnyModelConfig
	if err := cfg.FromVaeModelConfig(VaeModelConfig{
		ModelName:   "vae",
		Path:        "/m/vae",
		BaseModel:   generated.BaseModelTypeSd1,
		ModelFormat: generated.VaeModelFormatDiffusers,
	}); err != nil {
		t.Fatalf("FromVaeModelConfig: %v", err)
	}
	if err := cfg.FromLoRAModelConfig(LoRAModelConfig{ModelName: "x", Path: "/p"}); err == nil {
		t.Fatalf("expected error for lora without format")
	}
	if kind, err := cfg.Kind(); err != nil || kind != ModelConfigKindVae {
		t.Fatalf("expected vae kind to survive, got %q (%v)", kind, err)
	}
}

func TestAnyModelConfig_LoRAAndVaeRoundTrip(t *testing.T) {
	var lora AnyModelConfig
	if err := lora.FromLoRAModelConfig(LoRAModelConfig{
		ModelName:   "detail",
		Path:        "/m/detail.safetensors",
		BaseModel:   generated.BaseModelTypeSdxl,
		ModelFormat: generated.LoRAModelFormatLycoris,
	}); err != nil {
		t.Fatalf("FromLoRAModelConfig: %v", err)
	}
	var vae AnyModelConfig
	if err := vae.FromVaeModelConfig(VaeModelConfig{
		ModelName:   "ema",
		Path:        "/m/ema",
		BaseModel:   generated.BaseModelTypeSd2,
		ModelFormat: generated.VaeModelFormatCheckpoint,
	}); err != nil {
		t.Fatalf("FromVaeModelConfig: %v", err)
	}

	b, err := json.Marshal([]AnyModelConfig{lora, vae})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back []AnyModelConfig
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	gotLoRA, err := back[0].AsLoRAModelConfig()
	if err != nil {
		t.Fatalf("AsLoRAModelConfig: %v", err)
	}
	if gotLoRA.ModelType != "lora" || gotLoRA.ModelFormat != generated.LoRAModelFormatLycoris || gotLoRA.ModelName != "detail" {
		t.Fatalf("unexpected lora config %+v", gotLoRA)
	}
	gotVae, err := back[1].AsVaeModelConfig()
	if err != nil {
		t.Fatalf("AsVaeModelConfig: %v", err)
	}
	if gotVae.ModelType != "vae" || gotVae.ModelFormat != generated.VaeModelFormatCheckpoint || gotVae.BaseModel != generated.BaseModelTypeSd2 {
		t.Fatalf("unexpected vae config %+v", gotVae)
	}
	if _, err := back[1].AsLoRAModelConfig(); err == nil {
		t.Fatalf("vae config must not narrow to lora")
	}
}
