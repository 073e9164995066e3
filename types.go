package invoke

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/invokego/invoke-go/generated"
)

// Typed API models (aliases of the generated OpenAPI models).
//
// These aliases let consumers import just "github.com/invokego/invoke-go" for types.

// Images.
type ImageDTO = generated.ImageDTO
type ImageUrlsDTO = generated.ImageUrlsDTO
type ImageField = generated.ImageField
type ImageRecordChanges = generated.ImageRecordChanges
type ImageMetadata = generated.ImageMetadata
type ImageCategory = generated.ImageCategory
type ResourceOrigin = generated.ResourceOrigin
type OffsetPaginatedResultsImageDTO = generated.OffsetPaginatedResultsImageDTO
type DeleteImagesFromListBody = generated.DeleteImagesFromListBody
type DeleteImagesResult = generated.DeleteImagesResult

// Boards.
type BoardDTO = generated.BoardDTO
type BoardChanges = generated.BoardChanges
type OffsetPaginatedResultsBoardDTO = generated.OffsetPaginatedResultsBoardDTO
type DeleteBoardResult = generated.DeleteBoardResult

// Models.
type BaseModelType = generated.BaseModelType
type ModelType = generated.ModelType
type SubModelType = generated.SubModelType
type ModelVariantType = generated.ModelVariantType
type ModelError = generated.ModelError
type SchedulerPredictionType = generated.SchedulerPredictionType
type LoRAModelFormat = generated.LoRAModelFormat
type VaeModelFormat = generated.VaeModelFormat
type MainModelField = generated.MainModelField
type OnnxModelField = generated.OnnxModelField
type VAEModelField = generated.VAEModelField
type LoRAModelField = generated.LoRAModelField
type ControlNetModelField = generated.ControlNetModelField
type ModelInfo = generated.ModelInfo
type LoraInfo = generated.LoraInfo
type UNetField = generated.UNetField
type ClipField = generated.ClipField
type VaeField = generated.VaeField
type ControlField = generated.ControlField
type SchedulerName = generated.SchedulerName
type ResampleMode = generated.ResampleMode
type ControlMode = generated.ControlMode
type ControlResizeMode = generated.ControlResizeMode
type ESRGANModelName = generated.ESRGANModelName

// Model configs. The unions over them live in modelconfig.go.
type LoRAModelConfig = generated.LoRAModelConfig
type VaeModelConfig = generated.VaeModelConfig
type ControlNetModelCheckpointConfig = generated.ControlNetModelCheckpointConfig
type ControlNetModelDiffusersConfig = generated.ControlNetModelDiffusersConfig
type TextualInversionModelConfig = generated.TextualInversionModelConfig
type StableDiffusion1ModelCheckpointConfig = generated.StableDiffusion1ModelCheckpointConfig
type StableDiffusion1ModelDiffusersConfig = generated.StableDiffusion1ModelDiffusersConfig
type StableDiffusion2ModelCheckpointConfig = generated.StableDiffusion2ModelCheckpointConfig
type StableDiffusion2ModelDiffusersConfig = generated.StableDiffusion2ModelDiffusersConfig
type StableDiffusionXLModelCheckpointConfig = generated.StableDiffusionXLModelCheckpointConfig
type StableDiffusionXLModelDiffusersConfig = generated.StableDiffusionXLModelDiffusersConfig
type ONNXStableDiffusion1ModelConfig = generated.ONNXStableDiffusion1ModelConfig

// Graphs.
type Graph = generated.Graph
type GraphNode = generated.GraphNode
type Edge = generated.Edge
type EdgeConnection = generated.EdgeConnection
type GraphExecutionState = generated.GraphExecutionState
type InvocationOutput = generated.InvocationOutput

// General nodes.
type CollectInvocation = generated.CollectInvocation
type CompelInvocation = generated.CompelInvocation
type DivideInvocation = generated.DivideInvocation
type DynamicPromptInvocation = generated.DynamicPromptInvocation
type ESRGANInvocation = generated.ESRGANInvocation
type GraphInvocation = generated.GraphInvocation
type ImageNSFWBlurInvocation = generated.ImageNSFWBlurInvocation
type ImageResizeInvocation = generated.ImageResizeInvocation
type ImageScaleInvocation = generated.ImageScaleInvocation
type ImageToLatentsInvocation = generated.ImageToLatentsInvocation
type ImageWatermarkInvocation = generated.ImageWatermarkInvocation
type InpaintInvocation = generated.InpaintInvocation
type IterateInvocation = generated.IterateInvocation
type LatentsToImageInvocation = generated.LatentsToImageInvocation
type LatentsToLatentsInvocation = generated.LatentsToLatentsInvocation
type LoraLoaderInvocation = generated.LoraLoaderInvocation
type MainModelLoaderInvocation = generated.MainModelLoaderInvocation
type MetadataAccumulatorInvocation = generated.MetadataAccumulatorInvocation
type NoiseInvocation = generated.NoiseInvocation
type OnnxModelLoaderInvocation = generated.OnnxModelLoaderInvocation
type RandomIntInvocation = generated.RandomIntInvocation
type RandomRangeInvocation = generated.RandomRangeInvocation
type RangeInvocation = generated.RangeInvocation
type RangeOfSizeInvocation = generated.RangeOfSizeInvocation
type SeamlessModeInvocation = generated.SeamlessModeInvocation
type TextToLatentsInvocation = generated.TextToLatentsInvocation

// ControlNet nodes.
type CannyImageProcessorInvocation = generated.CannyImageProcessorInvocation
type ContentShuffleImageProcessorInvocation = generated.ContentShuffleImageProcessorInvocation
type ControlNetInvocation = generated.ControlNetInvocation
type HedImageProcessorInvocation = generated.HedImageProcessorInvocation
type LineartAnimeImageProcessorInvocation = generated.LineartAnimeImageProcessorInvocation
type LineartImageProcessorInvocation = generated.LineartImageProcessorInvocation
type MediapipeFaceProcessorInvocation = generated.MediapipeFaceProcessorInvocation
type MidasDepthImageProcessorInvocation = generated.MidasDepthImageProcessorInvocation
type MlsdImageProcessorInvocation = generated.MlsdImageProcessorInvocation
type NormalbaeImageProcessorInvocation = generated.NormalbaeImageProcessorInvocation
type OpenposeImageProcessorInvocation = generated.OpenposeImageProcessorInvocation
type PidiImageProcessorInvocation = generated.PidiImageProcessorInvocation
type ZoeDepthImageProcessorInvocation = generated.ZoeDepthImageProcessorInvocation

// Primitive nodes.
type BooleanInvocation = generated.BooleanInvocation
type IntegerInvocation = generated.IntegerInvocation
type FloatInvocation = generated.FloatInvocation
type StringInvocation = generated.StringInvocation
type ImageInvocation = generated.ImageInvocation
type LatentsInvocation = generated.LatentsInvocation
type ColorInvocation = generated.ColorInvocation
type ConditioningInvocation = generated.ConditioningInvocation
type ImageCollectionInvocation = generated.ImageCollectionInvocation

// Node outputs.
type LatentsField = generated.LatentsField
type ConditioningField = generated.ConditioningField
type ColorField = generated.ColorField
type BooleanCollectionOutput = generated.BooleanCollectionOutput
type BooleanOutput = generated.BooleanOutput
type CollectInvocationOutput = generated.CollectInvocationOutput
type ColorCollectionOutput = generated.ColorCollectionOutput
type ColorOutput = generated.ColorOutput
type ConditioningCollectionOutput = generated.ConditioningCollectionOutput
type ConditioningOutput = generated.ConditioningOutput
type ControlOutput = generated.ControlOutput
type FloatCollectionOutput = generated.FloatCollectionOutput
type FloatOutput = generated.FloatOutput
type GraphInvocationOutput = generated.GraphInvocationOutput
type ImageCollectionOutput = generated.ImageCollectionOutput
type ImageOutput = generated.ImageOutput
type IntegerCollectionOutput = generated.IntegerCollectionOutput
type IntegerOutput = generated.IntegerOutput
type IterateInvocationOutput = generated.IterateInvocationOutput
type LatentsCollectionOutput = generated.LatentsCollectionOutput
type LatentsOutput = generated.LatentsOutput
type LoraLoaderOutput = generated.LoraLoaderOutput
type MaskOutput = generated.MaskOutput
type MetadataAccumulatorOutput = generated.MetadataAccumulatorOutput
type ModelLoaderOutput = generated.ModelLoaderOutput
type NoiseOutput = generated.NoiseOutput
type ONNXModelLoaderOutput = generated.ONNXModelLoaderOutput
type PromptOutput = generated.PromptOutput
type SeamlessModeOutput = generated.SeamlessModeOutput
type StringCollectionOutput = generated.StringCollectionOutput
type StringOutput = generated.StringOutput

// Batches.
type Batch = generated.Batch
type BatchDataValue = generated.BatchDataValue
type BatchSession = generated.BatchSession
type BatchSessionState = generated.BatchSessionState
type BatchProcessResponse = generated.BatchProcessResponse
type CreateBatchBody = generated.CreateBatchBody

// Errors.
type HTTPValidationError = generated.HTTPValidationError
type ValidationError = generated.ValidationError

// Endpoint arguments.
type ListImagesArgs = generated.ListImagesParams
type ListBoardsArgs = generated.ListBoardsParams
type CreateBoardArgs = generated.CreateBoardParams
type DeleteBoardArgs = generated.DeleteBoardParams
type ListModelsArgs = generated.ListModelsParams
type InvokeSessionArgs = generated.InvokeSessionParams
type UploadImageParams = generated.UploadImageParams

// UpdateBoardArgs pairs the board path parameter with the requested changes.
type UpdateBoardArgs struct {
	BoardID string
	Changes BoardChanges
}

// UploadImageArgs describes an image upload.
//
// PostUploadAction is not sent to the backend. It is carried alongside the request so the
// completion handler can route the uploaded image; see CompleteUpload.
type UploadImageArgs struct {
	File             []byte
	FileName         string
	Params           UploadImageParams
	PostUploadAction PostUploadAction
}

// File is the upload file type used by the generated models.
type File = openapi_types.File
