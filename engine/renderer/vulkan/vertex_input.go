package vulkan

import (
	"fmt"
	"iter"
	"unsafe"

	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-vertex/engine/vertex"
)

// column formats indexed by component type, then by component count - 1
var attributeFormats = map[metadata.ComponentType][4]vk.Format{
	metadata.ComponentInt8:    {vk.FormatR8Sint, vk.FormatR8g8Sint, vk.FormatR8g8b8Sint, vk.FormatR8g8b8a8Sint},
	metadata.ComponentUint8:   {vk.FormatR8Uint, vk.FormatR8g8Uint, vk.FormatR8g8b8Uint, vk.FormatR8g8b8a8Uint},
	metadata.ComponentInt16:   {vk.FormatR16Sint, vk.FormatR16g16Sint, vk.FormatR16g16b16Sint, vk.FormatR16g16b16a16Sint},
	metadata.ComponentUint16:  {vk.FormatR16Uint, vk.FormatR16g16Uint, vk.FormatR16g16b16Uint, vk.FormatR16g16b16a16Uint},
	metadata.ComponentInt32:   {vk.FormatR32Sint, vk.FormatR32g32Sint, vk.FormatR32g32b32Sint, vk.FormatR32g32b32a32Sint},
	metadata.ComponentUint32:  {vk.FormatR32Uint, vk.FormatR32g32Uint, vk.FormatR32g32b32Uint, vk.FormatR32g32b32a32Uint},
	metadata.ComponentInt64:   {vk.FormatR64Sint, vk.FormatR64g64Sint, vk.FormatR64g64b64Sint, vk.FormatR64g64b64a64Sint},
	metadata.ComponentUint64:  {vk.FormatR64Uint, vk.FormatR64g64Uint, vk.FormatR64g64b64Uint, vk.FormatR64g64b64a64Uint},
	metadata.ComponentFloat16: {vk.FormatR16Sfloat, vk.FormatR16g16Sfloat, vk.FormatR16g16b16Sfloat, vk.FormatR16g16b16a16Sfloat},
	metadata.ComponentFloat32: {vk.FormatR32Sfloat, vk.FormatR32g32Sfloat, vk.FormatR32g32b32Sfloat, vk.FormatR32g32b32a32Sfloat},
	metadata.ComponentFloat64: {vk.FormatR64Sfloat, vk.FormatR64g64Sfloat, vk.FormatR64g64b64Sfloat, vk.FormatR64g64b64a64Sfloat},
}

var packedAttributeFormats = map[metadata.AttributeType]vk.Format{
	metadata.AttribTypeInt2_10_10_10Rev:  vk.FormatA2b10g10r10SintPack32,
	metadata.AttribTypeUint2_10_10_10Rev: vk.FormatA2b10g10r10UintPack32,
	metadata.AttribTypeFloat10_11_11Rev:  vk.FormatB10g11r11UfloatPack32,
}

// AttributeFormat returns the format of one location of t. A matrix uses
// this format once per column.
func AttributeFormat(t metadata.AttributeType) (vk.Format, error) {
	if f, ok := packedAttributeFormats[t]; ok {
		return f, nil
	}
	formats, ok := attributeFormats[t.Component()]
	if !ok || t.Rows() < 1 || t.Rows() > 4 {
		return vk.FormatUndefined, fmt.Errorf("%w: no vulkan format for %s", core.ErrUnsupportedAttribute, t)
	}
	return formats[t.Rows()-1], nil
}

/**
 * @brief A vertex input binding that advances once per Divisor instances.
 * Requires VK_EXT_vertex_attribute_divisor when Divisor > 1.
 */
type VertexInputDivisor struct {
	Binding uint32
	Divisor uint32
}

/**
 * @brief The vertex input state of a pipeline, derived from the sources of a draw.
 */
type VertexInputState struct {
	/** @brief One binding per buffer-backed source, in source order. */
	Bindings []vk.VertexInputBindingDescription
	/** @brief One description per location, locations assigned in source order. */
	Attributes []vk.VertexInputAttributeDescription
	/**
	 * @brief Per-instance bindings that advance slower than once per instance. Core
	 * Vulkan has no field for them: they travel in a divisor state structure
	 * chained behind the vertex input state, see CreateInfo.
	 */
	Divisors []VertexInputDivisor
}

// NewVertexInputState assigns a binding to every buffer-backed source and
// consecutive locations to their attributes. Markers take no binding.
func NewVertexInputState(sources iter.Seq[vertex.VerticesSource]) (*VertexInputState, error) {
	state := &VertexInputState{}
	location := uint32(0)

	for src := range sources {
		if src.Kind != vertex.SourceBuffer {
			continue
		}
		if src.Format == nil {
			return nil, fmt.Errorf("%w: source %s has no format", core.ErrInvalidLayout, src)
		}
		binding := uint32(len(state.Bindings))
		inputRate := vk.VertexInputRateVertex
		if src.PerInstance {
			inputRate = vk.VertexInputRateInstance
		}
		state.Bindings = append(state.Bindings, vk.VertexInputBindingDescription{
			Binding:   binding,
			Stride:    uint32(src.Format.Stride),
			InputRate: inputRate,
		})

		divisor := uint32(0)
		for _, a := range src.Format.Attributes {
			format, err := AttributeFormat(a.Type)
			if err != nil {
				return nil, fmt.Errorf("attribute '%s': %w", a.Name, err)
			}
			columnSize := uint32(a.Type.Size()) / uint32(a.Type.Locations())
			for column := 0; column < a.Type.Locations(); column++ {
				state.Attributes = append(state.Attributes, vk.VertexInputAttributeDescription{
					Location: location,
					Binding:  binding,
					Format:   format,
					Offset:   uint32(a.Offset) + uint32(column)*columnSize,
				})
				location++
			}

			if divisor != 0 && a.Divisor != 0 && a.Divisor != divisor {
				return nil, fmt.Errorf("%w: attributes of binding %d use divisors %d and %d",
					core.ErrInvalidLayout, binding, divisor, a.Divisor)
			}
			if a.Divisor != 0 {
				divisor = a.Divisor
			}
		}
		if src.PerInstance && divisor > 1 {
			state.Divisors = append(state.Divisors, VertexInputDivisor{Binding: binding, Divisor: divisor})
		}
	}
	return state, nil
}

func (s *VertexInputState) Locations() int {
	return len(s.Attributes)
}

// CreateInfo fills the pipeline vertex input description. divisorState is
// chained as its PNext and must point to a VkPipelineVertexInputDivisorStateCreateInfo
// built from Divisors; it may be nil only when Divisors is empty, otherwise the
// divisors would be silently dropped and every instance would advance the bindings.
func (s *VertexInputState) CreateInfo(divisorState unsafe.Pointer) (vk.PipelineVertexInputStateCreateInfo, error) {
	if len(s.Divisors) > 0 && divisorState == nil {
		return vk.PipelineVertexInputStateCreateInfo{}, fmt.Errorf("%w: %d bindings use a divisor", core.ErrDivisorStateMissing, len(s.Divisors))
	}
	for i := range s.Bindings {
		s.Bindings[i].Deref()
	}
	for i := range s.Attributes {
		s.Attributes[i].Deref()
	}
	vertexInputInfo := vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		PNext:                           divisorState,
		VertexBindingDescriptionCount:   uint32(len(s.Bindings)),
		PVertexBindingDescriptions:      s.Bindings,
		VertexAttributeDescriptionCount: uint32(len(s.Attributes)),
		PVertexAttributeDescriptions:    s.Attributes,
	}
	vertexInputInfo.Deref()
	return vertexInputInfo, nil
}
