package vulkan

import (
	"errors"
	"testing"
	"unsafe"

	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/math"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-vertex/engine/vertex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeFormat(t *testing.T) {
	cases := []struct {
		in   metadata.AttributeType
		want vk.Format
	}{
		{metadata.AttribTypeFloat32, vk.FormatR32Sfloat},
		{metadata.AttribTypeFloat32_3, vk.FormatR32g32b32Sfloat},
		{metadata.AttribTypeUint8_4, vk.FormatR8g8b8a8Uint},
		{metadata.AttribTypeInt16_2, vk.FormatR16g16Sint},
		{metadata.AttribTypeFloat16_4, vk.FormatR16g16b16a16Sfloat},
		{metadata.AttribTypeFloat64_2, vk.FormatR64g64Sfloat},
		{metadata.AttribTypeUint64, vk.FormatR64Uint},
		{metadata.AttribTypeFloat32Mat4, vk.FormatR32g32b32a32Sfloat},
		{metadata.AttribTypeFloat32Mat4x2, vk.FormatR32g32Sfloat},
		{metadata.AttribTypeInt2_10_10_10Rev, vk.FormatA2b10g10r10SintPack32},
		{metadata.AttribTypeUint2_10_10_10Rev, vk.FormatA2b10g10r10UintPack32},
		{metadata.AttribTypeFloat10_11_11Rev, vk.FormatB10g11r11UfloatPack32},
	}
	for _, c := range cases {
		t.Run(c.in.String(), func(t *testing.T) {
			got, err := AttributeFormat(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	_, err := AttributeFormat(metadata.AttributeType(255))
	assert.True(t, errors.Is(err, core.ErrUnsupportedAttribute))
}

type inputVertex struct {
	Position [3]float32 `vertex:"position"`
	Colour   [4]uint8   `vertex:"colour"`
}

type inputInstance struct {
	Model math.Mat4 `vertex:"model,divisor=2"`
	Tint  math.Vec4 `vertex:"tint,divisor=2"`
}

func bufferSource(t *testing.T, format *metadata.VertexFormat, count int, perInstance bool) vertex.VerticesSource {
	t.Helper()
	buf := &metadata.RenderBuffer{
		RenderBufferType: metadata.RENDERBUFFER_TYPE_VERTEX,
		ElementSize:      uint64(format.Stride),
		ElementCount:     uint64(count),
		TotalSize:        uint64(format.Stride) * uint64(count),
	}
	return vertex.VerticesSource{Kind: vertex.SourceBuffer, Slice: buf.AsSlice(), Format: format, PerInstance: perInstance}
}

func TestNewVertexInputState(t *testing.T) {
	vertexFormat, err := vertex.FormatOf[inputVertex]()
	require.NoError(t, err)
	instanceFormat, err := vertex.FormatOf[inputInstance]()
	require.NoError(t, err)

	sources := vertex.Sources{
		bufferSource(t, vertexFormat, 3, false),
		vertex.EmptyVertexAttributes{Len: 3},
		bufferSource(t, instanceFormat, 4, true),
	}
	state, err := NewVertexInputState(sources.Iter())
	require.NoError(t, err)

	require.Len(t, state.Bindings, 2)
	assert.Equal(t, uint32(0), state.Bindings[0].Binding)
	assert.Equal(t, uint32(unsafe.Sizeof(inputVertex{})), state.Bindings[0].Stride)
	assert.Equal(t, vk.VertexInputRateVertex, state.Bindings[0].InputRate)
	assert.Equal(t, uint32(1), state.Bindings[1].Binding)
	assert.Equal(t, uint32(unsafe.Sizeof(inputInstance{})), state.Bindings[1].Stride)
	assert.Equal(t, vk.VertexInputRateInstance, state.Bindings[1].InputRate)

	// 2 per-vertex locations, 4 for the matrix columns, 1 for the tint
	require.Equal(t, 7, state.Locations())
	for i, a := range state.Attributes {
		assert.Equal(t, uint32(i), a.Location)
	}
	assert.Equal(t, vk.FormatR8g8b8a8Uint, state.Attributes[1].Format)
	assert.Equal(t, uint32(unsafe.Offsetof(inputVertex{}.Colour)), state.Attributes[1].Offset)
	for column := 0; column < 4; column++ {
		a := state.Attributes[2+column]
		assert.Equal(t, uint32(1), a.Binding)
		assert.Equal(t, vk.FormatR32g32b32a32Sfloat, a.Format)
		assert.Equal(t, uint32(column*16), a.Offset)
	}
	assert.Equal(t, uint32(64), state.Attributes[6].Offset)

	assert.Equal(t, []VertexInputDivisor{{Binding: 1, Divisor: 2}}, state.Divisors)

	// the divisor of binding 1 cannot be dropped on the way to the pipeline
	_, err = state.CreateInfo(nil)
	assert.ErrorIs(t, err, core.ErrDivisorStateMissing)

	chained := new(uint64)
	info, err := state.CreateInfo(unsafe.Pointer(chained))
	require.NoError(t, err)
	assert.Equal(t, unsafe.Pointer(chained), info.PNext)
	assert.Equal(t, uint32(2), info.VertexBindingDescriptionCount)
	assert.Equal(t, uint32(7), info.VertexAttributeDescriptionCount)
}

func TestNewVertexInputStateOnlyMarkers(t *testing.T) {
	sources := vertex.Sources{vertex.EmptyVertexAttributes{Len: 3}, vertex.EmptyInstanceAttributes{Len: 2}}
	state, err := NewVertexInputState(sources.Iter())
	require.NoError(t, err)
	assert.Empty(t, state.Bindings)
	assert.Empty(t, state.Attributes)

	info, err := state.CreateInfo(nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), info.VertexBindingDescriptionCount)
	assert.Equal(t, uint32(0), info.VertexAttributeDescriptionCount)
}

func TestNewVertexInputStateConflictingDivisors(t *testing.T) {
	format := &metadata.VertexFormat{
		Attributes: []metadata.AttributeBinding{
			{Name: "a", Offset: 0, Type: metadata.AttribTypeFloat32, Divisor: 2},
			{Name: "b", Offset: 4, Type: metadata.AttribTypeFloat32, Divisor: 3},
		},
		Stride: 8,
	}
	_, err := NewVertexInputState(vertex.Single(bufferSource(t, format, 1, true)).Iter())
	assert.True(t, errors.Is(err, core.ErrInvalidLayout))
}
