package loaders

import (
	"testing"

	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const particlesConfig = `
name = "particles"
transform_feedback_mode = "interleaved"

[[attributes]]
name = "in_position"
type = "float32_3"

[[attributes]]
name = "in_model"
type = "float32_mat4"

[[attributes]]
name = "in_age"
type = "float32"

[[transform_feedback_buffers]]
stride = 16

[[transform_feedback_buffers.varyings]]
name = "out_position"
offset = 0
type = "float32_3"

[[transform_feedback_buffers.varyings]]
name = "out_age"
offset = 12
type = "float32"
`

func TestProgramFromConfig(t *testing.T) {
	config, err := ParseProgramConfig([]byte(particlesConfig))
	require.NoError(t, err)

	p, err := ProgramFromConfig(config)
	require.NoError(t, err)
	assert.Equal(t, "particles", p.Name)
	assert.Equal(t, []metadata.ShaderAttribute{
		{Name: "in_position", Type: metadata.AttribTypeFloat32_3, Location: 0},
		{Name: "in_model", Type: metadata.AttribTypeFloat32Mat4, Location: 1},
		{Name: "in_age", Type: metadata.AttribTypeFloat32, Location: 5},
	}, p.Attributes)

	assert.Equal(t, metadata.TransformFeedbackModeInterleaved, p.TransformFeedbackMode)
	require.Len(t, p.TransformFeedbackBuffers, 1)
	buf := p.TransformFeedbackBuffers[0]
	assert.Equal(t, uintptr(16), buf.Stride)
	assert.Equal(t, []metadata.TransformFeedbackVarying{
		{Name: "out_position", Offset: 0, Type: metadata.AttribTypeFloat32_3},
		{Name: "out_age", Offset: 12, Type: metadata.AttribTypeFloat32},
	}, buf.Elements)

	// every parse gives a new identity
	q, err := ProgramFromConfig(config)
	require.NoError(t, err)
	assert.False(t, p.Is(q))
}

func TestProgramConfigErrors(t *testing.T) {
	_, err := ParseProgramConfig([]byte(`[[attributes]]`))
	assert.Error(t, err, "missing name")

	_, err = ParseProgramConfig([]byte(`name = `))
	assert.Error(t, err)

	cases := map[string]*metadata.ProgramConfig{
		"attribute type": {Name: "p", Attributes: []metadata.ProgramAttributeConfig{{Name: "a", Type: "float5"}}},
		"mode":           {Name: "p", TransformFeedbackMode: "mixed"},
		"varying type": {Name: "p", TransformFeedbackBuffers: []metadata.TransformFeedbackBufferConfig{{
			Stride:   4,
			Varyings: []metadata.TransformFeedbackVaryingConfig{{Name: "v", Type: "double"}},
		}}},
	}
	for name, config := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ProgramFromConfig(config)
			assert.Error(t, err)
		})
	}
}
