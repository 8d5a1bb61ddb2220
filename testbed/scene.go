package testbed

import (
	"fmt"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/math"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-vertex/engine/systems"
	"github.com/spaghettifunk/anima-vertex/engine/systems/loaders"
	"github.com/spaghettifunk/anima-vertex/engine/vertex"
)

const meshProgramConfig = `
name = "mesh"

[[attributes]]
name = "in_position"
type = "float32_3"

[[attributes]]
name = "in_colour"
type = "float32_4"
`

const instancedProgramConfig = `
name = "instanced_mesh"

[[attributes]]
name = "in_position"
type = "float32_3"

[[attributes]]
name = "in_model"
type = "float32_mat4"

[[attributes]]
name = "in_tint"
type = "float32_4"
`

const fullscreenProgramConfig = `
name = "fullscreen"
`

// captures whole Vertex3D elements
const captureProgramConfig = `
name = "capture"

[[attributes]]
name = "in_position"
type = "float32_3"

[[transform_feedback_buffers]]
stride = 60

[[transform_feedback_buffers.varyings]]
name = "in_position"
offset = 0
type = "float32_3"

[[transform_feedback_buffers.varyings]]
name = "in_normal"
offset = 12
type = "float32_3"
`

/**
 * @brief A headless scene drawing a triangle in every supported way through the
 * recording backend.
 */
type TestScene struct {
	Config        *core.Config
	Capabilities  *metadata.Capabilities
	Backend       *Backend
	SystemManager *systems.SystemManager

	programs map[string]*metadata.Program
}

func NewTestScene(config *core.Config) (*TestScene, error) {
	caps := metadata.CapabilitiesFromConfig(config.Capabilities)
	backend := NewBackend(256, 64)

	sm, err := systems.NewSystemManager(caps, backend)
	if err != nil {
		return nil, err
	}

	scene := &TestScene{
		Config:        config,
		Capabilities:  caps,
		Backend:       backend,
		SystemManager: sm,
		programs:      make(map[string]*metadata.Program),
	}
	for _, source := range []string{meshProgramConfig, instancedProgramConfig, fullscreenProgramConfig, captureProgramConfig} {
		pc, err := loaders.ParseProgramConfig([]byte(source))
		if err != nil {
			return nil, err
		}
		program, err := sm.ProgramSystem.CreateProgram(pc)
		if err != nil {
			return nil, err
		}
		scene.programs[program.Name] = program
	}
	return scene, nil
}

func triangle() []math.Vertex3D {
	white := math.Vec4{X: 1, Y: 1, Z: 1, W: 1}
	normal := math.Vec3{Z: 1}
	return []math.Vertex3D{
		{Position: math.Vec3{X: -0.5, Y: -0.5}, Normal: normal, Texcoord: math.Vec2{X: 0, Y: 0}, Colour: white},
		{Position: math.Vec3{X: 0.5, Y: -0.5}, Normal: normal, Texcoord: math.Vec2{X: 1, Y: 0}, Colour: white},
		{Position: math.Vec3{X: 0, Y: 0.5}, Normal: normal, Texcoord: math.Vec2{X: 0.5, Y: 1}, Colour: white},
	}
}

/**
 * @brief Draws the triangle unindexed, indexed, instanced, with phantom vertices
 * and, when supported, with transform feedback.
 *
 * @param instances The number of instances of the instanced draw.
 */
func (s *TestScene) Run(instances int) error {
	caps := s.Capabilities
	ds := s.SystemManager.DrawSystem

	if err := vertex.Validate[math.Vertex3D](caps); err != nil {
		return err
	}
	vb, err := vertex.NewVertexBuffer(caps, s.Backend, triangle())
	if err != nil {
		return err
	}

	if err := ds.Draw(vertex.Single(vb), nil, s.programs["mesh"], nil); err != nil {
		return err
	}

	indexBuffer, err := s.Backend.CreateBuffer(metadata.RENDERBUFFER_TYPE_INDEX, 4, 3, []uint32{0, 1, 2})
	if err != nil {
		return err
	}
	indices := indexBuffer.AsSlice()
	if err := ds.Draw(vertex.Single(vb), &indices, s.programs["mesh"], nil); err != nil {
		return err
	}

	data := make([]math.InstanceData, instances)
	for i := range data {
		data[i] = math.InstanceData{
			Model:  math.Mat4Translation(math.Vec3{X: float32(i)}),
			Colour: math.Vec4{X: 1, Y: float32(i) / float32(instances), Z: 0, W: 1},
		}
	}
	ib, err := vertex.NewVertexBuffer(caps, s.Backend, data)
	if err != nil {
		return err
	}
	if err := ds.Draw(vertex.Sources{vb, ib.PerInstance()}, nil, s.programs["instanced_mesh"], nil); err != nil {
		return err
	}

	if err := ds.Draw(vertex.Single(vertex.EmptyVertexAttributes{Len: 3}), nil, s.programs["fullscreen"], nil); err != nil {
		return err
	}

	if vertex.IsTransformFeedbackSupported(caps) {
		if err := s.capture(vb); err != nil {
			return err
		}
	} else {
		core.LogWarn("transform feedback not supported, capture skipped")
	}

	stats := ds.Stats
	core.LogInfo("testbed: %d draws submitted, %d rejected, %d failed, %d bytes allocated",
		stats.Submitted, stats.Rejected, stats.Failed, s.Backend.Allocated)
	if stats.Rejected > 0 || stats.Failed > 0 {
		return fmt.Errorf("testbed: %d draws did not reach the backend", stats.Rejected+stats.Failed)
	}
	return nil
}

func (s *TestScene) capture(vb *vertex.VertexBuffer[math.Vertex3D]) error {
	target, err := vertex.NewEmptyVertexBuffer[math.Vertex3D](s.Capabilities, s.Backend, metadata.RENDERBUFFER_TYPE_TRANSFORM_FEEDBACK, vb.Len())
	if err != nil {
		return err
	}
	program := s.programs["capture"]
	session, err := vertex.NewTransformFeedbackSession(s.Capabilities, target, program)
	if err != nil {
		return err
	}
	defer session.Destroy()

	return s.SystemManager.DrawSystem.Draw(vertex.Single(vb), nil, program, &systems.DrawParameters{TransformFeedback: session})
}

func (s *TestScene) Shutdown() error {
	if err := s.SystemManager.Shutdown(); err != nil {
		return err
	}
	return s.Backend.Shutdown()
}
