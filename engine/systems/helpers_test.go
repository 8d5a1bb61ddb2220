package systems

import (
	"errors"

	"github.com/spaghettifunk/anima-vertex/engine/math"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-vertex/engine/vertex"
)

type meshVertex struct {
	Position math.Vec3 `vertex:"position"`
	Colour   math.Vec4 `vertex:"colour"`
}

type meshInstance struct {
	Offset math.Vec3 `vertex:"offset"`
}

type doubleVertex struct {
	Position [3]float64 `vertex:"position"`
}

var testCaps = &metadata.Capabilities{
	Float64Attributes:   true,
	TransformFeedback:   true,
	MaxVertexAttributes: 16,
}

type recordingBackend struct {
	commands []*DrawCommand
	fail     error
}

func (b *recordingBackend) Draw(cmd *DrawCommand) error {
	if b.fail != nil {
		return b.fail
	}
	b.commands = append(b.commands, cmd)
	return nil
}

type testAllocator struct {
	nextID uint32
}

func (a *testAllocator) CreateBuffer(kind metadata.RenderBufferType, elementSize, count uint64, data any) (*metadata.RenderBuffer, error) {
	if elementSize == 0 {
		return nil, errors.New("zero element size")
	}
	a.nextID++
	return &metadata.RenderBuffer{
		ID:               a.nextID,
		RenderBufferType: kind,
		ElementSize:      elementSize,
		ElementCount:     count,
		TotalSize:        elementSize * count,
		InternalData:     data,
	}, nil
}

func newBuffer[T any](n int) *vertex.VertexBuffer[T] {
	vb, err := vertex.NewVertexBuffer(testCaps, &testAllocator{}, make([]T, n))
	if err != nil {
		panic(err)
	}
	return vb
}

func meshProgram() *metadata.Program {
	p := metadata.NewProgram("mesh")
	p.Attributes = []metadata.ShaderAttribute{
		{Name: "position", Type: metadata.AttribTypeFloat32_3, Location: 0},
		{Name: "colour", Type: metadata.AttribTypeFloat32_4, Location: 1},
	}
	return p
}

func newDrawSystem(caps metadata.CapabilitiesSource) (*DrawSystem, *recordingBackend) {
	backend := &recordingBackend{}
	ds, err := NewDrawSystem(&DrawSystemConfig{Capabilities: caps}, backend)
	if err != nil {
		panic(err)
	}
	return ds, backend
}
