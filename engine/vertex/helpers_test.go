package vertex

import (
	"errors"
	"reflect"

	"github.com/spaghettifunk/anima-vertex/engine/math"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

type testVertex struct {
	Position [3]float32 `vertex:"position"`
	Texcoord [2]float32 `vertex:"texcoords"`
}

type testInstance struct {
	Model math.Mat4 `vertex:"model"`
	Tint  math.Vec4 `vertex:"tint,divisor=2"`
}

type doubleVertex struct {
	Position [3]float64
	Weight   float32
}

var fullCaps = &metadata.Capabilities{
	Float64Attributes:     true,
	Int64Attributes:       true,
	HalfFloatAttributes:   true,
	PackedAttributes:      true,
	PackedFloatAttributes: true,
	TransformFeedback:     true,
	MaxVertexAttributes:   16,
}

var baseCaps = &metadata.Capabilities{MaxVertexAttributes: 16}

// hostAllocator keeps buffer contents in host memory.
type hostAllocator struct {
	nextID  uint32
	buffers []*metadata.RenderBuffer
	fail    error
}

func (a *hostAllocator) CreateBuffer(kind metadata.RenderBufferType, elementSize, count uint64, data any) (*metadata.RenderBuffer, error) {
	if a.fail != nil {
		return nil, a.fail
	}
	if data != nil && uint64(reflect.ValueOf(data).Len()) != count {
		return nil, errors.New("data length does not match count")
	}
	a.nextID++
	buf := &metadata.RenderBuffer{
		ID:               a.nextID,
		RenderBufferType: kind,
		ElementSize:      elementSize,
		ElementCount:     count,
		TotalSize:        elementSize * count,
		InternalData:     data,
	}
	a.buffers = append(a.buffers, buf)
	return buf, nil
}

func newTestBuffer[T any](n int) *VertexBuffer[T] {
	vb, err := NewVertexBuffer(fullCaps, &hostAllocator{}, make([]T, n))
	if err != nil {
		panic(err)
	}
	return vb
}
