package testbed

import (
	"fmt"
	"slices"

	"github.com/spaghettifunk/anima-vertex/engine/containers"
	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/math"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/vulkan"
	"github.com/spaghettifunk/anima-vertex/engine/systems"
)

/**
 * @brief A renderer backend that keeps buffers in host memory and records draws
 * instead of submitting them. Buffer identifiers come from the core identifier
 * registry.
 */
type Backend struct {
	/** @brief Allocation sizes are rounded up to this many bytes. */
	Alignment uint64
	/** @brief Number of draws received. */
	Drawn uint64
	/** @brief Bytes currently allocated, after alignment. */
	Allocated uint64

	buffers map[uint32]*metadata.RenderBuffer
	history *containers.RingQueue[*systems.DrawCommand]
	inputs  *containers.RingQueue[*vulkan.VertexInputState]
}

/**
 * @brief Creates a backend.
 *
 * @param alignment Allocation sizes are rounded up to a multiple of it; a power of two.
 * @param historySize The number of most recent draws kept for inspection.
 */
func NewBackend(alignment uint64, historySize int) *Backend {
	return &Backend{
		Alignment: alignment,
		buffers:   make(map[uint32]*metadata.RenderBuffer),
		history:   containers.NewRingQueue[*systems.DrawCommand](historySize),
		inputs:    containers.NewRingQueue[*vulkan.VertexInputState](historySize),
	}
}

// Commands returns the most recent draws, oldest first.
func (b *Backend) Commands() []*systems.DrawCommand {
	return slices.Collect(b.history.All())
}

// VertexInputs returns the pipeline vertex input of each draw in Commands.
func (b *Backend) VertexInputs() []*vulkan.VertexInputState {
	return slices.Collect(b.inputs.All())
}

func (b *Backend) CreateBuffer(kind metadata.RenderBufferType, elementSize, count uint64, data any) (*metadata.RenderBuffer, error) {
	if kind == metadata.RENDERBUFFER_TYPE_UNKNOWN {
		return nil, fmt.Errorf("func CreateBuffer: buffer of unknown type")
	}
	if elementSize == 0 {
		return nil, fmt.Errorf("func CreateBuffer: zero element size")
	}
	buf := &metadata.RenderBuffer{
		RenderBufferType: kind,
		ElementSize:      elementSize,
		ElementCount:     count,
		TotalSize:        math.AlignUp(elementSize*count, b.Alignment),
		InternalData:     data,
	}
	buf.ID = core.IdentifierAquireNewID(buf)
	b.buffers[buf.ID] = buf
	b.Allocated += buf.TotalSize
	core.LogDebug("testbed: allocated %s buffer %d (%d bytes)", kind, buf.ID, buf.TotalSize)
	return buf, nil
}

func (b *Backend) DestroyBuffer(buf *metadata.RenderBuffer) error {
	if _, ok := b.buffers[buf.ID]; !ok {
		return fmt.Errorf("func DestroyBuffer: buffer %d not owned by the backend", buf.ID)
	}
	delete(b.buffers, buf.ID)
	b.Allocated -= buf.TotalSize
	return core.IdentifierReleaseID(buf.ID)
}

// Draw records the command and the vertex input a Vulkan pipeline would be
// created with. Every buffer it reads must still be alive.
func (b *Backend) Draw(cmd *systems.DrawCommand) error {
	for _, src := range cmd.Sources {
		if src.Slice.Buffer != nil && !b.alive(src.Slice.Buffer) {
			return fmt.Errorf("testbed: source reads destroyed buffer %d", src.Slice.Buffer.ID)
		}
	}
	if cmd.Indices != nil && !b.alive(cmd.Indices.Buffer) {
		return fmt.Errorf("testbed: indices read destroyed buffer %d", cmd.Indices.Buffer.ID)
	}
	if cmd.TransformFeedback != nil && !b.alive(cmd.TransformFeedback.Target().Buffer) {
		return fmt.Errorf("testbed: transform feedback writes destroyed buffer")
	}
	input, err := vulkan.NewVertexInputState(slices.Values(cmd.Sources))
	if err != nil {
		return fmt.Errorf("testbed: %w", err)
	}
	b.history.Push(cmd)
	b.inputs.Push(input)
	b.Drawn++
	return nil
}

func (b *Backend) alive(buf *metadata.RenderBuffer) bool {
	owned, ok := b.buffers[buf.ID]
	return ok && owned == buf && core.IdentifierOwner(buf.ID) == buf
}

func (b *Backend) Shutdown() error {
	for _, buf := range b.buffers {
		if err := b.DestroyBuffer(buf); err != nil {
			return err
		}
	}
	for !b.history.IsEmpty() {
		_, _ = b.history.Dequeue()
	}
	for !b.inputs.IsEmpty() {
		_, _ = b.inputs.Dequeue()
	}
	return nil
}
