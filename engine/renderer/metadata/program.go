package metadata

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-vertex/engine/core"
)

/** @brief Shader stages available in the system. */
type ShaderStage int

const (
	ShaderStageVertex   ShaderStage = 0x00000001
	ShaderStageGeometry ShaderStage = 0x00000002
	ShaderStageFragment ShaderStage = 0x00000004
	ShaderStageCompute  ShaderStage = 0x0000008
)

/** @brief How captured varyings are laid out across transform feedback buffers. */
type TransformFeedbackMode int

const (
	/** @brief All varyings are written, interleaved, to a single buffer. */
	TransformFeedbackModeInterleaved TransformFeedbackMode = iota
	/** @brief Each varying is written to its own buffer. */
	TransformFeedbackModeSeparate
)

/**
 * @brief Represents a single shader vertex input.
 */
type ShaderAttribute struct {
	/** @brief The attribute Name. */
	Name string
	/** @brief The attribute type. */
	Type AttributeType
	/** @brief The first location of the attribute. */
	Location uint32
}

/**
 * @brief A varying output captured by transform feedback.
 */
type TransformFeedbackVarying struct {
	/** @brief The name of the varying as written by the shader. */
	Name string
	/** @brief Byte offset of the varying inside one captured element. */
	Offset uintptr
	/** @brief The type of the varying. */
	Type AttributeType
}

/**
 * @brief One buffer written by transform feedback.
 */
type TransformFeedbackBuffer struct {
	/** @brief The binding index of the buffer. */
	Index uint32
	/** @brief The varyings written to this buffer. */
	Elements []TransformFeedbackVarying
	/** @brief The size of one captured element in bytes. */
	Stride uintptr
}

/**
 * @brief A linked shader program. The backend compiles it; this layer only needs
 * its identity, its inputs and the varyings it captures.
 */
type Program struct {
	/** @brief The program identity. Two programs are the same iff their IDs are equal. */
	ID   uuid.UUID
	Name string
	/** @brief The vertex inputs of the program. */
	Attributes []ShaderAttribute
	/** @brief The buffers written by transform feedback, empty if the program captures nothing. */
	TransformFeedbackBuffers []TransformFeedbackBuffer
	TransformFeedbackMode    TransformFeedbackMode
	/** @brief An opaque pointer to hold renderer API specific data. */
	InternalData interface{}
}

func NewProgram(name string) *Program {
	return &Program{
		ID:   uuid.New(),
		Name: name,
	}
}

func (p *Program) Is(other *Program) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

func (p *Program) HasTransformFeedback() bool {
	return len(p.TransformFeedbackBuffers) > 0
}

/**
 * @brief Checks that elements laid out with format can receive what the program
 * captures. Only a single interleaved capture buffer is supported; its stride must
 * equal the format stride and every varying must exist in the format with the same
 * offset and type.
 */
func (p *Program) TransformFeedbackMatches(format *VertexFormat) error {
	if len(p.TransformFeedbackBuffers) != 1 {
		return fmt.Errorf("%w: program '%s' captures into %d buffers, exactly one is supported",
			core.ErrTransformFeedbackTypeMismatch, p.Name, len(p.TransformFeedbackBuffers))
	}
	buf := p.TransformFeedbackBuffers[0]
	if buf.Stride != format.Stride {
		return fmt.Errorf("%w: program '%s' writes %d bytes per element, buffer elements are %d bytes",
			core.ErrTransformFeedbackTypeMismatch, p.Name, buf.Stride, format.Stride)
	}
	for _, v := range buf.Elements {
		a, ok := format.Find(v.Name)
		if !ok {
			return fmt.Errorf("%w: varying '%s' has no matching attribute",
				core.ErrTransformFeedbackTypeMismatch, v.Name)
		}
		if a.Offset != v.Offset || a.Type != v.Type {
			return fmt.Errorf("%w: varying '%s' is %s at offset %d, attribute is %s at offset %d",
				core.ErrTransformFeedbackTypeMismatch, v.Name, v.Type, v.Offset, a.Type, a.Offset)
		}
	}
	return nil
}

/** @brief Configuration of a single program vertex input. */
type ProgramAttributeConfig struct {
	Name string `toml:"name"`
	/** @brief The AttributeType name, e.g. "float32_3". */
	Type string `toml:"type"`
}

/** @brief Configuration of a captured varying. */
type TransformFeedbackVaryingConfig struct {
	Name   string `toml:"name"`
	Offset uint64 `toml:"offset"`
	Type   string `toml:"type"`
}

/** @brief Configuration of a transform feedback capture buffer. */
type TransformFeedbackBufferConfig struct {
	Stride   uint64                           `toml:"stride"`
	Varyings []TransformFeedbackVaryingConfig `toml:"varyings"`
}

/**
 * @brief Configuration for a program, as read from a program file. The names of
 * types are the ones returned by AttributeType.String.
 */
type ProgramConfig struct {
	Name       string                   `toml:"name"`
	Attributes []ProgramAttributeConfig `toml:"attributes"`
	/** @brief "interleaved" (default) or "separate". */
	TransformFeedbackMode    string                          `toml:"transform_feedback_mode"`
	TransformFeedbackBuffers []TransformFeedbackBufferConfig `toml:"transform_feedback_buffers"`
}
