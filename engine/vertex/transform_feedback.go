package vertex

import (
	"fmt"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

type TransformFeedbackState int

const (
	TransformFeedbackUninitialized TransformFeedbackState = iota
	TransformFeedbackActive
	TransformFeedbackDestroyed
)

func (s TransformFeedbackState) String() string {
	switch s {
	case TransformFeedbackUninitialized:
		return "uninitialized"
	case TransformFeedbackActive:
		return "active"
	case TransformFeedbackDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("TransformFeedbackState(%d)", int(s))
	}
}

// IsTransformFeedbackSupported reports whether the context can capture
// primitives into a buffer.
func IsTransformFeedbackSupported(caps metadata.CapabilitiesSource) bool {
	return caps.Capabilities().TransformFeedback
}

// TransformFeedbackSession captures the primitives generated by one program
// into a buffer.
//
// The target buffer belongs to the session until Destroy: it must not be used as
// a vertex source or read while the session records. After Destroy the buffer
// holds whatever the last draws captured.
type TransformFeedbackSession struct {
	target  metadata.BufferSlice
	format  *metadata.VertexFormat
	program *metadata.Program
	state   TransformFeedbackState
}

// NewTransformFeedbackSession starts a session writing into buf the varyings
// captured by program. The layout of T must match the varyings of the program.
func NewTransformFeedbackSession[T any](caps metadata.CapabilitiesSource, buf *VertexBuffer[T], program *metadata.Program) (*TransformFeedbackSession, error) {
	if !IsTransformFeedbackSupported(caps) {
		return nil, core.ErrTransformFeedbackNotSupported
	}
	if buf == nil {
		return nil, core.ErrNilBuffer
	}
	if program == nil {
		return nil, fmt.Errorf("func NewTransformFeedbackSession: program is nil")
	}
	if err := program.TransformFeedbackMatches(buf.Format()); err != nil {
		return nil, err
	}

	s := &TransformFeedbackSession{
		target:  buf.Buffer().AsSlice(),
		format:  buf.Format(),
		program: program,
		state:   TransformFeedbackActive,
	}
	core.LogDebug("transform feedback session started: program '%s' -> buffer %d", program.Name, buf.Buffer().ID)
	return s, nil
}

func (s *TransformFeedbackSession) State() TransformFeedbackState {
	return s.state
}

func (s *TransformFeedbackSession) IsActive() bool {
	return s.state == TransformFeedbackActive
}

func (s *TransformFeedbackSession) Program() *metadata.Program {
	return s.program
}

// Target is the range the session writes into.
func (s *TransformFeedbackSession) Target() metadata.BufferSlice {
	return s.target
}

func (s *TransformFeedbackSession) Format() *metadata.VertexFormat {
	return s.format
}

// CheckProgram verifies that a draw using program may record into the session.
func (s *TransformFeedbackSession) CheckProgram(program *metadata.Program) error {
	if s.state != TransformFeedbackActive {
		return core.ErrTransformFeedbackSessionDestroyed
	}
	if !s.program.Is(program) {
		name := "<nil>"
		if program != nil {
			name = program.Name
		}
		return fmt.Errorf("%w: session records '%s', draw uses '%s'",
			core.ErrTransformFeedbackProgramMismatch, s.program.Name, name)
	}
	return nil
}

// Destroy ends the session. No draw records into it afterwards.
func (s *TransformFeedbackSession) Destroy() {
	if s.state == TransformFeedbackDestroyed {
		return
	}
	s.state = TransformFeedbackDestroyed
	core.LogDebug("transform feedback session for program '%s' destroyed", s.program.Name)
}
