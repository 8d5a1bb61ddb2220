package core

import (
	"errors"
)

var (
	ErrUnknown = errors.New("unknown")

	// vertex type validation
	ErrUnsupportedAttribute = errors.New("attribute type not supported by the current capabilities")
	ErrInvalidLayout        = errors.New("invalid vertex layout")
	ErrDivisorStateMissing  = errors.New("binding divisors need a chained divisor state")

	// draw input validation
	ErrVerticesSourcesLengthMismatch = errors.New("vertex sources have different lengths")
	ErrInstancesCountMismatch        = errors.New("per-instance sources have different lengths")
	ErrNoVerticesSource              = errors.New("no source declares a vertex count")
	ErrInvalidSourceLength           = errors.New("source length is negative")
	ErrNoProgram                     = errors.New("draw has no program")
	ErrAttributeMissing              = errors.New("program attribute is not provided by any source")
	ErrAttributeTypeMismatch         = errors.New("source attribute type differs from the program attribute type")

	// buffers
	ErrSliceOutOfRange = errors.New("buffer slice out of range")
	ErrNilBuffer       = errors.New("buffer is nil")

	// programs
	ErrProgramNotFound = errors.New("program not found")
	ErrProgramExists   = errors.New("program already registered")

	// transform feedback
	ErrTransformFeedbackNotSupported     = errors.New("transform feedback is not supported by the current capabilities")
	ErrTransformFeedbackTypeMismatch     = errors.New("buffer type does not match the transform feedback varyings of the program")
	ErrTransformFeedbackProgramMismatch  = errors.New("draw program differs from the transform feedback session program")
	ErrTransformFeedbackSessionDestroyed = errors.New("transform feedback session already destroyed")
)
