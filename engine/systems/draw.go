package systems

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-vertex/engine/vertex"
)

/** @brief Configuration for the draw system. */
type DrawSystemConfig struct {
	/** @brief The capabilities of the context draws are issued on. */
	Capabilities metadata.CapabilitiesSource
}

/**
 * @brief A draw call that passed validation. The backend records or submits it.
 */
type DrawCommand struct {
	/** @brief The sources, in the order they were given. */
	Sources []vertex.VerticesSource
	/** @brief The index range, nil for an unindexed draw. */
	Indices *metadata.BufferSlice
	Program *metadata.Program
	/** @brief The number of vertices, or of indices for an indexed draw. */
	VertexCount int
	/** @brief The number of instances, vertex.NoCount when the draw is not instanced. */
	InstanceCount int
	/** @brief The capture session, nil if nothing is captured. */
	TransformFeedback *vertex.TransformFeedbackSession
}

/** @brief Receives validated draw commands. */
type DrawBackend interface {
	Draw(cmd *DrawCommand) error
}

/** @brief Optional parameters of a draw. */
type DrawParameters struct {
	/** @brief Captures the output of the draw. The program must be the one of the session. */
	TransformFeedback *vertex.TransformFeedbackSession
}

type DrawStats struct {
	// Draws handed to the backend.
	Submitted uint64
	// Draws refused before reaching the backend.
	Rejected uint64
	// Draws the backend failed.
	Failed uint64
}

/**
 * @brief Issues draw calls. Every draw is checked for source consistency, attribute
 * support, program inputs and transform feedback before the backend sees it.
 * Not safe for concurrent use.
 */
type DrawSystem struct {
	// This system's configuration.
	Config *DrawSystemConfig
	// Draw counters since creation.
	Stats DrawStats

	backend DrawBackend
}

func NewDrawSystem(config *DrawSystemConfig, backend DrawBackend) (*DrawSystem, error) {
	if config.Capabilities == nil {
		err := fmt.Errorf("NewDrawSystem - config.Capabilities must be set")
		core.LogError(err.Error())
		return nil, err
	}
	if backend == nil {
		err := fmt.Errorf("NewDrawSystem - backend must be set")
		core.LogError(err.Error())
		return nil, err
	}
	return &DrawSystem{
		Config:  config,
		backend: backend,
	}, nil
}

/**
 * @brief Draws with the given sources.
 *
 * @param sources The vertex and instance sources, read in order.
 * @param indices The index range, or nil for an unindexed draw.
 * @param program The program to draw with.
 * @param params Optional parameters; may be nil.
 * @return An error if the draw is invalid or the backend failed.
 */
func (ds *DrawSystem) Draw(sources vertex.MultiVerticesSource, indices *metadata.BufferSlice, program *metadata.Program, params *DrawParameters) error {
	cmd, err := ds.prepare(sources, indices, program, params)
	if err != nil {
		ds.Stats.Rejected++
		core.LogError("draw rejected: %s", err.Error())
		return err
	}
	if err := ds.backend.Draw(cmd); err != nil {
		ds.Stats.Failed++
		core.LogError("draw failed: %s", err.Error())
		return err
	}
	ds.Stats.Submitted++
	return nil
}

func (ds *DrawSystem) prepare(sources vertex.MultiVerticesSource, indices *metadata.BufferSlice, program *metadata.Program, params *DrawParameters) (*DrawCommand, error) {
	if program == nil {
		return nil, core.ErrNoProgram
	}
	if indices != nil && indices.Buffer == nil {
		return nil, fmt.Errorf("indices: %w", core.ErrNilBuffer)
	}

	collected := slices.Collect(sources.Iter())
	counts, err := vertex.CheckSources(slices.Values(collected), indices != nil)
	if err != nil {
		return nil, err
	}

	cmd := &DrawCommand{
		Sources:       collected,
		Indices:       indices,
		Program:       program,
		VertexCount:   counts.Vertices,
		InstanceCount: counts.Instances,
	}
	if indices != nil {
		cmd.VertexCount = indices.Len()
	} else if counts.Vertices == vertex.NoCount {
		return nil, core.ErrNoVerticesSource
	}

	if err := ds.checkAttributes(collected, program); err != nil {
		return nil, err
	}

	if params != nil && params.TransformFeedback != nil {
		if err := params.TransformFeedback.CheckProgram(program); err != nil {
			return nil, err
		}
		cmd.TransformFeedback = params.TransformFeedback
	}
	return cmd, nil
}

// checkAttributes verifies the sources can be read by the context and provide
// every input of the program.
func (ds *DrawSystem) checkAttributes(sources []vertex.VerticesSource, program *metadata.Program) error {
	locations := 0
	for i, src := range sources {
		if src.Kind != vertex.SourceBuffer {
			continue
		}
		if src.Format == nil {
			return fmt.Errorf("source %d: %w: no vertex format", i, core.ErrInvalidLayout)
		}
		if a, found := src.Format.Unsupported(ds.Config.Capabilities); found {
			return fmt.Errorf("%w: source %d attribute '%s' is %s", core.ErrUnsupportedAttribute, i, a.Name, a.Type)
		}
		locations += src.Format.Locations()
	}
	if limit := ds.Config.Capabilities.Capabilities().MaxVertexAttributes; limit > 0 && uint32(locations) > limit {
		return fmt.Errorf("%w: the sources use %d attribute locations, the context allows %d",
			core.ErrUnsupportedAttribute, locations, limit)
	}

	var errs []error
	for _, input := range program.Attributes {
		binding, found := findAttribute(sources, input.Name)
		switch {
		case !found:
			errs = append(errs, fmt.Errorf("%w: '%s' of program '%s'", core.ErrAttributeMissing, input.Name, program.Name))
		case binding.Type != input.Type:
			errs = append(errs, fmt.Errorf("%w: '%s' is %s in the sources, %s in program '%s'",
				core.ErrAttributeTypeMismatch, input.Name, binding.Type, input.Type, program.Name))
		}
	}
	return errors.Join(errs...)
}

func findAttribute(sources []vertex.VerticesSource, name string) (metadata.AttributeBinding, bool) {
	for _, src := range sources {
		if src.Kind != vertex.SourceBuffer || src.Format == nil {
			continue
		}
		if a, ok := src.Format.Find(name); ok {
			return a, true
		}
	}
	return metadata.AttributeBinding{}, false
}
