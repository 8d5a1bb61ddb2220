package systems

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-vertex/engine/systems/loaders"
)

/** @brief Configuration for the program system. */
type ProgramSystemConfig struct {
	/** @brief The maximum number of programs held in the system. */
	MaxProgramCount uint16
}

type ProgramSystem struct {
	// This system's configuration.
	Config *ProgramSystemConfig
	// A lookup table for program name->id
	Lookup map[string]uuid.UUID
	// The registered programs.
	Programs map[uuid.UUID]*metadata.Program
}

func NewProgramSystem(config *ProgramSystemConfig) (*ProgramSystem, error) {
	if config.MaxProgramCount == 0 {
		err := fmt.Errorf("NewProgramSystem - config.MaxProgramCount must be greater than 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &ProgramSystem{
		Config:   config,
		Lookup:   make(map[string]uuid.UUID),
		Programs: make(map[uuid.UUID]*metadata.Program),
	}, nil
}

/**
 * @brief Registers a program. Its name must be unique in the system.
 */
func (ps *ProgramSystem) Register(program *metadata.Program) error {
	if _, ok := ps.Lookup[program.Name]; ok {
		return fmt.Errorf("%w: '%s'", core.ErrProgramExists, program.Name)
	}
	if len(ps.Programs) >= int(ps.Config.MaxProgramCount) {
		err := fmt.Errorf("unable to register program '%s': the system holds %d programs", program.Name, ps.Config.MaxProgramCount)
		core.LogError(err.Error())
		return err
	}
	ps.Lookup[program.Name] = program.ID
	ps.Programs[program.ID] = program
	core.LogDebug("program '%s' registered with id %s", program.Name, program.ID)
	return nil
}

/**
 * @brief Creates and registers a program from its configuration.
 */
func (ps *ProgramSystem) CreateProgram(config *metadata.ProgramConfig) (*metadata.Program, error) {
	program, err := loaders.ProgramFromConfig(config)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	if err := ps.Register(program); err != nil {
		return nil, err
	}
	return program, nil
}

/**
 * @brief Loads a program file and registers the program it describes.
 */
func (ps *ProgramSystem) LoadProgram(path string) (*metadata.Program, error) {
	config, err := loaders.LoadProgramConfig(path)
	if err != nil {
		return nil, err
	}
	return ps.CreateProgram(config)
}

/**
 * @brief Returns the program with the given name.
 */
func (ps *ProgramSystem) GetProgram(name string) (*metadata.Program, error) {
	id, ok := ps.Lookup[name]
	if !ok {
		return nil, fmt.Errorf("%w: name '%s'", core.ErrProgramNotFound, name)
	}
	return ps.GetProgramByID(id)
}

func (ps *ProgramSystem) GetProgramByID(id uuid.UUID) (*metadata.Program, error) {
	program, ok := ps.Programs[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", core.ErrProgramNotFound, id)
	}
	return program, nil
}

/**
 * @brief Removes the program from the system. Sessions created with it keep
 * the identity and will reject any other program.
 */
func (ps *ProgramSystem) Destroy(name string) error {
	id, ok := ps.Lookup[name]
	if !ok {
		return fmt.Errorf("%w: name '%s'", core.ErrProgramNotFound, name)
	}
	delete(ps.Lookup, name)
	delete(ps.Programs, id)
	return nil
}

func (ps *ProgramSystem) Shutdown() error {
	clear(ps.Lookup)
	clear(ps.Programs)
	return nil
}
