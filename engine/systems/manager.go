package systems

import (
	"github.com/spaghettifunk/anima-vertex/engine/renderer/metadata"
)

type SystemManager struct {
	ProgramSystem *ProgramSystem
	DrawSystem    *DrawSystem
}

func NewSystemManager(caps metadata.CapabilitiesSource, backend DrawBackend) (*SystemManager, error) {
	ps, err := NewProgramSystem(&ProgramSystemConfig{
		MaxProgramCount: 512,
	})
	if err != nil {
		return nil, err
	}
	ds, err := NewDrawSystem(&DrawSystemConfig{
		Capabilities: caps,
	}, backend)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		ProgramSystem: ps,
		DrawSystem:    ds,
	}, nil
}

func (sm *SystemManager) Shutdown() error {
	return sm.ProgramSystem.Shutdown()
}
